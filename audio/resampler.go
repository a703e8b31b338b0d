// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/ik5/brainwave/utils"
)

// Resampler converts src to another sample rate with Catmull-Rom cubic
// interpolation. Channel count is preserved. When downsampling, a one-pole
// low-pass below the destination Nyquist runs ahead of the interpolator.
type Resampler struct {
	src      Source
	channels int
	dstRate  int
	step     float64 // source frames per output frame

	// sliding window of source frames: t-1, t0, t+1, t+2
	hist  [4][]float32
	valid [4]bool
	pos   float64 // offset between hist[1] and hist[2], in [0,1)
	ready bool

	block  []float32
	bpos   int
	blen   int
	srcEOF bool

	lowpass bool
	primed  bool // filter state seeded from the first raw frame
	alpha   float32
	state   []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	srcRate := src.SampleRate()

	r := &Resampler{
		src:      src,
		channels: channels,
		dstRate:  dstRate,
		step:     float64(srcRate) / float64(dstRate),
		block:    make([]float32, 1024*max(channels, 1)),
		state:    make([]float32, channels),
	}

	for i := range r.hist {
		r.hist[i] = make([]float32, channels)
	}

	if dstRate < srcRate {
		cutoff := 0.45 * float64(dstRate)
		r.lowpass = true
		r.alpha = float32(1 - math.Exp(-2*math.Pi*cutoff/float64(srcRate)))
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// pull copies the next source frame into frame. It reports false once the
// source is drained.
func (r *Resampler) pull(frame []float32) (bool, error) {
	for r.bpos >= r.blen {
		if r.srcEOF {
			return false, nil
		}

		n, err := r.src.ReadSamples(r.block)
		if err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("%w", err)
		}

		r.blen = n - n%r.channels
		r.bpos = 0
		if err != nil || n == 0 {
			r.srcEOF = true
		}
	}

	copy(frame, r.block[r.bpos:r.bpos+r.channels])
	r.bpos += r.channels

	if r.lowpass && !r.primed {
		copy(r.state, frame)
		r.primed = true
	}

	if r.lowpass {
		for c, v := range frame {
			r.state[c] += r.alpha * (v - r.state[c])
			frame[c] = r.state[c]
		}
	}

	return true, nil
}

func (r *Resampler) prime() error {
	ok, err := r.pull(r.hist[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}
	copy(r.hist[0], r.hist[1])
	r.valid[0], r.valid[1] = true, true

	for i := 2; i < 4; i++ {
		ok, err := r.pull(r.hist[i])
		if err != nil {
			return err
		}
		if !ok {
			copy(r.hist[i], r.hist[i-1])
		}
		r.valid[i] = ok
	}

	r.ready = true
	return nil
}

func (r *Resampler) advance() error {
	oldest := r.hist[0]
	copy(r.hist[:3], r.hist[1:])
	copy(r.valid[:3], r.valid[1:])
	r.hist[3] = oldest

	ok, err := r.pull(r.hist[3])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.hist[3], r.hist[2])
	}
	r.valid[3] = ok

	return nil
}

// ReadSamples fills dst with output frames; len(dst) must be a multiple of
// the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if r.channels <= 0 {
		return 0, ErrInvalidChannels
	}
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.ready {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		for r.pos >= 1 {
			r.pos--
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if !r.valid[1] || !r.valid[2] {
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		out := dst[written*r.channels:]
		for c := range r.channels {
			out[c] = utils.CubicInterpolate(r.hist[0][c], r.hist[1][c], r.hist[2][c], r.hist[3][c], x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}

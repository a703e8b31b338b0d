// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// MemorySource serves an in-memory interleaved buffer as a Source.
// The samples are not copied; the caller must not modify them while reading.
type MemorySource struct {
	samples    []float32
	sampleRate int
	channels   int
	pos        int
}

func NewMemorySource(samples []float32, sampleRate, channels int) *MemorySource {
	return &MemorySource{
		samples:    samples,
		sampleRate: sampleRate,
		channels:   channels,
	}
}

func (m *MemorySource) SampleRate() int { return m.sampleRate }
func (m *MemorySource) Channels() int   { return m.channels }
func (m *MemorySource) BufSize() int    { return 4096 * m.channels }
func (m *MemorySource) Close() error    { return nil }

// Len returns the number of samples not yet read.
func (m *MemorySource) Len() int { return len(m.samples) - m.pos }

// Rewind restarts reading from the first sample.
func (m *MemorySource) Rewind() { m.pos = 0 }

// ReadSamples copies whole frames only, so dst must hold at least one frame.
func (m *MemorySource) ReadSamples(dst []float32) (int, error) {
	if m.channels <= 0 {
		return 0, ErrInvalidChannels
	}
	if len(dst)%m.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if m.pos >= len(m.samples) {
		return 0, io.EOF
	}

	n := copy(dst, m.samples[m.pos:])
	m.pos += n

	if m.pos >= len(m.samples) {
		return n, io.EOF
	}
	return n, nil
}

// ReadAll drains src and returns every interleaved sample it produced.
func ReadAll(src Source) ([]float32, error) {
	size := src.BufSize()
	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}
	if size < channels {
		size = 4096 * channels
	}
	// keep reads frame aligned
	size -= size % channels

	var out []float32
	buf := make([]float32, size)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			// a source may report (0, nil) once drained
			break
		}
	}

	return out, nil
}

// ChannelSplit de-interleaves samples into one slice per channel.
// A trailing partial frame is dropped.
func ChannelSplit(samples []float32, channels int) [][]float32 {
	if channels <= 0 {
		return nil
	}

	frames := len(samples) / channels
	out := make([][]float32, channels)
	for c := range channels {
		out[c] = make([]float32, frames)
	}

	for f := range frames {
		base := f * channels
		for c := range channels {
			out[c][f] = samples[base+c]
		}
	}

	return out
}

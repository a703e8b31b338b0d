// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
)

const (
	// DefaultSampleRate is CD quality, matching most meditation exports.
	DefaultSampleRate = 44100

	// DefaultFadeDuration is the fade-in/out length, in seconds, used by
	// front-ends when none is given.
	DefaultFadeDuration = 2.0
)

// Synthesizer renders tone buffers at a fixed sample rate.
// It holds no other state and is safe for concurrent use.
type Synthesizer struct {
	sampleRate int
}

// New returns a Synthesizer for sampleRate Hz.
func New(sampleRate int) (*Synthesizer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidParameter, sampleRate)
	}

	return &Synthesizer{sampleRate: sampleRate}, nil
}

// SampleRate returns the configured rate in Hz.
func (s *Synthesizer) SampleRate() int { return s.sampleRate }

// FrameCount converts seconds to frames: round(duration × sample rate).
func (s *Synthesizer) FrameCount(duration float64) int {
	return int(math.Round(duration * float64(s.sampleRate)))
}

// frames validates duration and returns its frame count.
func (s *Synthesizer) frames(duration float64) (int, error) {
	if err := positive("duration", duration); err != nil {
		return 0, err
	}

	n := s.FrameCount(duration)
	if n <= 0 {
		return 0, fmt.Errorf("%w: duration %gs yields no samples at %d Hz", ErrInvalidParameter, duration, s.sampleRate)
	}

	return n, nil
}

// axis maps frame indexes to n evenly spaced instants covering
// [0, duration], both ends included.
type axis struct {
	duration float64
	n        int
	step     float64
}

func newAxis(duration float64, n int) axis {
	a := axis{duration: duration, n: n}
	if n > 1 {
		a.step = duration / float64(n-1)
	}
	return a
}

// at returns the instant of frame i.
func (a axis) at(i int) float64 {
	if a.n > 1 && i == a.n-1 {
		return a.duration
	}
	return float64(i) * a.step
}

func positive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidParameter, name, v)
	}
	return nil
}

func nonNegative(name string, v float64) error {
	if !(v >= 0) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must not be negative, got %g", ErrInvalidParameter, name, v)
	}
	return nil
}

func (s *Synthesizer) buffer(samples []float32, channels int) *Buffer {
	return &Buffer{
		Samples:    samples,
		Channels:   channels,
		SampleRate: s.sampleRate,
	}
}

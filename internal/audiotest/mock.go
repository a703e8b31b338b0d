// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides deterministic audio sources for tests. It does
// not import package audio so that audio's own tests can use it.
package audiotest

import (
	"errors"
	"io"
	"math"
)

// ErrInjected is returned by sources built with FailAfter.
var ErrInjected = errors.New("audiotest: injected read failure")

// MockSource generates frames from a waveform function.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // total frames to generate
	generated  int
	failAfter  int // frames before ErrInjected, -1 disables
	closed     bool
	waveform   func(frame, channel int) float32
}

// NewMockSource creates a source of frames frames; waveform gives the value
// of each frame and channel.
func NewMockSource(sampleRate, channels, frames int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		failAfter:  -1,
		waveform:   waveform,
	}
}

func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 { return value })
}

// NewSineSource plays the same sine on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewBinauralSource is a stereo source with left Hz on channel 0 and right Hz
// on channel 1.
func NewBinauralSource(sampleRate, frames int, left, right float64) *MockSource {
	return NewMockSource(sampleRate, 2, frames, func(frame, channel int) float32 {
		f := left
		if channel == 1 {
			f = right
		}
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * f * t))
	})
}

// FailAfter makes ReadSamples return ErrInjected once frames frames were served.
func (m *MockSource) FailAfter(frames int) *MockSource {
	m.failAfter = frames
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds the source.
func (m *MockSource) Reset() { m.generated = 0 }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.failAfter >= 0 && m.generated >= m.failAfter {
		return 0, ErrInjected
	}
	if m.generated >= m.frames {
		return 0, io.EOF
	}

	count := min(len(dst)/m.channels, m.frames-m.generated)
	if m.failAfter >= 0 {
		count = min(count, m.failAfter-m.generated)
	}

	for f := range count {
		for c := range m.channels {
			dst[f*m.channels+c] = m.waveform(m.generated+f, c)
		}
	}
	m.generated += count

	n := count * m.channels
	if m.generated >= m.frames {
		return n, io.EOF
	}
	return n, nil
}

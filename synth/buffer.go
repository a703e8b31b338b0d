// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"time"

	"github.com/ik5/brainwave/audio"
)

// Buffer is a finished render: interleaved float32 samples, roughly in [-1,1].
// Stereo buffers hold frames as L,R pairs.
type Buffer struct {
	Samples    []float32
	Channels   int
	SampleRate int
}

// Frames returns the number of sample frames.
func (b *Buffer) Frames() int {
	if b.Channels <= 0 {
		return 0
	}
	return len(b.Samples) / b.Channels
}

func (b *Buffer) Stereo() bool { return b.Channels == 2 }

// Duration is the playing time at the buffer's sample rate.
func (b *Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(b.Frames()) / float64(b.SampleRate) * float64(time.Second))
}

// Frame returns a view of frame i; writes go through to the buffer.
func (b *Buffer) Frame(i int) []float32 {
	start := i * b.Channels
	return b.Samples[start : start+b.Channels]
}

// Channel copies one channel out of the interleaved data.
func (b *Buffer) Channel(c int) []float32 {
	frames := b.Frames()
	out := make([]float32, frames)
	for f := range frames {
		out[f] = b.Samples[f*b.Channels+c]
	}
	return out
}

// Peak returns the largest absolute sample value.
func (b *Buffer) Peak() float32 {
	var peak float32
	for _, v := range b.Samples {
		if a := float32(math.Abs(float64(v))); a > peak {
			peak = a
		}
	}
	return peak
}

func (b *Buffer) Clone() *Buffer {
	c := *b
	c.Samples = append([]float32(nil), b.Samples...)
	return &c
}

// Source exposes the buffer as an audio.Source for encoders and the
// resampling pipeline. The samples are shared, not copied.
func (b *Buffer) Source() *audio.MemorySource {
	return audio.NewMemorySource(b.Samples, b.SampleRate, b.Channels)
}

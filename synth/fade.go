// SPDX-License-Identifier: EPL-2.0

package synth

import "fmt"

// fadeFrames converts a fade duration into frames, capped at a quarter of
// the buffer so fade-in and fade-out never overlap.
func (s *Synthesizer) fadeFrames(fadeDuration float64, frames int) int {
	n := s.FrameCount(fadeDuration)
	return min(n, frames/4)
}

// rampGain is the fade-in gain at position i of an n frame ramp running
// linearly from 0 to 1, endpoints included. A one frame ramp is silent.
func rampGain(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	if i == n-1 {
		return 1
	}
	return float64(i) / float64(n-1)
}

// fadeGain is the gain of frame i in a frames long buffer with n frame
// ramps on each side.
func fadeGain(i, frames, n int) float64 {
	switch {
	case i < n:
		return rampGain(i, n)
	case i >= frames-n:
		return rampGain(frames-1-i, n)
	}
	return 1
}

// ApplyFade applies a linear fade-in and fade-out of fadeDuration seconds to
// buf in place. Each side is capped at a quarter of the frames; buffers
// shorter than four frames and a zero fade are left untouched. buf must be at
// the synthesizer's sample rate.
func (s *Synthesizer) ApplyFade(buf *Buffer, fadeDuration float64) error {
	if err := nonNegative("fade duration", fadeDuration); err != nil {
		return err
	}
	if buf == nil || buf.Channels <= 0 {
		return fmt.Errorf("%w: buffer has no channels", ErrInvalidInput)
	}
	if buf.SampleRate != s.sampleRate {
		return fmt.Errorf("%w: buffer is at %d Hz, synthesizer at %d Hz", ErrInvalidInput, buf.SampleRate, s.sampleRate)
	}

	frames := buf.Frames()
	n := s.fadeFrames(fadeDuration, frames)
	if n <= 0 {
		return nil
	}

	ch := buf.Channels
	for i := range n {
		in := rampGain(i, n)
		out := rampGain(n-1-i, n)

		head := i * ch
		tail := (frames - n + i) * ch
		for c := range ch {
			buf.Samples[head+c] = float32(float64(buf.Samples[head+c]) * in)
			buf.Samples[tail+c] = float32(float64(buf.Samples[tail+c]) * out)
		}
	}

	return nil
}

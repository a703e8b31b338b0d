// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// Recommended ranges for binaural beats. Values outside are accepted, they
// just fall outside the intended perceptual effect.
const (
	MinRecommendedBase = 100.0
	MaxRecommendedBase = 400.0
	MinRecommendedBeat = 0.5
	MaxRecommendedBeat = 30.0
)

// Binaural renders a stereo binaural beat: baseFreq in the left ear and
// baseFreq+beatFreq in the right, both starting at phase zero. The result is
// not normalized; each channel stays within [-1,1].
func (s *Synthesizer) Binaural(baseFreq, beatFreq, duration, fadeDuration float64) (*Buffer, error) {
	if err := positive("base frequency", baseFreq); err != nil {
		return nil, err
	}
	if err := positive("beat frequency", beatFreq); err != nil {
		return nil, err
	}
	if err := nonNegative("fade duration", fadeDuration); err != nil {
		return nil, err
	}

	n, err := s.frames(duration)
	if err != nil {
		return nil, err
	}

	ax := newAxis(duration, n)
	fade := s.fadeFrames(fadeDuration, n)
	left := 2 * math.Pi * baseFreq
	right := 2 * math.Pi * (baseFreq + beatFreq)

	out := make([]float32, n*2)
	for i := range n {
		ti := ax.at(i)
		g := fadeGain(i, n, fade)
		out[i<<1] = float32(math.Sin(left*ti) * g)
		out[i<<1+1] = float32(math.Sin(right*ti) * g)
	}

	return s.buffer(out, 2), nil
}

// InRecommendedRange reports whether the pair sits inside the recommended
// binaural ranges.
func InRecommendedRange(baseFreq, beatFreq float64) bool {
	return baseFreq >= MinRecommendedBase && baseFreq <= MaxRecommendedBase &&
		beatFreq >= MinRecommendedBeat && beatFreq <= MaxRecommendedBeat
}

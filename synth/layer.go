// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
)

// Headroom is the peak level a layered mix is normalized to.
const Headroom = 0.9

// Layer is one binaural contributor to a layered mix.
// A zero Amplitude means unspecified and resolves to 1/len(layers).
type Layer struct {
	BaseFrequency float64 `json:"base_frequency"`
	BeatFrequency float64 `json:"beat_frequency"`
	Amplitude     float64 `json:"amplitude,omitempty"`
}

// ResolveLayers validates layers and returns copies with every Amplitude set.
func ResolveLayers(layers []Layer) ([]Layer, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("%w: at least one layer is required", ErrInvalidInput)
	}

	def := 1 / float64(len(layers))
	out := make([]Layer, len(layers))

	for i, l := range layers {
		if err := positive(fmt.Sprintf("layer %d base frequency", i), l.BaseFrequency); err != nil {
			return nil, err
		}
		if err := positive(fmt.Sprintf("layer %d beat frequency", i), l.BeatFrequency); err != nil {
			return nil, err
		}

		switch {
		case l.Amplitude == 0:
			l.Amplitude = def
		case !(l.Amplitude > 0) || math.IsInf(l.Amplitude, 0):
			return nil, fmt.Errorf("%w: layer %d amplitude must be positive, got %g", ErrInvalidParameter, i, l.Amplitude)
		}

		out[i] = l
	}

	return out, nil
}

// Layered sums several binaural layers, normalizes the mix peak to Headroom
// and fades the result once. The mix is computed in two passes, peak first,
// so only the float32 output is allocated. Layers are rendered unfaded so the fade does not
// shift the balance between them.
func (s *Synthesizer) Layered(layers []Layer, duration, fadeDuration float64) (*Buffer, error) {
	resolved, err := ResolveLayers(layers)
	if err != nil {
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
	omegas := make([][2]float64, len(resolved))
	for i, l := range resolved {
		omegas[i] = [2]float64{2 * math.Pi * l.BaseFrequency, 2 * math.Pi * (l.BaseFrequency + l.BeatFrequency)}
	}

	// mix returns frame i of the unscaled sum
	mix := func(i int) (left, right float64) {
		ti := ax.at(i)
		for j, l := range resolved {
			left += math.Sin(omegas[j][0]*ti) * l.Amplitude
			right += math.Sin(omegas[j][1]*ti) * l.Amplitude
		}
		return left, right
	}

	// first pass finds the peak, second writes the output
	var peak float64
	for i := range n {
		l, r := mix(i)
		peak = max(peak, math.Abs(l), math.Abs(r))
	}

	gain := normGain(peak, Headroom)
	fade := s.fadeFrames(fadeDuration, n)

	out := make([]float32, n*2)
	for i := range n {
		l, r := mix(i)
		g := fadeGain(i, n, fade)
		out[i<<1] = float32(l * gain * g)
		out[i<<1+1] = float32(r * gain * g)
	}

	return s.buffer(out, 2), nil
}

// normGain is the gain that brings peak to target. Silence keeps unity gain.
func normGain(peak, target float64) float64 {
	if peak == 0 {
		return 1
	}
	return target / peak
}

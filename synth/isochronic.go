// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
)

// DefaultDutyCycle keeps the tone audible for half of each pulse period.
const DefaultDutyCycle = 0.5

// Isochronic renders a mono carrier at freq gated by pulseRate half-sine
// pulses. Each pulse rises from silence and falls back within the first
// dutyCycle fraction of its period, so there are no hard on/off clicks.
//
// pulseRate must stay below a quarter of the sample rate; closer to the
// sample period the per-sample phase computation aliases.
func (s *Synthesizer) Isochronic(freq, pulseRate, duration, dutyCycle, fadeDuration float64) (*Buffer, error) {
	if err := positive("frequency", freq); err != nil {
		return nil, err
	}
	if err := positive("pulse rate", pulseRate); err != nil {
		return nil, err
	}
	if limit := float64(s.sampleRate) / 4; pulseRate >= limit {
		return nil, fmt.Errorf("%w: pulse rate %g Hz must be below %g Hz at %d Hz sample rate",
			ErrInvalidParameter, pulseRate, limit, s.sampleRate)
	}
	if !(dutyCycle > 0 && dutyCycle <= 1) {
		return nil, fmt.Errorf("%w: duty cycle must be in (0,1], got %g", ErrInvalidParameter, dutyCycle)
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
	period := 1 / pulseRate
	onTime := period * dutyCycle
	omega := 2 * math.Pi * freq

	out := make([]float32, n)
	for i := range n {
		ti := ax.at(i)
		phase := math.Mod(ti, period)
		if phase >= onTime {
			continue
		}
		v := math.Sin(omega*ti) * math.Sin(math.Pi*phase/onTime)
		out[i] = float32(v * fadeGain(i, n, fade))
	}

	return s.buffer(out, 1), nil
}

// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
)

// ToneParameters bundles the inputs shared by the single-tone generators.
// Zero DutyCycle resolves to DefaultDutyCycle and zero Amplitude to 1.
type ToneParameters struct {
	BaseFrequency float64 `json:"base_frequency"`
	// BeatFrequency is the binaural beat or the isochronic pulse rate.
	BeatFrequency float64 `json:"beat_frequency"`
	Duration      float64 `json:"duration"`
	FadeDuration  float64 `json:"fade_duration"`
	DutyCycle     float64 `json:"duty_cycle,omitempty"`
	Amplitude     float64 `json:"amplitude,omitempty"`
}

// Resolved returns a copy with the optional fields filled in.
func (p ToneParameters) Resolved() ToneParameters {
	if p.DutyCycle == 0 {
		p.DutyCycle = DefaultDutyCycle
	}
	if p.Amplitude == 0 {
		p.Amplitude = 1
	}
	return p
}

// BinauralTone renders p as a binaural beat scaled by p.Amplitude.
func (s *Synthesizer) BinauralTone(p ToneParameters) (*Buffer, error) {
	p = p.Resolved()
	if err := checkAmplitude(p.Amplitude); err != nil {
		return nil, err
	}

	buf, err := s.Binaural(p.BaseFrequency, p.BeatFrequency, p.Duration, p.FadeDuration)
	if err != nil {
		return nil, err
	}

	return buf.scaled(p.Amplitude), nil
}

// IsochronicTone renders p as an isochronic tone scaled by p.Amplitude.
func (s *Synthesizer) IsochronicTone(p ToneParameters) (*Buffer, error) {
	p = p.Resolved()
	if err := checkAmplitude(p.Amplitude); err != nil {
		return nil, err
	}

	buf, err := s.Isochronic(p.BaseFrequency, p.BeatFrequency, p.Duration, p.DutyCycle, p.FadeDuration)
	if err != nil {
		return nil, err
	}

	return buf.scaled(p.Amplitude), nil
}

func checkAmplitude(a float64) error {
	if !(a > 0) || math.IsInf(a, 0) {
		return fmt.Errorf("%w: amplitude must be positive, got %g", ErrInvalidParameter, a)
	}
	return nil
}

// scaled multiplies b in place and returns it. Unity gain is a no-op so
// default renders stay bit-identical to the plain generators.
func (b *Buffer) scaled(gain float64) *Buffer {
	if gain == 1 {
		return b
	}
	for i, v := range b.Samples {
		b.Samples[i] = float32(float64(v) * gain)
	}
	return b
}

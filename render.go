// SPDX-License-Identifier: EPL-2.0

package brainwave

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ik5/brainwave/synth"
)

// ToneType selects the generator a Request is rendered with.
type ToneType string

const (
	Binaural   ToneType = "binaural"
	Isochronic ToneType = "isochronic"
	Preset     ToneType = "preset"
	Layered    ToneType = "layered"
)

// ToneTypes lists every ToneType in display order.
var ToneTypes = []ToneType{Binaural, Isochronic, Preset, Layered}

// ErrTooLong is returned by Validate when a render exceeds the allowed
// duration.
var ErrTooLong = errors.New("requested duration exceeds limit")

// ParseToneType is case-insensitive.
func ParseToneType(s string) (ToneType, error) {
	t := ToneType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range ToneTypes {
		if t == known {
			return t, nil
		}
	}

	return "", fmt.Errorf("%w: unknown tone type %q", synth.ErrInvalidParameter, s)
}

func (t *ToneType) UnmarshalText(text []byte) error {
	parsed, err := ParseToneType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Request is a render job. The embedded parameters serve binaural and
// isochronic renders; Preset and Layers use only Duration and FadeDuration
// from it.
type Request struct {
	Type ToneType `json:"tone_type"`
	synth.ToneParameters
	Preset string        `json:"preset,omitempty"`
	Layers []synth.Layer `json:"layers,omitempty"`
}

// NewRequest returns a binaural request with the default parameters.
func NewRequest() Request {
	return Request{
		Type: Binaural,
		ToneParameters: synth.ToneParameters{
			BaseFrequency: 200,
			BeatFrequency: 6,
			Duration:      10,
			FadeDuration:  synth.DefaultFadeDuration,
		},
	}
}

// Validate checks the limits the synthesizer itself does not know about.
// maxDuration is in seconds; zero disables the check.
func (r Request) Validate(maxDuration float64) error {
	if maxDuration > 0 && r.Duration > maxDuration {
		return fmt.Errorf("%w: %gs > %gs", ErrTooLong, r.Duration, maxDuration)
	}

	switch r.Type {
	case Preset:
		if r.Preset == "" {
			return fmt.Errorf("%w: preset name is required", synth.ErrInvalidPreset)
		}
	case Layered:
		if len(r.Layers) == 0 {
			return fmt.Errorf("%w: at least one layer is required", synth.ErrInvalidInput)
		}
	}

	return nil
}

// Band classifies the beat or pulse frequency the request targets. For a
// layered request that is the first layer.
func (r Request) Band() (synth.Band, error) {
	switch r.Type {
	case Preset:
		p, err := synth.LookupPreset(r.Preset)
		if err != nil {
			return 0, err
		}
		return p.Band(), nil
	case Layered:
		if len(r.Layers) == 0 {
			return 0, fmt.Errorf("%w: no layers", synth.ErrInvalidInput)
		}
		return synth.ClassifyBand(r.Layers[0].BeatFrequency), nil
	}

	return synth.ClassifyBand(r.BeatFrequency), nil
}

// Render dispatches req to s. Every failure wraps one of the synth errors.
func Render(s *synth.Synthesizer, req Request) (*synth.Buffer, error) {
	switch req.Type {
	case Binaural:
		return s.BinauralTone(req.ToneParameters)
	case Isochronic:
		return s.IsochronicTone(req.ToneParameters)
	case Preset:
		return s.FromPreset(req.Preset, req.Duration, req.FadeDuration)
	case Layered:
		return s.Layered(req.Layers, req.Duration, req.FadeDuration)
	}

	return nil, fmt.Errorf("%w: unknown tone type %q", synth.ErrInvalidParameter, req.Type)
}

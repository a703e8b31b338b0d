// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"strings"
)

// Preset names a fixed binaural configuration.
type Preset struct {
	Name          string
	BaseFrequency float64
	BeatFrequency float64
	Description   string
}

// Band classifies the preset's beat frequency.
func (p Preset) Band() Band { return ClassifyBand(p.BeatFrequency) }

var presets = [...]Preset{
	{Name: "deep_sleep", BaseFrequency: 150, BeatFrequency: 2.0, Description: "Delta waves for deep sleep"},
	{Name: "meditation", BaseFrequency: 200, BeatFrequency: 6.0, Description: "Theta waves for deep meditation"},
	{Name: "relaxation", BaseFrequency: 200, BeatFrequency: 10.0, Description: "Alpha waves for relaxation"},
	{Name: "focus", BaseFrequency: 250, BeatFrequency: 18.0, Description: "Beta waves for concentration"},
	{Name: "creativity", BaseFrequency: 180, BeatFrequency: 7.5, Description: "Theta-Alpha border for creativity"},
}

// Presets returns the preset table in its fixed order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets[:])
	return out
}

// PresetNames returns the preset names in table order.
func PresetNames() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}

// ListPresets maps each preset name to its description.
func ListPresets() map[string]string {
	out := make(map[string]string, len(presets))
	for _, p := range presets {
		out[p.Name] = p.Description
	}
	return out
}

// LookupPreset finds a preset by exact name.
func LookupPreset(name string) (Preset, error) {
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}

	return Preset{}, fmt.Errorf("%w %q, available: %s", ErrInvalidPreset, name, strings.Join(PresetNames(), ", "))
}

// FromPreset renders the named preset as a binaural beat. Output is identical
// to calling Binaural with the preset's frequencies.
func (s *Synthesizer) FromPreset(name string, duration, fadeDuration float64) (*Buffer, error) {
	p, err := LookupPreset(name)
	if err != nil {
		return nil, err
	}

	return s.Binaural(p.BaseFrequency, p.BeatFrequency, duration, fadeDuration)
}

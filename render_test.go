// SPDX-License-Identifier: EPL-2.0

package brainwave

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"

	"github.com/ik5/brainwave/synth"
)

func newSynth(t *testing.T) *synth.Synthesizer {
	t.Helper()

	s, err := synth.New(8000)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestParseToneType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    ToneType
		wantErr bool
	}{
		{in: "binaural", want: Binaural},
		{in: "Isochronic", want: Isochronic},
		{in: " PRESET ", want: Preset},
		{in: "layered", want: Layered},
		{in: "monaural", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseToneType(tt.in)
		if tt.wantErr {
			if !errors.Is(err, synth.ErrInvalidParameter) {
				t.Errorf("ParseToneType(%q) error = %v, want ErrInvalidParameter", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseToneType(%q) = %q, %v, want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestRender_DispatchesToGenerator(t *testing.T) {
	t.Parallel()

	s := newSynth(t)
	layers := []synth.Layer{{BaseFrequency: 200, BeatFrequency: 6}, {BaseFrequency: 150, BeatFrequency: 2, Amplitude: 0.5}}

	binaural, _ := s.Binaural(220, 8, 1, 0.25)
	iso, _ := s.Isochronic(220, 8, 1, synth.DefaultDutyCycle, 0.25)
	preset, _ := s.FromPreset("focus", 1, 0.25)
	layered, _ := s.Layered(layers, 1, 0.25)

	tests := []struct {
		typ  ToneType
		want *synth.Buffer
	}{
		{Binaural, binaural},
		{Isochronic, iso},
		{Preset, preset},
		{Layered, layered},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			t.Parallel()

			req := NewRequest()
			req.Type = tt.typ
			req.BaseFrequency, req.BeatFrequency = 220, 8
			req.Duration, req.FadeDuration = 1, 0.25
			req.Preset = "focus"
			req.Layers = layers

			got, err := Render(s, req)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if got.Channels != tt.want.Channels || !slices.Equal(got.Samples, tt.want.Samples) {
				t.Errorf("Render(%s) differs from the direct generator call", tt.typ)
			}
		})
	}
}

func TestRender_Errors(t *testing.T) {
	t.Parallel()

	s := newSynth(t)

	tests := []struct {
		name   string
		mutate func(*Request)
		want   error
	}{
		{"unknown type", func(r *Request) { r.Type = "pink" }, synth.ErrInvalidParameter},
		{"zero base", func(r *Request) { r.BaseFrequency = 0 }, synth.ErrInvalidParameter},
		{"negative amplitude", func(r *Request) { r.Amplitude = -1 }, synth.ErrInvalidParameter},
		{"unknown preset", func(r *Request) { r.Type, r.Preset = Preset, "nap" }, synth.ErrInvalidPreset},
		{"no layers", func(r *Request) { r.Type = Layered }, synth.ErrInvalidInput},
	}

	for _, tt := range tests {
		req := NewRequest()
		req.Duration = 1
		tt.mutate(&req)

		if _, err := Render(s, req); !errors.Is(err, tt.want) {
			t.Errorf("%s: Render() error = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestRequest_Validate(t *testing.T) {
	t.Parallel()

	req := NewRequest()
	if err := req.Validate(3600); err != nil {
		t.Errorf("default request: %v", err)
	}

	req.Duration = 3601
	if err := req.Validate(3600); !errors.Is(err, ErrTooLong) {
		t.Errorf("long request error = %v, want ErrTooLong", err)
	}
	if err := req.Validate(0); err != nil {
		t.Errorf("unlimited: %v", err)
	}

	req = NewRequest()
	req.Type = Preset
	if err := req.Validate(0); !errors.Is(err, synth.ErrInvalidPreset) {
		t.Errorf("missing preset error = %v, want ErrInvalidPreset", err)
	}

	req.Type = Layered
	if err := req.Validate(0); !errors.Is(err, synth.ErrInvalidInput) {
		t.Errorf("missing layers error = %v, want ErrInvalidInput", err)
	}
}

func TestRequest_Band(t *testing.T) {
	t.Parallel()

	req := NewRequest()
	if b, err := req.Band(); err != nil || b != synth.Theta {
		t.Errorf("default Band() = %v, %v, want theta", b, err)
	}

	req.Type, req.Preset = Preset, "deep_sleep"
	if b, err := req.Band(); err != nil || b != synth.Delta {
		t.Errorf("deep_sleep Band() = %v, %v, want delta", b, err)
	}

	req.Preset = "nap"
	if _, err := req.Band(); !errors.Is(err, synth.ErrInvalidPreset) {
		t.Errorf("unknown preset Band() error = %v", err)
	}

	req.Type = Layered
	req.Layers = []synth.Layer{{BaseFrequency: 200, BeatFrequency: 20}}
	if b, err := req.Band(); err != nil || b != synth.Beta {
		t.Errorf("layered Band() = %v, %v, want beta", b, err)
	}
}

func TestRequest_JSONKeepsDefaults(t *testing.T) {
	t.Parallel()

	req := NewRequest()
	body := `{"tone_type":"Isochronic","base_frequency":300,"beat_frequency":10,"duty_cycle":0.25}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if req.Type != Isochronic || req.BaseFrequency != 300 || req.BeatFrequency != 10 || req.DutyCycle != 0.25 {
		t.Errorf("decoded request = %+v", req)
	}
	if req.Duration != 10 || req.FadeDuration != synth.DefaultFadeDuration {
		t.Errorf("defaults lost: duration %v, fade %v", req.Duration, req.FadeDuration)
	}

	if err := json.Unmarshal([]byte(`{"tone_type":"noise"}`), &req); err == nil {
		t.Error("Unmarshal() accepted an unknown tone type")
	}
}

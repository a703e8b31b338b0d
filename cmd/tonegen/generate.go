// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ik5/brainwave"
	"github.com/ik5/brainwave/synth"
)

func cmdGenerate(e *env, args []string) error {
	fs := newFlagSet(e, "generate", "")

	var (
		baseFreq   = fs.Float64("base-freq", 200, "carrier frequency in Hz")
		beatFreq   = fs.Float64("beat-freq", 6, "binaural beat or isochronic pulse rate in Hz")
		duration   = fs.Float64("duration", 10, "length in seconds")
		fade       = fs.Float64("fade-duration", e.cfg.FadeDuration.Seconds(), "fade in and out length in seconds")
		sampleRate = fs.Int("sample-rate", e.cfg.SampleRate, "output sample rate in Hz")
		toneType   = fs.String("tone-type", string(brainwave.Binaural), "binaural or isochronic")
		dutyCycle  = fs.Float64("duty-cycle", synth.DefaultDutyCycle, "isochronic pulse on fraction, (0,1]")
		amplitude  = fs.Float64("amplitude", 1, "output gain for binaural and isochronic tones")
		preset     = fs.String("preset", "", "render a preset ("+strings.Join(synth.PresetNames(), ", ")+")")
		layers     = fs.String("layers", "", `layered binaural pairs, "base:beat[:amp],..."`)
		bitDepth   = fs.Int("bit-depth", e.cfg.BitDepth, "16 or 24")
		output     = fs.String("output", "binaural_beat.wav", "output file, .wav or .aiff")
	)

	if err := fs.Parse(args); err != nil {
		return errUsageOr(err)
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return errUsage
	}

	if err := checkPositive(map[string]float64{
		"base-freq": *baseFreq,
		"beat-freq": *beatFreq,
		"duration":  *duration,
	}); err != nil {
		return err
	}

	typ, err := brainwave.ParseToneType(*toneType)
	if err != nil {
		return err
	}

	req := brainwave.NewRequest()
	req.Type = typ
	req.BaseFrequency = *baseFreq
	req.BeatFrequency = *beatFreq
	req.Duration = *duration
	req.FadeDuration = *fade
	req.DutyCycle = *dutyCycle
	req.Amplitude = *amplitude

	switch {
	case *preset != "":
		req.Type = brainwave.Preset
		req.Preset = *preset
	case *layers != "":
		req.Type = brainwave.Layered
		if req.Layers, err = parseLayers(*layers); err != nil {
			return err
		}
	}

	if err := req.Validate(0); err != nil {
		return err
	}

	if req.Type == brainwave.Binaural && !synth.InRecommendedRange(req.BaseFrequency, req.BeatFrequency) {
		e.logger.Warn("outside the recommended binaural range",
			zap.Float64("base_freq", req.BaseFrequency),
			zap.Float64("beat_freq", req.BeatFrequency),
		)
	}

	s, err := synth.New(*sampleRate)
	if err != nil {
		return err
	}

	start := time.Now()
	buf, err := brainwave.Render(s, req)
	if err != nil {
		return err
	}

	if err := brainwave.WriteFile(*output, buf, *bitDepth); err != nil {
		return err
	}

	band, _ := req.Band()
	e.logger.Info("rendered",
		zap.String("tone_type", string(req.Type)),
		zap.String("output", *output),
		zap.Stringer("band", band),
		zap.Duration("audio", buf.Duration()),
		zap.Duration("elapsed", time.Since(start)),
	)

	fmt.Fprintf(e.stdout, "Generated %s tone: %s (%gs, %d Hz, %s band)\n",
		req.Type, *output, req.Duration, buf.SampleRate, band)

	return nil
}

// parseLayers reads "base:beat[:amp]" pairs separated by commas.
func parseLayers(s string) ([]synth.Layer, error) {
	var out []synth.Layer

	for item := range strings.SplitSeq(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		parts := strings.Split(item, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("%w: layer %q, want base:beat[:amp]", synth.ErrInvalidInput, item)
		}

		vals := make([]float64, len(parts))
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: layer %q: %w", synth.ErrInvalidInput, item, err)
			}
			vals[i] = v
		}

		l := synth.Layer{BaseFrequency: vals[0], BeatFrequency: vals[1]}
		if len(vals) == 3 {
			l.Amplitude = vals[2]
		}
		out = append(out, l)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no layers in %q", synth.ErrInvalidInput, s)
	}
	return out, nil
}

func checkPositive(values map[string]float64) error {
	var errs []error
	for _, name := range []string{"base-freq", "beat-freq", "duration"} {
		if v, ok := values[name]; ok && !(v > 0) {
			errs = append(errs, fmt.Errorf("-%s must be positive, got %g", name, v))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", synth.ErrInvalidParameter, errors.Join(errs...))
	}
	return nil
}

func errUsageOr(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %w", errUsage, err)
}

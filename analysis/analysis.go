// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/ik5/brainwave/audio"
	"github.com/ik5/brainwave/synth"
)

// Pulse rates searched for in mono material, in Hz.
const (
	MinPulseRate = 0.5
	MaxPulseRate = 40.0
)

var ErrEmptySource = errors.New("source produced no samples")

// ChannelReport describes one channel.
type ChannelReport struct {
	DominantFrequency float64 `json:"dominant_frequency"`
	Peak              float64 `json:"peak"`
	RMS               float64 `json:"rms"`
}

// Report summarizes a render. For stereo input BeatFrequency is the gap
// between the two channel carriers; for mono input PulseRate is the strongest
// amplitude modulation between MinPulseRate and MaxPulseRate. Band classifies
// whichever of the two applies.
type Report struct {
	SampleRate    int             `json:"sample_rate"`
	Frames        int             `json:"frames"`
	Duration      time.Duration   `json:"duration"`
	Peak          float64         `json:"peak"`
	RMS           float64         `json:"rms"`
	Channels      []ChannelReport `json:"channels"`
	BeatFrequency float64         `json:"beat_frequency,omitempty"`
	PulseRate     float64         `json:"pulse_rate,omitempty"`
	Band          synth.Band      `json:"band"`
}

// Analyze drains src and reports on its content.
func Analyze(src audio.Source) (*Report, error) {
	samples, err := audio.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}
	if len(samples) == 0 {
		return nil, ErrEmptySource
	}

	rate := src.SampleRate()
	chans := audio.ChannelSplit(samples, src.Channels())
	frames := len(chans[0])

	r := &Report{
		SampleRate: rate,
		Frames:     frames,
		Duration:   time.Duration(float64(frames) / float64(rate) * float64(time.Second)),
		Channels:   make([]ChannelReport, len(chans)),
	}

	var sumSq float64
	for i, ch := range chans {
		peak, ss := levels(ch)
		sumSq += ss
		r.Peak = math.Max(r.Peak, peak)
		r.Channels[i] = ChannelReport{
			DominantFrequency: DominantFrequency(ch, rate),
			Peak:              peak,
			RMS:               math.Sqrt(ss / float64(max(1, len(ch)))),
		}
	}
	r.RMS = math.Sqrt(sumSq / float64(len(samples)))

	if len(chans) >= 2 {
		r.BeatFrequency = math.Abs(r.Channels[1].DominantFrequency - r.Channels[0].DominantFrequency)
		r.Band = synth.ClassifyBand(r.BeatFrequency)
		return r, nil
	}

	r.PulseRate = PulseRate(chans[0], rate)
	r.Band = synth.ClassifyBand(r.PulseRate)

	return r, nil
}

// PulseRate estimates the amplitude modulation rate of a mono signal from the
// spectrum of its rectified envelope.
func PulseRate(samples []float32, sampleRate int) float64 {
	if len(samples) == 0 {
		return 0
	}

	env := make([]float32, len(samples))
	var mean float64
	for i, v := range samples {
		a := float32(math.Abs(float64(v)))
		env[i] = a
		mean += float64(a)
	}
	mean /= float64(len(env))

	for i := range env {
		env[i] -= float32(mean)
	}

	return DominantFrequencyInRange(env, sampleRate, MinPulseRate, MaxPulseRate)
}

func levels(ch []float32) (peak, sumSq float64) {
	for _, v := range ch {
		f := float64(v)
		if a := math.Abs(f); a > peak {
			peak = a
		}
		sumSq += f * f
	}
	return peak, sumSq
}

// SPDX-License-Identifier: EPL-2.0

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Gauges
var (
	RendersInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tonegen_renders_in_flight",
		Help: "Renders currently being synthesized or written",
	})
)

// Counters
var (
	RendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tonegen_renders_total",
		Help: "Render requests by tone type and outcome",
	}, []string{"tone_type", "outcome"})

	RenderedAudioSeconds = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tonegen_rendered_audio_seconds_total",
		Help: "Seconds of audio rendered, by brainwave band",
	}, []string{"band"})

	RenderedBytes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tonegen_rendered_bytes_total",
		Help: "WAV bytes written to clients",
	})
)

// Histograms
var (
	RenderLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tonegen_render_duration_seconds",
		Help:    "Wall time to synthesize a render, by tone type",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"tone_type"})
)

// ObserveRender records a finished render. band may be empty when the
// request was rejected before it could be classified.
func ObserveRender(toneType, outcome, band string, elapsed, audio time.Duration) {
	RendersTotal.WithLabelValues(toneType, outcome).Inc()
	if outcome != OutcomeOK {
		return
	}

	RenderLatency.WithLabelValues(toneType).Observe(elapsed.Seconds())
	if band != "" {
		RenderedAudioSeconds.WithLabelValues(band).Add(audio.Seconds())
	}
}

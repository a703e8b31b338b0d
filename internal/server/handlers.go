// SPDX-License-Identifier: EPL-2.0

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ik5/brainwave"
	"github.com/ik5/brainwave/formats/wav"
	"github.com/ik5/brainwave/internal/metrics"
	"github.com/ik5/brainwave/synth"
)

type presetView struct {
	Name          string     `json:"name"`
	BaseFrequency float64    `json:"base_frequency"`
	BeatFrequency float64    `json:"beat_frequency"`
	Description   string     `json:"description"`
	Band          synth.Band `json:"band"`
}

type bandView struct {
	Frequency   float64    `json:"frequency"`
	Band        synth.Band `json:"band"`
	Description string     `json:"description"`
}

type errorView struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListPresets handles GET /v1/presets.
func (s *Server) ListPresets(w http.ResponseWriter, r *http.Request) {
	presets := synth.Presets()
	out := make([]presetView, 0, len(presets))
	for _, p := range presets {
		out = append(out, presetView{
			Name:          p.Name,
			BaseFrequency: p.BaseFrequency,
			BeatFrequency: p.BeatFrequency,
			Description:   p.Description,
			Band:          p.Band(),
		})
	}

	writeJSON(w, http.StatusOK, out)
}

// ClassifyBand handles GET /v1/bands/{freq}.
func (s *Server) ClassifyBand(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "freq")
	freq, err := strconv.ParseFloat(raw, 64)
	if err != nil || !(freq > 0) || freq > 1e6 {
		s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("%w: frequency %q", synth.ErrInvalidParameter, raw))
		return
	}

	band := synth.ClassifyBand(freq)
	writeJSON(w, http.StatusOK, bandView{
		Frequency:   freq,
		Band:        band,
		Description: band.Description(),
	})
}

// Render handles POST /v1/render. The body is a brainwave.Request; omitted
// fields keep their defaults and the sample rate comes from configuration.
// The response is a 16-bit PCM WAV file.
func (s *Server) Render(w http.ResponseWriter, r *http.Request) {
	req := brainwave.NewRequest()
	req.FadeDuration = s.cfg.FadeDuration.Seconds()

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		metrics.ObserveRender(string(req.Type), metrics.OutcomeRejected, "", 0, 0)
		s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}

	if err := req.Validate(s.cfg.MaxDuration.Seconds()); err != nil {
		metrics.ObserveRender(string(req.Type), metrics.OutcomeRejected, "", 0, 0)
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	metrics.RendersInFlight.Inc()
	defer metrics.RendersInFlight.Dec()

	start := time.Now()
	buf, err := brainwave.Render(s.synth, req)
	elapsed := time.Since(start)
	if err != nil {
		status, outcome := http.StatusInternalServerError, metrics.OutcomeFailed
		if isClientError(err) {
			status, outcome = http.StatusBadRequest, metrics.OutcomeRejected
		}
		metrics.ObserveRender(string(req.Type), outcome, "", elapsed, 0)
		s.writeError(w, r, status, err)
		return
	}

	band, _ := req.Band()
	metrics.ObserveRender(string(req.Type), metrics.OutcomeOK, band.String(), elapsed, buf.Duration())

	s.logger.Debug("rendered",
		zap.String("request_id", RequestIDFrom(r.Context())),
		zap.String("tone_type", string(req.Type)),
		zap.Stringer("band", band),
		zap.Duration("audio", buf.Duration()),
		zap.Duration("elapsed", elapsed),
	)

	pcm := brainwave.Int16(buf)
	size := 44 + 2*len(pcm)

	w.Header().Set("Content-Type", "audio/wav")
	w.Header().Set("Content-Length", strconv.Itoa(size))
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.wav"`, req.Type))
	w.Header().Set(BandHeader, band.String())
	w.WriteHeader(http.StatusOK)

	if err := wav.WriteWAV16(w, buf.SampleRate, buf.Channels, pcm); err != nil {
		// headers are gone; the client sees a short body
		s.logger.Warn("render write failed",
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.Error(err),
		)
		return
	}
	metrics.RenderedBytes.Add(float64(size))
}

func isClientError(err error) bool {
	return errors.Is(err, synth.ErrInvalidParameter) ||
		errors.Is(err, synth.ErrInvalidPreset) ||
		errors.Is(err, synth.ErrInvalidInput) ||
		errors.Is(err, brainwave.ErrTooLong)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	id := RequestIDFrom(r.Context())
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("request_id", id), zap.Error(err))
	}

	writeJSON(w, status, errorView{Error: err.Error(), RequestID: id})
}

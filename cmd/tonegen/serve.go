// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/ik5/brainwave/internal/server"
)

func cmdServe(e *env, args []string) error {
	fs := newFlagSet(e, "serve", "")
	addr := fs.String("addr", e.cfg.ListenAddr, "listen address")
	sampleRate := fs.Int("sample-rate", e.cfg.SampleRate, "render sample rate in Hz")
	maxDuration := fs.Duration("max-duration", e.cfg.MaxDuration, "longest render accepted")
	if err := fs.Parse(args); err != nil {
		return errUsageOr(err)
	}

	cfg := e.cfg
	cfg.ListenAddr = *addr
	cfg.SampleRate = *sampleRate
	cfg.MaxDuration = *maxDuration

	srv, err := server.New(cfg, e.logger)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	e.logger.Info("tonegen serve starting",
		zap.String("addr", cfg.ListenAddr),
		zap.Int("sample_rate", cfg.SampleRate),
		zap.Duration("max_duration", cfg.MaxDuration),
		zap.Strings("cors_origins", cfg.CORSOrigins),
	)

	return srv.ListenAndServe(ctx)
}

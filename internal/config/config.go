// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the runtime settings shared by the CLI and the render service.
type Config struct {
	SampleRate   int
	BitDepth     int
	FadeDuration time.Duration
	MaxDuration  time.Duration // longest render the service accepts

	ListenAddr     string
	CORSOrigins    []string
	LogDevelopment bool
}

// Load reads configuration from TONEGEN_* environment variables. Values that
// do not parse fall back to the default.
func Load() Config {
	return Config{
		SampleRate:   envInt("TONEGEN_SAMPLE_RATE", 44100),
		BitDepth:     envInt("TONEGEN_BIT_DEPTH", 16),
		FadeDuration: envDuration("TONEGEN_FADE_DURATION", 2*time.Second),
		MaxDuration:  envDuration("TONEGEN_MAX_DURATION", 30*time.Minute),

		ListenAddr:     getEnv("TONEGEN_LISTEN_ADDR", ":8088"),
		CORSOrigins:    envList("TONEGEN_CORS_ORIGINS", []string{"*"}),
		LogDevelopment: envBool("TONEGEN_LOG_DEVELOPMENT", false),
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error

	if c.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("sample rate must be positive, got %d", c.SampleRate))
	}
	if c.BitDepth != 16 && c.BitDepth != 24 {
		errs = append(errs, fmt.Errorf("bit depth must be 16 or 24, got %d", c.BitDepth))
	}
	if c.FadeDuration < 0 {
		errs = append(errs, fmt.Errorf("fade duration must not be negative, got %v", c.FadeDuration))
	}
	if c.MaxDuration <= 0 {
		errs = append(errs, fmt.Errorf("max duration must be positive, got %v", c.MaxDuration))
	}
	if c.ListenAddr == "" {
		errs = append(errs, errors.New("listen address is empty"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// envDuration accepts Go durations ("90s", "1h") or plain seconds ("3600").
func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return time.Duration(f * float64(time.Second))
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

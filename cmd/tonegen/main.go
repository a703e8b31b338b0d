// SPDX-License-Identifier: EPL-2.0

// Command tonegen renders binaural beats and isochronic tones to WAV or AIFF,
// inspects audio files and serves renders over HTTP.
//
//	tonegen generate -base-freq 200 -beat-freq 6 -duration 600 -output theta.wav
//	tonegen generate -preset deep_sleep -duration 1800 -output sleep.aiff
//	tonegen generate -layers 200:6,150:2:0.3 -duration 600
//	tonegen presets
//	tonegen bands 7.5 12
//	tonegen analyze theta.wav
//	tonegen convert -rate 8000 theta.wav theta-8k.wav
//	tonegen serve
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/ik5/brainwave/internal/config"
)

var errUsage = errors.New("usage")

type command struct {
	name    string
	summary string
	run     func(env *env, args []string) error
}

// env is what every subcommand runs against.
type env struct {
	cfg    config.Config
	logger *zap.Logger
	stdout io.Writer
	stderr io.Writer
}

var commands = []command{
	{"generate", "render a tone to a WAV or AIFF file", cmdGenerate},
	{"presets", "list the built-in presets", cmdPresets},
	{"bands", "list the brainwave bands or classify frequencies", cmdBands},
	{"analyze", "report frequencies, beat and band of an audio file", cmdAnalyze},
	{"convert", "resample a file to mono 16-bit WAV", cmdConvert},
	{"serve", "run the HTTP render service", cmdServe},
}

func main() {
	cfg := config.Load()

	newLogger := zap.NewProduction
	if cfg.LogDevelopment {
		newLogger = zap.NewDevelopment
	}
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	e := &env{cfg: cfg, logger: logger, stdout: os.Stdout, stderr: os.Stderr}

	if err := run(e, os.Args[1:]); err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, flag.ErrHelp) {
			logger.Error("command failed", zap.Error(err))
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		logger.Sync()
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		return 2
	}
	return 1
}

func run(e *env, args []string) error {
	if len(args) == 0 {
		usage(e.stderr)
		return errUsage
	}

	for _, c := range commands {
		if c.name == args[0] {
			return c.run(e, args[1:])
		}
	}

	if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		usage(e.stdout)
		return nil
	}

	fmt.Fprintf(e.stderr, "unknown command %q\n\n", args[0])
	usage(e.stderr)
	return errUsage
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: tonegen <command> [flags] [args]")
	fmt.Fprintln(w)
	for _, c := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", c.name, c.summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, `Run "tonegen <command> -h" for the flags of a command.`)
}

func newFlagSet(e *env, name, args string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: tonegen %s [flags] %s\n", name, args)
		fs.PrintDefaults()
	}
	return fs
}

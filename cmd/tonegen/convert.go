// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ik5/brainwave"
	"github.com/ik5/brainwave/formats/wav"
)

func cmdConvert(e *env, args []string) (err error) {
	fs := newFlagSet(e, "convert", "IN OUT.wav")
	rate := fs.Int("rate", 8000, "output sample rate in Hz")
	bufSize := fs.Int("buffer", 4096, "read size in samples")
	if err := fs.Parse(args); err != nil {
		return errUsageOr(err)
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return errUsage
	}
	if *rate <= 0 {
		return fmt.Errorf("%w: -rate must be positive", errUsage)
	}
	in, out := fs.Arg(0), fs.Arg(1)

	src, closeSrc, err := openSource(in)
	if err != nil {
		return err
	}
	defer closeSrc()

	pcm, err := brainwave.Mono16(src, *rate, *bufSize)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w", cerr)
		}
	}()

	if err := wav.WriteWAV16(f, *rate, 1, pcm); err != nil {
		return err
	}

	e.logger.Info("converted",
		zap.String("input", in),
		zap.String("output", out),
		zap.Int("rate", *rate),
		zap.Int("samples", len(pcm)),
	)
	fmt.Fprintf(e.stdout, "Wrote %s: %d samples, mono, %d Hz\n", out, len(pcm), *rate)

	return nil
}

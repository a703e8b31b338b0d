// SPDX-License-Identifier: EPL-2.0

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ik5/brainwave"
	"github.com/ik5/brainwave/analysis"
	"github.com/ik5/brainwave/audio"
)

// openSource decodes path with the decoder matching its extension. The
// returned close func releases both the decoder and the file.
func openSource(path string) (audio.Source, func(), error) {
	dec, err := brainwave.Decoders().ForPath(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w", err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	return src, func() {
		src.Close()
		f.Close()
	}, nil
}

func cmdAnalyze(e *env, args []string) error {
	fs := newFlagSet(e, "analyze", "FILE")
	asJSON := fs.Bool("json", false, "print the report as JSON")
	if err := fs.Parse(args); err != nil {
		return errUsageOr(err)
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}
	path := fs.Arg(0)

	src, closeSrc, err := openSource(path)
	if err != nil {
		return err
	}
	defer closeSrc()

	report, err := analysis.Analyze(src)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	e.logger.Debug("analyzed",
		zap.String("path", path),
		zap.Int("frames", report.Frames),
		zap.Stringer("band", report.Band),
	)

	if *asJSON {
		enc := json.NewEncoder(e.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Fprintf(e.stdout, "File:        %s\n", path)
	fmt.Fprintf(e.stdout, "Format:      %d Hz, %d channel(s), %v\n", report.SampleRate, len(report.Channels), report.Duration)
	fmt.Fprintf(e.stdout, "Level:       peak %.3f, rms %.3f\n", report.Peak, report.RMS)
	for i, ch := range report.Channels {
		fmt.Fprintf(e.stdout, "Channel %d:   %.2f Hz\n", i, ch.DominantFrequency)
	}
	if len(report.Channels) >= 2 {
		fmt.Fprintf(e.stdout, "Beat:        %.2f Hz (%s)\n", report.BeatFrequency, report.Band)
	} else {
		fmt.Fprintf(e.stdout, "Pulse rate:  %.2f Hz (%s)\n", report.PulseRate, report.Band)
	}

	return nil
}

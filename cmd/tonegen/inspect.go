// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/ik5/brainwave/synth"
)

func cmdPresets(e *env, args []string) error {
	fs := newFlagSet(e, "presets", "")
	if err := fs.Parse(args); err != nil {
		return errUsageOr(err)
	}

	tw := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tBASE\tBEAT\tBAND\tDESCRIPTION")
	for _, p := range synth.Presets() {
		fmt.Fprintf(tw, "%s\t%g Hz\t%g Hz\t%s\t%s\n", p.Name, p.BaseFrequency, p.BeatFrequency, p.Band(), p.Description)
	}
	return tw.Flush()
}

func cmdBands(e *env, args []string) error {
	fs := newFlagSet(e, "bands", "[FREQ...]")
	if err := fs.Parse(args); err != nil {
		return errUsageOr(err)
	}

	tw := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)

	if fs.NArg() == 0 {
		fmt.Fprintln(tw, "BAND\tRANGE\tDESCRIPTION")
		for _, b := range []synth.Band{synth.Delta, synth.Theta, synth.Alpha, synth.Beta} {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", b, bandRange(b), b.Description())
		}
		return tw.Flush()
	}

	for _, arg := range fs.Args() {
		freq, err := strconv.ParseFloat(arg, 64)
		if err != nil || !(freq > 0) {
			return fmt.Errorf("%w: frequency %q", synth.ErrInvalidParameter, arg)
		}
		b := synth.ClassifyBand(freq)
		fmt.Fprintf(tw, "%g Hz\t%s\t%s\n", freq, b, b.Description())
	}
	return tw.Flush()
}

func bandRange(b synth.Band) string {
	lo, hi := b.Range()
	if math.IsInf(hi, 1) {
		return fmt.Sprintf(">= %g Hz", lo)
	}
	return fmt.Sprintf("%g-%g Hz", lo, hi)
}

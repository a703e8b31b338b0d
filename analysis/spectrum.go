// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// MaxWindow caps the number of frames fed to a single FFT. At 44.1 kHz it
// covers about 12 seconds, which resolves frequencies to under 0.1 Hz.
const MaxWindow = 1 << 19

// DominantFrequency returns the frequency in Hz of the strongest spectral
// peak in samples, ignoring DC. It returns 0 for fewer than 4 samples.
func DominantFrequency(samples []float32, sampleRate int) float64 {
	return DominantFrequencyInRange(samples, sampleRate, 0, math.Inf(1))
}

// DominantFrequencyInRange is DominantFrequency restricted to [lo, hi] Hz.
func DominantFrequencyInRange(samples []float32, sampleRate int, lo, hi float64) float64 {
	seq := window(samples)
	n := len(seq)
	if n < 4 || sampleRate <= 0 {
		return 0
	}

	fft := fourier.NewFFT(n)
	coeff := fft.Coefficients(nil, seq)

	binHz := float64(sampleRate) / float64(n)
	first := max(1, int(math.Ceil(lo/binHz)))
	last := len(coeff) - 2
	if !math.IsInf(hi, 1) {
		last = min(last, int(math.Floor(hi/binHz)))
	}
	if first > last {
		return 0
	}

	best := first
	bestMag := cmplx.Abs(coeff[first])
	for k := first + 1; k <= last; k++ {
		if m := cmplx.Abs(coeff[k]); m > bestMag {
			best, bestMag = k, m
		}
	}
	if bestMag == 0 {
		return 0
	}

	return (float64(best) + interpolate(coeff, best)) * binHz
}

// window takes at most MaxWindow samples from the middle of samples, which
// keeps fades out of the estimate, and applies a Hann taper.
func window(samples []float32) []float64 {
	n := len(samples)
	start := 0
	if n > MaxWindow {
		start = (n - MaxWindow) / 2
		n = MaxWindow
	}

	seq := make([]float64, n)
	if n < 2 {
		return seq
	}

	for i := range n {
		w := 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
		seq[i] = float64(samples[start+i]) * w
	}

	return seq
}

// interpolate refines peak bin k with a parabola through the log magnitudes
// of its neighbours, returning an offset in (-0.5, 0.5).
func interpolate(coeff []complex128, k int) float64 {
	if k <= 0 || k >= len(coeff)-1 {
		return 0
	}

	a := logMag(coeff[k-1])
	b := logMag(coeff[k])
	c := logMag(coeff[k+1])

	den := a - 2*b + c
	if den == 0 {
		return 0
	}

	d := 0.5 * (a - c) / den
	return math.Max(-0.5, math.Min(0.5, d))
}

func logMag(c complex128) float64 {
	return math.Log(cmplx.Abs(c) + 1e-12)
}

// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"errors"
	"io"
	"slices"
	"testing"
	"time"
)

func TestNew_InvalidSampleRate(t *testing.T) {
	t.Parallel()

	for _, rate := range []int{0, -44100} {
		if _, err := New(rate); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("New(%d) error = %v, want ErrInvalidParameter", rate, err)
		}
	}
}

func TestAxis(t *testing.T) {
	t.Parallel()

	ax := newAxis(2, 5)
	var got []float64
	for i := range 5 {
		got = append(got, ax.at(i))
	}
	if want := []float64{0, 0.5, 1, 1.5, 2}; !slices.Equal(got, want) {
		t.Errorf("newAxis(2, 5) = %v, want %v", got, want)
	}

	if v := newAxis(3, 1).at(0); v != 0 {
		t.Errorf("newAxis(3, 1).at(0) = %v, want 0", v)
	}

	// last instant is exactly the duration, not an accumulated step
	if v := newAxis(0.3, 7).at(6); v != 0.3 {
		t.Errorf("newAxis(0.3, 7).at(6) = %v, want 0.3", v)
	}
}

func TestBuffer_Accessors(t *testing.T) {
	t.Parallel()

	buf := &Buffer{
		Samples:    []float32{0.1, -0.2, 0.3, -0.9, 0.5, 0.6},
		Channels:   2,
		SampleRate: 3,
	}

	if buf.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", buf.Frames())
	}
	if !buf.Stereo() {
		t.Error("Stereo() = false, want true")
	}
	if buf.Duration() != time.Second {
		t.Errorf("Duration() = %v, want 1s", buf.Duration())
	}
	if p := buf.Peak(); p != 0.9 {
		t.Errorf("Peak() = %v, want 0.9", p)
	}
	if r := buf.Channel(1); !slices.Equal(r, []float32{-0.2, -0.9, 0.6}) {
		t.Errorf("Channel(1) = %v", r)
	}

	c := buf.Clone()
	c.Samples[0] = 1
	if buf.Samples[0] == 1 {
		t.Error("Clone() shares sample storage")
	}
}

func TestBuffer_Source(t *testing.T) {
	t.Parallel()

	s := newTestSynth(t, 8000)
	buf, err := s.Binaural(200, 6, 0.1, 0)
	if err != nil {
		t.Fatalf("Binaural() error = %v", err)
	}

	src := buf.Source()
	if src.SampleRate() != 8000 || src.Channels() != 2 {
		t.Fatalf("Source() = %d Hz x %d, want 8000 Hz x 2", src.SampleRate(), src.Channels())
	}

	var got []float32
	chunk := make([]float32, 64)
	for {
		n, err := src.ReadSamples(chunk)
		got = append(got, chunk[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if !slices.Equal(got, buf.Samples) {
		t.Error("Source() did not reproduce the buffer")
	}
}

func TestToneParameters_Defaults(t *testing.T) {
	t.Parallel()

	s := newTestSynth(t, 8000)
	p := ToneParameters{BaseFrequency: 300, BeatFrequency: 10, Duration: 1, FadeDuration: 0.1}

	iso, err := s.IsochronicTone(p)
	if err != nil {
		t.Fatalf("IsochronicTone() error = %v", err)
	}
	ref, _ := s.Isochronic(300, 10, 1, DefaultDutyCycle, 0.1)
	if !slices.Equal(iso.Samples, ref.Samples) {
		t.Error("IsochronicTone() with defaults differs from Isochronic()")
	}

	bin, err := s.BinauralTone(p)
	if err != nil {
		t.Fatalf("BinauralTone() error = %v", err)
	}
	refB, _ := s.Binaural(300, 10, 1, 0.1)
	if !slices.Equal(bin.Samples, refB.Samples) {
		t.Error("BinauralTone() with defaults differs from Binaural()")
	}
}

func TestToneParameters_Amplitude(t *testing.T) {
	t.Parallel()

	s := newTestSynth(t, 8000)
	p := ToneParameters{BaseFrequency: 200, BeatFrequency: 6, Duration: 0.5, Amplitude: 0.5}

	half, err := s.BinauralTone(p)
	if err != nil {
		t.Fatalf("BinauralTone() error = %v", err)
	}
	full, _ := s.Binaural(200, 6, 0.5, 0)
	for i := range full.Samples {
		if half.Samples[i] != float32(float64(full.Samples[i])*0.5) {
			t.Fatalf("sample %d = %v, want half of %v", i, half.Samples[i], full.Samples[i])
		}
	}

	p.Amplitude = -1
	if _, err := s.BinauralTone(p); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("BinauralTone(amplitude=-1) error = %v, want ErrInvalidParameter", err)
	}
}

func TestSynthesizer_ConcurrentUse(t *testing.T) {
	t.Parallel()

	s := newTestSynth(t, 8000)
	ref, _ := s.FromPreset("focus", 0.5, 0.1)

	done := make(chan []float32)
	for range 8 {
		go func() {
			buf, err := s.FromPreset("focus", 0.5, 0.1)
			if err != nil {
				done <- nil
				return
			}
			done <- buf.Samples
		}()
	}

	for range 8 {
		if got := <-done; !slices.Equal(got, ref.Samples) {
			t.Error("concurrent render differs from the reference")
		}
	}
}

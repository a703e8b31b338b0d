// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/ik5/brainwave/internal/audiotest"
)

func TestMemorySource_ReadsInChunks(t *testing.T) {
	t.Parallel()

	samples := []float32{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9}
	src := NewMemorySource(samples, 8000, 2)

	dst := make([]float32, 4)

	n, err := src.ReadSamples(dst)
	if n != 4 || err != nil {
		t.Fatalf("first read = %d, %v, want 4, nil", n, err)
	}
	if src.Len() != 6 {
		t.Errorf("Len() = %d, want 6", src.Len())
	}

	n, err = src.ReadSamples(dst)
	if n != 4 || err != nil {
		t.Fatalf("second read = %d, %v, want 4, nil", n, err)
	}

	n, err = src.ReadSamples(dst)
	if n != 2 || err != io.EOF {
		t.Fatalf("third read = %d, %v, want 2, EOF", n, err)
	}
	if !slices.Equal(dst[:2], []float32{0.8, 0.9}) {
		t.Errorf("tail = %v", dst[:2])
	}

	n, err = src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("read after end = %d, %v, want 0, EOF", n, err)
	}

	src.Rewind()
	if src.Len() != len(samples) {
		t.Errorf("Len() after Rewind = %d, want %d", src.Len(), len(samples))
	}
}

func TestMemorySource_InvalidDst(t *testing.T) {
	t.Parallel()

	src := NewMemorySource(make([]float32, 8), 8000, 2)
	if _, err := src.ReadSamples(make([]float32, 3)); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples(3) error = %v, want ErrInvalidDstSize", err)
	}

	bad := NewMemorySource(make([]float32, 8), 8000, 0)
	if _, err := bad.ReadSamples(make([]float32, 4)); !errors.Is(err, ErrInvalidChannels) {
		t.Errorf("zero channels error = %v, want ErrInvalidChannels", err)
	}
}

func TestReadAll(t *testing.T) {
	t.Parallel()

	src := audiotest.NewBinauralSource(8000, 10000, 200, 206)
	got, err := ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(got) != 20000 {
		t.Errorf("len = %d, want 20000", len(got))
	}
}

func TestReadAll_PropagatesErrors(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(8000, 1, 10000, 440).FailAfter(5000)
	if _, err := ReadAll(src); !errors.Is(err, audiotest.ErrInjected) {
		t.Errorf("ReadAll() error = %v, want ErrInjected", err)
	}
}

func TestChannelSplit(t *testing.T) {
	t.Parallel()

	got := ChannelSplit([]float32{1, -1, 2, -2, 3, -3, 4}, 2)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if !slices.Equal(got[0], []float32{1, 2, 3}) || !slices.Equal(got[1], []float32{-1, -2, -3}) {
		t.Errorf("ChannelSplit() = %v", got)
	}

	if ChannelSplit([]float32{1}, 0) != nil {
		t.Error("ChannelSplit(channels=0) should be nil")
	}
}

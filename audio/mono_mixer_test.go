// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/brainwave/internal/audiotest"
)

func TestMonoMixer_Averages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		values   []float32
		want     float32
	}{
		{name: "mono passthrough", channels: 1, values: []float32{0.3}, want: 0.3},
		{name: "stereo", channels: 2, values: []float32{0.2, -0.4}, want: -0.1},
		{name: "opposite phase cancels", channels: 2, values: []float32{0.8, -0.8}, want: 0},
		{name: "four channels", channels: 4, values: []float32{1, 0.5, 0, -0.5}, want: 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewMockSource(8000, tt.channels, 100, func(_, c int) float32 {
				return tt.values[c]
			})
			m := NewMonoMixer(src)
			if m.Channels() != 1 || m.SampleRate() != 8000 {
				t.Fatalf("MonoMixer = %d Hz x %d", m.SampleRate(), m.Channels())
			}

			out, err := ReadAll(m)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if len(out) != 100 {
				t.Fatalf("len = %d, want 100", len(out))
			}
			for i, v := range out {
				if math.Abs(float64(v-tt.want)) > 1e-6 {
					t.Fatalf("out[%d] = %v, want %v", i, v, tt.want)
				}
			}
		})
	}
}

func TestMonoMixer_EmptyDst(t *testing.T) {
	t.Parallel()

	m := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 10))
	if n, err := m.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v, want 0, nil", n, err)
	}
}

func TestMonoMixer_Errors(t *testing.T) {
	t.Parallel()

	bad := NewMonoMixer(audiotest.NewSilentSource(8000, 0, 10))
	if _, err := bad.ReadSamples(make([]float32, 4)); !errors.Is(err, ErrInvalidChannels) {
		t.Errorf("zero channels error = %v, want ErrInvalidChannels", err)
	}

	failing := NewMonoMixer(audiotest.NewBinauralSource(8000, 1000, 200, 210).FailAfter(10))
	if _, err := ReadAll(failing); !errors.Is(err, audiotest.ErrInjected) {
		t.Errorf("source failure = %v, want ErrInjected", err)
	}
}

func TestMonoMixer_Close(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 2, 10)
	if err := NewMonoMixer(src).Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !src.Closed() {
		t.Error("Close() did not reach the source")
	}
}

func BenchmarkMonoMixer_Stereo(b *testing.B) {
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for range b.N {
		m := NewMonoMixer(audiotest.NewBinauralSource(44100, 44100, 200, 206))
		for {
			if _, err := m.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}

// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/brainwave/audio"
	"github.com/ik5/brainwave/internal/audiotest"
)

func stereoRamp(frames int) []float32 {
	out := make([]float32, 2*frames)
	for f := range frames {
		v := float32(f)/float32(frames)*1.8 - 0.9
		out[2*f] = v
		out[2*f+1] = -v
	}
	return out
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, depth := range []int{16, 24} {
		t.Run(fmt.Sprintf("%d-bit", depth), func(t *testing.T) {
			t.Parallel()

			want := stereoRamp(2000)
			path := filepath.Join(t.TempDir(), "tone.wav")

			f, err := os.Create(path)
			if err != nil {
				t.Fatal(err)
			}
			if err := Encode(f, audio.NewMemorySource(want, 22050, 2), depth); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if err := f.Close(); err != nil {
				t.Fatal(err)
			}

			in, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer in.Close()

			src, err := Decoder{}.Decode(in)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if src.SampleRate() != 22050 || src.Channels() != 2 {
				t.Fatalf("decoded %d Hz x %d", src.SampleRate(), src.Channels())
			}

			got, err := audio.ReadAll(src)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if len(got) != len(want) {
				t.Fatalf("len = %d, want %d", len(got), len(want))
			}

			tol := 1.0 / float64(int(1)<<(depth-1)-1)
			for i := range want {
				if math.Abs(float64(got[i]-want[i])) > tol {
					t.Fatalf("sample %d = %v, want %v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestEncode_Errors(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := Encode(f, audio.NewMemorySource(make([]float32, 4), 8000, 1), 12); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("12-bit error = %v, want ErrUnsupportedBitDepth", err)
	}
	if err := Encode(f, audiotest.NewSilentSource(8000, 0, 4), 16); !errors.Is(err, ErrInvalidChannels) {
		t.Errorf("zero channels error = %v, want ErrInvalidChannels", err)
	}

	failing := audiotest.NewSineSource(8000, 1, 8000, 200).FailAfter(100)
	if err := Encode(f, failing, 16); !errors.Is(err, audiotest.ErrInjected) {
		t.Errorf("source failure = %v, want ErrInjected", err)
	}
}

func TestWriteWAV16_Header(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteWAV16(&buf, 44100, 2, []int16{1, -1, 2, -2}); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	b := buf.Bytes()
	if len(b) != headerSize+8 {
		t.Fatalf("len = %d, want %d", len(b), headerSize+8)
	}

	checks := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"riff size", binary.LittleEndian.Uint32(b[4:8]), 36 + 8},
		{"format", uint32(binary.LittleEndian.Uint16(b[20:22])), 1},
		{"channels", uint32(binary.LittleEndian.Uint16(b[22:24])), 2},
		{"sample rate", binary.LittleEndian.Uint32(b[24:28]), 44100},
		{"byte rate", binary.LittleEndian.Uint32(b[28:32]), 44100 * 4},
		{"block align", uint32(binary.LittleEndian.Uint16(b[32:34])), 4},
		{"bits", uint32(binary.LittleEndian.Uint16(b[34:36])), 16},
		{"data size", binary.LittleEndian.Uint32(b[40:44]), 8},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}

	for _, tag := range []struct {
		at  int
		tag string
	}{{0, "RIFF"}, {8, "WAVE"}, {12, "fmt "}, {36, "data"}} {
		if got := string(b[tag.at : tag.at+4]); got != tag.tag {
			t.Errorf("tag at %d = %q, want %q", tag.at, got, tag.tag)
		}
	}

	if got := int16(binary.LittleEndian.Uint16(b[46:48])); got != -1 {
		t.Errorf("second sample = %d, want -1", got)
	}
}

func TestWriteWAV16_DecodesBack(t *testing.T) {
	t.Parallel()

	pcm := make([]int16, 20000)
	for i := range pcm {
		pcm[i] = int16(10000 * math.Sin(float64(i)*0.05))
	}

	var buf bytes.Buffer
	if err := WriteWAV16(&buf, 8000, 1, pcm); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	// a plain io.Reader exercises the buffering path
	src, err := Decoder{}.Decode(io.MultiReader(&buf))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	got, err := audio.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(got) != len(pcm) {
		t.Fatalf("len = %d, want %d", len(got), len(pcm))
	}
	for i, v := range pcm {
		want := float32(v) / 32767
		if math.Abs(float64(got[i]-want)) > 1e-6 {
			t.Fatalf("sample %d = %v, want %v", i, got[i], want)
		}
	}
}

func TestWriteWAV16_Errors(t *testing.T) {
	t.Parallel()

	if err := WriteWAV16(&bytes.Buffer{}, 8000, 0, nil); !errors.Is(err, ErrInvalidChannels) {
		t.Errorf("zero channels error = %v, want ErrInvalidChannels", err)
	}

	w := &failingWriter{after: 1}
	if err := WriteWAV16(w, 8000, 1, make([]int16, 10)); !errors.Is(err, errWrite) {
		t.Errorf("write failure = %v, want errWrite", err)
	}
}

var errWrite = errors.New("disk full")

type failingWriter struct{ after int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after == 0 {
		return 0, errWrite
	}
	w.after--
	return len(p), nil
}

func TestDecode_NotWav(t *testing.T) {
	t.Parallel()

	for _, in := range [][]byte{nil, []byte("ID3 this is not a wav file at all, nope"), bytes.Repeat([]byte{0}, 64)} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(in)); !errors.Is(err, ErrNotWavFile) {
			t.Errorf("Decode(%q...) error = %v, want ErrNotWavFile", in[:min(len(in), 8)], err)
		}
	}
}

func TestDecode_InvalidDst(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteWAV16(&buf, 8000, 2, make([]int16, 8)); err != nil {
		t.Fatal(err)
	}

	src, err := Decoder{}.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if _, err := src.ReadSamples(make([]float32, 3)); !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("odd dst error = %v, want ErrInvalidDstSize", err)
	}
}

func BenchmarkWriteWAV16(b *testing.B) {
	pcm := make([]int16, 2*44100)
	var buf bytes.Buffer

	b.ReportAllocs()

	for range b.N {
		buf.Reset()
		_ = WriteWAV16(&buf, 44100, 2, pcm)
	}
}

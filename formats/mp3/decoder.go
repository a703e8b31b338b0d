// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/brainwave/audio"
	"github.com/ik5/brainwave/utils"
)

// go-mp3 always produces interleaved stereo, 16-bit little endian.
const (
	channels       = 2
	bytesPerSample = 2
)

// pcmReader is the part of gomp3.Decoder the source needs.
type pcmReader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec  pcmReader
	buf  []byte
	done bool
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return channels }
func (s *source) BufSize() int    { return 4096 * channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst)%channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if s.done {
		return 0, io.EOF
	}

	need := len(dst) * bytesPerSample
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	buf := s.buf[:need]

	m, err := io.ReadFull(s.dec, buf)

	switch {
	case errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF):
		s.done = true
	case err != nil:
		return 0, fmt.Errorf("mp3: %w", err)
	}

	// a short read only happens at the end; drop any partial frame
	n := (m - m%(channels*bytesPerSample)) / bytesPerSample
	for i := range n {
		v := int16(binary.LittleEndian.Uint16(buf[2*i:]))
		dst[i] = utils.PCMToFloat(int(v), 16)
	}

	if s.done {
		return n, io.EOF
	}
	return n, nil
}

// Decoder reads MPEG-1/2 Layer III streams. Any input rate go-mp3 supports
// comes out as stereo.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	return &source{dec: dec}, nil
}

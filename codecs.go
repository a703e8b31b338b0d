// SPDX-License-Identifier: EPL-2.0

package brainwave

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/brainwave/audio"
	"github.com/ik5/brainwave/formats/aiff"
	"github.com/ik5/brainwave/formats/mp3"
	"github.com/ik5/brainwave/formats/vorbis"
	"github.com/ik5/brainwave/formats/wav"
	"github.com/ik5/brainwave/synth"
	"github.com/ik5/brainwave/utils"
)

// OutputFormats are the extensions WriteFile accepts.
var OutputFormats = []string{"wav", "aiff"}

// Decoders returns a registry with every supported input format.
func Decoders() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	return reg
}

// Encode writes buf to ws in format ("wav" or "aiff") at bitDepth.
func Encode(ws io.WriteSeeker, format string, buf *synth.Buffer, bitDepth int) error {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "wav":
		return wav.Encode(ws, buf.Source(), bitDepth)
	case "aiff", "aif":
		return aiff.Encode(ws, buf.Source(), bitDepth)
	}

	return fmt.Errorf("%w: %q", audio.ErrUnknownFormat, format)
}

// WriteFile encodes buf to path, choosing the container from its extension.
// A file that could not be written completely is removed.
func WriteFile(path string, buf *synth.Buffer, bitDepth int) error {
	ext := filepath.Ext(path)
	if ext == "" {
		return fmt.Errorf("%w: %s has no extension", audio.ErrUnknownFormat, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return closeOrDiscard(f, path, Encode(f, ext, buf, bitDepth), os.Remove)
}

// closeOrDiscard closes f, then removes path when err is set or the close
// failed.
func closeOrDiscard(f io.Closer, path string, err error, remove func(string) error) error {
	if cerr := f.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("%w", cerr)
	}
	if err != nil {
		_ = remove(path)
	}
	return err
}

// Int16 converts buf to interleaved 16-bit PCM.
func Int16(buf *synth.Buffer) []int16 {
	out := make([]int16, len(buf.Samples))
	for i, v := range buf.Samples {
		out[i] = utils.Float32ToInt16(v)
	}
	return out
}

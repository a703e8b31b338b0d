// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/brainwave/audio"
)

// Encode writes src to ws as a 16 or 24 bit AIFF file.
func Encode(ws io.WriteSeeker, src audio.Source, bitDepth int) error {
	if bitDepth != 16 && bitDepth != 24 {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	channels := src.Channels()
	if channels <= 0 {
		return ErrInvalidChannels
	}

	enc := aiff.NewEncoder(ws, src.SampleRate(), bitDepth, channels)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: src.SampleRate()},
		SourceBitDepth: bitDepth,
	}

	err := audio.Quantize(src, bitDepth, func(pcm []int) error {
		buf.Data = pcm
		return enc.Write(buf)
	})
	if err != nil {
		return fmt.Errorf("aiff: encode: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("aiff: close: %w", err)
	}

	return nil
}

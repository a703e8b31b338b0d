// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/brainwave/audio"
)

// Encode drains src into ws as integer PCM at bitDepth (16 or 24). The
// header sizes are patched on close, hence the io.WriteSeeker.
func Encode(ws io.WriteSeeker, src audio.Source, bitDepth int) error {
	if bitDepth != 16 && bitDepth != 24 {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	channels := src.Channels()
	if channels <= 0 {
		return ErrInvalidChannels
	}

	enc := gowav.NewEncoder(ws, src.SampleRate(), bitDepth, channels, formatPCM)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: src.SampleRate()},
		SourceBitDepth: bitDepth,
	}

	err := audio.Quantize(src, bitDepth, func(pcm []int) error {
		buf.Data = pcm
		return enc.Write(buf)
	})
	if err != nil {
		return fmt.Errorf("wav: encode: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: close: %w", err)
	}

	return nil
}

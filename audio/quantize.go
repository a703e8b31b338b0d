// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/brainwave/utils"
)

// Quantize drains src, converting each block to signed PCM integers of
// bitDepth bits, and hands the block to write. The slice passed to write
// is reused between calls.
func Quantize(src Source, bitDepth int, write func(pcm []int) error) error {
	channels := src.Channels()
	if channels <= 0 {
		return ErrInvalidChannels
	}

	size := src.BufSize()
	size -= size % channels
	if size <= 0 {
		size = 4096 * channels
	}

	in := make([]float32, size)
	out := make([]int, size)

	for {
		n, err := src.ReadSamples(in)
		if n > 0 {
			for i, v := range in[:n] {
				out[i] = utils.FloatToPCM(v, bitDepth)
			}
			if werr := write(out[:n]); werr != nil {
				return werr
			}
		}

		if err == io.EOF || (err == nil && n == 0) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w", err)
		}
	}
}

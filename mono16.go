// SPDX-License-Identifier: EPL-2.0

package brainwave

import (
	"fmt"
	"io"

	"github.com/ik5/brainwave/audio"
	"github.com/ik5/brainwave/utils"
)

// Mono16 resamples src to targetRate, folds it to mono and collects it as
// 16-bit PCM. bufferSize is the read size in samples. A source already at
// targetRate skips the resampler.
func Mono16(src audio.Source, targetRate, bufferSize int) ([]int16, error) {
	if bufferSize <= 0 {
		bufferSize = 4096
	}

	stage := src
	if src.SampleRate() != targetRate {
		stage = audio.NewResampler(src, targetRate)
	}
	mono := audio.NewMonoMixer(stage)

	pcm := make([]int16, 0, targetRate)
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		for _, v := range buf[:n] {
			pcm = append(pcm, utils.Float32ToInt16(v))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			break
		}
	}

	return pcm, nil
}

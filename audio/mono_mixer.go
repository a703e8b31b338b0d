// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer folds every channel of src into one by averaging. For a binaural
// render this yields base and base+beat summed, which is how the beat sounds
// on a single speaker.
type MonoMixer struct {
	src     Source
	scratch []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{src: src}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// ReadSamples writes up to len(dst) mono samples.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	ch := m.src.Channels()
	if ch == 1 {
		return m.src.ReadSamples(dst)
	}
	if ch <= 0 {
		return 0, ErrInvalidChannels
	}

	need := len(dst) * ch
	if cap(m.scratch) < need {
		m.scratch = make([]float32, need)
	}
	in := m.scratch[:need]

	n, err := m.src.ReadSamples(in)
	frames := n / ch

	if ch == 2 {
		for f := range frames {
			dst[f] = 0.5 * (in[2*f] + in[2*f+1])
		}
		return frames, err
	}

	scale := 1 / float32(ch)
	for f := range frames {
		var sum float32
		for _, v := range in[f*ch : f*ch+ch] {
			sum += v
		}
		dst[f] = sum * scale
	}

	return frames, err
}

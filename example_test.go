// SPDX-License-Identifier: EPL-2.0

package brainwave_test

import (
	"encoding/json"
	"fmt"

	"github.com/ik5/brainwave"
	"github.com/ik5/brainwave/synth"
)

func Example() {
	s, _ := synth.New(8000)

	req := brainwave.NewRequest()
	req.Type = brainwave.Preset
	req.Preset = "relaxation"
	req.Duration = 3

	buf, err := brainwave.Render(s, req)
	if err != nil {
		fmt.Println(err)
		return
	}
	band, _ := req.Band()

	fmt.Println(buf.Frames(), buf.Channels, band)
	// Output: 24000 2 alpha
}

// Example_json decodes a render job the way the HTTP service does.
func Example_json() {
	body := `{"tone_type":"isochronic","base_frequency":300,"beat_frequency":10,"duration":1}`

	req := brainwave.NewRequest()
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		fmt.Println(err)
		return
	}

	s, _ := synth.New(8000)
	buf, err := brainwave.Render(s, req)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%s: %d frames, %d channel, fade %gs\n", req.Type, buf.Frames(), buf.Channels, req.FadeDuration)
	// Output: isochronic: 8000 frames, 1 channel, fade 2s
}

func ExampleMono16() {
	s, _ := synth.New(44100)
	buf, _ := s.Binaural(200, 6, 1, 0.1)

	pcm, err := brainwave.Mono16(buf.Source(), 8000, 4096)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(len(pcm), "samples at 8 kHz")
	// Output: 8000 samples at 8 kHz
}

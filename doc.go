// SPDX-License-Identifier: EPL-2.0

// Package brainwave ties the tone synthesizer to the codecs and the audio
// pipeline. It is what the tonegen command and the render service call.
//
// # Rendering
//
// A Request names a tone type and its parameters; Render dispatches it to
// package synth:
//
//	s, _ := synth.New(44100)
//	req := brainwave.NewRequest()
//	req.Type = brainwave.Preset
//	req.Preset = "deep_sleep"
//	req.Duration = 1800
//	buf, err := brainwave.Render(s, req)
//
// NewRequest fills in the defaults (200 Hz base, 6 Hz beat, 10 s, 2 s fade),
// so decoding JSON into it only overrides the fields that were sent.
//
// # Files
//
// WriteFile picks WAV or AIFF from the file extension:
//
//	err := brainwave.WriteFile("session.aiff", buf, 24)
//
// Decoders returns a registry of every input format (wav, aiff, mp3, ogg)
// for analysis and conversion:
//
//	dec, err := brainwave.Decoders().ForPath("rain.ogg")
//	src, err := dec.Decode(f)
//	pcm, err := brainwave.Mono16(src, 8000, 4096)
package brainwave

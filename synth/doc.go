// SPDX-License-Identifier: EPL-2.0

// Package synth renders binaural beats and isochronic tones for meditation
// audio.
//
// Every operation is a pure function of its parameters and the sample rate the
// Synthesizer was built with: the same call always yields a bit-identical
// Buffer, and a single Synthesizer may be shared between goroutines.
//
// # Binaural Beats
//
// A binaural beat plays base Hz in the left ear and base+beat Hz in the right:
//
//	s, _ := synth.New(44100)
//	buf, err := s.Binaural(200, 6, 600, 2) // 10 minutes of 6 Hz theta
//
// # Isochronic Tones
//
// An isochronic tone is a mono carrier shaped by smooth half-sine pulses:
//
//	buf, err := s.Isochronic(300, 10, 600, synth.DefaultDutyCycle, 2)
//
// # Presets
//
// Five named presets cover the common meditation states:
//
//	buf, err := s.FromPreset("deep_sleep", 1800, 5)
//
// Unknown names fail with ErrInvalidPreset and the message lists the valid ones.
//
// # Layering
//
// Layered sums several binaural pairs, normalizes the peak to 0.9 and fades
// the final mix once:
//
//	buf, err := s.Layered([]synth.Layer{
//	    {BaseFrequency: 200, BeatFrequency: 6},
//	    {BaseFrequency: 150, BeatFrequency: 2, Amplitude: 0.3},
//	}, 600, 3)
//
// # Fades
//
// Generators fade in and out linearly. Each fade is capped at a quarter of the
// buffer, so short renders never have overlapping ramps.
//
// # Bands
//
// ClassifyBand maps a beat or pulse frequency onto delta, theta, alpha or beta.
//
// # Errors
//
//   - ErrInvalidParameter: non-positive frequency or duration, negative fade,
//     duty cycle outside (0,1], pulse rate at or above sample rate / 4
//   - ErrInvalidPreset: preset name not in the table
//   - ErrInvalidInput: empty layer list
//
// Errors are wrapped with context; test them with errors.Is.
package synth

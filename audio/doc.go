// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives that sit between rendered
// tone buffers and the codecs.
//
//   - Source: interleaved float32 samples in [-1,1]
//   - MemorySource: a finished render served as a Source
//   - Resampler: cubic sample rate conversion
//   - MonoMixer: channel averaging
//   - Registry: decoders keyed by format
//
// # Sources
//
// Every decoder and processor implements Source, so they chain:
//
//	src := buf.Source()                     // synth.Buffer, stereo 44.1 kHz
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 8000))
//	samples, err := audio.ReadAll(mono)
//
// ReadSamples returns the number of float32 values written, not frames, and
// io.EOF once the stream is finished. A read may return data together with
// io.EOF.
//
// # Registry
//
// Decoders register under a format key; ForPath picks one by extension:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, err := reg.ForPath("ambience.WAV")
package audio

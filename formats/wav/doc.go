// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF WAV files for the tone renderer.
//
// Decoder wraps github.com/go-audio/wav and serves 8, 16, 24 and 32 bit
// integer PCM as an audio.Source. Encode writes a Source to a seekable file
// at 16 or 24 bits. WriteWAV16 emits a fixed 44 byte header followed by the
// samples and is used where the destination cannot seek:
//
//	pcm := brainwave.Int16(buf) // interleaved stereo
//	err := wav.WriteWAV16(w, 44100, 2, pcm)
//
// Writing a render to disk:
//
//	f, _ := os.Create("binaural_beat.wav")
//	defer f.Close()
//	err := wav.Encode(f, buf.Source(), 16)
package wav

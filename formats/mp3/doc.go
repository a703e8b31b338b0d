// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 input for the analyze and convert commands using
// github.com/hajimehoshi/go-mp3. Output is always interleaved stereo.
package mp3

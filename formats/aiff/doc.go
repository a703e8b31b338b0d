// SPDX-License-Identifier: EPL-2.0

// Package aiff encodes renders as AIFF and decodes AIFF input for analysis
// and conversion, on top of github.com/go-audio/aiff.
//
//	f, _ := os.Create("theta.aiff")
//	defer f.Close()
//	err := aiff.Encode(f, buf.Source(), 24)
package aiff

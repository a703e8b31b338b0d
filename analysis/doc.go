// SPDX-License-Identifier: EPL-2.0

// Package analysis inspects rendered or decoded audio: dominant carrier per
// channel, binaural beat, isochronic pulse rate and the brainwave band they
// fall in. It is how renders are verified after encoding, and how foreign
// files are checked before they are layered under a session.
//
//	src, _ := wav.Decoder{}.Decode(file)
//	report, err := analysis.Analyze(src)
//	fmt.Println(report.BeatFrequency, report.Band)
package analysis

// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
	"strings"
)

// Band is a brainwave frequency band.
type Band uint8

const (
	Delta Band = iota
	Theta
	Alpha
	Beta
)

// Lower bounds, inclusive.
const (
	thetaFloor = 4.0
	alphaFloor = 8.0
	betaFloor  = 14.0
)

var bandInfo = [...]struct {
	name        string
	low, high   float64
	description string
}{
	Delta: {"delta", 0, thetaFloor, "Deep sleep, healing"},
	Theta: {"theta", thetaFloor, alphaFloor, "Meditation, creativity, REM sleep"},
	Alpha: {"alpha", alphaFloor, betaFloor, "Relaxation, calm focus"},
	Beta:  {"beta", betaFloor, math.Inf(1), "Active concentration, alertness"},
}

// ClassifyBand maps a frequency in Hz to its band. Anything below 4 Hz,
// including non-positive values, is delta.
func ClassifyBand(freq float64) Band {
	switch {
	case freq < thetaFloor:
		return Delta
	case freq < alphaFloor:
		return Theta
	case freq < betaFloor:
		return Alpha
	default:
		return Beta
	}
}

func (b Band) String() string {
	if int(b) < len(bandInfo) {
		return bandInfo[b].name
	}
	return fmt.Sprintf("Band(%d)", uint8(b))
}

// Range returns the band's [low, high) bounds in Hz. Beta is open ended.
func (b Band) Range() (low, high float64) {
	return bandInfo[b].low, bandInfo[b].high
}

// Description names the mental state the band is associated with.
func (b Band) Description() string {
	return bandInfo[b].description
}

// ParseBand is the inverse of String, case insensitive.
func ParseBand(s string) (Band, error) {
	for i, info := range bandInfo {
		if strings.EqualFold(info.name, s) {
			return Band(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown band %q", ErrInvalidInput, s)
}

// MarshalText lets bands appear by name in JSON.
func (b Band) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Band) UnmarshalText(text []byte) error {
	v, err := ParseBand(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Clamp limits x to [-1,1].
func Clamp(x float32) float32 {
	switch {
	case x > 1:
		return 1
	case x < -1:
		return -1
	}
	return x
}

// MaxPCM is the largest positive sample value for a signed PCM bit depth.
func MaxPCM(bitDepth int) int {
	return 1<<(bitDepth-1) - 1
}

// FloatToPCM scales x to a signed integer sample of bitDepth bits. The scale
// is symmetric, so -1 maps to -MaxPCM rather than the type minimum.
func FloatToPCM(x float32, bitDepth int) int {
	return int(math.Round(float64(Clamp(x)) * float64(MaxPCM(bitDepth))))
}

func Float32ToInt16(x float32) int16 {
	return int16(FloatToPCM(x, 16))
}

// PCMToFloat is the inverse of FloatToPCM. The type minimum lands slightly
// below -1 and is clamped.
func PCMToFloat(v, bitDepth int) float32 {
	return Clamp(float32(float64(v) / float64(MaxPCM(bitDepth))))
}

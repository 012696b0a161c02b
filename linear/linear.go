// Package linear adapts concrete channel widths to the normalised
// float32 representation the conversion engine works in. Each width is
// a thin clamp/scale adapter, not a reimplementation of any math.
package linear

import "math"

func clamp01(v float32) float32 {
	// NaN compares false on both branches and falls through to 0.
	if v >= 1 {
		return 1
	}
	if v > 0 {
		return v
	}
	return 0
}

// NormalisedTo8Bit converts a normalised value to 8-bit, clipping to
// [0.0, 1.0].
func NormalisedTo8Bit(v float32) uint8 {
	return uint8(math.RoundToEven(float64(clamp01(v) * 255)))
}

// NormalisedTo9Bit converts a normalised value to a 9-bit lookup index,
// clipping to [0.0, 1.0]. One extra bit over the 8-bit output width
// halves the maximum rounding error of LUT based encoders.
func NormalisedTo9Bit(v float32) uint16 {
	return uint16(math.RoundToEven(float64(clamp01(v) * 511)))
}

// NormalisedTo16Bit converts a normalised value to 16-bit, clipping to
// [0.0, 1.0].
func NormalisedTo16Bit(v float32) uint16 {
	return uint16(math.RoundToEven(float64(clamp01(v) * 65535)))
}

// From8Bit converts an 8-bit channel value to a normalised value
// between 0.0 and 1.0.
func From8Bit(v uint8) float32 {
	return float32(v) / 255
}

// From16Bit converts a 16-bit channel value to a normalised value
// between 0.0 and 1.0.
func From16Bit(v uint16) float32 {
	return float32(v) / 65535
}

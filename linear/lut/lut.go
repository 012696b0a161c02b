// Package lut builds the lookup tables used by the fast channel-width
// adapters. The tables are pure functions of the supplied curve; build
// them once and share them read-only.
package lut

import "github.com/kovidgoyal/colorspace/linear"

// Build8BitToLinear tabulates encodedToLinear over all 8-bit inputs.
func Build8BitToLinear(encodedToLinear func(float32) float32) [256]float32 {
	var ans [256]float32
	for i := range ans {
		ans[i] = encodedToLinear(linear.From8Bit(uint8(i)))
	}
	return ans
}

// Build16BitToLinear tabulates encodedToLinear over all 16-bit inputs.
func Build16BitToLinear(encodedToLinear func(float32) float32) [65536]float32 {
	var ans [65536]float32
	for i := range ans {
		ans[i] = encodedToLinear(linear.From16Bit(uint16(i)))
	}
	return ans
}

// BuildLinearTo8Bit tabulates linearToEncoded over a 9-bit index as
// produced by linear.NormalisedTo9Bit.
func BuildLinearTo8Bit(linearToEncoded func(float32) float32) [512]uint8 {
	var ans [512]uint8
	for i := range ans {
		ans[i] = linear.NormalisedTo8Bit(linearToEncoded(float32(i) / 511))
	}
	return ans
}

// BuildLinearTo16Bit tabulates linearToEncoded over a 16-bit index as
// produced by linear.NormalisedTo16Bit.
func BuildLinearTo16Bit(linearToEncoded func(float32) float32) [65536]uint16 {
	var ans [65536]uint16
	for i := range ans {
		ans[i] = linear.NormalisedTo16Bit(linearToEncoded(linear.From16Bit(uint16(i))))
	}
	return ans
}

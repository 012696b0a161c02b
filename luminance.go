package colorspace

import "fmt"

// Luminance is the reference peak brightness of a color specification.
// Informational for now, the conversion math does not yet scale by it.
type Luminance uint8

const (
	// 100 cd/m², standard dynamic range.
	LuminanceSdr Luminance = iota
	// 10000 cd/m², high dynamic range.
	LuminanceHdr
	// 160 cd/m², as specified for Adobe RGB.
	LuminanceAdobeRgb
	// 1000 cd/m², optimized for projector use.
	LuminanceDciP3
)

// Cd returns the reference peak in candela per square meter, or 0 for
// values outside the enumeration.
func (l Luminance) Cd() float32 {
	switch l {
	case LuminanceSdr:
		return 100
	case LuminanceHdr:
		return 10000
	case LuminanceAdobeRgb:
		return 160
	case LuminanceDciP3:
		return 1000
	}
	return 0
}

func (l Luminance) String() string {
	switch l {
	case LuminanceSdr:
		return "SDR"
	case LuminanceHdr:
		return "HDR"
	case LuminanceAdobeRgb:
		return "AdobeRGB"
	case LuminanceDciP3:
		return "DCI-P3"
	}
	return fmt.Sprintf("Luminance(%d)", uint8(l))
}

package colorspace

import "fmt"

// RgbColorSpace is an rgb-ish, additive model based on the CIE 1931 XYZ
// observers. The linear representation is screen space linear RGB,
// which depends on primaries, whitepoint and reference luminance, and
// is derived from the encoded form through the transfer function.
type RgbColorSpace struct {
	Primaries  Primaries
	Transfer   Transfer
	Whitepoint Whitepoint
	Luminance  Luminance
}

// SRGB is the color space of IEC 61966-2-1.
var SRGB = RgbColorSpace{
	Primaries:  PrimariesBt709,
	Transfer:   TransferSrgb,
	Whitepoint: WhitepointD65,
	Luminance:  LuminanceSdr,
}

// BT709RGB shares the sRGB primaries and whitepoint but encodes with
// the BT.709 camera curve.
var BT709RGB = RgbColorSpace{
	Primaries:  PrimariesBt709,
	Transfer:   TransferBt709,
	Whitepoint: WhitepointD65,
	Luminance:  LuminanceSdr,
}

// Differencing is the luma/chroma differencing scheme of a Yuv
// construction. The numeric schemes are not implemented yet; the
// enumeration exists so that descriptors naming them round trip.
type Differencing uint8

const (
	// BT.470 M/PAL differencing for E_U and E_V, the naming origin for
	// 'YUV'.
	DifferencingBt470MPal Differencing = iota
	// The BT.470 M/PAL scheme with the published typo corrected.
	DifferencingBt470MPalPrecise
	// BT.601 luminance differencing.
	DifferencingBt601
	// BT.601, quantized with headroom for analog use.
	DifferencingBt601Quantized
	// BT.601, quantized without headroom.
	DifferencingBt601FullSwing
	// BT.709 luminance differencing.
	DifferencingBt709
	// BT.709, quantized with headroom for analog use.
	DifferencingBt709Quantized
	// BT.709, quantized without headroom. Introduced in h.264.
	DifferencingBt709FullSwing
	// Factors from the analog SECAM standard.
	DifferencingYDbDr
	// BT.2020 luminance differencing.
	DifferencingBt2020
	// BT.2100 luminance differencing, same coefficients as BT.2020.
	DifferencingBt2100
	// The YCoCg scheme of ITU-T H.273.
	DifferencingYCoCg
)

// DifferencingYiq is the rotated differencing of the NTSC family.
type DifferencingYiq uint8

const (
	DifferencingYiqNtsc1953 DifferencingYiq = iota
	DifferencingYiqSmpteC
)

// YuvColorSpace combines an RGB base space with a differencing scheme.
type YuvColorSpace struct {
	Primaries    Primaries
	Transfer     Transfer
	Whitepoint   Whitepoint
	Luminance    Luminance
	Differencing Differencing
}

// Model is the tag of the ColorSpace union.
type Model uint8

const (
	ModelRgb Model = iota
	ModelYuv
	ModelOklab
	ModelSrLab2
	ModelScalars
)

func (m Model) String() string {
	switch m {
	case ModelRgb:
		return "Rgb"
	case ModelYuv:
		return "Yuv"
	case ModelOklab:
		return "Oklab"
	case ModelSrLab2:
		return "SrLab2"
	case ModelScalars:
		return "Scalars"
	}
	return fmt.Sprintf("Model(%d)", uint8(m))
}

// ColorSpace identifies a color representation: the model by which the
// numbers in the channels relate to a physical stimulus. These are not
// the numbers used in image operations; conversion goes through an
// associated linear representation chosen per model to make mixing and
// similar linear operations faithful.
//
// Construct values with NewRgb, NewYuv, NewOklab, NewSrLab2 and
// NewScalars; equality of descriptors is plain struct equality.
type ColorSpace struct {
	model      Model
	rgb        RgbColorSpace
	yuv        YuvColorSpace
	whitepoint Whitepoint
	transfer   Transfer
}

// NewRgb wraps an RgbColorSpace descriptor.
func NewRgb(s RgbColorSpace) ColorSpace {
	return ColorSpace{model: ModelRgb, rgb: s}
}

// NewYuv wraps a YuvColorSpace descriptor. Conversion through it is not
// implemented yet and reports ErrNotImplemented at the point of use.
func NewYuv(s YuvColorSpace) ColorSpace {
	return ColorSpace{model: ModelYuv, yuv: s}
}

// NewOklab names the simple but perceptual space Oklab by Björn
// Ottoson, built from two linear transforms with a cube root between
// them, with the D65 reference baked in.
//
// Reference: https://bottosson.github.io/posts/oklab/
func NewOklab() ColorSpace {
	return ColorSpace{model: ModelOklab}
}

// NewSrLab2 names the SRLAB2 space, a compromise between the simplicity
// of CIELAB and the correctness of CIECAM02: whitepoint adaptation in
// the CIECAM02 cone space with the L* transfer applied to cone
// responses. Lacking for HDR, it is based on L*ab which is optimized
// for the small gamut of SDR.
//
// Reference: https://www.magnetkern.de/srlab2.html
func NewSrLab2(white Whitepoint) ColorSpace {
	return ColorSpace{model: ModelSrLab2, whitepoint: white}
}

// NewScalars names a group of scalar values with no assigned relation
// to physical quantities, useful for color ramps and sampling functions
// whose values are just coefficients. The transfer is applied as if the
// values were RGB-ish channels; use TransferLinear to store values
// untouched. Only XYZ-style sample layouts may be paired with it, see
// CheckParts.
func NewScalars(transfer Transfer) ColorSpace {
	return ColorSpace{model: ModelScalars, transfer: transfer}
}

// Model returns the union tag.
func (c ColorSpace) Model() Model { return c.model }

// Rgb returns the RGB descriptor; valid only when Model() is ModelRgb.
func (c ColorSpace) Rgb() RgbColorSpace { return c.rgb }

// Yuv returns the YUV descriptor; valid only when Model() is ModelYuv.
func (c ColorSpace) Yuv() YuvColorSpace { return c.yuv }

// SrLab2Whitepoint returns the adaptation whitepoint of a SrLab2 space.
func (c ColorSpace) SrLab2Whitepoint() Whitepoint { return c.whitepoint }

// ScalarsTransfer returns the declared transfer of a Scalars space.
func (c ColorSpace) ScalarsTransfer() Transfer { return c.transfer }

// SampleParts is the minimal description of a sample layout that the
// engine needs to validate descriptor pairings. The owning pixel
// container tracks the full layout.
type SampleParts uint8

const (
	PartsRgbA SampleParts = iota
	PartsXyz
)

func (p SampleParts) String() string {
	switch p {
	case PartsRgbA:
		return "RGBA"
	case PartsXyz:
		return "XYZ"
	}
	return fmt.Sprintf("SampleParts(%d)", uint8(p))
}

// CheckParts validates that the sample layout may be paired with this
// color space. Scalars is only valid with an XYZ-style layout.
func (c ColorSpace) CheckParts(parts SampleParts) error {
	if c.model == ModelScalars && parts != PartsXyz {
		return fmt.Errorf("%w: Scalars requires XYZ sample parts, got %s", ErrInvalidColorSpace, parts)
	}
	return nil
}

func (c ColorSpace) String() string {
	switch c.model {
	case ModelRgb:
		return fmt.Sprintf("Rgb{%s %s %s %s}", c.rgb.Primaries, c.rgb.Transfer, c.rgb.Whitepoint, c.rgb.Luminance)
	case ModelYuv:
		return fmt.Sprintf("Yuv{%s %s %s}", c.yuv.Primaries, c.yuv.Transfer, c.yuv.Whitepoint)
	case ModelSrLab2:
		return fmt.Sprintf("SrLab2{%s}", c.whitepoint)
	case ModelScalars:
		return fmt.Sprintf("Scalars{%s}", c.transfer)
	}
	return c.model.String()
}

package colorspace

import (
	"fmt"
	"math"
)

// Transfer names the reference transfer curve of a color specification,
// the EOTF/OETF pair relating encoded channel values to optical
// (linear light) intensities.
//
// The difference between display and scene light only matters for very
// recent HDR content; regard decoding as electro-optical transfer
// application. Several HDR curves (BT.2020 12-bit and the BT.2100
// family) have no numeric definition here yet: they are valid values of
// the type but every operation that interprets them reports
// ErrNotImplemented.
type Transfer uint8

const (
	// The identity curve, encoded values are already linear light.
	TransferLinear Transfer = iota
	// The sRGB curve of IEC 61966-2-1.
	TransferSrgb
	// The curve specified in BT/Rec.709.
	TransferBt709
	// The assumed gamma 2.2 of BT.470 System M.
	TransferBt470M
	// The curve specified in BT/Rec.601, numerically the BT.709 curve.
	TransferBt601
	// The curve specified in SMPTE 240M.
	TransferSmpte240
	// The 10-bit curve of BT/Rec.2020, numerically the BT.709 curve.
	TransferBt2020_10bit
	// The 12-bit curve of BT/Rec.2020. Not implemented.
	TransferBt2020_12bit
	// The perceptual quantizer of SMPTE ST 2084, normalised so that
	// 1.0 is the 10000 cd/m² peak.
	TransferSmpte2084
	// The PQ system of BT/Rec.2100. Not implemented.
	TransferBt2100Pq
	// The HLG system of BT/Rec.2100. Not implemented.
	TransferBt2100Hlg
	// Scene referred light of BT/Rec.2100. Not implemented.
	TransferBt2100Scene
)

var transferNames = map[Transfer]string{
	TransferLinear: "Linear", TransferSrgb: "sRGB", TransferBt709: "BT.709",
	TransferBt470M: "BT.470M", TransferBt601: "BT.601",
	TransferSmpte240: "SMPTE-240M", TransferBt2020_10bit: "BT.2020-10bit",
	TransferBt2020_12bit: "BT.2020-12bit", TransferSmpte2084: "SMPTE-2084",
	TransferBt2100Pq: "BT.2100-PQ", TransferBt2100Hlg: "BT.2100-HLG",
	TransferBt2100Scene: "BT.2100-Scene",
}

func (t Transfer) String() string {
	if n, ok := transferNames[t]; ok {
		return n
	}
	return fmt.Sprintf("Transfer(%d)", uint8(t))
}

// Pixel is a 4-channel RGBA value with normalised float32 channels.
// Transfer and conversion operations touch only the first three
// channels, alpha rides along unchanged.
type Pixel [4]float32

func powf(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}

// sRGB: IEC 61966-2-1
func eotfSrgb(x float32) float32 {
	if x <= 0.04045 {
		return x / 12.92
	}
	return powf((x+0.055)/1.055, 2.4)
}

func oetfSrgb(x float32) float32 {
	if x <= 0.0031308 {
		return x * 12.92
	}
	return 1.055*powf(x, 1/2.4) - 0.055
}

// BT.709, BT.601 and BT.2020 10-bit share this curve. The constants
// are the full precision solutions making the linear and power branches
// meet exactly; the rounded 0.018/1.099 values printed in the standards
// leave a band of encoded values around the seam that the OETF never
// produces, breaking invertibility there.
const (
	bt709Alpha   = 1.09929682680944
	bt709Beta    = 0.018053968510807
	bt709EncBeta = 4.5 * bt709Beta
)

func eotfBt709(x float32) float32 {
	if x < bt709EncBeta {
		return x / 4.5
	}
	return powf((x+(bt709Alpha-1))/bt709Alpha, 1/0.45)
}

func oetfBt709(x float32) float32 {
	if x < bt709Beta {
		return x * 4.5
	}
	return bt709Alpha*powf(x, 0.45) - (bt709Alpha - 1)
}

// BT.470 System M, the assumed receiver gamma of 2.2.
func eotfBt470m(x float32) float32 { return powf(x, 2.2) }
func oetfBt470m(x float32) float32 { return powf(x, 1/2.2) }

// SMPTE 240M, with the same exact-breakpoint treatment as BT.709.
const (
	smpte240Alpha   = 1.111572195921731
	smpte240Beta    = 0.022821585529445
	smpte240EncBeta = 4 * smpte240Beta
)

func eotfSmpte240(x float32) float32 {
	if x < smpte240EncBeta {
		return x / 4
	}
	return powf((x+(smpte240Alpha-1))/smpte240Alpha, 1/0.45)
}

func oetfSmpte240(x float32) float32 {
	if x < smpte240Beta {
		return x * 4
	}
	return smpte240Alpha*powf(x, 0.45) - (smpte240Alpha - 1)
}

// SMPTE ST 2084 perceptual quantizer, both directions normalised so
// that optical 1.0 is the 10000 cd/m² peak.
const (
	pqM1 = 2610. / 16384
	pqM2 = 2523. / 32
	pqC1 = 107. / 128
	pqC2 = 2413. / 128
	pqC3 = 2392. / 128
)

func eotfSmpte2084(x float32) float32 {
	ep := math.Pow(float64(x), 1/pqM2)
	num := ep - pqC1
	if num < 0 {
		num = 0
	}
	return float32(math.Pow(num/(pqC2-pqC3*ep), 1/pqM1))
}

func oetfSmpte2084(x float32) float32 {
	yp := math.Pow(float64(x), pqM1)
	return float32(math.Pow((pqC1+pqC2*yp)/(1+pqC3*yp), pqM2))
}

func identity(x float32) float32 { return x }

// Eotf returns the scalar encoded-to-optical function for the curve, or
// ErrNotImplemented for the curves without a numeric definition. All
// returned functions are monotonically increasing on their domain and
// mutually inverse with the Oetf counterpart.
func (t Transfer) Eotf() (func(float32) float32, error) {
	switch t {
	case TransferLinear:
		return identity, nil
	case TransferSrgb:
		return eotfSrgb, nil
	case TransferBt709, TransferBt601, TransferBt2020_10bit:
		return eotfBt709, nil
	case TransferBt470M:
		return eotfBt470m, nil
	case TransferSmpte240:
		return eotfSmpte240, nil
	case TransferSmpte2084:
		return eotfSmpte2084, nil
	}
	return nil, fmt.Errorf("%w: transfer %s has no EOTF", ErrNotImplemented, t)
}

// Oetf returns the scalar optical-to-encoded function for the curve.
func (t Transfer) Oetf() (func(float32) float32, error) {
	switch t {
	case TransferLinear:
		return identity, nil
	case TransferSrgb:
		return oetfSrgb, nil
	case TransferBt709, TransferBt601, TransferBt2020_10bit:
		return oetfBt709, nil
	case TransferBt470M:
		return oetfBt470m, nil
	case TransferSmpte240:
		return oetfSmpte240, nil
	case TransferSmpte2084:
		return oetfSmpte2084, nil
	}
	return nil, fmt.Errorf("%w: transfer %s has no OETF", ErrNotImplemented, t)
}

func applyRGB(f func(float32) float32, p Pixel) Pixel {
	return Pixel{f(p[0]), f(p[1]), f(p[2]), p[3]}
}

// ToOptical decodes an encoded pixel to linear light, applying the EOTF
// independently to each of R, G and B.
func (t Transfer) ToOptical(p Pixel) (Pixel, error) {
	f, err := t.Eotf()
	if err != nil {
		return p, err
	}
	return applyRGB(f, p), nil
}

// FromOptical encodes a linear light pixel, applying the OETF
// independently to each of R, G and B.
func (t Transfer) FromOptical(p Pixel) (Pixel, error) {
	f, err := t.Oetf()
	if err != nil {
		return p, err
	}
	return applyRGB(f, p), nil
}

func sliceApply(f func(float32) float32) func(dst, src []Pixel) {
	return func(dst, src []Pixel) {
		for i, p := range src {
			dst[i] = applyRGB(f, p)
		}
	}
}

func sliceApplyInPlace(f func(float32) float32) func([]Pixel) {
	return func(pix []Pixel) {
		for i, p := range pix {
			pix[i] = applyRGB(f, p)
		}
	}
}

// The vectorized specializations. Only the curves listed here carry
// one; Linear gets a copy/no-op fast path and everything else reports
// either ErrNoVectorForm or ErrNotImplemented from the lookups below.
func (t Transfer) vectorEotf() func(float32) float32 {
	switch t {
	case TransferSrgb:
		return eotfSrgb
	case TransferBt709, TransferBt601, TransferBt2020_10bit:
		return eotfBt709
	case TransferBt470M:
		return eotfBt470m
	case TransferSmpte240:
		return eotfSmpte240
	}
	return nil
}

func (t Transfer) vectorOetf() func(float32) float32 {
	switch t {
	case TransferSrgb:
		return oetfSrgb
	case TransferBt709, TransferBt601, TransferBt2020_10bit:
		return oetfBt709
	case TransferBt470M:
		return oetfBt470m
	case TransferSmpte240:
		return oetfSmpte240
	}
	return nil
}

func (t Transfer) sliceErr() error {
	if _, err := t.Eotf(); err != nil {
		return err
	}
	return fmt.Errorf("%w: %s", ErrNoVectorForm, t)
}

// ToOpticalSlice returns a function decoding a slice of encoded pixels
// into an equally sized destination slice. The result is element-wise
// identical to applying ToOptical to each pixel in order.
func (t Transfer) ToOpticalSlice() (func(dst, src []Pixel), error) {
	if t == TransferLinear {
		return func(dst, src []Pixel) { copy(dst, src) }, nil
	}
	if f := t.vectorEotf(); f != nil {
		return sliceApply(f), nil
	}
	return nil, t.sliceErr()
}

// ToOpticalSliceInPlace is the in-place variant of ToOpticalSlice.
func (t Transfer) ToOpticalSliceInPlace() (func([]Pixel), error) {
	if t == TransferLinear {
		return func([]Pixel) {}, nil
	}
	if f := t.vectorEotf(); f != nil {
		return sliceApplyInPlace(f), nil
	}
	return nil, t.sliceErr()
}

// FromOpticalSliceInPlace returns a function encoding a slice of linear
// light pixels in place.
func (t Transfer) FromOpticalSliceInPlace() (func([]Pixel), error) {
	if t == TransferLinear {
		return func([]Pixel) {}, nil
	}
	if f := t.vectorOetf(); f != nil {
		return sliceApplyInPlace(f), nil
	}
	return nil, t.sliceErr()
}

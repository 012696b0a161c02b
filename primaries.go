package colorspace

import (
	"fmt"

	"github.com/kovidgoyal/colorspace/matrix"
)

// Primaries names the relative stimuli of the three corners of a
// triangular RGBish gamut.
type Primaries uint8

const (
	// The CIE XYZ 'primaries'. A placeholder with no chromaticity
	// triple; deriving a conversion matrix for it is not implemented.
	PrimariesXyz Primaries = iota
	// First set of primaries specified in BT/Rec.601. These are the
	// same as in SMPTE 240M.
	PrimariesBt601_525
	// Second set of primaries specified in BT/Rec.601.
	PrimariesBt601_625
	// Primaries specified in BT/Rec.709.
	PrimariesBt709
	// Primaries specified in SMPTE 240M, the same as BT.601-525.
	PrimariesSmpte240
	// Primaries specified in BT/Rec.2020, also known as Wide Color
	// Gamut.
	PrimariesBt2020
	// Primaries specified in BT/Rec.2100, identical to BT.2020.
	PrimariesBt2100
)

var primariesNames = map[Primaries]string{
	PrimariesXyz: "XYZ", PrimariesBt601_525: "BT.601-525",
	PrimariesBt601_625: "BT.601-625", PrimariesBt709: "BT.709",
	PrimariesSmpte240: "SMPTE-240M", PrimariesBt2020: "BT.2020",
	PrimariesBt2100: "BT.2100",
}

func (p Primaries) String() string {
	if n, ok := primariesNames[p]; ok {
		return n
	}
	return fmt.Sprintf("Primaries(%d)", uint8(p))
}

// Chromaticities returns the CIE 1931 (x, y) coordinates of the red,
// green and blue primaries.
func (p Primaries) Chromaticities() (xy [3][2]float32, err error) {
	switch p {
	case PrimariesBt601_525, PrimariesSmpte240:
		return [3][2]float32{{0.63, 0.34}, {0.31, 0.595}, {0.155, 0.07}}, nil
	case PrimariesBt601_625:
		return [3][2]float32{{0.64, 0.33}, {0.29, 0.6}, {0.15, 0.06}}, nil
	case PrimariesBt709:
		return [3][2]float32{{0.64, 0.33}, {0.30, 0.60}, {0.15, 0.06}}, nil
	case PrimariesBt2020, PrimariesBt2100:
		return [3][2]float32{{0.708, 0.292}, {0.170, 0.797}, {0.131, 0.046}}, nil
	case PrimariesXyz:
		return xy, fmt.Errorf("%w: no chromaticity triple for %s primaries", ErrNotImplemented, p)
	}
	return xy, fmt.Errorf("%w: unknown primaries %d", ErrInvalidColorSpace, uint8(p))
}

// ToXYZ derives the matrix converting linear RGB relative to these
// primaries into CIE XYZ, or back if you invert it.
//
// The construction is the van Kries style per-channel scaling under the
// given illuminant, where the unit intensity of each primary is scaled
// so that equal RGB lands exactly on the whitepoint. This matches the
// sRGB class of specifications even though a full chromatic adaptation
// model would be perceptually more correct; see SRLAB2 for a model that
// handles illuminants properly.
func (p Primaries) ToXYZ(white Whitepoint) (matrix.Row, error) {
	xy, err := p.Chromaticities()
	if err != nil {
		return matrix.Row{}, err
	}
	wxyz := white.XYZ()
	if wxyz == (matrix.Vec3{}) {
		return matrix.Row{}, fmt.Errorf("%w: whitepoint %s has no tristimulus", ErrInvalidColorSpace, white)
	}

	// A column of CIE XYZ intensities for one primary at unit
	// luminance.
	xyz := func(c [2]float32) matrix.Vec3 {
		x, y := c[0], c[1]
		return matrix.Vec3{x / y, 1, (1 - x - y) / y}
	}

	xyzR := xyz(xy[0])
	xyzG := xyz(xy[1])
	xyzB := xyz(xy[2])

	// N = [xyz_r | xyz_g | xyz_b] is the unweighted conversion matrix
	// for XYZ = N · RGB.
	n := matrix.Col{xyzR, xyzG, xyzB}
	n1, err := n.Inv()
	if err != nil {
		return matrix.Row{}, fmt.Errorf("%w: primaries %s: %s", ErrSingularMatrix, p, err)
	}

	// Solve W = N · S for the per channel weights S that give the
	// whitepoint when equal RGB is converted to XYZ.
	s := n1.MulVec(wxyz)

	return matrix.Col{xyzR.Scale(s[0]), xyzG.Scale(s[1]), xyzB.Scale(s[2])}.Row(), nil
}

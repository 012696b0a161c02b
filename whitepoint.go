package colorspace

import (
	"fmt"

	"github.com/kovidgoyal/colorspace/matrix"
)

// Whitepoint is a standard illuminant, the stimulus that a color space
// declares as neutral.
type Whitepoint uint8

const (
	WhitepointA Whitepoint = iota
	WhitepointB
	WhitepointC
	WhitepointD50
	WhitepointD55
	WhitepointD65
	WhitepointD75
	WhitepointE
	WhitepointF2
	WhitepointF7
	WhitepointF11
)

var whitepointNames = map[Whitepoint]string{
	WhitepointA: "A", WhitepointB: "B", WhitepointC: "C",
	WhitepointD50: "D50", WhitepointD55: "D55", WhitepointD65: "D65",
	WhitepointD75: "D75", WhitepointE: "E", WhitepointF2: "F2",
	WhitepointF7: "F7", WhitepointF11: "F11",
}

func (w Whitepoint) String() string {
	if n, ok := whitepointNames[w]; ok {
		return n
	}
	return fmt.Sprintf("Whitepoint(%d)", uint8(w))
}

// XYZ returns the CIE XYZ tristimulus of the illuminant under unit
// luminance (Y = 1). Values outside the table yield the zero vector,
// which Primaries.ToXYZ rejects as ErrInvalidColorSpace.
func (w Whitepoint) XYZ() matrix.Vec3 {
	switch w {
	case WhitepointA:
		return matrix.Vec3{1.09850, 1.00000, 0.35585}
	case WhitepointB:
		return matrix.Vec3{0.99072, 1.00000, 0.85223}
	case WhitepointC:
		return matrix.Vec3{0.98074, 1.00000, 1.18232}
	case WhitepointD50:
		return matrix.Vec3{0.96422, 1.00000, 0.82521}
	case WhitepointD55:
		return matrix.Vec3{0.95682, 1.00000, 0.92149}
	case WhitepointD65:
		return matrix.Vec3{0.95047, 1.00000, 1.08883}
	case WhitepointD75:
		return matrix.Vec3{0.94972, 1.00000, 1.22638}
	case WhitepointE:
		return matrix.Vec3{1.00000, 1.00000, 1.00000}
	case WhitepointF2:
		return matrix.Vec3{0.99186, 1.00000, 0.67393}
	case WhitepointF7:
		return matrix.Vec3{0.95041, 1.00000, 1.08747}
	case WhitepointF11:
		return matrix.Vec3{1.00962, 1.00000, 0.64350}
	}
	return matrix.Vec3{}
}

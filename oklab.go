package colorspace

import (
	"math"

	"github.com/kovidgoyal/colorspace/matrix"
)

// Oklab is a fixed pipeline of two linear transforms around a cube
// root: XYZ -> M1 -> cbrt -> M2 -> (L, a, b). The matrices below are
// the published ones, fitted against CAM16 with a D65 reference baked
// in. The inverse direction recomputes the matrix inverses through the
// kernel rather than carrying rounded literal inverses.

var oklabM1 = matrix.Row{
	{0.8189330101, 0.3618667424, -0.1288597137},
	{0.0329845436, 0.9293118715, 0.0361456387},
	{0.0482003018, 0.2643662691, 0.6338517070},
}

var oklabM2 = matrix.Row{
	{0.2104542553, 0.7936177850, -0.0040720468},
	{1.9779984951, -2.4285922050, 0.4505937099},
	{0.0259040371, 0.7827717662, -0.8086757660},
}

// cbrtf is the signed cube root, the analytic continuation that keeps
// the map well defined and invertible for below-black values slightly
// outside the display gamut.
func cbrtf(x float32) float32 {
	return float32(math.Cbrt(float64(x)))
}

func mapVec(v matrix.Vec3, f func(float32) float32) matrix.Vec3 {
	return matrix.Vec3{f(v[0]), f(v[1]), f(v[2])}
}

func cube(x float32) float32 { return x * x * x }

// OklabFromXYZ converts a CIE XYZ stimulus to Oklab coordinates
// (lightness and two opponent axes). Total over finite input.
func OklabFromXYZ(v matrix.Vec3) matrix.Vec3 {
	return oklabM2.MulVec(mapVec(oklabM1.MulVec(v), cbrtf))
}

// XYZFromOklab is the inverse of OklabFromXYZ.
func XYZFromOklab(v matrix.Vec3) matrix.Vec3 {
	// The published forward matrices are well conditioned, Inv cannot
	// fail on them.
	m2i, _ := oklabM2.Inv()
	m1i, _ := oklabM1.Inv()
	return m1i.MulVec(mapVec(m2i.MulVec(v), cube))
}

// LChFromLab converts opponent (L, a, b) coordinates to the polar
// (L, C, h) form with the hue angle in radians.
func LChFromLab(v matrix.Vec3) matrix.Vec3 {
	c := math.Hypot(float64(v[1]), float64(v[2]))
	h := math.Atan2(float64(v[2]), float64(v[1]))
	return matrix.Vec3{v[0], float32(c), float32(h)}
}

// LabFromLCh is the inverse of LChFromLab.
func LabFromLCh(v matrix.Vec3) matrix.Vec3 {
	s, c := math.Sincos(float64(v[2]))
	return matrix.Vec3{v[0], v[1] * float32(c), v[1] * float32(s)}
}

package colorspace

import (
	"github.com/kovidgoyal/colorspace/matrix"
)

// SRLAB2 pipeline: XYZ -> CAT02 cone response -> von Kries division by
// the whitepoint's cone response -> back through CAT02 -> Hunt-Pointer-
// Estevez cone space -> L* non-linearity -> opponent matrix. Unlike
// Oklab the adaptation whitepoint is a parameter rather than baked in.
//
// Reference: https://www.magnetkern.de/srlab2.html

var srlabCat02 = matrix.Row{
	{0.7328, 0.4296, -0.1624},
	{-0.7036, 1.6975, 0.0061},
	{0.0030, 0.0136, 0.9834},
}

var srlabHpe = matrix.Row{
	{0.38971, 0.68898, -0.07868},
	{-0.22981, 1.18340, 0.04641},
	{0.0, 0.0, 1.0},
}

// Cone responses to opponent (L, a, b), L in [0, 100].
var srlabLab = matrix.Row{
	{37.0950, 62.9054, -0.0008},
	{663.4684, -750.5078, 87.0328},
	{63.9569, 108.4576, -172.4152},
}

// The L* style transfer of CIELAB applied per cone channel. The linear
// segment doubles as the analytic continuation below black, so negative
// inputs stay well defined and invertible.
func srlabNonlinear(t float32) float32 {
	if t <= 216./24389 {
		return t * (24389. / 2700)
	}
	return 1.16*cbrtf(t) - 0.16
}

func srlabNonlinearInv(x float32) float32 {
	if x <= 0.08 {
		return x * (2700. / 24389)
	}
	c := (x + 0.16) / 1.16
	return c * c * c
}

// srlabAdapt derives the XYZ -> adapted HPE cone matrix for the given
// whitepoint: the CAT02 von Kries step fused with the cone space
// change.
func srlabAdapt(white Whitepoint) matrix.Row {
	w := srlabCat02.MulVec(white.XYZ())
	scale := matrix.Diagonal(matrix.Vec3{1 / w[0], 1 / w[1], 1 / w[2]})
	// CAT02 is fixed and invertible.
	cat02Inv, _ := srlabCat02.Inv()
	return srlabHpe.Mul(cat02Inv).Mul(scale).Mul(srlabCat02)
}

// SrLab2FromXYZ converts a CIE XYZ stimulus to SRLAB2 coordinates under
// the given adaptation whitepoint. L is in [0, 100] with a and b
// roughly in [-100, 100]. Total over finite input.
func SrLab2FromXYZ(v matrix.Vec3, white Whitepoint) matrix.Vec3 {
	cone := srlabAdapt(white).MulVec(v)
	return srlabLab.MulVec(mapVec(cone, srlabNonlinear))
}

// XYZFromSrLab2 is the inverse of SrLab2FromXYZ.
func XYZFromSrLab2(v matrix.Vec3, white Whitepoint) matrix.Vec3 {
	labInv, _ := srlabLab.Inv()
	cone := mapVec(labInv.MulVec(v), srlabNonlinearInv)
	adaptInv, _ := srlabAdapt(white).Inv()
	return adaptInv.MulVec(cone)
}

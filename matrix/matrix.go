// Package matrix implements the small dense 3x3 kernel used to derive
// and apply primaries<->XYZ conversion matrices. Matrices come in two
// layouts: Row stores three row vectors and multiplies a column vector
// as out[i] = dot(row[i], v); Col stores three basis columns and
// multiplies as out = v[0]*col[0] + v[1]*col[1] + v[2]*col[2]. Both
// layouts describe the same logical transform and must agree
// numerically.
package matrix

import (
	"errors"
	"fmt"
)

// Determinants lower than this are assumed zero (used on matrix invert)
const DET_TOLERANCE = 1e-7

var ErrSingular = errors.New("matrix is singular")

type Vec3 [3]float32

// Row is a 3x3 matrix of three row vectors.
type Row [3]Vec3

// Col is a 3x3 matrix of three basis columns.
type Col [3]Vec3

func (v Vec3) Dot(o Vec3) float32 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{s * v[0], s * v[1], s * v[2]}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

func (m Row) MulVec(v Vec3) Vec3 {
	return Vec3{m[0].Dot(v), m[1].Dot(v), m[2].Dot(v)}
}

func (m Col) MulVec(v Vec3) Vec3 {
	return m[0].Scale(v[0]).Add(m[1].Scale(v[1])).Add(m[2].Scale(v[2]))
}

// Col reinterprets the rows as columns, transposing the matrix.
func (m Row) Col() Col { return Col(transpose([3]Vec3(m))) }

// Row reinterprets the columns as rows, transposing the matrix.
func (m Col) Row() Row { return Row(transpose([3]Vec3(m))) }

func transpose(m [3]Vec3) [3]Vec3 {
	return [3]Vec3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// Mul returns the matrix product m * n.
func (m Row) Mul(n Row) Row {
	c := n.Col()
	var ans Row
	for i := range 3 {
		for j := range 3 {
			ans[i][j] = m[i].Dot(Vec3(c[j]))
		}
	}
	return ans
}

func (m Row) Det() float32 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

func (m Col) Det() float32 { return m.Row().Det() }

// Inv inverts the matrix by the cofactor method. A singular matrix only
// arises from corrupted chromaticity data, never for the standard
// primaries tables, so callers treat ErrSingular as a configuration
// defect rather than a per-pixel condition.
func (m Row) Inv() (Row, error) {
	det := m.Det()
	if det > -DET_TOLERANCE && det < DET_TOLERANCE {
		return Row{}, fmt.Errorf("%w: determinant %g", ErrSingular, det)
	}
	id := 1 / det
	return Row{
		{
			(m[1][1]*m[2][2] - m[1][2]*m[2][1]) * id,
			(m[0][2]*m[2][1] - m[0][1]*m[2][2]) * id,
			(m[0][1]*m[1][2] - m[0][2]*m[1][1]) * id,
		},
		{
			(m[1][2]*m[2][0] - m[1][0]*m[2][2]) * id,
			(m[0][0]*m[2][2] - m[0][2]*m[2][0]) * id,
			(m[0][2]*m[1][0] - m[0][0]*m[1][2]) * id,
		},
		{
			(m[1][0]*m[2][1] - m[1][1]*m[2][0]) * id,
			(m[0][1]*m[2][0] - m[0][0]*m[2][1]) * id,
			(m[0][0]*m[1][1] - m[0][1]*m[1][0]) * id,
		},
	}, nil
}

func (m Col) Inv() (Col, error) {
	inv, err := m.Row().Inv()
	if err != nil {
		return Col{}, err
	}
	return inv.Col(), nil
}

// Identity is the 3x3 identity matrix in row layout.
func Identity() Row {
	return Row{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Diagonal builds the matrix with v on the main diagonal.
func Diagonal(v Vec3) Row {
	return Row{{v[0], 0, 0}, {0, v[1], 0}, {0, 0, v[2]}}
}

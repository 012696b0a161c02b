package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutsAgree(t *testing.T) {
	// The same logical transform in both layouts must multiply
	// identically.
	row := Row{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}}
	col := row.Col()
	v := Vec3{0.25, -1, 3}
	require.Equal(t, row.MulVec(v), col.MulVec(v))
	require.Equal(t, row, col.Row())
}

func TestMulVec(t *testing.T) {
	m := Row{{1, 0, 0}, {0, 2, 0}, {0, 0, 3}}
	require.Equal(t, Vec3{5, 14, 27}, m.MulVec(Vec3{5, 7, 9}))
}

func TestInvRoundTrip(t *testing.T) {
	m := Row{{0.4124, 0.3576, 0.1805}, {0.2126, 0.7152, 0.0722}, {0.0193, 0.1192, 0.9505}}
	inv, err := m.Inv()
	require.NoError(t, err)
	id := m.Mul(inv)
	for i := range 3 {
		for j := range 3 {
			want := float32(0)
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, id[i][j], 1e-5, "entry %d,%d", i, j)
		}
	}

	v := Vec3{0.2, 0.5, 0.9}
	back := inv.MulVec(m.MulVec(v))
	for i := range 3 {
		assert.InDelta(t, v[i], back[i], 1e-5)
	}
}

func TestInvSingular(t *testing.T) {
	m := Row{{1, 2, 3}, {2, 4, 6}, {0, 1, 1}}
	_, err := m.Inv()
	require.ErrorIs(t, err, ErrSingular)
	_, err = m.Col().Inv()
	require.ErrorIs(t, err, ErrSingular)
}

func TestColInv(t *testing.T) {
	m := Row{{2, 1, 0}, {0, 3, 1}, {1, 0, 2}}
	rowInv, err := m.Inv()
	require.NoError(t, err)
	colInv, err := m.Col().Inv()
	require.NoError(t, err)
	require.Equal(t, rowInv, colInv.Row())
}

func TestMul(t *testing.T) {
	a := Row{{1, 2, 0}, {0, 1, 0}, {0, 0, 1}}
	b := Row{{1, 0, 0}, {3, 1, 0}, {0, 0, 1}}
	require.Equal(t, Row{{7, 2, 0}, {3, 1, 0}, {0, 0, 1}}, a.Mul(b))
}

func TestDiagonalIdentity(t *testing.T) {
	require.Equal(t, Identity(), Diagonal(Vec3{1, 1, 1}))
	v := Vec3{2, 3, 4}
	require.Equal(t, Vec3{2, 6, 12}, Diagonal(v).MulVec(Vec3{1, 2, 3}))
}

package lut

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kovidgoyal/colorspace/linear"
)

func square(v float32) float32 { return v * v }

func TestBuild8BitToLinear(t *testing.T) {
	tbl := Build8BitToLinear(square)
	require.EqualValues(t, 0, tbl[0])
	require.EqualValues(t, 1, tbl[255])
	for i := range tbl {
		want := square(linear.From8Bit(uint8(i)))
		assert.Equal(t, want, tbl[i], "index %d", i)
	}
}

func TestBuild16BitToLinear(t *testing.T) {
	tbl := Build16BitToLinear(square)
	require.EqualValues(t, 0, tbl[0])
	require.EqualValues(t, 1, tbl[65535])
	for _, i := range []int{1, 255, 256, 4095, 32768, 65534} {
		want := square(linear.From16Bit(uint16(i)))
		assert.Equal(t, want, tbl[i], "index %d", i)
	}
}

func TestBuildLinearTo8Bit(t *testing.T) {
	identity := func(v float32) float32 { return v }
	tbl := BuildLinearTo8Bit(identity)
	require.EqualValues(t, 0, tbl[0])
	require.EqualValues(t, 255, tbl[511])
	last := uint8(0)
	for i := range tbl {
		want := linear.NormalisedTo8Bit(float32(i) / 511)
		assert.Equal(t, want, tbl[i], "index %d", i)
		assert.GreaterOrEqual(t, tbl[i], last, "index %d", i)
		last = tbl[i]
	}
}

func TestBuildLinearTo16Bit(t *testing.T) {
	identity := func(v float32) float32 { return v }
	tbl := BuildLinearTo16Bit(identity)
	require.EqualValues(t, 0, tbl[0])
	require.EqualValues(t, 65535, tbl[65535])
	for _, i := range []int{1, 77, 256, 32767, 65534} {
		assert.EqualValues(t, i, tbl[i], "index %d", i)
	}
}

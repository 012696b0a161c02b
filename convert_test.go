package colorspace

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kovidgoyal/colorspace/matrix"
)

func TestIdentityConversion(t *testing.T) {
	spaces := []ColorSpace{
		NewRgb(SRGB),
		NewRgb(BT709RGB),
		NewOklab(),
		NewSrLab2(WhitepointD65),
		NewScalars(TransferLinear),
		// Identity must hold even for descriptors naming unimplemented
		// curves: no numeric interpretation happens.
		NewRgb(RgbColorSpace{Primaries: PrimariesBt2100, Transfer: TransferBt2100Pq, Whitepoint: WhitepointD65, Luminance: LuminanceHdr}),
	}
	p := Pixel{0.7, 0.2, 0.05, 0.5}
	for _, s := range spaces {
		got, err := PixelConvert(p, s, s)
		require.NoError(t, err, "%s", s)
		require.Equal(t, p, got, "%s", s)
	}
}

func TestSrgbToBt709(t *testing.T) {
	// Same primaries and whitepoint, so the conversion is re-encoding
	// through the two transfer curves only.
	src, dst := NewRgb(SRGB), NewRgb(BT709RGB)
	p := Pixel{0.5, 0.25, 0.75, 1}
	got, err := PixelConvert(p, src, dst)
	require.NoError(t, err)
	eo, err := TransferSrgb.Eotf()
	require.NoError(t, err)
	oe, err := TransferBt709.Oetf()
	require.NoError(t, err)
	for i := range 3 {
		assert.InDelta(t, oe(eo(p[i])), got[i], 1e-5, "channel %d", i)
	}
	require.Equal(t, p[3], got[3])

	back, err := PixelConvert(got, dst, src)
	require.NoError(t, err)
	for i := range 3 {
		assert.InDelta(t, p[i], back[i], 1e-5, "channel %d", i)
	}
}

func TestRgbThroughXyzScalars(t *testing.T) {
	// Linear scalars hold plain XYZ coefficients: converting sRGB white
	// to them must produce the D65 tristimulus.
	got, err := PixelConvert(Pixel{1, 1, 1, 1}, NewRgb(SRGB), NewScalars(TransferLinear))
	require.NoError(t, err)
	want := WhitepointD65.XYZ()
	for i := range 3 {
		assert.InDelta(t, want[i], got[i], 1e-5)
	}

	back, err := PixelConvert(got, NewScalars(TransferLinear), NewRgb(SRGB))
	require.NoError(t, err)
	for i := range 3 {
		assert.InDelta(t, 1, back[i], 1e-4, "channel %d", i)
	}
}

func TestScalarsWithTransfer(t *testing.T) {
	// A non-linear scalars space stores XYZ through the declared curve.
	enc := NewScalars(TransferSrgb)
	lin := NewScalars(TransferLinear)
	p := Pixel{0.5, 0.5, 0.5, 1}
	got, err := PixelConvert(p, enc, lin)
	require.NoError(t, err)
	eo, _ := TransferSrgb.Eotf()
	for i := range 3 {
		assert.InDelta(t, eo(p[i]), got[i], 1e-6)
	}
}

func TestScalarsParts(t *testing.T) {
	require.NoError(t, NewScalars(TransferLinear).CheckParts(PartsXyz))
	err := NewScalars(TransferLinear).CheckParts(PartsRgbA)
	require.ErrorIs(t, err, ErrInvalidColorSpace)
	require.NoError(t, NewRgb(SRGB).CheckParts(PartsRgbA))
}

func TestYuvNotImplemented(t *testing.T) {
	yuv := NewYuv(YuvColorSpace{
		Primaries: PrimariesBt709, Transfer: TransferBt709,
		Whitepoint: WhitepointD65, Differencing: DifferencingBt709,
	})
	_, err := PixelConvert(Pixel{0.5, 0.5, 0.5, 1}, yuv, NewRgb(SRGB))
	require.ErrorIs(t, err, ErrNotImplemented)
	_, err = PixelConvert(Pixel{0.5, 0.5, 0.5, 1}, NewRgb(SRGB), yuv)
	require.ErrorIs(t, err, ErrNotImplemented)
}

func TestUnimplementedTransferSurfaces(t *testing.T) {
	pq := NewRgb(RgbColorSpace{Primaries: PrimariesBt2100, Transfer: TransferBt2100Pq, Whitepoint: WhitepointD65, Luminance: LuminanceHdr})
	_, err := PixelConvert(Pixel{0.5, 0.5, 0.5, 1}, pq, NewRgb(SRGB))
	require.ErrorIs(t, err, ErrNotImplemented)
	_, err = PixelConvert(Pixel{0.5, 0.5, 0.5, 1}, NewRgb(SRGB), pq)
	require.ErrorIs(t, err, ErrNotImplemented)
	// The engine stays usable afterwards.
	_, err = PixelConvert(Pixel{0.5, 0.5, 0.5, 1}, NewRgb(SRGB), NewRgb(BT709RGB))
	require.NoError(t, err)
}

func TestBufferConvertMatchesPixelConvert(t *testing.T) {
	src := testBuffer(1013)
	c, err := NewConverter(NewRgb(SRGB), NewOklab())
	require.NoError(t, err)
	dst := make([]Pixel, len(src))
	require.NoError(t, c.Buffer(dst, src))
	want := make([]Pixel, len(src))
	for i, p := range src {
		want[i] = c.Pixel(p)
	}
	if diff := cmp.Diff(want, dst); diff != "" {
		t.Fatalf("buffer conversion differs from per-pixel conversion (-want +got):\n%s", diff)
	}
}

func TestBufferConvertLengthMismatch(t *testing.T) {
	src := testBuffer(4)
	dst := make([]Pixel, 3)
	err := BufferConvert(dst, src, NewRgb(SRGB), NewRgb(BT709RGB))
	require.Error(t, err)
}

func TestBufferConvertFailsWholeCall(t *testing.T) {
	src := testBuffer(8)
	dst := make([]Pixel, len(src))
	pq := NewRgb(RgbColorSpace{Primaries: PrimariesBt2100, Transfer: TransferBt2100Pq, Whitepoint: WhitepointD65, Luminance: LuminanceHdr})
	err := BufferConvert(dst, src, NewRgb(SRGB), pq)
	require.ErrorIs(t, err, ErrNotImplemented)
	require.Equal(t, make([]Pixel, len(src)), dst, "no partial output")
}

func TestBufferReencode(t *testing.T) {
	pix := testBuffer(257)
	want := make([]Pixel, len(pix))
	eo, _ := TransferSrgb.Eotf()
	oe, _ := TransferBt709.Oetf()
	for i, p := range pix {
		want[i] = Pixel{oe(eo(p[0])), oe(eo(p[1])), oe(eo(p[2])), p[3]}
	}
	require.NoError(t, BufferReencode(pix, TransferSrgb, TransferBt709))
	require.Equal(t, want, pix)

	require.ErrorIs(t, BufferReencode(pix, TransferBt2100Hlg, TransferSrgb), ErrNotImplemented)
	require.ErrorIs(t, BufferReencode(pix, TransferSrgb, TransferBt2100Hlg), ErrNotImplemented)
}

func TestBufferReencodeSameTransferIsNoop(t *testing.T) {
	pix := testBuffer(16)
	want := append([]Pixel(nil), pix...)
	require.NoError(t, BufferReencode(pix, TransferSrgb, TransferSrgb))
	require.Equal(t, want, pix)
}

func TestCrossGamutConversion(t *testing.T) {
	// BT.709 red expressed in BT.2020 must stay inside [0,1] and keep
	// its XYZ stimulus.
	src := NewRgb(SRGB)
	dst := NewRgb(RgbColorSpace{Primaries: PrimariesBt2020, Transfer: TransferLinear, Whitepoint: WhitepointD65, Luminance: LuminanceSdr})
	red := Pixel{1, 0, 0, 1}
	got, err := PixelConvert(red, src, dst)
	require.NoError(t, err)
	for i := range 3 {
		assert.GreaterOrEqual(t, got[i], float32(0))
		assert.LessOrEqual(t, got[i], float32(1))
	}

	m709, err := PrimariesBt709.ToXYZ(WhitepointD65)
	require.NoError(t, err)
	m2020, err := PrimariesBt2020.ToXYZ(WhitepointD65)
	require.NoError(t, err)
	wantXYZ := m709.MulVec(matrix.Vec3{1, 0, 0})
	gotXYZ := m2020.MulVec(matrix.Vec3{got[0], got[1], got[2]})
	for i := range 3 {
		assert.InDelta(t, wantXYZ[i], gotXYZ[i], 1e-4, "XYZ channel %d", i)
	}
}

func TestConverterIsReusableAndConcurrencySafe(t *testing.T) {
	c, err := NewConverter(NewRgb(SRGB), NewRgb(BT709RGB))
	require.NoError(t, err)
	p := Pixel{0.3, 0.6, 0.9, 1}
	first := c.Pixel(p)
	done := make(chan Pixel, 8)
	for range 8 {
		go func() { done <- c.Pixel(p) }()
	}
	for range 8 {
		require.Equal(t, first, <-done)
	}
}

package colorspace

import (
	"fmt"

	"github.com/kovidgoyal/go-parallel"

	"github.com/kovidgoyal/colorspace/matrix"
)

func vec(p Pixel) matrix.Vec3 { return matrix.Vec3{p[0], p[1], p[2]} }

func pix(v matrix.Vec3, alpha float32) Pixel { return Pixel{v[0], v[1], v[2], alpha} }

// Converter is a prepared conversion pipeline from one color space to
// another. All descriptor errors surface when it is built; the
// resulting per pixel map is total, deterministic and safe to share
// across goroutines. Building decodes the source to its linear
// representation, pivots through CIE XYZ and re-encodes for the
// destination, fusing adjacent matrix steps into one multiply.
//
// When source and destination whitepoints differ no chromatic
// adaptation is performed between the two whitepoint relative XYZ
// values; both are treated as the same CIE XYZ. This is a known
// limitation of the current construction.
type Converter struct {
	src, dst ColorSpace
	steps    []func(Pixel) Pixel
	pending  *matrix.Row
}

func (c *Converter) flush() {
	if c.pending == nil {
		return
	}
	m := *c.pending
	c.pending = nil
	c.steps = append(c.steps, func(p Pixel) Pixel {
		return pix(m.MulVec(vec(p)), p[3])
	})
}

func (c *Converter) addMatrix(m matrix.Row) {
	if c.pending != nil {
		fused := m.Mul(*c.pending)
		c.pending = &fused
		return
	}
	c.pending = &m
}

func (c *Converter) addFunc(f func(Pixel) Pixel) {
	c.flush()
	c.steps = append(c.steps, f)
}

func (c *Converter) addChannelwise(f func(float32) float32) {
	c.addFunc(func(p Pixel) Pixel { return applyRGB(f, p) })
}

// decodeToXYZ appends the steps taking an encoded pixel of space s to
// CIE XYZ.
func (c *Converter) decodeToXYZ(s ColorSpace) error {
	switch s.Model() {
	case ModelRgb:
		rgb := s.Rgb()
		eo, err := rgb.Transfer.Eotf()
		if err != nil {
			return err
		}
		m, err := rgb.Primaries.ToXYZ(rgb.Whitepoint)
		if err != nil {
			return err
		}
		if rgb.Transfer != TransferLinear {
			c.addChannelwise(eo)
		}
		c.addMatrix(m)
	case ModelScalars:
		// The payload is XYZ coefficients, possibly stored through an
		// RGB-ish encoding.
		if tr := s.ScalarsTransfer(); tr != TransferLinear {
			eo, err := tr.Eotf()
			if err != nil {
				return err
			}
			c.addChannelwise(eo)
		}
	case ModelOklab:
		c.addFunc(func(p Pixel) Pixel { return pix(XYZFromOklab(vec(p)), p[3]) })
	case ModelSrLab2:
		white := s.SrLab2Whitepoint()
		c.addFunc(func(p Pixel) Pixel { return pix(XYZFromSrLab2(vec(p), white), p[3]) })
	case ModelYuv:
		return fmt.Errorf("%w: conversion from Yuv (differencing %d)", ErrNotImplemented, s.Yuv().Differencing)
	default:
		return fmt.Errorf("%w: model %s", ErrInvalidColorSpace, s.Model())
	}
	return nil
}

// encodeFromXYZ appends the steps taking CIE XYZ to an encoded pixel of
// space s.
func (c *Converter) encodeFromXYZ(s ColorSpace) error {
	switch s.Model() {
	case ModelRgb:
		rgb := s.Rgb()
		oe, err := rgb.Transfer.Oetf()
		if err != nil {
			return err
		}
		m, err := rgb.Primaries.ToXYZ(rgb.Whitepoint)
		if err != nil {
			return err
		}
		inv, err := m.Inv()
		if err != nil {
			return fmt.Errorf("%w: %s/%s: %s", ErrSingularMatrix, rgb.Primaries, rgb.Whitepoint, err)
		}
		c.addMatrix(inv)
		if rgb.Transfer != TransferLinear {
			c.addChannelwise(oe)
		}
	case ModelScalars:
		if tr := s.ScalarsTransfer(); tr != TransferLinear {
			oe, err := tr.Oetf()
			if err != nil {
				return err
			}
			c.addChannelwise(oe)
		}
	case ModelOklab:
		c.addFunc(func(p Pixel) Pixel { return pix(OklabFromXYZ(vec(p)), p[3]) })
	case ModelSrLab2:
		white := s.SrLab2Whitepoint()
		c.addFunc(func(p Pixel) Pixel { return pix(SrLab2FromXYZ(vec(p), white), p[3]) })
	case ModelYuv:
		return fmt.Errorf("%w: conversion to Yuv (differencing %d)", ErrNotImplemented, s.Yuv().Differencing)
	default:
		return fmt.Errorf("%w: model %s", ErrInvalidColorSpace, s.Model())
	}
	return nil
}

// NewConverter builds the conversion pipeline from src to dst.
// Identical descriptors yield the identity conversion.
func NewConverter(src, dst ColorSpace) (*Converter, error) {
	c := &Converter{src: src, dst: dst}
	if src == dst {
		return c, nil
	}
	if err := c.decodeToXYZ(src); err != nil {
		return nil, err
	}
	if err := c.encodeFromXYZ(dst); err != nil {
		return nil, err
	}
	c.flush()
	return c, nil
}

// Pixel converts a single pixel. Alpha is passed through unchanged.
func (c *Converter) Pixel(p Pixel) Pixel {
	for _, step := range c.steps {
		p = step(p)
	}
	return p
}

// Buffer converts src into dst, which must have equal length. The
// output is positionally identical to converting each pixel with
// Pixel; chunks are processed in parallel as the per pixel map has no
// cross pixel state.
func (c *Converter) Buffer(dst, src []Pixel) error {
	if len(dst) != len(src) {
		return fmt.Errorf("colorspace: buffer length mismatch: dst %d src %d", len(dst), len(src))
	}
	return parallel.Run_in_parallel_over_range(0, func(start, limit int) {
		for i := start; i < limit; i++ {
			dst[i] = c.Pixel(src[i])
		}
	}, 0, len(src))
}

// PixelConvert converts one pixel from the source to the destination
// color space.
func PixelConvert(p Pixel, src, dst ColorSpace) (Pixel, error) {
	c, err := NewConverter(src, dst)
	if err != nil {
		return p, err
	}
	return c.Pixel(p), nil
}

// BufferConvert converts an ordered pixel buffer out of place. It fails
// as a whole before touching dst if the descriptor pair is invalid, so
// there is no partial output.
func BufferConvert(dst, src []Pixel, srcSpace, dstSpace ColorSpace) error {
	c, err := NewConverter(srcSpace, dstSpace)
	if err != nil {
		return err
	}
	return c.Buffer(dst, src)
}

// BufferReencode re-encodes a buffer in place from one transfer curve
// to another, leaving primaries and whitepoint alone. This is the
// transfer-only fast path for RGB to RGB conversion within one gamut.
func BufferReencode(pixels []Pixel, from, to Transfer) error {
	if from == to {
		return nil
	}
	eo, err := from.Eotf()
	if err != nil {
		return err
	}
	oe, err := to.Oetf()
	if err != nil {
		return err
	}
	return parallel.Run_in_parallel_over_range(0, func(start, limit int) {
		for i := start; i < limit; i++ {
			p := pixels[i]
			pixels[i] = Pixel{oe(eo(p[0])), oe(eo(p[1])), oe(eo(p[2])), p[3]}
		}
	}, 0, len(pixels))
}

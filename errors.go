package colorspace

import "errors"

var (
	// ErrNotImplemented is reported when a requested transfer curve or
	// conversion path has no numeric definition yet (BT.2020 12-bit,
	// the BT.2100 curves, YUV differencing). The engine stays usable
	// for every other path.
	ErrNotImplemented = errors.New("colorspace: not implemented")

	// ErrInvalidColorSpace is reported for descriptor combinations that
	// violate a construction invariant, such as Scalars paired with a
	// non-XYZ sample layout or a whitepoint outside the illuminant
	// table.
	ErrInvalidColorSpace = errors.New("colorspace: invalid color space")

	// ErrSingularMatrix is reported when a primaries/whitepoint
	// combination yields a non-invertible matrix. This cannot happen
	// for the standard tables; seeing it means corrupted chromaticity
	// data.
	ErrSingularMatrix = errors.New("colorspace: singular conversion matrix")

	// ErrNoVectorForm is reported by the slice-form transfer lookups
	// for curves that have a scalar definition but no vectorized
	// specialization. Distinct from ErrNotImplemented.
	ErrNoVectorForm = errors.New("colorspace: no vectorized form for transfer")
)

/*
Package colorspace converts pixel color values between encoded (gamma/transfer
coded) representations and a model specific linear representation, and between
color spaces defined by primaries, whitepoint and reference luminance.

Image operations such as mixing, blending and resampling are only correct when
performed on linear values, so the conversion entry points always decode to a
linear space first, transform through CIE XYZ, and re-encode for the
destination. Descriptors are immutable values; conversion matrices are derived
from them on demand, so callers that convert repeatedly between the same pair
of spaces should build the conversion once with NewConverter and reuse it.

All pixel level entry points operate on 4-channel float32 RGBA values with the
alpha channel passed through untouched. Concrete 8/16-bit channel
representations are adapted to that normalised form by the linear and srgb
subpackages.
*/
package colorspace

import "fmt"

var _ = fmt.Print

/*
Package waypath implements vectors, waypoints and tangent frames for smooth
paths through sparse sets of control points.

The algorithms live in sub-packages: package tangent fits Bezier handles
to a point and its neighbours, package points keeps the ordered list of
authored control points, and package spline expands them into a dense
"dynamic" curve which may be queried by parameter or by nearest sample.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package waypath

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/ungerik/go3d/float64/vec3"
)

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = math.Pi / 180

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// unitEpsilon is the magnitude below which a vector has no direction.
const unitEpsilon = 0.00001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// === Vec3 Data Type ========================================================

// Vec3 is a point or direction in 3D space. Y is the vertical axis.
type Vec3 = vec3.T

// Zero is the null vector (0,0,0).
var Zero = Vec3{}

// V is a quick notation for constructing a vector from floats.
func V(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Normalized returns v scaled to unit length. Vectors shorter than
// 1e-5 have no direction and yield the null vector.
func Normalized(v Vec3) Vec3 {
	l := v.Length()
	if l <= unitEpsilon {
		return Zero
	}
	return v.Scaled(1 / l)
}

// Scaled returns v multiplied by a.
func Scaled(v Vec3, a float64) Vec3 {
	return v.Scaled(a)
}

// Length returns |v|.
func Length(v Vec3) float64 {
	return v.Length()
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec3) float64 {
	d := vec3.Sub(&a, &b)
	return d.Length()
}

// SqrDistance returns the squared Euclidean distance between a and b.
func SqrDistance(a, b Vec3) float64 {
	d := vec3.Sub(&a, &b)
	return d.LengthSqr()
}

// Add returns a + b.
func Add(a, b Vec3) Vec3 {
	return vec3.Add(&a, &b)
}

// Sub returns a - b.
func Sub(a, b Vec3) Vec3 {
	return vec3.Sub(&a, &b)
}

// Cross returns a × b.
func Cross(a, b Vec3) Vec3 {
	return vec3.Cross(&a, &b)
}

// Lerp interpolates linearly between a (t=0) and b (t=1).
func Lerp(a, b Vec3, t float64) Vec3 {
	return vec3.Interpolate(&a, &b, t)
}

// AngleDeg returns the unsigned angle between a and b in degrees.
// If either vector has no length, the angle is 0.
func AngleDeg(a, b Vec3) float64 {
	denom := math.Sqrt(a.LengthSqr() * b.LengthSqr())
	if denom < 1e-15 {
		return 0
	}
	cos := vec3.Dot(&a, &b) / denom
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) / Deg2Rad
}

// Equal compares two vectors componentwise with tolerance Epsilon.
func Equal(a, b Vec3) bool {
	return Is0(a[0]-b[0]) && Is0(a[1]-b[1]) && Is0(a[2]-b[2])
}

// IsFinite is a predicate: are all components neither NaN nor infinite?
func IsFinite(v Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// VString is a pretty Stringer for vectors.
func VString(v Vec3) string {
	return fmt.Sprintf("(%g,%g,%g)", Zap(v[0]), Zap(v[1]), Zap(v[2]))
}

// === Pair Data Type ========================================================

// Pair is a 2D point, used for projections of a path onto the ground plane.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(float64(0), float64(0))

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p.C())
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p.C())
}

// Equal compares two pairs.
func (p Pair) Equal(p2 Pair) bool {
	return cmplx.Abs(p.C()-p2.C()) <= Epsilon
}

// Flat projects a vector onto the ground plane, dropping the vertical
// component: (x,y,z) → (x,z).
func Flat(v Vec3) Pair {
	return P(v[0], v[2])
}

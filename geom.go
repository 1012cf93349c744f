// Package geom provides a small kernel of axis-aligned rectangle
// geometry: points, sizes, rectangles, four-sided insets, and the
// anchor-relative addressing, subdivision, intersection, and distance
// operations defined over them.
//
// It is patterned after image.Rectangle and image.Point, but vastly
// extends their capabilities. Every type is a plain value type with
// copy semantics: no method mutates its receiver, and values may be
// freely shared between goroutines.
//
// Coordinates follow the screen convention: x increases rightward and
// y increases downward. A Rect is well-formed when its Min corner is
// componentwise less than or equal to its Max corner; operations
// assume well-formed inputs and produce well-formed outputs. The
// geomdebug build tag enables assertions that catch ill-formed inputs
// at the offending call site.
package geom

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// lerp linearly interpolates between a and b. t is unclamped; t
// outside [0, 1] extrapolates.
func lerp[T Scalar](a, b T, t float64) T {
	return T(float64(a) + (float64(b)-float64(a))*t)
}

// midpoint returns the scalar halfway between a and b.
func midpoint[T Scalar](a, b T) T {
	return (a + b) / 2
}

func half[T Scalar](v T) T {
	return v / 2
}

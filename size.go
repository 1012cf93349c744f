package geom

import "math"

// A Size is a width/height extent. A Size is positive when both
// dimensions are at least zero; constructors that take a Size
// document that requirement and check it only under the geomdebug
// build tag. Negative dimensions are a valid bit pattern but produce
// geometrically inverted rectangles when used directly.
type Size[T Scalar] struct {
	W, H T
}

// Sz is shorthand for Size[T]{w, h}.
func Sz[T Scalar](w, h T) Size[T] {
	return Size[T]{w, h}
}

// SzSquare returns a Size with equal width and height.
func SzSquare[T Scalar](side T) Size[T] {
	return Size[T]{side, side}
}

// SConv converts a Size[In] to a Size[Out] with possible loss of
// precision.
func SConv[Out, In Scalar](s Size[In]) Size[Out] {
	return Size[Out]{Out(s.W), Out(s.H)}
}

// IsPositive reports whether both dimensions are at least zero. This
// is the authoritative well-formedness check for a Size.
func (s Size[T]) IsPositive() bool {
	return s.W >= 0 && s.H >= 0
}

// Area returns the width multiplied by the height.
func (s Size[T]) Area() T {
	return s.W * s.H
}

// Aspect returns the width-to-height ratio. It is +Inf or NaN when
// the height is zero; the degeneracy propagates silently.
func (s Size[T]) Aspect() float64 {
	return float64(s.W) / float64(s.H)
}

// IsSquare reports whether the width and height are exactly equal.
// Floating-point arithmetic rarely produces exact equality; use
// IsSquareFuzzy when comparing computed sizes.
func (s Size[T]) IsSquare() bool {
	return s.W == s.H
}

// IsSquareFuzzy reports whether the width and height differ by at
// most eps.
func (s Size[T]) IsSquareFuzzy(eps T) bool {
	return max(s.W, s.H)-min(s.W, s.H) <= eps
}

// IsWide reports whether the width exceeds the height.
func (s Size[T]) IsWide() bool {
	return s.W > s.H
}

// IsTall reports whether the height exceeds the width.
func (s Size[T]) IsTall() bool {
	return s.H > s.W
}

// Scale scales both dimensions uniformly by factor.
func (s Size[T]) Scale(factor float64) Size[T] {
	return Size[T]{T(float64(s.W) * factor), T(float64(s.H) * factor)}
}

// Half returns the size with both dimensions halved.
func (s Size[T]) Half() Size[T] {
	return Size[T]{half(s.W), half(s.H)}
}

func (s Size[T]) HalfW() T { return half(s.W) }
func (s Size[T]) HalfH() T { return half(s.H) }

// MinDim returns the smaller dimension.
func (s Size[T]) MinDim() T {
	return min(s.W, s.H)
}

// MaxDim returns the larger dimension.
func (s Size[T]) MaxDim() T {
	return max(s.W, s.H)
}

// InnerSquare returns the largest square that fits within s.
func (s Size[T]) InnerSquare() Size[T] {
	return SzSquare(s.MinDim())
}

// Swap returns the size with width and height exchanged.
func (s Size[T]) Swap() Size[T] {
	return Size[T]{s.H, s.W}
}

func (s Size[T]) AddWH(w, h T) Size[T] {
	return Size[T]{s.W + w, s.H + h}
}

func (s Size[T]) SubWH(w, h T) Size[T] {
	return Size[T]{s.W - w, s.H - h}
}

func (s Size[T]) Add(t Size[T]) Size[T] { return s.AddWH(t.W, t.H) }
func (s Size[T]) Sub(t Size[T]) Size[T] { return s.SubWH(t.W, t.H) }

// Mul and Div scale both dimensions by a scalar. MulSz and DivSz are
// the componentwise forms.
func (s Size[T]) Mul(n T) Size[T] { return Size[T]{s.W * n, s.H * n} }
func (s Size[T]) Div(n T) Size[T] { return Size[T]{s.W / n, s.H / n} }

func (s Size[T]) MulSz(t Size[T]) Size[T] { return Size[T]{s.W * t.W, s.H * t.H} }
func (s Size[T]) DivSz(t Size[T]) Size[T] { return Size[T]{s.W / t.W, s.H / t.H} }

// Neg negates both dimensions.
func (s Size[T]) Neg() Size[T] {
	return Size[T]{-s.W, -s.H}
}

// AddMargin grows s by the margin's total contribution on each axis.
func (s Size[T]) AddMargin(m Margin[T]) Size[T] {
	return Size[T]{s.W + m.X(), s.H + m.Y()}
}

// SubMargin shrinks s by the margin's total contribution on each axis.
func (s Size[T]) SubMargin(m Margin[T]) Size[T] {
	return Size[T]{s.W - m.X(), s.H - m.Y()}
}

// Pt reinterprets s as a point.
func (s Size[T]) Pt() Point[T] {
	return Point[T]{s.W, s.H}
}

// IsZero reports whether both dimensions are zero.
func (s Size[T]) IsZero() bool {
	return s.W == 0 && s.H == 0
}

// Diag returns the length of the diagonal.
func (s Size[T]) Diag() float64 {
	return math.Hypot(float64(s.W), float64(s.H))
}

// Lerp linearly interpolates from s to t.
func (s Size[T]) Lerp(t Size[T], f float64) Size[T] {
	return Size[T]{lerp(s.W, t.W, f), lerp(s.H, t.H, f)}
}

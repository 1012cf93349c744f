package geom

// A Margin is a four-sided inset that grows a rectangle when applied:
// Rect.AddMargin and its variants push the affected edges outward by
// the corresponding fields. Fields may be negative.
//
// Margin and Padding have identical layouts and differ only in the
// sign of their effect; converting between them is a relabeling, not
// a value transform.
type Margin[T Scalar] struct {
	Left, Top, Right, Bottom T
}

// A Padding is a four-sided inset that shrinks a rectangle when
// applied: Rect.AddPadding pulls the affected edges inward by the
// corresponding fields. Fields may be negative.
type Padding[T Scalar] struct {
	Left, Top, Right, Bottom T
}

// Mgn is shorthand for Margin[T]{l, t, r, b}.
func Mgn[T Scalar](l, t, r, b T) Margin[T] {
	return Margin[T]{l, t, r, b}
}

// MgnSame returns a Margin with all four sides set to v.
func MgnSame[T Scalar](v T) Margin[T] {
	return Margin[T]{v, v, v, v}
}

// MgnSym returns a Margin with the left/right sides set to x and the
// top/bottom sides set to y.
func MgnSym[T Scalar](x, y T) Margin[T] {
	return Margin[T]{x, y, x, y}
}

// MgnConv converts a Margin[In] to a Margin[Out] with possible loss
// of precision.
func MgnConv[Out, In Scalar](m Margin[In]) Margin[Out] {
	return Margin[Out]{Out(m.Left), Out(m.Top), Out(m.Right), Out(m.Bottom)}
}

// Pad is shorthand for Padding[T]{l, t, r, b}.
func Pad[T Scalar](l, t, r, b T) Padding[T] {
	return Padding[T]{l, t, r, b}
}

// PadSame returns a Padding with all four sides set to v.
func PadSame[T Scalar](v T) Padding[T] {
	return Padding[T]{v, v, v, v}
}

// PadSym returns a Padding with the left/right sides set to x and the
// top/bottom sides set to y.
func PadSym[T Scalar](x, y T) Padding[T] {
	return Padding[T]{x, y, x, y}
}

// PadConv converts a Padding[In] to a Padding[Out] with possible loss
// of precision.
func PadConv[Out, In Scalar](p Padding[In]) Padding[Out] {
	return Padding[Out]{Out(p.Left), Out(p.Top), Out(p.Right), Out(p.Bottom)}
}

// X returns the margin's total contribution along the x axis.
func (m Margin[T]) X() T {
	return m.Left + m.Right
}

// Y returns the margin's total contribution along the y axis.
func (m Margin[T]) Y() T {
	return m.Top + m.Bottom
}

// Size returns the total contribution on both axes as a Size.
func (m Margin[T]) Size() Size[T] {
	return Size[T]{m.X(), m.Y()}
}

func (m Margin[T]) Add(n Margin[T]) Margin[T] {
	return Margin[T]{m.Left + n.Left, m.Top + n.Top, m.Right + n.Right, m.Bottom + n.Bottom}
}

func (m Margin[T]) Sub(n Margin[T]) Margin[T] {
	return Margin[T]{m.Left - n.Left, m.Top - n.Top, m.Right - n.Right, m.Bottom - n.Bottom}
}

// Lerp linearly interpolates each side from m to n. t is unclamped.
func (m Margin[T]) Lerp(n Margin[T], t float64) Margin[T] {
	return Margin[T]{
		Left:   lerp(m.Left, n.Left, t),
		Top:    lerp(m.Top, n.Top, t),
		Right:  lerp(m.Right, n.Right, t),
		Bottom: lerp(m.Bottom, n.Bottom, t),
	}
}

// ClampedLerp is Lerp with t clamped to [0, 1].
func (m Margin[T]) ClampedLerp(n Margin[T], t float64) Margin[T] {
	return m.Lerp(n, clamp01(t))
}

// Padding relabels m as a Padding. The field values are unchanged;
// only the sign of the effect flips.
func (m Margin[T]) Padding() Padding[T] {
	return Padding[T](m)
}

// X returns the padding's total contribution along the x axis.
func (p Padding[T]) X() T {
	return p.Left + p.Right
}

// Y returns the padding's total contribution along the y axis.
func (p Padding[T]) Y() T {
	return p.Top + p.Bottom
}

// Size returns the total contribution on both axes as a Size.
func (p Padding[T]) Size() Size[T] {
	return Size[T]{p.X(), p.Y()}
}

func (p Padding[T]) Add(q Padding[T]) Padding[T] {
	return Padding[T]{p.Left + q.Left, p.Top + q.Top, p.Right + q.Right, p.Bottom + q.Bottom}
}

func (p Padding[T]) Sub(q Padding[T]) Padding[T] {
	return Padding[T]{p.Left - q.Left, p.Top - q.Top, p.Right - q.Right, p.Bottom - q.Bottom}
}

// Lerp linearly interpolates each side from p to q. t is unclamped.
func (p Padding[T]) Lerp(q Padding[T], t float64) Padding[T] {
	return Padding[T]{
		Left:   lerp(p.Left, q.Left, t),
		Top:    lerp(p.Top, q.Top, t),
		Right:  lerp(p.Right, q.Right, t),
		Bottom: lerp(p.Bottom, q.Bottom, t),
	}
}

// ClampedLerp is Lerp with t clamped to [0, 1].
func (p Padding[T]) ClampedLerp(q Padding[T], t float64) Padding[T] {
	return p.Lerp(q, clamp01(t))
}

// Margin relabels p as a Margin. The field values are unchanged; only
// the sign of the effect flips.
func (p Padding[T]) Margin() Margin[T] {
	return Margin[T](p)
}

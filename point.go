package geom

import (
	"image"
	"math"
)

// A Point is a position in 2D space. X increases rightward and Y
// increases downward.
//
// All bit patterns, including NaN and infinities, are structurally
// valid Points; operations that divide by a derived quantity (such as
// Normalized on a zero vector) propagate NaN/Inf rather than
// reporting an error.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{x, y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{x, y}
}

// PtSplat returns a Point with both components set to v.
func PtSplat[T Scalar](v T) Point[T] {
	return Point[T]{v, v}
}

// PtFromAngle returns the unit vector at the given angle in radians,
// using the same y-down convention as Point.Angle.
func PtFromAngle(angle float64) Point[float64] {
	sin, cos := math.Sincos(angle)
	return Point[float64]{cos, -sin}
}

// PConv converts a Point[In] to a Point[Out] with possible loss of
// precision.
func PConv[Out, In Scalar](p Point[In]) Point[Out] {
	return Point[Out]{Out(p.X), Out(p.Y)}
}

// FromImagePoint converts an image.Point.
func FromImagePoint(p image.Point) Point[int] {
	return Point[int]{p.X, p.Y}
}

// ImagePoint converts p to an image.Point, truncating fractional
// components.
func (p Point[T]) ImagePoint() image.Point {
	return image.Pt(int(p.X), int(p.Y))
}

// WithX returns p with its X component replaced.
func (p Point[T]) WithX(x T) Point[T] {
	p.X = x
	return p
}

// WithY returns p with its Y component replaced.
func (p Point[T]) WithY(y T) Point[T] {
	p.Y = y
	return p
}

// YX returns p with its components swapped.
func (p Point[T]) YX() Point[T] {
	return Point[T]{p.Y, p.X}
}

// AddXY is the primitive behind every addition overload; the other
// forms are defined in terms of it so that all of them round
// identically.
func (p Point[T]) AddXY(x, y T) Point[T] {
	return Point[T]{p.X + x, p.Y + y}
}

func (p Point[T]) SubXY(x, y T) Point[T] {
	return Point[T]{p.X - x, p.Y - y}
}

func (p Point[T]) MulXY(x, y T) Point[T] {
	return Point[T]{p.X * x, p.Y * y}
}

func (p Point[T]) DivXY(x, y T) Point[T] {
	return Point[T]{p.X / x, p.Y / y}
}

func (p Point[T]) ModXY(x, y T) Point[T] {
	return Point[T]{mod(p.X, x), mod(p.Y, y)}
}

func (p Point[T]) Add(q Point[T]) Point[T] { return p.AddXY(q.X, q.Y) }
func (p Point[T]) Sub(q Point[T]) Point[T] { return p.SubXY(q.X, q.Y) }

// MulPt and DivPt are the componentwise product and quotient. Mul and
// Div take a scalar.
func (p Point[T]) MulPt(q Point[T]) Point[T] { return p.MulXY(q.X, q.Y) }
func (p Point[T]) DivPt(q Point[T]) Point[T] { return p.DivXY(q.X, q.Y) }
func (p Point[T]) ModPt(q Point[T]) Point[T] { return p.ModXY(q.X, q.Y) }

func (p Point[T]) Mul(n T) Point[T] { return p.MulXY(n, n) }
func (p Point[T]) Div(n T) Point[T] { return p.DivXY(n, n) }
func (p Point[T]) Mod(n T) Point[T] { return p.ModXY(n, n) }

// AddSize treats s as an offset from p.
func (p Point[T]) AddSize(s Size[T]) Point[T] { return p.AddXY(s.W, s.H) }
func (p Point[T]) SubSize(s Size[T]) Point[T] { return p.SubXY(s.W, s.H) }

// Neg returns the componentwise negation of p.
func (p Point[T]) Neg() Point[T] {
	return Point[T]{-p.X, -p.Y}
}

// Abs returns the componentwise absolute value of p.
func (p Point[T]) Abs() Point[T] {
	if p.X < 0 {
		p.X = -p.X
	}
	if p.Y < 0 {
		p.Y = -p.Y
	}
	return p
}

// Min returns the componentwise minimum of p and q.
func (p Point[T]) Min(q Point[T]) Point[T] {
	return Point[T]{min(p.X, q.X), min(p.Y, q.Y)}
}

// Max returns the componentwise maximum of p and q.
func (p Point[T]) Max(q Point[T]) Point[T] {
	return Point[T]{max(p.X, q.X), max(p.Y, q.Y)}
}

// MinMax returns the componentwise minimum and maximum of p and q.
// The results always satisfy lo.LessEq(hi).
func (p Point[T]) MinMax(q Point[T]) (lo, hi Point[T]) {
	return p.Min(q), p.Max(q)
}

func (p Point[T]) Floor() Point[T] {
	return Point[T]{T(math.Floor(float64(p.X))), T(math.Floor(float64(p.Y)))}
}

func (p Point[T]) Ceil() Point[T] {
	return Point[T]{T(math.Ceil(float64(p.X))), T(math.Ceil(float64(p.Y)))}
}

func (p Point[T]) Round() Point[T] {
	return Point[T]{T(math.Round(float64(p.X))), T(math.Round(float64(p.Y)))}
}

func (p Point[T]) Trunc() Point[T] {
	return Point[T]{T(math.Trunc(float64(p.X))), T(math.Trunc(float64(p.Y)))}
}

// Signum returns the componentwise sign of p: -1, 0, or 1.
func (p Point[T]) Signum() Point[T] {
	return Point[T]{signum(p.X), signum(p.Y)}
}

// IsFinite reports whether both components are finite.
func (p Point[T]) IsFinite() bool {
	return !math.IsInf(float64(p.X), 0) && !math.IsNaN(float64(p.X)) &&
		!math.IsInf(float64(p.Y), 0) && !math.IsNaN(float64(p.Y))
}

// IsNaN reports whether either component is NaN.
func (p Point[T]) IsNaN() bool {
	return math.IsNaN(float64(p.X)) || math.IsNaN(float64(p.Y))
}

// IsZero reports whether both components are zero.
func (p Point[T]) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// LengthSquared returns the squared distance from the origin.
func (p Point[T]) LengthSquared() float64 {
	x, y := float64(p.X), float64(p.Y)
	return x*x + y*y
}

// Length returns the distance from the origin.
func (p Point[T]) Length() float64 {
	return math.Sqrt(p.LengthSquared())
}

func (p Point[T]) DistSquared(q Point[T]) float64 {
	return q.Sub(p).LengthSquared()
}

// Dist returns the Euclidean distance between p and q.
func (p Point[T]) Dist(q Point[T]) float64 {
	return math.Sqrt(p.DistSquared(q))
}

// Dot returns the dot product of p and q.
func (p Point[T]) Dot(q Point[T]) float64 {
	return float64(p.X)*float64(q.X) + float64(p.Y)*float64(q.Y)
}

// Cross returns the 2D cross product of p and q.
func (p Point[T]) Cross(q Point[T]) float64 {
	return float64(p.X)*float64(q.Y) - float64(p.Y)*float64(q.X)
}

// Angle returns the angle of p in radians. Because y grows downward,
// the angle is computed as atan2(-y, x): a vector pointing down the
// screen has a negative angle.
func (p Point[T]) Angle() float64 {
	return math.Atan2(-float64(p.Y), float64(p.X))
}

// NormalizedAngle returns Angle wrapped into [0, 2π).
func (p Point[T]) NormalizedAngle() float64 {
	return normalizeAngle(p.Angle())
}

// Cardinal maps the direction of p into one of the eight 45°-wide
// compass octants. Ties are broken by flooring (angle + π/8) / (π/4),
// so an exact boundary angle lands in the counter-clockwise octant.
func (p Point[T]) Cardinal() Cardinal {
	theta := p.NormalizedAngle()
	octant := int(math.Floor(normalizeAngle(theta+math.Pi/8)/(math.Pi/4))) & 0b111
	return Cardinal(octant)
}

// Axial maps the direction of p into one of the four 90°-wide
// quadrants centered on the axes.
func (p Point[T]) Axial() Axial {
	theta := p.Angle()
	quadrant := int(math.Floor((theta+math.Pi/4)/(math.Pi/2))) & 0b11
	return Axial(quadrant)
}

// Normalized returns p scaled to unit length. A zero-length p yields
// NaN components; callers needing strict numeric safety must check
// first.
func (p Point[T]) Normalized() Point[T] {
	l := p.Length()
	return Point[T]{T(float64(p.X) / l), T(float64(p.Y) / l)}
}

// PerpCW returns p rotated 90 degrees clockwise (screen convention).
func (p Point[T]) PerpCW() Point[T] {
	return Point[T]{-p.Y, p.X}
}

// PerpCCW returns p rotated 90 degrees counter-clockwise.
func (p Point[T]) PerpCCW() Point[T] {
	return Point[T]{p.Y, -p.X}
}

// Reflect reflects p about the given normal. Both p and normal are
// assumed to be unit vectors.
func (p Point[T]) Reflect(normal Point[T]) Point[T] {
	d := T(2 * p.Dot(normal))
	return p.Sub(normal.Mul(d))
}

// Rotate rotates p by the rotation that q represents. Both are
// assumed to be unit vectors.
func (p Point[T]) Rotate(q Point[T]) Point[T] {
	return Point[T]{
		X: p.X*q.X - p.Y*q.Y,
		Y: p.Y*q.X + p.X*q.Y,
	}
}

// Lerp linearly interpolates from p to q. t is unclamped.
func (p Point[T]) Lerp(q Point[T], t float64) Point[T] {
	return Point[T]{lerp(p.X, q.X, t), lerp(p.Y, q.Y, t)}
}

// ClampedLerp is Lerp with t clamped to [0, 1].
func (p Point[T]) ClampedLerp(q Point[T], t float64) Point[T] {
	return p.Lerp(q, clamp01(t))
}

// Midpoint returns the point halfway between p and q.
func (p Point[T]) Midpoint(q Point[T]) Point[T] {
	return Point[T]{midpoint(p.X, q.X), midpoint(p.Y, q.Y)}
}

// Clamp clamps p componentwise into the box spanned by lo and hi.
// lo must be componentwise less than or equal to hi.
func (p Point[T]) Clamp(lo, hi Point[T]) Point[T] {
	debugAssert(lo.LessEq(hi), "Point.Clamp: lo is greater than hi")
	return Point[T]{clamp(p.X, lo.X, hi.X), clamp(p.Y, lo.Y, hi.Y)}
}

// ClampXY clamps both components of p into [lo, hi].
func (p Point[T]) ClampXY(lo, hi T) Point[T] {
	return Point[T]{clamp(p.X, lo, hi), clamp(p.Y, lo, hi)}
}

// ClampLength scales p so that its length lies within [lo, hi],
// preserving direction. A zero-length p yields NaN components when
// scaling is required.
func (p Point[T]) ClampLength(lo, hi float64) Point[T] {
	l := p.Length()
	if l >= lo && l <= hi {
		return p
	}
	m := clamp(l, lo, hi) / l
	return Point[T]{T(float64(p.X) * m), T(float64(p.Y) * m)}
}

// ClampLengthMin scales p up to length lo if it is shorter.
func (p Point[T]) ClampLengthMin(lo float64) Point[T] {
	return p.ClampLength(lo, math.Inf(1))
}

// ClampLengthMax scales p down to length hi if it is longer.
func (p Point[T]) ClampLengthMax(hi float64) Point[T] {
	l := p.Length()
	if l <= hi {
		return p
	}
	m := hi / l
	return Point[T]{T(float64(p.X) * m), T(float64(p.Y) * m)}
}

// Less reports whether p is componentwise strictly less than q. The
// comparison methods are conjunctions across both axes, not a total
// order: Less and More can both be false for distinct points.
func (p Point[T]) Less(q Point[T]) bool {
	return p.X < q.X && p.Y < q.Y
}

// LessEq reports whether p is componentwise less than or equal to q.
func (p Point[T]) LessEq(q Point[T]) bool {
	return p.X <= q.X && p.Y <= q.Y
}

// More reports whether p is componentwise strictly greater than q.
func (p Point[T]) More(q Point[T]) bool {
	return p.X > q.X && p.Y > q.Y
}

// MoreEq reports whether p is componentwise greater than or equal to q.
func (p Point[T]) MoreEq(q Point[T]) bool {
	return p.X >= q.X && p.Y >= q.Y
}

// Compare partially orders p against q. It returns -1, 0, or 1 when p
// is componentwise less than, equal to, or greater than q, with
// ok true; for incomparable pairs such as (1,0) and (0,1) it returns
// (0, false).
func (p Point[T]) Compare(q Point[T]) (c int, ok bool) {
	switch {
	case p == q:
		return 0, true
	case p.Less(q):
		return -1, true
	case p.More(q):
		return 1, true
	}
	return 0, false
}

// Size reinterprets p as an extent.
func (p Point[T]) Size() Size[T] {
	return Size[T]{p.X, p.Y}
}

// RectOf returns the rectangle with min corner p and the given size.
func (p Point[T]) RectOf(size Size[T]) Rect[T] {
	return RectMinSize(p, size)
}

// CenteredRectOf returns the rectangle of the given size centered on p.
func (p Point[T]) CenteredRectOf(size Size[T]) Rect[T] {
	return RectCentered(p, size)
}

// SnapToRect returns the point on r closest to p.
func (p Point[T]) SnapToRect(r Rect[T]) Point[T] {
	return r.ClosestPoint(p)
}

// normalizeAngle wraps an angle in radians into [0, 2π).
func normalizeAngle(theta float64) float64 {
	theta = math.Mod(theta, 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return theta
}

func clamp[T Scalar](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

func clamp01(t float64) float64 {
	return clamp(t, 0, 1)
}

func signum[T Scalar](v T) T {
	switch {
	case v > 0:
		return 1
	case v < 0:
		// -(v / v) instead of -1: the constant is not representable
		// by unsigned instantiations, which never reach this branch.
		return -(v / v)
	}
	return v
}

// mod is the truncated remainder. Integer types compute it exactly
// and panic on a zero divisor like % does; float types go through
// math.Mod, which has the same sign convention.
func mod[T Scalar](a, b T) T {
	// T(1)/T(2) is nonzero exactly for the float instantiations.
	if T(1)/T(2) != 0 {
		return T(math.Mod(float64(a), float64(b)))
	}
	return a - a/b*b
}

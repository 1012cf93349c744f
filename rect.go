package geom

import "image"

// A Rect is an axis-aligned rectangle defined by its Min and Max
// corners. It contains the points with Min.X <= X < Max.X,
// Min.Y <= Y < Max.Y: the Max edges are exclusive.
//
// A Rect is well-formed if Min.X <= Max.X and likewise for Y.
// Degenerate rectangles with Min == Max are well-formed and represent
// zero-area regions. Width, height, edges, and center are derived
// from the corners, never stored, so they cannot fall out of sync.
// Methods assume well-formed receivers and return well-formed results
// for well-formed, positive-size inputs; under the geomdebug build
// tag the constructors assert their preconditions.
type Rect[T Scalar] struct {
	Min, Max Point[T]
}

// Rt is shorthand for Rect{Pt(x0, y0), Pt(x1, y1)}. The returned
// rectangle has minimum and maximum coordinates swapped if necessary
// so that it is well-formed.
func Rt[T Scalar](x0, y0, x1, y1 T) Rect[T] {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Rect[T]{Point[T]{x0, y0}, Point[T]{x1, y1}}
}

// RectMinMax returns the rectangle spanning min and max, which must
// already satisfy min <= max componentwise.
func RectMinMax[T Scalar](min, max Point[T]) Rect[T] {
	debugAssert(min.LessEq(max), "RectMinMax: min is greater than max")
	return Rect[T]{min, max}
}

// RectWH returns the rectangle at (x, y) with the given width and
// height, which must be at least zero.
func RectWH[T Scalar](x, y, w, h T) Rect[T] {
	debugAssert(Sz(w, h).IsPositive(), "RectWH: negative size")
	return Rect[T]{Point[T]{x, y}, Point[T]{x + w, y + h}}
}

// RectMinSize returns the rectangle with the given min corner and
// size. The size must be positive.
func RectMinSize[T Scalar](min Point[T], size Size[T]) Rect[T] {
	debugAssert(size.IsPositive(), "RectMinSize: negative size")
	return Rect[T]{min, min.AddXY(size.W, size.H)}
}

// RectSquare returns the square with the given min corner and side
// length, which must be at least zero.
func RectSquare[T Scalar](min Point[T], side T) Rect[T] {
	debugAssert(side >= 0, "RectSquare: negative side length")
	return Rect[T]{min, min.AddXY(side, side)}
}

// RectCentered returns the rectangle of the given size centered on
// center. The size must be positive.
func RectCentered[T Scalar](center Point[T], size Size[T]) Rect[T] {
	debugAssert(size.IsPositive(), "RectCentered: negative size")
	h := size.Half()
	min := center.SubXY(h.W, h.H)
	return Rect[T]{min, min.AddXY(size.W, size.H)}
}

// RectCenteredSquare returns the square with the given side length
// centered on center. The side length must be at least zero.
func RectCenteredSquare[T Scalar](center Point[T], side T) Rect[T] {
	debugAssert(side >= 0, "RectCenteredSquare: negative side length")
	h := half(side)
	min := center.SubXY(h, h)
	return Rect[T]{min, min.AddXY(side, side)}
}

// RectAnchored returns the rectangle of the given size positioned so
// that the named anchor coincides with pivot. This is how a layout
// places a box "by its top-left" versus "by its center" without
// bespoke code per anchor. The size must be positive.
func RectAnchored[T Scalar](a Anchor, pivot Point[T], size Size[T]) Rect[T] {
	debugAssert(size.IsPositive(), "RectAnchored: negative size")
	switch a {
	case AnchorLeftTop:
		return RectMinSize(pivot, size)
	case AnchorLeftCenter:
		return RectMinSize(Pt(pivot.X, pivot.Y-size.HalfH()), size)
	case AnchorLeftBottom:
		return RectMinSize(Pt(pivot.X, pivot.Y-size.H), size)
	case AnchorBottomCenter:
		return RectMinSize(Pt(pivot.X-size.HalfW(), pivot.Y-size.H), size)
	case AnchorRightBottom:
		return RectMinSize(Pt(pivot.X-size.W, pivot.Y-size.H), size)
	case AnchorRightCenter:
		return RectMinSize(Pt(pivot.X-size.W, pivot.Y-size.HalfH()), size)
	case AnchorRightTop:
		return RectMinSize(Pt(pivot.X-size.W, pivot.Y), size)
	case AnchorTopCenter:
		return RectMinSize(Pt(pivot.X-size.HalfW(), pivot.Y), size)
	}
	h := size.Half()
	return RectMinSize(Pt(pivot.X-h.W, pivot.Y-h.H), size)
}

// RectFromPoints returns the smallest rectangle spanning p0 and p1.
// The points may be in any order.
func RectFromPoints[T Scalar](p0, p1 Point[T]) Rect[T] {
	return Rect[T]{p0.Min(p1), p0.Max(p1)}
}

// RConv converts a Rect[In] to a Rect[Out] with possible loss of
// precision.
func RConv[Out, In Scalar](r Rect[In]) Rect[Out] {
	return Rect[Out]{PConv[Out](r.Min), PConv[Out](r.Max)}
}

// FromImageRect converts an image.Rectangle.
func FromImageRect(r image.Rectangle) Rect[int] {
	return Rect[int]{FromImagePoint(r.Min), FromImagePoint(r.Max)}
}

// ImageRect converts r to an image.Rectangle, truncating fractional
// coordinates.
func (r Rect[T]) ImageRect() image.Rectangle {
	return image.Rectangle{Min: r.Min.ImagePoint(), Max: r.Max.ImagePoint()}
}

// MinRect returns the smallest rectangle containing every rect given.
// It returns the zero Rect when called with no arguments; callers
// must not mistake that for "no bound".
func MinRect[T Scalar](rects ...Rect[T]) Rect[T] {
	if len(rects) == 0 {
		return Rect[T]{}
	}
	bound := rects[0]
	for _, r := range rects[1:] {
		bound = bound.Union(r)
	}
	return bound
}

// Canon returns a well-formed version of r, swapping the min and max
// coordinates on each axis if necessary.
func (r Rect[T]) Canon() Rect[T] {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Dx returns r's width.
func (r Rect[T]) Dx() T {
	return r.Max.X - r.Min.X
}

// Dy returns r's height.
func (r Rect[T]) Dy() T {
	return r.Max.Y - r.Min.Y
}

// Size returns r's extent.
func (r Rect[T]) Size() Size[T] {
	return Size[T]{r.Dx(), r.Dy()}
}

// Aspect returns r's width-to-height ratio. It is +Inf or NaN for a
// rect of zero height.
func (r Rect[T]) Aspect() float64 {
	return float64(r.Dx()) / float64(r.Dy())
}

// Empty reports whether r contains no points.
func (r Rect[T]) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// IsZero reports whether r is the zero Rect.
func (r Rect[T]) IsZero() bool {
	return r.Min.IsZero() && r.Max.IsZero()
}

// WithSize returns r resized to size, holding the min corner fixed.
func (r Rect[T]) WithSize(size Size[T]) Rect[T] {
	return Rect[T]{r.Min, r.Min.AddXY(size.W, size.H)}
}

// WithSizeCentered returns r resized to size, holding the center
// fixed.
func (r Rect[T]) WithSizeCentered(size Size[T]) Rect[T] {
	return RectCentered(r.Center(), size)
}

// WithSizeAnchored returns r resized to size, holding the named
// anchor's position fixed.
func (r Rect[T]) WithSizeAnchored(size Size[T], a Anchor) Rect[T] {
	return RectAnchored(a, r.Anchor(a), size)
}

// WithDx returns r with the given width, holding the left edge fixed.
func (r Rect[T]) WithDx(w T) Rect[T] {
	r.Max.X = r.Min.X + w
	return r
}

// WithDxCentered returns r with the given width, holding the vertical
// centerline fixed.
func (r Rect[T]) WithDxCentered(w T) Rect[T] {
	mid := midpoint(r.Min.X, r.Max.X)
	r.Min.X = mid - half(w)
	r.Max.X = r.Min.X + w
	return r
}

// WithDxRight returns r with the given width, holding the right edge
// fixed.
func (r Rect[T]) WithDxRight(w T) Rect[T] {
	r.Min.X = r.Max.X - w
	return r
}

// WithDy returns r with the given height, holding the top edge fixed.
func (r Rect[T]) WithDy(h T) Rect[T] {
	r.Max.Y = r.Min.Y + h
	return r
}

// WithDyCentered returns r with the given height, holding the
// horizontal centerline fixed.
func (r Rect[T]) WithDyCentered(h T) Rect[T] {
	mid := midpoint(r.Min.Y, r.Max.Y)
	r.Min.Y = mid - half(h)
	r.Max.Y = r.Min.Y + h
	return r
}

// WithDyBottom returns r with the given height, holding the bottom
// edge fixed.
func (r Rect[T]) WithDyBottom(h T) Rect[T] {
	r.Min.Y = r.Max.Y - h
	return r
}

// SwapDims exchanges r's width and height, holding the min corner
// fixed.
func (r Rect[T]) SwapDims() Rect[T] {
	return r.WithSize(r.Size().Swap())
}

// SwapDimsCentered exchanges r's width and height, holding the center
// fixed.
func (r Rect[T]) SwapDimsCentered() Rect[T] {
	return r.WithSizeCentered(r.Size().Swap())
}

// SwapDimsAnchored exchanges r's width and height, holding the named
// anchor fixed.
func (r Rect[T]) SwapDimsAnchored(a Anchor) Rect[T] {
	return r.WithSizeAnchored(r.Size().Swap(), a)
}

// Left returns the x coordinate of the left edge.
func (r Rect[T]) Left() T { return r.Min.X }

// Top returns the y coordinate of the top edge.
func (r Rect[T]) Top() T { return r.Min.Y }

// Right returns the x coordinate of the right edge.
func (r Rect[T]) Right() T { return r.Max.X }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect[T]) Bottom() T { return r.Max.Y }

// WithLeft moves r so its left edge sits at x, holding the size
// fixed. WithLeftBound moves only the edge, changing the size.
func (r Rect[T]) WithLeft(x T) Rect[T] {
	w := r.Dx()
	r.Min.X = x
	r.Max.X = x + w
	return r
}

func (r Rect[T]) WithLeftBound(x T) Rect[T] {
	r.Min.X = x
	return r
}

// WithRight moves r so its right edge sits at x, holding the size
// fixed.
func (r Rect[T]) WithRight(x T) Rect[T] {
	w := r.Dx()
	r.Min.X = x - w
	r.Max.X = x
	return r
}

func (r Rect[T]) WithRightBound(x T) Rect[T] {
	r.Max.X = x
	return r
}

// WithTop moves r so its top edge sits at y, holding the size fixed.
func (r Rect[T]) WithTop(y T) Rect[T] {
	h := r.Dy()
	r.Min.Y = y
	r.Max.Y = y + h
	return r
}

func (r Rect[T]) WithTopBound(y T) Rect[T] {
	r.Min.Y = y
	return r
}

// WithBottom moves r so its bottom edge sits at y, holding the size
// fixed.
func (r Rect[T]) WithBottom(y T) Rect[T] {
	h := r.Dy()
	r.Min.Y = y - h
	r.Max.Y = y
	return r
}

func (r Rect[T]) WithBottomBound(y T) Rect[T] {
	r.Max.Y = y
	return r
}

// Anchor position accessors. Each getter has a matching *At setter
// that holds the current size fixed and repositions the rectangle so
// the named anchor sits at the given point. For float instantiations
// r.LeftTopAt(r.LeftTop()) is always a no-op; integer rects keep
// their size too, but a centered anchor can land within one unit of
// the requested point when a midpoint truncates.

func (r Rect[T]) LeftTop() Point[T] { return r.Min }

func (r Rect[T]) LeftTopAt(p Point[T]) Rect[T] {
	size := r.Size()
	return Rect[T]{p, p.AddXY(size.W, size.H)}
}

func (r Rect[T]) RightTop() Point[T] { return Point[T]{r.Max.X, r.Min.Y} }

func (r Rect[T]) RightTopAt(p Point[T]) Rect[T] {
	size := r.Size()
	return Rect[T]{Pt(p.X-size.W, p.Y), Pt(p.X, p.Y+size.H)}
}

func (r Rect[T]) LeftBottom() Point[T] { return Point[T]{r.Min.X, r.Max.Y} }

func (r Rect[T]) LeftBottomAt(p Point[T]) Rect[T] {
	size := r.Size()
	return Rect[T]{Pt(p.X, p.Y-size.H), Pt(p.X+size.W, p.Y)}
}

func (r Rect[T]) RightBottom() Point[T] { return r.Max }

func (r Rect[T]) RightBottomAt(p Point[T]) Rect[T] {
	size := r.Size()
	return Rect[T]{p.SubXY(size.W, size.H), p}
}

func (r Rect[T]) LeftCenter() Point[T] {
	return Point[T]{r.Min.X, midpoint(r.Min.Y, r.Max.Y)}
}

func (r Rect[T]) LeftCenterAt(p Point[T]) Rect[T] {
	size := r.Size()
	min := Pt(p.X, p.Y-size.HalfH())
	return Rect[T]{min, min.AddXY(size.W, size.H)}
}

func (r Rect[T]) TopCenter() Point[T] {
	return Point[T]{midpoint(r.Min.X, r.Max.X), r.Min.Y}
}

func (r Rect[T]) TopCenterAt(p Point[T]) Rect[T] {
	size := r.Size()
	min := Pt(p.X-size.HalfW(), p.Y)
	return Rect[T]{min, min.AddXY(size.W, size.H)}
}

func (r Rect[T]) RightCenter() Point[T] {
	return Point[T]{r.Max.X, midpoint(r.Min.Y, r.Max.Y)}
}

func (r Rect[T]) RightCenterAt(p Point[T]) Rect[T] {
	size := r.Size()
	min := Pt(p.X-size.W, p.Y-size.HalfH())
	return Rect[T]{min, min.AddXY(size.W, size.H)}
}

func (r Rect[T]) BottomCenter() Point[T] {
	return Point[T]{midpoint(r.Min.X, r.Max.X), r.Max.Y}
}

func (r Rect[T]) BottomCenterAt(p Point[T]) Rect[T] {
	size := r.Size()
	min := Pt(p.X-size.HalfW(), p.Y-size.H)
	return Rect[T]{min, min.AddXY(size.W, size.H)}
}

// Center returns the point at the middle of r.
func (r Rect[T]) Center() Point[T] {
	return Point[T]{midpoint(r.Min.X, r.Max.X), midpoint(r.Min.Y, r.Max.Y)}
}

// CenterAt returns r repositioned so its center sits at p.
func (r Rect[T]) CenterAt(p Point[T]) Rect[T] {
	size := r.Size()
	h := size.Half()
	min := p.SubXY(h.W, h.H)
	return Rect[T]{min, min.AddXY(size.W, size.H)}
}

// Anchor returns the position of the named anchor on r.
func (r Rect[T]) Anchor(a Anchor) Point[T] {
	switch a {
	case AnchorLeftTop:
		return r.LeftTop()
	case AnchorLeftCenter:
		return r.LeftCenter()
	case AnchorLeftBottom:
		return r.LeftBottom()
	case AnchorBottomCenter:
		return r.BottomCenter()
	case AnchorRightBottom:
		return r.RightBottom()
	case AnchorRightCenter:
		return r.RightCenter()
	case AnchorRightTop:
		return r.RightTop()
	case AnchorTopCenter:
		return r.TopCenter()
	}
	return r.Center()
}

// AnchorAt returns r repositioned, size held fixed, so the named
// anchor sits at p. It is the setter matching Anchor:
// r.AnchorAt(a, p).Anchor(a) == p, up to midpoint truncation for
// integer rects with odd extents.
func (r Rect[T]) AnchorAt(a Anchor, p Point[T]) Rect[T] {
	switch a {
	case AnchorLeftTop:
		return r.LeftTopAt(p)
	case AnchorLeftCenter:
		return r.LeftCenterAt(p)
	case AnchorLeftBottom:
		return r.LeftBottomAt(p)
	case AnchorBottomCenter:
		return r.BottomCenterAt(p)
	case AnchorRightBottom:
		return r.RightBottomAt(p)
	case AnchorRightCenter:
		return r.RightCenterAt(p)
	case AnchorRightTop:
		return r.RightTopAt(p)
	case AnchorTopCenter:
		return r.TopCenterAt(p)
	}
	return r.CenterAt(p)
}

// AnchorBoundAt moves only the bounds the anchor touches, stretching
// or shrinking r instead of translating it. Center behaves like
// CenterAt since it touches no bound.
func (r Rect[T]) AnchorBoundAt(a Anchor, p Point[T]) Rect[T] {
	switch a {
	case AnchorLeftTop:
		r.Min = p
	case AnchorLeftCenter:
		r.Min.X = p.X
	case AnchorLeftBottom:
		r.Min.X = p.X
		r.Max.Y = p.Y
	case AnchorBottomCenter:
		r.Max.Y = p.Y
	case AnchorRightBottom:
		r.Max = p
	case AnchorRightCenter:
		r.Max.X = p.X
	case AnchorRightTop:
		r.Max.X = p.X
		r.Min.Y = p.Y
	case AnchorTopCenter:
		r.Min.Y = p.Y
	default:
		return r.CenterAt(p)
	}
	return r
}

// MoveToAnchor reflects r across the named anchor: the anchor's
// current position becomes the position of the opposite anchor, and
// the rectangle occupies the space on the far side. Center is a fixed
// point. Applying the operation at an anchor and then at its opposite
// restores the original rectangle.
func (r Rect[T]) MoveToAnchor(a Anchor) Rect[T] {
	if a == AnchorCenter {
		return r
	}
	return r.AnchorAt(a.Opposite(), r.Anchor(a))
}

// Add returns r translated by p.
func (r Rect[T]) Add(p Point[T]) Rect[T] {
	return Rect[T]{r.Min.Add(p), r.Max.Add(p)}
}

// Sub returns r translated by -p.
func (r Rect[T]) Sub(p Point[T]) Rect[T] {
	return Rect[T]{r.Min.Sub(p), r.Max.Sub(p)}
}

// MovePivotTo translates r by the offset that carries pivot to p,
// preserving r's position relative to the pivot.
func (r Rect[T]) MovePivotTo(pivot, p Point[T]) Rect[T] {
	return r.Add(p.Sub(pivot))
}

// MoveOnGrid translates r by whole multiples of its own size: nx
// cells along x and ny cells along y.
func (r Rect[T]) MoveOnGrid(nx, ny int) Rect[T] {
	return r.Add(Pt(r.Dx()*T(nx), r.Dy()*T(ny)))
}

// UV maps a UV coordinate (0 to 1 on each axis) to the corresponding
// position on r. Values outside [0, 1] extrapolate.
func (r Rect[T]) UV(u, v float64) Point[T] {
	return Point[T]{lerp(r.Min.X, r.Max.X, u), lerp(r.Min.Y, r.Max.Y, v)}
}

// UVAt returns r translated so that the position at the given UV
// coordinate lands on p.
func (r Rect[T]) UVAt(u, v float64, p Point[T]) Rect[T] {
	return r.Add(p.Sub(r.UV(u, v)))
}

// AddSize grows r by size, holding the min corner fixed.
func (r Rect[T]) AddSize(size Size[T]) Rect[T] {
	return Rect[T]{r.Min, r.Max.AddXY(size.W, size.H)}
}

// AddSizeCentered grows r by size, holding the center fixed.
func (r Rect[T]) AddSizeCentered(size Size[T]) Rect[T] {
	return r.InflateXY(size.HalfW(), size.HalfH())
}

// SubSize shrinks r by size, holding the min corner fixed.
func (r Rect[T]) SubSize(size Size[T]) Rect[T] {
	return Rect[T]{r.Min, r.Max.SubXY(size.W, size.H)}
}

// SubSizeCentered shrinks r by size, holding the center fixed.
func (r Rect[T]) SubSizeCentered(size Size[T]) Rect[T] {
	return r.DeflateXY(size.HalfW(), size.HalfH())
}

// Inflate grows r by n on every side.
func (r Rect[T]) Inflate(n T) Rect[T] {
	return r.InflateXY(n, n)
}

// InflateXY grows r by x on the left and right sides and by y on the
// top and bottom sides.
func (r Rect[T]) InflateXY(x, y T) Rect[T] {
	return Rect[T]{r.Min.SubXY(x, y), r.Max.AddXY(x, y)}
}

// Deflate shrinks r by n on every side.
func (r Rect[T]) Deflate(n T) Rect[T] {
	return r.DeflateXY(n, n)
}

// DeflateXY shrinks r by x on the left and right sides and by y on
// the top and bottom sides.
func (r Rect[T]) DeflateXY(x, y T) Rect[T] {
	return Rect[T]{r.Min.AddXY(x, y), r.Max.SubXY(x, y)}
}

// WithScale scales r's size by factor, holding the min corner fixed.
func (r Rect[T]) WithScale(factor float64) Rect[T] {
	return r.WithSize(r.Size().Scale(factor))
}

// WithScaleCentered scales r's size by factor, holding the center
// fixed.
func (r Rect[T]) WithScaleCentered(factor float64) Rect[T] {
	return r.WithSizeCentered(r.Size().Scale(factor))
}

// WithScaleAnchored scales r's size by factor, holding the named
// anchor fixed.
func (r Rect[T]) WithScaleAnchored(factor float64, a Anchor) Rect[T] {
	return r.WithSizeAnchored(r.Size().Scale(factor), a)
}

// AddMargin grows r by the margin's total contribution, holding the
// min corner fixed.
func (r Rect[T]) AddMargin(m Margin[T]) Rect[T] {
	return Rect[T]{r.Min, r.Max.AddXY(m.X(), m.Y())}
}

// AddMarginCentered grows each edge of r outward by the corresponding
// margin field.
func (r Rect[T]) AddMarginCentered(m Margin[T]) Rect[T] {
	return Rect[T]{
		Pt(r.Min.X-m.Left, r.Min.Y-m.Top),
		Pt(r.Max.X+m.Right, r.Max.Y+m.Bottom),
	}
}

// AddMarginAnchored grows r by the margin's contribution, holding the
// named anchor fixed.
func (r Rect[T]) AddMarginAnchored(m Margin[T], a Anchor) Rect[T] {
	return RectAnchored(a, r.Anchor(a), r.Size().AddMargin(m))
}

// SubMargin removes a margin previously added with AddMargin.
func (r Rect[T]) SubMargin(m Margin[T]) Rect[T] {
	return Rect[T]{r.Min, r.Max.SubXY(m.X(), m.Y())}
}

// SubMarginCentered removes a margin previously added with
// AddMarginCentered.
func (r Rect[T]) SubMarginCentered(m Margin[T]) Rect[T] {
	return Rect[T]{
		Pt(r.Min.X+m.Left, r.Min.Y+m.Top),
		Pt(r.Max.X-m.Right, r.Max.Y-m.Bottom),
	}
}

// SubMarginAnchored removes a margin previously added with
// AddMarginAnchored at the same anchor.
func (r Rect[T]) SubMarginAnchored(m Margin[T], a Anchor) Rect[T] {
	return RectAnchored(a, r.Anchor(a), r.Size().SubMargin(m))
}

// AddPadding pulls each edge of r inward by the corresponding padding
// field.
func (r Rect[T]) AddPadding(p Padding[T]) Rect[T] {
	return Rect[T]{
		Pt(r.Min.X+p.Left, r.Min.Y+p.Top),
		Pt(r.Max.X-p.Right, r.Max.Y-p.Bottom),
	}
}

// SubPadding removes a padding previously added with AddPadding.
func (r Rect[T]) SubPadding(p Padding[T]) Rect[T] {
	return Rect[T]{
		Pt(r.Min.X-p.Left, r.Min.Y-p.Top),
		Pt(r.Max.X+p.Right, r.Max.Y+p.Bottom),
	}
}

// Contains reports whether r contains p. The test is half-open: a
// point exactly on the right or bottom edge is not contained, so
// adjacent rectangles hit-test without overlap.
func (r Rect[T]) Contains(p Point[T]) bool {
	return r.Min.X <= p.X && p.X < r.Max.X &&
		r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// ContainsRect reports whether s lies entirely within r.
func (r Rect[T]) ContainsRect(s Rect[T]) bool {
	return r.Min.X <= s.Min.X && s.Max.X <= r.Max.X &&
		r.Min.Y <= s.Min.Y && s.Max.Y <= r.Max.Y
}

// In reports whether r lies entirely within s.
func (r Rect[T]) In(s Rect[T]) bool {
	return s.ContainsRect(r)
}

// Outside reports whether r and s are fully disjoint.
func (r Rect[T]) Outside(s Rect[T]) bool {
	return r.Max.X < s.Min.X || r.Max.Y < s.Min.Y ||
		r.Min.X >= s.Max.X || r.Min.Y >= s.Max.Y
}

// Overlaps reports whether r and s share any interior area.
func (r Rect[T]) Overlaps(s Rect[T]) bool {
	return s.Min.X < r.Max.X && s.Min.Y < r.Max.Y &&
		s.Max.X > r.Min.X && s.Max.Y > r.Min.Y
}

// Intersect returns the tightest rectangle enclosing the region
// shared by r and s. ok is false when they do not overlap.
func (r Rect[T]) Intersect(s Rect[T]) (_ Rect[T], ok bool) {
	if !r.Overlaps(s) {
		return Rect[T]{}, false
	}
	return Rect[T]{r.Min.Max(s.Min), r.Max.Min(s.Max)}, true
}

// IntersectAll intersects every rect in order. ok is false when the
// slice is empty or any pairwise intersection is empty.
func IntersectAll[T Scalar](rects []Rect[T]) (_ Rect[T], ok bool) {
	if len(rects) == 0 {
		return Rect[T]{}, false
	}
	cur := rects[0]
	for _, r := range rects[1:] {
		cur, ok = cur.Intersect(r)
		if !ok {
			return Rect[T]{}, false
		}
	}
	return cur, true
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect[T]) Union(s Rect[T]) Rect[T] {
	return Rect[T]{r.Min.Min(s.Min), r.Max.Max(s.Max)}
}

// Lerp linearly interpolates both corners from r to s. t is
// unclamped.
func (r Rect[T]) Lerp(s Rect[T], t float64) Rect[T] {
	return Rect[T]{r.Min.Lerp(s.Min, t), r.Max.Lerp(s.Max, t)}
}

// ClampedLerp is Lerp with t clamped to [0, 1].
func (r Rect[T]) ClampedLerp(s Rect[T], t float64) Rect[T] {
	return r.Lerp(s, clamp01(t))
}

// Corner returns the named corner of r.
func (r Rect[T]) Corner(c Intercardinal) Point[T] {
	switch c {
	case NW:
		return r.LeftTop()
	case NE:
		return r.RightTop()
	case SE:
		return r.RightBottom()
	}
	return r.LeftBottom()
}

// Corners returns the corners in reading order: left-top, right-top,
// left-bottom, right-bottom.
func (r Rect[T]) Corners() [4]Point[T] {
	return [4]Point[T]{r.LeftTop(), r.RightTop(), r.LeftBottom(), r.RightBottom()}
}

// CornersCW returns the corners in clockwise order starting from
// left-top.
func (r Rect[T]) CornersCW() [4]Point[T] {
	return [4]Point[T]{r.LeftTop(), r.RightTop(), r.RightBottom(), r.LeftBottom()}
}

// CornersCCW returns the corners in counter-clockwise order starting
// from left-top.
func (r Rect[T]) CornersCCW() [4]Point[T] {
	return [4]Point[T]{r.LeftTop(), r.LeftBottom(), r.RightBottom(), r.RightTop()}
}

// EdgeMidpoint returns the midpoint of the edge the direction points
// at.
func (r Rect[T]) EdgeMidpoint(edge Axial) Point[T] {
	switch edge {
	case AxialLeft:
		return r.LeftCenter()
	case AxialUp:
		return r.TopCenter()
	case AxialRight:
		return r.RightCenter()
	}
	return r.BottomCenter()
}

// EdgePointsCW returns the endpoints of the named edge in clockwise
// winding order.
func (r Rect[T]) EdgePointsCW(edge Axial) [2]Point[T] {
	switch edge {
	case AxialLeft:
		return [2]Point[T]{r.LeftBottom(), r.LeftTop()}
	case AxialUp:
		return [2]Point[T]{r.LeftTop(), r.RightTop()}
	case AxialRight:
		return [2]Point[T]{r.RightTop(), r.RightBottom()}
	}
	return [2]Point[T]{r.RightBottom(), r.LeftBottom()}
}

// EdgePointsCCW returns the endpoints of the named edge in counter-
// clockwise winding order.
func (r Rect[T]) EdgePointsCCW(edge Axial) [2]Point[T] {
	p := r.EdgePointsCW(edge)
	return [2]Point[T]{p[1], p[0]}
}

// Hypot returns the length of r's diagonal.
func (r Rect[T]) Hypot() float64 {
	return r.Min.Dist(r.Max)
}

// HypotSquared returns the squared length of r's diagonal.
func (r Rect[T]) HypotSquared() float64 {
	return r.Min.DistSquared(r.Max)
}

// PivotRect returns the rectangle of the given size centered on the
// named anchor of r.
func (r Rect[T]) PivotRect(a Anchor, size Size[T]) Rect[T] {
	return RectCentered(r.Anchor(a), size)
}

// SquarePivotRect returns the square with the given side length
// centered on the named anchor of r.
func (r Rect[T]) SquarePivotRect(a Anchor, side T) Rect[T] {
	return RectCenteredSquare(r.Anchor(a), side)
}

// ScaleInside returns the largest rectangle of size's aspect ratio
// that fits entirely inside r, centered: the letterbox/pillarbox fit.
func (r Rect[T]) ScaleInside(size Size[T]) Rect[T] {
	rs := r.Size()
	var factor float64
	if rs.Aspect() >= size.Aspect() {
		factor = float64(rs.H) / float64(size.H)
	} else {
		factor = float64(rs.W) / float64(size.W)
	}
	return RectCentered(r.Center(), size.Scale(factor))
}

// ScaleOutside returns the smallest rectangle of size's aspect ratio
// that entirely contains r, centered: the cover/crop fit.
func (r Rect[T]) ScaleOutside(size Size[T]) Rect[T] {
	rs := r.Size()
	var factor float64
	if rs.Aspect() >= size.Aspect() {
		factor = float64(rs.W) / float64(size.W)
	} else {
		factor = float64(rs.H) / float64(size.H)
	}
	return RectCentered(r.Center(), size.Scale(factor))
}

// ScaleMiddle scales size so that its smaller dimension exactly
// matches r's smaller axis of fit, centered on r: the result matches
// r in one dimension and over- or undershoots in the other.
func (r Rect[T]) ScaleMiddle(size Size[T]) Rect[T] {
	rs := r.Size()
	ref := rs.W
	if rs.Aspect() >= 1 {
		ref = rs.H
	}
	factor := float64(ref) / float64(size.MinDim())
	return RectCentered(r.Center(), size.Scale(factor))
}

// SubdivisionContaining divides r into a cols-by-rows grid of equal
// cells and returns the cell containing p. ok is false when p is
// outside r or the grid is empty.
func (r Rect[T]) SubdivisionContaining(p Point[T], cols, rows int) (_ Rect[T], ok bool) {
	if !r.Contains(p) || cols <= 0 || rows <= 0 {
		return Rect[T]{}, false
	}
	size := r.Size()
	cw := size.W / T(cols)
	ch := size.H / T(rows)
	inner := p.Sub(r.Min)
	cellMin := inner.DivXY(cw, ch).Floor().MulXY(cw, ch).Add(r.Min)
	return RectMinSize(cellMin, Sz(cw, ch)), true
}

// SubdivisionContainingRect divides r into a cols-by-rows grid and
// returns the cell that contains s in its entirety. When s straddles
// a cell boundary, r itself is returned. ok is false when s is not
// contained in r.
func (r Rect[T]) SubdivisionContainingRect(s Rect[T], cols, rows int) (_ Rect[T], ok bool) {
	if !r.ContainsRect(s) || cols <= 0 || rows <= 0 {
		return Rect[T]{}, false
	}
	size := r.Size()
	cw := size.W / T(cols)
	ch := size.H / T(rows)
	inner := s.Sub(r.Min)
	cellMin := inner.Min.DivXY(cw, ch).Floor()
	cellMax := inner.Max.DivXY(cw, ch).Floor()
	if cellMin != cellMax {
		return r, true
	}
	min := cellMin.MulXY(cw, ch).Add(r.Min)
	return RectMinSize(min, Sz(cw, ch)), true
}

// Floor rounds both corners down.
func (r Rect[T]) Floor() Rect[T] {
	return Rect[T]{r.Min.Floor(), r.Max.Floor()}
}

// Ceil rounds both corners up.
func (r Rect[T]) Ceil() Rect[T] {
	return Rect[T]{r.Min.Ceil(), r.Max.Ceil()}
}

// FloorCeil rounds the min corner down and the max corner up,
// returning the smallest integer-cornered rectangle containing r.
func (r Rect[T]) FloorCeil() Rect[T] {
	return Rect[T]{r.Min.Floor(), r.Max.Ceil()}
}

// CeilFloor rounds the min corner up and the max corner down,
// returning the largest integer-cornered rectangle contained by r.
// The result may be ill-formed when r spans less than one unit.
func (r Rect[T]) CeilFloor() Rect[T] {
	return Rect[T]{r.Min.Ceil(), r.Max.Floor()}
}

// Round rounds both corners to the nearest integer coordinates.
func (r Rect[T]) Round() Rect[T] {
	return Rect[T]{r.Min.Round(), r.Max.Round()}
}

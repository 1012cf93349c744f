package geom

// SplitFromLeft divides r at the vertical line n units in from the
// left edge and returns the two pieces, left first.
func (r Rect[T]) SplitFromLeft(n T) (left, right Rect[T]) {
	x := r.Min.X + n
	return Rect[T]{r.Min, Pt(x, r.Max.Y)}, Rect[T]{Pt(x, r.Min.Y), r.Max}
}

// SplitFromRight divides r at the vertical line n units in from the
// right edge and returns the two pieces, right first.
func (r Rect[T]) SplitFromRight(n T) (right, left Rect[T]) {
	x := r.Max.X - n
	return Rect[T]{Pt(x, r.Min.Y), r.Max}, Rect[T]{r.Min, Pt(x, r.Max.Y)}
}

// SplitFromTop divides r at the horizontal line n units down from the
// top edge and returns the two pieces, top first.
func (r Rect[T]) SplitFromTop(n T) (top, bottom Rect[T]) {
	y := r.Min.Y + n
	return Rect[T]{r.Min, Pt(r.Max.X, y)}, Rect[T]{Pt(r.Min.X, y), r.Max}
}

// SplitFromBottom divides r at the horizontal line n units up from
// the bottom edge and returns the two pieces, bottom first.
func (r Rect[T]) SplitFromBottom(n T) (bottom, top Rect[T]) {
	y := r.Max.Y - n
	return Rect[T]{Pt(r.Min.X, y), r.Max}, Rect[T]{r.Min, Pt(r.Max.X, y)}
}

// SplitHorizontal divides r into equal left and right halves.
func (r Rect[T]) SplitHorizontal() (left, right Rect[T]) {
	return r.SplitFromLeft(half(r.Dx()))
}

// SplitVertical divides r into equal top and bottom halves.
func (r Rect[T]) SplitVertical() (top, bottom Rect[T]) {
	return r.SplitFromTop(half(r.Dy()))
}

// Quadrants holds the four quarters of a rectangle in reading order.
type Quadrants[T Scalar] struct {
	LeftTop, RightTop, LeftBottom, RightBottom Rect[T]
}

// Quadrants divides r into four equal quarters around its center.
func (r Rect[T]) Quadrants() Quadrants[T] {
	c := r.Center()
	return Quadrants[T]{
		LeftTop:     Rect[T]{r.Min, c},
		RightTop:    Rect[T]{Pt(c.X, r.Min.Y), Pt(r.Max.X, c.Y)},
		LeftBottom:  Rect[T]{Pt(r.Min.X, c.Y), Pt(c.X, r.Max.Y)},
		RightBottom: Rect[T]{c, r.Max},
	}
}

// At returns the quadrant in the given column and row, each 0 or 1.
func (q Quadrants[T]) At(col, row int) Rect[T] {
	switch (col & 1) | (row&1)<<1 {
	case 0:
		return q.LeftTop
	case 1:
		return q.RightTop
	case 2:
		return q.LeftBottom
	}
	return q.RightBottom
}

// Containing returns the quadrant containing p, using the same
// half-open rule as Rect.Contains so a point on an interior seam
// belongs to exactly one quadrant. ok is false when p is outside all
// four.
func (q Quadrants[T]) Containing(p Point[T]) (_ Rect[T], ok bool) {
	for _, r := range [4]Rect[T]{q.LeftTop, q.RightTop, q.LeftBottom, q.RightBottom} {
		if r.Contains(p) {
			return r, true
		}
	}
	return Rect[T]{}, false
}

// LeftAdjacent returns the rectangle of the given width sharing r's
// left edge, lying just outside it.
func (r Rect[T]) LeftAdjacent(width T) Rect[T] {
	return Rect[T]{Pt(r.Min.X-width, r.Min.Y), Pt(r.Min.X, r.Max.Y)}
}

// TopAdjacent returns the rectangle of the given height sharing r's
// top edge, lying just outside it.
func (r Rect[T]) TopAdjacent(height T) Rect[T] {
	return Rect[T]{Pt(r.Min.X, r.Min.Y-height), Pt(r.Max.X, r.Min.Y)}
}

// RightAdjacent returns the rectangle of the given width sharing r's
// right edge, lying just outside it.
func (r Rect[T]) RightAdjacent(width T) Rect[T] {
	return Rect[T]{Pt(r.Max.X, r.Min.Y), Pt(r.Max.X+width, r.Max.Y)}
}

// BottomAdjacent returns the rectangle of the given height sharing
// r's bottom edge, lying just outside it.
func (r Rect[T]) BottomAdjacent(height T) Rect[T] {
	return Rect[T]{Pt(r.Min.X, r.Max.Y), Pt(r.Max.X, r.Max.Y+height)}
}

// LeftTopAdjacent returns the rectangle of the given size touching r
// diagonally at its left-top corner.
func (r Rect[T]) LeftTopAdjacent(size Size[T]) Rect[T] {
	return Rect[T]{r.Min.SubXY(size.W, size.H), r.Min}
}

// RightTopAdjacent returns the rectangle of the given size touching r
// diagonally at its right-top corner.
func (r Rect[T]) RightTopAdjacent(size Size[T]) Rect[T] {
	return Rect[T]{Pt(r.Max.X, r.Min.Y-size.H), Pt(r.Max.X+size.W, r.Min.Y)}
}

// LeftBottomAdjacent returns the rectangle of the given size touching
// r diagonally at its left-bottom corner.
func (r Rect[T]) LeftBottomAdjacent(size Size[T]) Rect[T] {
	return Rect[T]{Pt(r.Min.X-size.W, r.Max.Y), Pt(r.Min.X, r.Max.Y+size.H)}
}

// RightBottomAdjacent returns the rectangle of the given size touching
// r diagonally at its right-bottom corner.
func (r Rect[T]) RightBottomAdjacent(size Size[T]) Rect[T] {
	return Rect[T]{r.Max, r.Max.AddXY(size.W, size.H)}
}

// Adjacent returns the same-size rectangle sharing the edge the
// direction points at.
func (r Rect[T]) Adjacent(edge Axial) Rect[T] {
	switch edge {
	case AxialLeft:
		return r.LeftAdjacent(r.Dx())
	case AxialUp:
		return r.TopAdjacent(r.Dy())
	case AxialRight:
		return r.RightAdjacent(r.Dx())
	}
	return r.BottomAdjacent(r.Dy())
}

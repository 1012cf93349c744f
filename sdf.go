package geom

// SDF returns the signed distance from p to r's boundary: negative
// inside, positive outside, zero on the boundary. Outside the
// rectangle the distance is Euclidean; inside it is the (negated)
// distance to the nearest edge.
//
// The region tests pair up so that every combination of outcomes is
// handled: the combinations that cannot occur for a well-formed
// rectangle panic, so a corrupted Rect fails loudly instead of
// returning a plausible distance.
func (r Rect[T]) SDF(p Point[T]) float64 {
	geMinX := p.X >= r.Min.X
	ltMaxX := p.X < r.Max.X
	geMinY := p.Y >= r.Min.Y
	ltMaxY := p.Y < r.Max.Y
	switch {
	case geMinX && ltMaxX && geMinY && ltMaxY:
		dx := max(float64(r.Min.X)-float64(p.X), float64(p.X)-float64(r.Max.X))
		dy := max(float64(r.Min.Y)-float64(p.Y), float64(p.Y)-float64(r.Max.Y))
		return max(dx, dy)
	case geMinX && ltMaxX && geMinY && !ltMaxY:
		return float64(p.Y) - float64(r.Max.Y)
	case geMinX && ltMaxX && !geMinY && ltMaxY:
		return float64(r.Min.Y) - float64(p.Y)
	case geMinX && ltMaxX:
		panic("geom: min.y is greater than max.y")
	case geMinX && !ltMaxX && geMinY && ltMaxY:
		return float64(p.X) - float64(r.Max.X)
	case geMinX && !ltMaxX && geMinY && !ltMaxY:
		return p.Dist(r.RightBottom())
	case geMinX && !ltMaxX && !geMinY && ltMaxY:
		return p.Dist(r.RightTop())
	case geMinX && !ltMaxX:
		panic("geom: min.y is greater than max.y")
	case !geMinX && ltMaxX && geMinY && ltMaxY:
		return float64(r.Min.X) - float64(p.X)
	case !geMinX && ltMaxX && geMinY && !ltMaxY:
		return p.Dist(r.LeftBottom())
	case !geMinX && ltMaxX && !geMinY && ltMaxY:
		return p.Dist(r.LeftTop())
	case !geMinX && ltMaxX:
		panic("geom: min.y is greater than max.y")
	default:
		panic("geom: min.x is greater than max.x")
	}
}

// ClosestPoint returns the point on r's boundary nearest to p. For a
// point inside r it projects onto the nearest edge; for a point
// outside it clamps to the boundary. Like SDF, it panics on an
// ill-formed receiver.
func (r Rect[T]) ClosestPoint(p Point[T]) Point[T] {
	geMinX := p.X >= r.Min.X
	ltMaxX := p.X < r.Max.X
	geMinY := p.Y >= r.Min.Y
	ltMaxY := p.Y < r.Max.Y
	switch {
	case geMinX && ltMaxX && geMinY && ltMaxY:
		best := p.X - r.Min.X
		closest := Point[T]{r.Min.X, p.Y}
		if d := r.Max.X - p.X; d < best {
			best, closest = d, Point[T]{r.Max.X, p.Y}
		}
		if d := p.Y - r.Min.Y; d < best {
			best, closest = d, Point[T]{p.X, r.Min.Y}
		}
		if d := r.Max.Y - p.Y; d < best {
			closest = Point[T]{p.X, r.Max.Y}
		}
		return closest
	case geMinX && ltMaxX && geMinY && !ltMaxY:
		return Point[T]{p.X, r.Max.Y}
	case geMinX && ltMaxX && !geMinY && ltMaxY:
		return Point[T]{p.X, r.Min.Y}
	case geMinX && ltMaxX:
		panic("geom: min.y is greater than max.y")
	case geMinX && !ltMaxX && geMinY && ltMaxY:
		return Point[T]{r.Max.X, p.Y}
	case geMinX && !ltMaxX && geMinY && !ltMaxY:
		return r.RightBottom()
	case geMinX && !ltMaxX && !geMinY && ltMaxY:
		return r.RightTop()
	case geMinX && !ltMaxX:
		panic("geom: min.y is greater than max.y")
	case !geMinX && ltMaxX && geMinY && ltMaxY:
		return Point[T]{r.Min.X, p.Y}
	case !geMinX && ltMaxX && geMinY && !ltMaxY:
		return r.LeftBottom()
	case !geMinX && ltMaxX && !geMinY && ltMaxY:
		return r.LeftTop()
	case !geMinX && ltMaxX:
		panic("geom: min.y is greater than max.y")
	default:
		panic("geom: min.x is greater than max.x")
	}
}

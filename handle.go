package geom

// HandleRect returns the resize-handle rectangle for the given anchor
// and placement on r. side is the handle's thickness.
//
// For corner anchors the handle is a side-by-side square touching the
// corner; Inside keeps it within r, Outside beyond it, and Middle
// centers it on the corner. For edge anchors the handle runs the
// length of that edge, shortened at each end so it never overlaps the
// corner handles of the same placement. For Center the handle is r
// shrunk by side (Inside), by half of side (Middle), or r itself
// (Outside).
func (r Rect[T]) HandleRect(a Anchor, place Placement, side T) Rect[T] {
	h := half(side)
	switch a {
	case AnchorLeftTop:
		switch place {
		case PlaceInside:
			return Rect[T]{r.Min, Pt(r.Min.X+side, r.Min.Y+side)}
		case PlaceMiddle:
			return Rect[T]{Pt(r.Min.X-h, r.Min.Y-h), Pt(r.Min.X+h, r.Min.Y+h)}
		default:
			return Rect[T]{Pt(r.Min.X-side, r.Min.Y-side), r.Min}
		}
	case AnchorLeftCenter:
		switch place {
		case PlaceInside:
			return Rect[T]{Pt(r.Min.X, r.Min.Y+side), Pt(r.Min.X+side, r.Max.Y-side)}
		case PlaceMiddle:
			return Rect[T]{Pt(r.Min.X-h, r.Min.Y+h), Pt(r.Min.X+h, r.Max.Y-h)}
		default:
			return Rect[T]{Pt(r.Min.X-side, r.Min.Y), r.LeftBottom()}
		}
	case AnchorLeftBottom:
		switch place {
		case PlaceInside:
			return Rect[T]{Pt(r.Min.X, r.Max.Y-side), Pt(r.Min.X+side, r.Max.Y)}
		case PlaceMiddle:
			return Rect[T]{Pt(r.Min.X-h, r.Max.Y-h), Pt(r.Min.X+h, r.Max.Y+h)}
		default:
			return Rect[T]{Pt(r.Min.X-side, r.Max.Y), Pt(r.Min.X, r.Max.Y+side)}
		}
	case AnchorBottomCenter:
		switch place {
		case PlaceInside:
			return Rect[T]{Pt(r.Min.X+side, r.Max.Y-side), Pt(r.Max.X-side, r.Max.Y)}
		case PlaceMiddle:
			return Rect[T]{Pt(r.Min.X+h, r.Max.Y-h), Pt(r.Max.X-h, r.Max.Y+h)}
		default:
			return Rect[T]{r.LeftBottom(), Pt(r.Max.X, r.Max.Y+side)}
		}
	case AnchorRightBottom:
		switch place {
		case PlaceInside:
			return Rect[T]{Pt(r.Max.X-side, r.Max.Y-side), r.Max}
		case PlaceMiddle:
			return Rect[T]{Pt(r.Max.X-h, r.Max.Y-h), Pt(r.Max.X+h, r.Max.Y+h)}
		default:
			return Rect[T]{r.Max, Pt(r.Max.X+side, r.Max.Y+side)}
		}
	case AnchorRightCenter:
		switch place {
		case PlaceInside:
			return Rect[T]{Pt(r.Max.X-side, r.Min.Y+side), Pt(r.Max.X, r.Max.Y-side)}
		case PlaceMiddle:
			return Rect[T]{Pt(r.Max.X-h, r.Min.Y+h), Pt(r.Max.X+h, r.Max.Y-h)}
		default:
			return Rect[T]{r.RightTop(), Pt(r.Max.X+side, r.Max.Y)}
		}
	case AnchorRightTop:
		switch place {
		case PlaceInside:
			return Rect[T]{Pt(r.Max.X-side, r.Min.Y), Pt(r.Max.X, r.Min.Y+side)}
		case PlaceMiddle:
			return Rect[T]{Pt(r.Max.X-h, r.Min.Y-h), Pt(r.Max.X+h, r.Min.Y+h)}
		default:
			return Rect[T]{Pt(r.Max.X, r.Min.Y-side), Pt(r.Max.X+side, r.Min.Y)}
		}
	case AnchorTopCenter:
		switch place {
		case PlaceInside:
			return Rect[T]{Pt(r.Min.X+side, r.Min.Y), Pt(r.Max.X-side, r.Min.Y+side)}
		case PlaceMiddle:
			return Rect[T]{Pt(r.Min.X+h, r.Min.Y-h), Pt(r.Max.X-h, r.Min.Y+h)}
		default:
			return Rect[T]{Pt(r.Min.X, r.Min.Y-side), r.RightTop()}
		}
	}
	switch place {
	case PlaceInside:
		return r.Deflate(side)
	case PlaceMiddle:
		return r.Deflate(h)
	default:
		return r
	}
}

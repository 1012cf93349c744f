package geom

// An Anchor names one of nine reference positions on a rectangle:
// the four corners, the four edge midpoints, and the center. The
// eight perimeter anchors are numbered counter-clockwise starting
// from the top-left corner; Center comes last.
type Anchor uint8

const (
	AnchorLeftTop Anchor = iota
	AnchorLeftCenter
	AnchorLeftBottom
	AnchorBottomCenter
	AnchorRightBottom
	AnchorRightCenter
	AnchorRightTop
	AnchorTopCenter
	AnchorCenter
)

// Perimeter lists the eight non-center anchors in counter-clockwise
// order starting from the top-left corner.
var Perimeter = [8]Anchor{
	AnchorLeftTop,
	AnchorLeftCenter,
	AnchorLeftBottom,
	AnchorBottomCenter,
	AnchorRightBottom,
	AnchorRightCenter,
	AnchorRightTop,
	AnchorTopCenter,
}

// Rotate rotates a perimeter anchor counter-clockwise by n steps
// along the perimeter. Negative n rotates clockwise. Center is a
// fixed point.
func (a Anchor) Rotate(n int) Anchor {
	if a == AnchorCenter {
		return a
	}
	i := (int(a) + n) % 8
	if i < 0 {
		i += 8
	}
	return Perimeter[i]
}

// Opposite returns the anchor diametrically across the rectangle:
// LeftTop ↔ RightBottom, LeftCenter ↔ RightCenter, and so on. Center
// is its own opposite.
func (a Anchor) Opposite() Anchor {
	return a.Rotate(4)
}

// FlipH mirrors the anchor across the vertical centerline.
func (a Anchor) FlipH() Anchor {
	switch a {
	case AnchorLeftTop:
		return AnchorRightTop
	case AnchorLeftCenter:
		return AnchorRightCenter
	case AnchorLeftBottom:
		return AnchorRightBottom
	case AnchorRightBottom:
		return AnchorLeftBottom
	case AnchorRightCenter:
		return AnchorLeftCenter
	case AnchorRightTop:
		return AnchorLeftTop
	}
	return a
}

// FlipV mirrors the anchor across the horizontal centerline.
func (a Anchor) FlipV() Anchor {
	switch a {
	case AnchorLeftTop:
		return AnchorLeftBottom
	case AnchorLeftBottom:
		return AnchorLeftTop
	case AnchorBottomCenter:
		return AnchorTopCenter
	case AnchorRightBottom:
		return AnchorRightTop
	case AnchorRightTop:
		return AnchorRightBottom
	case AnchorTopCenter:
		return AnchorBottomCenter
	}
	return a
}

// IsCorner reports whether a is one of the four corner anchors.
func (a Anchor) IsCorner() bool {
	switch a {
	case AnchorLeftTop, AnchorLeftBottom, AnchorRightBottom, AnchorRightTop:
		return true
	}
	return false
}

// IsEdge reports whether a is one of the four edge-midpoint anchors.
func (a Anchor) IsEdge() bool {
	switch a {
	case AnchorLeftCenter, AnchorBottomCenter, AnchorRightCenter, AnchorTopCenter:
		return true
	}
	return false
}

func (a Anchor) String() string {
	switch a {
	case AnchorLeftTop:
		return "LeftTop"
	case AnchorLeftCenter:
		return "LeftCenter"
	case AnchorLeftBottom:
		return "LeftBottom"
	case AnchorBottomCenter:
		return "BottomCenter"
	case AnchorRightBottom:
		return "RightBottom"
	case AnchorRightCenter:
		return "RightCenter"
	case AnchorRightTop:
		return "RightTop"
	case AnchorTopCenter:
		return "TopCenter"
	case AnchorCenter:
		return "Center"
	}
	return "Anchor(invalid)"
}

// A Placement selects how a handle rectangle derived at an anchor
// relates to the base rectangle's boundary: drawn within it, centered
// straddling it, or drawn beyond it.
type Placement uint8

const (
	PlaceInside Placement = iota
	PlaceMiddle
	PlaceOutside
)

func (p Placement) String() string {
	switch p {
	case PlaceInside:
		return "Inside"
	case PlaceMiddle:
		return "Middle"
	case PlaceOutside:
		return "Outside"
	}
	return "Placement(invalid)"
}

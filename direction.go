package geom

// An Axial is one of the four axis-aligned directions. The numbering
// matches the quadrant order produced by Point.Axial: counter-
// clockwise from Right in the y-down angle convention.
type Axial uint8

const (
	AxialRight Axial = iota
	AxialUp
	AxialLeft
	AxialDown
)

// Opposite returns the reversed direction.
func (a Axial) Opposite() Axial {
	switch a {
	case AxialRight:
		return AxialLeft
	case AxialUp:
		return AxialDown
	case AxialLeft:
		return AxialRight
	}
	return AxialUp
}

// IsHorizontal reports whether a lies along the x axis.
func (a Axial) IsHorizontal() bool {
	return a == AxialLeft || a == AxialRight
}

// IsVertical reports whether a lies along the y axis.
func (a Axial) IsVertical() bool {
	return a == AxialUp || a == AxialDown
}

func (a Axial) String() string {
	switch a {
	case AxialRight:
		return "Right"
	case AxialUp:
		return "Up"
	case AxialLeft:
		return "Left"
	case AxialDown:
		return "Down"
	}
	return "Axial(invalid)"
}

// A Cardinal is one of the eight compass octants. The numbering
// matches the octant order produced by Point.Cardinal: counter-
// clockwise from East in the y-down angle convention.
type Cardinal uint8

const (
	East Cardinal = iota
	Northeast
	North
	Northwest
	West
	Southwest
	South
	Southeast
)

// CardinalsCW lists the directions in clockwise order starting with
// East.
var CardinalsCW = [8]Cardinal{
	East, Southeast, South, Southwest,
	West, Northwest, North, Northeast,
}

// CardinalsCCW lists the directions in counter-clockwise order
// starting with East.
var CardinalsCCW = [8]Cardinal{
	East, Northeast, North, Northwest,
	West, Southwest, South, Southeast,
}

// Antipode returns the opposite compass direction.
func (c Cardinal) Antipode() Cardinal {
	return (c + 4) % 8
}

// IsPrimary reports whether c is one of the four primary directions.
func (c Cardinal) IsPrimary() bool {
	return c%2 == 0
}

// IsSecondary reports whether c is one of the four ordinal
// (intercardinal) directions.
func (c Cardinal) IsSecondary() bool {
	return c%2 == 1
}

// IsNorthward reports whether c has a northern component or is North.
func (c Cardinal) IsNorthward() bool {
	return c == Northwest || c == North || c == Northeast
}

// IsEastward reports whether c has an eastern component or is East.
func (c Cardinal) IsEastward() bool {
	return c == Northeast || c == East || c == Southeast
}

// IsSouthward reports whether c has a southern component or is South.
func (c Cardinal) IsSouthward() bool {
	return c == Southeast || c == South || c == Southwest
}

// IsWestward reports whether c has a western component or is West.
func (c Cardinal) IsWestward() bool {
	return c == Southwest || c == West || c == Northwest
}

func (c Cardinal) String() string {
	switch c {
	case East:
		return "East"
	case Northeast:
		return "Northeast"
	case North:
		return "North"
	case Northwest:
		return "Northwest"
	case West:
		return "West"
	case Southwest:
		return "Southwest"
	case South:
		return "South"
	case Southeast:
		return "Southeast"
	}
	return "Cardinal(invalid)"
}

// An Intercardinal names one of the four corners of a rectangle by
// its compass direction in screen coordinates: NW is the min corner
// and SE is the max corner.
type Intercardinal uint8

const (
	NW Intercardinal = iota
	NE
	SE
	SW
)

// Antipode returns the diagonally opposite corner.
func (i Intercardinal) Antipode() Intercardinal {
	return (i + 2) % 4
}

func (i Intercardinal) String() string {
	switch i {
	case NW:
		return "NW"
	case NE:
		return "NE"
	case SE:
		return "SE"
	case SW:
		return "SW"
	}
	return "Intercardinal(invalid)"
}

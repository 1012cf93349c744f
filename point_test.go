package geom_test

import (
	"math"
	"testing"

	"deedles.dev/geom"
	"github.com/stretchr/testify/require"
)

func TestPointArith(t *testing.T) {
	p := geom.Pt(3, 4)
	require.Equal(t, geom.Pt(5, 9), p.Add(geom.Pt(2, 5)))
	require.Equal(t, geom.Pt(1, -1), p.Sub(geom.Pt(2, 5)))
	require.Equal(t, geom.Pt(6, 8), p.Mul(2))
	require.Equal(t, geom.Pt(6, 20), p.MulPt(geom.Pt(2, 5)))
	require.Equal(t, geom.Pt(-3, -4), p.Neg())
	require.Equal(t, geom.Pt(3, 4), p.Neg().Abs())
	// Truncated remainder keeps the dividend's sign.
	require.Equal(t, geom.Pt(3, -3), geom.Pt(7, -3).Mod(4))
	require.Equal(t, geom.Pt(4, 3), p.YX())
	require.Equal(t, geom.Pt(1, -1), geom.Pt(42, -7).Signum())
	require.Equal(t, geom.Pt(uint8(1), uint8(0)), geom.Pt(uint8(9), uint8(0)).Signum())
}

func TestPointMod(t *testing.T) {
	// Integer remainders are exact well past float64 precision and
	// panic on a zero divisor like % does.
	big := int64(1) << 60
	require.Equal(t, geom.Pt(int64(1), int64(7)), geom.Pt(big+1, int64(7)).Mod(big))
	require.Panics(t, func() { geom.Pt(7, 7).Mod(0) })

	require.Equal(t, geom.Pt(1.5, -1.5), geom.Pt(7.5, -3.5).Mod(2))
}

func TestPointLengthDist(t *testing.T) {
	p := geom.Pt(3.0, 4)
	require.Equal(t, 5.0, p.Length())
	require.Equal(t, 25.0, p.LengthSquared())
	require.Equal(t, 5.0, geom.Pt(1.0, 1).Dist(geom.Pt(4.0, 5)))
	require.Equal(t, 0.0, p.Dot(p.PerpCW()))
	require.Equal(t, geom.Pt(0.6, 0.8), p.Normalized())
	require.Equal(t, geom.Pt(1.5, 2.0), p.ClampLengthMax(2.5))
}

func TestPointAngle(t *testing.T) {
	require.Equal(t, 0.0, geom.Pt(1.0, 0).Angle())
	// y grows downward, so "up" is positive.
	require.Equal(t, math.Pi/2, geom.Pt(0.0, -1).Angle())
	require.Equal(t, -math.Pi/2, geom.Pt(0.0, 1).Angle())
	require.Equal(t, 3*math.Pi/2, geom.Pt(0.0, 1).NormalizedAngle())

	for _, a := range []float64{0, 1, 2, 3, -1, -2.5} {
		require.InDelta(t, a, geom.PtFromAngle(a).Angle(), 1e-12)
	}
}

func TestPointDirections(t *testing.T) {
	require.Equal(t, geom.East, geom.Pt(1.0, 0).Cardinal())
	require.Equal(t, geom.Northeast, geom.Pt(1.0, -1).Cardinal())
	require.Equal(t, geom.North, geom.Pt(0.0, -1).Cardinal())
	require.Equal(t, geom.West, geom.Pt(-1.0, 0).Cardinal())
	require.Equal(t, geom.South, geom.Pt(0.0, 1).Cardinal())
	require.Equal(t, geom.Southeast, geom.Pt(1.0, 1).Cardinal())

	require.Equal(t, geom.AxialRight, geom.Pt(1.0, 0).Axial())
	require.Equal(t, geom.AxialUp, geom.Pt(0.0, -1).Axial())
	require.Equal(t, geom.AxialLeft, geom.Pt(-1.0, 0).Axial())
	require.Equal(t, geom.AxialDown, geom.Pt(0.0, 1).Axial())
}

func TestPointRotateReflect(t *testing.T) {
	// Rotating "right" by the quarter-turn unit vector for "up"
	// yields "up".
	up := geom.PtFromAngle(math.Pi / 2).Round()
	r := geom.Pt(1.0, 0).Rotate(up)
	require.Equal(t, geom.Pt(0.0, -1), r)

	require.Equal(t, geom.Pt(0.0, 1), geom.Pt(1.0, 0).PerpCW())
	require.Equal(t, geom.Pt(0.0, -1), geom.Pt(1.0, 0).PerpCCW())
	require.Equal(t, geom.Pt(0.0, -1), geom.Pt(0.0, 1).Reflect(geom.Pt(0.0, 1)))
}

func TestPointLerpClamp(t *testing.T) {
	a, b := geom.Pt(0.0, 0), geom.Pt(10.0, 20)
	require.Equal(t, geom.Pt(2.5, 5.0), a.Lerp(b, 0.25))
	require.Equal(t, b, a.ClampedLerp(b, 7))
	require.Equal(t, geom.Pt(5.0, 10.0), a.Midpoint(b))
	require.Equal(t, geom.Pt(3, 0), geom.Pt(5, -2).Clamp(geom.Pt(0, 0), geom.Pt(3, 3)))
}

func TestPointCompare(t *testing.T) {
	c, ok := geom.Pt(0, 0).Compare(geom.Pt(1, 1))
	require.True(t, ok)
	require.Equal(t, -1, c)

	c, ok = geom.Pt(2, 2).Compare(geom.Pt(2, 2))
	require.True(t, ok)
	require.Equal(t, 0, c)

	_, ok = geom.Pt(1, 0).Compare(geom.Pt(0, 1))
	require.False(t, ok)

	require.True(t, geom.Pt(1, 1).Less(geom.Pt(2, 2)))
	require.False(t, geom.Pt(1, 3).Less(geom.Pt(2, 2)))
	require.True(t, geom.Pt(2, 2).MoreEq(geom.Pt(2, 1)))
}

func TestPointImage(t *testing.T) {
	p := geom.FromImagePoint(geom.Pt(3, 4).ImagePoint())
	require.Equal(t, geom.Pt(3, 4), p)
	require.Equal(t, geom.Pt(3, 4), geom.PConv[int](geom.Pt(3.7, 4.2)))
}

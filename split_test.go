package geom_test

import (
	"testing"

	"deedles.dev/geom"
	"github.com/stretchr/testify/require"
)

func TestSplitFromEdges(t *testing.T) {
	r := geom.Rt(0, 0, 10, 10)

	left, right := r.SplitFromLeft(4)
	require.Equal(t, geom.Rt(0, 0, 4, 10), left)
	require.Equal(t, geom.Rt(4, 0, 10, 10), right)
	require.Equal(t, r, left.Union(right))

	right, left = r.SplitFromRight(4)
	require.Equal(t, geom.Rt(6, 0, 10, 10), right)
	require.Equal(t, geom.Rt(0, 0, 6, 10), left)

	top, bottom := r.SplitFromTop(3)
	require.Equal(t, geom.Rt(0, 0, 10, 3), top)
	require.Equal(t, geom.Rt(0, 3, 10, 10), bottom)

	bottom, top = r.SplitFromBottom(3)
	require.Equal(t, geom.Rt(0, 7, 10, 10), bottom)
	require.Equal(t, geom.Rt(0, 0, 10, 7), top)
}

func TestSplitHalves(t *testing.T) {
	r := geom.Rt(0, 0, 10, 6)

	left, right := r.SplitHorizontal()
	require.Equal(t, geom.Rt(0, 0, 5, 6), left)
	require.Equal(t, geom.Rt(5, 0, 10, 6), right)

	top, bottom := r.SplitVertical()
	require.Equal(t, geom.Rt(0, 0, 10, 3), top)
	require.Equal(t, geom.Rt(0, 3, 10, 6), bottom)
}

func TestQuadrants(t *testing.T) {
	r := geom.Rt(0, 0, 10, 10)
	q := r.Quadrants()
	require.Equal(t, geom.Rt(0, 0, 5, 5), q.LeftTop)
	require.Equal(t, geom.Rt(5, 0, 10, 5), q.RightTop)
	require.Equal(t, geom.Rt(0, 5, 5, 10), q.LeftBottom)
	require.Equal(t, geom.Rt(5, 5, 10, 10), q.RightBottom)

	require.Equal(t, q.LeftTop, q.At(0, 0))
	require.Equal(t, q.RightTop, q.At(1, 0))
	require.Equal(t, q.LeftBottom, q.At(0, 1))
	require.Equal(t, q.RightBottom, q.At(1, 1))

	// The center seam belongs to exactly one quadrant.
	c, ok := q.Containing(geom.Pt(5, 5))
	require.True(t, ok)
	require.Equal(t, q.RightBottom, c)

	c, ok = q.Containing(geom.Pt(2, 7))
	require.True(t, ok)
	require.Equal(t, q.LeftBottom, c)

	_, ok = q.Containing(geom.Pt(10, 10))
	require.False(t, ok)
}

func TestEdgeAdjacent(t *testing.T) {
	r := geom.Rt(0, 0, 10, 10)
	require.Equal(t, geom.Rt(-3, 0, 0, 10), r.LeftAdjacent(3))
	require.Equal(t, geom.Rt(0, -3, 10, 0), r.TopAdjacent(3))
	require.Equal(t, geom.Rt(10, 0, 13, 10), r.RightAdjacent(3))
	require.Equal(t, geom.Rt(0, 10, 10, 13), r.BottomAdjacent(3))

	require.Equal(t, geom.Rt(-10, 0, 0, 10), r.Adjacent(geom.AxialLeft))
	require.Equal(t, geom.Rt(0, 10, 10, 20), r.Adjacent(geom.AxialDown))
}

func TestCornerAdjacent(t *testing.T) {
	r := geom.Rt(0, 0, 10, 10)
	s := geom.Sz(2, 3)
	require.Equal(t, geom.Rt(-2, -3, 0, 0), r.LeftTopAdjacent(s))
	require.Equal(t, geom.Rt(10, -3, 12, 0), r.RightTopAdjacent(s))
	require.Equal(t, geom.Rt(-2, 10, 0, 13), r.LeftBottomAdjacent(s))
	require.Equal(t, geom.Rt(10, 10, 12, 13), r.RightBottomAdjacent(s))
}

package geom_test

import (
	"testing"

	"deedles.dev/geom"
	"github.com/stretchr/testify/require"
)

func TestHandleRectCorners(t *testing.T) {
	r := geom.Rt(0.0, 0, 10, 10)

	require.Equal(t, geom.Rt(0.0, 0, 2, 2), r.HandleRect(geom.AnchorLeftTop, geom.PlaceInside, 2))
	require.Equal(t, geom.Rt(-1.0, -1, 1, 1), r.HandleRect(geom.AnchorLeftTop, geom.PlaceMiddle, 2))
	require.Equal(t, geom.Rt(-2.0, -2, 0, 0), r.HandleRect(geom.AnchorLeftTop, geom.PlaceOutside, 2))

	require.Equal(t, geom.Rt(8.0, 8, 10, 10), r.HandleRect(geom.AnchorRightBottom, geom.PlaceInside, 2))
	require.Equal(t, geom.Rt(9.0, 9, 11, 11), r.HandleRect(geom.AnchorRightBottom, geom.PlaceMiddle, 2))
	require.Equal(t, geom.Rt(10.0, 10, 12, 12), r.HandleRect(geom.AnchorRightBottom, geom.PlaceOutside, 2))

	require.Equal(t, geom.Rt(8.0, 0, 10, 2), r.HandleRect(geom.AnchorRightTop, geom.PlaceInside, 2))
	require.Equal(t, geom.Rt(0.0, 8, 2, 10), r.HandleRect(geom.AnchorLeftBottom, geom.PlaceInside, 2))
}

func TestHandleRectEdges(t *testing.T) {
	r := geom.Rt(0.0, 0, 10, 10)

	// Inside edge handles stop short of the corner handles.
	require.Equal(t, geom.Rt(0.0, 2, 2, 8), r.HandleRect(geom.AnchorLeftCenter, geom.PlaceInside, 2))
	require.Equal(t, geom.Rt(2.0, 0, 8, 2), r.HandleRect(geom.AnchorTopCenter, geom.PlaceInside, 2))
	require.Equal(t, geom.Rt(8.0, 2, 10, 8), r.HandleRect(geom.AnchorRightCenter, geom.PlaceInside, 2))
	require.Equal(t, geom.Rt(2.0, 8, 8, 10), r.HandleRect(geom.AnchorBottomCenter, geom.PlaceInside, 2))

	require.Equal(t, geom.Rt(9.0, 1, 11, 9), r.HandleRect(geom.AnchorRightCenter, geom.PlaceMiddle, 2))

	// Outside edge handles run the full edge length.
	require.Equal(t, geom.Rt(-2.0, 0, 0, 10), r.HandleRect(geom.AnchorLeftCenter, geom.PlaceOutside, 2))
	require.Equal(t, geom.Rt(0.0, -2, 10, 0), r.HandleRect(geom.AnchorTopCenter, geom.PlaceOutside, 2))
	require.Equal(t, geom.Rt(10.0, 0, 12, 10), r.HandleRect(geom.AnchorRightCenter, geom.PlaceOutside, 2))
	require.Equal(t, geom.Rt(0.0, 10, 10, 12), r.HandleRect(geom.AnchorBottomCenter, geom.PlaceOutside, 2))
}

func TestHandleRectCenter(t *testing.T) {
	r := geom.Rt(0.0, 0, 10, 10)
	require.Equal(t, geom.Rt(2.0, 2, 8, 8), r.HandleRect(geom.AnchorCenter, geom.PlaceInside, 2))
	require.Equal(t, geom.Rt(1.0, 1, 9, 9), r.HandleRect(geom.AnchorCenter, geom.PlaceMiddle, 2))
	require.Equal(t, r, r.HandleRect(geom.AnchorCenter, geom.PlaceOutside, 2))
}

func TestHandleRectTouchesAnchor(t *testing.T) {
	// Every handle touches its anchor: on the boundary for Inside and
	// Outside, centered on it for Middle.
	r := geom.Rt(0.0, 0, 10, 10)
	for _, a := range geom.Perimeter {
		for _, place := range []geom.Placement{geom.PlaceInside, geom.PlaceMiddle, geom.PlaceOutside} {
			h := r.HandleRect(a, place, 2)
			p := r.Anchor(a)
			require.LessOrEqual(t, h.SDF(p), 0.0, "%v/%v", a, place)
		}
	}
}

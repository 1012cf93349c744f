package geom_test

import (
	"testing"

	"deedles.dev/geom"
	"github.com/stretchr/testify/require"
)

func TestSDF(t *testing.T) {
	r := geom.Rt(0.0, 0, 10, 10)

	require.Equal(t, -5.0, r.SDF(geom.Pt(5.0, 5)))
	require.Equal(t, -1.0, r.SDF(geom.Pt(1.0, 5)))
	require.Equal(t, -2.0, r.SDF(geom.Pt(5.0, 8)))

	// Edge bands measure perpendicular distance.
	require.Equal(t, 5.0, r.SDF(geom.Pt(15.0, 5)))
	require.Equal(t, 3.0, r.SDF(geom.Pt(5.0, -3)))
	require.Equal(t, 2.0, r.SDF(geom.Pt(-2.0, 9)))
	require.Equal(t, 4.0, r.SDF(geom.Pt(5.0, 14)))

	// Corner regions measure Euclidean distance to the corner.
	require.Equal(t, 5.0, r.SDF(geom.Pt(13.0, 14)))
	require.Equal(t, 5.0, r.SDF(geom.Pt(-3.0, -4)))
	require.Equal(t, 5.0, r.SDF(geom.Pt(14.0, -3)))
	require.Equal(t, 5.0, r.SDF(geom.Pt(-4.0, 13)))
}

func TestSDFMatchesContains(t *testing.T) {
	r := geom.Rt(0.0, 0, 10, 10)
	pts := []geom.Point[float64]{
		{5, 5}, {0, 0}, {9.5, 9.5}, {10, 5}, {5, 10},
		{-1, 5}, {15, 15}, {5, -0.5}, {0.5, 0.5},
	}
	for _, p := range pts {
		require.Equal(t, r.Contains(p), r.SDF(p) < 0, "%v", p)
	}
}

func TestSDFIllFormed(t *testing.T) {
	r := geom.Rect[float64]{Min: geom.Pt(10.0, 0), Max: geom.Pt(0.0, 10)}
	require.Panics(t, func() { r.SDF(geom.Pt(5.0, 5)) })

	r = geom.Rect[float64]{Min: geom.Pt(0.0, 10), Max: geom.Pt(10.0, 0)}
	require.Panics(t, func() { r.ClosestPoint(geom.Pt(5.0, 5)) })
}

func TestClosestPoint(t *testing.T) {
	r := geom.Rt(0.0, 0, 10, 10)

	// Outside: clamp to the boundary.
	require.Equal(t, geom.Pt(10.0, 5), r.ClosestPoint(geom.Pt(15.0, 5)))
	require.Equal(t, geom.Pt(10.0, 10), r.ClosestPoint(geom.Pt(15.0, 15)))
	require.Equal(t, geom.Pt(0.0, 0), r.ClosestPoint(geom.Pt(-3.0, -4)))
	require.Equal(t, geom.Pt(3.0, 0), r.ClosestPoint(geom.Pt(3.0, -2)))
	require.Equal(t, geom.Pt(7.0, 10), r.ClosestPoint(geom.Pt(7.0, 12)))

	// Inside: project onto the nearest edge.
	require.Equal(t, geom.Pt(0.0, 5), r.ClosestPoint(geom.Pt(1.0, 5)))
	require.Equal(t, geom.Pt(10.0, 5), r.ClosestPoint(geom.Pt(9.0, 5)))
	require.Equal(t, geom.Pt(5.0, 0), r.ClosestPoint(geom.Pt(5.0, 2)))
	require.Equal(t, geom.Pt(5.0, 10), r.ClosestPoint(geom.Pt(5.0, 8)))

	require.Equal(t, geom.Pt(0.0, 5), geom.Pt(1.0, 5).SnapToRect(r))
}

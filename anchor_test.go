package geom_test

import (
	"testing"

	"deedles.dev/geom"
	"github.com/stretchr/testify/require"
)

func TestAnchorRotate(t *testing.T) {
	require.Equal(t, geom.AnchorLeftCenter, geom.AnchorLeftTop.Rotate(1))
	require.Equal(t, geom.AnchorTopCenter, geom.AnchorLeftTop.Rotate(-1))
	require.Equal(t, geom.AnchorLeftTop, geom.AnchorLeftTop.Rotate(8))
	require.Equal(t, geom.AnchorLeftTop, geom.AnchorLeftTop.Rotate(-16))
	require.Equal(t, geom.AnchorCenter, geom.AnchorCenter.Rotate(3))
}

func TestAnchorOpposite(t *testing.T) {
	pairs := [][2]geom.Anchor{
		{geom.AnchorLeftTop, geom.AnchorRightBottom},
		{geom.AnchorLeftCenter, geom.AnchorRightCenter},
		{geom.AnchorLeftBottom, geom.AnchorRightTop},
		{geom.AnchorBottomCenter, geom.AnchorTopCenter},
	}
	for _, p := range pairs {
		require.Equal(t, p[1], p[0].Opposite())
		require.Equal(t, p[0], p[1].Opposite())
	}
	require.Equal(t, geom.AnchorCenter, geom.AnchorCenter.Opposite())
}

func TestAnchorFlip(t *testing.T) {
	require.Equal(t, geom.AnchorRightTop, geom.AnchorLeftTop.FlipH())
	require.Equal(t, geom.AnchorLeftBottom, geom.AnchorLeftTop.FlipV())
	require.Equal(t, geom.AnchorTopCenter, geom.AnchorTopCenter.FlipH())
	require.Equal(t, geom.AnchorBottomCenter, geom.AnchorTopCenter.FlipV())
	require.Equal(t, geom.AnchorCenter, geom.AnchorCenter.FlipH())

	for _, a := range geom.Perimeter {
		require.Equal(t, a, a.FlipH().FlipH())
		require.Equal(t, a, a.FlipV().FlipV())
	}
}

func TestAnchorKind(t *testing.T) {
	corners, edges := 0, 0
	for _, a := range geom.Perimeter {
		require.NotEqual(t, a.IsCorner(), a.IsEdge(), a.String())
		if a.IsCorner() {
			corners++
		} else {
			edges++
		}
	}
	require.Equal(t, 4, corners)
	require.Equal(t, 4, edges)
	require.False(t, geom.AnchorCenter.IsCorner())
	require.False(t, geom.AnchorCenter.IsEdge())
}

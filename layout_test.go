package geom_test

import (
	"testing"

	"deedles.dev/geom"
	"github.com/stretchr/testify/require"
)

func TestTileRightThenDown(t *testing.T) {
	tiles := make([]geom.Rect[int], 4)
	geom.TileRightThenDown(tiles, geom.Rt(0, 0, 16, 16))
	require.Equal(t, []geom.Rect[int]{
		geom.Rt(0, 0, 8, 16),
		geom.Rt(8, 0, 12, 16),
		geom.Rt(12, 0, 16, 8),
		geom.Rt(12, 8, 16, 16),
	}, tiles)
}

func TestTileEvenVertically(t *testing.T) {
	tiles := make([]geom.Rect[int], 3)
	geom.TileEvenVertically(tiles, geom.Rt(0, 0, 12, 12))
	require.Equal(t, []geom.Rect[int]{
		geom.Rt(0, 0, 12, 4),
		geom.Rt(0, 4, 12, 8),
		geom.Rt(0, 8, 12, 12),
	}, tiles)
}

func TestTileEvenHorizontally(t *testing.T) {
	tiles := make([]geom.Rect[int], 3)
	geom.TileEvenHorizontally(tiles, geom.Rt(0, 0, 12, 12))
	require.Equal(t, []geom.Rect[int]{
		geom.Rt(0, 0, 4, 12),
		geom.Rt(4, 0, 8, 12),
		geom.Rt(8, 0, 12, 12),
	}, tiles)
}

func TestTileTwoThirdsSidebar(t *testing.T) {
	tiles := make([]geom.Rect[int], 3)
	geom.TileTwoThirdsSidebar(tiles, geom.Rt(0, 0, 12, 12))
	require.Equal(t, []geom.Rect[int]{
		geom.Rt(0, 0, 8, 12),
		geom.Rt(8, 0, 12, 6),
		geom.Rt(8, 6, 12, 12),
	}, tiles)
}

func TestTileRows(t *testing.T) {
	tiles := make([]geom.Rect[int], 5)
	geom.TileRows(tiles, geom.Rt(0, 0, 12, 12), 2)
	require.Equal(t, []geom.Rect[int]{
		geom.Rt(0, 0, 6, 4),
		geom.Rt(6, 0, 12, 4),
		geom.Rt(0, 4, 6, 8),
		geom.Rt(6, 4, 12, 8),
		geom.Rt(0, 8, 12, 12),
	}, tiles)

	// The tiles reassemble the tiled rectangle.
	require.Equal(t, geom.Rt(0, 0, 12, 12), geom.MinRect(tiles...))
}

func TestVerticalStack(t *testing.T) {
	var got []geom.Rect[int]
	for r := range geom.VerticalStack(geom.Rt(0, 0, 4, 2)) {
		got = append(got, r)
		if len(got) == 3 {
			break
		}
	}
	require.Equal(t, []geom.Rect[int]{
		geom.Rt(0, 0, 4, 2),
		geom.Rt(0, 2, 4, 4),
		geom.Rt(0, 4, 4, 6),
	}, got)
}

func TestArrangeVerticalStack(t *testing.T) {
	rects := []geom.Rect[int]{
		geom.Rt(0, 0, 10, 2),
		geom.Rt(0, 0, 4, 3),
		geom.Rt(0, 0, 12, 1),
	}
	geom.ArrangeVerticalStack(rects)
	require.Equal(t, []geom.Rect[int]{
		geom.Rt(0, 0, 12, 2),
		geom.Rt(0, 2, 12, 5),
		geom.Rt(0, 5, 12, 6),
	}, rects)
}

func TestAlignAnchor(t *testing.T) {
	outer := geom.Rt(0, 0, 100, 100)
	inner := geom.Rt(0, 0, 10, 10)
	require.Equal(t, geom.Rt(90, 90, 100, 100), geom.AlignAnchor(outer, inner, geom.AnchorRightBottom))
	require.Equal(t, geom.Rt(45, 45, 55, 55), geom.AlignAnchor(outer, inner, geom.AnchorCenter))
	require.Equal(t, geom.Rt(0, 45, 10, 55), geom.AlignAnchor(outer, inner, geom.AnchorLeftCenter))
}

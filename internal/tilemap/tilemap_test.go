package tilemap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/borkshop/rampage/internal/point"
	"github.com/borkshop/rampage/internal/tilemap"
)

func TestTileMap(t *testing.T) {
	tm := tilemap.New(point.Pt(5, 4), tilemap.Floor)
	tm.Enwall()
	for _, pt := range []point.Point{point.Pt(0, 0), point.Pt(4, 0), point.Pt(0, 3), point.Pt(4, 3), point.Pt(2, 0), point.Pt(0, 2)} {
		assert.True(t, tm.IsWall(pt), "%v", pt)
	}
	assert.False(t, tm.IsWall(point.Pt(1, 1)))
	assert.False(t, tm.IsWall(point.Pt(3, 2)))
	assert.True(t, tm.IsWall(point.Pt(-1, 1)), "off the map")
	assert.Equal(t, tilemap.Empty, tm.At(point.Pt(5, 0)))

	_, ok := tm.DecorOn(point.Pt(2, 2))
	assert.False(t, ok)
	tm.AddDecor(point.Pt(2, 2), tilemap.BloodRed1)
	tm.AddDecor(point.Pt(2, 2), tilemap.BloodRed2)
	tm.AddDecor(point.Pt(9, 9), tilemap.BloodRed1)
	assert.Len(t, tm.Decor, 2)
	d, ok := tm.DecorOn(point.Pt(2, 2))
	assert.True(t, ok)
	assert.Equal(t, tilemap.BloodRed2, d)
}

func TestRoom(t *testing.T) {
	r := tilemap.Room{X: 2, Y: 3, W: 4, H: 3}
	assert.Equal(t, point.Pt(4, 4), r.Center())
	assert.Equal(t, 12, r.TileCount())
	assert.Equal(t, point.Pt(2, 3), r.TilePos(0))
	assert.Equal(t, point.Pt(3, 4), r.TilePos(5))
	assert.Equal(t, point.Pt(5, 5), r.TilePos(11))
	for i := 0; i < r.TileCount(); i++ {
		assert.True(t, r.Contains(r.TilePos(i)))
	}
	assert.False(t, r.Contains(point.Pt(6, 3)))
}

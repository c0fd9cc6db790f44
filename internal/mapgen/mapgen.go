// Package mapgen generates levels: a BSP partition of the map into areas, one
// room carved per area, rooms joined by dug corridors, and stairs placed in
// rooms far apart.
package mapgen

import (
	"github.com/borkshop/rampage/internal/point"
	"github.com/borkshop/rampage/internal/rng"
	"github.com/borkshop/rampage/internal/tilemap"
)

// Size limits of a generated map, per side.
const (
	MinSize = 15
	MaxSize = 25
)

// Generate builds a level from a seed; the same seed always yields the same
// level.
func Generate(seed uint64) *tilemap.TileMap {
	r := rng.New(seed)
	sz := point.Pt(
		int(r.NextInRange(MinSize, MaxSize)),
		int(r.NextInRange(MinSize, MaxSize)))
	tm := tilemap.New(sz, tilemap.Wall)

	for _, a := range partition(area{0, 0, sz.X, sz.Y}, r) {
		room := a.carve(r)
		for i := 0; i < room.TileCount(); i++ {
			tm.Tiles.Set(room.TilePos(i), tilemap.Floor)
		}
		tm.Rooms = append(tm.Rooms, room)
	}

	first := tm.Rooms[0].Center()
	for _, room := range tm.Rooms[1:] {
		path, ok := dig(tm, first, room.Center())
		if !ok {
			panic("mapgen: failed digging")
		}
		for _, pt := range path {
			tm.Tiles.Set(pt, tilemap.Floor)
		}
	}

	tm.UpStairs = first
	tm.DownStairs = first
	far := -1
	for _, room := range tm.Rooms {
		if d := manhattan(first, room.Center()); d > far {
			far = d
			tm.DownStairs = room.Center()
		}
	}
	return tm
}

// partition splits areas until none is splittable.
func partition(root area, r *rng.Generator) []area {
	leaves := []area{root}
	for split := true; split; {
		split = false
		next := make([]area, 0, 2*len(leaves))
		for _, a := range leaves {
			if !a.splittable() {
				next = append(next, a)
				continue
			}
			b, c := a.split(int(r.NextInRange(4, 6)))
			next = append(next, b, c)
			split = true
		}
		leaves = next
	}
	return leaves
}

type area struct{ x, y, w, h int }

func (a area) splittable() bool { return a.w >= 14 || a.h >= 14 }

// split cuts the longer side at ratio tenths.
func (a area) split(ratio int) (area, area) {
	if a.w > a.h {
		wa := a.w * ratio / 10
		return area{a.x, a.y, wa, a.h}, area{a.x + wa, a.y, a.w - wa, a.h}
	}
	ha := a.h * ratio / 10
	return area{a.x, a.y, a.w, ha}, area{a.x, a.y + ha, a.w, a.h - ha}
}

// carve picks a room strictly inside the area, leaving at least one wall
// column and row on every side.
func (a area) carve(r *rng.Generator) tilemap.Room {
	minW, minH := max(3, a.w-5), max(3, a.h-5)
	w := int(r.NextInRange(uint64(minW), uint64(a.w-2)))
	h := int(r.NextInRange(uint64(minH), uint64(a.h-2)))
	x := int(r.NextInRange(uint64(a.x+1), uint64(a.x+a.w-w)))
	y := int(r.NextInRange(uint64(a.y+1), uint64(a.y+a.h-h)))
	return tilemap.Room{X: x, Y: y, W: w, H: h}
}

func manhattan(a, b point.Point) int {
	d := a.Sub(b).Abs()
	return d.X + d.Y
}

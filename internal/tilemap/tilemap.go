// Package tilemap holds the static terrain of a level: walls and floors,
// rooms, stairs, and decor lying on the floor.
package tilemap

import (
	"github.com/borkshop/rampage/internal/grid"
	"github.com/borkshop/rampage/internal/point"
)

// Tile is a logical terrain cell.
type Tile uint8

// Tile values.
const (
	Wall Tile = iota
	Floor
	Empty
)

// Decor is anything lying on top of a floor tile, below actors.
type Decor uint8

// Decor values.
const (
	BloodRed1 Decor = iota
	BloodRed2
)

// DecorAt places a Decor.
type DecorAt struct {
	Pos   point.Point `json:"pos"`
	Decor Decor       `json:"decor"`
}

// Room is a carved rectangle of floor.
type Room struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Center returns the room's middle tile.
func (r Room) Center() point.Point { return point.Pt(r.X+r.W/2, r.Y+r.H/2) }

// TileCount returns how many tiles the room covers.
func (r Room) TileCount() int { return r.W * r.H }

// TilePos returns the i-th tile of the room in row-major order.
func (r Room) TilePos(i int) point.Point { return point.Pt(r.X+i%r.W, r.Y+i/r.W) }

// Contains returns true if the point lies inside the room.
func (r Room) Contains(pt point.Point) bool {
	return pt.X >= r.X && pt.Y >= r.Y && pt.X < r.X+r.W && pt.Y < r.Y+r.H
}

// TileMap is the terrain of one level.
type TileMap struct {
	Tiles      grid.Grid[Tile] `json:"tiles"`
	Rooms      []Room          `json:"rooms"`
	UpStairs   point.Point     `json:"up_stairs"`
	DownStairs point.Point     `json:"down_stairs"`
	Decor      []DecorAt       `json:"decor"`
}

// New creates a map of the given size filled with one tile.
func New(sz point.Point, fill Tile) *TileMap {
	return &TileMap{Tiles: grid.Make(sz, fill)}
}

// Size returns the map dimensions.
func (tm *TileMap) Size() point.Point { return tm.Tiles.Size }

// In returns true if the point lies on the map.
func (tm *TileMap) In(pt point.Point) bool { return tm.Tiles.In(pt) }

// At returns the tile at a point; anything off the map is Empty.
func (tm *TileMap) At(pt point.Point) Tile {
	if t, ok := tm.Tiles.Get(pt); ok {
		return t
	}
	return Empty
}

// IsWall returns true for walls and for anything off the map.
func (tm *TileMap) IsWall(pt point.Point) bool {
	t, ok := tm.Tiles.Get(pt)
	return !ok || t == Wall
}

// Enwall puts a wall around the edge of the map.
func (tm *TileMap) Enwall() {
	sz := tm.Tiles.Size
	for x := 0; x < sz.X; x++ {
		tm.Tiles.Set(point.Pt(x, 0), Wall)
		tm.Tiles.Set(point.Pt(x, sz.Y-1), Wall)
	}
	for y := 0; y < sz.Y; y++ {
		tm.Tiles.Set(point.Pt(0, y), Wall)
		tm.Tiles.Set(point.Pt(sz.X-1, y), Wall)
	}
}

// AddDecor drops decor at a point; it is ignored off the map.
func (tm *TileMap) AddDecor(pt point.Point, d Decor) {
	if tm.In(pt) {
		tm.Decor = append(tm.Decor, DecorAt{pt, d})
	}
}

// DecorOn returns the most recently added decor at a point.
func (tm *TileMap) DecorOn(pt point.Point) (Decor, bool) {
	for i := len(tm.Decor) - 1; i >= 0; i-- {
		if tm.Decor[i].Pos == pt {
			return tm.Decor[i].Decor, true
		}
	}
	return 0, false
}

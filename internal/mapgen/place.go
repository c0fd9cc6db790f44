package mapgen

import (
	"github.com/borkshop/rampage/internal/point"
	"github.com/borkshop/rampage/internal/rng"
	"github.com/borkshop/rampage/internal/tilemap"
)

// Enemy is a kind of creature placed on a level.
type Enemy uint8

// Enemy values.
const (
	Goblin Enemy = iota
	GoblinBrute
	GoblinArcher
)

// SpawnChance is the per-mille chance of a room tile getting an enemy.
const SpawnChance = 20

// Spawn places one enemy.
type Spawn struct {
	Pos   point.Point
	Enemy Enemy
}

// PlaceEnemies rolls every room tile for an enemy; the up stairs, where the
// player arrives, stays clear. The same seed and map always yield the same
// spawns.
func PlaceEnemies(seed uint64, tm *tilemap.TileMap) []Spawn {
	r := rng.New(seed)
	var spawns []Spawn
	taken := make(map[point.Point]bool)
	for _, room := range tm.Rooms {
		for i := 0; i < room.TileCount(); i++ {
			if r.NextInRange(0, 1000) > SpawnChance {
				continue
			}
			enemy := rng.Pick(r, Goblin, GoblinBrute, GoblinArcher)
			pt := room.TilePos(i)
			if pt == tm.UpStairs || taken[pt] || tm.IsWall(pt) {
				continue
			}
			taken[pt] = true
			spawns = append(spawns, Spawn{pt, enemy})
		}
	}
	return spawns
}

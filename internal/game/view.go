package game

import (
	"sort"

	"github.com/borkshop/rampage/internal/ecs"
	"github.com/borkshop/rampage/internal/point"
)

// PlayerState returns a copy of the player data of an entity.
func (w *World) PlayerState(ent ecs.Entity) (Player, bool) {
	if !ent.Type().All(wcPlayer) {
		return Player{}, false
	}
	return *w.players[ent.ID()], true
}

// Projectiles returns every projectile in flight this frame.
func (w *World) Projectiles() []Projectile {
	var projs []Projectile
	for it := w.Iter(ecs.All(wcTimer | wcProjectile)); it.Next(); {
		if proj := w.projectiles[it.ID()]; proj.Shown {
			projs = append(projs, proj)
		}
	}
	return projs
}

// DangerTiles returns the map tiles telegraphed by danger zones, sorted and
// without repeats.
func (w *World) DangerTiles() []point.Point {
	seen := make(map[point.Point]struct{})
	var pts []point.Point
	for it := w.Iter(ecs.All(wcDanger | wcPosition)); it.Next(); {
		at := w.Pos(it.Entity())
		for _, off := range w.dangers[it.ID()].Offsets {
			pt := at.Add(off)
			if _, dup := seen[pt]; !dup {
				seen[pt] = struct{}{}
				pts = append(pts, pt)
			}
		}
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
	return pts
}

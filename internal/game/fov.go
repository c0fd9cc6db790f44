package game

import (
	"sort"

	"github.com/borkshop/rampage/internal/ecs"
	"github.com/borkshop/rampage/internal/fov"
	"github.com/borkshop/rampage/internal/point"
)

// Fov is the set of tiles an actor can see.
type Fov map[point.Point]struct{}

// Contains returns true if the tile is in view.
func (f Fov) Contains(pt point.Point) bool {
	_, ok := f[pt]
	return ok
}

// Points returns the visible tiles in row-major order.
func (f Fov) Points() []point.Point {
	pts := make([]point.Point, 0, len(f))
	for pt := range f {
		pts = append(pts, pt)
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
	return pts
}

// updateFov recomputes what an actor sees from where it stands.
func (w *World) updateFov(ent ecs.Entity) {
	id := w.Deref(ent)
	f := make(Fov)
	fov.Compute(w.Pos(ent), w.TileMap.IsWall, func(pt point.Point) {
		if w.TileMap.In(pt) {
			f[pt] = struct{}{}
		}
	})
	w.fovs[id] = f
	if !ent.Type().All(wcFov) {
		ent.Add(wcFov)
	}
}

// FovOf returns what an actor last saw; nil if it never looked.
func (w *World) FovOf(ent ecs.Entity) Fov {
	if !ent.Type().All(wcFov) {
		return nil
	}
	return w.fovs[ent.ID()]
}

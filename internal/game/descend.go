package game

import (
	"github.com/borkshop/rampage/internal/ecs"
	"github.com/borkshop/rampage/internal/mapgen"
)

// Descend takes the player down to a freshly generated level: everyone else
// is left behind, new enemies wait on the new level, and the camera jumps
// straight to the player.
func (w *World) Descend() {
	player, ok := w.Player()
	if !ok {
		return
	}
	for _, ent := range w.Actors() {
		if ent != player {
			ent.Destroy()
		}
	}
	for it := w.Iter(ecs.All(wcCameraMove)); it.Next(); {
		it.Entity().Destroy()
	}

	seed := w.RNG.Next()
	tm := mapgen.Generate(seed)
	a := w.Actor(player)
	w.pos.Set(player, tm.UpStairs)
	a.DrawPos = tm.UpStairs.F()
	w.enterLevel(tm, seed, a.NextTurn)
	w.updateFov(player)

	w.camera.MoveRel(tm.UpStairs.F().Sub(w.camera.Center()))
	w.log("%v descended to a %v level", w.TurnCount, tm.Size())
}

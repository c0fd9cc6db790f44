package game

import (
	"math"

	"github.com/borkshop/rampage/internal/ecs"
	"github.com/borkshop/rampage/internal/moremath"
	"github.com/borkshop/rampage/internal/point"
)

// handleAnimations plays every active animation at Now, then disposes of
// finished ones.
func (w *World) handleAnimations() {
	w.eachActive(wcMovement, func(anim ecs.Entity, t Timer) {
		mv := w.movements[anim.ID()]
		at := mv.From.Lerp(mv.To, moremath.SineInOut(t.Progress(w.Now)))
		w.eachTargetActor(anim, func(a *Actor) { a.DrawPos = at })
	})

	w.eachActive(wcBump, func(anim ecs.Entity, t Timer) {
		mv := w.movements[anim.ID()]
		s := moremath.CubicInOut(moremath.Roundtrip(t.Progress(w.Now))) * w.Rules.BumpForward
		at := mv.From.Lerp(mv.To, s)
		w.eachTargetActor(anim, func(a *Actor) { a.DrawPos = at })
	})

	w.eachActive(wcProjectile, func(anim ecs.Entity, t Timer) {
		proj := &w.projectiles[anim.ID()]
		if len(proj.Path) == 0 {
			return
		}
		last := len(proj.Path) - 1
		cur := t.Progress(w.Now) * float64(last)
		i := int(math.Floor(cur))
		i = min(i, last)
		j := min(i+1, last)
		_, frac := math.Modf(cur)
		proj.At = proj.Path[i].F().Lerp(proj.Path[j].F(), frac)
		proj.Shown = true
	})

	w.eachActive(wcHPBar, func(anim ecs.Entity, t Timer) {
		bar := w.hpBars[anim.ID()]
		ratio := moremath.Lerp(bar.StartRatio, bar.EndRatio, t.Progress(w.Now))
		w.eachTargetActor(anim, func(a *Actor) { a.DrawHealth = ratio })
	})

	w.eachActive(wcDecorSpawn, func(anim ecs.Entity, t Timer) {
		ds := w.decorSpawns[anim.ID()]
		w.TileMap.AddDecor(ds.Pos, ds.Decor)
		w.Destroy(anim)
	})

	w.eachActive(wcDangerAnim, func(anim ecs.Entity, t Timer) {
		change := w.dangerAnims[anim.ID()]
		for _, ent := range w.targets.Targets(ecs.AllClause, anim.ID()) {
			if change.Add {
				w.dangers[ent.ID()] = change.Zone
				w.Add(ent, wcDanger)
			} else {
				w.Delete(ent, wcDanger)
			}
		}
		w.Destroy(anim)
	})
	w.Commit()

	w.eachActive(wcGameOver, func(anim ecs.Entity, t Timer) {
		w.UI.State = UIPostDeath
	})

	w.camera.SetShake(point.Zero.F())
	w.eachActive(wcShake, func(anim ecs.Entity, t Timer) {
		n := t.Progress(w.Now) * 1000
		r := w.Rules.ShakeRange
		w.camera.SetShake(point.FPt(
			r*w.shake.At(n, n),
			r*w.shake.At(n+50, n+50),
		))
	})

	w.playCameraMove()

	for it := w.Iter(ecs.All(wcTimer)); it.Next(); {
		if w.timers[it.ID()].Finished(w.Now) {
			w.Destroy(it.Entity())
		}
	}
}

// playCameraMove runs only the most recently started camera move, so that a
// newer move takes over from one still in flight.
func (w *World) playCameraMove() {
	var (
		latest ecs.EntityID
		start  float64
	)
	w.eachActive(wcCameraMove, func(anim ecs.Entity, t Timer) {
		if latest == 0 || t.Start >= start {
			latest, start = anim.ID(), t.Start
		}
	})
	if latest == 0 {
		return
	}
	cm := &w.cameraMoves[latest]
	center := w.camera.Center()
	if !cm.HasFrom {
		cm.From, cm.HasFrom = center, true
	}
	s := moremath.CubicOut(w.timers[latest].Progress(w.Now))
	w.camera.MoveRel(cm.From.Lerp(cm.To, s).Sub(center))
}

func (w *World) eachActive(t ecs.ComponentType, f func(anim ecs.Entity, t Timer)) {
	for it := w.Iter(ecs.All(wcTimer | t)); it.Next(); {
		if timer := w.timers[it.ID()]; timer.Active(w.Now) {
			f(it.Entity(), timer)
		}
	}
}

func (w *World) eachTargetActor(anim ecs.Entity, f func(a *Actor)) {
	for _, ent := range w.targets.Targets(ecs.AllClause, anim.ID()) {
		if a := w.actors[ent.ID()]; a != nil {
			f(a)
		}
	}
}

package game

import (
	"github.com/borkshop/rampage/internal/ecs"
	"github.com/borkshop/rampage/internal/moremath"
	"github.com/borkshop/rampage/internal/point"
	"github.com/borkshop/rampage/internal/rng"
	"github.com/borkshop/rampage/internal/tilemap"
)

// Animation lengths, in seconds.
const (
	moveLength       = 0.10
	bumpLength       = 0.15
	jumpLength       = 0.15
	jumpHPLength     = 0.10
	projectileStep   = 0.02
	projectileSteps  = 5
	projectileHPBar  = 0.07
	shakeLength      = 0.07
	cameraMoveLength = 0.5
	gameOverLength   = 0.5
	meditateLength   = 0.5
	slamHPLength     = 0.3
)

// Timer spans an animation; it is active once Now reaches Start and
// finished once Now reaches End.
type Timer struct {
	Start, End float64
}

// Active returns true once the animation has started.
func (t Timer) Active(now float64) bool { return now >= t.Start }

// Finished returns true once the animation is over.
func (t Timer) Finished(now float64) bool { return now >= t.End }

// Progress returns how far along the animation is, in [0, 1].
func (t Timer) Progress(now float64) float64 {
	if t.End <= t.Start {
		if now >= t.Start {
			return 1
		}
		return 0
	}
	return moremath.Clamp((now-t.Start)/(t.End-t.Start), 0, 1)
}

// Movement moves (or, for a bump, lunges) a drawn actor between two tiles.
type Movement struct {
	From, To point.FPoint
}

// HPBar slides a drawn health bar between two ratios.
type HPBar struct {
	StartRatio, EndRatio float64
}

// Projectile flies a sprite along a path of tiles.
type Projectile struct {
	Sprite Sprite
	Path   []point.Point

	// At is where to draw the sprite this frame, if Shown.
	At    point.FPoint
	Shown bool
}

// CameraMove glides the camera center to To; From is captured when the
// animation first plays.
type CameraMove struct {
	From    point.FPoint
	HasFrom bool
	To      point.FPoint
}

// DangerZone telegraphs the tiles, relative to its actor, about to be hit.
type DangerZone struct {
	Offsets []point.Point `json:"offsets"`
}

// DangerZoneChange sets (Add) or clears an actor's danger zone once started.
type DangerZoneChange struct {
	Zone DangerZone
	Add  bool
}

// startTime returns when an animation involving the given entities may
// start: now, or once every committed animation targeting any of them is
// over.
func (w *World) startTime(ents ...ecs.Entity) float64 {
	start := w.Now
	ids := make([]ecs.EntityID, 0, len(ents))
	for _, ent := range ents {
		ids = append(ids, w.Deref(ent))
	}
	for cur := w.targets.LookupB(ecs.AllClause, ids...); cur.Scan(); {
		if anim := cur.A(); anim.Type().All(wcTimer) {
			start = max(start, w.timers[anim.ID()].End)
		}
	}
	return start
}

// spawnAnim reserves an animation entity covering [start, start+length]
// and targeting the given entities; it becomes visible at the next commit.
func (w *World) spawnAnim(t ecs.ComponentType, start, length float64, targets ...ecs.Entity) ecs.Entity {
	anim := w.Spawn(wcTimer | t)
	w.timers[anim.ID()] = Timer{Start: start, End: start + length}
	for _, tgt := range targets {
		w.Insert(&w.targets.Relation, relLink, anim, tgt)
	}
	return anim
}

func (w *World) spawnEmpty(length float64, target ecs.Entity) ecs.Entity {
	return w.spawnAnim(0, w.startTime(target), length, target)
}

func (w *World) spawnHPBar(length float64, target ecs.Entity, bar HPBar) ecs.Entity {
	anim := w.spawnAnim(wcHPBar, w.startTime(target), length, target)
	w.hpBars[anim.ID()] = bar
	return anim
}

func (w *World) spawnMove(ent ecs.Entity, from, to point.Point) ecs.Entity {
	anim := w.spawnAnim(wcMovement, w.startTime(ent), moveLength, ent)
	w.movements[anim.ID()] = Movement{From: from.F(), To: to.F()}
	return anim
}

// spawnBump lunges the attacker at the target, then drops the target's
// health bar over the second half and splatters blood next to it.
func (w *World) spawnBump(actor, target ecs.Entity, from, to point.Point, bar HPBar) ecs.Entity {
	start := w.startTime(actor, target)

	anim := w.spawnAnim(wcBump, start, bumpLength, actor)
	w.movements[anim.ID()] = Movement{From: from.F(), To: to.F()}

	hp := w.spawnAnim(wcHPBar, start+bumpLength/2, bumpLength/2, target)
	w.hpBars[hp.ID()] = bar

	pos := to.Add(w.RNG.RandomDirection())
	decor := rng.Pick(w.RNG, tilemap.BloodRed1, tilemap.BloodRed2)
	w.spawnDecor(start+bumpLength*0.75, target, tilemap.DecorAt{Pos: pos, Decor: decor})

	return anim
}

// spawnDecor lays decor on the map once start is reached.
func (w *World) spawnDecor(start float64, target ecs.Entity, decor tilemap.DecorAt) ecs.Entity {
	anim := w.spawnAnim(wcDecorSpawn, start, 0, target)
	w.decorSpawns[anim.ID()] = decor
	return anim
}

// spawnProjectile flies a sprite along path, then plays the target's health
// bar; it returns the health bar animation, which ends last.
func (w *World) spawnProjectile(sprite Sprite, path []point.Point, bar HPBar, target ecs.Entity) ecs.Entity {
	length := projectileStep * float64(min(len(path), projectileSteps))
	start := w.startTime(target)

	proj := w.spawnAnim(wcProjectile, start, length, target)
	w.projectiles[proj.ID()] = Projectile{Sprite: sprite, Path: path}

	hp := w.spawnAnim(wcHPBar, start+length, projectileHPBar, target)
	w.hpBars[hp.ID()] = bar
	return hp
}

// spawnCameraShake creates a shake starting now; unlike other animations it
// exists immediately, so that animations spawned after it wait for it.
func (w *World) spawnCameraShake(targets ...ecs.Entity) ecs.Entity {
	anim := w.AddEntity(wcTimer | wcShake)
	w.timers[anim.ID()] = Timer{Start: w.Now, End: w.Now + shakeLength}
	for _, tgt := range targets {
		w.targets.Insert(relLink, anim, tgt)
	}
	return anim
}

// addCameraMove glides the camera to goal starting with the sync animation.
func (w *World) addCameraMove(sync ecs.Entity, goal point.Point) {
	w.Do(func() {
		if !sync.Alive() {
			return
		}
		start := w.timers[sync.ID()].Start
		anim := w.spawnAnim(wcCameraMove, start, cameraMoveLength)
		w.cameraMoves[anim.ID()] = CameraMove{To: goal.F()}
	})
}

func (w *World) spawnGameOver(target ecs.Entity) ecs.Entity {
	return w.spawnAnim(wcGameOver, w.startTime(target), gameOverLength, target)
}

func (w *World) spawnDangerZone(actor ecs.Entity, zone DangerZone, add bool) ecs.Entity {
	anim := w.spawnAnim(wcDangerAnim, w.startTime(actor), 0, actor)
	w.dangerAnims[anim.ID()] = DangerZoneChange{Zone: zone, Add: add}
	return anim
}

package game

import (
	"fmt"

	"github.com/borkshop/rampage/internal/ecs"
	"github.com/borkshop/rampage/internal/point"
)

// HandleAction resolves an action: damage and movement happen at once,
// animations are queued behind whatever already animates the involved
// actors, and the actor's next turn is pushed back by the action's cost.
// It panics if the actor is dead.
func (w *World) HandleAction(act Action) {
	if a := w.Actor(act.Actor); !a.Alive() {
		panic(fmt.Sprintf("game: dead %v cannot act", a.Name))
	}
	act.Kind.apply(w, act.Actor)
}

func (Wait) apply(w *World, actor ecs.Entity) {
	w.lowerPulse(actor)
	w.spend(actor, w.Rules.TurnCost)
}

func (Meditate) apply(w *World, actor ecs.Entity) {
	for i := 0; i < w.Rules.MeditateDecay; i++ {
		w.lowerPulse(actor)
	}
	// calming down too far kills before any healing happens
	if a := w.Actor(actor); a.Alive() {
		heal := min(w.Rules.MeditateHeal, a.HP.Max-a.HP.Current)
		bar := a.HP.dmg(-heal)
		anim := w.spawnHPBar(meditateLength, actor, bar)
		w.logMessage(anim, "%s meditates briefly and heals for %d HP.", a.Name, heal)
	}
	w.spend(actor, w.Rules.LongTurnCost)
}

func (k Move) apply(w *World, actor ecs.Entity) {
	anim := w.spawnMove(actor, k.From, k.To)
	w.pos.Set(actor, k.To)
	if w.isPlayer(actor) {
		w.addCameraMove(anim, k.To)
	}
	w.lowerPulse(actor)
	w.spend(actor, w.Rules.TurnCost)
}

func (k BumpAttack) apply(w *World, actor ecs.Entity) {
	if actor == k.Target {
		panic("game: actor cannot bump itself")
	}
	a, t := w.Actor(actor), w.Actor(k.Target)
	bar := t.HP.dmg(w.Rules.BumpDamage)
	anim := w.spawnBump(actor, k.Target, w.Pos(actor), w.Pos(k.Target), bar)
	w.logMessage(anim, "%s attacks %s.", a.Name, t.Name)
	w.raisePulse(actor)
	w.raisePulse(k.Target)
	w.handleDeath(k.Target, anim)
	w.spend(actor, w.Rules.TurnCost)
}

func (k RockThrow) apply(w *World, actor ecs.Entity) {
	w.shoot(actor, k.Target, k.Path, SpriteRock, w.Rules.RockDamage, "%s throws a huge rock at %s.")
}

func (k ShootArrow) apply(w *World, actor ecs.Entity) {
	w.shoot(actor, k.Target, k.Path, SpriteArrow, w.Rules.ArrowDamage, "%s shoots an arrow at %s.")
}

func (w *World) shoot(actor, target ecs.Entity, path []point.Point, sprite Sprite, damage int, mess string) {
	a, t := w.Actor(actor), w.Actor(target)
	bar := t.HP.dmg(damage)
	anim := w.spawnProjectile(sprite, path, bar, target)
	w.logMessage(anim, mess, a.Name, t.Name)
	w.raisePulse(target)
	w.spend(actor, w.Rules.TurnCost)
	w.handleDeath(target, anim)
}

func (k JumpAttack) apply(w *World, actor ecs.Entity) {
	if len(k.Path) < 2 {
		panic(fmt.Sprintf("game: jump path %v too short", k.Path))
	}
	a, t := w.Actor(actor), w.Actor(k.Target)
	start := w.startTime(actor, k.Target)
	land := k.Path[len(k.Path)-2]

	jump := w.spawnAnim(wcMovement, start, jumpLength, actor)
	w.movements[jump.ID()] = Movement{From: w.Pos(actor).F(), To: land.F()}
	w.spawnAnim(0, start, jumpLength, k.Target) // holds the target still
	w.pos.Set(actor, land)

	bar := t.HP.dmg(w.Rules.JumpDamage)
	hp := w.spawnAnim(wcHPBar, start+jumpLength, jumpHPLength, k.Target)
	w.hpBars[hp.ID()] = bar

	w.logMessage(jump, "%s jumps at %s.", a.Name, t.Name)
	w.raisePulse(actor)
	w.raisePulse(k.Target)
	w.spend(actor, w.Rules.TurnCost)
	w.handleDeath(k.Target, hp)
}

func (k Kick) apply(w *World, actor ecs.Entity) {
	if actor == k.Target {
		panic("game: actor cannot kick itself")
	}
	a, t := w.Actor(actor), w.Actor(k.Target)
	from, at := w.Pos(actor), w.Pos(k.Target)
	to := at.Add(at.Sub(from))

	bar := t.HP.dmg(w.Rules.KickDamage)
	anim := w.spawnBump(actor, k.Target, from, at, bar)
	w.logMessage(anim, "%s kicks %s.", a.Name, t.Name)

	if !w.isBlocked(to) {
		w.spawnMove(k.Target, at, to)
		w.pos.Set(k.Target, to)
		w.logMessage(anim, "%s flies away.", t.Name)
	}

	w.raisePulse(actor)
	w.raisePulse(k.Target)
	w.handleDeath(k.Target, anim)
	w.spend(actor, w.Rules.TurnCost)
}

func (GroundSlam) apply(w *World, actor ecs.Entity) {
	a := w.Actor(actor)
	shake := w.spawnCameraShake(actor)
	w.logMessage(shake, "%s stomps the ground mightily.", a.Name)

	for _, pt := range w.Pos(actor).Neighbors() {
		target, ok := w.ActorAt(pt)
		if !ok {
			continue
		}
		w.targets.Insert(relLink, shake, target)
		bar := w.Actor(target).HP.dmg(w.Rules.SlamDamage)
		hp := w.spawnHPBar(slamHPLength, target, bar)
		w.raisePulse(actor)
		w.raisePulse(target)
		w.handleDeath(target, hp)
	}

	w.spend(actor, w.Rules.TurnCost)
}

func (k DelayedSmash) apply(w *World, actor ecs.Entity) {
	a := w.Actor(actor)
	w.delayed[actor.ID()] = Action{Actor: actor, Kind: k}
	actor.Add(wcDelayed)
	anim := w.spawnDangerZone(actor, DangerZone{Offsets: []point.Point{k.Dir}}, true)
	w.logMessage(anim, "%s prepares to smash.", a.Name)
	w.spend(actor, w.Rules.TurnCost)
}

// handleDelayedAction lands a previously telegraphed action; only smashes
// are ever delayed.
func (w *World) handleDelayedAction(act Action) {
	k, ok := act.Kind.(DelayedSmash)
	if !ok {
		panic(fmt.Sprintf("game: unhandled delayed action %T", act.Kind))
	}
	actor := act.Actor
	a := w.Actor(actor)
	at := w.Pos(actor)

	if target, ok := w.ActorAt(at.Add(k.Dir)); ok {
		if target == actor {
			panic("game: actor cannot smash itself")
		}
		t := w.Actor(target)
		bar := t.HP.dmg(w.Rules.SmashDamage)
		w.spawnDangerZone(actor, DangerZone{}, false)
		anim := w.spawnBump(actor, target, at, w.Pos(target), bar)
		w.logMessage(anim, "%s smashes %s.", a.Name, t.Name)
		w.raisePulse(actor)
		w.raisePulse(target)
		w.handleDeath(target, anim)
	} else {
		anim := w.spawnDangerZone(actor, DangerZone{}, false)
		w.logMessage(anim, "%s smashes nothing.", a.Name)
	}
	w.spend(actor, w.Rules.TurnCost)
}

// handleDeath announces a target that has run out of hit points; the player
// gets a game over, anyone else is removed once anim is done.
func (w *World) handleDeath(target, anim ecs.Entity) {
	t := w.Actor(target)
	if t.Alive() {
		return
	}
	w.logMessage(anim, "%s dies.", t.Name)
	if w.isPlayer(target) {
		w.spawnGameOver(target)
	} else {
		w.Insert(w.cleanup, relLink, anim, target)
	}
}

func (w *World) raisePulse(ent ecs.Entity) {
	p := w.players[w.Deref(ent)]
	if p == nil {
		return
	}
	p.Pulse += w.Rules.PulseRaise
	p.LastPulseAction = w.Actor(ent).NextTurn
}

// lowerPulse calms the player down once nothing exciting has happened for a
// while; a pulse too low is fatal.
func (w *World) lowerPulse(ent ecs.Entity) {
	p := w.players[w.Deref(ent)]
	if p == nil {
		return
	}
	a := w.Actor(ent)
	if a.NextTurn.Sub(p.LastPulseAction) < w.Rules.PulseDecayDelay {
		return
	}
	before := p.Pulse
	p.Pulse--
	if p.Pulse < w.Rules.PulseWarn && before >= w.Rules.PulseWarn {
		w.logMessage(w.spawnEmpty(0, ent), "Your pulse is getting low.")
	}
	if p.Pulse < w.Rules.PulseDanger && before >= w.Rules.PulseDanger {
		w.logMessage(w.spawnEmpty(0, ent), "Your pulse is getting dangerously low. Do something exiting quick!")
	}
	if p.Pulse < w.Rules.PulseDeath && a.Alive() {
		anim := w.spawnEmpty(0, ent)
		w.logMessage(anim, "You die of cardiac arrest.")
		a.HP.Current = -9999
		w.handleDeath(ent, anim)
	}
}

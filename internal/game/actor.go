package game

import (
	"fmt"

	"github.com/borkshop/rampage/internal/aut"
	"github.com/borkshop/rampage/internal/ecs"
	"github.com/borkshop/rampage/internal/point"
)

// Creature is the kind of an actor.
type Creature uint8

// Creature values.
const (
	CreaturePlayer Creature = iota
	CreatureGoblin
	CreatureGoblinBrute
	CreatureGoblinArcher
)

// Sprite names what to draw for an actor or projectile.
type Sprite uint8

// Sprite values.
const (
	SpriteDwarf Sprite = iota
	SpriteGoblin
	SpriteGoblinBrute
	SpriteGoblinArcher
	SpriteRock
	SpriteArrow
)

var creatures = [...]struct {
	name   string
	sprite Sprite
	hp     int
}{
	CreaturePlayer:       {"Player", SpriteDwarf, 30},
	CreatureGoblin:       {"Goblin", SpriteGoblin, 5},
	CreatureGoblinBrute:  {"Goblin Brute", SpriteGoblinBrute, 15},
	CreatureGoblinArcher: {"Goblin Archer", SpriteGoblinArcher, 5},
}

func (c Creature) String() string {
	if int(c) < len(creatures) {
		return creatures[c].name
	}
	return fmt.Sprintf("Creature(%d)", c)
}

// HP are hit points; an actor at or below 0 current HP is dead.
type HP struct {
	Max     int `json:"max"`
	Current int `json:"current"`
}

// Ratio returns the fraction of hit points left.
func (hp HP) Ratio() float64 { return float64(hp.Current) / float64(hp.Max) }

// dmg subtracts hit points (negative heals), returning the bar animation
// from the old ratio to the new one.
func (hp *HP) dmg(n int) HPBar {
	bar := HPBar{StartRatio: hp.Ratio()}
	hp.Current -= n
	bar.EndRatio = hp.Ratio()
	return bar
}

// Actor is anything that takes turns.
type Actor struct {
	Name     string   `json:"name"`
	Sprite   Sprite   `json:"sprite"`
	Creature Creature `json:"creature"`
	HP       HP       `json:"hp"`

	// NextTurn is when the actor may act next.
	NextTurn aut.Time `json:"next_turn"`

	// Seq orders actors by creation, breaking NextTurn ties.
	Seq uint64 `json:"seq"`

	// DrawPos and DrawHealth are what animations interpolate; they catch
	// up with the simulated values once the actor's animations finish.
	DrawPos    point.FPoint `json:"draw_pos"`
	DrawHealth float64      `json:"draw_health"`
}

// Alive returns true if the actor has hit points left.
func (a *Actor) Alive() bool { return a.HP.Current > 0 }

// Player marks the player character.
type Player struct {
	Pulse           float64  `json:"pulse"`
	LastPulseAction aut.Time `json:"last_pulse_action"`
}

// SpawnActor creates a creature at the given position, acting at time 0.
func (w *World) SpawnActor(c Creature, pt point.Point) ecs.Entity {
	t := wcActor
	if c == CreaturePlayer {
		t |= wcPlayer | wcFov
	}
	ent := w.AddEntity(t)
	id := ent.ID()
	w.actorSeq++
	def := creatures[c]
	w.actors[id] = &Actor{
		Name:       def.name,
		Sprite:     def.sprite,
		Creature:   c,
		HP:         HP{Max: def.hp, Current: def.hp},
		Seq:        w.actorSeq,
		DrawPos:    pt.F(),
		DrawHealth: 1,
	}
	if c == CreaturePlayer {
		w.players[id] = &Player{Pulse: w.Rules.PulseStart}
		w.fovs[id] = Fov{}
	}
	w.pos.Set(ent, pt)
	return ent
}

// Actor returns the actor data of an entity; it panics if the entity is
// stale or not an actor.
func (w *World) Actor(ent ecs.Entity) *Actor {
	a := w.actors[w.Deref(ent)]
	if a == nil {
		panic(fmt.Sprintf("game: %v is not an actor", ent))
	}
	return a
}

// Pos returns an entity's grid position.
func (w *World) Pos(ent ecs.Entity) point.Point {
	pt, _ := w.pos.Get(ent)
	return pt
}

// Player returns the player entity, dead or alive.
func (w *World) Player() (ecs.Entity, bool) {
	it := w.Iter(ecs.All(playerMask))
	if it.Next() {
		return it.Entity(), true
	}
	return ecs.NilEntity, false
}

func (w *World) playerAlive() bool {
	player, ok := w.Player()
	return ok && w.Actor(player).Alive()
}

func (w *World) isPlayer(ent ecs.Entity) bool { return ent.Type().All(wcPlayer) }

// Actors returns every actor, dead or alive, in creation-id order.
func (w *World) Actors() []ecs.Entity {
	var ents []ecs.Entity
	for it := w.Iter(ecs.All(actorMask)); it.Next(); {
		ents = append(ents, it.Entity())
	}
	return ents
}

// ActorAt returns the living actor standing on a tile.
func (w *World) ActorAt(pt point.Point) (ecs.Entity, bool) {
	for _, ent := range w.pos.At(pt) {
		if a := w.actors[ent.ID()]; a != nil && a.Alive() {
			return ent, true
		}
	}
	return ecs.NilEntity, false
}

// isBlocked returns true for walls, off-map tiles, and tiles held by a
// living actor.
func (w *World) isBlocked(pt point.Point) bool {
	if w.TileMap.IsWall(pt) {
		return true
	}
	_, ok := w.ActorAt(pt)
	return ok
}

// NextTurnActor returns the living actor with the earliest next turn; ties
// go to the actor created first.
func (w *World) NextTurnActor() (ecs.Entity, bool) {
	var (
		best ecs.Entity
		ba   *Actor
	)
	for it := w.Iter(ecs.All(actorMask)); it.Next(); {
		a := w.actors[it.ID()]
		if !a.Alive() {
			continue
		}
		if ba == nil || a.NextTurn < ba.NextTurn ||
			(a.NextTurn == ba.NextTurn && a.Seq < ba.Seq) {
			best, ba = it.Entity(), a
		}
	}
	return best, ba != nil
}

func (w *World) spend(ent ecs.Entity, d aut.Duration) {
	a := w.Actor(ent)
	a.NextTurn = a.NextTurn.Add(d)
}

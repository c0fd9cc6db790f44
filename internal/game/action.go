package game

import (
	"github.com/borkshop/rampage/internal/ecs"
	"github.com/borkshop/rampage/internal/point"
)

// Action is something an actor does with its turn.
type Action struct {
	Actor ecs.Entity
	Kind  ActionKind
}

// ActionKind is the closed set of things an actor may do; every kind knows
// how to resolve itself against the world.
type ActionKind interface {
	apply(w *World, actor ecs.Entity)
}

// Wait passes the turn.
type Wait struct{}

// Meditate heals a little at the cost of a long turn and a calmer pulse.
type Meditate struct{}

// GroundSlam damages every actor standing next to the actor.
type GroundSlam struct{}

// Move steps to an adjacent free tile.
type Move struct{ From, To point.Point }

// BumpAttack hits an adjacent actor.
type BumpAttack struct{ Target ecs.Entity }

// RockThrow hurls a rock along a line at the actor blocking it.
type RockThrow struct {
	Path   []point.Point
	Target ecs.Entity
}

// ShootArrow shoots along a line at the actor blocking it.
type ShootArrow struct {
	Path   []point.Point
	Target ecs.Entity
}

// JumpAttack leaps along a line, landing next to the target and hitting it.
type JumpAttack struct {
	Path   []point.Point
	Target ecs.Entity
}

// Kick hits an adjacent actor, knocking it one tile back if there is room.
type Kick struct{ Target ecs.Entity }

// DelayedSmash telegraphs a smash at an adjacent tile, landing on the
// actor's next turn on whatever stands there then.
type DelayedSmash struct{ Dir point.Point }

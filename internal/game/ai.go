package game

import (
	"github.com/borkshop/rampage/internal/ecs"
	"github.com/borkshop/rampage/internal/grid"
	"github.com/borkshop/rampage/internal/influence"
	"github.com/borkshop/rampage/internal/point"
)

// Pathfinding holds the influence maps that steer non-player actors; walking
// uphill on Melee leads to the player, on Ranged to a good spot to shoot
// from.
type Pathfinding struct {
	Melee  grid.Grid[int]
	Ranged grid.Grid[int]
}

// NewPathfinding builds both influence maps around every living player.
func (w *World) NewPathfinding() *Pathfinding {
	sz := w.TileMap.Size()
	pf := &Pathfinding{
		Melee:  grid.Make(sz, 0),
		Ranged: grid.Make(sz, 0),
	}

	var players, spots []point.Point
	for it := w.Iter(ecs.All(playerMask)); it.Next(); {
		if a := w.actors[it.ID()]; a.Alive() {
			players = append(players, w.Pos(it.Entity()))
		}
	}
	r := w.Rules.RangedRadius
	for _, pp := range players {
		for y := pp.Y - r; y <= pp.Y+r; y++ {
			for x := pp.X - r; x <= pp.X+r; x++ {
				pt := point.Pt(x, y)
				if w.TileMap.IsWall(pt) || pp.Chebyshev(pt) < w.Rules.ArcherMin {
					continue
				}
				if w.clearLine(pp, pt, w.TileMap.IsWall) {
					spots = append(spots, pt)
				}
			}
		}
	}

	influence.Fill(pf.Melee, players, w.Rules.MeleeSeed, w.pathCost)
	influence.Fill(pf.Ranged, spots, w.Rules.MeleeSeed, w.pathCost)
	return pf
}

func (w *World) pathCost(pt point.Point) int {
	if w.TileMap.IsWall(pt) {
		return influence.Impassable
	}
	if _, ok := w.ActorAt(pt); ok {
		return w.Rules.CrowdCost
	}
	return 1
}

// clearLine returns true if nothing blocks the line between two points,
// the end points themselves aside.
func (w *World) clearLine(from, to point.Point, blocked func(point.Point) bool) bool {
	line := point.Line(from, to)
	for i := 1; i < len(line)-1; i++ {
		if blocked(line[i]) {
			return false
		}
	}
	return true
}

// AITurn decides what a non-player actor does; it does not change the
// world. Brutes next to the player wind up a smash, archers with a clear
// shot take it, everyone else walks the influence maps towards the player
// and attacks when the player is in the way.
func (w *World) AITurn(npc ecs.Entity, pf *Pathfinding) Action {
	a := w.Actor(npc)
	at := w.Pos(npc)
	wait := Action{Actor: npc, Kind: Wait{}}
	if !a.Alive() {
		return wait
	}
	player, ok := w.Player()
	if !ok || !w.Actor(player).Alive() {
		return wait
	}
	pp := w.Pos(player)

	switch a.Creature {
	case CreatureGoblinBrute:
		if at.Adjacent(pp) {
			return Action{Actor: npc, Kind: DelayedSmash{Dir: pp.Sub(at)}}
		}
	case CreatureGoblinArcher:
		if d := at.Chebyshev(pp); d >= w.Rules.ArcherMin && d <= w.Rules.ArcherMax &&
			w.FovOf(npc).Contains(pp) && w.clearLine(at, pp, w.isBlocked) {
			return Action{Actor: npc, Kind: ShootArrow{Path: point.Line(at, pp), Target: player}}
		}
	}

	g := pf.Melee
	if a.Creature == CreatureGoblinArcher && pf.Ranged.At(at) > 0 {
		g = pf.Ranged
	}
	path := influence.Path(g, at)
	if len(path) < 2 {
		return wait
	}
	next := path[1]
	if !w.isBlocked(next) {
		return Action{Actor: npc, Kind: Move{From: at, To: next}}
	}
	if target, ok := w.ActorAt(next); ok && target == player {
		return Action{Actor: npc, Kind: BumpAttack{Target: player}}
	}
	return wait
}

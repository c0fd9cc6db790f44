package game

import (
	"fmt"
	"sort"

	"github.com/borkshop/rampage/internal/ecs"
	"github.com/borkshop/rampage/internal/point"
)

// UIState is the mode player input is interpreted in.
type UIState uint8

// UIState values.
const (
	UINormal UIState = iota
	UIAbility
	UIPostDeath
)

// UI is the interface state that lives with the world.
type UI struct {
	State UIState `json:"state"`
}

// Ability is a special action the player picks a target for.
type Ability uint8

// Ability values, in hotkey order.
const (
	AbilityNone Ability = iota
	AbilityRockThrow
	AbilityKick
	AbilityGroundSlam
	AbilityJumpAttack
	AbilityMeditate
)

var abilityNames = [...]string{"none", "rock throw", "kick", "ground slam", "jump attack", "meditate"}

func (ab Ability) String() string {
	if int(ab) < len(abilityNames) {
		return abilityNames[ab]
	}
	return fmt.Sprintf("Ability(%d)", ab)
}

// abilityRange returns the Chebyshev range of a targeted ability.
func (ab Ability) abilityRange() (lo, hi int) {
	switch ab {
	case AbilityRockThrow:
		return 1, 5
	case AbilityJumpAttack:
		return 2, 5
	case AbilityKick:
		return 1, 1
	}
	return 0, 0
}

func (ab Ability) line() bool { return ab == AbilityRockThrow || ab == AbilityJumpAttack }

// AbilityState is the targeting cursor while an ability is being aimed.
type AbilityState struct {
	Ability Ability     `json:"ability"`
	Cursor  point.Point `json:"cursor"`
}

// CommandKind is what the player asked for.
type CommandKind uint8

// CommandKind values.
const (
	CmdNone CommandKind = iota
	CmdMove
	CmdWait
	CmdAbility
	CmdConfirm
	CmdCancel
	CmdCycle
)

// Command is one player input, already translated from keys.
type Command struct {
	Kind    CommandKind
	Dir     point.Point
	Ability Ability
}

// Command interprets a player command in the current UI state; commands
// that resolve an action return ErrNotPlayerTurn unless the world awaits
// input.
func (w *World) Command(cmd Command) error {
	if w.State != TurnAwaitInput {
		return ErrNotPlayerTurn
	}
	player, ok := w.Player()
	if !ok {
		return ErrNotPlayerTurn
	}
	switch w.UI.State {
	case UINormal:
		return w.normalCommand(player, cmd)
	case UIAbility:
		return w.abilityCommand(player, cmd)
	}
	return nil
}

func (w *World) normalCommand(player ecs.Entity, cmd Command) error {
	at := w.Pos(player)
	switch cmd.Kind {
	case CmdMove:
		to := at.Add(cmd.Dir)
		if !w.isBlocked(to) {
			return w.PlayerAct(Action{Actor: player, Kind: Move{From: at, To: to}})
		}
		if target, ok := w.ActorAt(to); ok {
			return w.PlayerAct(Action{Actor: player, Kind: BumpAttack{Target: target}})
		}
	case CmdWait:
		return w.PlayerAct(Action{Actor: player, Kind: Wait{}})
	case CmdAbility:
		return w.selectAbility(player, cmd.Ability)
	case CmdConfirm:
		if at == w.TileMap.DownStairs {
			w.Descend()
		}
	}
	return nil
}

func (w *World) selectAbility(player ecs.Entity, ab Ability) error {
	switch ab {
	case AbilityMeditate:
		return w.PlayerAct(Action{Actor: player, Kind: Meditate{}})
	case AbilityGroundSlam:
		return w.PlayerAct(Action{Actor: player, Kind: GroundSlam{}})
	case AbilityRockThrow, AbilityKick, AbilityJumpAttack:
		w.UI.State = UIAbility
		w.Ability = AbilityState{Ability: ab, Cursor: w.Pos(player)}
		if cands := w.targetCandidates(player, ab); len(cands) > 0 {
			w.Ability.Cursor = cands[0]
		}
	}
	return nil
}

func (w *World) exitAbility() {
	w.UI.State = UINormal
	w.Ability = AbilityState{}
}

func (w *World) abilityCommand(player ecs.Entity, cmd Command) error {
	switch cmd.Kind {
	case CmdCancel:
		w.exitAbility()
	case CmdAbility:
		w.exitAbility()
		return w.selectAbility(player, cmd.Ability)
	case CmdMove:
		w.Ability.Cursor = w.Ability.Cursor.Add(cmd.Dir)
	case CmdCycle:
		cands := w.targetCandidates(player, w.Ability.Ability)
		if len(cands) == 0 {
			break
		}
		next := 0
		for i, pt := range cands {
			if pt == w.Ability.Cursor {
				next = (i + 1) % len(cands)
				break
			}
		}
		w.Ability.Cursor = cands[next]
	case CmdConfirm:
		act, ok := w.aimedAction(player)
		if !ok {
			break
		}
		w.exitAbility()
		return w.PlayerAct(act)
	}
	return nil
}

// aimedAction builds the action the current ability aims at, if any.
func (w *World) aimedAction(player ecs.Entity) (Action, bool) {
	ab := w.Ability.Ability
	at := w.Pos(player)
	lo, hi := ab.abilityRange()

	if !ab.line() {
		target, ok := w.ActorAt(w.Ability.Cursor)
		if !ok || target == player || !at.Adjacent(w.Pos(target)) {
			return Action{}, false
		}
		return Action{Actor: player, Kind: Kick{Target: target}}, true
	}

	path, target, ok := w.AimLine(player, w.Ability.Cursor)
	if !ok {
		return Action{}, false
	}
	if d := at.Chebyshev(path[len(path)-1]); d < lo || d > hi {
		return Action{}, false
	}
	switch ab {
	case AbilityRockThrow:
		return Action{Actor: player, Kind: RockThrow{Path: path, Target: target}}, true
	default:
		return Action{Actor: player, Kind: JumpAttack{Path: path, Target: target}}, true
	}
}

// AimLine follows the line from an actor towards a cursor up to the first
// blocked tile; ok is true if that tile holds another actor, which is then
// the target.
func (w *World) AimLine(from ecs.Entity, cursor point.Point) (path []point.Point, target ecs.Entity, ok bool) {
	line := point.Line(w.Pos(from), cursor)
	for i := 1; i < len(line); i++ {
		if !w.isBlocked(line[i]) {
			continue
		}
		target, ok = w.ActorAt(line[i])
		return line[:i+1], target, ok && target != from
	}
	return line, ecs.NilEntity, false
}

// targetCandidates lists the tiles of living enemies the player sees and
// could target with the ability, nearest first.
func (w *World) targetCandidates(player ecs.Entity, ab Ability) []point.Point {
	at := w.Pos(player)
	seen := w.FovOf(player)
	lo, hi := ab.abilityRange()
	var cands []point.Point
	for _, ent := range w.Actors() {
		if ent == player || !w.Actor(ent).Alive() {
			continue
		}
		pt := w.Pos(ent)
		if !seen.Contains(pt) {
			continue
		}
		if d := at.Chebyshev(pt); d < lo || d > hi {
			continue
		}
		if ab.line() && !w.clearLine(at, pt, w.isBlocked) {
			continue
		}
		cands = append(cands, pt)
	}
	sort.Slice(cands, func(i, j int) bool {
		di, dj := at.Chebyshev(cands[i]), at.Chebyshev(cands[j])
		if di != dj {
			return di < dj
		}
		if cands[i].X != cands[j].X {
			return cands[i].X < cands[j].X
		}
		return cands[i].Y < cands[j].Y
	})
	return cands
}

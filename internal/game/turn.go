package game

import (
	"errors"
	"fmt"
)

// TurnState says what the turn loop is waiting on.
type TurnState uint8

// TurnState values.
const (
	// TurnPending means turns still need to run; the next frame runs them.
	TurnPending TurnState = iota

	// TurnAnimating means an animation involving the player must finish
	// before anyone may act.
	TurnAnimating

	// TurnAwaitInput means it is the player's turn.
	TurnAwaitInput

	// TurnOver means the player is dead.
	TurnOver
)

var turnStateNames = [...]string{"pending", "animating", "await-input", "over"}

func (ts TurnState) String() string {
	if int(ts) < len(turnStateNames) {
		return turnStateNames[ts]
	}
	return fmt.Sprintf("TurnState(%d)", ts)
}

// ErrNotPlayerTurn is returned when the player tries to act out of turn.
var ErrNotPlayerTurn = errors.New("not the player's turn")

// PlayerAct resolves an action for the player; it is only allowed while the
// world awaits input.
func (w *World) PlayerAct(act Action) error {
	if w.State != TurnAwaitInput {
		return ErrNotPlayerTurn
	}
	if !w.isPlayer(act.Actor) {
		return fmt.Errorf("%w: action by %v", ErrNotPlayerTurn, act.Actor)
	}
	w.HandleAction(act)
	w.Commit()
	w.State = TurnPending
	return nil
}

// processTurns runs turns until the player must act, an animation involving
// the player holds things up, or the player is dead.
func (w *World) processTurns() {
	var pf *Pathfinding
	for {
		w.Commit()
		if !w.playerAlive() {
			w.State = TurnOver
			return
		}
		player, _ := w.Player()
		if w.targets.HasB(player.ID()) {
			w.State = TurnAnimating
			return
		}

		ent, _ := w.NextTurnActor()
		w.TurnCount = w.Actor(ent).NextTurn

		if ent.Type().All(wcDelayed) {
			act := w.delayed[ent.ID()]
			ent.Delete(wcDelayed)
			w.delayed[ent.ID()] = Action{}
			w.handleDelayedAction(act)
			continue
		}

		if ent == player {
			w.updateFov(player)
			w.State = TurnAwaitInput
			return
		}

		if pf == nil {
			pf = w.NewPathfinding()
		}
		w.updateFov(ent)
		w.HandleAction(w.AITurn(ent, pf))
	}
}

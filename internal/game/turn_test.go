package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borkshop/rampage/internal/aut"
	"github.com/borkshop/rampage/internal/point"
)

func TestPlayerAct(t *testing.T) {
	w := testWorld(point.Pt(6, 6))
	p := spawn(w, CreaturePlayer, point.Pt(2, 2), 0)
	g := spawn(w, CreatureGoblin, point.Pt(4, 4), 0)

	err := w.PlayerAct(Action{Actor: p, Kind: Wait{}})
	assert.ErrorIs(t, err, ErrNotPlayerTurn)
	assert.Equal(t, aut.Time(0), w.Actor(p).NextTurn)

	w.State = TurnAwaitInput
	err = w.PlayerAct(Action{Actor: g, Kind: Wait{}})
	assert.True(t, errors.Is(err, ErrNotPlayerTurn))
	assert.Equal(t, TurnAwaitInput, w.State)

	require.NoError(t, w.PlayerAct(Action{Actor: p, Kind: Wait{}}))
	assert.Equal(t, aut.Time(10), w.Actor(p).NextTurn)
	assert.Equal(t, TurnPending, w.State)
}

func TestProcessTurns(t *testing.T) {
	w := testWorld(point.Pt(10, 10))
	p := spawn(w, CreaturePlayer, point.Pt(2, 2), 0)
	g := spawn(w, CreatureGoblin, point.Pt(7, 7), 0)
	w.Actor(p).NextTurn = 5

	w.processTurns()
	assert.Equal(t, TurnAwaitInput, w.State)
	assert.Equal(t, aut.Time(5), w.TurnCount)
	assert.Equal(t, point.Pt(6, 6), w.Pos(g), "the goblin went first")
	assert.True(t, w.FovOf(p).Contains(point.Pt(6, 6)))

	require.NoError(t, w.PlayerAct(Action{Actor: p, Kind: Wait{}}))
	w.processTurns()
	assert.Equal(t, TurnAwaitInput, w.State)
	assert.Equal(t, aut.Time(15), w.TurnCount)
	assert.Equal(t, point.Pt(5, 5), w.Pos(g))

	require.NoError(t, w.PlayerAct(Action{Actor: p, Kind: Move{From: point.Pt(2, 2), To: point.Pt(2, 3)}}))
	w.processTurns()
	assert.Equal(t, TurnAnimating, w.State, "the player's move must play out first")
	assert.Equal(t, point.Pt(5, 5), w.Pos(g))

	w.Frame(1)
	assert.Equal(t, TurnAwaitInput, w.State)
	assert.Equal(t, aut.Time(25), w.TurnCount)
	assert.Equal(t, point.Pt(4, 5), w.Pos(g), "ties go to the first direction")

	w.Actor(p).HP.Current = 0
	w.processTurns()
	assert.Equal(t, TurnOver, w.State)
	assert.Equal(t, "over", w.State.String())
}

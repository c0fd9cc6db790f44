package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borkshop/rampage/internal/aut"
	"github.com/borkshop/rampage/internal/ecs"
	"github.com/borkshop/rampage/internal/point"
	"github.com/borkshop/rampage/internal/tilemap"
)

// commandWorld puts the player at (2, 3) of an open room with goblins at the
// given points, ready for input.
func commandWorld(goblins ...point.Point) (*World, ecs.Entity, []ecs.Entity) {
	w := testWorld(point.Pt(12, 7))
	p := spawn(w, CreaturePlayer, point.Pt(2, 3), 0)
	var gs []ecs.Entity
	for _, pt := range goblins {
		gs = append(gs, spawn(w, CreatureGoblin, pt, 0))
	}
	w.updateFov(p)
	w.State = TurnAwaitInput
	return w, p, gs
}

func right(n int) []Command {
	cmds := make([]Command, n)
	for i := range cmds {
		cmds[i] = Command{Kind: CmdMove, Dir: point.Pt(1, 0)}
	}
	return cmds
}

func TestCommand_normal(t *testing.T) {
	testCases{
		{"not the player's turn", func(t *testing.T) {
			w, _, _ := commandWorld()
			w.State = TurnPending
			assert.ErrorIs(t, w.Command(Command{Kind: CmdWait}), ErrNotPlayerTurn)
		}},

		{"move", func(t *testing.T) {
			w, p, _ := commandWorld()
			require.NoError(t, w.Command(Command{Kind: CmdMove, Dir: point.Pt(1, 1)}))
			assert.Equal(t, point.Pt(3, 4), w.Pos(p))
			assert.Equal(t, TurnPending, w.State)
		}},

		{"walls stop you", func(t *testing.T) {
			w, p, _ := commandWorld()
			w.pos.Set(p, point.Pt(1, 3))
			require.NoError(t, w.Command(Command{Kind: CmdMove, Dir: point.Pt(-1, 0)}))
			assert.Equal(t, point.Pt(1, 3), w.Pos(p))
			assert.Equal(t, TurnAwaitInput, w.State, "no turn spent")
		}},

		{"moving into someone attacks", func(t *testing.T) {
			w, p, gs := commandWorld(point.Pt(3, 3))
			require.NoError(t, w.Command(Command{Kind: CmdMove, Dir: point.Pt(1, 0)}))
			assert.Equal(t, point.Pt(2, 3), w.Pos(p))
			assert.Equal(t, 2, w.Actor(gs[0]).HP.Current)
		}},

		{"wait", func(t *testing.T) {
			w, p, _ := commandWorld()
			require.NoError(t, w.Command(Command{Kind: CmdWait}))
			assert.Equal(t, aut.Time(10), w.Actor(p).NextTurn)
		}},

		{"meditate and ground slam need no aim", func(t *testing.T) {
			w, p, gs := commandWorld(point.Pt(3, 3))
			require.NoError(t, w.Command(Command{Kind: CmdAbility, Ability: AbilityGroundSlam}))
			assert.Equal(t, 3, w.Actor(gs[0]).HP.Current)
			assert.Equal(t, UINormal, w.UI.State)

			w.State = TurnAwaitInput
			require.NoError(t, w.Command(Command{Kind: CmdAbility, Ability: AbilityMeditate}))
			assert.Equal(t, aut.Time(60), w.Actor(p).NextTurn)
		}},

		{"nothing after death", func(t *testing.T) {
			w, p, _ := commandWorld()
			w.UI.State = UIPostDeath
			require.NoError(t, w.Command(Command{Kind: CmdWait}))
			assert.Equal(t, aut.Time(0), w.Actor(p).NextTurn)
		}},
	}.run(t)
}

func TestCommand_ability(t *testing.T) {
	testCases{
		{"rock throw at the nearest", func(t *testing.T) {
			w, _, gs := commandWorld(point.Pt(5, 3))
			require.NoError(t, w.Command(Command{Kind: CmdAbility, Ability: AbilityRockThrow}))
			assert.Equal(t, UIAbility, w.UI.State)
			assert.Equal(t, AbilityState{Ability: AbilityRockThrow, Cursor: point.Pt(5, 3)}, w.Ability)

			require.NoError(t, w.Command(Command{Kind: CmdConfirm}))
			assert.Equal(t, 3, w.Actor(gs[0]).HP.Current)
			assert.Equal(t, UINormal, w.UI.State)
			assert.Equal(t, AbilityState{}, w.Ability)
			assert.Equal(t, TurnPending, w.State)
		}},

		{"cycle through targets", func(t *testing.T) {
			w, _, _ := commandWorld(point.Pt(5, 3), point.Pt(4, 5))
			require.NoError(t, w.Command(Command{Kind: CmdAbility, Ability: AbilityRockThrow}))
			assert.Equal(t, point.Pt(4, 5), w.Ability.Cursor)
			require.NoError(t, w.Command(Command{Kind: CmdCycle}))
			assert.Equal(t, point.Pt(5, 3), w.Ability.Cursor)
			require.NoError(t, w.Command(Command{Kind: CmdCycle}))
			assert.Equal(t, point.Pt(4, 5), w.Ability.Cursor)
		}},

		{"kick", func(t *testing.T) {
			w, _, gs := commandWorld(point.Pt(3, 3))
			require.NoError(t, w.Command(Command{Kind: CmdAbility, Ability: AbilityKick}))
			assert.Equal(t, point.Pt(3, 3), w.Ability.Cursor)
			require.NoError(t, w.Command(Command{Kind: CmdConfirm}))
			assert.Equal(t, point.Pt(4, 3), w.Pos(gs[0]))
		}},

		{"kick needs someone next to you", func(t *testing.T) {
			w, p, _ := commandWorld(point.Pt(5, 3))
			require.NoError(t, w.Command(Command{Kind: CmdAbility, Ability: AbilityKick}))
			assert.Equal(t, w.Pos(p), w.Ability.Cursor)
			require.NoError(t, w.Command(Command{Kind: CmdConfirm}))
			assert.Equal(t, UIAbility, w.UI.State, "nothing to kick")

			require.NoError(t, w.Command(Command{Kind: CmdCancel}))
			assert.Equal(t, UINormal, w.UI.State)
			assert.Equal(t, aut.Time(0), w.Actor(p).NextTurn)
		}},

		{"jump attack", func(t *testing.T) {
			w, p, gs := commandWorld(point.Pt(5, 3))
			require.NoError(t, w.Command(Command{Kind: CmdAbility, Ability: AbilityJumpAttack}))
			require.NoError(t, w.Command(Command{Kind: CmdConfirm}))
			assert.Equal(t, point.Pt(4, 3), w.Pos(p))
			assert.Equal(t, 1, w.Actor(gs[0]).HP.Current)
		}},

		{"out of range", func(t *testing.T) {
			w, p, gs := commandWorld(point.Pt(9, 3))
			require.NoError(t, w.Command(Command{Kind: CmdAbility, Ability: AbilityJumpAttack}))
			assert.Equal(t, w.Pos(p), w.Ability.Cursor, "no candidates")
			for _, cmd := range right(7) {
				require.NoError(t, w.Command(cmd))
			}
			assert.Equal(t, point.Pt(9, 3), w.Ability.Cursor)
			require.NoError(t, w.Command(Command{Kind: CmdConfirm}))
			assert.Equal(t, UIAbility, w.UI.State)
			assert.Equal(t, 5, w.Actor(gs[0]).HP.Current)
		}},

		{"switching abilities", func(t *testing.T) {
			w, _, gs := commandWorld(point.Pt(3, 3))
			require.NoError(t, w.Command(Command{Kind: CmdAbility, Ability: AbilityRockThrow}))
			require.NoError(t, w.Command(Command{Kind: CmdAbility, Ability: AbilityGroundSlam}))
			assert.Equal(t, UINormal, w.UI.State)
			assert.Equal(t, 3, w.Actor(gs[0]).HP.Current)
		}},
	}.run(t)
}

func TestAimLine(t *testing.T) {
	w, p, gs := commandWorld(point.Pt(5, 3))

	path, target, ok := w.AimLine(p, point.Pt(7, 3))
	assert.True(t, ok)
	assert.Equal(t, gs[0], target)
	assert.Equal(t, []point.Point{{X: 2, Y: 3}, {X: 3, Y: 3}, {X: 4, Y: 3}, {X: 5, Y: 3}}, path, "stops at the first actor")

	w.TileMap.Tiles.Set(point.Pt(4, 3), tilemap.Wall)
	path, _, ok = w.AimLine(p, point.Pt(5, 3))
	assert.False(t, ok)
	assert.Equal(t, point.Pt(4, 3), path[len(path)-1])
	assert.Empty(t, w.targetCandidates(p, AbilityRockThrow), "no line of fire")

	path, _, ok = w.AimLine(p, point.Pt(2, 5))
	assert.False(t, ok)
	assert.Len(t, path, 3)
}

func TestDescend(t *testing.T) {
	w := NewWorld(Options{Seed: 3})
	player, _ := w.Player()
	old := w.TileMap
	var enemies []ecs.Entity
	for _, ent := range w.Actors() {
		if ent != player {
			enemies = append(enemies, ent)
		}
	}
	require.NotEmpty(t, enemies)
	w.Actor(player).NextTurn = 70
	w.State = TurnAwaitInput

	require.NoError(t, w.Command(Command{Kind: CmdConfirm}))
	assert.Same(t, old, w.TileMap, "only on the down stairs")

	w.pos.Set(player, old.DownStairs)
	require.NoError(t, w.Command(Command{Kind: CmdConfirm}))
	assert.NotSame(t, old, w.TileMap)
	assert.Equal(t, w.TileMap.UpStairs, w.Pos(player))
	assert.Equal(t, w.TileMap.UpStairs.F(), w.Actor(player).DrawPos)
	assert.True(t, w.FovOf(player).Contains(w.TileMap.UpStairs))
	for _, ent := range enemies {
		assert.False(t, ent.Alive(), "left behind")
	}
	actors := w.Actors()
	assert.Greater(t, len(actors), 1)
	for _, ent := range actors {
		assert.Equal(t, aut.Time(70), w.Actor(ent).NextTurn)
	}
	assert.Equal(t, TurnAwaitInput, w.State, "descending is free")
}

package game

import (
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borkshop/rampage/internal/aut"
	"github.com/borkshop/rampage/internal/ecs"
	"github.com/borkshop/rampage/internal/point"
	"github.com/borkshop/rampage/internal/rng"
	"github.com/borkshop/rampage/internal/tilemap"
)

type testCases []testCase
type testCase struct {
	name string
	run  func(t *testing.T)
}

func (tcs testCases) run(t *testing.T) {
	for _, tc := range tcs {
		t.Run(tc.name, tc.run)
	}
}

// testWorld returns an empty walled room of the given size.
func testWorld(sz point.Point) *World {
	w := newWorld(Options{})
	w.RNG = rng.New(1)
	tm := tilemap.New(sz, tilemap.Floor)
	tm.Enwall()
	w.TileMap = tm
	return w
}

func spawn(w *World, c Creature, pt point.Point, hp int) ecs.Entity {
	ent := w.SpawnActor(c, pt)
	if hp > 0 {
		w.Actor(ent).HP = HP{Max: hp, Current: hp}
	}
	return ent
}

// play runs one frame of animations and messages, without taking turns.
func play(w *World, now float64) {
	w.Now = now
	w.handleAnimations()
	w.Commit()
	w.flushMessages()
	w.Commit()
}

func pendingTexts(w *World) []string {
	var pms []PendingMessage
	for it := w.Iter(ecs.All(wcMessage)); it.Next(); {
		pms = append(pms, w.messages[it.ID()])
	}
	sort.Slice(pms, func(i, j int) bool { return pms[i].Seq < pms[j].Seq })
	texts := make([]string, 0, len(pms))
	for _, pm := range pms {
		texts = append(texts, pm.Text)
	}
	return texts
}

// animsOn returns the committed animations of type t targeting ent.
func animsOn(w *World, t ecs.ComponentType, ent ecs.Entity) []ecs.Entity {
	var anims []ecs.Entity
	for _, anim := range w.targets.Sources(ecs.AllClause, ent.ID()) {
		if anim.Type().All(wcTimer | t) {
			anims = append(anims, anim)
		}
	}
	return anims
}

func TestNewWorld(t *testing.T) {
	w := NewWorld(Options{Seed: 7})

	player, ok := w.Player()
	require.True(t, ok)
	assert.Equal(t, w.TileMap.UpStairs, w.Pos(player))
	assert.True(t, w.FovOf(player).Contains(w.TileMap.UpStairs))
	assert.Greater(t, len(w.Actors()), 1, "enemies are placed")
	assert.NotEqual(t, uuid.Nil, w.Session)

	w.Frame(0)
	assert.Contains(t, []TurnState{TurnAwaitInput, TurnAnimating}, w.State)
	assert.Equal(t, w.Rules.MessageLogSize, w.Messages.Max)
}

type actorTrace struct {
	Seq      uint64
	Pos      point.Point
	HP       int
	NextTurn aut.Time
}

// traceRun waits out every player turn for n frames, recording each actor
// after every frame.
func traceRun(t *testing.T, seed uint64, n int) [][]actorTrace {
	w := NewWorld(Options{Seed: seed})
	var frames [][]actorTrace
	for i := 0; i < n; i++ {
		w.Frame(float64(i) * 0.05)
		if w.State == TurnAwaitInput {
			require.NoError(t, w.Command(Command{Kind: CmdWait}))
		}
		var frame []actorTrace
		for _, ent := range w.Actors() {
			a := w.Actor(ent)
			frame = append(frame, actorTrace{a.Seq, w.Pos(ent), a.HP.Current, a.NextTurn})
		}
		sort.Slice(frame, func(i, j int) bool { return frame[i].Seq < frame[j].Seq })
		frames = append(frames, frame)
	}
	return frames
}

func TestWorld_deterministic(t *testing.T) {
	for _, seed := range []uint64{1, 7, 12345} {
		a, b := traceRun(t, seed, 600), traceRun(t, seed, 600)
		require.Equal(t, a, b, "seed %d", seed)
	}
}

func TestNextTurnActor(t *testing.T) {
	w := testWorld(point.Pt(8, 8))
	a := spawn(w, CreatureGoblin, point.Pt(1, 1), 0)
	b := spawn(w, CreatureGoblin, point.Pt(2, 1), 0)
	c := spawn(w, CreatureGoblin, point.Pt(3, 1), 0)
	w.Actor(a).NextTurn = 10
	w.Actor(b).NextTurn = 5
	w.Actor(c).NextTurn = 5

	ent, ok := w.NextTurnActor()
	require.True(t, ok)
	assert.Equal(t, b, ent, "ties go to the older actor")

	w.Actor(b).HP.Current = 0
	ent, _ = w.NextTurnActor()
	assert.Equal(t, c, ent, "dead actors are skipped")

	w.Actor(c).HP.Current = 0
	w.Actor(a).HP.Current = 0
	_, ok = w.NextTurnActor()
	assert.False(t, ok)
}

func TestWorld_accessors(t *testing.T) {
	w := testWorld(point.Pt(6, 6))
	_, ok := w.Player()
	assert.False(t, ok)

	g := spawn(w, CreatureGoblin, point.Pt(2, 2), 0)
	got, ok := w.ActorAt(point.Pt(2, 2))
	assert.True(t, ok)
	assert.Equal(t, g, got)
	assert.True(t, w.isBlocked(point.Pt(2, 2)))
	assert.True(t, w.isBlocked(point.Pt(0, 2)), "wall")
	assert.True(t, w.isBlocked(point.Pt(-1, 2)), "off the map")
	assert.False(t, w.isBlocked(point.Pt(3, 3)))

	w.Actor(g).HP.Current = 0
	_, ok = w.ActorAt(point.Pt(2, 2))
	assert.False(t, ok, "corpses do not block")
	assert.Equal(t, "Goblin Brute", CreatureGoblinBrute.String())
	assert.Panics(t, func() { w.Actor(ecs.NilEntity) })
}

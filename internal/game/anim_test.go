package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/borkshop/rampage/internal/ecs"
	"github.com/borkshop/rampage/internal/game/mocks"
	"github.com/borkshop/rampage/internal/point"
)

func TestTimer(t *testing.T) {
	tm := Timer{Start: 1, End: 3}
	assert.False(t, tm.Active(0.5))
	assert.True(t, tm.Active(1))
	assert.False(t, tm.Finished(2.9))
	assert.True(t, tm.Finished(3))
	assert.Equal(t, 0.0, tm.Progress(0))
	assert.Equal(t, 0.5, tm.Progress(2))
	assert.Equal(t, 1.0, tm.Progress(9))

	instant := Timer{Start: 1, End: 1}
	assert.Equal(t, 0.0, instant.Progress(0.5))
	assert.Equal(t, 1.0, instant.Progress(1))
}

func TestAnimationChaining(t *testing.T) {
	moves := func(w *World) []Timer {
		var ts []Timer
		for it := w.Iter(ecs.All(wcTimer | wcMovement)); it.Next(); {
			ts = append(ts, w.timers[it.ID()])
		}
		return ts
	}

	testCases{
		{"committed animations chain", func(t *testing.T) {
			w := testWorld(point.Pt(6, 6))
			g := spawn(w, CreatureGoblin, point.Pt(1, 1), 0)
			w.HandleAction(Action{Actor: g, Kind: Move{From: point.Pt(1, 1), To: point.Pt(2, 1)}})
			w.Commit()
			w.HandleAction(Action{Actor: g, Kind: Move{From: point.Pt(2, 1), To: point.Pt(3, 1)}})
			w.Commit()
			assert.Equal(t, []Timer{{0, moveLength}, {moveLength, 2 * moveLength}}, moves(w))
		}},

		{"uncommitted animations start together", func(t *testing.T) {
			w := testWorld(point.Pt(6, 6))
			g := spawn(w, CreatureGoblin, point.Pt(1, 1), 0)
			w.HandleAction(Action{Actor: g, Kind: Move{From: point.Pt(1, 1), To: point.Pt(2, 1)}})
			w.HandleAction(Action{Actor: g, Kind: Move{From: point.Pt(2, 1), To: point.Pt(3, 1)}})
			w.Commit()
			assert.Equal(t, []Timer{{0, moveLength}, {0, moveLength}}, moves(w))
		}},

		{"unrelated actors do not wait", func(t *testing.T) {
			w := testWorld(point.Pt(6, 6))
			a := spawn(w, CreatureGoblin, point.Pt(1, 1), 0)
			b := spawn(w, CreatureGoblin, point.Pt(1, 3), 0)
			w.HandleAction(Action{Actor: a, Kind: Move{From: point.Pt(1, 1), To: point.Pt(2, 1)}})
			w.Commit()
			w.HandleAction(Action{Actor: b, Kind: Move{From: point.Pt(1, 3), To: point.Pt(2, 3)}})
			w.Commit()
			assert.Equal(t, []Timer{{0, moveLength}, {0, moveLength}}, moves(w))
		}},

		{"clock offsets every start", func(t *testing.T) {
			w := testWorld(point.Pt(6, 6))
			g := spawn(w, CreatureGoblin, point.Pt(1, 1), 0)
			w.Now = 2
			w.HandleAction(Action{Actor: g, Kind: Move{From: point.Pt(1, 1), To: point.Pt(2, 1)}})
			w.Commit()
			assert.Equal(t, []Timer{{2, 2 + moveLength}}, moves(w))
		}},
	}.run(t)
}

func TestCamera(t *testing.T) {
	testCases{
		{"moves follow the player", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cam := mocks.NewMockCamera(ctrl)
			cam.EXPECT().SetShake(point.FPoint{}).AnyTimes()
			cam.EXPECT().Center().Return(point.FPoint{}).AnyTimes()
			gomock.InOrder(
				cam.EXPECT().MoveRel(point.FPt(0, 0)),
				cam.EXPECT().MoveRel(point.FPt(3.5, 0.875)),
			)

			w := testWorld(point.Pt(8, 4))
			w.SetCamera(cam)
			p := spawn(w, CreaturePlayer, point.Pt(3, 1), 0)
			w.HandleAction(Action{Actor: p, Kind: Move{From: point.Pt(3, 1), To: point.Pt(4, 1)}})
			w.Commit()

			it := w.Iter(ecs.All(wcTimer | wcCameraMove))
			require.True(t, it.Next())
			assert.Equal(t, point.FPt(4, 1), w.cameraMoves[it.ID()].To)

			play(w, 0)
			play(w, cameraMoveLength/2)
		}},

		{"newest move wins", func(t *testing.T) {
			w := testWorld(point.Pt(8, 4))
			w.addCameraMove(w.spawnAnim(0, 0, 1), point.Pt(2, 0))
			w.addCameraMove(w.spawnAnim(0, 0.125, 1), point.Pt(5, 0))
			w.Commit()

			ctrl := gomock.NewController(t)
			cam := mocks.NewMockCamera(ctrl)
			cam.EXPECT().SetShake(gomock.Any()).AnyTimes()
			cam.EXPECT().Center().Return(point.FPt(1, 0)).AnyTimes()
			gomock.InOrder(
				cam.EXPECT().MoveRel(point.FPt(0, 0)),
				cam.EXPECT().MoveRel(point.FPt(0, 0)),
				cam.EXPECT().MoveRel(point.FPt(3.5, 0)),
			)
			w.SetCamera(cam)

			play(w, 0)     // only the first has started
			play(w, 0.125) // the second takes over from where the camera is
			play(w, 0.375)
		}},

		{"ground slam shakes", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cam := mocks.NewMockCamera(ctrl)
			var shakes []point.FPoint
			cam.EXPECT().SetShake(gomock.Any()).Do(func(off point.FPoint) {
				shakes = append(shakes, off)
			}).AnyTimes()

			w := testWorld(point.Pt(5, 5))
			w.SetCamera(cam)
			p := spawn(w, CreaturePlayer, point.Pt(2, 2), 0)
			w.HandleAction(Action{Actor: p, Kind: GroundSlam{}})
			w.Commit()

			play(w, shakeLength/2)
			require.Len(t, shakes, 2, "reset, then shake")
			assert.Equal(t, point.FPoint{}, shakes[0])
			assert.NotEqual(t, point.FPoint{}, shakes[1])
			assert.Equal(t, []string{"Player stomps the ground mightily."}, w.Messages.Last(1))

			play(w, 1)
			play(w, 2)
			assert.Equal(t, point.FPoint{}, shakes[len(shakes)-1], "over")
		}},
	}.run(t)
}

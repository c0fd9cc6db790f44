package game

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/borkshop/rampage/internal/ecs"
	"github.com/borkshop/rampage/internal/persist"
	"github.com/borkshop/rampage/internal/point"
	"github.com/borkshop/rampage/internal/rng"
)

// Animations, relations and influence maps are not saved: a loaded world
// starts with nothing in flight.

// table is one persisted component.
type table struct {
	name string
	t    ecs.ComponentType
	save func(id ecs.EntityID) any
	load func(id ecs.EntityID, data json.RawMessage) error
}

func (w *World) tables(positions map[ecs.EntityID]point.Point, delayed map[ecs.EntityID]actionRecord) []table {
	return []table{
		{"actor", wcActor,
			func(id ecs.EntityID) any { return w.actors[id] },
			func(id ecs.EntityID, data json.RawMessage) error {
				var a Actor
				w.actors[id] = &a
				return json.Unmarshal(data, &a)
			}},
		{"player", wcPlayer,
			func(id ecs.EntityID) any { return w.players[id] },
			func(id ecs.EntityID, data json.RawMessage) error {
				var p Player
				w.players[id] = &p
				return json.Unmarshal(data, &p)
			}},
		{"position", wcPosition,
			func(id ecs.EntityID) any { return w.Pos(w.Ref(id)) },
			func(id ecs.EntityID, data json.RawMessage) error {
				var pt point.Point
				err := json.Unmarshal(data, &pt)
				positions[id] = pt
				return err
			}},
		{"fov", wcFov,
			func(id ecs.EntityID) any { return w.fovs[id].Points() },
			func(id ecs.EntityID, data json.RawMessage) error {
				var pts []point.Point
				if err := json.Unmarshal(data, &pts); err != nil {
					return err
				}
				f := make(Fov, len(pts))
				for _, pt := range pts {
					f[pt] = struct{}{}
				}
				w.fovs[id] = f
				return nil
			}},
		{"danger_zone", wcDanger,
			func(id ecs.EntityID) any { return w.dangers[id] },
			func(id ecs.EntityID, data json.RawMessage) error {
				return json.Unmarshal(data, &w.dangers[id])
			}},
		{"delayed_action", wcDelayed,
			func(id ecs.EntityID) any { return encodeAction(w.delayed[id]) },
			func(id ecs.EntityID, data json.RawMessage) error {
				var rec actionRecord
				err := json.Unmarshal(data, &rec)
				delayed[id] = rec
				return err
			}},
		{"pending_message", wcMessage,
			func(id ecs.EntityID) any { return w.messages[id] },
			func(id ecs.EntityID, data json.RawMessage) error {
				return json.Unmarshal(data, &w.messages[id])
			}},
	}
}

type counters struct {
	ActorSeq   uint64 `json:"actor_seq"`
	MessageSeq uint64 `json:"message_seq"`
}

func (w *World) singletons(cs *counters) map[string]any {
	return map[string]any{
		"tile_map":    &w.TileMap,
		"rng":         &w.RNG,
		"turn_count":  &w.TurnCount,
		"ui":          &w.UI,
		"ability":     &w.Ability,
		"message_log": &w.Messages,
		"counters":    cs,
	}
}

// Snapshot captures the world's persistent state.
func (w *World) Snapshot() (*persist.State, error) {
	w.Commit()
	st := persist.New()
	st.Session = w.Session
	for _, tab := range w.tables(nil, nil) {
		for it := w.Iter(ecs.All(tab.t)); it.Next(); {
			if err := st.AddComponent(tab.name, it.Entity().Handle(), tab.save(it.ID())); err != nil {
				return nil, err
			}
		}
	}
	cs := counters{ActorSeq: w.actorSeq, MessageSeq: w.messageSeq}
	for name, v := range w.singletons(&cs) {
		if err := st.SetSingleton(name, v); err != nil {
			return nil, err
		}
	}
	return st, nil
}

// Load restores a world from a snapshot; entities keep their handles.
// Unknown component and singleton names are skipped with a warning.
func Load(opts Options, st *persist.State) (*World, error) {
	w := newWorld(opts)
	if err := w.restore(st); err != nil {
		return nil, err
	}
	if player, ok := w.Player(); ok {
		w.camera.MoveRel(w.Actor(player).DrawPos.Sub(w.camera.Center()))
	}
	return w, nil
}

func (w *World) restore(st *persist.State) error {
	w.Session = st.Session
	var cs counters
	sings := w.singletons(&cs)
	for _, name := range st.SingletonNames() {
		v, known := sings[name]
		if !known {
			w.log("persist: skipping unknown singleton %q", name)
			continue
		}
		if _, err := st.Singleton(name, v); err != nil {
			return err
		}
	}
	if w.TileMap == nil {
		return fmt.Errorf("restore: no tile map in session %v", st.Session)
	}
	if w.RNG == nil {
		w.RNG = rng.New(0)
	}
	w.actorSeq, w.messageSeq = cs.ActorSeq, cs.MessageSeq

	positions := make(map[ecs.EntityID]point.Point)
	delayed := make(map[ecs.EntityID]actionRecord)
	tabs := make(map[string]table)
	for _, tab := range w.tables(positions, delayed) {
		tabs[tab.name] = tab
	}

	types := make(map[ecs.Handle]ecs.ComponentType)
	for _, name := range st.ComponentNames() {
		tab, known := tabs[name]
		if !known {
			w.log("persist: skipping unknown component %q", name)
			continue
		}
		for _, rec := range st.Components[name] {
			if rec.Entity.ID <= 0 {
				return fmt.Errorf("restore %v: invalid entity %v", name, rec.Entity)
			}
			w.Revive(rec.Entity)
			if err := tab.load(rec.Entity.ID, rec.Value); err != nil {
				return fmt.Errorf("restore %v of %v: %w", name, rec.Entity, err)
			}
			types[rec.Entity] |= tab.t
		}
	}

	handles := make([]ecs.Handle, 0, len(types))
	for h := range types {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i].ID < handles[j].ID })
	for _, h := range handles {
		t := types[h]
		ent := w.Resolve(h)
		if t&^wcPosition == 0 {
			ent.Destroy()
			continue
		}
		ent.SetType(t &^ wcPosition)
		if t.All(wcPosition) {
			w.pos.Set(ent, positions[h.ID])
		}
	}

	for id, rec := range delayed {
		act, err := w.decodeAction(rec)
		if err != nil {
			return fmt.Errorf("restore delayed action of %v: %w", id, err)
		}
		w.delayed[id] = act
	}

	// dead actors were waiting on animations that were not saved
	for _, ent := range w.Actors() {
		if !w.Actor(ent).Alive() && !w.isPlayer(ent) {
			ent.Destroy()
		}
	}
	w.State = TurnPending
	return nil
}

// actionRecord is the saved form of an Action.
type actionRecord struct {
	Kind   string        `json:"kind"`
	Actor  ecs.Handle    `json:"actor"`
	Target ecs.Handle    `json:"target,omitzero"`
	From   point.Point   `json:"from,omitzero"`
	To     point.Point   `json:"to,omitzero"`
	Path   []point.Point `json:"path,omitempty"`
	Dir    point.Point   `json:"dir,omitzero"`
}

func encodeAction(act Action) actionRecord {
	rec := actionRecord{Actor: act.Actor.Handle()}
	switch k := act.Kind.(type) {
	case Wait:
		rec.Kind = "wait"
	case Meditate:
		rec.Kind = "meditate"
	case GroundSlam:
		rec.Kind = "ground_slam"
	case Move:
		rec.Kind, rec.From, rec.To = "move", k.From, k.To
	case BumpAttack:
		rec.Kind, rec.Target = "bump_attack", k.Target.Handle()
	case RockThrow:
		rec.Kind, rec.Path, rec.Target = "rock_throw", k.Path, k.Target.Handle()
	case ShootArrow:
		rec.Kind, rec.Path, rec.Target = "shoot_arrow", k.Path, k.Target.Handle()
	case JumpAttack:
		rec.Kind, rec.Path, rec.Target = "jump_attack", k.Path, k.Target.Handle()
	case Kick:
		rec.Kind, rec.Target = "kick", k.Target.Handle()
	case DelayedSmash:
		rec.Kind, rec.Dir = "delayed_smash", k.Dir
	}
	return rec
}

func (w *World) decodeAction(rec actionRecord) (Action, error) {
	actor := w.Resolve(rec.Actor)
	if actor == ecs.NilEntity {
		return Action{}, fmt.Errorf("no actor %v", rec.Actor)
	}
	target := w.Resolve(rec.Target)
	act := Action{Actor: actor}
	switch rec.Kind {
	case "wait":
		act.Kind = Wait{}
	case "meditate":
		act.Kind = Meditate{}
	case "ground_slam":
		act.Kind = GroundSlam{}
	case "move":
		act.Kind = Move{From: rec.From, To: rec.To}
	case "bump_attack":
		act.Kind = BumpAttack{Target: target}
	case "rock_throw":
		act.Kind = RockThrow{Path: rec.Path, Target: target}
	case "shoot_arrow":
		act.Kind = ShootArrow{Path: rec.Path, Target: target}
	case "jump_attack":
		act.Kind = JumpAttack{Path: rec.Path, Target: target}
	case "kick":
		act.Kind = Kick{Target: target}
	case "delayed_smash":
		act.Kind = DelayedSmash{Dir: rec.Dir}
	default:
		return Action{}, fmt.Errorf("unknown action kind %q", rec.Kind)
	}
	return act, nil
}

// Package game is the rampage simulation: actors taking turns in aut on a
// tile map, the actions they resolve, and the animations that make each turn
// visible without holding up the next one.
//
// A World is driven by calling Frame once per presented frame; it plays
// animations, flushes messages whose animations have started, and then runs
// turns until it needs player input or until an animation involving the
// player is still pending.
package game

import (
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/borkshop/rampage/internal/aut"
	"github.com/borkshop/rampage/internal/ecs"
	"github.com/borkshop/rampage/internal/ecs/eps"
	"github.com/borkshop/rampage/internal/mapgen"
	"github.com/borkshop/rampage/internal/noise"
	"github.com/borkshop/rampage/internal/rng"
	"github.com/borkshop/rampage/internal/tilemap"
)

const (
	wcPosition ecs.ComponentType = 1 << iota
	wcActor
	wcPlayer
	wcFov
	wcDelayed
	wcDanger
	wcTimer
	wcMovement
	wcBump
	wcHPBar
	wcProjectile
	wcShake
	wcCameraMove
	wcDecorSpawn
	wcGameOver
	wcDangerAnim
	wcMessage
)

const (
	actorMask  = wcPosition | wcActor
	playerMask = actorMask | wcPlayer
)

// relLink is the only relation type used; relations here carry no data.
const relLink ecs.ComponentType = 1

// shakeSeed seeds the camera shake noise.
const shakeSeed = 4

// Options configure a new World.
type Options struct {
	Seed   uint64
	Rules  Rules
	Logger *log.Logger
	Camera Camera
}

// World holds all simulation state; it is not safe for concurrent use.
type World struct {
	ecs.System
	pos eps.EPS

	logger *log.Logger
	camera Camera
	shake  *noise.Simplex

	Rules Rules

	// Session identifies one playthrough across saves and loads.
	Session uuid.UUID

	// Now is the presentation clock in seconds; every animation timer is
	// relative to it.
	Now float64

	TileMap   *tilemap.TileMap
	RNG       *rng.Generator
	TurnCount aut.Time
	UI        UI
	Ability   AbilityState
	Messages  MessageLog
	State     TurnState

	targets *ecs.Graph    // animation -> affected entity
	cleanup *ecs.Relation // animation -> entity destroyed along with it
	inhibit *ecs.Graph    // pending message -> animation holding it back

	actors      []*Actor
	players     []*Player
	fovs        []Fov
	delayed     []Action
	dangers     []DangerZone
	timers      []Timer
	movements   []Movement
	hpBars      []HPBar
	projectiles []Projectile
	cameraMoves []CameraMove
	decorSpawns []tilemap.DecorAt
	dangerAnims []DangerZoneChange
	messages    []PendingMessage

	actorSeq   uint64
	messageSeq uint64
}

// NewWorld creates a world with a freshly generated first level, the player
// standing on its up stairs.
func NewWorld(opts Options) *World {
	w := newWorld(opts)
	w.Session = uuid.New()
	w.RNG = rng.New(opts.Seed)
	w.enterLevel(mapgen.Generate(opts.Seed), opts.Seed, 0)
	player := w.SpawnActor(CreaturePlayer, w.TileMap.UpStairs)
	w.updateFov(player)
	w.camera.MoveRel(w.TileMap.UpStairs.F().Sub(w.camera.Center()))
	w.Commit()
	return w
}

func newWorld(opts Options) *World {
	w := &World{
		logger: opts.Logger,
		camera: opts.Camera,
		shake:  noise.New(shakeSeed),
		Rules:  opts.Rules,
	}
	if w.logger == nil {
		w.logger = log.New(io.Discard, "", 0)
	}
	if w.camera == nil {
		w.camera = nopCamera{}
	}
	if w.Rules == (Rules{}) {
		w.Rules = DefaultRules()
	}
	w.Messages.Init(w.Rules.MessageLogSize)
	w.init()
	return w
}

func (w *World) init() {
	w.RegisterAllocator(ecs.NoType, w.alloc)
	w.RegisterDestroyer(ecs.NoType, w.destroyed)
	w.pos.Init(&w.Core, wcPosition)

	w.targets = ecs.NewGraph(&w.Core, 0, 0)
	w.cleanup = ecs.NewRelation(&w.Core, 0, &w.Core, ecs.RelationCascadeDestroy)
	w.inhibit = ecs.NewGraph(&w.Core, 0, 0)

	// index 0 is the nil entity
	w.alloc(0, ecs.NoType)

	w.AddProcFunc(
		w.handleAnimations,
		w.flushMessages,
		w.processTurns,
	)
}

// SetCamera replaces the camera driven by camera animations; nil disables
// camera effects.
func (w *World) SetCamera(cam Camera) {
	if cam == nil {
		cam = nopCamera{}
	}
	w.camera = cam
}

// Frame advances the presentation clock to now, given in seconds, and runs
// one round of animation, message flushing, and turn taking.
func (w *World) Frame(now float64) {
	w.Now = now
	w.Process()
}

func (w *World) alloc(id ecs.EntityID, t ecs.ComponentType) {
	w.actors = append(w.actors, nil)
	w.players = append(w.players, nil)
	w.fovs = append(w.fovs, nil)
	w.delayed = append(w.delayed, Action{})
	w.dangers = append(w.dangers, DangerZone{})
	w.timers = append(w.timers, Timer{})
	w.movements = append(w.movements, Movement{})
	w.hpBars = append(w.hpBars, HPBar{})
	w.projectiles = append(w.projectiles, Projectile{})
	w.cameraMoves = append(w.cameraMoves, CameraMove{})
	w.decorSpawns = append(w.decorSpawns, tilemap.DecorAt{})
	w.dangerAnims = append(w.dangerAnims, DangerZoneChange{})
	w.messages = append(w.messages, PendingMessage{})
}

func (w *World) destroyed(id ecs.EntityID, t ecs.ComponentType) {
	w.actors[id] = nil
	w.players[id] = nil
	w.fovs[id] = nil
	w.delayed[id] = Action{}
	w.dangers[id] = DangerZone{}
	w.timers[id] = Timer{}
	w.movements[id] = Movement{}
	w.hpBars[id] = HPBar{}
	w.projectiles[id] = Projectile{}
	w.cameraMoves[id] = CameraMove{}
	w.decorSpawns[id] = tilemap.DecorAt{}
	w.dangerAnims[id] = DangerZoneChange{}
	w.messages[id] = PendingMessage{}
}

// enterLevel installs a level and populates it with its enemies, who take
// their first turn at start.
func (w *World) enterLevel(tm *tilemap.TileMap, seed uint64, start aut.Time) {
	w.TileMap = tm
	for _, spawn := range mapgen.PlaceEnemies(seed, tm) {
		ent := w.SpawnActor(enemyCreature(spawn.Enemy), spawn.Pos)
		w.Actor(ent).NextTurn = start
	}
}

func enemyCreature(e mapgen.Enemy) Creature {
	switch e {
	case mapgen.GoblinBrute:
		return CreatureGoblinBrute
	case mapgen.GoblinArcher:
		return CreatureGoblinArcher
	default:
		return CreatureGoblin
	}
}

func (w *World) log(mess string, args ...any) {
	w.logger.Printf(mess, args...)
}

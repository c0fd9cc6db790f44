package eps

import (
	"sort"

	"github.com/borkshop/rampage/internal/ecs"
	"github.com/borkshop/rampage/internal/point"
)

// EPS is an Entity Positioning System; (technically it's not an ecs.System, it
// just has a reference to an ecs.Core). It holds the grid position of every
// entity with its component type, and answers "who is at this point" queries.
type EPS struct {
	core *ecs.Core
	t    ecs.ComponentType

	resEnts []ecs.Entity
	pt      []point.Point
	ix      map[point.Point][]ecs.EntityID
}

// Init ialize the EPS wrt a given core and component type that
// represents "has a position".
func (eps *EPS) Init(core *ecs.Core, t ecs.ComponentType) {
	eps.core = core
	eps.t = t
	eps.pt = []point.Point{{}}
	eps.ix = make(map[point.Point][]ecs.EntityID)
	eps.core.RegisterAllocator(eps.t, eps.alloc)
	eps.core.RegisterCreator(eps.t, eps.create)
	eps.core.RegisterDestroyer(eps.t, eps.destroy)
}

// Get the position of an entity; the bool argument is true only if
// the entity actually has a position.
func (eps *EPS) Get(ent ecs.Entity) (point.Point, bool) {
	if !ent.Type().All(eps.t) {
		return point.Zero, false
	}
	return eps.pt[eps.core.Deref(ent)], true
}

// Set the position of an entity, adding the eps's component if
// necessary; the entity must already be live (typed).
func (eps *EPS) Set(ent ecs.Entity, pt point.Point) {
	id := eps.core.Deref(ent)
	if !ent.Type().All(eps.t) {
		eps.pt[id] = pt
		ent.Add(eps.t)
		return
	}
	if old := eps.pt[id]; old != pt {
		eps.unindex(id, old)
		eps.pt[id] = pt
		eps.index(id, pt)
	}
}

// At returns the entities at a given point, ordered by id; NOTE the slice is
// not safe to retain long term, and MAY be re-used by the next call to EPS.At.
func (eps *EPS) At(pt point.Point) []ecs.Entity {
	ids := eps.ix[pt]
	if len(ids) == 0 {
		return nil
	}
	eps.resEnts = eps.resEnts[:0]
	for _, id := range ids {
		eps.resEnts = append(eps.resEnts, eps.core.Ref(id))
	}
	return eps.resEnts
}

// Len returns how many entities are positioned.
func (eps *EPS) Len() int {
	n := 0
	for _, ids := range eps.ix {
		n += len(ids)
	}
	return n
}

func (eps *EPS) alloc(id ecs.EntityID, t ecs.ComponentType) {
	eps.pt = append(eps.pt, point.Zero)
}

func (eps *EPS) create(id ecs.EntityID, t ecs.ComponentType) {
	eps.index(id, eps.pt[id])
}

func (eps *EPS) destroy(id ecs.EntityID, t ecs.ComponentType) {
	eps.unindex(id, eps.pt[id])
	eps.pt[id] = point.Zero
}

func (eps *EPS) index(id ecs.EntityID, pt point.Point) {
	ids := append(eps.ix[pt], id)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	eps.ix[pt] = ids
}

func (eps *EPS) unindex(id ecs.EntityID, pt point.Point) {
	ids := eps.ix[pt]
	for i := range ids {
		if ids[i] == id {
			ids = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(ids) == 0 {
		delete(eps.ix, pt)
	} else {
		eps.ix[pt] = ids
	}
}

package ecs

import "fmt"

// Entity is a reference to an entity in a Core; it carries the generation of
// the id it was taken from, so it goes stale once that entity is destroyed.
type Entity struct {
	co  *Core
	id  EntityID
	gen uint32
}

// Handle is the Core-independent form of an Entity, suitable for storage and
// serialization.
type Handle struct {
	ID  EntityID `json:"id"`
	Gen uint32   `json:"gen"`
}

// NilEntity is the zero of Entity, representing "no entity, in no Core".
var NilEntity = Entity{}

func (ent Entity) String() string {
	if ent.co == nil {
		return fmt.Sprintf("Nil<>[%v]", ent.id)
	}
	if !ent.Alive() {
		return fmt.Sprintf("%p<stale>[%v.%v]", ent.co, ent.id, ent.gen)
	}
	return fmt.Sprintf("%p<%v>[%v.%v]",
		ent.co,
		ent.co.types[ent.id-1],
		ent.id, ent.gen,
	)
}

func (h Handle) String() string { return fmt.Sprintf("%v.%v", h.ID, h.Gen) }

// Alive returns true if the entity reference is non-nil and its generation
// still matches; reserved (not yet committed) entities count as alive.
func (ent Entity) Alive() bool {
	return ent.co != nil && ent.id > 0 &&
		int(ent.id) <= len(ent.co.gens) &&
		ent.co.gens[ent.id-1] == ent.gen &&
		ent.co.state[ent.id-1] != slotFree
}

// Type returns the type of the referenced entity, or NoType if the reference
// is empty or stale.
func (ent Entity) Type() ComponentType {
	if !ent.Alive() {
		return NoType
	}
	return ent.co.types[ent.id-1]
}

// ID returns the ID of the referenced entity; it SHOULD only be called in a
// context where the caller is sure of ownership; when in doubt, use
// Core.Deref(ent) instead.
func (ent Entity) ID() EntityID {
	if ent.co == nil {
		return 0
	}
	return ent.id
}

// Handle returns the storable form of the reference.
func (ent Entity) Handle() Handle {
	if ent.co == nil {
		return Handle{}
	}
	return Handle{ent.id, ent.gen}
}

// Deref unpacks an Entity reference, returning its ID; it panics if the Core
// doesn't own the Entity, or if the reference is stale.
func (co *Core) Deref(e Entity) EntityID {
	if e.co == co {
		if co.gens[e.id-1] != e.gen {
			panic("stale entity")
		}
		return e.id
	} else if e.co == nil {
		panic("nil entity")
	} else {
		panic("foreign entity")
	}
}

// Ref returns an Entity reference to the given ID at its current generation;
// it is valid to return a reference to the zero entity, to represent "no
// entity, in this Core" (e.g. will Deref() to 0 EntityID).
func (co *Core) Ref(id EntityID) Entity {
	if id == 0 {
		return NilEntity
	}
	return Entity{co, id, co.gens[id-1]}
}

// Resolve turns a Handle back into an Entity; the result is NilEntity if the
// handle is zero, out of range, or stale.
func (co *Core) Resolve(h Handle) Entity {
	if h.ID <= 0 || int(h.ID) > len(co.gens) {
		return NilEntity
	}
	ent := Entity{co, h.ID, h.Gen}
	if !ent.Alive() {
		return NilEntity
	}
	return ent
}

// Revive ensures that the entity named by the handle exists, growing the Core
// as needed; it is how persisted entities are restored under their original
// ids. The entity is left with its current type, NoType if it was free; it
// panics if the id is held by another generation.
func (co *Core) Revive(h Handle) Entity {
	if h.ID <= 0 {
		panic("revive nil entity")
	}
	for len(co.types) < int(h.ID) {
		id := co.grow()
		co.state[id-1] = slotFree
		co.free = append(co.free, id)
	}
	i := h.ID - 1
	if co.state[i] != slotFree {
		if co.gens[i] != h.Gen {
			panic(fmt.Sprintf("revive %v: slot held by generation %v", h, co.gens[i]))
		}
		return Entity{co, h.ID, h.Gen}
	}
	for j, id := range co.free {
		if id == h.ID {
			co.free = append(co.free[:j], co.free[j+1:]...)
			break
		}
	}
	co.gens[i] = h.Gen
	co.state[i] = slotReserved
	return Entity{co, h.ID, h.Gen}
}

// AddEntity adds an entity to a core, returning an Entity reference; it MAY
// re-use a previously-used but since-destroyed entity id, under a new
// generation. MAY invoke all allocators to make space for more entities (will
// do so if no id is free).
func (co *Core) AddEntity(nt ComponentType) Entity {
	ent := co.Reserve()
	co.SetType(ent.id, nt)
	return ent
}

// Reserve allocates an entity id without giving it a type; the entity is
// invisible to iteration until its type is set, but its data slots may be
// written immediately.
func (co *Core) Reserve() Entity {
	id := co.allocate()
	return Entity{co, id, co.gens[id-1]}
}

// Add sets bits in the entity's type, calling any creators that are newly
// satisfied by the new type.
func (ent Entity) Add(t ComponentType) {
	if ent.Alive() {
		old := ent.co.types[ent.id-1]
		ent.co.SetType(ent.id, old|t)
	}
}

// Delete clears bits in the entity's type, calling any destroyers that are no
// longer satisfied by the new type (which may be NoType).
func (ent Entity) Delete(t ComponentType) {
	if ent.Alive() {
		old := ent.co.types[ent.id-1]
		ent.co.SetType(ent.id, old & ^t)
	}
}

// Destroy sets the entity's type to NoType, invoking any destroyers that match
// the prior type; destroying a stale reference does nothing.
func (ent Entity) Destroy() {
	if ent.Alive() {
		ent.co.SetType(ent.id, NoType)
	}
}

// SetType sets the entity's type; may invoke creators and destroyers as
// appropriate.
func (ent Entity) SetType(t ComponentType) {
	if ent.Alive() {
		ent.co.SetType(ent.id, t)
	}
}

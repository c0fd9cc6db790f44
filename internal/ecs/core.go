package ecs

import "fmt"

// Core is the core of an Entity Component System: it manages the entity IDs,
// their generations, and their types.
type Core struct {
	types []ComponentType
	gens  []uint32
	state []slotState
	free  []EntityID

	allocators, creators, destroyers []entityFunc
}

type entityFunc struct {
	t ComponentType
	f func(EntityID, ComponentType)
}

type slotState uint8

const (
	slotFree slotState = iota
	slotReserved
	slotLive
)

// EntityID is the ID of an Entity in a Core; the 0 value is an invalid ID,
// meaning "null entity".
type EntityID int

// ComponentType represents the type of an Entity in a Core.
type ComponentType uint64

// NoType represents an unused entity; one that has been allocated, but not yet
// handed out by AddEntity.
const NoType ComponentType = 0

func (t ComponentType) String() string { return fmt.Sprintf("<%016x>", uint64(t)) }

// All returns true only if all of the masked type bits are set. If the mask is
// NoType, always returns false.
func (t ComponentType) All(mask ComponentType) bool { return mask != NoType && t&mask == mask }

// Any returns true only if at least one of the masked type bits is set. If the
// mask is NoType, always returns true.
func (t ComponentType) Any(mask ComponentType) bool { return mask == NoType || t&mask != 0 }

// ApplyTo sets the given entity's type to t; simply a dual of Entity.SetType.
func (t ComponentType) ApplyTo(ent Entity) { ent.SetType(t) }

// Len counts how many active entities exist.
func (co *Core) Len() int {
	n := 0
	for _, t := range co.types {
		if t != NoType {
			n++
		}
	}
	return n
}

// Cap returns how many entities have been statically allocated within the
// Core. If Len() < Cap() then calls to AddEntity will re-use a prior id.
func (co *Core) Cap() int {
	return len(co.types)
}

// Empty returns true only if there are no active entities.
func (co *Core) Empty() bool {
	for _, t := range co.types {
		if t != NoType {
			return false
		}
	}
	return true
}

// Clear destroys all active and reserved entities.
func (co *Core) Clear() {
	for i := range co.types {
		if co.state[i] != slotFree {
			co.SetType(EntityID(i+1), NoType)
		}
	}
}

// RegisterAllocator registers an allocator function; it panics if any
// allocator is registered that overlaps the given type.
//
// Allocators are called when the Core grows its entity capacity. An allocator
// must create space in each of its data collections so that the given id has
// corresponding element(s).
func (co *Core) RegisterAllocator(t ComponentType, allocator func(EntityID, ComponentType)) {
	for _, ef := range co.allocators {
		if ef.t.Any(t) {
			panic("aspect type conflict")
		}
	}
	co.allocators = append(co.allocators, entityFunc{t, allocator})
}

// RegisterCreator registers a creator function. The Type may overlap any
// number of other creator Types, so each should be written cooperatively.
//
// Creators are called when an Entity has all of its Type bits added to it;
// they may initialize static data, allocate dynamic data, or do other Type
// specific things.
//
// Any creators registered against NoType trigger simply at entity creation
// time; they will be called when an entity transitions from NoType to any
// arbitrary type. NOTE: for reserved entities this happens at commit time,
// well after allocation.
func (co *Core) RegisterCreator(t ComponentType, creator func(EntityID, ComponentType)) {
	co.creators = append(co.creators, entityFunc{t, creator})
}

// RegisterDestroyer registers a destroyer function. The Type may overlap any
// number of other destroyer Types, so each should be written cooperatively.
//
// Destroyers are called when an Entity has any of its Type bits removed from
// it; they may clear static data, de-allocate dynamic data, or do other Type
// specific things. NOTE: destroyers must not de-allocate static data.
//
// Any destroyers registered against NoType trigger at entity deletion time;
// they will be called when an entity transitions to NoType.
func (co *Core) RegisterDestroyer(t ComponentType, destroyer func(EntityID, ComponentType)) {
	co.destroyers = append(co.destroyers, entityFunc{t, destroyer})
}

// Type returns the entity's type.
func (co *Core) Type(id EntityID) ComponentType { return co.types[id-1] }

// SetType changes an entity's type, calling any relevant lifecycle functions.
// Setting NoType on a live or reserved entity frees its id and bumps its
// generation; setting it on a free id is a no-op.
func (co *Core) SetType(id EntityID, new ComponentType) {
	i := id - 1
	old := co.types[i]
	if old == new {
		if new == NoType && co.state[i] == slotReserved {
			co.release(id)
		}
		return
	}
	if co.state[i] == slotFree {
		panic(fmt.Sprintf("set type %v on free entity %v", new, id))
	}
	co.types[i] = new
	co.state[i] = slotLive
	if old == NoType {
		for _, ef := range co.creators {
			if ef.t == NoType {
				ef.f(id, new)
				new = co.types[i]
			}
		}
	}
	if new & ^old != 0 {
		for _, ef := range co.creators {
			if new.All(ef.t) && !old.All(ef.t) {
				ef.f(id, new)
				new = co.types[i]
			}
		}
	}
	if old & ^new != 0 {
		for _, ef := range co.destroyers {
			if old.All(ef.t) && !new.All(ef.t) {
				ef.f(id, new)
				new = co.types[i]
			}
		}
	}
	if new == NoType {
		for _, ef := range co.destroyers {
			if ef.t == NoType {
				ef.f(id, new)
				new = co.types[i]
			}
		}
		if new == NoType && co.state[i] != slotFree {
			co.release(id)
		}
	}
}

func (co *Core) release(id EntityID) {
	i := id - 1
	co.state[i] = slotFree
	co.gens[i]++
	co.free = append(co.free, id)
}

func (co *Core) allocate() EntityID {
	if n := len(co.free); n > 0 {
		id := co.free[0]
		copy(co.free, co.free[1:])
		co.free = co.free[:n-1]
		co.state[id-1] = slotReserved
		return id
	}
	return co.grow()
}

func (co *Core) grow() EntityID {
	id := EntityID(len(co.types) + 1)
	co.types = append(co.types, NoType)
	co.gens = append(co.gens, 1)
	co.state = append(co.state, slotReserved)
	for _, ef := range co.allocators {
		ef.f(id, NoType)
	}
	return id
}

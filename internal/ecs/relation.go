package ecs

// RelationFlags specifies options for the A or B dimension in a Relation.
type RelationFlags uint32

const (
	// RelationCascadeDestroy causes destruction of an entity relation to
	// destroy related entities within the flagged dimension.
	RelationCascadeDestroy RelationFlags = 1 << iota
)

// Relation contains entities that represent relations between entities in two
// (maybe different) Cores. Users may attach arbitrary data to these relations
// the same way you would with Core.
//
// A relation never outlives either of its endpoints: destroying an A or B
// entity destroys every relation that names it.
type Relation struct {
	Core
	aCore, bCore *Core
	aFlag, bFlag RelationFlags
	aids         []EntityID
	bids         []EntityID
}

// NewRelation creates a new relation for the given Core systems.
func NewRelation(
	aCore *Core, aFlags RelationFlags,
	bCore *Core, bFlags RelationFlags,
) *Relation {
	rel := &Relation{}
	rel.Init(aCore, aFlags, bCore, bFlags)
	return rel
}

// Init initializes the entity relation; useful for embedding.
func (rel *Relation) Init(
	aCore *Core, aFlags RelationFlags,
	bCore *Core, bFlags RelationFlags,
) {
	rel.aCore, rel.aFlag = aCore, aFlags
	rel.bCore, rel.bFlag = bCore, bFlags
	rel.RegisterAllocator(NoType, rel.allocRel)
	rel.RegisterDestroyer(NoType, rel.destroyRel)
	rel.aCore.RegisterDestroyer(NoType, rel.destroyFromA)
	rel.bCore.RegisterDestroyer(NoType, rel.destroyFromB)
}

// A returns a reference to the A-side entity for the given relation entity.
func (rel *Relation) A(ent Entity) Entity {
	return rel.aCore.Ref(rel.aids[rel.Deref(ent)-1])
}

// B returns a reference to the B-side entity for the given relation entity.
func (rel *Relation) B(ent Entity) Entity {
	return rel.bCore.Ref(rel.bids[rel.Deref(ent)-1])
}

func (rel *Relation) allocRel(id EntityID, t ComponentType) {
	rel.aids = append(rel.aids, 0)
	rel.bids = append(rel.bids, 0)
}

func (rel *Relation) destroyRel(id EntityID, t ComponentType) {
	i := int(id) - 1
	aid, bid := rel.aids[i], rel.bids[i]
	rel.aids[i], rel.bids[i] = 0, 0
	if aid != 0 && rel.aFlag&RelationCascadeDestroy != 0 {
		rel.aCore.SetType(aid, NoType)
	}
	if bid != 0 && rel.bFlag&RelationCascadeDestroy != 0 {
		rel.bCore.SetType(bid, NoType)
	}
}

func (rel *Relation) destroyFromA(aid EntityID, t ComponentType) {
	for i := range rel.types {
		if rel.types[i] != NoType && rel.aids[i] == aid {
			rel.SetType(EntityID(i+1), NoType)
		}
	}
}

func (rel *Relation) destroyFromB(bid EntityID, t ComponentType) {
	for i := range rel.types {
		if rel.types[i] != NoType && rel.bids[i] == bid {
			rel.SetType(EntityID(i+1), NoType)
		}
	}
}

// Cursor returns a cursor that will scan over relations with given type and
// that meet the optional where clause.
func (rel *Relation) Cursor(
	tcl TypeClause,
	where func(r ComponentType, ent, a, b Entity) bool,
) Cursor {
	it := rel.Iter(tcl)
	return &iterCursor{rel: rel, it: it, where: where}
}

// LookupA returns a Cursor that will iterate over relations involving one or
// more given A entities.
func (rel *Relation) LookupA(tcl TypeClause, ids ...EntityID) Cursor {
	return rel.scanLookup(tcl, false, ids)
}

// LookupB returns a Cursor that will iterate over relations involving one or
// more given B entities.
func (rel *Relation) LookupB(tcl TypeClause, ids ...EntityID) Cursor {
	return rel.scanLookup(tcl, true, ids)
}

// HasA returns true if any relation names the given A entity.
func (rel *Relation) HasA(id EntityID) bool { return rel.LookupA(AllClause, id).Scan() }

// HasB returns true if any relation names the given B entity.
func (rel *Relation) HasB(id EntityID) bool { return rel.LookupB(AllClause, id).Scan() }

// Insert a relation of type r between a and b; it panics if either entity is
// nil, stale, or foreign.
func (rel *Relation) Insert(r ComponentType, a, b Entity) Entity {
	return rel.insert(r, a, b)
}

// InsertMany allows a function to insert many relations in one go.
func (rel *Relation) InsertMany(with func(func(r ComponentType, a, b Entity) Entity)) {
	with(rel.insert)
}

func (rel *Relation) insert(r ComponentType, a, b Entity) Entity {
	aid := rel.aCore.Deref(a)
	bid := rel.bCore.Deref(b)
	ent := rel.AddEntity(r)
	i := int(ent.ID()) - 1
	rel.aids[i] = aid
	rel.bids[i] = bid
	return ent
}

// Delete all relations matching the given type clause and optional where
// function.
func (rel *Relation) Delete(
	tcl TypeClause,
	where func(r ComponentType, ent, a, b Entity) bool,
) {
	for cur := rel.Cursor(tcl, where); cur.Scan(); {
		rel.SetType(cur.R().ID(), NoType)
	}
}

package ecs

// Deferred is a command buffer of structural edits: entity creation, type
// changes, destruction, and relation inserts are staged in FIFO order and
// only applied at Commit. Entities created through it get their ids (and so
// their data slots) immediately, but stay invisible to iteration until the
// commit that types them.
//
// It is not safe for concurrent use.
type Deferred struct {
	ops []func()
}

// Pending returns how many staged edits await Commit.
func (d *Deferred) Pending() int { return len(d.ops) }

// Create reserves a new entity in co, staging its type for the next commit.
func (d *Deferred) Create(co *Core, t ComponentType) Entity {
	ent := co.Reserve()
	d.ops = append(d.ops, func() { ent.SetType(t) })
	return ent
}

// Destroy stages destruction of the entity; destroying an entity that has
// already gone is a no-op.
func (d *Deferred) Destroy(ent Entity) {
	d.ops = append(d.ops, ent.Destroy)
}

// Add stages setting type bits on the entity.
func (d *Deferred) Add(ent Entity, t ComponentType) {
	d.ops = append(d.ops, func() { ent.Add(t) })
}

// Delete stages clearing type bits on the entity.
func (d *Deferred) Delete(ent Entity, t ComponentType) {
	d.ops = append(d.ops, func() { ent.Delete(t) })
}

// Insert stages a relation insert; it is dropped if either side has been
// destroyed by the time it applies.
func (d *Deferred) Insert(rel *Relation, r ComponentType, a, b Entity) {
	d.ops = append(d.ops, func() {
		if a.Alive() && b.Alive() {
			rel.Insert(r, a, b)
		}
	})
}

// Do stages an arbitrary function.
func (d *Deferred) Do(f func()) {
	d.ops = append(d.ops, f)
}

// Commit applies all staged edits in FIFO order, including any staged by the
// edits themselves, and returns how many were applied.
func (d *Deferred) Commit() int {
	n := 0
	for len(d.ops) > 0 {
		ops := d.ops
		d.ops = nil
		for _, op := range ops {
			op()
		}
		n += len(ops)
	}
	return n
}

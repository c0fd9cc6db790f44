package ecs

// Cursor iterates through a Relation.
type Cursor interface {
	Scan() bool
	Count() int
	R() Entity
	A() Entity
	B() Entity
}

func (rel *Relation) scanLookup(tcl TypeClause, co bool, qids []EntityID) Cursor {
	// TODO: if qids is big enough, build a set first
	if co {
		return &coScanCursor{
			qids: qids,
			iterCursor: iterCursor{
				rel: rel,
				it:  rel.Iter(tcl),
			},
		}
	}
	return &scanCursor{
		qids: qids,
		iterCursor: iterCursor{
			rel: rel,
			it:  rel.Iter(tcl),
		},
	}
}

type scanCursor struct {
	iterCursor
	qids []EntityID
}

func (sc *scanCursor) Scan() bool {
	for sc.iterCursor.Scan() {
		id := sc.iterCursor.a.ID()
		for _, qid := range sc.qids {
			if qid == id {
				return true
			}
		}
	}
	return false
}

func (sc *scanCursor) Count() int {
	n, cp := 0, *sc
	for cp.Scan() {
		n++
	}
	return n
}

type coScanCursor scanCursor

func (csc *coScanCursor) Scan() bool {
	for csc.iterCursor.Scan() {
		id := csc.iterCursor.b.ID()
		for _, qid := range csc.qids {
			if qid == id {
				return true
			}
		}
	}
	return false
}

func (csc *coScanCursor) Count() int {
	n, cp := 0, *csc
	for cp.Scan() {
		n++
	}
	return n
}

type iterCursor struct {
	rel   *Relation
	it    Iterator
	where func(r ComponentType, ent, a, b Entity) bool
	r     Entity
	a     Entity
	b     Entity
}

func (cur *iterCursor) Count() int {
	n, cp := 0, *cur
	for cp.Scan() {
		n++
	}
	return n
}

func (cur *iterCursor) Scan() bool {
	for cur.it.Next() {
		i := cur.it.ID() - 1
		cur.r = cur.it.Entity()
		cur.a = cur.rel.aCore.Ref(cur.rel.aids[i])
		cur.b = cur.rel.bCore.Ref(cur.rel.bids[i])
		if cur.where == nil || cur.where(cur.it.Type(), cur.r, cur.a, cur.b) {
			return true
		}
	}
	cur.r = NilEntity
	cur.a = NilEntity
	cur.b = NilEntity
	return false
}

func (cur *iterCursor) R() Entity { return cur.r }
func (cur *iterCursor) A() Entity { return cur.a }
func (cur *iterCursor) B() Entity { return cur.b }

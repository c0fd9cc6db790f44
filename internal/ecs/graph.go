package ecs

// Graph is an auto-relation: one where both the A-side and B-side are the
// same Core system.
type Graph struct {
	Relation
}

// NewGraph creates a new graph relation for the given Core system.
func NewGraph(core *Core, aFlags, bFlags RelationFlags) *Graph {
	G := &Graph{}
	G.Init(core, aFlags, bFlags)
	return G
}

// Init initializes the graph relation; useful for embedding.
func (G *Graph) Init(core *Core, aFlags, bFlags RelationFlags) {
	G.Relation.Init(core, aFlags, core, bFlags)
}

// Targets returns the B-side entities related from the given A entity, in
// relation order.
func (G *Graph) Targets(tcl TypeClause, aid EntityID) []Entity {
	var res []Entity
	for cur := G.LookupA(tcl, aid); cur.Scan(); {
		res = append(res, cur.B())
	}
	return res
}

// Sources returns the A-side entities related to the given B entity, in
// relation order.
func (G *Graph) Sources(tcl TypeClause, bid EntityID) []Entity {
	var res []Entity
	for cur := G.LookupB(tcl, bid); cur.Scan(); {
		res = append(res, cur.A())
	}
	return res
}

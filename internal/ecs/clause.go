package ecs

import "fmt"

// TypeClause is a logical filter for ComponentTypes.  If All is non-0, then
// Test()s true only for types that have all of those type bits set.
// Similarly if Any non-0, then Test()s true only for types that have at least
// one of those type bits set. If None is non-0, types with any of those bits
// set are rejected.
type TypeClause struct {
	All  ComponentType
	Any  ComponentType
	None ComponentType
}

func (tcl TypeClause) String() string {
	s := ""
	switch {
	case tcl.All == 0:
		s = fmt.Sprintf("Any(%v)", tcl.Any)
	case tcl.Any == 0:
		s = fmt.Sprintf("All(%v)", tcl.All)
	default:
		s = fmt.Sprintf("Clause(%v, %v)", tcl.All, tcl.Any)
	}
	if tcl.None != 0 {
		s += fmt.Sprintf(".Without(%v)", tcl.None)
	}
	return s
}

// Test returns true/or false based on above logic description.
func (tcl TypeClause) Test(t ComponentType) bool {
	if tcl.All != 0 && !t.All(tcl.All) {
		return false
	}
	if tcl.Any != 0 && !t.Any(tcl.Any) {
		return false
	}
	if tcl.None != 0 && t&tcl.None != 0 {
		return false
	}
	return true
}

// Without returns a copy of the clause that also rejects the given bits.
func (tcl TypeClause) Without(t ComponentType) TypeClause {
	tcl.None |= t
	return tcl
}

// AllClause matches any live type; always Test()s true.
var AllClause = TypeClause{}

// Clause is a convenience constructor.
func Clause(all, any ComponentType) TypeClause { return TypeClause{All: all, Any: any} }

// All is a convenience constructor.
func All(t ComponentType) TypeClause { return TypeClause{All: t} }

// Any is a convenience constructor.
func Any(t ComponentType) TypeClause { return TypeClause{Any: t} }

// Filter a list of entities under a given type clause.
func Filter(ents []Entity, tcl TypeClause) []Entity {
	i, j := 0, 0
	for ; j < len(ents); j++ {
		if tcl.Test(ents[j].Type()) {
			if j > i {
				ents[i] = ents[j]
			}
			i++
		}
	}
	for j = i; j < len(ents); j++ {
		ents[j] = NilEntity
	}
	return ents[:i]
}

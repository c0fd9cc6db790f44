package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/borkshop/rampage/internal/ecs"
)

func setupGraphTest(aFlags, bFlags ecs.RelationFlags) (*stuff, *ecs.Graph) {
	s := newStuff()
	s1 := s.addData(3)
	s2 := s.addData(5)
	s3 := s.addData(8)
	s4 := s.addData(13)
	s5 := s.addData(21)

	G := ecs.NewGraph(&s.Core, aFlags, bFlags)
	G.Insert(1, s1, s2)
	G.Insert(1, s1, s3)
	G.Insert(1, s2, s4)
	G.Insert(1, s3, s4)
	G.Insert(1, s4, s5)
	return s, G
}

func graphIDs(ents []ecs.Entity) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, len(ents))
	for _, ent := range ents {
		ids = append(ids, ent.ID())
	}
	return ids
}

func TestGraph(t *testing.T) {
	testCases{
		{"targets", func(t *testing.T) {
			_, G := setupGraphTest(0, 0)
			assert.Equal(t, []ecs.EntityID{2, 3}, graphIDs(G.Targets(ecs.AllClause, 1)))
			assert.Equal(t, []ecs.EntityID{4}, graphIDs(G.Targets(ecs.AllClause, 2)))
			assert.Empty(t, G.Targets(ecs.AllClause, 5))
		}},

		{"sources", func(t *testing.T) {
			_, G := setupGraphTest(0, 0)
			assert.Equal(t, []ecs.EntityID{2, 3}, graphIDs(G.Sources(ecs.AllClause, 4)))
			assert.Empty(t, G.Sources(ecs.AllClause, 1))
		}},

		{"destroying a node drops its edges", func(t *testing.T) {
			s, G := setupGraphTest(0, 0)
			s.Ref(4).Destroy()
			assert.Empty(t, G.Targets(ecs.AllClause, 2))
			assert.False(t, G.HasB(4))
			assert.False(t, G.HasA(4))
			assert.True(t, s.Ref(5).Alive())
		}},

		{"cascade", func(t *testing.T) {
			s, _ := setupGraphTest(0, ecs.RelationCascadeDestroy)
			s.Ref(2).Destroy()
			assert.False(t, s.Ref(4).Alive(), "target of destroyed source")
			assert.False(t, s.Ref(5).Alive(), "transitive target")
			assert.True(t, s.Ref(3).Alive())
		}},
	}.run(t)
}

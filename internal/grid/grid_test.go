package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/borkshop/rampage/internal/grid"
	"github.com/borkshop/rampage/internal/point"
)

func TestGrid(t *testing.T) {
	g := grid.Make(point.Pt(3, 2), 7)
	assert.Len(t, g.Data, 6)
	assert.Equal(t, 7, g.At(point.Pt(2, 1)))

	g.Set(point.Pt(1, 1), 4)
	assert.Equal(t, 4, g.Data[4])

	v, ok := g.Get(point.Pt(1, 1))
	assert.True(t, ok)
	assert.Equal(t, 4, v)

	for _, pt := range []point.Point{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 3, Y: 0}, {X: 0, Y: 2}} {
		assert.False(t, g.In(pt), "%v", pt)
		_, ok := g.Get(pt)
		assert.False(t, ok, "%v", pt)
	}

	var order []point.Point
	g.Each(func(pt point.Point, v int) { order = append(order, pt) })
	assert.Equal(t, []point.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}, order)

	g.Fill(0)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0}, g.Data)
}

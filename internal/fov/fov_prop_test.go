package fov_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/borkshop/rampage/internal/grid"
	"github.com/borkshop/rampage/internal/point"
)

func TestCompute_symmetricProperty(t *testing.T) {
	const size = 14
	rapid.Check(t, func(t *rapid.T) {
		walls := grid.Make(point.Pt(size, size), false)
		for _, i := range rapid.SliceOfN(rapid.IntRange(0, size*size-1), 0, 60).Draw(t, "walls") {
			walls.Set(point.Pt(i%size, i/size), true)
		}

		views := make(map[point.Point]grid.Grid[bool])
		view := func(pt point.Point) grid.Grid[bool] {
			v, ok := views[pt]
			if !ok {
				v = visible(walls, pt)
				views[pt] = v
			}
			return v
		}
		walls.Each(func(a point.Point, wall bool) {
			if wall {
				return
			}
			view(a).Each(func(b point.Point, seen bool) {
				if seen && !walls.At(b) && !view(b).At(a) {
					t.Fatalf("%v sees %v but not the other way\n%s", a, b, format(walls))
				}
			})
		})
	})
}

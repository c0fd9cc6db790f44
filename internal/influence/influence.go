// Package influence builds Dijkstra influence maps: values spread out from
// seed tiles, decreasing by a per-tile cost, so that walking uphill leads to
// the nearest seed.
package influence

import (
	"math"

	"github.com/borkshop/rampage/internal/grid"
	"github.com/borkshop/rampage/internal/point"
)

// Impassable is a cost no value can spread across.
const Impassable = math.MaxInt32

// Fill sets every seed to value, then relaxes the grid until no tile can be
// raised to (best neighbor - cost). Seeds keep their value whatever their
// cost.
func Fill(g grid.Grid[int], seeds []point.Point, value int, cost func(point.Point) int) {
	var next []point.Point
	for _, pt := range seeds {
		g.Set(pt, value)
	}
	for _, pt := range seeds {
		next = appendNeighbors(next, g, pt)
	}
	next = append(next, seeds...)

	var buf []point.Point
	for len(next) > 0 {
		buf, next = next, buf[:0]
		for _, pt := range buf {
			nmax, ok := maxNeighbor(g, pt)
			if !ok {
				continue
			}
			v, c := g.At(pt), cost(pt)
			if nmax-c <= v {
				continue
			}
			nv := nmax - c
			g.Set(pt, nv)
			for _, d := range point.Directions {
				n := pt.Add(d)
				if g.In(n) && g.At(n) < nv-cost(n) {
					next = append(next, n)
				}
			}
		}
	}
}

// Path follows strictly increasing values from start until a local maximum;
// it is empty if start is outside the grid or holds no influence. Ties go to
// the first neighbor in point.Directions order.
func Path(g grid.Grid[int], start point.Point) []point.Point {
	v, ok := g.Get(start)
	if !ok || v <= 0 {
		return nil
	}
	path := []point.Point{start}
	for pt := start; ; {
		best, bv := pt, v
		for _, d := range point.Directions {
			if nv, ok := g.Get(pt.Add(d)); ok && nv > bv {
				best, bv = pt.Add(d), nv
			}
		}
		if best == pt {
			return path
		}
		path = append(path, best)
		pt, v = best, bv
	}
}

func appendNeighbors(pts []point.Point, g grid.Grid[int], pt point.Point) []point.Point {
	for _, d := range point.Directions {
		if n := pt.Add(d); g.In(n) {
			pts = append(pts, n)
		}
	}
	return pts
}

func maxNeighbor(g grid.Grid[int], pt point.Point) (int, bool) {
	nmax, ok := 0, false
	for _, d := range point.Directions {
		if v, in := g.Get(pt.Add(d)); in && (!ok || v > nmax) {
			nmax, ok = v, true
		}
	}
	return nmax, ok
}

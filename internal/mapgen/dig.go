package mapgen

import (
	"container/heap"

	"github.com/borkshop/rampage/internal/grid"
	"github.com/borkshop/rampage/internal/point"
	"github.com/borkshop/rampage/internal/tilemap"
)

// Step costs for digging into a tile.
const (
	digWall  = 10
	digFloor = 1
)

var orthogonal = [4]point.Point{{X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 1}}

type digNode struct {
	pt    point.Point
	f     int
	index int
}

type digQueue []*digNode

func (pq digQueue) Len() int { return len(pq) }

func (pq digQueue) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	a, b := pq[i].pt, pq[j].pt
	return a.Y < b.Y || (a.Y == b.Y && a.X < b.X)
}

func (pq digQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *digQueue) Push(x any) {
	n := len(*pq)
	item := x.(*digNode)
	item.index = n
	*pq = append(*pq, item)
}

func (pq *digQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}

// dig finds the cheapest orthogonal corridor from start to goal, staying off
// the map border; the path excludes start and includes goal.
func dig(tm *tilemap.TileMap, start, goal point.Point) ([]point.Point, bool) {
	sz := tm.Size()
	inner := func(pt point.Point) bool {
		return pt.X > 0 && pt.Y > 0 && pt.X < sz.X-1 && pt.Y < sz.Y-1
	}
	const unseen = -1
	cost := grid.Make(sz, unseen)
	from := grid.Make(sz, point.Pt(-1, -1))

	open := &digQueue{}
	heap.Init(open)
	heap.Push(open, &digNode{pt: start, f: manhattan(start, goal)})
	cost.Set(start, 0)

	for open.Len() > 0 {
		cur := heap.Pop(open).(*digNode).pt
		if cur == goal {
			break
		}
		for _, d := range orthogonal {
			next := cur.Add(d)
			if !inner(next) {
				continue
			}
			step := digFloor
			if tm.At(next) == tilemap.Wall {
				step = digWall
			}
			nc := cost.At(cur) + step
			if prev := cost.At(next); prev != unseen && nc >= prev {
				continue
			}
			cost.Set(next, nc)
			from.Set(next, cur)
			heap.Push(open, &digNode{pt: next, f: nc + manhattan(next, goal)})
		}
	}

	if goal != start && cost.At(goal) == unseen {
		return nil, false
	}
	var path []point.Point
	for pt := goal; pt != start; pt = from.At(pt) {
		path = append(path, pt)
	}
	for i := 0; i < len(path)/2; i++ {
		j := len(path) - 1 - i
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

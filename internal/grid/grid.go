// Package grid provides a dense, row-major 2D buffer of values.
package grid

import "github.com/borkshop/rampage/internal/point"

// Grid represents a sized buffer of values.
type Grid[T any] struct {
	Size point.Point `json:"size"`
	Data []T         `json:"data"`
}

// Make makes a new Grid with the given size, every cell holding fill.
func Make[T any](sz point.Point, fill T) Grid[T] {
	g := Grid[T]{Size: sz}
	g.Data = make([]T, sz.X*sz.Y)
	for i := range g.Data {
		g.Data[i] = fill
	}
	return g
}

// In returns true if the point lies within the grid.
func (g Grid[T]) In(pt point.Point) bool {
	return pt.X >= 0 && pt.Y >= 0 && pt.X < g.Size.X && pt.Y < g.Size.Y
}

// At returns the value at a point, which must be within the grid.
func (g Grid[T]) At(pt point.Point) T {
	return g.Data[pt.Y*g.Size.X+pt.X]
}

// Get returns the value at a point; the bool is false if the point lies
// outside the grid.
func (g Grid[T]) Get(pt point.Point) (T, bool) {
	if !g.In(pt) {
		var zero T
		return zero, false
	}
	return g.At(pt), true
}

// Set sets the value at a point, which must be within the grid.
func (g Grid[T]) Set(pt point.Point, v T) {
	g.Data[pt.Y*g.Size.X+pt.X] = v
}

// Fill sets every cell to v.
func (g Grid[T]) Fill(v T) {
	for i := range g.Data {
		g.Data[i] = v
	}
}

// Each calls f for every point in row-major order.
func (g Grid[T]) Each(f func(pt point.Point, v T)) {
	for i, v := range g.Data {
		f(point.Pt(i%g.Size.X, i/g.Size.X), v)
	}
}

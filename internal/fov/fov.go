// Package fov computes field of view by symmetric recursive shadowcasting.
//
// Slopes are kept as exact rationals so that visibility is symmetric between
// any two floor tiles: if A sees B then B sees A.
package fov

import (
	"github.com/borkshop/rampage/internal/point"
	"github.com/borkshop/rampage/internal/rational"
)

// Compute marks every position visible from origin. isBlocking should report
// walls and anything outside the map; markVisible may be called more than once
// for the same position, and may be called for positions outside the map.
func Compute(origin point.Point, isBlocking func(point.Point) bool, markVisible func(point.Point)) {
	markVisible(origin)
	for card := north; card <= west; card++ {
		s := scanner{
			quadrant:    quadrant{card, origin},
			isBlocking:  isBlocking,
			markVisible: markVisible,
		}
		s.scan(row{1, rational.Int(-1), rational.Int(1)})
	}
}

type cardinal uint8

const (
	north cardinal = iota
	east
	south
	west
)

type quadrant struct {
	cardinal
	origin point.Point
}

// transform maps a (depth, column) tile into map space.
func (q quadrant) transform(depth, col int) point.Point {
	switch q.cardinal {
	case north:
		return point.Pt(q.origin.X+col, q.origin.Y-depth)
	case south:
		return point.Pt(q.origin.X+col, q.origin.Y+depth)
	case east:
		return point.Pt(q.origin.X+depth, q.origin.Y+col)
	default:
		return point.Pt(q.origin.X-depth, q.origin.Y+col)
	}
}

type row struct {
	depth      int
	start, end rational.Rational
}

func (r row) next() row { return row{r.depth + 1, r.start, r.end} }

// cols returns the column range covered by the row.
func (r row) cols() (lo, hi int) {
	d := rational.Int(int32(r.depth))
	return roundTiesUp(d.Mul(r.start)), roundTiesDown(d.Mul(r.end))
}

// symmetric returns true if the column's center lies within the row's slopes.
func (r row) symmetric(col int) bool {
	d := rational.Int(int32(r.depth))
	c := rational.Int(int32(col))
	return c.Cmp(d.Mul(r.start)) >= 0 && c.Cmp(d.Mul(r.end)) <= 0
}

type scanner struct {
	quadrant
	isBlocking  func(point.Point) bool
	markVisible func(point.Point)
}

func (s scanner) scan(r row) {
	const (
		none = iota
		wall
		floor
	)
	prev := none
	lo, hi := r.cols()
	for col := lo; col <= hi; col++ {
		pt := s.transform(r.depth, col)
		cur := floor
		if s.isBlocking(pt) {
			cur = wall
		}
		if cur == wall || r.symmetric(col) {
			s.markVisible(pt)
		}
		if prev == wall && cur == floor {
			r.start = slope(r.depth, col)
		}
		if prev == floor && cur == wall {
			nr := r.next()
			nr.end = slope(r.depth, col)
			s.scan(nr)
		}
		prev = cur
	}
	if prev == floor {
		s.scan(r.next())
	}
}

// slope returns the slope of the tile's left edge.
func slope(depth, col int) rational.Rational {
	return rational.New(int32(2*col-1), int32(2*depth))
}

func roundTiesUp(n rational.Rational) int {
	return n.Add(rational.New(1, 2)).Floor()
}

func roundTiesDown(n rational.Rational) int {
	return n.Sub(rational.New(1, 2)).Ceil()
}

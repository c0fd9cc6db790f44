package aut

import (
	"fmt"
	"math"
)

// Time is a point on the aut time line; it counts aut since the start of the
// game.
type Time int64

// Duration counts a span of aut.
type Duration int64

const (
	// Turn is the cost of an ordinary action.
	Turn Duration = 10

	// LongTurn is the cost of an action that takes five ordinary turns.
	LongTurn Duration = 5 * Turn
)

// String the time, either as "tNNN" or "EoT if maxed out.
func (t Time) String() string {
	if t == math.MaxInt64 {
		return "EoT"
	}
	return fmt.Sprintf("t%d", int64(t))
}

func (d Duration) String() string { return fmt.Sprintf("%daut", int64(d)) }

// Turns returns the number of whole ordinary turns elapsed at t.
func (t Time) Turns() int64 { return int64(t) / int64(Turn) }

// Sub tract another Time, returning the difference as a Duration.
func (t Time) Sub(ot Time) Duration { return Duration(t - ot) }

// Add a Duration, returning a Time; result is clamped to math.MaxInt64 (the
// end of time) and math.MinInt64.
func (t Time) Add(d Duration) Time {
	if d > 0 && math.MaxInt64-Time(d) < t {
		return math.MaxInt64
	}
	if d < 0 && math.MinInt64-Time(d) > t {
		return math.MinInt64
	}
	return t + Time(d)
}

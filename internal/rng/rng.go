// Package rng is the deterministic random number generator behind map
// generation, enemy placement and cosmetic choices. Its whole state is one
// integer, so it persists with the rest of the world.
package rng

import "github.com/borkshop/rampage/internal/point"

const (
	multiplier = 6364136223846793005
	increment  = 1442695040888963407
)

// Generator is a 64-bit linear congruential generator.
type Generator struct {
	Seed uint64 `json:"seed"`
}

// New returns a generator starting from seed.
func New(seed uint64) *Generator { return &Generator{Seed: seed} }

// Next advances the generator and returns its high bits.
func (g *Generator) Next() uint64 {
	g.Seed = g.Seed*multiplier + increment
	return g.Seed >> 5
}

// NextInRange returns a value in [from, to); from if the range is empty.
func (g *Generator) NextInRange(from, to uint64) uint64 {
	if from >= to {
		return from
	}
	return from + g.Next()%(to-from)
}

// Intn returns a value in [0, n); 0 if n <= 0.
func (g *Generator) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(g.NextInRange(0, uint64(n)))
}

var directions = [9]point.Point{
	{X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: 1, Y: -1}, {X: 0, Y: 0},
	{X: -1, Y: -1}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: -1, Y: 1},
}

// RandomDirection returns one of the eight unit offsets or zero.
func (g *Generator) RandomDirection() point.Point {
	return directions[g.NextInRange(0, uint64(len(directions)))]
}

// Pick returns one of the options; it panics if there are none.
func Pick[T any](g *Generator, options ...T) T {
	return options[g.Next()%uint64(len(options))]
}

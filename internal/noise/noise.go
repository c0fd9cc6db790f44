// Package noise provides seeded 2D simplex noise, used for camera shake.
package noise

import (
	"math"
	"math/rand/v2"
)

const (
	f2 = 0.3660254037844386  // (sqrt(3) - 1) / 2
	g2 = 0.21132486540518713 // (3 - sqrt(3)) / 6
)

// Simplex generates 2D simplex noise from a seed-shuffled permutation table.
// Inputs are scaled by Frequency before sampling.
type Simplex struct {
	Frequency float64
	perm      [512]uint8
}

// New creates a noise generator with the given seed and a frequency of 0.01.
func New(seed uint64) *Simplex {
	sn := &Simplex{Frequency: 0.01}
	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	r.Shuffle(len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })
	for i := range sn.perm {
		sn.perm[i] = p[i&255]
	}
	return sn
}

// At returns noise roughly in the range [-1, 1]; it is continuous in both
// coordinates.
func (sn *Simplex) At(x, y float64) float64 {
	x *= sn.Frequency
	y *= sn.Frequency

	// skew into simplex cell space
	s := (x + y) * f2
	i := math.Floor(x + s)
	j := math.Floor(y + s)

	t := (i + j) * g2
	x0 := x - (i - t)
	y0 := y - (j - t)

	i1, j1 := 0, 1
	if x0 > y0 {
		i1, j1 = 1, 0
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1 + 2*g2
	y2 := y0 - 1 + 2*g2

	ii := int(i) & 255
	jj := int(j) & 255

	n := sn.corner(sn.hash(ii, jj), x0, y0) +
		sn.corner(sn.hash(ii+i1, jj+j1), x1, y1) +
		sn.corner(sn.hash(ii+1, jj+1), x2, y2)
	return 70 * n
}

func (sn *Simplex) hash(i, j int) int {
	return int(sn.perm[i+int(sn.perm[j])])
}

func (sn *Simplex) corner(hash int, x, y float64) float64 {
	t := 0.5 - x*x - y*y
	if t <= 0 {
		return 0
	}
	t *= t
	return t * t * grad(hash, x, y)
}

// grad computes the dot product of a hashed gradient vector and (x, y).
func grad(hash int, x, y float64) float64 {
	h := hash & 7
	u, v := x, y
	if h >= 4 {
		u, v = y, x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

package point

import (
	"fmt"
	"math"
)

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point { return Point{x, y} }

// Point represents a point in <X,Y> 2-space.
type Point struct{ X, Y int }

// Zero is the origin, the zero value of Point.
var Zero = Point{}

// Directions holds the eight unit offsets to a point's neighbors; searches
// that must break ties deterministically walk them in this order.
var Directions = [8]Point{
	{-1, 0}, {1, 0}, {0, -1}, {1, -1},
	{-1, -1}, {0, 1}, {1, 1}, {-1, 1},
}

func (pt Point) String() string { return fmt.Sprintf("(%d,%d)", pt.X, pt.Y) }

// Equal returns true if both this point's X and Y components equal another's.
func (pt Point) Equal(other Point) bool {
	return pt.X == other.X && pt.Y == other.Y
}

// Add adds another point's values to a copy of this point, returning the copy.
func (pt Point) Add(other Point) Point {
	pt.X += other.X
	pt.Y += other.Y
	return pt
}

// Sub subtracts another point's values from a copy of this point, returning
// the copy.
func (pt Point) Sub(other Point) Point {
	pt.X -= other.X
	pt.Y -= other.Y
	return pt
}

// Mul multiplies a copy of this point's values by a constant, returning the
// copy.
func (pt Point) Mul(n int) Point {
	pt.X *= n
	pt.Y *= n
	return pt
}

// Abs returns a copy of this point with its values non-negative.
func (pt Point) Abs() Point {
	if pt.X < 0 {
		pt.X = -pt.X
	}
	if pt.Y < 0 {
		pt.Y = -pt.Y
	}
	return pt
}

// Neg negates a copy of this point, returning the copy.
func (pt Point) Neg() Point {
	pt.X = -pt.X
	pt.Y = -pt.Y
	return pt
}

// Sign returns a copy of this point reduced to the values -1, 0, or 1 depending
// on the sign of the original values.
func (pt Point) Sign() Point {
	pt.X = sign(pt.X)
	pt.Y = sign(pt.Y)
	return pt
}

// Chebyshev returns the king-move distance between two points.
func (pt Point) Chebyshev(other Point) int {
	d := pt.Sub(other).Abs()
	if d.X > d.Y {
		return d.X
	}
	return d.Y
}

// Adjacent returns true if the other point is one of this point's eight
// neighbors.
func (pt Point) Adjacent(other Point) bool {
	return pt.Chebyshev(other) == 1
}

// Neighbors returns the eight points around this one, in Directions order.
func (pt Point) Neighbors() [8]Point {
	var ns [8]Point
	for i, d := range Directions {
		ns[i] = pt.Add(d)
	}
	return ns
}

// F converts the point into float 2-space.
func (pt Point) F() FPoint { return FPoint{float64(pt.X), float64(pt.Y)} }

// Line returns the Bresenham line from a to b, both ends included.
func Line(a, b Point) []Point {
	d := b.Sub(a).Abs()
	s := b.Sub(a).Sign()
	line := make([]Point, 0, max(d.X, d.Y)+1)
	err := d.X - d.Y
	for pt := a; ; {
		line = append(line, pt)
		if pt == b {
			return line
		}
		e2 := 2 * err
		if e2 > -d.Y {
			err -= d.Y
			pt.X += s.X
		}
		if e2 < d.X {
			err += d.X
			pt.Y += s.Y
		}
	}
}

func sign(i int) int {
	if i < 0 {
		return -1
	}
	if i > 0 {
		return 1
	}
	return 0
}

// FPoint is a point in continuous 2-space, in tile units.
type FPoint struct{ X, Y float64 }

// FPt is a convenience constructor for FPoint.
func FPt(x, y float64) FPoint { return FPoint{x, y} }

// Add returns the sum of two points.
func (fp FPoint) Add(other FPoint) FPoint { return FPoint{fp.X + other.X, fp.Y + other.Y} }

// Sub returns the difference of two points.
func (fp FPoint) Sub(other FPoint) FPoint { return FPoint{fp.X - other.X, fp.Y - other.Y} }

// Scale multiplies both components by a constant.
func (fp FPoint) Scale(s float64) FPoint { return FPoint{fp.X * s, fp.Y * s} }

// Lerp interpolates from this point towards another; s=0 is this point, s=1
// the other.
func (fp FPoint) Lerp(other FPoint, s float64) FPoint {
	return FPoint{fp.X + (other.X-fp.X)*s, fp.Y + (other.Y-fp.Y)*s}
}

// Round returns the nearest integer point.
func (fp FPoint) Round() Point {
	return Point{int(math.Round(fp.X)), int(math.Round(fp.Y))}
}

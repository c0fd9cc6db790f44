// Package rational implements exact fractions of 32-bit integers, enough to
// carry slopes through shadowcasting without rounding drift.
package rational

import "fmt"

// Rational is a normalized fraction: Den > 0 and gcd(Num, Den) == 1. The
// zero value is not normalized; use New.
type Rational struct {
	Num, Den int32
}

// New returns the normalized fraction num/den; it panics if den is zero.
func New(num, den int32) Rational {
	return norm(int64(num), int64(den))
}

// Int returns n/1.
func Int(n int32) Rational { return Rational{n, 1} }

func norm(num, den int64) Rational {
	if den == 0 {
		panic("rational: zero denominator")
	}
	if den < 0 {
		num, den = -num, -den
	}
	if g := gcd(abs(num), den); g > 1 {
		num /= g
		den /= g
	}
	return Rational{int32(num), int32(den)}
}

// Add returns r + o.
func (r Rational) Add(o Rational) Rational {
	return norm(int64(r.Num)*int64(o.Den)+int64(o.Num)*int64(r.Den), int64(r.Den)*int64(o.Den))
}

// Sub returns r - o.
func (r Rational) Sub(o Rational) Rational {
	return norm(int64(r.Num)*int64(o.Den)-int64(o.Num)*int64(r.Den), int64(r.Den)*int64(o.Den))
}

// Mul returns r * o.
func (r Rational) Mul(o Rational) Rational {
	return norm(int64(r.Num)*int64(o.Num), int64(r.Den)*int64(o.Den))
}

// Cmp returns -1, 0, or 1 if r is less than, equal to, or greater than o.
func (r Rational) Cmp(o Rational) int {
	x := int64(r.Num) * int64(o.Den)
	y := int64(o.Num) * int64(r.Den)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// Floor rounds towards minus infinity.
func (r Rational) Floor() int {
	if r.Num >= 0 {
		return int(r.Num / r.Den)
	}
	return int((r.Num - r.Den + 1) / r.Den)
}

// Ceil rounds towards plus infinity.
func (r Rational) Ceil() int {
	if r.Num >= 0 {
		return int((r.Num + r.Den - 1) / r.Den)
	}
	return int(r.Num / r.Den)
}

// Float64 returns the nearest float.
func (r Rational) Float64() float64 { return float64(r.Num) / float64(r.Den) }

func (r Rational) String() string { return fmt.Sprintf("%d/%d", r.Num, r.Den) }

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

package moremath

import "math"

// Easing functions map normalized progress t in [0, 1] to eased progress.

// SineInOut eases in and out along a half cosine.
func SineInOut(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// CubicInOut accelerates through the first half and decelerates through the
// second.
func CubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// CubicOut starts fast and decelerates.
func CubicOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// Roundtrip goes from 0 up to 1 at the midpoint and back down to 0.
func Roundtrip(t float64) float64 {
	if t < 0.5 {
		return 2 * t
	}
	return 2 * (1 - t)
}

// Clamp limits x to the range [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// Lerp interpolates from a towards b.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

package point_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/borkshop/rampage/internal/point"
)

func TestPoint_compat(t *testing.T) {
	pt := Pt(2, 5)
	ipt := image.Pt(2, 5)
	assert.Equal(t, ipt, image.Point(pt))
	assert.Equal(t, pt, Point(ipt))
}

func TestPoint_Chebyshev(t *testing.T) {
	assert.Equal(t, 0, Pt(3, 3).Chebyshev(Pt(3, 3)))
	assert.Equal(t, 4, Pt(1, 2).Chebyshev(Pt(5, 0)))
	assert.Equal(t, 3, Pt(0, 0).Chebyshev(Pt(-2, -3)))
	assert.True(t, Pt(1, 1).Adjacent(Pt(2, 2)))
	assert.False(t, Pt(1, 1).Adjacent(Pt(1, 1)))
	assert.False(t, Pt(1, 1).Adjacent(Pt(3, 1)))
}

func TestPoint_Neighbors(t *testing.T) {
	ns := Pt(5, 5).Neighbors()
	assert.Equal(t, Pt(4, 5), ns[0])
	assert.Equal(t, Pt(6, 5), ns[1])
	assert.Equal(t, Pt(4, 6), ns[7])
	seen := make(map[Point]bool)
	for _, n := range ns {
		assert.True(t, Pt(5, 5).Adjacent(n))
		seen[n] = true
	}
	assert.Len(t, seen, 8)
}

func TestLine(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b Point
		want []Point
	}{
		{"single", Pt(2, 2), Pt(2, 2), []Point{{2, 2}}},
		{"horizontal", Pt(0, 0), Pt(3, 0), []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"vertical up", Pt(1, 2), Pt(1, 0), []Point{{1, 2}, {1, 1}, {1, 0}}},
		{"diagonal", Pt(0, 0), Pt(-2, 2), []Point{{0, 0}, {-1, 1}, {-2, 2}}},
		{"shallow", Pt(0, 0), Pt(4, 2), []Point{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			line := Line(tc.a, tc.b)
			assert.Equal(t, tc.want, line)
			for i := 1; i < len(line); i++ {
				assert.True(t, line[i-1].Adjacent(line[i]), "step %v", i)
			}
		})
	}
}

func TestFPoint(t *testing.T) {
	a, b := FPt(0, 0), Pt(4, -2).F()
	assert.Equal(t, FPt(2, -1), a.Lerp(b, 0.5))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, FPt(8, -4), b.Scale(2))
	assert.Equal(t, FPt(4, -2), b.Sub(a).Add(a))
	assert.Equal(t, Pt(3, -1), FPt(2.6, -1.4).Round())
}

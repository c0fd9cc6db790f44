package input

import (
	"unicode"

	"github.com/borkshop/rampage/internal/point"
)

// ParseMove parses an X/Y move from the given rune using the
// classic extended-vi roguelike keybindings of h/j/k/l and
// y/u/b/n. If the extra point is non-zero, then capitalized
// moves are parsed as a componentwise-multiple of it.
//
// Returns the parsed point and true if the rune was
// recognized, zero point and false otherwise.
func ParseMove(ch rune, extra point.Point) (point.Point, bool) {
	if pt, ok := parseExtViDir(ch); ok {
		return pt, true
	}
	if extra != point.Zero {
		if pt, ok := parseExtViDir(unicode.ToLower(ch)); ok {
			return point.Pt(extra.X*pt.X, extra.Y*pt.Y), true
		}
	}
	return point.Zero, false
}

func parseExtViDir(ch rune) (point.Point, bool) {
	switch ch {
	case 'h':
		return point.Pt(-1, 0), true
	case 'l':
		return point.Pt(1, 0), true
	case 'k':
		return point.Pt(0, -1), true
	case 'j':
		return point.Pt(0, 1), true
	case 'y':
		return point.Pt(-1, -1), true
	case 'u':
		return point.Pt(1, -1), true
	case 'b':
		return point.Pt(-1, 1), true
	case 'n':
		return point.Pt(1, 1), true
	}
	return point.Zero, false
}

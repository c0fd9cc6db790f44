// Package input turns terminal key presses into game commands.
package input

import (
	"context"
	"errors"

	"github.com/gdamore/tcell"

	"github.com/borkshop/rampage/internal/game"
	"github.com/borkshop/rampage/internal/point"
)

// ErrQuit is returned by Poll when the player asks to quit.
var ErrQuit = errors.New("quit")

var arrows = map[tcell.Key]point.Point{
	tcell.KeyLeft:  point.Pt(-1, 0),
	tcell.KeyRight: point.Pt(1, 0),
	tcell.KeyUp:    point.Pt(0, -1),
	tcell.KeyDown:  point.Pt(0, 1),
}

// IsQuit returns true for the keys that end the game: q, Q and Ctrl-C.
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// FromKey maps a key press to a game command; it returns false for keys
// that mean nothing to the game.
func FromKey(ev *tcell.EventKey) (game.Command, bool) {
	switch ev.Key() {
	case tcell.KeyEnter:
		return game.Command{Kind: game.CmdConfirm}, true
	case tcell.KeyTab:
		return game.Command{Kind: game.CmdCycle}, true
	case tcell.KeyEscape:
		return game.Command{Kind: game.CmdCancel}, true
	case tcell.KeyRune:
	default:
		if dir, ok := arrows[ev.Key()]; ok {
			return game.Command{Kind: game.CmdMove, Dir: dir}, true
		}
		return game.Command{}, false
	}

	r := ev.Rune()
	switch {
	case r == '.' || r == ' ':
		return game.Command{Kind: game.CmdWait}, true
	case r == '>':
		return game.Command{Kind: game.CmdConfirm}, true
	case r >= '1' && r <= '5':
		return game.Command{Kind: game.CmdAbility, Ability: game.Ability(r-'1') + game.AbilityRockThrow}, true
	}
	if dir, ok := ParseMove(r, point.Zero); ok {
		return game.Command{Kind: game.CmdMove, Dir: dir}, true
	}
	return game.Command{}, false
}

// Poll reads events from the screen until the context is done, the screen
// is finalized, or the player quits, sending game commands to cmds.
func Poll(ctx context.Context, scr tcell.Screen, cmds chan<- game.Command) error {
	for {
		ev := scr.PollEvent()
		if ev == nil {
			return nil
		}
		var cmd game.Command
		switch ev := ev.(type) {
		case *tcell.EventResize:
			scr.Sync()
			continue
		case *tcell.EventKey:
			if IsQuit(ev) {
				return ErrQuit
			}
			var ok bool
			if cmd, ok = FromKey(ev); !ok {
				continue
			}
		default:
			continue
		}
		select {
		case cmds <- cmd:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

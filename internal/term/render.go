// Package term draws a game world on a terminal screen.
package term

import (
	"fmt"

	"github.com/gdamore/tcell"

	"github.com/borkshop/rampage/internal/ecs"
	"github.com/borkshop/rampage/internal/game"
	"github.com/borkshop/rampage/internal/point"
	"github.com/borkshop/rampage/internal/tilemap"
)

// hudLines is how many rows below the map hold the status line and the
// most recent messages.
const hudLines = 4

var (
	styleWall   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleFloor  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleStairs = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleBlood  = tcell.StyleDefault.Foreground(tcell.ColorDarkRed)
	styleStatus = tcell.StyleDefault.Reverse(true)
	styleBanner = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)

	dangerBG = tcell.ColorMaroon
	aimBG    = tcell.ColorNavy
)

var sprites = [...]struct {
	ch    rune
	color tcell.Color
}{
	game.SpriteDwarf:        {'@', tcell.ColorLightGreen},
	game.SpriteGoblin:       {'g', tcell.ColorGreen},
	game.SpriteGoblinBrute:  {'G', tcell.ColorOlive},
	game.SpriteGoblinArcher: {'a', tcell.ColorTeal},
	game.SpriteRock:         {'*', tcell.ColorSilver},
	game.SpriteArrow:        {'/', tcell.ColorSilver},
}

// Renderer draws worlds on a tcell screen; the top of the screen is the map
// view, the bottom few rows the HUD.
type Renderer struct {
	scr tcell.Screen
	cam Camera
}

// NewRenderer creates a renderer for an initialized screen.
func NewRenderer(scr tcell.Screen) *Renderer {
	return &Renderer{scr: scr}
}

// Camera returns the camera the map view follows; give it to the world so
// that camera animations move it.
func (r *Renderer) Camera() *Camera { return &r.cam }

// Draw draws one frame and shows it.
func (r *Renderer) Draw(w *game.World) {
	r.scr.Clear()
	width, height := r.scr.Size()
	view := point.Pt(width, max(height-hudLines, 1))

	player, ok := w.Player()
	if ok {
		r.drawMap(w, w.FovOf(player), view)
		r.drawHUD(w, player, point.Pt(width, height), view.Y)
	}
	if w.UI.State == game.UIPostDeath {
		r.banner(view, "You died.", "Press q to quit.")
	}
	r.scr.Show()
}

func (r *Renderer) drawMap(w *game.World, fov game.Fov, view point.Point) {
	tm := w.TileMap
	cell := func(pt point.Point) (point.Point, bool) {
		at := r.cam.ToScreen(pt.F(), view)
		return at, at.X >= 0 && at.Y >= 0 && at.X < view.X && at.Y < view.Y
	}

	for y := 0; y < view.Y; y++ {
		for x := 0; x < view.X; x++ {
			pt := r.cam.ToWorld(point.Pt(x, y), view)
			if !fov.Contains(pt) {
				continue
			}
			ch, style := tileGlyph(tm, pt)
			r.scr.SetContent(x, y, ch, nil, style)
		}
	}

	for _, pt := range w.DangerTiles() {
		if at, ok := cell(pt); ok && fov.Contains(pt) {
			r.restyle(at, func(s tcell.Style) tcell.Style { return s.Background(dangerBG) })
		}
	}

	for _, ent := range w.Actors() {
		if !fov.Contains(w.Pos(ent)) {
			continue
		}
		a := w.Actor(ent)
		at := r.cam.ToScreen(a.DrawPos, view)
		if at.X < 0 || at.Y < 0 || at.X >= view.X || at.Y >= view.Y {
			continue
		}
		sp := sprites[a.Sprite]
		r.put(at, sp.ch, healthColor(sp.color, a.DrawHealth))
	}

	for _, proj := range w.Projectiles() {
		at := r.cam.ToScreen(proj.At, view)
		if at.X >= 0 && at.Y >= 0 && at.X < view.X && at.Y < view.Y {
			sp := sprites[proj.Sprite]
			r.put(at, sp.ch, sp.color)
		}
	}

	if w.UI.State == game.UIAbility {
		if player, ok := w.Player(); ok {
			path, _, _ := w.AimLine(player, w.Ability.Cursor)
			for _, pt := range path[min(1, len(path)):] {
				if at, ok := cell(pt); ok {
					r.restyle(at, func(s tcell.Style) tcell.Style { return s.Background(aimBG) })
				}
			}
		}
		if at, ok := cell(w.Ability.Cursor); ok {
			r.restyle(at, func(s tcell.Style) tcell.Style { return s.Reverse(true) })
		}
	}
}

func tileGlyph(tm *tilemap.TileMap, pt point.Point) (rune, tcell.Style) {
	switch {
	case pt == tm.UpStairs:
		return '<', styleStairs
	case pt == tm.DownStairs:
		return '>', styleStairs
	}
	switch tm.At(pt) {
	case tilemap.Wall:
		return '#', styleWall
	case tilemap.Floor:
		if _, ok := tm.DecorOn(pt); ok {
			return ',', styleBlood
		}
		return '.', styleFloor
	}
	return ' ', tcell.StyleDefault
}

// healthColor tints a hurt actor: yellow above half health, red below.
func healthColor(base tcell.Color, ratio float64) tcell.Color {
	switch {
	case ratio >= 1:
		return base
	case ratio > 0.5:
		return tcell.ColorYellow
	}
	return tcell.ColorRed
}

// put draws a glyph over a cell, keeping its background.
func (r *Renderer) put(at point.Point, ch rune, fg tcell.Color) {
	_, _, style, _ := r.scr.GetContent(at.X, at.Y)
	r.scr.SetContent(at.X, at.Y, ch, nil, style.Foreground(fg))
}

func (r *Renderer) restyle(at point.Point, f func(tcell.Style) tcell.Style) {
	ch, comb, style, _ := r.scr.GetContent(at.X, at.Y)
	r.scr.SetContent(at.X, at.Y, ch, comb, f(style))
}

func (r *Renderer) drawHUD(w *game.World, player ecs.Entity, sz point.Point, top int) {
	a := w.Actor(player)
	status := fmt.Sprintf("HP %d/%d", max(a.HP.Current, 0), a.HP.Max)
	if ps, ok := w.PlayerState(player); ok {
		status += fmt.Sprintf("  Pulse %.0f", ps.Pulse)
	}
	status += fmt.Sprintf("  %v", w.TurnCount)
	if w.UI.State == game.UIAbility {
		status += fmt.Sprintf("  [%v: move to aim, tab cycles, enter confirms, esc cancels]", w.Ability.Ability)
	}
	r.text(point.Pt(0, top), sz.X, status, styleStatus, true)
	for i, line := range w.Messages.Last(hudLines - 1) {
		r.text(point.Pt(0, top+1+i), sz.X, line, tcell.StyleDefault, false)
	}
}

func (r *Renderer) banner(view point.Point, lines ...string) {
	y := view.Y/2 - len(lines)/2
	for i, line := range lines {
		x := max((view.X-len([]rune(line)))/2, 0)
		r.text(point.Pt(x, y+i), view.X-x, line, styleBanner, false)
	}
}

// text writes a string at a point, cut to width; fill pads the rest of the
// width with styled blanks.
func (r *Renderer) text(at point.Point, width int, s string, style tcell.Style, fill bool) {
	x := 0
	for _, ch := range s {
		if x >= width {
			return
		}
		r.scr.SetContent(at.X+x, at.Y, ch, nil, style)
		x++
	}
	for ; fill && x < width; x++ {
		r.scr.SetContent(at.X+x, at.Y, ' ', nil, style)
	}
}

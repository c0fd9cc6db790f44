package term

import "github.com/borkshop/rampage/internal/point"

// Camera tracks which world point the map view is centered on; it
// implements game.Camera.
type Camera struct {
	center point.FPoint
	shake  point.FPoint
}

// Center returns the world point at the middle of the view, not counting
// shake.
func (c *Camera) Center() point.FPoint { return c.center }

// MoveRel pans the view.
func (c *Camera) MoveRel(delta point.FPoint) { c.center = c.center.Add(delta) }

// SetShake offsets the view until the next call.
func (c *Camera) SetShake(offset point.FPoint) { c.shake = offset }

// ToScreen maps a world point to the cell it is drawn in, within a view of
// size sz.
func (c *Camera) ToScreen(pt point.FPoint, sz point.Point) point.Point {
	at, eye := pt.Round(), c.eye()
	return point.Pt(at.X-eye.X+sz.X/2, at.Y-eye.Y+sz.Y/2)
}

// ToWorld maps a view cell back to the world tile drawn there.
func (c *Camera) ToWorld(cell point.Point, sz point.Point) point.Point {
	eye := c.eye()
	return point.Pt(cell.X-sz.X/2+eye.X, cell.Y-sz.Y/2+eye.Y)
}

func (c *Camera) eye() point.Point { return c.center.Add(c.shake).Round() }

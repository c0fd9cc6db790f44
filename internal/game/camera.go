package game

import "github.com/borkshop/rampage/internal/point"

//go:generate go tool mockgen -destination=./mocks/camera_mock.go -package=mocks . Camera

// Camera is the view that camera animations steer, in tile units.
type Camera interface {
	// Center returns the world point at the middle of the view.
	Center() point.FPoint

	// MoveRel pans the view.
	MoveRel(delta point.FPoint)

	// SetShake offsets the view without moving its center.
	SetShake(offset point.FPoint)
}

type nopCamera struct{}

func (nopCamera) Center() point.FPoint { return point.FPoint{} }
func (nopCamera) MoveRel(point.FPoint) {}
func (nopCamera) SetShake(point.FPoint) {}

// Package object defines the game entities: the player ship, obstacles,
// projectiles and the pools that hold them.
package object

import (
	"github.com/tomz197/dodger/internal/draw"
	"github.com/tomz197/dodger/internal/input"
	"github.com/tomz197/dodger/internal/physics"
)

// Direction is an alias for the input package's Direction type.
type Direction = input.Direction

// Screen represents the playfield dimensions in logical units.
type Screen struct {
	Width  float64
	Height float64
}

// Center returns the center of the playfield.
func (s Screen) Center() (x, y float64) {
	return s.Width / 2, s.Height / 2
}

// Entity is anything that lives in a Pool.
type Entity interface {
	// Advance moves the entity by its per-tick velocity.
	Advance()

	// Rect returns the entity's bounding box.
	Rect() physics.Rect

	// Draw draws the entity onto the terminal canvas.
	Draw(c *draw.Canvas)
}

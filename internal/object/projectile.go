package object

import (
	"github.com/tomz197/dodger/internal/draw"
	"github.com/tomz197/dodger/internal/physics"
)

// Projectile is a bullet fired by the player. It travels right at a constant speed.
type Projectile struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // Rightward units per tick
}

// NewProjectile creates a projectile at the given position.
func NewProjectile(x, y, width, height, speed float64) *Projectile {
	return &Projectile{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Speed:  speed,
	}
}

// Advance moves the projectile right by its speed.
func (p *Projectile) Advance() {
	p.X += p.Speed
}

// OffScreen reports whether the projectile has passed the right edge of screen.
func (p *Projectile) OffScreen(screen Screen) bool {
	return p.X > screen.Width
}

// Rect returns the projectile's bounding box.
func (p *Projectile) Rect() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// Draw renders the projectile.
func (p *Projectile) Draw(c *draw.Canvas) {
	c.FillRect(p.X, p.Y, p.Width, p.Height)
}

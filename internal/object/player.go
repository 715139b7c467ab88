package object

import (
	"github.com/tomz197/dodger/internal/draw"
	"github.com/tomz197/dodger/internal/input"
	"github.com/tomz197/dodger/internal/physics"
)

// Player is the ship controlled by the keyboard.
type Player struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Speed         float64 // Units per tick while a direction is held
	DX, DY        float64 // Current velocity
}

// NewPlayer creates a stationary player at the given position.
func NewPlayer(x, y, width, height, speed float64) *Player {
	return &Player{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Speed:  speed,
	}
}

// SetVelocity starts movement in dir. Only the axis of dir changes, so
// pressing the opposite direction overwrites rather than cancels.
func (p *Player) SetVelocity(dir Direction) {
	switch dir {
	case input.Up:
		p.DY = -p.Speed
	case input.Down:
		p.DY = p.Speed
	case input.Left:
		p.DX = -p.Speed
	case input.Right:
		p.DX = p.Speed
	}
}

// ClearVelocity stops movement on the axis of dir. It does not restore a
// still-held opposite direction.
func (p *Player) ClearVelocity(dir Direction) {
	switch dir {
	case input.Up, input.Down:
		p.DY = 0
	case input.Left, input.Right:
		p.DX = 0
	}
}

// Update applies velocity and then clamps the ship inside the screen.
func (p *Player) Update(screen Screen) {
	p.X += p.DX
	p.Y += p.DY

	p.X = physics.Clamp(p.X, 0, screen.Width-p.Width)
	p.Y = physics.Clamp(p.Y, 0, screen.Height-p.Height)
}

// Muzzle returns the top-left spawn position for a projectile of the given
// size: the ship's right edge, vertically centered.
func (p *Player) Muzzle(width, height float64) (x, y float64) {
	return p.X + p.Width, p.Y + p.Height/2 - height/2
}

// Rect returns the ship's bounding box.
func (p *Player) Rect() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// Draw renders the ship as a right-pointing triangle filling its bounding box.
func (p *Player) Draw(c *draw.Canvas) {
	triangle := c.BorrowPoints(3)
	triangle[0] = draw.Point{X: p.X + p.Width, Y: p.Y + p.Height/2}
	triangle[1] = draw.Point{X: p.X, Y: p.Y}
	triangle[2] = draw.Point{X: p.X, Y: p.Y + p.Height}
	c.DrawPolygon(triangle, true)
}

package object

import (
	"github.com/tomz197/dodger/internal/draw"
	"github.com/tomz197/dodger/internal/physics"
)

// Obstacle scrolls from the right edge towards the player.
type Obstacle struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // Leftward units per tick
}

// NewObstacle creates an obstacle at the given position.
func NewObstacle(x, y, width, height, speed float64) *Obstacle {
	return &Obstacle{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Speed:  speed,
	}
}

// Advance moves the obstacle left by its speed.
func (o *Obstacle) Advance() {
	o.X -= o.Speed
}

// OffScreen reports whether the obstacle has fully left the screen on the left.
func (o *Obstacle) OffScreen() bool {
	return o.X+o.Width < 0
}

// Rect returns the obstacle's bounding box.
func (o *Obstacle) Rect() physics.Rect {
	return physics.Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
}

// Draw renders the obstacle as an outlined block with a hollow core.
func (o *Obstacle) Draw(c *draw.Canvas) {
	pts := c.BorrowPoints(4)
	pts[0] = draw.Point{X: o.X, Y: o.Y}
	pts[1] = draw.Point{X: o.X + o.Width, Y: o.Y}
	pts[2] = draw.Point{X: o.X + o.Width, Y: o.Y + o.Height}
	pts[3] = draw.Point{X: o.X, Y: o.Y + o.Height}
	c.DrawPolygon(pts, false)

	inset := o.Width / 4
	c.FillRect(o.X+inset, o.Y+o.Height/4, o.Width-2*inset, o.Height/2)
}

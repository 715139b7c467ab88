// Package tui is a full-screen terminal frontend built on tcell.
package tui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/dodger/internal/loop"
	"github.com/tomz197/dodger/internal/physics"
)

const block = '█'

var (
	playerStyle     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	obstacleStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	projectileStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	textStyle       = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

// Renderer draws views into a tcell screen, one cell per scaled unit.
type Renderer struct {
	screen tcell.Screen

	// Leaderboard lines are shown below the final score once the game is over.
	Leaderboard []string
}

// Ensure Renderer satisfies loop.Renderer.
var _ loop.Renderer = (*Renderer)(nil)

// NewRenderer creates a renderer for an initialized screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one frame and shows it.
func (r *Renderer) Render(v loop.View) error {
	cols, rows := r.screen.Size()
	if cols <= 0 || rows <= 0 {
		return fmt.Errorf("tui: screen has no size (%dx%d)", cols, rows)
	}
	sx := float64(cols) / v.Screen.Width
	sy := float64(rows) / v.Screen.Height

	r.screen.Clear()

	r.fillRect(v.Player.Rect(), sx, sy, playerStyle)
	for _, o := range v.Obstacles {
		r.fillRect(o.Rect(), sx, sy, obstacleStyle)
	}
	for _, p := range v.Projectiles {
		r.fillRect(p.Rect(), sx, sy, projectileStyle)
	}

	if v.Over {
		r.drawGameOver(v, cols, rows)
	} else {
		r.drawText(1, 0, fmt.Sprintf("Score: %d", v.Score))
	}

	r.screen.Show()
	return nil
}

// fillRect fills the cells whose centers lie inside rect, scaled to the
// screen. Anything on screen covers at least one cell.
func (r *Renderer) fillRect(rect physics.Rect, sx, sy float64, style tcell.Style) {
	cols, rows := r.screen.Size()

	c0 := int(math.Ceil(rect.X*sx - 0.5))
	c1 := int(math.Ceil(rect.Right()*sx - 0.5))
	r0 := int(math.Ceil(rect.Y*sy - 0.5))
	r1 := int(math.Ceil(rect.Bottom()*sy - 0.5))
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if r1 <= r0 {
		r1 = r0 + 1
	}

	c0, c1 = max(c0, 0), min(c1, cols)
	r0, r1 = max(r0, 0), min(r1, rows)
	for y := r0; y < r1; y++ {
		for x := c0; x < c1; x++ {
			r.screen.SetContent(x, y, block, nil, style)
		}
	}
}

func (r *Renderer) drawGameOver(v loop.View, cols, rows int) {
	centerX, centerY := cols/2, rows/2
	r.drawCentered(centerX, centerY-2, "GAME OVER")
	r.drawCentered(centerX, centerY, fmt.Sprintf("Final score: %d", v.Score))
	r.drawCentered(centerX, centerY+2, "Press Q to quit")

	if len(r.Leaderboard) == 0 {
		return
	}
	row := centerY + 4
	r.drawCentered(centerX, row, "Top scores")
	for i, line := range r.Leaderboard {
		r.drawCentered(centerX, row+1+i, line)
	}
}

func (r *Renderer) drawCentered(centerX, y int, s string) {
	r.drawText(centerX-len(s)/2, y, s)
}

func (r *Renderer) drawText(x, y int, s string) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, textStyle)
	}
}

package loop

import (
	"fmt"
	"io"

	"github.com/tomz197/dodger/internal/draw"
	"github.com/tomz197/dodger/internal/loop/config"
	"github.com/tomz197/dodger/internal/object"
)

// TerminalRenderer draws views to an ANSI terminal using the half-block canvas.
type TerminalRenderer struct {
	canvas       *draw.Canvas
	out          *draw.ChunkWriter // Accumulates one frame for chunked output
	termSizeFunc draw.TermSizeFunc

	// Notice is a one-line message shown at the bottom (shutdown, inactivity).
	Notice string
	// Leaderboard lines are shown below the final score once the game is over.
	Leaderboard []string
}

// Ensure TerminalRenderer satisfies Renderer.
var _ Renderer = (*TerminalRenderer)(nil)

// NewTerminalRenderer creates a renderer mapping the logical screen onto the terminal.
func NewTerminalRenderer(w io.Writer, termSizeFunc draw.TermSizeFunc, screen object.Screen) *TerminalRenderer {
	termWidth, termHeight, _ := draw.TermSize(termSizeFunc)
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, screen.Width, screen.Height)
	canvas.SetOffset(offsetCol, offsetRow)

	return &TerminalRenderer{
		canvas:       canvas,
		out:          draw.NewChunkWriter(w, offsetCol, offsetRow),
		termSizeFunc: termSizeFunc,
	}
}

// Render draws one full frame and flushes it in a single write.
func (r *TerminalRenderer) Render(v View) error {
	r.updateScreen()

	draw.ClearScreen(r.out)
	r.canvas.Clear()

	v.Player.Draw(r.canvas)
	for _, o := range v.Obstacles {
		o.Draw(r.canvas)
	}
	for _, p := range v.Projectiles {
		p.Draw(r.canvas)
	}

	if err := r.canvas.Render(r.out); err != nil {
		return err
	}
	if err := r.canvas.RenderBorder(r.out); err != nil {
		return err
	}
	r.drawUI(v)

	return r.out.Flush()
}

// updateScreen follows terminal resizes, clamping to the max render
// resolution. An unusable size keeps the previous layout.
func (r *TerminalRenderer) updateScreen() {
	termWidth, termHeight, err := draw.TermSize(r.termSizeFunc)
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	r.canvas.Resize(renderWidth, renderHeight)
	r.canvas.SetOffset(offsetCol, offsetRow)
	r.out.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = termWidth
	renderHeight = termHeight
	if renderWidth > config.MaxTermWidth {
		renderWidth = config.MaxTermWidth
	}
	if renderHeight > config.MaxTermHeight {
		renderHeight = config.MaxTermHeight
	}
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// drawUI draws the HUD and, once the game is over, the game-over screen.
func (r *TerminalRenderer) drawUI(v View) {
	termWidth := r.canvas.TerminalWidth()
	termHeight := r.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if v.Over {
		r.drawGameOverScreen(v, centerX, centerY)
	} else {
		object.Text{X: 2, Y: 1, Value: fmt.Sprintf("Score: %d", v.Score)}.Draw(r.out)
	}

	if r.Notice != "" {
		object.CenteredText(centerX, termHeight, r.Notice).Draw(r.out)
	}
}

// drawGameOverScreen draws the final score and the leaderboard.
func (r *TerminalRenderer) drawGameOverScreen(v View, centerX, centerY int) {
	object.CenteredText(centerX, centerY-2, "GAME OVER").Draw(r.out)
	object.CenteredText(centerX, centerY, fmt.Sprintf("Final score: %d", v.Score)).Draw(r.out)
	object.CenteredText(centerX, centerY+2, "Press Q to quit").Draw(r.out)

	if len(r.Leaderboard) == 0 {
		return
	}
	row := centerY + 4
	object.CenteredText(centerX, row, "Top scores").Draw(r.out)
	for i, line := range r.Leaderboard {
		object.CenteredText(centerX, row+1+i, line).Draw(r.out)
	}
}

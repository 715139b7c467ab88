package object

import (
	"unicode/utf8"

	"github.com/tomz197/dodger/internal/draw"
)

// Text is a HUD label. Coordinates are 1-based terminal cells relative to the
// render area.
type Text struct {
	X     int
	Y     int
	Value string
}

// CenteredText returns a label horizontally centered on centerX.
func CenteredText(centerX, y int, value string) Text {
	return Text{X: centerX - utf8.RuneCountInString(value)/2, Y: y, Value: value}
}

// Draw writes the label at its position.
func (t Text) Draw(w *draw.ChunkWriter) {
	if t.Value == "" {
		return
	}
	x := t.X
	y := t.Y
	if x < 1 {
		x = 1
	}
	if y < 1 {
		y = 1
	}
	w.WriteAt(x, y, t.Value)
}

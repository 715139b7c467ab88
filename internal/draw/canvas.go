package draw

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strings"
)

// Canvas is a monochrome pixel buffer rendered with half-block characters, so
// every terminal cell holds two vertically stacked pixels. Drawing calls take
// logical coordinates and scale them to the current terminal size.
type Canvas struct {
	cols, rows int    // Terminal cells
	height     int    // Pixel rows: rows * 2
	pixels     []bool // [y*cols + x]

	logicalW, logicalH float64
	scaleX, scaleY     float64 // Pixels per logical unit

	// 0-based terminal offset of the canvas, non-zero when the terminal is
	// larger than the maximum render size.
	offCol, offRow int

	frame     strings.Builder
	scaled    []Point
	crossings []float64
	points    []Point
}

// NewScaledCanvas creates a canvas of cols x rows terminal cells mapping a
// logicalW x logicalH coordinate space.
func NewScaledCanvas(cols, rows int, logicalW, logicalH float64) *Canvas {
	c := &Canvas{logicalW: logicalW, logicalH: logicalH}
	c.Resize(cols, rows)
	return c
}

// Resize adapts the canvas to new terminal dimensions. The logical size is kept.
func (c *Canvas) Resize(cols, rows int) {
	if cols != c.cols || rows != c.rows || c.pixels == nil {
		c.cols, c.rows, c.height = cols, rows, rows*2
		c.pixels = make([]bool, c.height*cols)
	}
	c.scaleX = float64(cols) / c.logicalW
	c.scaleY = float64(c.height) / c.logicalH
}

// SetOffset places the canvas at 0-based terminal column col and row row.
func (c *Canvas) SetOffset(col, row int) {
	c.offCol, c.offRow = col, row
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.cols && y >= 0 && y < c.height {
		c.pixels[y*c.cols+x] = true
	}
}

// IsSet reports whether the pixel at (px, py) is set.
func (c *Canvas) IsSet(px, py int) bool {
	if px < 0 || px >= c.cols || py < 0 || py >= c.height {
		return false
	}
	return c.pixels[py*c.cols+px]
}

// toPixel maps a logical coordinate onto the first pixel whose center lies at
// or beyond it.
func toPixel(v, scale float64) int {
	return int(math.Ceil(v*scale - 0.5))
}

// FillRect fills an axis-aligned rectangle given in logical coordinates.
// Every pixel whose center lies inside the scaled rectangle is set; a rectangle
// thinner than one pixel still marks the pixel under its top-left corner.
func (c *Canvas) FillRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, x1 := toPixel(x, c.scaleX), toPixel(x+w, c.scaleX)
	y0, y1 := toPixel(y, c.scaleY), toPixel(y+h, c.scaleY)
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)

	x0, x1 = max(x0, 0), min(x1, c.cols)
	y0, y1 = max(y0, 0), min(y1, c.height)
	for py := y0; py < y1; py++ {
		row := c.pixels[py*c.cols : (py+1)*c.cols]
		for px := x0; px < x1; px++ {
			row[px] = true
		}
	}
}

// DrawLine draws a line between two logical points (Bresenham).
func (c *Canvas) DrawLine(p1, p2 Point) {
	x, y := int(math.Round(p1.X*c.scaleX)), int(math.Round(p1.Y*c.scaleY))
	x2, y2 := int(math.Round(p2.X*c.scaleX)), int(math.Round(p2.Y*c.scaleY))

	dx, dy := abs(x2-x), abs(y2-y)
	sx, sy := 1, 1
	if x > x2 {
		sx = -1
	}
	if y > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x, y)
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// DrawPolygon draws the outline of a closed polygon, filling it first when
// filled is true.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	n := len(points)
	if n < 3 {
		return
	}
	if filled {
		c.fillPolygon(points)
	}
	for i := range points {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// fillPolygon scanline-fills a polygon in pixel space.
func (c *Canvas) fillPolygon(points []Point) {
	c.scaled = c.scaled[:0]
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		sp := Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
		c.scaled = append(c.scaled, sp)
		minY, maxY = min(minY, sp.Y), max(maxY, sp.Y)
	}

	n := len(c.scaled)
	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5

		c.crossings = c.crossings[:0]
		for i, p1 := range c.scaled {
			p2 := c.scaled[(i+1)%n]
			if (p1.Y <= scanY) != (p2.Y <= scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				c.crossings = append(c.crossings, p1.X+t*(p2.X-p1.X))
			}
		}
		slices.Sort(c.crossings)

		for i := 0; i+1 < len(c.crossings); i += 2 {
			for x := int(math.Ceil(c.crossings[i])); x <= int(math.Floor(c.crossings[i+1])); x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// Render writes every non-empty cell as a positioned half-block character.
// Empty cells are skipped; the caller clears the screen between frames.
func (c *Canvas) Render(w io.Writer) error {
	c.frame.Reset()
	for row := 0; row < c.rows; row++ {
		top := c.pixels[2*row*c.cols : (2*row+1)*c.cols]
		bottom := c.pixels[(2*row+1)*c.cols : (2*row+2)*c.cols]
		for col := range c.cols {
			var ch rune
			switch {
			case top[col] && bottom[col]:
				ch = BlockFull
			case top[col]:
				ch = BlockUpperHalf
			case bottom[col]:
				ch = BlockLowerHalf
			default:
				continue
			}
			fmt.Fprintf(&c.frame, "\033[%d;%dH%c", row+1+c.offRow, col+1+c.offCol, ch)
		}
	}
	return writeChunks(w, c.frame.String())
}

// RenderBorder frames the canvas when it is offset inside a larger terminal:
// horizontal bars need a row offset, vertical bars a column offset, and
// corners need both.
func (c *Canvas) RenderBorder(w io.Writer) error {
	var b strings.Builder
	left, right := c.offCol, c.offCol+c.cols+1
	top, bottom := c.offRow, c.offRow+c.rows+1
	bar := strings.Repeat("─", c.cols)

	if c.offRow >= 1 {
		if c.offCol >= 1 {
			fmt.Fprintf(&b, "\033[%d;%dH┌%s┐", top, left, bar)
			fmt.Fprintf(&b, "\033[%d;%dH└%s┘", bottom, left, bar)
		} else {
			fmt.Fprintf(&b, "\033[%d;%dH%s", top, left+1, bar)
			fmt.Fprintf(&b, "\033[%d;%dH%s", bottom, left+1, bar)
		}
	}
	if c.offCol >= 1 {
		for row := top + 1; row < bottom; row++ {
			fmt.Fprintf(&b, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}
	return writeChunks(w, b.String())
}

// TerminalWidth returns the canvas width in terminal columns.
func (c *Canvas) TerminalWidth() int {
	return c.cols
}

// TerminalHeight returns the canvas height in terminal rows.
func (c *Canvas) TerminalHeight() int {
	return c.rows
}

// BorrowPoints returns a scratch slice of n points, valid until the next call.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.points) < n {
		c.points = make([]Point, n)
	}
	return c.points[:n]
}

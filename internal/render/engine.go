package render

import (
	"strings"

	"noisefield/internal/field"
)

// StatusRows is the number of terminal rows reserved for the status line.
const StatusRows = 1

var sentinel = Cell{Ch: '\x00', FgR: 255, BgB: 255, Bold: true}

// Engine is a per-session double-buffer diff renderer. Each frame it stamps
// the sampled grid through a palette into the back buffer, diffs against the
// previous frame, and emits only the cells that changed.
type Engine struct {
	width, height int
	current       [][]Cell
	next          [][]Cell
	firstFrame    bool
}

// NewEngine creates a renderer for the given terminal dimensions.
func NewEngine(width, height int) *Engine {
	e := &Engine{
		width:      width,
		height:     height,
		firstFrame: true,
	}
	e.current = e.makeBuffer(sentinel)
	e.next = e.makeBuffer(Cell{})
	return e
}

// Resize adjusts the renderer for a new terminal size.
func (e *Engine) Resize(width, height int) {
	e.width = width
	e.height = height
	e.current = e.makeBuffer(sentinel)
	e.next = e.makeBuffer(Cell{})
	e.firstFrame = true
}

func (e *Engine) makeBuffer(fill Cell) [][]Cell {
	buf := make([][]Cell, e.height)
	for y := 0; y < e.height; y++ {
		buf[y] = make([]Cell, e.width)
		for x := 0; x < e.width; x++ {
			buf[y][x] = fill
		}
	}
	return buf
}

// GridSize returns the field grid dimensions that fill a terminal of the
// given size, leaving room for the status line.
func GridSize(termW, termH int) (int, int) {
	w := termW / CellWidth
	h := termH - StatusRows
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// Render produces the ANSI byte output for one frame of the grid, with the
// status line pinned to the bottom row.
func (e *Engine) Render(g *field.Grid, pal Palette, status string, termW, termH int) string {
	if termW != e.width || termH != e.height {
		e.Resize(termW, termH)
	}

	// Clear next buffer
	bgCell := Cell{Ch: ' ', BgR: 10, BgG: 10, BgB: 15}
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			e.next[y][x] = bgCell
		}
	}

	// Stamp field samples, each CellWidth columns wide
	fieldRows := e.height - StatusRows
	for gy := 0; gy < g.Height && gy < fieldRows; gy++ {
		for gx := 0; gx < g.Width; gx++ {
			c := pal.Shade(g.At(gx, gy))
			for i := 0; i < CellWidth; i++ {
				sx := gx*CellWidth + i
				if sx >= e.width {
					break
				}
				e.next[gy][sx] = c
			}
		}
	}

	e.drawStatus(status)

	// Diff current vs next, emit only changed cells
	var sb strings.Builder
	sb.Grow(16384)

	lastRow, lastCol := -1, -1
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			nc := e.next[y][x]
			if e.firstFrame || nc != e.current[y][x] {
				// Only emit cursor position if not consecutive
				if y != lastRow || x != lastCol {
					sb.WriteString(MoveTo(y+1, x+1))
				}
				WriteCellSGR(&sb, nc)
				lastRow = y
				lastCol = x + 1
			}
		}
	}

	if sb.Len() > 0 {
		sb.WriteString(Reset)
	}

	// Swap buffers
	e.current, e.next = e.next, e.current
	e.firstFrame = false

	return sb.String()
}

// drawStatus writes the status text into the bottom row, truncated to fit.
func (e *Engine) drawStatus(status string) {
	if e.height < 1 {
		return
	}
	y := e.height - 1
	runes := []rune(status)
	for x := 0; x < e.width; x++ {
		c := Cell{Ch: ' ', FgR: 220, FgG: 220, FgB: 220, BgR: 30, BgG: 30, BgB: 40}
		if x < len(runes) {
			c.Ch = runes[x]
		}
		e.next[y][x] = c
	}
}

package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// RenderBuffer is a compositor backed by a flat cell array with dirty tracking
type RenderBuffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
	base    tcell.Style
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int, base tcell.Style) *RenderBuffer {
	b := &RenderBuffer{base: base}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// SetBase changes the style used for cleared cells
func (b *RenderBuffer) SetBase(base tcell.Style) {
	b.base = base
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Style: b.base}
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// Width returns the buffer width in cells
func (b *RenderBuffer) Width() int { return b.width }

// Height returns the buffer height in cells
func (b *RenderBuffer) Height() int { return b.height }

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// ===== COMPOSITOR API =====

// Set writes a rune with style; out of bounds writes are dropped
func (b *RenderBuffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Style: style}
	b.touched[idx] = true
}

// SetString writes s left to right and returns the column after the last rune
// Wide runes occupy two columns
func (b *RenderBuffer) SetString(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		b.Set(x, y, r, style)
		w := runewidth.RuneWidth(r)
		if w == 2 {
			b.Set(x+1, y, 0, style)
		}
		if w < 1 {
			w = 1
		}
		x += w
	}
	return x
}

// SetStringCentered writes s centered on row y within [x, x+width)
func (b *RenderBuffer) SetStringCentered(x, y, width int, s string, style tcell.Style) {
	pad := (width - runewidth.StringWidth(s)) / 2
	if pad < 0 {
		pad = 0
	}
	b.SetString(x+pad, y, s, style)
}

// Fill paints every cell of r with ch
func (b *RenderBuffer) Fill(r Rect, ch rune, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			b.Set(x, y, ch, style)
		}
	}
}

// Restyle replaces the style of every cell in r, keeping runes
func (b *RenderBuffer) Restyle(r Rect, fn func(tcell.Style) tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			if !b.inBounds(x, y) {
				continue
			}
			idx := y*b.width + x
			b.cells[idx].Style = fn(b.cells[idx].Style)
			b.touched[idx] = true
		}
	}
}

// Box draws a single-line frame around r with an optional title
func (b *RenderBuffer) Box(r Rect, title string, style tcell.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right, bottom := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < right; x++ {
		b.Set(x, r.Y, tcell.RuneHLine, style)
		b.Set(x, bottom, tcell.RuneHLine, style)
	}
	for y := r.Y + 1; y < bottom; y++ {
		b.Set(r.X, y, tcell.RuneVLine, style)
		b.Set(right, y, tcell.RuneVLine, style)
	}
	b.Set(r.X, r.Y, tcell.RuneULCorner, style)
	b.Set(right, r.Y, tcell.RuneURCorner, style)
	b.Set(r.X, bottom, tcell.RuneLLCorner, style)
	b.Set(right, bottom, tcell.RuneLRCorner, style)
	if title != "" && r.W > 4 {
		b.SetString(r.X+2, r.Y, " "+title+" ", style)
	}
}

// Get returns the cell at x, y
func (b *RenderBuffer) Get(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// Row returns the runes of row y as a string, for tests and transcripts
func (b *RenderBuffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	out := make([]rune, 0, b.width)
	for _, c := range b.cells[y*b.width : (y+1)*b.width] {
		if c.Rune != 0 {
			out = append(out, c.Rune)
		}
	}
	return string(out)
}

// Flush writes every cell to the surface and shows it
func (b *RenderBuffer) Flush(s Surface) {
	for y := 0; y < b.height; y++ {
		row := y * b.width
		for x := 0; x < b.width; x++ {
			c := b.cells[row+x]
			if c.Rune == 0 {
				continue
			}
			s.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
	s.Show()
}

// Touched reports whether any cell was written since the last Clear
func (b *RenderBuffer) Touched() bool {
	for _, t := range b.touched {
		if t {
			return true
		}
	}
	return false
}

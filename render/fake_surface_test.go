package render

import "github.com/gdamore/tcell/v2"

// fakeSurface records the last content written per cell
type fakeSurface struct {
	w, h  int
	cells map[[2]int]Cell
	shows int
	syncs int
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{w: w, h: h, cells: make(map[[2]int]Cell)}
}

func (f *fakeSurface) SetContent(x, y int, r rune, _ []rune, style tcell.Style) {
	f.cells[[2]int{x, y}] = Cell{Rune: r, Style: style}
}

func (f *fakeSurface) Size() (int, int) { return f.w, f.h }
func (f *fakeSurface) Show()            { f.shows++ }
func (f *fakeSurface) Sync()            { f.syncs++ }

package render

import "github.com/gdamore/tcell/v2"

// Cell is one composited screen position
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Surface is the slice of tcell.Screen the renderer draws to
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Show()
	Sync()
}

package render

import (
	"github.com/lixenwraith/netrunner/constants"
	"github.com/lixenwraith/netrunner/game"
)

// Rect is a screen-space rectangle
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether x, y lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Inset shrinks r by n on every side
func (r Rect) Inset(n int) Rect {
	out := Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// Layout holds the board panel positions for one frame
type Layout struct {
	Header   Rect
	Trace    Rect
	Power    Rect
	Layers   Rect
	Commands Rect
	Log      Rect
	Status   Rect
}

// ComputeLayout arranges the board for a screen of width by height
// Panels below the visible area get clipped by the buffer
func ComputeLayout(width, height, layers, commands int) Layout {
	var l Layout
	l.Header = Rect{X: 0, Y: 0, W: width, H: 1}
	l.Trace = Rect{X: 0, Y: 1, W: width, H: 1}
	l.Power = Rect{X: 0, Y: 2, W: width, H: 1}

	rows := layers
	if commands > rows {
		rows = commands
	}
	panelH := rows + 2
	left := width / 2
	l.Layers = Rect{X: 0, Y: 4, W: left, H: panelH}
	l.Commands = Rect{X: left, Y: 4, W: width - left, H: panelH}

	logY := l.Layers.Y + panelH
	logH := constants.LogVisibleLines + 2
	if avail := height - 1 - logY; avail < logH {
		logH = avail
	}
	if logH < 0 {
		logH = 0
	}
	l.Log = Rect{X: 0, Y: logY, W: width, H: logH}
	l.Status = Rect{X: 0, Y: height - 1, W: width, H: 1}
	return l
}

// LayerRow returns the row rect of layer i inside the layers panel
func (l Layout) LayerRow(i int) Rect {
	inner := l.Layers.Inset(1)
	return Rect{X: inner.X, Y: inner.Y + i, W: inner.W, H: 1}
}

// CommandRow returns the row rect of command i inside the commands panel
func (l Layout) CommandRow(i int) Rect {
	inner := l.Commands.Inset(1)
	return Rect{X: inner.X, Y: inner.Y + i, W: inner.W, H: 1}
}

// Region resolves a symbolic tutorial region to a screen rect
func (l Layout) Region(r game.Region) (Rect, bool) {
	switch r {
	case game.RegionSecurityLayers:
		return l.Layers, true
	case game.RegionCommandList:
		return l.Commands, true
	case game.RegionPower:
		return l.Power, true
	case game.RegionTrace:
		return l.Trace, true
	case game.RegionFirstCommand:
		return l.CommandRow(0), true
	}
	return Rect{}, false
}

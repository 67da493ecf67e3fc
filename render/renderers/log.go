package renderers

import (
	"github.com/lixenwraith/netrunner/locale"
	"github.com/lixenwraith/netrunner/render"
)

// LogRenderer draws the trailing session log lines
type LogRenderer struct{}

// NewLogRenderer creates a log renderer
func NewLogRenderer() *LogRenderer {
	return &LogRenderer{}
}

// IsVisible implements VisibilityToggle
func (l *LogRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Playing() && ctx.Layout.Log.H > 2
}

// Render implements SystemRenderer
func (l *LogRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	p := ctx.Palette
	box := ctx.Layout.Log
	buf.Box(box, locale.Get(locale.PanelLog), p.Border)

	inner := box.Inset(1)
	lines := ctx.Snap.Log
	if len(lines) > inner.H {
		lines = lines[len(lines)-inner.H:]
	}
	for i, line := range lines {
		buf.SetString(inner.X, inner.Y+i, truncate(line, inner.W), p.Text)
	}
}

// truncate cuts s to at most n runes
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

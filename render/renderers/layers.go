package renderers

import (
	"fmt"
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/netrunner/components"
	"github.com/lixenwraith/netrunner/locale"
	"github.com/lixenwraith/netrunner/render"
)

// LayersRenderer draws the security layer panel
type LayersRenderer struct{}

// NewLayersRenderer creates a layers renderer
func NewLayersRenderer() *LayersRenderer {
	return &LayersRenderer{}
}

// IsVisible implements VisibilityToggle
func (l *LayersRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Playing()
}

// Render implements SystemRenderer
func (l *LayersRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	p := ctx.Palette
	buf.Box(ctx.Layout.Layers, locale.Get(locale.PanelLayers), p.Border)

	targets := ctx.SelectedTargets()
	for i, layer := range ctx.Snap.Layers {
		row := ctx.Layout.LayerRow(i)
		style := p.LayerStyle(layer.Breached, layer.Visual)

		cursor := "  "
		if i == ctx.UI.Layer {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-12s D%-2d %s", cursor, layer.Name, layer.Difficulty, layerStatus(layer.Breached, layer.Visual))
		buf.SetString(row.X, row.Y, line, style)

		if i == ctx.UI.Layer && !ctx.Snap.Terminal() {
			buf.Restyle(render.Rect{X: row.X, Y: row.Y, W: 1, H: 1}, func(tcell.Style) tcell.Style { return p.Selected })
		}
		if slices.Contains(targets, i) {
			buf.Restyle(row, p.Target)
		}
	}
}

func layerStatus(breached bool, v components.VisualState) string {
	switch {
	case v == components.VisualAttacking:
		return locale.Get(locale.LayerAttacking)
	case v == components.VisualFailed:
		return locale.Get(locale.LayerRepelled)
	case breached:
		return locale.Get(locale.LayerBreached)
	}
	return locale.Get(locale.LayerSecure)
}

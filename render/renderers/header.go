package renderers

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/netrunner/constants"
	"github.com/lixenwraith/netrunner/engine"
	"github.com/lixenwraith/netrunner/locale"
	"github.com/lixenwraith/netrunner/render"
)

// HeaderRenderer draws the banner line and the trace and power meters
type HeaderRenderer struct{}

// NewHeaderRenderer creates a header renderer
func NewHeaderRenderer() *HeaderRenderer {
	return &HeaderRenderer{}
}

// IsVisible implements VisibilityToggle
func (h *HeaderRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Playing()
}

// Render implements SystemRenderer
func (h *HeaderRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	p := ctx.Palette
	snap := ctx.Snap
	lay := ctx.Layout

	x := buf.SetString(lay.Header.X, lay.Header.Y, constants.HeaderBanner, p.Title)
	if snap.Mode == engine.ModeTutorial {
		x = buf.SetString(x+1, lay.Header.Y, "[TUTORIAL]", p.Warning)
	}
	if len(snap.SessionID) >= 8 {
		buf.SetString(x+1, lay.Header.Y, snap.SessionID[:8], p.Dim)
	}

	drawMeter(buf, lay.Trace, locale.Get(locale.PanelTrace), snap.Trace, snap.TraceMax, p.Text, p.TraceFill, p.Dim)
	drawMeter(buf, lay.Power, locale.Get(locale.PanelPower), snap.Power, snap.PowerMax, p.Text, p.PowerFill, p.Dim)
}

// drawMeter renders "LABEL [ on row r
func drawMeter(buf *render.RenderBuffer, r render.Rect, label string, value, limit int, text, fill, empty tcell.Style) {
	x := buf.SetString(r.X, r.Y, fmt.Sprintf("%-6s", label), text)
	filled := 0
	if limit > 0 {
		filled = value * constants.MeterWidth / limit
	}
	if filled > constants.MeterWidth {
		filled = constants.MeterWidth
	}
	x = buf.SetString(x, r.Y, "[", text)
	x = buf.SetString(x, r.Y, strings.Repeat("█", filled), fill)
	x = buf.SetString(x, r.Y, strings.Repeat("░", constants.MeterWidth-filled), empty)
	x = buf.SetString(x, r.Y, "]", text)
	buf.SetString(x+1, r.Y, fmt.Sprintf("%d/%d", value, limit), text)
}

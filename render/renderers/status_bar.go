package renderers

import (
	"fmt"
	"math"

	"github.com/lixenwraith/netrunner/locale"
	"github.com/lixenwraith/netrunner/render"
)

// StatusBarRenderer draws the key hints and audio state on the bottom row
type StatusBarRenderer struct{}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{}
}

// IsVisible implements VisibilityToggle
func (s *StatusBarRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Playing()
}

// Render implements SystemRenderer
func (s *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	p := ctx.Palette
	bar := ctx.Layout.Status
	snap := ctx.Snap

	hint := locale.Get(locale.HintBoard)
	switch {
	case snap.Terminal():
		hint = locale.Get(locale.HintGameOver)
	case snap.Tutorial.Reopenable && !snap.Tutorial.Visible:
		hint += "  " + locale.Get(locale.HintShowTutorial)
	}
	buf.SetString(bar.X, bar.Y, hint, p.Dim)

	right := fmt.Sprintf("T+%03ds", int(snap.Time.Seconds()))
	if ctx.Audio.Available {
		if ctx.Audio.Enabled {
			right = locale.Format(locale.StatusVolume, int(math.Round(ctx.Audio.Volume*100))) + "  " + right
		} else {
			right = locale.Get(locale.StatusMuted) + "  " + right
		}
	}
	x := bar.X + bar.W - len([]rune(right))
	if x < bar.X {
		return
	}
	buf.SetString(x, bar.Y, right, p.Text)
}

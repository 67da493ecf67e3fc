package renderers

import (
	"strings"

	"github.com/lixenwraith/netrunner/locale"
	"github.com/lixenwraith/netrunner/render"
)

// TutorialRenderer spotlights the referenced region and draws the step message
type TutorialRenderer struct{}

// NewTutorialRenderer creates a tutorial overlay renderer
func NewTutorialRenderer() *TutorialRenderer {
	return &TutorialRenderer{}
}

// IsVisible implements VisibilityToggle
func (t *TutorialRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Playing() && ctx.Snap.Tutorial.Visible && !ctx.Snap.Terminal()
}

// Render implements SystemRenderer
func (t *TutorialRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	p := ctx.Palette
	tut := ctx.Snap.Tutorial

	if region, ok := ctx.Layout.Region(tut.Region); ok {
		buf.Restyle(region, p.Spotlight)
	}

	width := ctx.Width - 8
	if width > 64 {
		width = 64
	}
	if width < 20 {
		width = ctx.Width
	}
	lines := wrapText(tut.Message, width-4)

	h := len(lines) + 4
	box := render.Rect{X: (ctx.Width - width) / 2, Y: ctx.Height - h - 2, W: width, H: h}
	if box.Y < 0 {
		box.Y = 0
	}
	buf.Fill(box, ' ', p.Overlay)
	buf.Box(box, locale.Format(locale.TutorialStep, tut.Step+1, tut.Total), p.Overlay)

	for i, line := range lines {
		buf.SetString(box.X+2, box.Y+1+i, line, p.Overlay)
	}

	hint := locale.Get(locale.HintTutorial)
	if tut.NeedsAction {
		hint = locale.Get(locale.HintTutorialAction)
	}
	buf.SetString(box.X+2, box.Y+h-2, hint, p.Overlay.Bold(true))
}

// wrapText greedily breaks s on spaces into lines of at most width runes
func wrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var cur strings.Builder
	curLen := 0
	for _, word := range strings.Fields(s) {
		wl := len([]rune(word))
		if curLen > 0 && curLen+1+wl > width {
			lines = append(lines, cur.String())
			cur.Reset()
			curLen = 0
		}
		if curLen > 0 {
			cur.WriteByte(' ')
			curLen++
		}
		cur.WriteString(word)
		curLen += wl
	}
	if curLen > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

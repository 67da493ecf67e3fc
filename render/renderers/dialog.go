package renderers

import (
	"github.com/lixenwraith/netrunner/locale"
	"github.com/lixenwraith/netrunner/render"
)

// DialogRenderer draws the quit confirmation
type DialogRenderer struct{}

// NewDialogRenderer creates a dialog renderer
func NewDialogRenderer() *DialogRenderer {
	return &DialogRenderer{}
}

// IsVisible implements VisibilityToggle
func (d *DialogRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Playing() && ctx.UI.Dialog
}

// Render implements SystemRenderer
func (d *DialogRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	p := ctx.Palette
	prompt := locale.Get(locale.QuitPrompt)
	width := len([]rune(prompt)) + 4
	box := render.Rect{X: (ctx.Width - width) / 2, Y: ctx.Height/2 - 1, W: width, H: 3}
	buf.Fill(box, ' ', p.Overlay)
	buf.Box(box, "", p.Warning)
	buf.SetStringCentered(box.X, box.Y+1, box.W, prompt, p.Warning)
}

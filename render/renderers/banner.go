package renderers

import (
	"github.com/lixenwraith/netrunner/engine"
	"github.com/lixenwraith/netrunner/locale"
	"github.com/lixenwraith/netrunner/render"
)

// BannerRenderer draws the game over banner with the retry hint
type BannerRenderer struct{}

// NewBannerRenderer creates a banner renderer
func NewBannerRenderer() *BannerRenderer {
	return &BannerRenderer{}
}

// IsVisible implements VisibilityToggle
func (b *BannerRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Snap.Terminal()
}

// Render implements SystemRenderer
func (b *BannerRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	p := ctx.Palette
	text, style := locale.Get(locale.BannerFailure), p.Failure
	if ctx.Snap.Result == engine.ResultSuccess {
		text, style = locale.Get(locale.BannerSuccess), p.Success
	}

	width := len([]rune(text)) + 8
	hint := locale.Get(locale.HintGameOver)
	if hw := len([]rune(hint)) + 4; hw > width {
		width = hw
	}
	box := render.Rect{X: (ctx.Width - width) / 2, Y: ctx.Height/2 - 2, W: width, H: 5}
	buf.Fill(box, ' ', p.Base)
	buf.Box(box, "", style)
	buf.SetStringCentered(box.X, box.Y+1, box.W, text, style)
	buf.SetStringCentered(box.X, box.Y+3, box.W, hint, p.Dim)
}

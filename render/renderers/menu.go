package renderers

import (
	"github.com/lixenwraith/netrunner/constants"
	"github.com/lixenwraith/netrunner/game"
	"github.com/lixenwraith/netrunner/input"
	"github.com/lixenwraith/netrunner/locale"
	"github.com/lixenwraith/netrunner/render"
)

// MenuRenderer draws the start screen
type MenuRenderer struct{}

// NewMenuRenderer creates a menu renderer
func NewMenuRenderer() *MenuRenderer {
	return &MenuRenderer{}
}

// IsVisible implements VisibilityToggle
func (m *MenuRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Snap.Screen == game.ScreenMenu
}

// Render implements SystemRenderer
func (m *MenuRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	p := ctx.Palette
	y := ctx.Height/2 - 5
	if y < 0 {
		y = 0
	}

	buf.SetStringCentered(0, y, ctx.Width, constants.GameTitle, p.Title)
	buf.SetStringCentered(0, y+1, ctx.Width, constants.GameSubtitle, p.Dim)

	entries := [...]string{
		input.MenuTutorial: locale.Get(locale.MenuTutorial),
		input.MenuDirect:   locale.Get(locale.MenuDirect),
	}
	for i, label := range entries {
		style := p.Text
		text := "  " + label + "  "
		if i == ctx.UI.MenuIndex {
			style = p.Selected
			text = "> " + label + " <"
		}
		buf.SetStringCentered(0, y+3+i, ctx.Width, text, style)
	}

	buf.SetStringCentered(0, y+6, ctx.Width, locale.Get(locale.MenuQuote1), p.Dim)
	buf.SetStringCentered(0, y+7, ctx.Width, locale.Get(locale.MenuQuote2), p.Dim)
	buf.SetStringCentered(0, y+8, ctx.Width, locale.Get(locale.MenuQuoteAuthor), p.Dim)

	buf.SetString(0, ctx.Height-1, locale.Get(locale.HintMenu), p.Dim)
}

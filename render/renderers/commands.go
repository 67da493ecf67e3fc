package renderers

import (
	"fmt"

	"github.com/lixenwraith/netrunner/locale"
	"github.com/lixenwraith/netrunner/render"
)

// CommandsRenderer draws the command panel
type CommandsRenderer struct{}

// NewCommandsRenderer creates a commands renderer
func NewCommandsRenderer() *CommandsRenderer {
	return &CommandsRenderer{}
}

// IsVisible implements VisibilityToggle
func (c *CommandsRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Playing()
}

// Render implements SystemRenderer
func (c *CommandsRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	p := ctx.Palette
	buf.Box(ctx.Layout.Commands, locale.Get(locale.PanelCommands), p.Border)

	for i, cmd := range ctx.Snap.Commands {
		row := ctx.Layout.CommandRow(i)

		style := p.Text
		switch {
		case !cmd.Available:
			style = p.Dim
		case !cmd.Affordable:
			style = p.Failure
		}
		if i == ctx.UI.Command && !ctx.Snap.Terminal() {
			style = p.Selected
		}

		status := locale.Get(locale.CommandReady)
		if !cmd.Available {
			status = locale.Format(locale.CommandCooldown, cmd.Cooldown)
		}
		line := fmt.Sprintf(" %-17s P%d C%d %s", cmd.Name, cmd.Power, cmd.PowerCost, status)
		buf.SetString(row.X, row.Y, line, style)
	}
}

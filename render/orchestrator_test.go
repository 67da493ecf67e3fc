package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/netrunner/game"
	"github.com/lixenwraith/netrunner/input"
)

type recordingRenderer struct {
	name    string
	order   *[]string
	visible bool
}

func (r *recordingRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	*r.order = append(*r.order, r.name)
}

func (r *recordingRenderer) IsVisible(ctx RenderContext) bool { return r.visible }

func TestOrchestratorOrderAndVisibility(t *testing.T) {
	surface := newFakeSurface(20, 5)
	palette := NewPalette(false)
	o := NewRenderOrchestrator(surface, palette)

	var order []string
	o.Register(&recordingRenderer{name: "dialog", order: &order, visible: true}, PriorityDialog)
	o.Register(&recordingRenderer{name: "panel_a", order: &order, visible: true}, PriorityPanels)
	o.Register(&recordingRenderer{name: "hidden", order: &order, visible: false}, PriorityPanels)
	o.Register(&recordingRenderer{name: "panel_b", order: &order, visible: true}, PriorityPanels)
	o.Register(&recordingRenderer{name: "background", order: &order, visible: true}, PriorityBackground)

	w, h := o.Size()
	ctx := NewRenderContext(game.Snapshot{}, input.State{}, AudioView{}, palette, w, h)
	o.RenderFrame(ctx)

	assert.Equal(t, []string{"background", "panel_a", "panel_b", "dialog"}, order)
	assert.Equal(t, 1, surface.shows)
}

func TestOrchestratorResize(t *testing.T) {
	surface := newFakeSurface(20, 5)
	o := NewRenderOrchestrator(surface, NewPalette(true))

	surface.w, surface.h = 40, 12
	o.Resize()
	w, h := o.Size()
	assert.Equal(t, 40, w)
	assert.Equal(t, 12, h)
	assert.Equal(t, 1, surface.syncs)
}

func TestSelectedTargets(t *testing.T) {
	snap := game.Snapshot{Commands: []game.CommandView{{Targets: []int{0, 2}}, {}}}
	ctx := RenderContext{Snap: snap}
	assert.Equal(t, []int{0, 2}, ctx.SelectedTargets())

	ctx.UI.Command = 5
	assert.Nil(t, ctx.SelectedTargets())
}

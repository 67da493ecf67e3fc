package renderers

import "github.com/lixenwraith/netrunner/render"

// RegisterAll installs every board renderer on the orchestrator
func RegisterAll(o *render.RenderOrchestrator) {
	o.Register(NewMenuRenderer(), render.PriorityBackground)
	o.Register(NewHeaderRenderer(), render.PriorityPanels)
	o.Register(NewLayersRenderer(), render.PriorityPanels)
	o.Register(NewCommandsRenderer(), render.PriorityPanels)
	o.Register(NewLogRenderer(), render.PriorityLog)
	o.Register(NewStatusBarRenderer(), render.PriorityUI)
	o.Register(NewTutorialRenderer(), render.PriorityOverlay)
	o.Register(NewBannerRenderer(), render.PriorityOverlay)
	o.Register(NewDialogRenderer(), render.PriorityDialog)
}

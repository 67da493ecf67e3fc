package render

import (
	"github.com/lixenwraith/netrunner/game"
	"github.com/lixenwraith/netrunner/input"
)

// AudioView is the audio state shown in the status bar
type AudioView struct {
	Available bool
	Enabled   bool
	Volume    float64
}

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Snap    game.Snapshot
	UI      input.State
	Audio   AudioView
	Palette *Palette
	Layout  Layout

	Width  int
	Height int
}

// NewRenderContext assembles a frame context and computes its layout
func NewRenderContext(snap game.Snapshot, ui input.State, audio AudioView, palette *Palette, width, height int) RenderContext {
	return RenderContext{
		Snap:    snap,
		UI:      ui,
		Audio:   audio,
		Palette: palette,
		Layout:  ComputeLayout(width, height, len(snap.Layers), len(snap.Commands)),
		Width:   width,
		Height:  height,
	}
}

// Playing reports whether the frame shows a session board
func (c RenderContext) Playing() bool {
	return c.Snap.Screen == game.ScreenPlaying && c.Snap.Active
}

// SelectedTargets returns the layer indices the selected command can hit
func (c RenderContext) SelectedTargets() []int {
	if c.UI.Command < 0 || c.UI.Command >= len(c.Snap.Commands) {
		return nil
	}
	return c.Snap.Commands[c.UI.Command].Targets
}

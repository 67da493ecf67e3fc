package game

import (
	"time"

	"github.com/lixenwraith/netrunner/components"
	"github.com/lixenwraith/netrunner/constants"
	"github.com/lixenwraith/netrunner/engine"
)

// LayerView is the render model of one security layer
type LayerView struct {
	Name       string
	Difficulty int
	Breached   bool
	Visual     components.VisualState
}

// CommandView is the render model of one command
// Targets lists the layer indices this command may be launched at right now
type CommandView struct {
	Name       string
	Power      int
	PowerCost  int
	Cooldown   int
	Available  bool
	Affordable bool
	Targets    []int
}

// TutorialView is the render model of the overlay
type TutorialView struct {
	Visible     bool
	Step        int
	Total       int
	Message     string
	Region      Region
	NeedsAction bool
	// Reopenable is set once the sequence was finished, enabling "show tutorial"
	Reopenable bool
}

// Snapshot is a detached copy of everything the UI draws
type Snapshot struct {
	Screen    Screen
	Time      time.Duration
	Active    bool // False on the menu
	SessionID string
	Mode      engine.Mode
	Result    engine.Result

	Layers   []LayerView
	Commands []CommandView
	Power    int
	PowerMax int
	Trace    int
	TraceMax int
	Log      []string

	Tutorial TutorialView
}

// Snapshot copies the current state for rendering
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Screen:   g.screen,
		Time:     g.ctx.Scheduler.Now(),
		TraceMax: constants.TraceMax,
		Tutorial: g.tutorialView(),
	}

	s := g.ctx.Session
	if s == nil {
		return snap
	}

	snap.Active = true
	snap.SessionID = s.ID
	snap.Mode = s.Mode
	snap.Result = s.Result
	snap.Power = s.Power.Current
	snap.PowerMax = s.Power.Max
	snap.Trace = s.Trace
	snap.Log = append([]string(nil), s.Log...)

	snap.Layers = make([]LayerView, len(s.Layers))
	for i, l := range s.Layers {
		snap.Layers[i] = LayerView{Name: l.Name, Difficulty: l.Difficulty, Breached: l.Breached, Visual: l.Visual}
	}

	snap.Commands = make([]CommandView, len(s.Commands))
	for ci, c := range s.Commands {
		view := CommandView{
			Name:       c.Name,
			Power:      c.Power,
			PowerCost:  c.PowerCost,
			Cooldown:   c.Cooldown,
			Available:  c.Available(),
			Affordable: c.Affordable(s.Power.Current),
		}
		for li := range s.Layers {
			if s.Targetable(ci, li) {
				view.Targets = append(view.Targets, li)
			}
		}
		snap.Commands[ci] = view
	}
	return snap
}

func (g *Game) tutorialView() TutorialView {
	t := g.tutorial
	view := TutorialView{
		Visible:    t.Visible(),
		Step:       t.Index(),
		Total:      t.Len(),
		Reopenable: t.Completed(),
	}
	if step, ok := t.Current(); ok {
		view.Message = step.Message()
		view.Region = step.Region
		view.NeedsAction = step.NeedsAction()
	}
	return view
}

// Terminal reports whether the snapshot shows a finished session
func (s Snapshot) Terminal() bool {
	return s.Active && s.Result.Terminal()
}

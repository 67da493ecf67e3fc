package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/netrunner/engine"
	"github.com/lixenwraith/netrunner/game"
)

// Menu entries in display order
const (
	MenuTutorial = iota
	MenuDirect
	menuCount
)

// Controller is the subset of the game controller driven by player input
type Controller interface {
	Snapshot() game.Snapshot
	StartTutorial() *engine.Session
	StartDirect() *engine.Session
	ExecuteCommand(ci, li int) error
	Retry() *engine.Session
	QuitToMenu()
	AdvanceTutorial() bool
	SkipTutorial()
	ShowTutorial()
}

// State is the cursor and dialog state owned by the UI
type State struct {
	MenuIndex int
	Command   int
	Layer     int
	Dialog    bool // Quit confirmation open
}

// Machine translates terminal events into controller calls
type Machine struct {
	keys  *KeyTable
	state State
}

// NewMachine creates a machine; nil keys selects the default table
func NewMachine(keys *KeyTable) *Machine {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Machine{keys: keys}
}

// State returns a copy of the current UI state
func (m *Machine) State() State {
	return m.state
}

// Handle applies one terminal event
// The returned action covers effects outside the controller (exit, audio, resize)
func (m *Machine) Handle(ev tcell.Event, c Controller) Action {
	return m.Apply(m.keys.Translate(ev), c)
}

// Apply applies one intent
func (m *Machine) Apply(intent IntentType, c Controller) Action {
	switch intent {
	case IntentNone:
		return ActionNone
	case IntentQuit:
		return ActionExit
	case IntentResize:
		return ActionResize
	case IntentToggleMute:
		return ActionToggleMute
	case IntentVolumeUp:
		return ActionVolumeUp
	case IntentVolumeDown:
		return ActionVolumeDown
	}

	snap := c.Snapshot()
	if snap.Screen == game.ScreenMenu {
		return m.applyMenu(intent, c)
	}
	if m.state.Dialog {
		m.applyDialog(intent, c)
		return ActionNone
	}
	m.applyPlaying(intent, snap, c)
	return ActionNone
}

func (m *Machine) applyMenu(intent IntentType, c Controller) Action {
	switch intent {
	case IntentUp, IntentLeft:
		m.state.MenuIndex = wrap(m.state.MenuIndex-1, menuCount)
	case IntentDown, IntentRight:
		m.state.MenuIndex = wrap(m.state.MenuIndex+1, menuCount)
	case IntentConfirm:
		m.resetCursor()
		if m.state.MenuIndex == MenuTutorial {
			c.StartTutorial()
		} else {
			c.StartDirect()
		}
	case IntentEscape:
		return ActionExit
	}
	return ActionNone
}

func (m *Machine) applyDialog(intent IntentType, c Controller) {
	switch intent {
	case IntentYes, IntentConfirm:
		m.state.Dialog = false
		m.resetCursor()
		c.QuitToMenu()
	case IntentNo, IntentEscape:
		m.state.Dialog = false
	}
}

func (m *Machine) applyPlaying(intent IntentType, snap game.Snapshot, c Controller) {
	if snap.Terminal() {
		switch intent {
		case IntentRetry, IntentConfirm:
			m.resetCursor()
			c.Retry()
		case IntentEscape:
			m.resetCursor()
			c.QuitToMenu()
		}
		return
	}

	tut := snap.Tutorial
	switch intent {
	case IntentEscape:
		m.state.Dialog = true
	case IntentTutorialNext:
		if tut.Visible {
			c.AdvanceTutorial()
		}
	case IntentTutorialSkip:
		if tut.Visible {
			m.resetCursor()
			c.SkipTutorial()
		}
	case IntentTutorialShow:
		if tut.Reopenable && !tut.Visible {
			c.ShowTutorial()
		}
	case IntentUp:
		m.state.Command = wrap(m.state.Command-1, len(snap.Commands))
	case IntentDown:
		m.state.Command = wrap(m.state.Command+1, len(snap.Commands))
	case IntentLeft:
		m.state.Layer = wrap(m.state.Layer-1, len(snap.Layers))
	case IntentRight:
		m.state.Layer = wrap(m.state.Layer+1, len(snap.Layers))
	case IntentConfirm:
		// An informational overlay step blocks the board until dismissed
		if tut.Visible && !tut.NeedsAction {
			c.AdvanceTutorial()
			return
		}
		// Rejections surface through the session log
		_ = c.ExecuteCommand(m.state.Command, m.state.Layer)
	}
}

func (m *Machine) resetCursor() {
	m.state.Command = 0
	m.state.Layer = 0
}

func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/netrunner/constants"
	"github.com/lixenwraith/netrunner/engine"
	"github.com/lixenwraith/netrunner/game"
)

func key(k tcell.Key) tcell.Event {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) tcell.Event {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestTranslate(t *testing.T) {
	kt := DefaultKeyTable()
	tests := []struct {
		name string
		ev   tcell.Event
		want IntentType
	}{
		{"enter", key(tcell.KeyEnter), IntentConfirm},
		{"escape", key(tcell.KeyEscape), IntentEscape},
		{"ctrl_c", key(tcell.KeyCtrlC), IntentQuit},
		{"arrow_down", key(tcell.KeyDown), IntentDown},
		{"tab", key(tcell.KeyTab), IntentRight},
		{"vim_up", runeKey('k'), IntentUp},
		{"retry", runeKey('r'), IntentRetry},
		{"space", runeKey(' '), IntentTutorialNext},
		{"mute", runeKey('m'), IntentToggleMute},
		{"unbound_rune", runeKey('z'), IntentNone},
		{"unbound_key", key(tcell.KeyF12), IntentNone},
		{"resize", tcell.NewEventResize(80, 24), IntentResize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kt.Translate(tt.ev))
		})
	}
}

func TestIntentString(t *testing.T) {
	assert.Equal(t, "confirm", IntentConfirm.String())
	assert.Equal(t, "unknown", IntentType(200).String())
}

func TestMenuNavigation(t *testing.T) {
	g := game.New(nil, nil)
	m := NewMachine(nil)

	m.Apply(IntentDown, g)
	assert.Equal(t, MenuDirect, m.State().MenuIndex)
	m.Apply(IntentDown, g)
	assert.Equal(t, MenuTutorial, m.State().MenuIndex, "menu wraps")

	m.Apply(IntentConfirm, g)
	require.Equal(t, game.ScreenPlaying, g.Screen())
	assert.Equal(t, engine.ModeTutorial, g.Session().Mode)
	assert.True(t, g.Tutorial().Visible())
}

func TestMenuDirectAccess(t *testing.T) {
	g := game.New(nil, nil)
	m := NewMachine(nil)

	m.Apply(IntentUp, g)
	m.Apply(IntentConfirm, g)
	require.NotNil(t, g.Session())
	assert.Equal(t, engine.ModeMain, g.Session().Mode)
	assert.False(t, g.Tutorial().Visible())
}

func TestEscapeOnMenuExits(t *testing.T) {
	g := game.New(nil, nil)
	m := NewMachine(nil)
	assert.Equal(t, ActionExit, m.Handle(key(tcell.KeyEscape), g))
	assert.Equal(t, ActionExit, m.Handle(key(tcell.KeyCtrlQ), g))
}

func TestSystemActions(t *testing.T) {
	g := game.New(nil, nil)
	m := NewMachine(nil)
	assert.Equal(t, ActionToggleMute, m.Handle(runeKey('m'), g))
	assert.Equal(t, ActionVolumeUp, m.Handle(runeKey('+'), g))
	assert.Equal(t, ActionVolumeDown, m.Handle(runeKey('-'), g))
	assert.Equal(t, ActionResize, m.Handle(tcell.NewEventResize(100, 40), g))
	assert.Equal(t, ActionNone, m.Handle(runeKey('z'), g))
}

func TestCursorWrapsOverBoard(t *testing.T) {
	g := game.New(nil, nil)
	g.StartDirect()
	m := NewMachine(nil)

	m.Apply(IntentUp, g)
	assert.Equal(t, len(g.Session().Commands)-1, m.State().Command)
	m.Apply(IntentDown, g)
	assert.Equal(t, 0, m.State().Command)

	m.Apply(IntentLeft, g)
	assert.Equal(t, len(g.Session().Layers)-1, m.State().Layer)
	m.Apply(IntentRight, g)
	assert.Equal(t, 0, m.State().Layer)
}

func TestConfirmLaunchesSelectedCommand(t *testing.T) {
	g := game.New(nil, nil)
	g.StartDirect()
	m := NewMachine(nil)

	start := g.Session().Power.Current
	m.Apply(IntentConfirm, g)

	snap := g.Snapshot()
	assert.Equal(t, start, snap.Power, "cost charges at resolution")
	assert.NotEmpty(t, snap.Log)
	assert.Equal(t, game.ScreenPlaying, snap.Screen)
}

func TestInformationalStepBlocksBoard(t *testing.T) {
	g := game.New(nil, nil)
	g.StartTutorial()
	m := NewMachine(nil)

	logBefore := len(g.Session().Log)
	m.Apply(IntentConfirm, g)
	assert.Equal(t, 1, g.Tutorial().Index(), "confirm advances the overlay")
	assert.Len(t, g.Session().Log, logBefore, "no attack was launched")
}

func TestTutorialSkipJumpsToMain(t *testing.T) {
	g := game.New(nil, nil)
	g.StartTutorial()
	m := NewMachine(nil)

	m.Apply(IntentTutorialNext, g)
	assert.Equal(t, 1, g.Tutorial().Index())

	m.Apply(IntentTutorialSkip, g)
	assert.Equal(t, engine.ModeMain, g.Session().Mode)
	assert.False(t, g.Tutorial().Visible())

	m.Apply(IntentTutorialShow, g)
	assert.True(t, g.Tutorial().Visible(), "finished tutorial can be reopened")
}

func TestQuitDialog(t *testing.T) {
	g := game.New(nil, nil)
	g.StartDirect()
	m := NewMachine(nil)

	m.Apply(IntentEscape, g)
	require.True(t, m.State().Dialog)

	m.Apply(IntentNo, g)
	assert.False(t, m.State().Dialog)
	assert.Equal(t, game.ScreenPlaying, g.Screen())

	m.Apply(IntentEscape, g)
	m.Apply(IntentDown, g)
	assert.Equal(t, 0, m.State().Command, "board input is ignored while the dialog is open")

	m.Apply(IntentYes, g)
	assert.False(t, m.State().Dialog)
	assert.Equal(t, game.ScreenMenu, g.Screen())
	assert.Nil(t, g.Session())
}

func TestRetryAfterGameOver(t *testing.T) {
	g := game.New(nil, nil)
	g.StartDirect()
	g.Session().Trace = 99
	g.Advance(constants.TickInterval)
	require.True(t, g.Snapshot().Terminal())

	m := NewMachine(nil)
	firstID := g.Session().ID
	m.Apply(IntentDown, g)
	assert.Equal(t, 0, m.State().Command, "board is frozen after game over")

	m.Apply(IntentRetry, g)
	require.NotNil(t, g.Session())
	assert.NotEqual(t, firstID, g.Session().ID)
	assert.False(t, g.Snapshot().Terminal())
}

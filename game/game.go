// Package game is the mode and session controller
// It seeds sessions, wires the systems to the scheduler, routes events and
// exposes the read model the terminal UI renders
package game

import (
	"io"
	"log/slog"
	"time"

	"github.com/lixenwraith/netrunner/engine"
	"github.com/lixenwraith/netrunner/events"
	"github.com/lixenwraith/netrunner/systems"
)

// Screen is the top-level view state
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenPlaying
)

func (s Screen) String() string {
	if s == ScreenPlaying {
		return "playing"
	}
	return "menu"
}

// Game owns the game context and every system acting on it
// All methods must be called from the owner goroutine (the engine Driver or a test)
type Game struct {
	ctx    *engine.GameContext
	router *events.Router[*Game]
	logger *slog.Logger

	attack   *systems.AttackSystem
	outcome  *systems.OutcomeSystem
	trace    *systems.TraceSystem
	cooldown *systems.CooldownSystem
	power    *systems.PowerSystem

	tutorial *Tutorial
	screen   Screen
	stats    Stats
}

// New creates a controller on the start menu
// sound may be nil for headless runs
func New(logger *slog.Logger, sound SoundPlayer) *Game {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ctx := engine.NewGameContext(logger)

	g := &Game{
		ctx:      ctx,
		router:   events.NewRouter[*Game](ctx.Events),
		logger:   logger,
		tutorial: NewTutorial(TutorialSteps),
		screen:   ScreenMenu,
	}

	g.outcome = systems.NewOutcomeSystem(ctx, func() { g.InitializeSession(engine.ModeMain) })
	g.attack = systems.NewAttackSystem(ctx, g.outcome)
	g.trace = systems.NewTraceSystem(ctx, g.outcome)
	g.cooldown = systems.NewCooldownSystem(ctx)
	g.power = systems.NewPowerSystem(ctx)

	g.router.Register(statsHandler{})
	if sound != nil {
		g.router.Register(&soundHandler{player: sound})
	}
	return g
}

// Context exposes the underlying game context
func (g *Game) Context() *engine.GameContext {
	return g.ctx
}

// Session returns the live session, nil on the menu
func (g *Game) Session() *engine.Session {
	return g.ctx.Session
}

func (g *Game) Screen() Screen               { return g.screen }
func (g *Game) Tutorial() *Tutorial          { return g.tutorial }
func (g *Game) Stats() Stats                 { return g.stats }
func (g *Game) Now() time.Duration           { return g.ctx.Scheduler.Now() }
func (g *Game) Scheduler() *engine.Scheduler { return g.ctx.Scheduler }

// EnterMenu shows the start menu, announcing it to handlers
func (g *Game) EnterMenu() {
	g.screen = ScreenMenu
	g.ctx.PushEvent(events.EventMenuEntered, nil)
	g.dispatch()
}

// InitializeSession replaces any session with a fresh one of the given mode
// Timers armed by the previous session are invalidated
func (g *Game) InitializeSession(mode engine.Mode) *engine.Session {
	sess := g.ctx.Reset(mode)
	systems.ArmClock(g.ctx, sess.Generation, g.trace, g.cooldown, g.power)
	g.screen = ScreenPlaying

	if mode == engine.ModeTutorial {
		g.tutorial.Start()
		g.pushTutorial()
	}

	g.ctx.PushEvent(events.EventSessionStarted, &events.SessionStartedPayload{
		SessionID: sess.ID,
		Tutorial:  mode == engine.ModeTutorial,
	})
	g.dispatch()
	return sess
}

// StartTutorial begins the guided path
func (g *Game) StartTutorial() *engine.Session {
	return g.InitializeSession(engine.ModeTutorial)
}

// StartDirect begins the main session with the overlay dismissed
func (g *Game) StartDirect() *engine.Session {
	g.tutorial.Skip()
	return g.InitializeSession(engine.ModeMain)
}

// Retry restarts the current mode from scratch
func (g *Game) Retry() *engine.Session {
	mode := engine.ModeMain
	if s := g.ctx.Session; s != nil {
		mode = s.Mode
	}
	return g.InitializeSession(mode)
}

// QuitToMenu abandons the session and returns to the start menu
func (g *Game) QuitToMenu() {
	if g.ctx.Session != nil {
		g.ctx.PushEvent(events.EventSessionEnded, nil)
		g.dispatch()
	}
	g.ctx.Clear()
	g.tutorial.Hide()
	g.EnterMenu()
}

// ExecuteCommand launches command ci at layer li
// Rejections are normal outcomes; the error is returned for callers that inspect it
func (g *Game) ExecuteCommand(ci, li int) error {
	err := g.attack.Execute(ci, li)
	if err != nil {
		g.logger.Debug("attack rejected", slog.Int("command", ci), slog.Int("layer", li), slog.Any("reason", err))
	}
	g.Update()
	return err
}

// AdvanceTutorial dismisses the current overlay step
func (g *Game) AdvanceTutorial() bool {
	if !g.tutorial.Advance() {
		return false
	}
	g.pushTutorial()
	g.dispatch()
	return true
}

// SkipTutorial closes the overlay; during the tutorial session it jumps to the main session
func (g *Game) SkipTutorial() {
	g.tutorial.Skip()
	g.pushTutorial()
	if s := g.ctx.Session; s != nil && s.Mode == engine.ModeTutorial {
		g.InitializeSession(engine.ModeMain)
		return
	}
	g.dispatch()
}

// ShowTutorial reopens the overlay from the first step
func (g *Game) ShowTutorial() {
	g.tutorial.Start()
	g.pushTutorial()
	g.dispatch()
}

// Advance moves virtual time forward by d and settles events
func (g *Game) Advance(d time.Duration) {
	g.ctx.Scheduler.Advance(d)
	g.Update()
}

// Update settles state after time or input moved: tutorial predicates, then event dispatch
// The engine Driver calls it after every step
func (g *Game) Update() {
	if g.tutorial.Check(g.ctx.Session) {
		g.pushTutorial()
	}
	g.dispatch()
}

func (g *Game) pushTutorial() {
	g.ctx.PushEvent(events.EventTutorialAdvanced, &events.TutorialPayload{
		Step:    g.tutorial.Index(),
		Visible: g.tutorial.Visible(),
	})
}

func (g *Game) dispatch() {
	g.router.DispatchAll(g)
}

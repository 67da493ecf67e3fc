package engine

import (
	"io"
	"log/slog"

	"github.com/lixenwraith/netrunner/events"
)

// GameContext owns the live session and the infrastructure every system shares
// All fields are accessed from the owner goroutine only
type GameContext struct {
	Scheduler *Scheduler
	Events    *events.EventQueue

	// Session is nil while no play-through is active (start menu)
	Session *Session

	logger *slog.Logger
}

// NewGameContext creates a context with an empty scheduler and event queue
func NewGameContext(logger *slog.Logger) *GameContext {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &GameContext{
		Scheduler: NewScheduler(),
		Events:    events.NewEventQueue(),
		logger:    logger,
	}
}

// Reset retires the current session and seeds a fresh one
// Tasks armed by the previous session become stale
func (c *GameContext) Reset(mode Mode) *Session {
	gen := c.Scheduler.NextGeneration()
	c.Session = NewSession(mode, gen)
	c.Logger().Info("session initialized")
	return c.Session
}

// Clear retires the current session without replacing it
func (c *GameContext) Clear() {
	if c.Session != nil {
		c.Logger().Info("session cleared")
	}
	c.Scheduler.NextGeneration()
	c.Session = nil
}

// Live reports whether gen is the generation of the active session
func (c *GameContext) Live(gen uint64) bool {
	return c.Session != nil && c.Session.Generation == gen && c.Scheduler.Live(gen)
}

// PushEvent queues an event stamped with the active generation and scheduler time
func (c *GameContext) PushEvent(t events.EventType, payload any) {
	var gen uint64
	if c.Session != nil {
		gen = c.Session.Generation
	}
	c.Events.Push(events.GameEvent{
		Type:       t,
		Payload:    payload,
		Generation: gen,
		At:         c.Scheduler.Now(),
	})
}

// Logger returns a logger annotated with the active session
func (c *GameContext) Logger() *slog.Logger {
	if c.Session == nil {
		return c.logger
	}
	return c.logger.With(
		slog.String("session", c.Session.ID),
		slog.Uint64("gen", c.Session.Generation),
		slog.String("mode", c.Session.Mode.String()),
	)
}

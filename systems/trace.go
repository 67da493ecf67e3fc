package systems

import (
	"github.com/lixenwraith/netrunner/constants"
	"github.com/lixenwraith/netrunner/engine"
)

// TraceSystem grows the detection meter each tick while the session is active
type TraceSystem struct {
	ctx     *engine.GameContext
	outcome OutcomeEvaluator
}

// NewTraceSystem creates a trace system reporting mutations to outcome
func NewTraceSystem(ctx *engine.GameContext, outcome OutcomeEvaluator) *TraceSystem {
	return &TraceSystem{ctx: ctx, outcome: outcome}
}

// Tick raises trace by one step, clamped to the maximum
func (s *TraceSystem) Tick() {
	sess := s.ctx.Session
	if sess == nil || sess.Terminal() {
		return
	}

	sess.RaiseTrace(constants.TracePerTick)

	if s.outcome != nil {
		s.outcome.Evaluate()
	}
}

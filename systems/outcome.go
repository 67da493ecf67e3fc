package systems

import (
	"log/slog"

	"github.com/lixenwraith/netrunner/constants"
	"github.com/lixenwraith/netrunner/engine"
	"github.com/lixenwraith/netrunner/events"
	"github.com/lixenwraith/netrunner/locale"
)

// OutcomeSystem declares success or failure after trace and layer mutations
// Trace saturation takes precedence over a simultaneous full breach
type OutcomeSystem struct {
	ctx *engine.GameContext

	// onTutorialComplete runs TutorialChainDelay after a tutorial success,
	// unless the session is replaced first
	onTutorialComplete func()
}

// NewOutcomeSystem creates an outcome monitor; onTutorialComplete may be nil
func NewOutcomeSystem(ctx *engine.GameContext, onTutorialComplete func()) *OutcomeSystem {
	return &OutcomeSystem{ctx: ctx, onTutorialComplete: onTutorialComplete}
}

// Evaluate checks terminal conditions on the live session
func (s *OutcomeSystem) Evaluate() {
	sess := s.ctx.Session
	if sess == nil || sess.Terminal() {
		return
	}

	switch {
	case sess.Trace >= constants.TraceMax:
		sess.Result = engine.ResultFailure
		sess.AppendLog(locale.Get(locale.LogTraceComplete))
		s.ctx.PushEvent(events.EventSessionFailed, s.payload(sess))
		s.ctx.Logger().Info("session failed", slog.Int("trace", sess.Trace))

	case sess.AllBreached():
		sess.Result = engine.ResultSuccess
		s.ctx.PushEvent(events.EventSessionSucceeded, s.payload(sess))
		s.ctx.Logger().Info("session succeeded", slog.Int("trace", sess.Trace))

		if sess.Mode != engine.ModeTutorial {
			sess.AppendLog(locale.Get(locale.LogHackSuccessful))
			return
		}

		sess.AppendLog(
			locale.Get(locale.LogTutorialComplete),
			locale.Get(locale.LogTutorialChain),
		)
		if s.onTutorialComplete != nil {
			s.ctx.Scheduler.After(constants.TutorialChainDelay, sess.Generation, s.onTutorialComplete)
		}
	}
}

func (s *OutcomeSystem) payload(sess *engine.Session) *events.SessionOutcomePayload {
	return &events.SessionOutcomePayload{
		SessionID: sess.ID,
		Tutorial:  sess.Mode == engine.ModeTutorial,
		Trace:     sess.Trace,
	}
}

package systems

import (
	"fmt"
	"log/slog"

	"github.com/lixenwraith/netrunner/components"
	"github.com/lixenwraith/netrunner/constants"
	"github.com/lixenwraith/netrunner/engine"
	"github.com/lixenwraith/netrunner/events"
	"github.com/lixenwraith/netrunner/locale"
)

// AttackSystem resolves command-versus-layer attacks
//
// Lifecycle of one invocation:
//   - validate synchronously, mark the layer attacking
//   - +1s: decide outcome, charge cost, log, stack cooldown, evaluate outcome
//   - +2s: clear the layer visual
//
// Both delayed phases address the layer and command by index in the session
// that armed them and are dropped if that session has been replaced
type AttackSystem struct {
	ctx     *engine.GameContext
	outcome OutcomeEvaluator
}

// NewAttackSystem creates an attack system reporting layer mutations to outcome
func NewAttackSystem(ctx *engine.GameContext, outcome OutcomeEvaluator) *AttackSystem {
	return &AttackSystem{ctx: ctx, outcome: outcome}
}

// Execute launches command ci against layer li
// A nil return means the attack is in flight; every error is a no-op rejection
func (s *AttackSystem) Execute(ci, li int) error {
	sess := s.ctx.Session
	if sess == nil || sess.Terminal() {
		return ErrSessionOver
	}

	cmd, ok := sess.Command(ci)
	if !ok {
		return ErrInvalidTarget
	}
	layer, ok := sess.Layer(li)
	if !ok {
		return ErrInvalidTarget
	}

	if !cmd.Affordable(sess.Power.Current) {
		sess.AppendLog(locale.Format(locale.LogInsufficientPower, sess.Power.Current, cmd.PowerCost))
		s.ctx.PushEvent(events.EventInsufficientPower, s.payload(ci, li, cmd, layer, false))
		return fmt.Errorf("%w: %d/%d", ErrInsufficientPower, sess.Power.Current, cmd.PowerCost)
	}

	if !cmd.Available() || layer.Breached {
		return ErrInvalidAction
	}

	layer.Visual = components.VisualAttacking
	s.ctx.PushEvent(events.EventAttackStarted, s.payload(ci, li, cmd, layer, false))
	s.ctx.Logger().Debug("attack started",
		slog.String("command", cmd.Name),
		slog.String("layer", layer.Name),
	)

	gen := sess.Generation
	s.ctx.Scheduler.After(constants.AttackResolveDelay, gen, func() {
		s.resolve(gen, ci, li)
	})
	return nil
}

func (s *AttackSystem) resolve(gen uint64, ci, li int) {
	if !s.ctx.Live(gen) {
		return
	}
	sess := s.ctx.Session
	cmd, _ := sess.Command(ci)
	layer, _ := sess.Layer(li)

	success := layer.BreachableBy(cmd.Power)
	if success {
		layer.Breach()
		layer.Visual = components.VisualSucceeded
	} else {
		layer.Visual = components.VisualFailed
	}

	sess.Power.Spend(cmd.PowerCost)

	verdict := locale.Get(locale.LogBreachFailed)
	if success {
		verdict = locale.Format(locale.LogBreached, layer.Name)
	}
	sess.AppendLog(
		locale.Format(locale.LogExecuting, cmd.Name),
		locale.Format(locale.LogPowerConsumed, cmd.PowerCost),
		verdict,
	)

	cmd.AddCooldown(constants.CooldownPerUse)

	s.ctx.PushEvent(events.EventAttackResolved, s.payload(ci, li, cmd, layer, success))
	s.ctx.Logger().Info("attack resolved",
		slog.String("command", cmd.Name),
		slog.String("layer", layer.Name),
		slog.Bool("success", success),
		slog.Int("power", sess.Power.Current),
	)

	s.ctx.Scheduler.After(constants.AttackClearDelay, gen, func() {
		if !s.ctx.Live(gen) {
			return
		}
		if l, ok := s.ctx.Session.Layer(li); ok {
			l.Visual = components.VisualNone
		}
	})

	if s.outcome != nil {
		s.outcome.Evaluate()
	}
}

func (s *AttackSystem) payload(ci, li int, cmd *components.Command, layer *components.SecurityLayer, success bool) *events.AttackPayload {
	return &events.AttackPayload{
		CommandIndex: ci,
		LayerIndex:   li,
		Command:      cmd.Name,
		Layer:        layer.Name,
		Success:      success,
	}
}

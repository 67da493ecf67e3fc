package systems

import (
	"testing"

	"github.com/lixenwraith/netrunner/components"
	"github.com/lixenwraith/netrunner/engine"
)

// testRig bundles a context with every system wired the way the controller wires them
type testRig struct {
	ctx      *engine.GameContext
	attack   *AttackSystem
	outcome  *OutcomeSystem
	trace    *TraceSystem
	cooldown *CooldownSystem
	power    *PowerSystem
	chained  int
}

func newTestRig(t *testing.T, mode engine.Mode) *testRig {
	t.Helper()
	r := &testRig{ctx: engine.NewGameContext(nil)}
	r.outcome = NewOutcomeSystem(r.ctx, func() { r.chained++ })
	r.attack = NewAttackSystem(r.ctx, r.outcome)
	r.trace = NewTraceSystem(r.ctx, r.outcome)
	r.cooldown = NewCooldownSystem(r.ctx)
	r.power = NewPowerSystem(r.ctx)
	r.ctx.Reset(mode)
	return r
}

// arm starts the three session clocks on the live generation
func (r *testRig) arm() {
	ArmClock(r.ctx, r.ctx.Session.Generation, r.trace, r.cooldown, r.power)
}

// single replaces the session's layers and commands with one of each
func (r *testRig) single(difficulty, power, cost, startPower int) {
	s := r.ctx.Session
	s.Layers = []components.SecurityLayer{{Name: "Target", Difficulty: difficulty}}
	s.Commands = []components.Command{{Name: "PROBE.exe", Power: power, PowerCost: cost}}
	s.Power.Current = startPower
}

package systems

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/netrunner/components"
	"github.com/lixenwraith/netrunner/engine"
	"github.com/lixenwraith/netrunner/events"
)

func TestAttackFailureChargesCostAndStacksCooldown(t *testing.T) {
	r := newTestRig(t, engine.ModeMain)
	r.single(3, 2, 3, 10)
	s := r.ctx.Session

	require.NoError(t, r.attack.Execute(0, 0))
	assert.Equal(t, components.VisualAttacking, s.Layers[0].Visual)
	assert.Equal(t, 10, s.Power.Current, "cost is not charged at invocation")

	r.ctx.Scheduler.Advance(time.Second)

	assert.False(t, s.Layers[0].Breached)
	assert.Equal(t, components.VisualFailed, s.Layers[0].Visual)
	assert.Equal(t, 7, s.Power.Current)
	assert.Equal(t, 3, s.Commands[0].Cooldown)
	assert.False(t, s.Commands[0].Available())

	tail := s.Log[len(s.Log)-3:]
	assert.Equal(t, []string{
		"> EXECUTING PROBE.exe...",
		"> POWER CONSUMED: 3",
		"> BREACH FAILED - INSUFFICIENT POWER",
	}, tail)

	r.ctx.Scheduler.Advance(time.Second)
	assert.Equal(t, components.VisualNone, s.Layers[0].Visual)
}

func TestAttackSuccessBreachesLayer(t *testing.T) {
	r := newTestRig(t, engine.ModeMain)
	r.single(3, 5, 3, 10)
	s := r.ctx.Session

	require.NoError(t, r.attack.Execute(0, 0))
	r.ctx.Scheduler.Advance(time.Second)

	assert.True(t, s.Layers[0].Breached)
	assert.Equal(t, components.VisualSucceeded, s.Layers[0].Visual)
	assert.Equal(t, 7, s.Power.Current)
	assert.Contains(t, s.Log, "> Target BREACHED!")

	r.ctx.Scheduler.Advance(time.Second)
	assert.Equal(t, components.VisualNone, s.Layers[0].Visual)
	assert.True(t, s.Layers[0].Breached, "clearing the visual keeps the breach")
}

func TestAttackInsufficientPowerRejectedImmediately(t *testing.T) {
	r := newTestRig(t, engine.ModeMain)
	r.single(3, 5, 3, 2)
	s := r.ctx.Session
	logLen := len(s.Log)

	err := r.attack.Execute(0, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInsufficientPower))

	require.Len(t, s.Log, logLen+1)
	assert.Contains(t, s.Log[logLen], "2/3")
	assert.Equal(t, 2, s.Power.Current)
	assert.Equal(t, 0, s.Commands[0].Cooldown)
	assert.Equal(t, components.VisualNone, s.Layers[0].Visual)
	assert.Equal(t, 0, r.ctx.Scheduler.Pending(), "no timer armed")

	evs := r.ctx.Events.Consume()
	require.Len(t, evs, 1)
	assert.Equal(t, events.EventInsufficientPower, evs[0].Type)
}

func TestAttackInvalidActionIsSilent(t *testing.T) {
	r := newTestRig(t, engine.ModeMain)
	s := r.ctx.Session

	s.Commands[0].AddCooldown(2)
	logLen := len(s.Log)
	assert.ErrorIs(t, r.attack.Execute(0, 0), ErrInvalidAction)

	s.Layers[1].Breach()
	assert.ErrorIs(t, r.attack.Execute(1, 1), ErrInvalidAction)

	assert.Len(t, s.Log, logLen, "invalid actions leave no log entry")
	assert.Equal(t, 10, s.Power.Current)
	assert.Equal(t, 0, r.ctx.Scheduler.Pending())
}

func TestAttackPowerCheckPrecedesAvailability(t *testing.T) {
	r := newTestRig(t, engine.ModeMain)
	s := r.ctx.Session
	s.Power.Current = 1
	s.Commands[0].AddCooldown(3)

	assert.ErrorIs(t, r.attack.Execute(0, 0), ErrInsufficientPower)
	assert.Contains(t, s.Log[len(s.Log)-1], "1/3")
}

func TestAttackRejectedWhenTerminalOrOutOfRange(t *testing.T) {
	r := newTestRig(t, engine.ModeMain)
	s := r.ctx.Session

	assert.ErrorIs(t, r.attack.Execute(7, 0), ErrInvalidTarget)
	assert.ErrorIs(t, r.attack.Execute(0, -1), ErrInvalidTarget)

	s.Result = engine.ResultFailure
	assert.ErrorIs(t, r.attack.Execute(0, 0), ErrSessionOver)

	r.ctx.Clear()
	assert.ErrorIs(t, r.attack.Execute(0, 0), ErrSessionOver)
}

func TestAttackOutcomeIsPureThreshold(t *testing.T) {
	tests := []struct {
		power, difficulty int
		breached          bool
	}{
		{1, 2, false},
		{2, 2, true},
		{5, 3, true},
		{5, 7, false},
	}

	for _, tt := range tests {
		for _, trace := range []int{0, 50, 96} {
			r := newTestRig(t, engine.ModeMain)
			r.single(tt.difficulty, tt.power, 1, 10)
			r.ctx.Session.Trace = trace

			require.NoError(t, r.attack.Execute(0, 0))
			r.ctx.Scheduler.Advance(time.Second)
			assert.Equal(t, tt.breached, r.ctx.Session.Layers[0].Breached,
				"power=%d difficulty=%d trace=%d", tt.power, tt.difficulty, trace)
		}
	}
}

func TestRepeatedFailedAttackKeepsOutcome(t *testing.T) {
	r := newTestRig(t, engine.ModeMain)
	r.single(4, 3, 1, 10)
	s := r.ctx.Session

	for i := 0; i < 3; i++ {
		s.Commands[0].SetCooldown(0)
		require.NoError(t, r.attack.Execute(0, 0))
		r.ctx.Scheduler.Advance(time.Second)
		assert.False(t, s.Layers[0].Breached)
	}
	assert.Equal(t, 7, s.Power.Current)
}

func TestConcurrentAttacksResolveIndependently(t *testing.T) {
	r := newTestRig(t, engine.ModeMain)
	s := r.ctx.Session

	require.NoError(t, r.attack.Execute(0, 0)) // BYPASS 2 vs Firewall 3: fail
	r.ctx.Scheduler.Advance(500 * time.Millisecond)
	require.NoError(t, r.attack.Execute(1, 0)) // CRYPTCRACK 3 vs Firewall 3: success

	r.ctx.Scheduler.Advance(500 * time.Millisecond)
	assert.False(t, s.Layers[0].Breached)
	assert.Equal(t, 7, s.Power.Current)

	r.ctx.Scheduler.Advance(500 * time.Millisecond)
	assert.True(t, s.Layers[0].Breached)
	assert.Equal(t, 3, s.Power.Current)
	assert.Equal(t, 3, s.Commands[0].Cooldown)
	assert.Equal(t, 3, s.Commands[1].Cooldown)
}

func TestConcurrentChargesNeverGoNegative(t *testing.T) {
	r := newTestRig(t, engine.ModeMain)
	s := r.ctx.Session
	s.Power.Current = 8

	require.NoError(t, r.attack.Execute(3, 0)) // cost 8
	require.NoError(t, r.attack.Execute(2, 1)) // cost 6, validated against the same 8

	r.ctx.Scheduler.Advance(time.Second)
	assert.Equal(t, 0, s.Power.Current, "second charge clamps at zero")
}

func TestStaleAttackDroppedAfterReset(t *testing.T) {
	r := newTestRig(t, engine.ModeMain)
	require.NoError(t, r.attack.Execute(3, 0))

	fresh := r.ctx.Reset(engine.ModeMain)
	r.ctx.Scheduler.Advance(3 * time.Second)

	assert.False(t, fresh.Layers[0].Breached)
	assert.Equal(t, components.VisualNone, fresh.Layers[0].Visual)
	assert.Equal(t, 10, fresh.Power.Current)
	assert.Equal(t, 0, fresh.Commands[3].Cooldown)
	assert.Len(t, fresh.Log, 2)
	assert.Equal(t, uint64(1), r.ctx.Scheduler.Dropped())
}

func TestInFlightAttackResolvesAfterTraceFailure(t *testing.T) {
	r := newTestRig(t, engine.ModeMain)
	s := r.ctx.Session
	s.Trace = 98

	require.NoError(t, r.attack.Execute(3, 0))
	r.trace.Tick()
	require.Equal(t, engine.ResultFailure, s.Result)

	r.ctx.Scheduler.Advance(time.Second)
	assert.True(t, s.Layers[0].Breached, "armed resolution still lands")
	assert.Equal(t, 2, s.Power.Current)
	assert.Equal(t, engine.ResultFailure, s.Result, "result stays terminal")
}

package systems

import (
	"github.com/lixenwraith/netrunner/constants"
	"github.com/lixenwraith/netrunner/engine"
)

// Ticker is a once-per-second session rule
type Ticker interface {
	Tick()
}

// OutcomeEvaluator reacts to trace and layer mutations
type OutcomeEvaluator interface {
	Evaluate()
}

// ArmClock registers each ticker on the scheduler under the given generation
// Tickers fire independently; their relative order within one second is unspecified.
// A ticker leaves the scheduler once the session it ticks for is terminal.
func ArmClock(ctx *engine.GameContext, gen uint64, tickers ...Ticker) {
	for _, t := range tickers {
		armTicker(ctx, gen, t)
	}
}

// armTicker binds one ticker to its own periodic task
func armTicker(ctx *engine.GameContext, gen uint64, t Ticker) {
	ctx.Scheduler.Every(constants.TickInterval, gen, func() bool {
		t.Tick()
		sess := ctx.Session
		return sess != nil && !sess.Terminal()
	})
}

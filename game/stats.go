package game

import (
	"github.com/lixenwraith/netrunner/events"
)

// Stats counts event outcomes across the process lifetime
type Stats struct {
	Sessions   int
	Attacks    int
	Breaches   int
	Failures   int
	Rejections int
	Wins       int
	Losses     int
}

type statsHandler struct{}

func (statsHandler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventSessionStarted,
		events.EventAttackStarted,
		events.EventAttackResolved,
		events.EventInsufficientPower,
		events.EventSessionSucceeded,
		events.EventSessionFailed,
	}
}

func (statsHandler) HandleEvent(g *Game, ev events.GameEvent) {
	st := &g.stats
	switch ev.Type {
	case events.EventSessionStarted:
		st.Sessions++
	case events.EventAttackStarted:
		st.Attacks++
	case events.EventAttackResolved:
		if p, ok := ev.Payload.(*events.AttackPayload); ok && p.Success {
			st.Breaches++
		} else {
			st.Failures++
		}
	case events.EventInsufficientPower:
		st.Rejections++
	case events.EventSessionSucceeded:
		st.Wins++
	case events.EventSessionFailed:
		st.Losses++
	}
}

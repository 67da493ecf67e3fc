package game

import (
	"time"

	"github.com/lixenwraith/netrunner/constants"
	"github.com/lixenwraith/netrunner/engine"
)

// Decide picks the next attack for an automated player
// It targets the earliest unbreached layer with the strongest launchable command
// that beats its difficulty; ok is false when the best move is to wait
func Decide(s *engine.Session) (ci, li int, ok bool) {
	if s == nil || s.Terminal() {
		return 0, 0, false
	}

	li = -1
	for i := range s.Layers {
		if !s.Layers[i].Breached {
			li = i
			break
		}
	}
	if li < 0 {
		return 0, 0, false
	}

	best := -1
	for i := range s.Commands {
		c := &s.Commands[i]
		if !s.Targetable(i, li) || !s.Layers[li].BreachableBy(c.Power) {
			continue
		}
		if best < 0 || c.Power > s.Commands[best].Power {
			best = i
		}
	}
	if best < 0 {
		return 0, 0, false
	}
	return best, li, true
}

// Autopilot plays sessions on virtual time
type Autopilot struct {
	game *Game
	step time.Duration
	// inFlight tracks layers with an armed attack so the pilot does not double up
	inFlight map[int]time.Duration
}

// NewAutopilot creates a pilot advancing g by step between decisions
func NewAutopilot(g *Game, step time.Duration) *Autopilot {
	if step <= 0 {
		step = 100 * time.Millisecond
	}
	return &Autopilot{game: g, step: step, inFlight: make(map[int]time.Duration)}
}

// Run plays until the session chain ends or limit of virtual time elapses
// onStep, if set, runs after every step
func (a *Autopilot) Run(limit time.Duration, onStep func()) engine.Result {
	g := a.game
	deadline := g.Now() + limit
	gen := uint64(0)

	for g.Now() < deadline {
		s := g.Session()
		if s == nil {
			return engine.ResultInProgress
		}
		if s.Generation != gen {
			gen = s.Generation
			clear(a.inFlight)
		}
		if s.Terminal() && !(s.Mode == engine.ModeTutorial && s.Result == engine.ResultSuccess) {
			return s.Result
		}

		if ci, li, ok := Decide(s); ok {
			if due, busy := a.inFlight[li]; !busy || g.Now() >= due {
				if g.ExecuteCommand(ci, li) == nil {
					a.inFlight[li] = g.Now() + constants.AttackResolveDelay
				}
			}
		}

		g.Advance(a.step)
		if onStep != nil {
			onStep()
		}
	}

	if s := g.Session(); s != nil {
		return s.Result
	}
	return engine.ResultInProgress
}

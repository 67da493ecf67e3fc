package systems

import (
	"github.com/lixenwraith/netrunner/engine"
)

// PowerSystem regenerates player power each tick while the session is active
type PowerSystem struct {
	ctx *engine.GameContext
}

func NewPowerSystem(ctx *engine.GameContext) *PowerSystem {
	return &PowerSystem{ctx: ctx}
}

func (s *PowerSystem) Tick() {
	sess := s.ctx.Session
	if sess == nil || sess.Terminal() {
		return
	}
	sess.Power.Regen()
}

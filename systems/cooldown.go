package systems

import (
	"github.com/lixenwraith/netrunner/constants"
	"github.com/lixenwraith/netrunner/engine"
)

// CooldownSystem decays command cooldowns each tick
// Decay pauses once the session is terminal
type CooldownSystem struct {
	ctx *engine.GameContext
}

func NewCooldownSystem(ctx *engine.GameContext) *CooldownSystem {
	return &CooldownSystem{ctx: ctx}
}

// Tick removes one second from every cooling command
func (s *CooldownSystem) Tick() {
	sess := s.ctx.Session
	if sess == nil || sess.Terminal() {
		return
	}

	for i := range sess.Commands {
		sess.Commands[i].Decay(constants.CooldownPerTick)
	}
}

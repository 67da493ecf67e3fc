package game

import (
	"github.com/lixenwraith/netrunner/audio"
	"github.com/lixenwraith/netrunner/events"
)

// SoundPlayer is the audio surface the game drives
// *audio.Engine satisfies it; failures stay inside the implementation
type SoundPlayer interface {
	Start() error
	Stop()
	Play(audio.SoundType) bool
}

// soundHandler maps game events to music and effect cues
type soundHandler struct {
	player SoundPlayer
}

func (h *soundHandler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventSessionStarted,
		events.EventAttackStarted,
		events.EventAttackResolved,
		events.EventMenuEntered,
	}
}

func (h *soundHandler) HandleEvent(g *Game, ev events.GameEvent) {
	switch ev.Type {
	case events.EventSessionStarted:
		// Audio errors are reported by the engine itself
		_ = h.player.Start()

	case events.EventAttackStarted:
		h.player.Play(audio.SoundHack)

	case events.EventAttackResolved:
		p, ok := ev.Payload.(*events.AttackPayload)
		if !ok {
			return
		}
		if p.Success {
			h.player.Play(audio.SoundSuccess)
		} else {
			h.player.Play(audio.SoundFailure)
		}

	case events.EventMenuEntered:
		h.player.Stop()
		h.player.Play(audio.SoundStartup)
	}
}

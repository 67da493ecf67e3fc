package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/netrunner/components"
	"github.com/lixenwraith/netrunner/constants"
	"github.com/lixenwraith/netrunner/locale"
)

// Mode selects the layer set a session is seeded with
type Mode int

const (
	ModeTutorial Mode = iota
	ModeMain
)

func (m Mode) String() string {
	switch m {
	case ModeTutorial:
		return "tutorial"
	case ModeMain:
		return "main"
	default:
		return "unknown"
	}
}

// Result is the session outcome, terminal once Success or Failure
type Result int

const (
	ResultInProgress Result = iota
	ResultSuccess
	ResultFailure
)

func (r Result) String() string {
	switch r {
	case ResultInProgress:
		return "in-progress"
	case ResultSuccess:
		return "success"
	case ResultFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Terminal reports whether the result ends the session
func (r Result) Terminal() bool {
	return r == ResultSuccess || r == ResultFailure
}

// Session is one play-through with its own fresh state
// A session is never reused: reinitialization replaces the whole value
type Session struct {
	ID         string
	Generation uint64
	Mode       Mode

	Layers   []components.SecurityLayer
	Commands []components.Command
	Power    components.PlayerPower
	Trace    int
	Result   Result
	Log      []string
}

// NewSession seeds a session for the given mode
func NewSession(mode Mode, generation uint64) *Session {
	seeds := constants.MainLayers
	if mode == ModeTutorial {
		seeds = constants.TutorialLayers
	}

	layers := make([]components.SecurityLayer, len(seeds))
	for i, seed := range seeds {
		layers[i] = components.SecurityLayer{Name: seed.Name, Difficulty: seed.Difficulty}
	}

	commands := make([]components.Command, len(constants.Commands))
	for i, seed := range constants.Commands {
		commands[i] = components.Command{Name: seed.Name, Power: seed.Power, PowerCost: seed.PowerCost}
	}

	return &Session{
		ID:         uuid.NewString(),
		Generation: generation,
		Mode:       mode,
		Layers:     layers,
		Commands:   commands,
		Power: components.PlayerPower{
			Current:      constants.PowerInitial,
			Max:          constants.PowerMax,
			RegenPerTick: constants.PowerRegenPerTick,
		},
		Log: []string{
			locale.Get(locale.LogInitiating),
			locale.Get(locale.LogConnecting),
		},
	}
}

// Terminal reports whether the session has ended
func (s *Session) Terminal() bool {
	return s.Result.Terminal()
}

// AllBreached reports whether every layer in the set is breached
func (s *Session) AllBreached() bool {
	for i := range s.Layers {
		if !s.Layers[i].Breached {
			return false
		}
	}
	return len(s.Layers) > 0
}

// Layer returns the layer at index i
func (s *Session) Layer(i int) (*components.SecurityLayer, bool) {
	if i < 0 || i >= len(s.Layers) {
		return nil, false
	}
	return &s.Layers[i], true
}

// Command returns the command at index i
func (s *Session) Command(i int) (*components.Command, bool) {
	if i < 0 || i >= len(s.Commands) {
		return nil, false
	}
	return &s.Commands[i], true
}

// Targetable reports whether command ci may be launched at layer li right now
// This is the single derivation behind target-button visibility
func (s *Session) Targetable(ci, li int) bool {
	if s.Terminal() {
		return false
	}
	cmd, ok := s.Command(ci)
	if !ok {
		return false
	}
	layer, ok := s.Layer(li)
	if !ok {
		return false
	}
	return cmd.Available() && cmd.Affordable(s.Power.Current) && !layer.Breached
}

// RaiseTrace adds n to the trace level, clamped to the maximum
// Has no effect once the session has ended
func (s *Session) RaiseTrace(n int) {
	if s.Terminal() || n <= 0 {
		return
	}
	s.Trace = min(s.Trace+n, constants.TraceMax)
}

// AppendLog adds entries to the session log
func (s *Session) AppendLog(lines ...string) {
	s.Log = append(s.Log, lines...)
}

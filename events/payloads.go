package events

// SessionStartedPayload identifies the new session
type SessionStartedPayload struct {
	SessionID string
	Tutorial  bool
}

// AttackPayload describes one attack invocation
type AttackPayload struct {
	CommandIndex int
	LayerIndex   int
	Command      string
	Layer        string
	Success      bool // Meaningful only on EventAttackResolved
}

// SessionOutcomePayload describes a terminal session result
type SessionOutcomePayload struct {
	SessionID string
	Tutorial  bool
	Trace     int
}

// TutorialPayload carries the tutorial cursor after a change
type TutorialPayload struct {
	Step    int
	Visible bool
}

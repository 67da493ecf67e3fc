package events

import "time"

// EventType represents the type of game event
type EventType int

const (
	// EventSessionStarted signals a freshly initialized session
	// Trigger: Game.InitializeSession, tutorial chain
	// Consumer: audio handler (music start) | Payload: *SessionStartedPayload
	EventSessionStarted EventType = iota

	// EventSessionEnded signals the session was abandoned
	// Trigger: Game.QuitToMenu | Payload: nil
	EventSessionEnded

	// EventAttackStarted signals a validated attack entering its delay phase
	// Trigger: AttackSystem.Execute
	// Consumer: audio handler (hack cue) | Payload: *AttackPayload
	EventAttackStarted

	// EventAttackResolved signals the end of an attack's delay phase
	// Trigger: AttackSystem resolve task
	// Consumer: audio handler, tutorial | Payload: *AttackPayload
	EventAttackResolved

	// EventInsufficientPower signals a rejected attack
	// Trigger: AttackSystem.Execute | Payload: *AttackPayload
	EventInsufficientPower

	// EventSessionSucceeded signals every layer breached
	// Trigger: OutcomeSystem | Payload: *SessionOutcomePayload
	EventSessionSucceeded

	// EventSessionFailed signals trace saturation
	// Trigger: OutcomeSystem | Payload: *SessionOutcomePayload
	EventSessionFailed

	// EventTutorialAdvanced signals a tutorial step change
	// Trigger: Game.AdvanceTutorial, auto-advance on predicate | Payload: *TutorialPayload
	EventTutorialAdvanced

	// EventMenuEntered signals a return to (or first display of) the start menu
	// Consumer: audio handler (startup flourish) | Payload: nil
	EventMenuEntered

	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	EventSessionStarted:    "SessionStarted",
	EventSessionEnded:      "SessionEnded",
	EventAttackStarted:     "AttackStarted",
	EventAttackResolved:    "AttackResolved",
	EventInsufficientPower: "InsufficientPower",
	EventSessionSucceeded:  "SessionSucceeded",
	EventSessionFailed:     "SessionFailed",
	EventTutorialAdvanced:  "TutorialAdvanced",
	EventMenuEntered:       "MenuEntered",
}

func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "Unknown"
	}
	return eventNames[t]
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type       EventType
	Payload    any
	Generation uint64        // Session generation that emitted the event
	At         time.Duration // Scheduler time of emission
}

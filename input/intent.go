package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Ctrl+Q, Ctrl+C
	IntentEscape     // ESC (quit dialog or back)
	IntentToggleMute // m
	IntentVolumeUp   // +, =
	IntentVolumeDown // -
	IntentResize     // Terminal resize event

	// Cursor navigation
	IntentUp    // k, Up arrow
	IntentDown  // j, Down arrow
	IntentLeft  // h, Left arrow
	IntentRight // l, Right arrow, Tab

	// Selection
	IntentConfirm // Enter
	IntentYes     // y
	IntentNo      // n

	// Session and tutorial control
	IntentRetry        // r after game over
	IntentTutorialNext // Space
	IntentTutorialSkip // s
	IntentTutorialShow // ?
)

var intentNames = [...]string{
	IntentNone:         "none",
	IntentQuit:         "quit",
	IntentEscape:       "escape",
	IntentToggleMute:   "toggle_mute",
	IntentVolumeUp:     "volume_up",
	IntentVolumeDown:   "volume_down",
	IntentResize:       "resize",
	IntentUp:           "up",
	IntentDown:         "down",
	IntentLeft:         "left",
	IntentRight:        "right",
	IntentConfirm:      "confirm",
	IntentYes:          "yes",
	IntentNo:           "no",
	IntentRetry:        "retry",
	IntentTutorialNext: "tutorial_next",
	IntentTutorialSkip: "tutorial_skip",
	IntentTutorialShow: "tutorial_show",
}

func (i IntentType) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}

// Action is a side effect the caller must perform outside the game controller
type Action uint8

const (
	ActionNone Action = iota
	ActionExit
	ActionToggleMute
	ActionVolumeUp
	ActionVolumeDown
	ActionResize
)

package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlQ:   IntentQuit,
			tcell.KeyCtrlC:   IntentQuit,
			tcell.KeyEscape:  IntentEscape,
			tcell.KeyUp:      IntentUp,
			tcell.KeyDown:    IntentDown,
			tcell.KeyLeft:    IntentLeft,
			tcell.KeyRight:   IntentRight,
			tcell.KeyTab:     IntentRight,
			tcell.KeyBacktab: IntentLeft,
			tcell.KeyEnter:   IntentConfirm,
		},
		Runes: map[rune]IntentType{
			'k': IntentUp,
			'j': IntentDown,
			'h': IntentLeft,
			'l': IntentRight,
			'y': IntentYes,
			'n': IntentNo,
			'r': IntentRetry,
			' ': IntentTutorialNext,
			's': IntentTutorialSkip,
			'?': IntentTutorialShow,
			'm': IntentToggleMute,
			'+': IntentVolumeUp,
			'=': IntentVolumeUp,
			'-': IntentVolumeDown,
			'q': IntentEscape,
		},
	}
}

// Translate resolves a terminal event to an intent
func (t *KeyTable) Translate(ev tcell.Event) IntentType {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return IntentResize
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			return t.Runes[ev.Rune()]
		}
		return t.SpecialKeys[ev.Key()]
	}
	return IntentNone
}

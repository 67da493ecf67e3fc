// Package locale holds the player-facing message catalog
// Messages are addressed by key; the English catalog is embedded and always loaded
package locale

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/leonelquinteros/gotext"
)

// Log line keys
const (
	LogInitiating        = "LOG_INITIATING"
	LogConnecting        = "LOG_CONNECTING"
	LogInsufficientPower = "LOG_INSUFFICIENT_POWER"
	LogExecuting         = "LOG_EXECUTING"
	LogPowerConsumed     = "LOG_POWER_CONSUMED"
	LogBreached          = "LOG_BREACHED"
	LogBreachFailed      = "LOG_BREACH_FAILED"
	LogTraceComplete     = "LOG_TRACE_COMPLETE"
	LogHackSuccessful    = "LOG_HACK_SUCCESSFUL"
	LogTutorialComplete  = "LOG_TUTORIAL_COMPLETE"
	LogTutorialChain     = "LOG_TUTORIAL_CHAIN"
)

// Tutorial copy keys
const (
	TutorialWelcome     = "TUTORIAL_WELCOME"
	TutorialLayers      = "TUTORIAL_LAYERS"
	TutorialCommands    = "TUTORIAL_COMMANDS"
	TutorialPower       = "TUTORIAL_POWER"
	TutorialTrace       = "TUTORIAL_TRACE"
	TutorialFirstAttack = "TUTORIAL_FIRST_ATTACK"
	TutorialCooldown    = "TUTORIAL_COOLDOWN"
	TutorialFarewell    = "TUTORIAL_FAREWELL"
)

// Screen copy keys
const (
	MenuTutorial    = "MENU_TUTORIAL"
	MenuDirect      = "MENU_DIRECT"
	MenuQuote1      = "MENU_QUOTE_1"
	MenuQuote2      = "MENU_QUOTE_2"
	MenuQuoteAuthor = "MENU_QUOTE_AUTHOR"
	BannerSuccess   = "BANNER_SUCCESS"
	BannerFailure   = "BANNER_FAILURE"
	QuitPrompt      = "QUIT_PROMPT"
)

// Board copy keys
const (
	PanelTrace         = "PANEL_TRACE"
	PanelPower         = "PANEL_POWER"
	PanelLayers        = "PANEL_LAYERS"
	PanelCommands      = "PANEL_COMMANDS"
	PanelLog           = "PANEL_LOG"
	LayerSecure        = "LAYER_SECURE"
	LayerBreached      = "LAYER_BREACHED"
	LayerAttacking     = "LAYER_ATTACKING"
	LayerRepelled      = "LAYER_REPELLED"
	CommandReady       = "COMMAND_READY"
	CommandCooldown    = "COMMAND_COOLDOWN"
	TutorialStep       = "TUTORIAL_STEP"
	HintBoard          = "HINT_BOARD"
	HintTutorial       = "HINT_TUTORIAL"
	HintTutorialAction = "HINT_TUTORIAL_ACTION"
	HintShowTutorial   = "HINT_SHOW_TUTORIAL"
	HintGameOver       = "HINT_GAME_OVER"
	HintMenu           = "HINT_MENU"
	StatusMuted        = "STATUS_MUTED"
	StatusVolume       = "STATUS_VOLUME"
)

//go:embed en.po
var englishCatalog []byte

var (
	mu      sync.RWMutex
	catalog *gotext.Po
)

func init() {
	catalog = parse(englishCatalog)
}

func parse(data []byte) *gotext.Po {
	po := gotext.NewPo()
	po.Parse(data)
	return po
}

// Load replaces the active catalog with the given .po content
// Keys missing from the new catalog fall back to the key itself
func Load(data []byte) {
	po := parse(data)
	mu.Lock()
	catalog = po
	mu.Unlock()
}

// Reset restores the embedded English catalog
func Reset() {
	Load(englishCatalog)
}

// noArgs is passed to gotext so a lookup never formats the key
var noArgs []any

func lookup(key string) string {
	mu.RLock()
	po := catalog
	mu.RUnlock()
	return po.Get(key, noArgs...)
}

// Get returns the message for key verbatim
func Get(key string) string {
	return lookup(key)
}

// Format returns the message for key with args applied to its verbs
func Format(key string, args ...any) string {
	return fmt.Sprintf(lookup(key), args...)
}

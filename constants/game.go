package constants

import "time"

// Game Loop Timing Constants
const (
	// TickInterval is the period of the trace, cooldown and power clocks
	TickInterval = 1 * time.Second

	// DriverInterval is how often the real-time driver advances the scheduler
	DriverInterval = 50 * time.Millisecond

	// AttackResolveDelay is the time from invocation to attack resolution
	AttackResolveDelay = 1 * time.Second

	// AttackClearDelay is the time from resolution to visual reset
	AttackClearDelay = 1 * time.Second

	// TutorialChainDelay is the pause between tutorial success and main session start
	TutorialChainDelay = 3 * time.Second
)

// Session Resource Constants
const (
	TraceMax          = 100
	TracePerTick      = 2
	CooldownPerUse    = 3
	CooldownPerTick   = 1
	PowerInitial      = 10
	PowerMax          = 10
	PowerRegenPerTick = 1
)

// LayerSeed describes a security layer at session start
type LayerSeed struct {
	Name       string
	Difficulty int
}

// CommandSeed describes an attack command at session start
type CommandSeed struct {
	Name      string
	Power     int
	PowerCost int
}

// TutorialLayers is the single low-difficulty layer of the tutorial session
var TutorialLayers = []LayerSeed{
	{Name: "Firewall", Difficulty: 2},
}

// MainLayers is the full layer set of the main session
var MainLayers = []LayerSeed{
	{Name: "Firewall", Difficulty: 3},
	{Name: "Encryption", Difficulty: 4},
	{Name: "Neural ICE", Difficulty: 5},
	{Name: "Black ICE", Difficulty: 7},
}

// Commands is the command set shared by every session mode
// Every command starts with no cooldown
var Commands = []CommandSeed{
	{Name: "BYPASS.exe", Power: 2, PowerCost: 3},
	{Name: "CRYPTCRACK.exe", Power: 3, PowerCost: 4},
	{Name: "NEURAL_STORM.exe", Power: 4, PowerCost: 6},
	{Name: "ICE_BREAKER.exe", Power: 5, PowerCost: 8},
}

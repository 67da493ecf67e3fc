package constants

import "time"

// UI Timing Constants
const (
	// FrameUpdateInterval is the minimum spacing between redraws
	FrameUpdateInterval = 33 * time.Millisecond
)

// UI Layout Constants
const (
	// MeterWidth is the cell width of the trace and power bars
	MeterWidth = 30

	// LogVisibleLines is the number of trailing log lines shown
	LogVisibleLines = 10

	// MinScreenWidth is the narrowest layout the renderer supports
	MinScreenWidth = 60
)

// Title and flavour copy
const (
	GameTitle    = "NETRUNNER"
	GameSubtitle = "SECURITY BREACH v2.0.2.0"
	HeaderBanner = "[ARASAKA SECURITY BREACH IN PROGRESS]"
)

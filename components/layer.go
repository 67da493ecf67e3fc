package components

// VisualState is the presentation-only animation phase of a security layer
// It has no gameplay effect
type VisualState int

const (
	VisualNone VisualState = iota
	VisualAttacking
	VisualSucceeded
	VisualFailed
)

func (v VisualState) String() string {
	switch v {
	case VisualNone:
		return "none"
	case VisualAttacking:
		return "attacking"
	case VisualSucceeded:
		return "succeeded"
	case VisualFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SecurityLayer is a breach target with a fixed difficulty threshold
type SecurityLayer struct {
	Name       string
	Difficulty int
	Breached   bool // Monotonic within a session
	Visual     VisualState
}

// Breach marks the layer breached; already-breached layers stay breached
func (l *SecurityLayer) Breach() {
	l.Breached = true
}

// BreachableBy reports whether an attack of the given power breaches this layer
func (l *SecurityLayer) BreachableBy(power int) bool {
	return power >= l.Difficulty
}

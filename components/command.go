package components

// Command is a player attack action
// Availability is derived from Cooldown and never stored
type Command struct {
	Name      string
	Power     int // Attack strength compared against layer difficulty
	PowerCost int // Power spent at resolution
	Cooldown  int // Seconds remaining, never negative
}

// Available reports whether the command is off cooldown
func (c *Command) Available() bool {
	return c.Cooldown == 0
}

// Affordable reports whether the given power covers the command cost
func (c *Command) Affordable(power int) bool {
	return power >= c.PowerCost
}

// SetCooldown assigns the remaining cooldown, clamped at zero
func (c *Command) SetCooldown(seconds int) {
	if seconds < 0 {
		seconds = 0
	}
	c.Cooldown = seconds
}

// AddCooldown stacks additional cooldown on top of any remaining
func (c *Command) AddCooldown(seconds int) {
	c.SetCooldown(c.Cooldown + seconds)
}

// Decay removes elapsed seconds from the cooldown
func (c *Command) Decay(seconds int) {
	c.SetCooldown(c.Cooldown - seconds)
}

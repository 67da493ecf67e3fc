package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandAvailabilityDerivedFromCooldown(t *testing.T) {
	tests := []struct {
		name     string
		cooldown int
		want     bool
	}{
		{"ready", 0, true},
		{"cooling", 1, false},
		{"stacked", 6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Command{Name: "BYPASS.exe", Cooldown: tt.cooldown}
			assert.Equal(t, tt.want, c.Available())
		})
	}
}

func TestCommandCooldownClamp(t *testing.T) {
	c := Command{Name: "BYPASS.exe"}

	c.AddCooldown(3)
	c.AddCooldown(3)
	assert.Equal(t, 6, c.Cooldown, "cooldown stacks additively")

	c.Decay(10)
	assert.Equal(t, 0, c.Cooldown)
	assert.True(t, c.Available())

	c.SetCooldown(-4)
	assert.Equal(t, 0, c.Cooldown)
}

func TestCommandAffordable(t *testing.T) {
	c := Command{PowerCost: 3}
	assert.False(t, c.Affordable(2))
	assert.True(t, c.Affordable(3))
	assert.True(t, c.Affordable(10))
}

func TestPlayerPowerClamp(t *testing.T) {
	p := PlayerPower{Current: 9, Max: 10, RegenPerTick: 3}

	p.Regen()
	assert.Equal(t, 10, p.Current, "regen caps at max")

	p.Spend(4)
	assert.Equal(t, 6, p.Current)

	p.Spend(20)
	assert.Equal(t, 0, p.Current, "spend floors at zero")
	assert.Equal(t, 0.0, p.Fraction())
}

func TestLayerBreachIdempotent(t *testing.T) {
	l := SecurityLayer{Name: "Firewall", Difficulty: 3}

	assert.False(t, l.BreachableBy(2))
	assert.True(t, l.BreachableBy(3))

	l.Breach()
	l.Breach()
	assert.True(t, l.Breached)
}

func TestVisualStateString(t *testing.T) {
	assert.Equal(t, "attacking", VisualAttacking.String())
	assert.Equal(t, "unknown", VisualState(42).String())
}

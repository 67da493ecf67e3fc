package components

// PlayerPower is the spendable resource pool
// Current stays within [0, Max] after every mutation
type PlayerPower struct {
	Current      int
	Max          int
	RegenPerTick int
}

// Regen adds one tick of regeneration, capped at Max
func (p *PlayerPower) Regen() {
	p.set(p.Current + p.RegenPerTick)
}

// Spend deducts n, flooring at zero
func (p *PlayerPower) Spend(n int) {
	p.set(p.Current - n)
}

// Fraction returns Current/Max for meter rendering
func (p *PlayerPower) Fraction() float64 {
	if p.Max <= 0 {
		return 0
	}
	return float64(p.Current) / float64(p.Max)
}

func (p *PlayerPower) set(v int) {
	switch {
	case v < 0:
		v = 0
	case v > p.Max:
		v = p.Max
	}
	p.Current = v
}

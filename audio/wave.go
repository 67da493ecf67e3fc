package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

// Sweep selects how an oscillator glides from its start to its end frequency
type Sweep int

const (
	SweepNone Sweep = iota
	SweepExp
	SweepLinear
)

// oscillator generates a raw wave, optionally gliding in frequency
type oscillator struct {
	wave     WaveType
	rate     beep.SampleRate
	from, to float64
	sweep    Sweep
	glide    int // Samples over which the sweep completes; frequency holds afterwards
	duration int
	position int
	phase    float64
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweepOscillator(freq, freq, duration, duration, SweepNone, wave, rate)
}

// NewSweepOscillator creates an oscillator gliding from one frequency to another over glide
func NewSweepOscillator(from, to float64, glide, duration time.Duration, sweep Sweep, wave WaveType, rate beep.SampleRate) beep.Streamer {
	if glide > duration {
		glide = duration
	}
	if sweep == SweepExp {
		// Exponential ramps cannot reach or cross zero
		from = math.Max(from, 1e-3)
		to = math.Max(to, 1e-3)
	}
	return &oscillator{
		wave:     wave,
		rate:     rate,
		from:     from,
		to:       to,
		sweep:    sweep,
		glide:    rate.N(glide),
		duration: rate.N(duration),
	}
}

func (o *oscillator) freq() float64 {
	if o.sweep == SweepNone || o.glide <= 0 || o.position >= o.glide {
		if o.sweep == SweepNone {
			return o.from
		}
		return o.to
	}
	t := float64(o.position) / float64(o.glide)
	if o.sweep == SweepExp {
		return o.from * math.Pow(o.to/o.from, t)
	}
	return o.from + (o.to-o.from)*t
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 1.0 - 4.0*math.Abs(o.phase-0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq() / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a stream's gain
// A linear attack from zero to peak, a hold, then an exponential release
// towards floor that ends exactly at the stream's total length
type envelope struct {
	streamer beep.Streamer
	peak     float64
	floor    float64
	attack   int
	release  int // Release start, in samples
	total    int
	position int
}

// NewEnvelope wraps s with an attack/exponential-release gain contour
// An attack of zero starts at peak; a release of zero decays from the first sample
func NewEnvelope(s beep.Streamer, peak, floor float64, attack, releaseAt, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	if floor <= 0 {
		floor = 1e-4
	}
	return &envelope{
		streamer: s,
		peak:     peak,
		floor:    floor,
		attack:   rate.N(attack),
		release:  rate.N(releaseAt),
		total:    rate.N(duration),
	}
}

func (e *envelope) gain() float64 {
	switch {
	case e.position < e.attack:
		return e.peak * float64(e.position) / float64(e.attack)
	case e.position < e.release:
		return e.peak
	default:
		span := e.total - max(e.release, e.attack)
		if span <= 0 {
			return e.floor
		}
		t := float64(e.position-max(e.release, e.attack)) / float64(span)
		return e.peak * math.Pow(e.floor/e.peak, t)
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if len(samples) > e.total-e.position {
		samples = samples[:e.total-e.position]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain
// math.Log2(0) is -Inf, so zero volume is expressed as silence
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// delayed prefixes s with d of silence
func delayed(d time.Duration, s beep.Streamer, rate beep.SampleRate) beep.Streamer {
	if d <= 0 {
		return s
	}
	return beep.Seq(beep.Silence(rate.N(d)), s)
}

package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// FilterType selects the biquad response
type FilterType int

const (
	FilterLowPass FilterType = iota
	FilterBandPass
)

// biquad is a second-order IIR filter using the RBJ cookbook coefficients
// State is per channel
type biquad struct {
	streamer           beep.Streamer
	b0, b1, b2, a1, a2 float64
	x1, x2, y1, y2     [2]float64
}

// NewFilter wraps s in a resonant low-pass or band-pass filter
func NewFilter(s beep.Streamer, kind FilterType, cutoff, q float64, rate beep.SampleRate) beep.Streamer {
	nyquist := float64(rate) / 2
	cutoff = math.Min(math.Max(cutoff, 1), nyquist*0.99)
	if q <= 0 {
		q = math.Sqrt2 / 2
	}

	w0 := 2 * math.Pi * cutoff / float64(rate)
	cos, sin := math.Cos(w0), math.Sin(w0)
	alpha := sin / (2 * q)

	var b0, b1, b2 float64
	switch kind {
	case FilterBandPass:
		// Constant 0 dB peak gain
		b0, b1, b2 = alpha, 0, -alpha
	default:
		b0 = (1 - cos) / 2
		b1 = 1 - cos
		b2 = (1 - cos) / 2
	}
	a0 := 1 + alpha
	a1 := -2 * cos
	a2 := 1 - alpha

	return &biquad{
		streamer: s,
		b0:       b0 / a0,
		b1:       b1 / a0,
		b2:       b2 / a0,
		a1:       a1 / a0,
		a2:       a2 / a0,
	}
}

func (f *biquad) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		for c := 0; c < 2; c++ {
			x := samples[i][c]
			y := f.b0*x + f.b1*f.x1[c] + f.b2*f.x2[c] - f.a1*f.y1[c] - f.a2*f.y2[c]
			f.x2[c], f.x1[c] = f.x1[c], x
			f.y2[c], f.y1[c] = f.y1[c], y
			samples[i][c] = y
		}
	}
	return n, ok
}

func (f *biquad) Err() error { return f.streamer.Err() }

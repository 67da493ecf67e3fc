package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
)

const testRate = beep.SampleRate(8000)

// drainAll streams s to completion and returns the sample count and peak
func drainAll(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = max(peak, abs(buf[i][0]))
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
}

func TestOscillatorWaveRanges(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveTriangle, WaveNoise} {
		osc := NewOscillator(440, 50*time.Millisecond, wave, testRate)
		n, peak := drainAll(osc)
		assert.Equal(t, testRate.N(50*time.Millisecond), n, "wave %d length", wave)
		assert.LessOrEqual(t, peak, 1.0, "wave %d range", wave)
		assert.NoError(t, osc.Err())
	}
}

func TestSweepOscillatorLength(t *testing.T) {
	osc := NewSweepOscillator(1200, 600, 50*time.Millisecond, 80*time.Millisecond, SweepExp, WaveSquare, testRate)
	n, _ := drainAll(osc)
	assert.Equal(t, testRate.N(80*time.Millisecond), n)
}

func TestEnvelopeDecaysToFloor(t *testing.T) {
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, testRate), 0.3, 0.01, 0, 0, d, testRate)

	buf := make([][2]float64, testRate.N(d))
	n, _ := env.Stream(buf)
	assert.Equal(t, len(buf), n)
	assert.InDelta(t, 0.3, buf[0][0], 1e-9)
	assert.Less(t, abs(buf[n-1][0]), 0.012)
}

func TestEnvelopeAttackStartsSilent(t *testing.T) {
	d := 200 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, testRate), 0.2, 0.01, 50*time.Millisecond, 50*time.Millisecond, d, testRate)

	buf := make([][2]float64, testRate.N(50*time.Millisecond)+1)
	env.Stream(buf)
	assert.Zero(t, buf[0][0])
	assert.InDelta(t, 0.2, buf[len(buf)-1][0], 1e-9)
}

func TestEffectsTerminate(t *testing.T) {
	tests := []struct {
		sound SoundType
		want  time.Duration
	}{
		{SoundHack, 80 * time.Millisecond},
		{SoundSuccess, 260 * time.Millisecond},
		{SoundFailure, 200 * time.Millisecond},
		{SoundStartup, 1200 * time.Millisecond},
	}
	for _, tt := range tests {
		s := GetSoundEffect(tt.sound, testRate)
		n, peak := drainAll(s)
		assert.InDelta(t, testRate.N(tt.want), n, float64(testRate.N(5*time.Millisecond)), tt.sound.String())
		assert.Greater(t, peak, 0.0, tt.sound.String())
	}
	assert.Nil(t, GetSoundEffect(SoundType(99), testRate))
}

func TestFilterAttenuatesAboveCutoff(t *testing.T) {
	d := 200 * time.Millisecond
	_, low := drainAll(NewFilter(NewOscillator(100, d, WaveSine, testRate), FilterLowPass, 500, 0.707, testRate))
	_, high := drainAll(NewFilter(NewOscillator(3500, d, WaveSine, testRate), FilterLowPass, 500, 0.707, testRate))
	assert.Greater(t, low, 0.8)
	assert.Less(t, high, 0.1)
}

package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/netrunner/constants"
)

// SoundType identifies a one-shot effect
type SoundType int

const (
	SoundHack SoundType = iota
	SoundSuccess
	SoundFailure
	SoundStartup
)

var soundTypeNames = [...]string{"hack", "success", "failure", "startup"}

func (t SoundType) String() string {
	if int(t) < len(soundTypeNames) {
		return soundTypeNames[t]
	}
	return "unknown"
}

// CreateHackSound generates the attack-launch chirp
// A falling square and a falling saw through a narrow band-pass
func CreateHackSound(rate beep.SampleRate) beep.Streamer {
	d := constants.HackCueDuration
	square := NewSweepOscillator(1200, 600, constants.HackCueSweep, d, SweepExp, WaveSquare, rate)
	saw := NewSweepOscillator(300, 150, constants.HackCueSweep, d, SweepExp, WaveSaw, rate)
	filtered := NewFilter(beep.Mix(square, saw), FilterBandPass, constants.HackCueCenter, constants.HackCueQ, rate)
	return NewEnvelope(filtered, constants.HackCueGain, constants.EnvelopeFloor, 0, 0, d, rate)
}

// CreateSuccessSound generates the rising three-note breach chord
func CreateSuccessSound(rate beep.SampleRate) beep.Streamer {
	freqs := [...]float64{600, 800, 1200}
	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		wave := WaveSaw
		if i == 0 {
			wave = WaveSquare
		}
		d := constants.SuccessNoteDuration
		osc := NewOscillator(f, d, wave, rate)
		shaped := NewEnvelope(osc, 1, constants.EnvelopeFloor/constants.SuccessGain, 0, 0, d, rate)
		notes[i] = delayed(time.Duration(i)*constants.SuccessNoteStagger, shaped, rate)
	}
	return newVolume(beep.Mix(notes...), constants.SuccessGain)
}

// CreateFailureSound generates the descending breach-failed buzz
func CreateFailureSound(rate beep.SampleRate) beep.Streamer {
	d := constants.FailBuzzDuration
	saw := NewSweepOscillator(200, 150, d, d, SweepLinear, WaveSaw, rate)
	filtered := NewFilter(saw, FilterLowPass, constants.FailBuzzCutoff, constants.FailBuzzQ, rate)
	return NewEnvelope(filtered, constants.FailBuzzGain, constants.EnvelopeFloor, 0, 0, d, rate)
}

// CreateStartupSound generates the boot flourish: four staggered tones and a low sweep
func CreateStartupSound(rate beep.SampleRate) beep.Streamer {
	freqs := [...]float64{220, 440, 880, 587.33}
	parts := make([]beep.Streamer, 0, len(freqs)+1)
	for i, f := range freqs {
		wave := WaveSquare
		if i%2 == 0 {
			wave = WaveSaw
		}
		d := constants.StartupNoteDuration
		osc := NewOscillator(f, d, wave, rate)
		filtered := NewFilter(osc, FilterLowPass, constants.StartupCutoff, constants.StartupQ, rate)
		shaped := NewEnvelope(filtered, constants.StartupGain, constants.EnvelopeFloor,
			constants.StartupNoteAttack, constants.StartupNoteAttack, d, rate)
		parts = append(parts, delayed(time.Duration(i)*constants.StartupNoteStagger, shaped, rate))
	}

	sl := constants.StartupSweepLength
	sweep := NewSweepOscillator(80, 160, sl, sl, SweepExp, WaveSine, rate)
	sweepShaped := NewEnvelope(sweep, constants.StartupSweepGain, constants.EnvelopeFloor, 0, 0, sl, rate)
	parts = append(parts, delayed(constants.StartupSweepStart, sweepShaped, rate))

	return beep.Mix(parts...)
}

// GetSoundEffect returns the streamer for the given effect
func GetSoundEffect(t SoundType, rate beep.SampleRate) beep.Streamer {
	switch t {
	case SoundHack:
		return CreateHackSound(rate)
	case SoundSuccess:
		return CreateSuccessSound(rate)
	case SoundFailure:
		return CreateFailureSound(rate)
	case SoundStartup:
		return CreateStartupSound(rate)
	default:
		return nil
	}
}

package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/netrunner/constants"
)

// VoiceKind identifies the instrument a sequencer voice is rendered with
type VoiceKind int

const (
	VoiceKick VoiceKind = iota
	VoiceSnare
	VoiceHat
	VoiceBass
	VoicePad
	VoiceAtmosphere
)

var voiceKindNames = [...]string{"kick", "snare", "hat", "bass", "pad", "atmosphere"}

func (k VoiceKind) String() string {
	if int(k) < len(voiceKindNames) {
		return voiceKindNames[k]
	}
	return "unknown"
}

// Voice is one note triggered at a sub-beat
type Voice struct {
	Kind     VoiceKind
	Freq     float64
	Duration time.Duration
}

var bassLine = [16]int{36, 36, 41, 43, 36, 36, 41, 38, 36, 36, 41, 43, 36, 34, 33, 31}

var padChords = [4][3]int{
	{48, 51, 55},
	{48, 51, 55},
	{53, 56, 60},
	{55, 58, 62},
}

// BeatInterval is the time between sequencer steps
func BeatInterval() time.Duration {
	return time.Minute / constants.MusicBPM
}

// MeasureLength is the duration of one measure
func MeasureLength() time.Duration {
	return BeatInterval() * constants.MusicBeatsPerMeasure
}

// Sequencer walks the 64-step ambient loop
// Not safe for concurrent use; the engine's beat goroutine owns it
type Sequencer struct {
	step int
}

// Position returns the sub-beat the next Step will play
func (q *Sequencer) Position() int {
	return q.step
}

// Reset rewinds to the first sub-beat
func (q *Sequencer) Reset() {
	q.step = 0
}

// Step returns the voices for the current sub-beat and advances
func (q *Sequencer) Step() []Voice {
	voices := VoicesAt(q.step)
	q.step = (q.step + 1) % constants.MusicSequenceLength
	return voices
}

// VoicesAt applies the rhythm masks for sub-beat s
func VoicesAt(s int) []Voice {
	s %= constants.MusicSequenceLength
	measure := MeasureLength()

	var voices []Voice
	if s%8 == 0 {
		voices = append(voices, Voice{Kind: VoiceKick, Freq: constants.KickFrequency, Duration: constants.KickDecay})
	}
	if s%8 == 4 {
		voices = append(voices, Voice{Kind: VoiceSnare, Freq: constants.SnareFrequency, Duration: constants.SnareDecay})
	}
	if s%2 == 0 {
		voices = append(voices, Voice{Kind: VoiceHat, Freq: constants.HatFrequency, Duration: constants.HatDecay})
	}
	if s%4 == 0 {
		voices = append(voices, Voice{Kind: VoiceBass, Freq: NoteFreq(bassLine[s/4]), Duration: measure})
	}
	if s%16 == 0 {
		for _, note := range padChords[(s/16)%len(padChords)] {
			voices = append(voices, Voice{Kind: VoicePad, Freq: NoteFreq(note), Duration: 4 * measure})
		}
	}
	if s%32 == 0 {
		voices = append(voices, Voice{Kind: VoiceAtmosphere, Freq: NoteFreq(constants.AtmosphereNote), Duration: 8 * measure})
	}
	return voices
}

// Streamer renders the voice at the given rate
func (v Voice) Streamer(rate beep.SampleRate) beep.Streamer {
	switch v.Kind {
	case VoiceKick, VoiceSnare, VoiceHat:
		return drum(v.Freq, v.Duration, rate)
	case VoiceBass:
		return synthNote(v.Freq, v.Duration, WaveSaw, rate)
	case VoicePad:
		return synthNote(v.Freq, v.Duration, WaveTriangle, rate)
	default:
		return synthNote(v.Freq, v.Duration, WaveSine, rate)
	}
}

// drum is a sine whose pitch and gain both fall exponentially over decay
func drum(freq float64, decay time.Duration, rate beep.SampleRate) beep.Streamer {
	osc := NewSweepOscillator(freq, constants.SweepFloorFreqHz, decay, decay, SweepExp, WaveSine, rate)
	return NewEnvelope(osc, constants.DrumGain, constants.EnvelopeFloor, 0, 0, decay, rate)
}

// synthNote is a held tone through the resonant low-pass
func synthNote(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, duration, wave, rate)
	filtered := NewFilter(osc, FilterLowPass, constants.SynthCutoff, constants.SynthResonance, rate)
	return NewEnvelope(filtered, constants.SynthGain, constants.EnvelopeFloor,
		constants.SynthAttack, constants.SynthAttack, duration-constants.SynthRelease, rate)
}

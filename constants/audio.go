package constants

import "time"

// Audio Engine Configuration
const (
	// AudioSampleRate is the default output sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the default speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioDefaultVolume is the master gain applied when no preference exists
	AudioDefaultVolume = 0.3

	// AudioVolumeStep is the change applied by one volume key press
	AudioVolumeStep = 0.1

	// MusicBPM is the tempo of the ambient loop
	MusicBPM = 70

	// MusicSequenceLength is the sub-beat count of one loop (16 measures x 4 beats)
	MusicSequenceLength = 64

	// MusicBeatsPerMeasure converts sub-beats to measures
	MusicBeatsPerMeasure = 4
)

// Percussion Timing
const (
	KickFrequency  = 60.0
	KickDecay      = 300 * time.Millisecond
	SnareFrequency = 200.0
	SnareDecay     = 200 * time.Millisecond
	HatFrequency   = 1000.0
	HatDecay       = 100 * time.Millisecond
	DrumGain       = 0.3
)

// Synth Voice Shaping
const (
	SynthGain        = 0.3
	SynthAttack      = 100 * time.Millisecond
	SynthRelease     = 100 * time.Millisecond
	SynthCutoff      = 1000.0
	SynthResonance   = 10.0
	AtmosphereNote   = 72
	EnvelopeFloor    = 0.01
	SweepFloorFreqHz = 1.0
)

// Hack Cue Timing
const (
	HackCueDuration = 80 * time.Millisecond
	HackCueSweep    = 50 * time.Millisecond
	HackCueGain     = 0.15
	HackCueCenter   = 2000.0
	HackCueQ        = 8.0
)

// Success Chord Timing
const (
	SuccessNoteDuration = 200 * time.Millisecond
	SuccessNoteStagger  = 30 * time.Millisecond
	SuccessGain         = 0.1
)

// Failure Buzz Timing
const (
	FailBuzzDuration = 200 * time.Millisecond
	FailBuzzGain     = 0.2
	FailBuzzCutoff   = 1000.0
	FailBuzzQ        = 10.0
)

// Startup Flourish Timing
const (
	StartupNoteStagger  = 150 * time.Millisecond
	StartupNoteAttack   = 50 * time.Millisecond
	StartupNoteDuration = 300 * time.Millisecond
	StartupGain         = 0.2
	StartupCutoff       = 2000.0
	StartupQ            = 5.0
	StartupSweepStart   = 600 * time.Millisecond
	StartupSweepLength  = 600 * time.Millisecond
	StartupSweepGain    = 0.15
)

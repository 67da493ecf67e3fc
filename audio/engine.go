// Package audio synthesizes the ambient loop and one-shot effects
// Audio is decorative: device failure degrades to silent mode and never reaches game state
package audio

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/netrunner/constants"
	"github.com/lixenwraith/netrunner/core"
)

// ErrUnavailable reports that no output device could be opened
var ErrUnavailable = errors.New("audio output unavailable")

// State is the music loop state
type State int32

const (
	StateStopped State = iota
	StateRunning
)

func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "stopped"
}

// Options configures an Engine
// Zero SampleRate and Buffer take package defaults; Volume is used as given
type Options struct {
	SampleRate int
	Buffer     time.Duration
	Volume     float64
	Disabled   bool
	Sink       Sink
	Logger     *slog.Logger
}

// Engine owns the output device, the master gain and the music sequencer
//
// Every method is safe to call at any time and from any goroutine. The device
// is opened lazily by the first call that needs it.
type Engine struct {
	sink   Sink
	rate   beep.SampleRate
	buffer int
	logger *slog.Logger

	mixer  *beep.Mixer
	volume atomic.Uint64 // math.Float64bits of master gain
	muted  atomic.Bool

	initOnce sync.Once
	initErr  error
	silent   atomic.Bool
	opened   atomic.Bool

	mu    sync.Mutex // Protects state, seq and stop
	state State
	seq   Sequencer
	stop  chan struct{}
	wg    sync.WaitGroup

	beats  atomic.Uint64
	played atomic.Uint64
}

// NewEngine creates a stopped engine; no device is touched until first use
func NewEngine(opts Options) *Engine {
	rate := opts.SampleRate
	if rate <= 0 {
		rate = constants.AudioSampleRate
	}
	buffer := opts.Buffer
	if buffer <= 0 {
		buffer = constants.AudioBufferDuration
	}
	sink := opts.Sink
	if sink == nil {
		sink = SpeakerSink()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	e := &Engine{
		sink:   sink,
		rate:   beep.SampleRate(rate),
		buffer: beep.SampleRate(rate).N(buffer),
		logger: logger.With(slog.String("component", "audio")),
		mixer:  &beep.Mixer{},
	}
	e.SetVolume(opts.Volume)
	e.muted.Store(opts.Disabled)
	return e
}

// init opens the device once; failure switches the engine to silent mode
func (e *Engine) init() error {
	e.initOnce.Do(func() {
		if err := e.sink.Init(e.rate, e.buffer); err != nil {
			e.initErr = fmt.Errorf("%w: %v", ErrUnavailable, err)
			e.silent.Store(true)
			e.logger.Warn("audio device unavailable, running silent", slog.Any("error", err))
			return
		}
		e.sink.Play(&masterGain{engine: e, streamer: e.mixer})
		e.opened.Store(true)
		e.logger.Info("audio device opened", slog.Int("rate", int(e.rate)))
	})
	return e.initErr
}

// Start begins the music loop, playing the first sub-beat immediately
// Returns ErrUnavailable (wrapped) if the device could not be opened; the engine
// still transitions to running so state stays consistent with the caller's view
func (e *Engine) Start() error {
	err := e.init()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == StateRunning {
		return err
	}
	e.state = StateRunning
	e.seq.Reset()

	if e.silent.Load() {
		return err
	}

	stop := make(chan struct{})
	e.stop = stop
	e.wg.Add(1)
	core.Go(func() {
		defer e.wg.Done()
		e.loop(stop)
	})
	return err
}

func (e *Engine) loop(stop <-chan struct{}) {
	ticker := time.NewTicker(BeatInterval())
	defer ticker.Stop()

	e.beat()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			e.beat()
		}
	}
}

// beat renders one sequencer step into the mixer
func (e *Engine) beat() {
	e.mu.Lock()
	if e.state != StateRunning {
		e.mu.Unlock()
		return
	}
	voices := e.seq.Step()
	e.mu.Unlock()

	e.beats.Add(1)
	if e.muted.Load() || e.silent.Load() {
		return
	}

	streamers := make([]beep.Streamer, len(voices))
	for i, v := range voices {
		streamers[i] = v.Streamer(e.rate)
	}
	e.add(streamers...)
}

// Stop halts the music loop and rewinds the sequencer
// Effects already sounding finish naturally
func (e *Engine) Stop() {
	e.mu.Lock()
	if e.state == StateStopped {
		e.mu.Unlock()
		return
	}
	e.state = StateStopped
	e.seq.Reset()
	stop := e.stop
	e.stop = nil
	e.mu.Unlock()

	if stop != nil {
		close(stop)
	}
	e.wg.Wait()
}

// Close stops the loop and releases the device
func (e *Engine) Close() {
	e.Stop()
	if !e.opened.CompareAndSwap(true, false) {
		return
	}
	e.sink.Lock()
	e.mixer.Clear()
	e.sink.Unlock()
	e.sink.Close()
}

// Play fires a one-shot effect; returns false if nothing was sounded
func (e *Engine) Play(t SoundType) bool {
	if e.init() != nil || e.muted.Load() {
		return false
	}
	s := GetSoundEffect(t, e.rate)
	if s == nil {
		return false
	}
	e.add(s)
	e.played.Add(1)
	return true
}

func (e *Engine) add(s ...beep.Streamer) {
	if len(s) == 0 {
		return
	}
	e.sink.Lock()
	e.mixer.Add(s...)
	e.sink.Unlock()
}

// SetVolume sets master gain, clamped to [0, 1], effective immediately
func (e *Engine) SetVolume(v float64) {
	switch {
	case math.IsNaN(v) || v < 0:
		v = 0
	case v > 1:
		v = 1
	}
	e.volume.Store(math.Float64bits(v))
}

// Volume returns the master gain
func (e *Engine) Volume() float64 {
	return math.Float64frombits(e.volume.Load())
}

// SetEnabled mutes or unmutes music and effects
func (e *Engine) SetEnabled(enabled bool) {
	e.muted.Store(!enabled)
}

// Enabled reports whether output is unmuted
func (e *Engine) Enabled() bool {
	return !e.muted.Load()
}

// Silent reports whether the device failed to open
func (e *Engine) Silent() bool {
	return e.silent.Load()
}

// State returns the music loop state
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Position returns the sub-beat the sequencer plays next
func (e *Engine) Position() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.seq.Position()
}

// GetStats returns beats stepped and effects played
func (e *Engine) GetStats() (beats, played uint64) {
	return e.beats.Load(), e.played.Load()
}

// masterGain scales the mixer output by the engine's live volume
type masterGain struct {
	engine   *Engine
	streamer beep.Streamer
}

func (m *masterGain) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = m.streamer.Stream(samples)
	gain := m.engine.Volume()
	if m.engine.muted.Load() {
		gain = 0
	}
	for i := 0; i < n; i++ {
		samples[i][0] *= gain
		samples[i][1] *= gain
	}
	return n, ok
}

func (m *masterGain) Err() error { return m.streamer.Err() }

package audio

import (
	"errors"

	"github.com/gopxl/beep"
)

// Sink is the output device the engine feeds
// The real sink is the beep speaker; tests substitute a recorder
type Sink interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
	Close()
}

// errNoDevice is reported when output was disabled by configuration or build
var errNoDevice = errors.New("output device disabled")

// noDeviceSink never opens; engines built on it run silent
type noDeviceSink struct{}

func (noDeviceSink) Init(beep.SampleRate, int) error { return errNoDevice }
func (noDeviceSink) Play(...beep.Streamer)           {}
func (noDeviceSink) Lock()                           {}
func (noDeviceSink) Unlock()                         {}
func (noDeviceSink) Close()                          {}

// NoDeviceSink returns a sink that always fails to open
func NoDeviceSink() Sink {
	return noDeviceSink{}
}

//go:build !nosound

package audio

import (
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// speakerSink forwards to the process-wide beep speaker
type speakerSink struct{}

func (speakerSink) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}

func (speakerSink) Play(s ...beep.Streamer) { speaker.Play(s...) }
func (speakerSink) Lock()                   { speaker.Lock() }
func (speakerSink) Unlock()                 { speaker.Unlock() }
func (speakerSink) Close()                  { speaker.Close() }

// SpeakerSink returns the default device sink
func SpeakerSink() Sink {
	return speakerSink{}
}

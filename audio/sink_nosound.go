//go:build nosound

package audio

// SpeakerSink returns a silent sink; the binary was built without a device backend
func SpeakerSink() Sink {
	return noDeviceSink{}
}

// Package source loads sample data for the waveform transforms.
//
// It covers two paths: fetching headered unsigned 8-bit PCM over HTTP, and
// decoding audio files (WAV, MP3, Ogg Vorbis, raw u8) through a registry of
// decoders keyed by format name. Every path yields a mono []float64; multi
// channel input is averaged down to one channel.
package source

import "errors"

// Errors returned by the loader and decoders.
var (
	// ErrTransport indicates that the transport itself failed.
	ErrTransport = errors.New("transport error")

	// ErrProtocol indicates a response whose status does not signal success.
	ErrProtocol = errors.New("protocol error")

	// ErrUnsupportedFormat indicates an unknown format key or an audio
	// layout the decoder cannot handle.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrInvalidConfig indicates invalid loader configuration.
	ErrInvalidConfig = errors.New("invalid source configuration")
)

// Audio is a decoded mono signal.
type Audio struct {
	Samples    []float64
	SampleRate int
}

package waveform

import (
	"errors"
	"iter"
	"slices"

	"github.com/tphakala/go-audio-waveform/internal/source"
)

// Common errors returned by the package.
var (
	// ErrInvalidArgument indicates an invalid factor, parameter or threshold.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptySequence indicates an operation that needs at least one sample.
	ErrEmptySequence = errors.New("empty sample sequence")

	// ErrTransport indicates that fetching audio failed at the transport level.
	ErrTransport = source.ErrTransport

	// ErrProtocol indicates that the server answered with a non-success status.
	ErrProtocol = source.ErrProtocol

	// ErrUnsupportedFormat indicates an unknown or unsupported audio format.
	ErrUnsupportedFormat = source.ErrUnsupportedFormat
)

// Buffer is an immutable sequence of samples.
// The zero value is an empty buffer.
type Buffer struct {
	samples []float64
}

// New returns a Buffer holding a copy of samples.
func New(samples []float64) Buffer {
	return Buffer{samples: slices.Clone(samples)}
}

// FromFloat32 returns a Buffer holding samples widened to float64.
func FromFloat32(samples []float32) Buffer {
	s := make([]float64, len(samples))
	for i, v := range samples {
		s[i] = float64(v)
	}
	return Buffer{samples: s}
}

// own wraps a slice the caller will not touch again.
func own(samples []float64) Buffer {
	return Buffer{samples: samples}
}

// Len returns the number of samples.
func (b Buffer) Len() int {
	return len(b.samples)
}

// At returns sample i. It panics if i is out of range.
func (b Buffer) At(i int) float64 {
	return b.samples[i]
}

// Samples returns a copy of the samples.
func (b Buffer) Samples() []float64 {
	return slices.Clone(b.samples)
}

// All iterates over index and sample pairs in order.
func (b Buffer) All() iter.Seq2[int, float64] {
	return slices.All(b.samples)
}

// Float32 returns a copy of the samples narrowed to float32.
func (b Buffer) Float32() []float32 {
	s := make([]float32, len(b.samples))
	for i, v := range b.samples {
		s[i] = float32(v)
	}
	return s
}

// Equal reports whether both buffers hold exactly the same samples.
func (b Buffer) Equal(other Buffer) bool {
	return slices.Equal(b.samples, other.samples)
}

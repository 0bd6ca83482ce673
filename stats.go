package waveform

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-audio-waveform/internal/engine"
)

// Max returns the largest sample value.
func (b Buffer) Max() (float64, error) {
	if len(b.samples) == 0 {
		return 0, ErrEmptySequence
	}
	return floats.Max(b.samples), nil
}

// Peak returns the largest absolute sample value.
func (b Buffer) Peak() (float64, error) {
	if len(b.samples) == 0 {
		return 0, ErrEmptySequence
	}
	return floats.Norm(b.samples, math.Inf(1)), nil
}

// RMS returns the root mean square of the samples.
func (b Buffer) RMS() (float64, error) {
	if len(b.samples) == 0 {
		return 0, ErrEmptySequence
	}
	return engine.RMS(b.samples), nil
}

// Normalize scales the buffer so that its peak absolute value is 1.
// Empty and silent buffers are returned unchanged.
func (b Buffer) Normalize() Buffer {
	peak, err := b.Peak()
	if err != nil || peak == 0 {
		return New(b.samples)
	}
	return own(engine.Scale(b.samples, 1/peak))
}

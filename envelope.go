package waveform

import (
	"fmt"
	"math"

	"github.com/tphakala/go-audio-waveform/internal/engine"
)

// Envelope follows the amplitude contour of the buffer.
//
// The envelope starts at zero and is updated once per sample, in order.
// When |s| is above the envelope it moves towards |s| by the fraction
// responsiveness (1 snaps to the new peak). Otherwise it is multiplied by
// dampening (1 holds, smaller values decay faster). The updated value is
// emitted for each sample, so the output is never negative.
//
// Both parameters must lie in [0, 1].
func (b Buffer) Envelope(responsiveness, dampening float64) (Buffer, error) {
	if err := validateEnvelope(responsiveness, dampening); err != nil {
		return Buffer{}, err
	}
	return own(engine.Envelope(b.samples, responsiveness, dampening)), nil
}

// DefaultEnvelope runs [Buffer.Envelope] with [DefaultEnvelopeResponsiveness]
// and [DefaultEnvelopeDampening].
func (b Buffer) DefaultEnvelope() Buffer {
	return own(engine.Envelope(b.samples, DefaultEnvelopeResponsiveness, DefaultEnvelopeDampening))
}

func validateEnvelope(responsiveness, dampening float64) error {
	if err := validateUnit("responsiveness", responsiveness); err != nil {
		return err
	}
	return validateUnit("dampening", dampening)
}

func validateUnit(name string, v float64) error {
	if math.IsNaN(v) || v < minUnitValue || v > maxUnitValue {
		return fmt.Errorf("%w: %s must be in [0, 1], got %v", ErrInvalidArgument, name, v)
	}
	return nil
}

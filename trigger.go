package waveform

import (
	"fmt"
	"math"

	"github.com/tphakala/go-audio-waveform/internal/engine"
)

// Trigger turns the buffer into a debounced 0/1 gate.
//
// The gate starts at 0. It switches to 1 when a sample is above high and
// back to 0 when a sample is below low; samples within [low, high] keep the
// previous state. low must not exceed high.
func (b Buffer) Trigger(low, high float64) (Buffer, error) {
	if err := validateThresholds(low, high); err != nil {
		return Buffer{}, err
	}
	return own(engine.Trigger(b.samples, low, high)), nil
}

func validateThresholds(low, high float64) error {
	if math.IsNaN(low) || math.IsNaN(high) {
		return fmt.Errorf("%w: thresholds must be numbers", ErrInvalidArgument)
	}
	if low > high {
		return fmt.Errorf("%w: low threshold %v exceeds high threshold %v", ErrInvalidArgument, low, high)
	}
	return nil
}

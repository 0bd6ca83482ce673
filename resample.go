package waveform

import (
	"fmt"
	"math"

	"github.com/tphakala/go-audio-waveform/internal/engine"
)

// Downsample averages consecutive, non-overlapping blocks of factor samples.
// The output holds Len()/factor samples; samples after the last full block
// are discarded, and a factor larger than Len() yields an empty buffer.
func (b Buffer) Downsample(factor int) (Buffer, error) {
	if err := validateFactor(factor); err != nil {
		return Buffer{}, err
	}
	return own(engine.Downsample(b.samples, factor)), nil
}

// Upsample produces factor samples per input sample by linear interpolation
// towards the next sample. The last sample is held rather than extrapolated.
// The output holds exactly Len()*factor samples.
func (b Buffer) Upsample(factor int) (Buffer, error) {
	if err := validateUpsample(len(b.samples), factor); err != nil {
		return Buffer{}, err
	}
	return own(engine.Upsample(b.samples, factor)), nil
}

// LowPass smooths the buffer by downsampling and then upsampling by factor.
// The output holds (Len()/factor)*factor samples.
func (b Buffer) LowPass(factor int) (Buffer, error) {
	if err := validateFactor(factor); err != nil {
		return Buffer{}, err
	}
	return own(engine.Upsample(engine.Downsample(b.samples, factor), factor)), nil
}

// validateUpsample also rejects factors whose output length n*factor does not
// fit in an int.
func validateUpsample(n, factor int) error {
	if err := validateFactor(factor); err != nil {
		return err
	}
	if n > 0 && factor > math.MaxInt/n {
		return fmt.Errorf("%w: upsampling %d samples by %d overflows the output length", ErrInvalidArgument, n, factor)
	}
	return nil
}

func validateFactor(factor int) error {
	if factor < minFactor {
		return fmt.Errorf("%w: factor must be a positive integer, got %d", ErrInvalidArgument, factor)
	}
	return nil
}

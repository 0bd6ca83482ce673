// Package engine implements the waveform transformation kernels.
//
// Kernels are generic over float32 and float64 and assume their scalar
// parameters were validated by the caller. Every kernel allocates a new
// output slice and never writes to its input.
package engine

import (
	"math"

	"github.com/tphakala/go-audio-waveform/internal/simdops"
)

// scan folds step over input from left to right, emitting one output
// sample per input sample. The accumulator is local to a single call.
func scan[F simdops.Float, S any](input []F, init S, step func(acc S, sample F) (S, F)) []F {
	output := make([]F, len(input))
	acc := init
	for i, sample := range input {
		acc, output[i] = step(acc, sample)
	}
	return output
}

// abs returns |v|, mapping -0 to +0.
func abs[F simdops.Float](v F) F {
	return F(math.Abs(float64(v)))
}

package engine

import (
	"math"

	"github.com/tphakala/go-audio-waveform/internal/simdops"
)

// RMS returns the root mean square of input, or 0 for empty input.
func RMS[F simdops.Float](input []F) F {
	if len(input) == 0 {
		return 0
	}
	energy := simdops.For[F]().DotProductUnsafe(input, input)
	return F(math.Sqrt(float64(energy) / float64(len(input))))
}

// Scale returns a copy of input with every sample multiplied by gain.
func Scale[F simdops.Float](input []F, gain F) []F {
	output := make([]F, len(input))
	if len(input) > 0 {
		simdops.For[F]().Scale(output, input, gain)
	}
	return output
}

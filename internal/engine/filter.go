package engine

import "github.com/tphakala/go-audio-waveform/internal/simdops"

// highPassDivisor halves the first difference.
const highPassDivisor = 2

// HighPass computes the scaled first difference (s[i] - s[i+1]) / 2.
// The final sample has no successor and is forced to zero, keeping the
// output the same length as the input.
func HighPass[F simdops.Float](input []F) []F {
	output := make([]F, len(input))
	for i := 0; i < len(input)-1; i++ {
		output[i] = (input[i] - input[i+1]) / highPassDivisor
	}
	return output
}

// Rectify returns the absolute value of every sample.
func Rectify[F simdops.Float](input []F) []F {
	output := make([]F, len(input))
	for i, v := range input {
		output[i] = abs(v)
	}
	return output
}

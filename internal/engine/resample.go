package engine

import "github.com/tphakala/go-audio-waveform/internal/simdops"

// Downsample replaces each run of factor consecutive samples with its mean.
// Blocks start at index 0; samples past the last full block are dropped, so
// the output holds len(input)/factor samples. factor must be at least 1.
func Downsample[F simdops.Float](input []F, factor int) []F {
	ops := simdops.For[F]()
	output := make([]F, len(input)/factor)
	for i := range output {
		start := i * factor
		output[i] = ops.Sum(input[start:start+factor]) / F(factor)
	}
	return output
}

// Upsample linearly interpolates factor output samples per input sample.
//
// Segment i runs from input[i] towards input[i+1]; the last segment ends on
// the last sample itself, so nothing is extrapolated. The interpolation
// coefficient takes the values j/factor for j in [0, factor), which means
// each segment starts exactly on its input sample. factor must be at least 1.
func Upsample[F simdops.Float](input []F, factor int) []F {
	n := len(input)
	output := make([]F, n*factor)
	for i, start := range input {
		end := input[min(i+1, n-1)]
		delta := end - start
		base := i * factor
		for j := range factor {
			output[base+j] = start + delta*(F(j)/F(factor))
		}
	}
	return output
}

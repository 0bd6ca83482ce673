package source

import (
	"math"

	"github.com/tphakala/go-audio-waveform/internal/simdops"
)

// DecodeU8 maps every byte b of unsigned 8-bit PCM to (b-128)/128.
func DecodeU8(data []byte) []float64 {
	samples := make([]float64, len(data))
	for i, b := range data {
		samples[i] = (float64(b) - pcm8Offset) / pcm8Scale
	}
	return samples
}

// EncodeU8 is the inverse of DecodeU8 for a single sample, rounding to the
// nearest step and clamping to [0, 255].
func EncodeU8(sample float64) int {
	v := math.Round(sample*pcm8Scale + pcm8Offset)
	switch {
	case math.IsNaN(v):
		return int(pcm8Offset)
	case v < 0:
		return 0
	case v > pcm8Max:
		return pcm8Max
	}
	return int(v)
}

// downmix averages interleaved frames of the given channel count into mono.
// A trailing partial frame is dropped.
func downmix(interleaved []float64, channels int) []float64 {
	if channels <= monoChannels {
		return interleaved
	}
	ops := simdops.Float64Ops()
	frames := len(interleaved) / channels
	mono := make([]float64, frames)
	for i := range mono {
		mono[i] = ops.Sum(interleaved[i*channels:(i+1)*channels]) / float64(channels)
	}
	return mono
}

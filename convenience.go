package waveform

import "github.com/tphakala/go-audio-waveform/internal/engine"

// DownsampleFloat32 is [Buffer.Downsample] for float32 samples.
// The engine runs natively in float32; no float64 copy is made.
func DownsampleFloat32(input []float32, factor int) ([]float32, error) {
	if err := validateFactor(factor); err != nil {
		return nil, err
	}
	return engine.Downsample(input, factor), nil
}

// UpsampleFloat32 is [Buffer.Upsample] for float32 samples.
func UpsampleFloat32(input []float32, factor int) ([]float32, error) {
	if err := validateUpsample(len(input), factor); err != nil {
		return nil, err
	}
	return engine.Upsample(input, factor), nil
}

// EnvelopeFloat32 is [Buffer.Envelope] for float32 samples.
func EnvelopeFloat32(input []float32, responsiveness, dampening float32) ([]float32, error) {
	if err := validateEnvelope(float64(responsiveness), float64(dampening)); err != nil {
		return nil, err
	}
	return engine.Envelope(input, responsiveness, dampening), nil
}

// TriggerFloat32 is [Buffer.Trigger] for float32 samples.
func TriggerFloat32(input []float32, low, high float32) ([]float32, error) {
	if err := validateThresholds(float64(low), float64(high)); err != nil {
		return nil, err
	}
	return engine.Trigger(input, low, high), nil
}

package waveform

import (
	"fmt"

	"github.com/tphakala/go-audio-waveform/internal/pipeline"
)

// applyStage runs one validated stage on b.
func applyStage(b Buffer, spec pipeline.StageSpec) (Buffer, error) {
	switch spec.Type {
	case pipeline.StageDownsample:
		return b.Downsample(spec.Factor)
	case pipeline.StageUpsample:
		return b.Upsample(spec.Factor)
	case pipeline.StageLowPass:
		return b.LowPass(spec.Factor)
	case pipeline.StageHighPass:
		return b.HighPass(), nil
	case pipeline.StageRectify:
		return b.Rectify(), nil
	case pipeline.StageEnvelope:
		return b.Envelope(spec.Responsiveness, spec.Dampening)
	case pipeline.StageTrigger:
		return b.Trigger(spec.Low, spec.High)
	case pipeline.StageNormalize:
		return b.Normalize(), nil
	default:
		return Buffer{}, fmt.Errorf("unsupported stage type: %v", spec.Type)
	}
}

// validateStage checks parameter ranges before a stage is accepted.
func validateStage(spec pipeline.StageSpec) error {
	switch spec.Type {
	case pipeline.StageDownsample, pipeline.StageUpsample, pipeline.StageLowPass:
		return validateFactor(spec.Factor)
	case pipeline.StageEnvelope:
		return validateEnvelope(spec.Responsiveness, spec.Dampening)
	case pipeline.StageTrigger:
		return validateThresholds(spec.Low, spec.High)
	case pipeline.StageHighPass, pipeline.StageRectify, pipeline.StageNormalize:
		return nil
	default:
		return fmt.Errorf("%w: unsupported stage type %v", ErrInvalidArgument, spec.Type)
	}
}

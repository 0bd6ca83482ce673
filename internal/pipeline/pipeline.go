// Package pipeline describes chains of waveform transforms.
// It parses the textual chain syntax used by the CLI, for example
//
//	downsample:8,upsample:8,rectify,envelope:0.2:0.995,trigger:-0.1:0.4
//
// into stage specifications. Parameter ranges are checked by the caller;
// this package only checks the syntax and parameter counts.
package pipeline

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax indicates a malformed chain description.
var ErrSyntax = errors.New("invalid pipeline description")

// StageType identifies the transform performed by a stage.
type StageType int

const (
	// StageDownsample averages fixed-size blocks.
	StageDownsample StageType = iota

	// StageUpsample linearly interpolates between neighbouring samples.
	StageUpsample

	// StageLowPass downsamples and upsamples by the same factor.
	StageLowPass

	// StageHighPass computes the scaled first difference.
	StageHighPass

	// StageRectify takes the absolute value of every sample.
	StageRectify

	// StageEnvelope runs the envelope follower.
	StageEnvelope

	// StageTrigger runs the hysteresis gate.
	StageTrigger

	// StageNormalize scales the buffer to unit peak.
	StageNormalize
)

var stageNames = [...]string{
	StageDownsample: "downsample",
	StageUpsample:   "upsample",
	StageLowPass:    "lowpass",
	StageHighPass:   "highpass",
	StageRectify:    "rectify",
	StageEnvelope:   "envelope",
	StageTrigger:    "trigger",
	StageNormalize:  "normalize",
}

var stageAliases = map[string]StageType{
	"down": StageDownsample,
	"up":   StageUpsample,
	"env":  StageEnvelope,
	"gate": StageTrigger,
}

func (t StageType) String() string {
	if t < 0 || int(t) >= len(stageNames) {
		return fmt.Sprintf("StageType(%d)", int(t))
	}
	return stageNames[t]
}

// ParseStageType resolves a stage name or alias, ignoring case.
func ParseStageType(name string) (StageType, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range stageNames {
		if n == name {
			return StageType(i), true
		}
	}
	t, ok := stageAliases[name]
	return t, ok
}

// StageSpec specifies one transform and its parameters.
type StageSpec struct {
	Type           StageType
	Factor         int     // Downsample, Upsample, LowPass
	Responsiveness float64 // Envelope
	Dampening      float64 // Envelope
	Low            float64 // Trigger
	High           float64 // Trigger
}

// String renders the spec in the description syntax.
func (s StageSpec) String() string {
	switch s.Type {
	case StageDownsample, StageUpsample, StageLowPass:
		return s.Type.String() + paramSeparator + strconv.Itoa(s.Factor)
	case StageEnvelope:
		return s.Type.String() + paramSeparator + formatFloat(s.Responsiveness) +
			paramSeparator + formatFloat(s.Dampening)
	case StageTrigger:
		return s.Type.String() + paramSeparator + formatFloat(s.Low) +
			paramSeparator + formatFloat(s.High)
	default:
		return s.Type.String()
	}
}

// Format renders a chain of specs in the description syntax.
func Format(specs []StageSpec) string {
	parts := make([]string, len(specs))
	for i, s := range specs {
		parts[i] = s.String()
	}
	return strings.Join(parts, stageSeparator)
}

// Parse converts a chain description into stage specs.
// An empty description yields an empty chain.
func Parse(desc string) ([]StageSpec, error) {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return []StageSpec{}, nil
	}

	specs := make([]StageSpec, 0, defaultStageCapacity)
	for i, field := range strings.Split(desc, stageSeparator) {
		spec, err := parseStage(field)
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func parseStage(field string) (StageSpec, error) {
	parts := strings.Split(strings.TrimSpace(field), paramSeparator)
	stageType, ok := ParseStageType(parts[0])
	if !ok {
		return StageSpec{}, fmt.Errorf("%w: unknown stage %q", ErrSyntax, parts[0])
	}
	params := parts[1:]
	spec := StageSpec{Type: stageType}

	switch stageType {
	case StageDownsample, StageUpsample:
		if len(params) != factorParams {
			return StageSpec{}, paramCountError(stageType, len(params), factorParams)
		}
		factor, err := parseInt(params[0])
		if err != nil {
			return StageSpec{}, err
		}
		spec.Factor = factor

	case StageLowPass:
		spec.Factor = defaultLowPassFactor
		if len(params) > factorParams {
			return StageSpec{}, paramCountError(stageType, len(params), factorParams)
		}
		if len(params) == factorParams {
			factor, err := parseInt(params[0])
			if err != nil {
				return StageSpec{}, err
			}
			spec.Factor = factor
		}

	case StageEnvelope:
		spec.Responsiveness = defaultEnvelopeResponsiveness
		spec.Dampening = defaultEnvelopeDampening
		if len(params) != 0 && len(params) != envelopeParams {
			return StageSpec{}, paramCountError(stageType, len(params), envelopeParams)
		}
		if len(params) == envelopeParams {
			values, err := parseFloats(params)
			if err != nil {
				return StageSpec{}, err
			}
			spec.Responsiveness, spec.Dampening = values[0], values[1]
		}

	case StageTrigger:
		if len(params) != thresholdParams {
			return StageSpec{}, paramCountError(stageType, len(params), thresholdParams)
		}
		values, err := parseFloats(params)
		if err != nil {
			return StageSpec{}, err
		}
		spec.Low, spec.High = values[0], values[1]

	default:
		if len(params) != 0 {
			return StageSpec{}, paramCountError(stageType, len(params), 0)
		}
	}

	return spec, nil
}

func paramCountError(t StageType, got, want int) error {
	return fmt.Errorf("%w: %s takes %d parameter(s), got %d", ErrSyntax, t, want, got)
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: bad integer %q", ErrSyntax, s)
	}
	return v, nil
}

func parseFloats(params []string) ([]float64, error) {
	values := make([]float64, len(params))
	for i, p := range params {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %q", ErrSyntax, p)
		}
		values[i] = v
	}
	return values, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

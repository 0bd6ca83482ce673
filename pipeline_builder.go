package waveform

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tphakala/go-audio-waveform/internal/pipeline"
)

// Pipeline is an ordered chain of transforms that can be applied to many
// buffers.
//
// Builder methods append a stage and return the pipeline so calls can be
// chained. A builder given invalid parameters records the error, which is
// then reported by [Pipeline.Err] and by every Run call.
type Pipeline struct {
	// EnableParallel enables concurrent processing in RunMulti.
	// Each input buffer is processed by its own goroutine.
	EnableParallel bool

	stages []pipeline.StageSpec
	err    error
}

// NewPipeline returns an empty pipeline. Running it returns its input.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// ParsePipeline builds a pipeline from a chain description such as
//
//	downsample:8,upsample:8,rectify,envelope:0.2:0.995,trigger:-0.1:0.4
//
// Stages are separated by commas and parameters by colons. lowpass and
// envelope parameters are optional and default to [DefaultLowPassFactor] and
// the envelope defaults. Malformed descriptions and out-of-range parameters
// return an error wrapping [ErrInvalidArgument].
func ParsePipeline(desc string) (*Pipeline, error) {
	specs, err := pipeline.Parse(desc)
	if err != nil {
		if errors.Is(err, pipeline.ErrSyntax) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
		return nil, err
	}

	p := NewPipeline()
	for _, spec := range specs {
		p.add(spec)
	}
	if p.err != nil {
		return nil, p.err
	}
	return p, nil
}

// Downsample appends a block-mean downsampling stage.
func (p *Pipeline) Downsample(factor int) *Pipeline {
	return p.add(pipeline.StageSpec{Type: pipeline.StageDownsample, Factor: factor})
}

// Upsample appends a linear-interpolation upsampling stage.
func (p *Pipeline) Upsample(factor int) *Pipeline {
	return p.add(pipeline.StageSpec{Type: pipeline.StageUpsample, Factor: factor})
}

// LowPass appends a low-pass stage.
func (p *Pipeline) LowPass(factor int) *Pipeline {
	return p.add(pipeline.StageSpec{Type: pipeline.StageLowPass, Factor: factor})
}

// HighPass appends a high-pass stage.
func (p *Pipeline) HighPass() *Pipeline {
	return p.add(pipeline.StageSpec{Type: pipeline.StageHighPass})
}

// Rectify appends a rectifier stage.
func (p *Pipeline) Rectify() *Pipeline {
	return p.add(pipeline.StageSpec{Type: pipeline.StageRectify})
}

// Envelope appends an envelope follower stage.
func (p *Pipeline) Envelope(responsiveness, dampening float64) *Pipeline {
	return p.add(pipeline.StageSpec{
		Type:           pipeline.StageEnvelope,
		Responsiveness: responsiveness,
		Dampening:      dampening,
	})
}

// Trigger appends a hysteresis gate stage.
func (p *Pipeline) Trigger(low, high float64) *Pipeline {
	return p.add(pipeline.StageSpec{Type: pipeline.StageTrigger, Low: low, High: high})
}

// Normalize appends a unit-peak normalization stage.
func (p *Pipeline) Normalize() *Pipeline {
	return p.add(pipeline.StageSpec{Type: pipeline.StageNormalize})
}

func (p *Pipeline) add(spec pipeline.StageSpec) *Pipeline {
	if p.err != nil {
		return p
	}
	if err := validateStage(spec); err != nil {
		p.err = fmt.Errorf("stage %d (%s): %w", len(p.stages), spec.Type, err)
		return p
	}
	p.stages = append(p.stages, spec)
	return p
}

// Err returns the first error recorded by a builder method.
func (p *Pipeline) Err() error {
	return p.err
}

// Len returns the number of stages.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// RateRatio returns the factor by which the pipeline changes the sample
// rate: the product of upsample factors divided by the product of
// downsample factors. Other stages, lowpass included, keep the rate.
func (p *Pipeline) RateRatio() float64 {
	ratio := 1.0
	for _, spec := range p.stages {
		switch spec.Type {
		case pipeline.StageUpsample:
			ratio *= float64(spec.Factor)
		case pipeline.StageDownsample:
			ratio /= float64(spec.Factor)
		}
	}
	return ratio
}

// String renders the pipeline in the description syntax accepted by
// [ParsePipeline].
func (p *Pipeline) String() string {
	return pipeline.Format(p.stages)
}

// Run applies every stage in order. The first failing stage aborts the run.
func (p *Pipeline) Run(b Buffer) (Buffer, error) {
	if p.err != nil {
		return Buffer{}, p.err
	}

	out := b
	for i, spec := range p.stages {
		next, err := applyStage(out, spec)
		if err != nil {
			return Buffer{}, fmt.Errorf("stage %d (%s): %w", i, spec.Type, err)
		}
		out = next
	}
	if len(p.stages) == 0 {
		return New(b.samples), nil
	}
	return out, nil
}

// RunMulti applies the pipeline to each input independently.
// When EnableParallel is set the inputs are processed concurrently.
func (p *Pipeline) RunMulti(inputs []Buffer) ([]Buffer, error) {
	if p.err != nil {
		return nil, p.err
	}

	output := make([]Buffer, len(inputs))

	if !p.EnableParallel || len(inputs) <= 1 {
		for i := range inputs {
			result, err := p.Run(inputs[i])
			if err != nil {
				return nil, fmt.Errorf("buffer %d: %w", i, err)
			}
			output[i] = result
		}
		return output, nil
	}

	var wg sync.WaitGroup
	errChan := make(chan error, len(inputs))

	for i := range inputs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			result, err := p.Run(inputs[idx])
			if err != nil {
				errChan <- fmt.Errorf("buffer %d: %w", idx, err)
				return
			}
			output[idx] = result
		}(i)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	return output, nil
}

package waveform

import "github.com/tphakala/go-audio-waveform/internal/source"

// Envelope follower defaults
const (
	// DefaultEnvelopeResponsiveness is how fast the envelope follows rises.
	DefaultEnvelopeResponsiveness = 0.2

	// DefaultEnvelopeDampening is the per-sample decay factor while the
	// signal is not rising.
	DefaultEnvelopeDampening = 0.995
)

// DefaultLowPassFactor is the block size used by the low-pass stage when
// none is given.
const DefaultLowPassFactor = 8

// DefaultHeaderSize is the number of payload bytes [Load] skips by default.
const DefaultHeaderSize = source.DefaultHeaderSize

// Parameter limits
const (
	minFactor    = 1
	minUnitValue = 0.0
	maxUnitValue = 1.0
)

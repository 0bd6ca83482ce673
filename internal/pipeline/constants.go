package pipeline

// Description syntax
const (
	stageSeparator = ","
	paramSeparator = ":"
)

// Parameter counts per stage
const (
	factorParams    = 1
	envelopeParams  = 2
	thresholdParams = 2
)

// Defaults applied when a description omits optional parameters.
// NOTE: These are duplicated from the main waveform package because internal
// packages cannot import the main package (would create import cycle).
const (
	defaultLowPassFactor          = 8
	defaultEnvelopeResponsiveness = 0.2
	defaultEnvelopeDampening      = 0.995
)

// Initial capacity for the parsed stages slice
const defaultStageCapacity = 4

package engine

import "github.com/tphakala/go-audio-waveform/internal/simdops"

// Gate levels emitted by Trigger.
const (
	gateOff = 0
	gateOn  = 1
)

// Trigger is a Schmitt gate: it switches on when a sample rises above high,
// off when a sample falls below low, and holds its state in between.
// The gate starts off. Output samples are exactly 0 or 1.
func Trigger[F simdops.Float](input []F, low, high F) []F {
	return scan(input, F(gateOff), func(state, sample F) (F, F) {
		switch {
		case sample > high:
			state = gateOn
		case sample < low:
			state = gateOff
		}
		return state, state
	})
}

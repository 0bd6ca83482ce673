package engine

import "github.com/tphakala/go-audio-waveform/internal/simdops"

// Envelope runs an asymmetric exponential follower over the rectified input.
//
// The envelope starts at zero. When |s| exceeds it, the envelope moves
// towards |s| by the fraction responsiveness; otherwise it is multiplied by
// dampening. The value after the update is emitted for every sample, so the
// output depends on the full history and cannot be computed per sample.
func Envelope[F simdops.Float](input []F, responsiveness, dampening F) []F {
	return scan(input, F(0), func(env, sample F) (F, F) {
		magnitude := abs(sample)
		if magnitude > env {
			env = (1-responsiveness)*env + responsiveness*magnitude
		} else {
			env *= dampening
		}
		return env, env
	})
}

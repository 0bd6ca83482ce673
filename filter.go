package waveform

import "github.com/tphakala/go-audio-waveform/internal/engine"

// HighPass returns the scaled first difference (s[i] - s[i+1]) / 2.
// The last output sample is always 0, so the length is preserved.
func (b Buffer) HighPass() Buffer {
	return own(engine.HighPass(b.samples))
}

// Rectify returns the absolute value of every sample.
func (b Buffer) Rectify() Buffer {
	return own(engine.Rectify(b.samples))
}

// Bands splits the buffer into a low-pass rendition (see [Buffer.LowPass])
// and a high-pass rendition (see [Buffer.HighPass]).
func (b Buffer) Bands(factor int) (low, high Buffer, err error) {
	low, err = b.LowPass(factor)
	if err != nil {
		return Buffer{}, Buffer{}, err
	}
	return low, b.HighPass(), nil
}

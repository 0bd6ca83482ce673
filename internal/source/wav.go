package source

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// decodeWAV decodes integer PCM WAV data of 8, 16, 24 or 32 bits.
func decodeWAV(r io.ReadSeeker) (*Audio, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("%w: invalid WAV file", ErrUnsupportedFormat)
	}
	if decoder.WavAudioFormat != wavFormatPCM {
		return nil, fmt.Errorf("%w: WAV audio format %d is not integer PCM", ErrUnsupportedFormat, decoder.WavAudioFormat)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}

	samples, err := normalizeInts(buf, int(decoder.BitDepth))
	if err != nil {
		return nil, err
	}

	return &Audio{
		Samples:    downmix(samples, buf.Format.NumChannels),
		SampleRate: buf.Format.SampleRate,
	}, nil
}

// normalizeInts converts decoded integer PCM into floats in [-1, 1).
func normalizeInts(buf *audio.IntBuffer, bitDepth int) ([]float64, error) {
	samples := make([]float64, len(buf.Data))

	if bitDepth == bitDepth8 {
		// go-audio hands 8-bit samples back unsigned
		for i, v := range buf.Data {
			samples[i] = (float64(v) - pcm8Offset) / pcm8Scale
		}
		return samples, nil
	}

	var fullScale float64
	switch bitDepth {
	case bitDepth16:
		fullScale = fullScale16
	case bitDepth24:
		fullScale = fullScale24
	case bitDepth32:
		fullScale = fullScale32
	default:
		return nil, fmt.Errorf("%w: %d-bit WAV", ErrUnsupportedFormat, bitDepth)
	}

	inv := 1.0 / fullScale
	for i, v := range buf.Data {
		samples[i] = float64(v) * inv
	}
	return samples, nil
}

// EncodeWAV8 writes samples as a mono unsigned 8-bit PCM WAV file.
// Samples outside [-1, 1) are clamped.
func EncodeWAV8(w io.WriteSeeker, samples []float64, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive", ErrInvalidConfig)
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = EncodeU8(s)
	}

	encoder := wav.NewEncoder(w, sampleRate, bitDepth8, monoChannels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Data: data,
		Format: &audio.Format{
			NumChannels: monoChannels,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: bitDepth8,
	}
	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}

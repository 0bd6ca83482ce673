package source

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
)

// decodeMP3 decodes an MP3 stream. go-mp3 always produces 16-bit
// little-endian stereo, which is averaged down to mono.
func decodeMP3(r io.ReadSeeker) (*Audio, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	}

	pcm, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}

	interleaved := make([]float64, len(pcm)/mp3BytesPerSample)
	for i := range interleaved {
		v := int16(binary.LittleEndian.Uint16(pcm[i*mp3BytesPerSample:]))
		interleaved[i] = float64(v) / fullScale16
	}

	return &Audio{
		Samples:    downmix(interleaved, mp3Channels),
		SampleRate: dec.SampleRate(),
	}, nil
}

// decodeVorbis decodes an Ogg Vorbis stream into mono.
func decodeVorbis(r io.ReadSeeker) (*Audio, error) {
	data, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	}

	interleaved := make([]float64, len(data))
	for i, v := range data {
		interleaved[i] = float64(v)
	}

	return &Audio{
		Samples:    downmix(interleaved, format.Channels),
		SampleRate: format.SampleRate,
	}, nil
}

// decodeRawU8 reads headerless unsigned 8-bit PCM.
func decodeRawU8(r io.ReadSeeker) (*Audio, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}
	return &Audio{
		Samples:    DecodeU8(data),
		SampleRate: DefaultRawSampleRate,
	}, nil
}

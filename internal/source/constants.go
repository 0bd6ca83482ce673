package source

import "time"

// Loader defaults
const (
	// DefaultHeaderSize is the number of leading payload bytes skipped
	// before the 8-bit samples start.
	DefaultHeaderSize = 48

	// DefaultTimeout bounds a single fetch.
	DefaultTimeout = 30 * time.Second
)

// 8-bit unsigned PCM mapping
const (
	pcm8Offset = 128.0
	pcm8Scale  = 128.0
	pcm8Max    = 255
)

// Full-scale values used to normalize signed PCM
const (
	fullScale16 = 32768.0
	fullScale24 = 8388608.0
	fullScale32 = 2147483648.0
)

// Bit depths
const (
	bitDepth8  = 8
	bitDepth16 = 16
	bitDepth24 = 24
	bitDepth32 = 32
)

// WAV constants
const (
	wavFormatPCM = 1
	monoChannels = 1
)

// MP3 output layout produced by go-mp3: 16-bit little-endian stereo
const (
	mp3Channels       = 2
	mp3BytesPerSample = 2
)

// DefaultRawSampleRate is the nominal rate reported for headerless u8 data.
const DefaultRawSampleRate = 8000

// Format keys understood by the default registry
const (
	FormatWAV    = "wav"
	FormatMP3    = "mp3"
	FormatVorbis = "ogg"
	FormatRawU8  = "u8"
)

package source

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
)

// Decoder decodes a complete audio stream into a mono signal.
type Decoder interface {
	Decode(r io.ReadSeeker) (*Audio, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(r io.ReadSeeker) (*Audio, error)

// Decode calls f(r).
func (f DecoderFunc) Decode(r io.ReadSeeker) (*Audio, error) {
	return f(r)
}

// Registry maps format keys (e.g. "wav", "mp3", "ogg") to decoders.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

// DefaultRegistry returns a registry with every built-in decoder registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(FormatWAV, DecoderFunc(decodeWAV))
	r.Register(FormatMP3, DecoderFunc(decodeMP3))
	r.Register(FormatVorbis, DecoderFunc(decodeVorbis))
	r.Register(FormatRawU8, DecoderFunc(decodeRawU8))
	return r
}

// Register adds or replaces the decoder for format.
func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[strings.ToLower(format)] = d
}

// Get returns the decoder registered for format.
func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[strings.ToLower(format)]
	return d, ok
}

// Decode looks up format and decodes rd with it.
func (r *Registry) Decode(rd io.ReadSeeker, format string) (*Audio, error) {
	d, ok := r.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return d.Decode(rd)
}

// FormatFromPath derives a format key from a file extension.
func FormatFromPath(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "wave":
		return FormatWAV
	case "oga", "vorbis":
		return FormatVorbis
	case "raw", "pcm":
		return FormatRawU8
	default:
		return ext
	}
}

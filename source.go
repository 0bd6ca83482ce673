package waveform

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/tphakala/go-audio-waveform/internal/source"
)

// SourceConfig configures [Load].
type SourceConfig struct {
	// HeaderSize is the number of leading payload bytes to skip.
	HeaderSize int

	// TrailerSize is the number of trailing payload bytes to skip.
	TrailerSize int

	// Timeout bounds the whole request. Zero disables the timeout.
	Timeout time.Duration

	// Client is the HTTP client to use. Nil means http.DefaultClient.
	Client *http.Client
}

// DefaultSourceConfig returns a config with the default header size and
// timeout.
func DefaultSourceConfig() *SourceConfig {
	d := source.DefaultConfig()
	return &SourceConfig{
		HeaderSize:  d.HeaderSize,
		TrailerSize: d.TrailerSize,
		Timeout:     d.Timeout,
	}
}

// Validate checks if the configuration is valid.
func (c *SourceConfig) Validate() error {
	if err := c.internal().Validate(); err != nil {
		return translateSourceError(err)
	}
	return nil
}

func (c *SourceConfig) internal() *source.Config {
	return &source.Config{
		HeaderSize:  c.HeaderSize,
		TrailerSize: c.TrailerSize,
		Timeout:     c.Timeout,
		Client:      c.Client,
	}
}

// Load fetches location with an HTTP GET and decodes the body as unsigned
// 8-bit PCM after skipping the configured header and trailer. Each byte b
// becomes (b-128)/128. A nil cfg uses [DefaultSourceConfig].
//
// Transport failures return an error wrapping [ErrTransport]; any status
// other than 200 returns an error wrapping [ErrProtocol].
func Load(ctx context.Context, location string, cfg *SourceConfig) (Buffer, error) {
	if cfg == nil {
		cfg = DefaultSourceConfig()
	}
	samples, err := source.Fetch(ctx, location, cfg.internal())
	if err != nil {
		return Buffer{}, translateSourceError(err)
	}
	return own(samples), nil
}

// Decode reads audio in the given format ("wav", "mp3", "ogg" or "u8") and
// returns it as a mono buffer together with its sample rate.
func Decode(r io.ReadSeeker, format string) (Buffer, int, error) {
	a, err := source.DefaultRegistry().Decode(r, format)
	if err != nil {
		return Buffer{}, 0, translateSourceError(err)
	}
	return own(a.Samples), a.SampleRate, nil
}

// DecodeFile opens path and decodes it, picking the format from the file
// extension.
func DecodeFile(path string) (Buffer, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return Buffer{}, 0, fmt.Errorf("failed to open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f, source.FormatFromPath(path))
}

// EncodeWAV writes b as a mono unsigned 8-bit PCM WAV stream. Samples are
// mapped with the inverse of the loader mapping and clamped to [-1, 127/128].
func EncodeWAV(w io.WriteSeeker, b Buffer, sampleRate int) error {
	return translateSourceError(source.EncodeWAV8(w, b.samples, sampleRate))
}

func translateSourceError(err error) error {
	if err != nil && errors.Is(err, source.ErrInvalidConfig) {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return err
}

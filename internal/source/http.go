package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Config configures the HTTP loader.
type Config struct {
	// HeaderSize is the number of leading payload bytes to discard.
	HeaderSize int

	// TrailerSize is the number of trailing payload bytes to discard.
	TrailerSize int

	// Timeout bounds the whole request. Zero disables the timeout.
	Timeout time.Duration

	// Client is the HTTP client to use. Nil means http.DefaultClient.
	Client *http.Client
}

// DefaultConfig returns the loader configuration used when none is given.
func DefaultConfig() *Config {
	return &Config{
		HeaderSize: DefaultHeaderSize,
		Timeout:    DefaultTimeout,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.HeaderSize < 0 {
		return fmt.Errorf("%w: header size must not be negative", ErrInvalidConfig)
	}
	if c.TrailerSize < 0 {
		return fmt.Errorf("%w: trailer size must not be negative", ErrInvalidConfig)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", ErrInvalidConfig)
	}
	return nil
}

func (c *Config) client() *http.Client {
	if c.Client != nil {
		return c.Client
	}
	return http.DefaultClient
}

// Fetch retrieves location and decodes its body as headered unsigned 8-bit
// PCM. Transport failures wrap ErrTransport; any status other than 200 wraps
// ErrProtocol.
func Fetch(ctx context.Context, location string, cfg *Config) ([]float64, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	res, err := cfg.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unable to get %q, got status %d", ErrProtocol, location, res.StatusCode)
	}

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body of %q: %w", ErrTransport, location, err)
	}

	return DecodeU8(StripFraming(payload, cfg.HeaderSize, cfg.TrailerSize)), nil
}

// StripFraming drops header leading and trailer trailing bytes. Payloads too
// short to hold both yield an empty slice.
func StripFraming(payload []byte, header, trailer int) []byte {
	if header >= len(payload) || trailer >= len(payload)-header {
		return payload[:0]
	}
	return payload[header : len(payload)-trailer]
}

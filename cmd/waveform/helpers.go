package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	waveform "github.com/tphakala/go-audio-waveform"
)

// loadEnvFile exports the variables of path into the process environment.
// Variables that are already set win; a missing file is not an error.
func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %v: %w", path, err)
	}
	return nil
}

// settingsFromEnv returns the loader defaults, overridden by any
// WAVEFORM_* variables getenv reports.
func settingsFromEnv(getenv func(string) string) (*waveform.SourceConfig, error) {
	cfg := waveform.DefaultSourceConfig()

	if v := getenv(envHeaderSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", envHeaderSize, err)
		}
		cfg.HeaderSize = n
	}
	if v := getenv(envTrailerSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", envTrailerSize, err)
		}
		cfg.TrailerSize = n
	}
	if v := getenv(envTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", envTimeout, err)
		}
		cfg.Timeout = d
	}

	return cfg, cfg.Validate()
}

func isURL(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// loadInput fetches a URL or decodes a file. format overrides the file
// extension when set.
func loadInput(ctx context.Context, location, format string, cfg *waveform.SourceConfig) (waveform.Buffer, int, error) {
	if isURL(location) {
		b, err := waveform.Load(ctx, location, cfg)
		return b, defaultURLRate, err
	}

	if format == "" {
		return waveform.DecodeFile(location)
	}

	f, err := os.Open(location)
	if err != nil {
		return waveform.Buffer{}, 0, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return waveform.Decode(f, format)
}

// resolveOutputRate returns the explicit rate when set. Otherwise it scales
// the input rate by the chain's resampling ratio so the output keeps the
// input's duration. The result is at least 1 Hz.
func resolveOutputRate(explicit, inputRate int, ratio float64) int {
	if explicit > 0 {
		return explicit
	}
	return max(int(math.Round(float64(inputRate)*ratio)), 1)
}

// outputFormat resolves the output format from an explicit override or the
// output file extension.
func outputFormat(path, override string) (string, error) {
	format := strings.ToLower(override)
	if format == "" {
		format = strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	}
	switch format {
	case outputWAV, outputCSV:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want %s or %s)", format, outputWAV, outputCSV)
	}
}

// writeOutput creates path and writes b in the given format.
func writeOutput(path, format string, b waveform.Buffer, sampleRate int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	if format == outputCSV {
		return writeCSV(f, b)
	}
	return waveform.EncodeWAV(f, b, sampleRate)
}

// writeCSV writes one sample per line.
func writeCSV(w io.Writer, b waveform.Buffer) error {
	bw := bufio.NewWriter(w)
	for _, v := range b.All() {
		if _, err := bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

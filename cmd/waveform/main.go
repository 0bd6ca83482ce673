// Command waveform derives envelopes and onset gates from mono audio.
//
// The input is an audio file (wav, mp3, ogg, u8) or an http(s) URL serving
// headered unsigned 8-bit PCM. The transform chain is applied and the result
// is written as an 8-bit WAV file or as CSV, one sample per line.
//
// Usage:
//
//	waveform -chain rectify,envelope input.wav envelope.wav
//	waveform -chain "lowpass:8,rectify,envelope:0.2:0.995,trigger:0.1:0.3" clip.mp3 gate.csv
//	waveform -header 48 -rate 8000 https://example.com/clip.raw out.wav
//
// Loader settings default to the WAVEFORM_HEADER_SIZE, WAVEFORM_TRAILER_SIZE
// and WAVEFORM_TIMEOUT environment variables, which may also be set in a
// .env file (see -env).
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"

	waveform "github.com/tphakala/go-audio-waveform"
)

const (
	// CLI defaults
	defaultChain    = "rectify,envelope"
	defaultEnvFile  = ".env"
	minRequiredArgs = 2

	// Environment variables read for loader defaults
	envHeaderSize  = "WAVEFORM_HEADER_SIZE"
	envTrailerSize = "WAVEFORM_TRAILER_SIZE"
	envTimeout     = "WAVEFORM_TIMEOUT"
	envFileVar     = "WAVEFORM_ENV_FILE"

	// Output formats
	outputWAV = "wav"
	outputCSV = "csv"

	// Sample rate reported for URL inputs, which carry none
	defaultURLRate = 8000
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	envFile := defaultEnvFile
	if v := os.Getenv(envFileVar); v != "" {
		envFile = v
	}
	if err := loadEnvFile(envFile); err != nil {
		return err
	}
	defaults, err := settingsFromEnv(os.Getenv)
	if err != nil {
		return err
	}

	chain := flag.String("chain", defaultChain, "Transform chain, e.g. lowpass:8,rectify,envelope:0.2:0.995,trigger:0.1:0.3")
	inFormat := flag.String("in", "", "Input format: wav, mp3, ogg, u8 (default: from file extension)")
	outFormat := flag.String("out", "", "Output format: wav or csv (default: from file extension)")
	rate := flag.Int("rate", 0, "Output WAV sample rate in Hz (default: input rate scaled by the chain's up/downsampling)")
	header := flag.Int("header", defaults.HeaderSize, "Bytes to skip at the start of a URL payload")
	trailer := flag.Int("trailer", defaults.TrailerSize, "Bytes to skip at the end of a URL payload")
	timeout := flag.Duration("timeout", defaults.Timeout, "HTTP request timeout")
	verbose := flag.Bool("v", false, "Verbose output")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input output\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s input.wav envelope.wav                        # Default envelope\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -chain lowpass,rectify,env,gate:0.1:0.3 a.mp3 gate.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -header 48 https://example.com/clip out.wav   # Fetch over HTTP\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	inputPath := args[0]
	outputPath := args[1]

	p, err := waveform.ParsePipeline(*chain)
	if err != nil {
		return err
	}

	format, err := outputFormat(outputPath, *outFormat)
	if err != nil {
		return err
	}

	cfg := &waveform.SourceConfig{
		HeaderSize:  *header,
		TrailerSize: *trailer,
		Timeout:     *timeout,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if *verbose {
		log.Printf("Input: %s", inputPath)
		log.Printf("Output: %s (%s)", outputPath, format)
		log.Printf("Chain: %s", p)
		if isURL(inputPath) {
			log.Printf("Framing: header %d bytes, trailer %d bytes, timeout %v", cfg.HeaderSize, cfg.TrailerSize, cfg.Timeout)
		}
	}

	start := time.Now()
	in, inputRate, err := loadInput(context.Background(), inputPath, *inFormat, cfg)
	if err != nil {
		return err
	}
	if *verbose {
		log.Printf("Loaded %d samples at %d Hz", in.Len(), inputRate)
	}

	out, err := p.Run(in)
	if err != nil {
		return err
	}

	outputRate := resolveOutputRate(*rate, inputRate, p.RateRatio())
	if *verbose {
		log.Printf("Output rate: %d Hz", outputRate)
	}
	if err := writeOutput(outputPath, format, out, outputRate); err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Processed %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %s\n", p)
	fmt.Printf("  %d samples -> %d samples\n", in.Len(), out.Len())
	if peak, err := out.Peak(); err == nil {
		fmt.Printf("  Peak: %.4f\n", peak)
	}
	fmt.Printf("  Duration: %.2fs\n", elapsed.Seconds())

	return nil
}

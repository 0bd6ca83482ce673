// Package waveform derives amplitude envelopes and gate signals from mono
// audio in pure Go.
//
// A [Buffer] is an immutable, ordered sequence of float64 samples. Every
// transform reads its receiver and returns a new Buffer, so transforms
// compose freely and independent buffers can be processed concurrently.
//
// # Transforms
//
//   - [Buffer.Downsample]: mean of consecutive blocks of k samples
//   - [Buffer.Upsample]: k linearly interpolated samples per input sample
//   - [Buffer.LowPass]: Downsample followed by Upsample by the same factor
//   - [Buffer.HighPass]: scaled first difference (s[i] - s[i+1]) / 2
//   - [Buffer.Rectify]: absolute value of every sample
//   - [Buffer.Envelope]: asymmetric exponential envelope follower
//   - [Buffer.Trigger]: Schmitt trigger producing a 0/1 gate
//   - [Buffer.Normalize]: scale to unit peak
//
// # Quick Start
//
// Loading 8-bit audio over HTTP and deriving an onset gate:
//
//	b, err := waveform.Load(ctx, "https://example.com/clip.wav", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	env, err := b.Rectify().Envelope(0.2, 0.995)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	gate, err := env.Trigger(0.1, 0.3)
//
// The same chain as a reusable [Pipeline]:
//
//	p, err := waveform.ParsePipeline("rectify,envelope:0.2:0.995,trigger:0.1:0.3")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	gate, err := p.Run(b)
//
// # Loading Audio
//
// [Load] fetches headered unsigned 8-bit PCM over HTTP; the header length is
// configurable through [SourceConfig]. [Decode] and [DecodeFile] read WAV,
// MP3, Ogg Vorbis or raw u8 data and average multi-channel audio to mono.
// [EncodeWAV] writes a buffer back as an 8-bit mono WAV file.
//
// # Errors
//
// Invalid factors, envelope parameters, thresholds and pipeline
// descriptions return errors wrapping [ErrInvalidArgument]. Statistics on an
// empty buffer return [ErrEmptySequence]. The loader reports
// [ErrTransport] and [ErrProtocol]. Use [errors.Is] to test for them.
//
// # Thread Safety
//
// Buffers are never mutated after construction and are safe for concurrent
// use. A [Pipeline] must not be modified while Run or RunMulti is in
// progress.
package waveform

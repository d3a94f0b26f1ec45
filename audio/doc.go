// SPDX-License-Identifier: EPL-2.0

// Package audio holds the types shared by the decoders and the playback
// engine: the streaming Source, the Decoder registry, and SampleBuffer.
//
// # Source Interface
//
// Decoders hand out audio as a stream of interleaved float32 samples:
//
//	type Source interface {
//		SampleRate() int
//		Channels() int
//		ReadSamples(dst []float32) (int, error)
//		BufSize() int
//		Close() error
//	}
//
// ReadSamples returns a count of float32 values, not frames, and every
// source in this module returns whole frames only. The final read may
// return samples together with io.EOF. BufSize is a hint for how large a
// destination the source handles efficiently.
//
// # Sample Format
//
// Samples are float32 in [-1, 1]:
//   - 0 is silence
//   - 1 and -1 are full scale
//
// Interleaving puts the channels of one frame next to each other, so a
// stereo stream reads L R L R ...
//
// # Sample Buffers
//
// The engine never plays from a stream. It drains one with Collect and
// converts the result to the device rate:
//
//	buf, err := audio.Collect(src, 0)
//	if err != nil {
//		return err
//	}
//	buf, err = buf.Resample(48000)
//
// Collect takes a frame limit; 0 means unlimited, and a longer source
// fails with ErrSourceTooLong instead of exhausting memory. A source that
// yields nothing fails with ErrEmptySource.
//
// A SampleBuffer is planar and immutable after construction, so the render
// goroutine may read it through At and MonoAt without locking or
// allocating. MonoAt averages every channel of a frame.
//
// Resample uses Catmull-Rom cubic interpolation. When the target rate is
// lower, a one-pole low-pass runs first to tame aliasing. Matching rates
// return the receiver unchanged.
//
// NewBufferSource turns a SampleBuffer back into a Source, which lets
// synthesized audio go through the same offline path as a decoded file:
//
//	src := audio.NewBufferSource(buf)
//	pcm16, err := defuzzer.EnhanceToMono16(src, 48000, params, 0)
//
// # Format Registry
//
// The registry maps format keys to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	format, decoder, ok := registry.Detect(header)
//
// Decoders that implement Sniffer take part in Detect, which walks them in
// registration order and returns the first that recognises the leading
// SniffLen bytes of a stream. Register and the lookups are safe for
// concurrent use.
//
// # Error Handling
//
// The package errors are plain sentinels; compare with errors.Is since
// callers often wrap them:
//   - ErrInvalidSampleRate, ErrInvalidChannels, ErrUnevenChannels for
//     malformed buffers
//   - ErrInvalidDstSize when a destination is not a whole number of frames
//   - ErrEmptySource and ErrSourceTooLong from Collect
//   - ErrUnknownFormat when no registered decoder recognises the input
package audio

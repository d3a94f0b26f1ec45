// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio with
// github.com/hajimehoshi/go-mp3.
//
// # Output Layout
//
// go-mp3 always produces 16-bit little-endian stereo, so every source from
// this package reports two channels, even for mono files. Both channels
// then carry the same signal, and averaging them for playback gives the
// original mono signal back.
//
// Samples are scaled by 1/32768 and therefore lie in [-1, 1).
//
// # Decoding MP3 Files
//
//	src, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//		return err
//	}
//	defer src.Close()
//
//	buf := make([]float32, src.BufSize())
//	n, err := src.ReadSamples(buf)
//
// Each call fills as much of dst as the stream allows, growing the byte
// buffer behind it when dst is larger than any earlier request. BufSize
// reports the current capacity of that buffer in samples. Reads always end
// on a frame boundary; a trailing partial frame from a truncated stream is
// dropped.
//
// Unlike the WAV and AIFF decoders, this one never seeks and never buffers
// the whole input. Any io.Reader works.
//
// # Detecting MP3 Files
//
// Sniff accepts either an ID3v2 tag ("ID3") or a bare MPEG frame sync
// (eleven set bits). The frame sync is a loose signature, so the formats
// registry asks this decoder last.
//
// # Error Handling
//
// Errors from go-mp3 are wrapped and returned from Decode and ReadSamples.
// Reaching the end of the stream, including an unexpected end inside a
// frame, is reported as io.EOF.
package mp3

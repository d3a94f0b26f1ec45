// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams with
// github.com/jfreymuth/oggvorbis.
//
// # Decoding Ogg Files
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//		return err
//	}
//	defer src.Close()
//
//	buf := make([]float32, src.BufSize())
//	n, err := src.ReadSamples(buf)
//
// Vorbis decodes to floating point already, so samples are written
// straight into dst with no conversion or intermediate buffer.
//
// oggvorbis counts interleaved values, not frames. Reads are trimmed to
// whole frames before they are handed back, and a destination shorter than
// one frame reads nothing.
//
// The decoder reads the stream front to back and never seeks, so any
// io.Reader works, including network bodies and pipes.
//
// # Detecting Ogg Files
//
// Sniff checks for the "OggS" capture pattern of the first page. Ogg can
// carry codecs other than Vorbis; those pass the sniff and then fail in
// Decode.
//
// # Error Handling
//
// Decode wraps errors from oggvorbis and returns audio.ErrInvalidChannels
// for a stream header that declares no channels. The end of the stream is
// reported as io.EOF with the last samples.
package vorbis

// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF and uncompressed AIFC files with
// github.com/go-audio/aiff.
//
// # Supported Formats
//
// The decoder accepts:
//   - AIFF, and AIFC with uncompressed sample data
//   - integer PCM at 8, 16, 24 and 32 bits
//   - any channel count and sample rate
//
// AIFF stores samples big-endian and, unlike WAV, keeps 8-bit data signed.
// go-audio takes care of the byte order; this package only scales the
// integers to float32 in [-1, 1].
//
// # Decoding AIFF Files
//
// Samples are streamed from the go-audio decoder one block at a time
// rather than loaded up front:
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//		return err
//	}
//	defer src.Close()
//
//	buf := make([]float32, 4096)
//	for {
//		n, err := src.ReadSamples(buf)
//		process(buf[:n])
//		if err == io.EOF {
//			break
//		}
//		if err != nil {
//			return err
//		}
//	}
//
// The source keeps one integer buffer and grows it only when a caller asks
// for more samples than before, so steady reads do not allocate. BufSize
// reports the size of that buffer once it exists.
//
// Every read returns whole frames. A read that produces no samples is
// reported as io.EOF, which stops callers from spinning on a truncated
// file.
//
// go-audio needs an io.ReadSeeker. Other readers are buffered in memory
// first.
//
// # Detecting AIFF Files
//
// Sniff accepts a FORM container whose form type is AIFF or AIFC.
//
// # Error Handling
//
//   - ErrNotAiffFile: the input has no FORM/AIFF header
//   - ErrUnsupportedAiffLayout: the header describes no channels
//   - bit depths other than 8, 16, 24 or 32 fail with the shared
//     unsupported bit depth error
//
// Errors may be wrapped; compare with errors.Is.
package aiff

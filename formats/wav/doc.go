// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and writes WAV files through github.com/go-audio/wav.
//
// # Supported Formats
//
// The decoder accepts:
//   - integer PCM (format tag 1) at 8, 16, 24 and 32 bits
//   - any channel count
//   - any sample rate
//
// Floating point, A-law, mu-law and compressed WAV files are rejected with
// ErrOnlyPCMSupported.
//
// # Decoding WAV Files
//
// Decode reads the whole file through go-audio and hands out the samples
// as interleaved float32 in [-1, 1]:
//
//	src, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//		return err
//	}
//	defer src.Close()
//
//	buf := make([]float32, src.BufSize())
//	n, err := src.ReadSamples(buf)
//
// Reads always return whole frames: a destination shorter than one frame
// reads nothing, and the last read returns io.EOF together with the
// remaining samples.
//
// 8-bit WAV data is unsigned, so it is re-centred on zero before scaling.
// Wider samples are divided by their full-scale value, for example 32768
// for 16-bit.
//
// go-audio needs an io.ReadSeeker. Other readers are buffered in memory
// first.
//
// # Detecting WAV Files
//
// Sniff looks for the RIFF container and the WAVE form type in the first
// twelve bytes. The formats package uses it to pick this decoder without
// trusting a file extension.
//
// # Writing WAV Files
//
// WriteWAV16 writes interleaved 16-bit samples for any channel count:
//
//	out, _ := os.Create("processed.wav")
//	defer out.Close()
//	err := wav.WriteWAV16(out, 48000, 1, pcm16)
//
// The encoder rewrites the RIFF sizes when it finishes, so the destination
// must be an io.WriteSeeker. A bytes.Buffer is not one.
//
// # Error Handling
//
// The package defines these errors:
//   - ErrNotWavFile: the input has no RIFF/WAVE header
//   - ErrOnlyPCMSupported: the format tag is not integer PCM
//   - ErrNoAudioData: the data chunk is empty
//   - ErrInvalidChannels: WriteWAV16 was given a channel count below 1
//   - ErrUnalignedSamples: WriteWAV16 was given a partial frame
//
// Check them with errors.Is, since they may be wrapped:
//
//	if errors.Is(err, wav.ErrOnlyPCMSupported) {
//		// ask for a PCM export
//	}
package wav

// SPDX-License-Identifier: EPL-2.0

// Package pcm holds the integer PCM helpers shared by the go-audio based
// decoders.
package pcm

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

var ErrUnsupportedBitDepth = errors.New("unsupported PCM bit depth")

// FullScale returns the magnitude of the most negative sample at bitDepth.
func FullScale(bitDepth int) (float32, error) {
	switch bitDepth {
	case 8:
		return 128.0, nil
	case 16:
		return 32768.0, nil
	case 24:
		return 8388608.0, nil
	case 32:
		return 2147483648.0, nil
	}

	return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
}

// ToFloat converts integer samples to float32 in [-1, 1]. Unsigned 8-bit
// data (WAV) is centred on 128 first.
func ToFloat(dst []float32, src []int, scale float32, unsigned8 bool) {
	if unsigned8 {
		for i, v := range src {
			dst[i] = float32(v-128) / scale
		}
		return
	}

	for i, v := range src {
		dst[i] = float32(v) / scale
	}
}

// ReadSeeker returns r itself when it can seek, otherwise the whole stream
// buffered in memory. go-audio decoders need to seek between chunks.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}

	return bytes.NewReader(data), nil
}

// Source streams a fully decoded IntBuffer as an audio.Source.
type Source struct {
	data       []int
	sampleRate int
	channels   int
	scale      float32
	unsigned8  bool
	pos        int
}

// NewSource wraps buf. bitDepth selects the normalisation.
func NewSource(buf *goaudio.IntBuffer, bitDepth int, unsigned8 bool) (*Source, error) {
	scale, err := FullScale(bitDepth)
	if err != nil {
		return nil, err
	}

	return &Source{
		data:       buf.Data,
		sampleRate: buf.Format.SampleRate,
		channels:   buf.Format.NumChannels,
		scale:      scale,
		unsigned8:  unsigned8 && bitDepth == 8,
	}, nil
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BufSize() int    { return 4096 }
func (s *Source) Close() error    { return nil }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.data) {
		return 0, io.EOF
	}

	// whole frames only
	n := min(len(dst), len(s.data)-s.pos)
	n -= n % s.channels
	if n == 0 {
		return 0, nil
	}

	ToFloat(dst[:n], s.data[s.pos:s.pos+n], s.scale, s.unsigned8)
	s.pos += n

	if s.pos >= len(s.data) {
		return n, io.EOF
	}
	return n, nil
}

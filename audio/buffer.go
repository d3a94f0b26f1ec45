// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/defuzzer/utils"
)

// SampleBuffer is a fully decoded, planar block of audio. It is immutable
// once constructed: every method either reads or returns a new buffer, so
// a *SampleBuffer can be shared with the render goroutine without locking.
type SampleBuffer struct {
	sampleRate int
	frames     int
	channels   [][]float32
}

// NewSampleBuffer copies channels into a new buffer. Every channel must have
// the same length.
func NewSampleBuffer(sampleRate int, channels [][]float32) (*SampleBuffer, error) {
	owned := make([][]float32, len(channels))
	for i, ch := range channels {
		owned[i] = append([]float32(nil), ch...)
	}

	return newSampleBuffer(sampleRate, owned)
}

// newSampleBuffer takes ownership of channels.
func newSampleBuffer(sampleRate int, channels [][]float32) (*SampleBuffer, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if len(channels) == 0 {
		return nil, ErrInvalidChannels
	}

	frames := len(channels[0])
	for _, ch := range channels[1:] {
		if len(ch) != frames {
			return nil, ErrUnevenChannels
		}
	}

	return &SampleBuffer{
		sampleRate: sampleRate,
		frames:     frames,
		channels:   channels,
	}, nil
}

func (b *SampleBuffer) SampleRate() int { return b.sampleRate }
func (b *SampleBuffer) Channels() int   { return len(b.channels) }
func (b *SampleBuffer) Frames() int     { return b.frames }

// Duration returns the buffer length in seconds.
func (b *SampleBuffer) Duration() float64 {
	return float64(b.frames) / float64(b.sampleRate)
}

// Channel returns a copy of channel ch.
func (b *SampleBuffer) Channel(ch int) []float32 {
	return append([]float32(nil), b.channels[ch]...)
}

// At returns one sample. It does not allocate and is safe to call from the
// render goroutine.
func (b *SampleBuffer) At(ch, frame int) float32 {
	return b.channels[ch][frame]
}

// MonoAt returns the average of all channels at frame.
func (b *SampleBuffer) MonoAt(frame int) float32 {
	switch len(b.channels) {
	case 1:
		return b.channels[0][frame]
	case 2:
		return (b.channels[0][frame] + b.channels[1][frame]) * 0.5
	}

	var sum float32
	for _, ch := range b.channels {
		sum += ch[frame]
	}
	return sum / float32(len(b.channels))
}

// Resample converts the buffer to rate using cubic interpolation. A one-pole
// low-pass runs ahead of the interpolator when downsampling. The receiver is
// returned unchanged when the rates already match.
func (b *SampleBuffer) Resample(rate int) (*SampleBuffer, error) {
	if rate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if rate == b.sampleRate {
		return b, nil
	}

	ratio := float64(b.sampleRate) / float64(rate)
	outFrames := int((int64(b.frames)*int64(rate) + int64(b.sampleRate) - 1) / int64(b.sampleRate))

	out := make([][]float32, len(b.channels))
	for c, src := range b.channels {
		if ratio > 1 && len(src) > 0 {
			src = lowPass(src, 0.5)
		}
		out[c] = interpolate(src, ratio, outFrames)
	}

	return newSampleBuffer(rate, out)
}

func lowPass(src []float32, alpha float32) []float32 {
	out := make([]float32, len(src))
	state := src[0]
	for i, x := range src {
		state = alpha*x + (1-alpha)*state
		out[i] = state
	}
	return out
}

func interpolate(src []float32, ratio float64, outFrames int) []float32 {
	out := make([]float32, outFrames)
	if len(src) == 0 {
		return out
	}

	last := len(src) - 1
	at := func(i int) float32 {
		if i < 0 {
			return src[0]
		}
		if i > last {
			return src[last]
		}
		return src[i]
	}

	for j := range out {
		pos := float64(j) * ratio
		i := int(pos)
		frac := float32(pos - float64(i))
		out[j] = utils.CubicInterpolate(at(i-1), at(i), at(i+1), at(i+2), frac)
	}

	return out
}

// Collect drains src into a SampleBuffer. maxFrames <= 0 means no limit;
// otherwise a longer source fails with ErrSourceTooLong. src is not closed.
func Collect(src Source, maxFrames int) (*SampleBuffer, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}
	if src.SampleRate() <= 0 {
		return nil, ErrInvalidSampleRate
	}

	size := src.BufSize()
	if size < channels {
		size = 4096
	}
	size -= size % channels

	planar := make([][]float32, channels)
	buf := make([]float32, size)

	for {
		n, err := src.ReadSamples(buf)
		if n%channels != 0 {
			return nil, fmt.Errorf("%w: read %d samples for %d channels", ErrInvalidDstSize, n, channels)
		}

		for f := range n / channels {
			for c := range channels {
				planar[c] = append(planar[c], buf[f*channels+c])
			}
		}

		if maxFrames > 0 && len(planar[0]) > maxFrames {
			return nil, ErrSourceTooLong
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			// a source that returns nothing without EOF would spin forever
			break
		}
	}

	if len(planar[0]) == 0 {
		return nil, ErrEmptySource
	}

	return newSampleBuffer(src.SampleRate(), planar)
}

// bufferSource streams a SampleBuffer as an interleaved Source.
type bufferSource struct {
	buf *SampleBuffer
	pos int
}

// NewBufferSource returns a Source reading b from the start.
func NewBufferSource(b *SampleBuffer) Source {
	return &bufferSource{buf: b}
}

func (s *bufferSource) SampleRate() int { return s.buf.sampleRate }
func (s *bufferSource) Channels() int   { return len(s.buf.channels) }
func (s *bufferSource) BufSize() int    { return 4096 }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	channels := len(s.buf.channels)
	if len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if s.pos >= s.buf.frames {
		return 0, io.EOF
	}

	frames := min(len(dst)/channels, s.buf.frames-s.pos)
	for f := range frames {
		for c, ch := range s.buf.channels {
			dst[f*channels+c] = ch[s.pos+f]
		}
	}
	s.pos += frames

	if s.pos >= s.buf.frames {
		return frames * channels, io.EOF
	}
	return frames * channels, nil
}

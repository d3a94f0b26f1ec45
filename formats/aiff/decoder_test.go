// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// mockAiffReader simulates aiff.Decoder.
type mockAiffReader struct {
	sampleRate int
	channels   int
	samples    []int
	offset     int
	err        error
}

func (m *mockAiffReader) Format() *goaudio.Format {
	return &goaudio.Format{SampleRate: m.sampleRate, NumChannels: m.channels}
}

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.samples) {
		return 0, nil
	}

	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n

	return n, nil
}

func newSource(m *mockAiffReader, scale float32) *source {
	return &source{dec: m, sampleRate: m.sampleRate, channels: m.channels, scale: scale}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{nil, []byte("This is not AIFF data")} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(data)); err == nil {
			t.Errorf("Decode(%q) error = nil, want error", data)
		}
	}
}

func TestDecoder_Sniff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header string
		want   bool
	}{
		{"FORM\x00\x00\x00\x00AIFF", true},
		{"FORM\x00\x00\x00\x00AIFC", true},
		{"FORM\x00\x00\x00\x00ILBM", false},
		{"RIFF\x00\x00\x00\x00WAVE", false},
		{"FORM", false},
	}

	for _, tt := range tests {
		if got := (Decoder{}).Sniff([]byte(tt.header)); got != tt.want {
			t.Errorf("Sniff(%q) = %v, want %v", tt.header, got, tt.want)
		}
	}
}

func TestSource_Normalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		scale   float32
		samples []int
		want    []float32
	}{
		{"8-bit signed", 128, []int{-128, 64, 127}, []float32{-1, 0.5, 127.0 / 128}},
		{"16-bit", 32768, []int{-32768, 16384, 0}, []float32{-1, 0.5, 0}},
		{"24-bit", 8388608, []int{-8388608, 4194304, 0}, []float32{-1, 0.5, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := newSource(&mockAiffReader{sampleRate: 44100, channels: 1, samples: tt.samples}, tt.scale)
			dst := make([]float32, len(tt.samples))
			n, err := src.ReadSamples(dst)
			if err != nil || n != len(tt.want) {
				t.Fatalf("ReadSamples() = %d, %v", n, err)
			}
			for i := range tt.want {
				if dst[i] != tt.want[i] {
					t.Errorf("dst[%d] = %v, want %v", i, dst[i], tt.want[i])
				}
			}
		})
	}
}

func TestSource_StreamsUntilEOF(t *testing.T) {
	t.Parallel()

	samples := make([]int, 1000)
	src := newSource(&mockAiffReader{sampleRate: 48000, channels: 2, samples: samples}, 32768)

	total := 0
	dst := make([]float32, 64)
	for {
		n, err := src.ReadSamples(dst)
		total += n
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if total != len(samples) {
		t.Errorf("read %d samples, want %d", total, len(samples))
	}
	if src.BufSize() != 64 {
		t.Errorf("BufSize() = %d, want 64", src.BufSize())
	}
}

func TestSource_OddDestinationKeepsFrames(t *testing.T) {
	t.Parallel()

	src := newSource(&mockAiffReader{sampleRate: 48000, channels: 2, samples: make([]int, 10)}, 32768)
	if n, err := src.ReadSamples(make([]float32, 5)); n != 4 || err != nil {
		t.Errorf("ReadSamples(5) = %d, %v; want 4, nil", n, err)
	}
}

func TestSource_DecoderError(t *testing.T) {
	t.Parallel()

	src := newSource(&mockAiffReader{sampleRate: 48000, channels: 1, err: io.ErrUnexpectedEOF}, 32768)
	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want ErrUnexpectedEOF", err)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int, 2*4096)
	dst := make([]float32, 4096)

	b.ReportAllocs()
	for b.Loop() {
		src := newSource(&mockAiffReader{sampleRate: 44100, channels: 2, samples: samples}, 32768)
		for {
			if _, err := src.ReadSamples(dst); err != nil {
				break
			}
		}
	}
}

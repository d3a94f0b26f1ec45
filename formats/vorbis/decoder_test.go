// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// mockOggReader mimics oggvorbis.Reader: Read fills whole frames and
// returns the number of values written.
type mockOggReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
	err        error
}

func (m *mockOggReader) SampleRate() int { return m.sampleRate }
func (m *mockOggReader) Channels() int   { return m.channels }

func (m *mockOggReader) Read(buf []float32) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	frames := min(len(buf), len(m.samples)-m.offset) / m.channels
	n := copy(buf, m.samples[m.offset:m.offset+frames*m.channels])
	m.offset += n

	return n, nil
}

func newSource(m *mockOggReader) *source {
	return &source{dec: m, sampleRate: m.sampleRate, channels: m.channels}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{nil, []byte("This is not Ogg Vorbis data")} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(data)); err == nil {
			t.Errorf("Decode(%q) error = nil, want error", data)
		}
	}
}

func TestDecoder_Sniff(t *testing.T) {
	t.Parallel()

	if !(Decoder{}).Sniff([]byte("OggS\x00\x02")) {
		t.Error("Sniff(OggS) = false, want true")
	}
	if (Decoder{}).Sniff([]byte("RIFF")) {
		t.Error("Sniff(RIFF) = true, want false")
	}
}

func TestSource_ReadSamplesCountsValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		dst      int
		want     int
	}{
		{"mono", 1, 5, 5},
		{"stereo", 2, 6, 6},
		{"stereo odd dst", 2, 7, 6},
		{"six channels", 6, 12, 12},
		{"dst shorter than a frame", 6, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			samples := make([]float32, 60)
			for i := range samples {
				samples[i] = float32(i) / 100
			}
			src := newSource(&mockOggReader{sampleRate: 48000, channels: tt.channels, samples: samples})

			dst := make([]float32, tt.dst)
			n, err := src.ReadSamples(dst)
			if err != nil {
				t.Fatalf("ReadSamples() error = %v", err)
			}
			if n != tt.want {
				t.Fatalf("ReadSamples() = %d, want %d", n, tt.want)
			}
			for i := range n {
				if dst[i] != samples[i] {
					t.Errorf("dst[%d] = %v, want %v", i, dst[i], samples[i])
				}
			}
		})
	}
}

func TestSource_ReadUntilEOF(t *testing.T) {
	t.Parallel()

	src := newSource(&mockOggReader{sampleRate: 44100, channels: 2, samples: make([]float32, 100)})

	total := 0
	dst := make([]float32, 32)
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

	if total != 100 {
		t.Errorf("read %d samples, want 100", total)
	}
}

func TestSource_DecoderError(t *testing.T) {
	t.Parallel()

	src := newSource(&mockOggReader{sampleRate: 44100, channels: 1, err: io.ErrUnexpectedEOF})
	if _, err := src.ReadSamples(make([]float32, 8)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want ErrUnexpectedEOF", err)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]float32, 2*4096)
	dst := make([]float32, len(samples))

	b.ReportAllocs()
	for b.Loop() {
		src := newSource(&mockOggReader{sampleRate: 44100, channels: 2, samples: samples})
		if _, err := src.ReadSamples(dst); err != nil {
			b.Fatal(err)
		}
	}
}

// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/defuzzer/audio"
	"github.com/ik5/defuzzer/formats/internal/pcm"
)

const formatPCM = 1

type Decoder struct{}

// Sniff reports whether header starts a RIFF/WAVE stream.
func (Decoder) Sniff(header []byte) bool {
	return len(header) >= 12 &&
		bytes.Equal(header[0:4], []byte("RIFF")) &&
		bytes.Equal(header[8:12], []byte("WAVE"))
}

// Decode reads the whole file through go-audio/wav. Integer PCM at 8, 16,
// 24 and 32 bits is accepted.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.ReadSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM {
		return nil, fmt.Errorf("%w: format tag %d", ErrOnlyPCMSupported, dec.WavAudioFormat)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if buf == nil || buf.Format == nil || len(buf.Data) == 0 {
		return nil, ErrNoAudioData
	}

	src, err := pcm.NewSource(buf, int(dec.BitDepth), true)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return src, nil
}

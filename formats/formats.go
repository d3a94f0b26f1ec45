// SPDX-License-Identifier: EPL-2.0

// Package formats wires the format decoders into an audio.Registry and
// picks one by content.
package formats

import (
	"bufio"
	"fmt"
	"io"
	"slices"

	"github.com/ik5/defuzzer/audio"
	"github.com/ik5/defuzzer/formats/aiff"
	"github.com/ik5/defuzzer/formats/mp3"
	"github.com/ik5/defuzzer/formats/vorbis"
	"github.com/ik5/defuzzer/formats/wav"
)

// NewRegistry returns a registry holding every bundled decoder. MP3 goes
// last because a bare frame sync is the loosest signature.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("mp3", mp3.Decoder{})

	return reg
}

// Only returns a registry holding just the named decoders, in the order of
// NewRegistry. An unknown name fails with audio.ErrUnknownFormat.
func Only(names ...string) (*audio.Registry, error) {
	all := NewRegistry()
	reg := audio.NewRegistry()

	for _, name := range names {
		if _, ok := all.Get(name); !ok {
			return nil, fmt.Errorf("%w: %q", audio.ErrUnknownFormat, name)
		}
	}
	for _, name := range all.Formats() {
		if slices.Contains(names, name) {
			dec, _ := all.Get(name)
			reg.Register(name, dec)
		}
	}

	return reg, nil
}

// Decode sniffs the leading bytes of r and decodes it with the matching
// decoder from reg. It returns the source and the format key.
func Decode(reg *audio.Registry, r io.Reader) (audio.Source, string, error) {
	var (
		header []byte
		input  io.Reader
	)

	if rs, ok := r.(io.ReadSeeker); ok {
		header = make([]byte, audio.SniffLen)
		n, err := io.ReadFull(rs, header)
		if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
			return nil, "", fmt.Errorf("reading header: %w", err)
		}
		header = header[:n]

		if _, err := rs.Seek(0, io.SeekStart); err != nil {
			return nil, "", fmt.Errorf("rewinding input: %w", err)
		}
		input = rs
	} else {
		br := bufio.NewReader(r)
		header, _ = br.Peek(audio.SniffLen)
		input = br
	}

	format, dec, ok := reg.Detect(header)
	if !ok {
		return nil, "", audio.ErrUnknownFormat
	}

	src, err := dec.Decode(input)
	if err != nil {
		return nil, format, fmt.Errorf("decoding %s: %w", format, err)
	}

	return src, format, nil
}

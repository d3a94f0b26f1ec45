// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"sync/atomic"

	"github.com/ik5/defuzzer/audio"
)

// session is one play-through of a buffer. Its fields are fixed at
// creation; the render side only reads them and closes ended.
type session struct {
	id    uint64
	buf   *audio.SampleBuffer
	start int64 // graph frame at which buffer frame 0 plays
	loop  bool

	ended    chan struct{}
	endOnce  atomic.Bool
	cancel   chan struct{}
	canceled bool // control side only
}

func newSession(id uint64, buf *audio.SampleBuffer, clock, offsetFrames int64, loop bool) *session {
	return &session{
		id:     id,
		buf:    buf,
		start:  clock - offsetFrames,
		loop:   loop,
		ended:  make(chan struct{}),
		cancel: make(chan struct{}),
	}
}

// fill writes the downmixed buffer frames for graph frames clock onwards.
// It reports whether the buffer ran out.
func (s *session) fill(dst []float64, clock int64) bool {
	frames := int64(s.buf.Frames())
	ended := false

	for i := range dst {
		idx := clock + int64(i) - s.start
		if idx >= frames {
			if !s.loop || frames == 0 {
				dst[i] = 0
				ended = true
				continue
			}
			idx %= frames
		}
		if idx < 0 {
			dst[i] = 0
			continue
		}
		dst[i] = float64(s.buf.MonoAt(int(idx)))
	}

	return ended
}

// finish closes ended exactly once.
func (s *session) finish() {
	if s.endOnce.CompareAndSwap(false, true) {
		close(s.ended)
	}
}

// stop releases the end watcher. Control side only.
func (s *session) stop() {
	if !s.canceled {
		s.canceled = true
		close(s.cancel)
	}
}

// position returns the buffer position in frames at the given graph clock.
func (s *session) position(clock int64) int64 {
	frames := int64(s.buf.Frames())
	pos := clock - s.start
	if s.loop && frames > 0 {
		pos %= frames
	}
	return min(max(pos, 0), frames)
}

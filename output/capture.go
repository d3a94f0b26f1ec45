// SPDX-License-Identifier: EPL-2.0

package output

import (
	"sync"
	"sync/atomic"
)

// Capture is a sink driven by its caller: every Pull renders on the
// calling goroutine, which then plays the part of the device thread. It
// backs offline rendering and tests.
type Capture struct {
	sampleRate int
	renderer   atomic.Pointer[rendererBox]
	started    atomic.Bool
	closed     atomic.Bool

	// serialises Pull callers; a renderer has one render goroutine
	pull sync.Mutex
}

func NewCapture(sampleRate int) (*Capture, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidRate
	}
	return &Capture{sampleRate: sampleRate}, nil
}

func (c *Capture) SampleRate() int { return c.sampleRate }

func (c *Capture) Start(r Renderer) error {
	if r == nil {
		return ErrNoRenderer
	}
	if c.closed.Load() {
		return ErrClosed
	}

	c.renderer.Store(&rendererBox{r: r})
	c.started.Store(true)
	return nil
}

// Started reports whether Start succeeded at least once.
func (c *Capture) Started() bool { return c.started.Load() }

// Closed reports whether Close was called.
func (c *Capture) Closed() bool { return c.closed.Load() }

// PullInto renders len(dst) samples into dst. Before Start or after Close
// dst is zeroed.
func (c *Capture) PullInto(dst []float32) {
	c.pull.Lock()
	defer c.pull.Unlock()

	box := c.renderer.Load()
	if box == nil {
		clear(dst)
		return
	}
	box.r.Render(dst)
}

// Pull renders n samples into a new slice.
func (c *Capture) Pull(n int) []float32 {
	out := make([]float32, n)
	c.PullInto(out)
	return out
}

func (c *Capture) Close() error {
	c.closed.Store(true)
	c.renderer.Store(nil)
	return nil
}

// SPDX-License-Identifier: EPL-2.0

package output

import "errors"

var (
	ErrClosed      = errors.New("sink is closed")
	ErrNoRenderer  = errors.New("renderer is nil")
	ErrInvalidRate = errors.New("sample rate must be positive")
)

// Renderer fills dst with mono samples. It is called from the sink's
// render goroutine and must not block.
type Renderer interface {
	Render(dst []float32)
}

// Sink pulls mono float32 audio from a Renderer at a fixed sample rate.
type Sink interface {
	SampleRate() int
	// Start begins pulling from r. Calling it again swaps the renderer.
	Start(r Renderer) error
	// Close stops pulling and releases the device. It is safe to call more
	// than once.
	Close() error
}

// rendererBox lets an interface value live behind an atomic.Pointer.
type rendererBox struct {
	r Renderer
}

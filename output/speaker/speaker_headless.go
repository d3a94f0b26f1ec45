// SPDX-License-Identifier: EPL-2.0

//go:build headless

package speaker

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/ik5/defuzzer/output"
)

const headlessBlock = 512

type rendererBox struct {
	r output.Renderer
}

// Speaker without a device: a goroutine pulls blocks at real-time pace and
// throws them away, so transport still advances.
type Speaker struct {
	sampleRate int
	renderer   atomic.Pointer[rendererBox]

	mtx    sync.Mutex
	done   chan struct{}
	closed bool
}

func New(sampleRate int) (*Speaker, error) {
	if sampleRate <= 0 {
		return nil, output.ErrInvalidRate
	}
	return &Speaker{sampleRate: sampleRate}, nil
}

func (o *Speaker) SampleRate() int { return o.sampleRate }

func (o *Speaker) Start(r output.Renderer) error {
	if r == nil {
		return output.ErrNoRenderer
	}

	o.mtx.Lock()
	defer o.mtx.Unlock()

	if o.closed {
		return output.ErrClosed
	}

	o.renderer.Store(&rendererBox{r: r})
	if o.done == nil {
		o.done = make(chan struct{})
		go o.run(o.done)
	}

	return nil
}

func (o *Speaker) run(done <-chan struct{}) {
	block := make([]float32, headlessBlock)
	period := time.Duration(headlessBlock) * time.Second / time.Duration(o.sampleRate)
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if box := o.renderer.Load(); box != nil {
				box.r.Render(block)
			}
		}
	}
}

func (o *Speaker) Close() error {
	o.mtx.Lock()
	defer o.mtx.Unlock()

	if o.closed {
		return nil
	}
	o.closed = true
	o.renderer.Store(nil)
	if o.done != nil {
		close(o.done)
	}

	return nil
}

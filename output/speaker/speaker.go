// SPDX-License-Identifier: EPL-2.0

//go:build !headless

package speaker

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/ik5/defuzzer/output"
)

const bufferDuration = 40 * time.Millisecond

type rendererBox struct {
	r output.Renderer
}

// oto allows a single context per process.
var (
	otoOnce sync.Once
	otoCtx  *oto.Context
	otoRate int
	otoErr  error
)

func otoContext(sampleRate int) (*oto.Context, error) {
	otoOnce.Do(func() {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: 1,
			Format:       oto.FormatFloat32LE,
			BufferSize:   bufferDuration,
		})
		if err != nil {
			otoErr = err
			return
		}
		<-ready
		otoCtx, otoRate = ctx, sampleRate
	})

	if otoErr != nil {
		return nil, fmt.Errorf("%w", otoErr)
	}
	if otoRate != sampleRate {
		return nil, fmt.Errorf("audio device already opened at %d Hz", otoRate)
	}
	return otoCtx, nil
}

// Speaker plays on the default output device.
type Speaker struct {
	sampleRate int
	renderer   atomic.Pointer[rendererBox]
	scratch    []float32 // owned by the device goroutine

	mtx    sync.Mutex
	player *oto.Player
	closed bool
}

// New returns a speaker sink. The device is opened by Start.
func New(sampleRate int) (*Speaker, error) {
	if sampleRate <= 0 {
		return nil, output.ErrInvalidRate
	}

	return &Speaker{
		sampleRate: sampleRate,
		scratch:    make([]float32, 4096),
	}, nil
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
	if o.player != nil {
		return nil
	}

	ctx, err := otoContext(o.sampleRate)
	if err != nil {
		return err
	}

	o.player = ctx.NewPlayer(o)
	o.player.Play()

	return nil
}

// Read is called by oto on its own goroutine.
func (o *Speaker) Read(p []byte) (int, error) {
	box := o.renderer.Load()
	if box == nil {
		clear(p)
		return len(p), nil
	}

	n := len(p) / 4
	for off := 0; off < n; off += len(o.scratch) {
		block := o.scratch[:min(len(o.scratch), n-off)]
		box.r.Render(block)

		for i, s := range block {
			binary.LittleEndian.PutUint32(p[(off+i)*4:], math.Float32bits(s))
		}
	}

	return n * 4, nil
}

func (o *Speaker) Close() error {
	o.mtx.Lock()
	defer o.mtx.Unlock()

	if o.closed {
		return nil
	}
	o.closed = true
	o.renderer.Store(nil)

	if o.player != nil {
		err := o.player.Close()
		o.player = nil
		if err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

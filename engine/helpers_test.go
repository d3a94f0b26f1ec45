// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"math"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/ik5/defuzzer/output"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

const testRate = 48000

// recorder collects callback traffic.
type recorder struct {
	mtx    sync.Mutex
	states []string
	errs   []error
	ch     chan string
}

func newRecorder() *recorder {
	return &recorder{ch: make(chan string, 256)}
}

func (r *recorder) options() []Option {
	return []Option{
		OnStateChange(func(name string, _ State) {
			r.mtx.Lock()
			r.states = append(r.states, name)
			r.mtx.Unlock()
			select {
			case r.ch <- name:
			default:
			}
		}),
		OnError(func(_ string, err error) {
			r.mtx.Lock()
			r.errs = append(r.errs, err)
			r.mtx.Unlock()
		}),
	}
}

func (r *recorder) stateCount() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return len(r.states)
}

func (r *recorder) errCount() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return len(r.errs)
}

func (r *recorder) waitFor(t *testing.T, name string) {
	t.Helper()

	timeout := time.After(2 * time.Second)
	for {
		select {
		case got := <-r.ch:
			if got == name {
				return
			}
		case <-timeout:
			t.Fatalf("timed out waiting for state %q", name)
		}
	}
}

type fixture struct {
	c    *Controller
	sink *output.Capture
	rec  *recorder
	hook *test.Hook
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()

	sink, err := output.NewCapture(testRate)
	if err != nil {
		t.Fatalf("NewCapture() error = %v", err)
	}

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	rec := newRecorder()

	all := append([]Option{
		WithLogger(logger),
		WithNoise(rand.New(rand.NewPCG(1, 2))),
	}, rec.options()...)
	all = append(all, opts...)

	return &fixture{
		c:    New(sink, all...),
		sink: sink,
		rec:  rec,
		hook: hook,
	}
}

// playing initializes, synthesizes and starts playback.
func (f *fixture) playing(t *testing.T) {
	t.Helper()

	if err := f.c.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if err := f.c.SynthesizeDefaultBuffer(); err != nil {
		t.Fatalf("SynthesizeDefaultBuffer() error = %v", err)
	}
	if err := f.c.Play(); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
}

func peak(x []float32) float64 {
	var p float64
	for _, v := range x {
		p = max(p, math.Abs(float64(v)))
	}
	return p
}

// SPDX-License-Identifier: EPL-2.0

package output

import (
	"errors"
	"testing"
)

type rampRenderer struct {
	next float32
}

func (r *rampRenderer) Render(dst []float32) {
	for i := range dst {
		dst[i] = r.next
		r.next++
	}
}

func TestCapture_Pull(t *testing.T) {
	t.Parallel()

	c, err := NewCapture(48000)
	if err != nil {
		t.Fatalf("NewCapture() error = %v", err)
	}

	if got := c.Pull(3); got[0] != 0 || got[2] != 0 {
		t.Errorf("Pull before Start = %v, want silence", got)
	}

	if err := c.Start(&rampRenderer{}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if !c.Started() {
		t.Error("Started() = false")
	}

	c.Pull(4)
	if got := c.Pull(2); got[0] != 4 || got[1] != 5 {
		t.Errorf("second Pull = %v, want [4 5]", got)
	}
}

func TestCapture_Close(t *testing.T) {
	t.Parallel()

	c, _ := NewCapture(8000)
	_ = c.Start(&rampRenderer{next: 1})

	if err := c.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if !c.Closed() {
		t.Error("Closed() = false")
	}

	if got := c.Pull(2); got[0] != 0 {
		t.Errorf("Pull after Close = %v, want silence", got)
	}
	if err := c.Start(&rampRenderer{}); !errors.Is(err, ErrClosed) {
		t.Errorf("Start after Close error = %v, want ErrClosed", err)
	}
}

func TestCapture_Errors(t *testing.T) {
	t.Parallel()

	if _, err := NewCapture(0); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("NewCapture(0) error = %v, want ErrInvalidRate", err)
	}

	c, _ := NewCapture(8000)
	if err := c.Start(nil); !errors.Is(err, ErrNoRenderer) {
		t.Errorf("Start(nil) error = %v, want ErrNoRenderer", err)
	}
}

func TestCapture_PullIntoZeroAllocs(t *testing.T) {
	c, _ := NewCapture(48000)
	_ = c.Start(&rampRenderer{})
	dst := make([]float32, 256)

	if allocs := testing.AllocsPerRun(100, func() { c.PullInto(dst) }); allocs != 0 {
		t.Errorf("PullInto allocated %.1f times, want 0", allocs)
	}
}

var _ Sink = (*Capture)(nil)

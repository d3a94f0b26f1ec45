// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/ik5/defuzzer/audio"
	"github.com/ik5/defuzzer/dsp"
	"github.com/ik5/defuzzer/formats"
	"github.com/ik5/defuzzer/output"
	"github.com/ik5/defuzzer/utils"
	"github.com/sirupsen/logrus"
)

// SourceSynthetic names a buffer built by SynthesizeDefaultBuffer.
const SourceSynthetic = "synthetic"

type notice struct {
	name  string
	state State
}

type failure struct {
	msg string
	err error
}

// Controller owns the render graph, the loaded buffer and the
// authoritative parameter set. Its methods are safe for concurrent use.
type Controller struct {
	mtx sync.Mutex

	sink        output.Sink
	log         logrus.FieldLogger
	registry    *audio.Registry
	noise       NoiseSource
	blockSize   int
	maxDuration float64
	resetOnPlay bool
	onState     func(string, State)
	onError     func(string, error)

	status      status
	params      dsp.Params
	graph       *Graph
	buf         *audio.SampleBuffer
	source      string
	active      *session
	nextID      uint64
	pauseOffset float64
	loop        bool
	degraded    uint64

	// delivered after the lock is released
	notices  []notice
	failures []failure
}

// New returns an uninitialized controller that will render into sink.
func New(sink output.Sink, opts ...Option) *Controller {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)

	c := &Controller{
		sink:      sink,
		log:       log,
		registry:  formats.NewRegistry(),
		blockSize: DefaultBlockSize,
		params:    dsp.DefaultParams(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// run executes fn under the lock, then delivers the callbacks it queued.
func (c *Controller) run(fn func() error) error {
	c.mtx.Lock()
	err := fn()
	notices, failures := c.notices, c.failures
	c.notices, c.failures = nil, nil
	c.mtx.Unlock()

	for _, n := range notices {
		if c.onState != nil {
			c.onState(n.name, n.state)
		}
	}
	for _, f := range failures {
		if c.onError != nil {
			c.onError(f.msg, f.err)
		}
	}

	return err
}

// fail logs err, queues it for OnError and returns it.
func (c *Controller) fail(op, msg string, err error) error {
	c.log.WithFields(logrus.Fields{
		"op":    op,
		"state": c.status.String(),
		"error": err,
	}).Error(msg)

	c.failures = append(c.failures, failure{msg: msg, err: err})
	return err
}

func (c *Controller) setStatus(s status) {
	c.status = s
	c.log.WithFields(logrus.Fields{"state": s.String()}).Debug("state change")
	c.notices = append(c.notices, notice{name: s.String(), state: c.snapshot()})
}

// checkDegraded logs repairs the processor made since the last check.
func (c *Controller) checkDegraded(op string) {
	if c.graph == nil {
		return
	}
	if n := c.graph.proc.Degraded(); n > c.degraded {
		c.log.WithFields(logrus.Fields{
			"op":      op,
			"repairs": n - c.degraded,
		}).Warn("processor repaired malformed input")
		c.degraded = n
	}
}

// Initialize builds the graph and starts the sink.
func (c *Controller) Initialize() error {
	return c.run(c.initialize)
}

func (c *Controller) initialize() error {
	const op = "initialize"

	switch {
	case c.status == statusDisposed:
		return c.fail(op, "engine disposed", ErrNotInitialized)
	case c.graph != nil:
		return c.fail(op, "engine already initialized", fmt.Errorf("%w: already initialized", ErrInitFailure))
	case c.sink == nil:
		return c.fail(op, "no output sink", fmt.Errorf("%w: nil sink", ErrInitFailure))
	}

	rate := c.sink.SampleRate()
	if rate <= 0 {
		return c.fail(op, "invalid sink rate", fmt.Errorf("%w: %w", ErrInitFailure, audio.ErrInvalidSampleRate))
	}

	g := newGraph(rate, c.blockSize, c.params)
	g.proc.Enqueue(c.params)

	if err := c.sink.Start(g); err != nil {
		return c.fail(op, "failed to start audio output", fmt.Errorf("%w: %w", ErrInitFailure, err))
	}

	c.graph = g
	c.log.WithFields(logrus.Fields{"op": op, "rate": rate, "block": c.blockSize}).Info("graph ready")
	c.setStatus(statusInitialized)

	return nil
}

// ensureGraph initializes on demand, as loading does.
func (c *Controller) ensureGraph() error {
	if c.status == statusDisposed {
		return ErrNotInitialized
	}
	if c.graph != nil {
		return nil
	}
	return c.initialize()
}

// LoadBuffer decodes an encoded file held in memory.
func (c *Controller) LoadBuffer(data []byte) error {
	return c.LoadReader(bytes.NewReader(data))
}

// LoadReader decodes r, resamples it to the graph rate and makes it the
// active buffer. The engine is initialized first if needed.
func (c *Controller) LoadReader(r io.Reader) error {
	return c.run(func() error {
		const op = "load"

		if err := c.ensureGraph(); err != nil {
			if c.status == statusDisposed {
				return c.fail(op, "engine disposed", err)
			}
			return err
		}

		buf, format, err := c.decode(r)
		if err != nil {
			return c.fail(op, "failed to load audio file", fmt.Errorf("%w: %w", ErrDecodeFailure, err))
		}

		c.install(buf, format)
		c.log.WithFields(logrus.Fields{
			"op":       op,
			"format":   format,
			"duration": buf.Duration(),
		}).Info("buffer loaded")

		return nil
	})
}

func (c *Controller) decode(r io.Reader) (*audio.SampleBuffer, string, error) {
	src, format, err := formats.Decode(c.registry, r)
	if err != nil {
		return nil, format, err
	}
	defer src.Close()

	maxFrames := 0
	if c.maxDuration > 0 {
		maxFrames = int(math.Ceil(c.maxDuration * float64(src.SampleRate())))
	}

	buf, err := audio.Collect(src, maxFrames)
	if err != nil {
		return nil, format, err
	}

	buf, err = buf.Resample(c.graph.rate)
	if err != nil {
		return nil, format, err
	}

	return buf, format, nil
}

// SynthesizeDefaultBuffer installs the built-in drum loop.
func (c *Controller) SynthesizeDefaultBuffer() error {
	return c.run(func() error {
		const op = "synthesize"

		if err := c.ensureGraph(); err != nil {
			if c.status == statusDisposed {
				return c.fail(op, "engine disposed", err)
			}
			return err
		}

		buf, err := Synthesize(c.graph.rate, c.noise)
		if err != nil {
			return c.fail(op, "failed to create default sample", fmt.Errorf("%w: %w", ErrDecodeFailure, err))
		}

		c.install(buf, SourceSynthetic)
		return nil
	})
}

// install swaps in buf, stopping whatever played the old one.
func (c *Controller) install(buf *audio.SampleBuffer, source string) {
	c.detach()
	c.buf = buf
	c.source = source
	c.pauseOffset = 0
	c.setStatus(statusLoaded)
}

// Play starts a session at the pause offset, replacing any live one.
func (c *Controller) Play() error {
	return c.run(func() error {
		const op = "play"

		switch {
		case c.status == statusDisposed:
			return c.fail(op, "engine disposed", ErrNotInitialized)
		case c.graph == nil || c.buf == nil:
			return c.fail(op, "no audio loaded or engine not initialized", ErrNotReady)
		}

		c.start(c.pauseOffset)
		c.checkDegraded(op)
		return nil
	})
}

// start attaches a new session at offset seconds.
func (c *Controller) start(offset float64) {
	c.detach()

	if c.resetOnPlay {
		c.graph.proc.RequestReset()
	}

	c.nextID++
	offsetFrames := int64(math.Round(offset * float64(c.graph.rate)))
	s := newSession(c.nextID, c.buf, c.graph.Clock(), offsetFrames, c.loop)

	c.active = s
	c.graph.source.Store(s)
	go c.watch(s)

	c.log.WithFields(logrus.Fields{
		"op":      "play",
		"session": s.id,
		"offset":  offset,
		"loop":    s.loop,
	}).Debug("session started")
	c.setStatus(statusPlaying)
}

// watch waits for the session to run out or be torn down.
func (c *Controller) watch(s *session) {
	select {
	case <-s.ended:
	case <-s.cancel:
		return
	}

	_ = c.run(func() error {
		if c.active != s {
			return nil
		}
		c.active = nil
		c.pauseOffset = 0
		c.log.WithFields(logrus.Fields{"session": s.id}).Debug("session ended")
		c.setStatus(statusStopped)
		return nil
	})
}

// detach removes the live session from the graph. A render block already
// in flight may still finish with it.
func (c *Controller) detach() error {
	s := c.active
	if s == nil {
		return ErrAlreadyStopped
	}

	if c.graph != nil {
		c.graph.source.CompareAndSwap(s, nil)
	}
	s.stop()
	c.active = nil

	return nil
}

// position returns the playback position in seconds.
func (c *Controller) position() float64 {
	if c.active == nil || c.graph == nil {
		return c.pauseOffset
	}
	return float64(c.active.position(c.graph.Clock())) / float64(c.graph.rate)
}

// Pause detaches the live session and keeps its position. It reports
// false if nothing was playing.
func (c *Controller) Pause() (bool, error) {
	paused := false
	err := c.run(func() error {
		if c.status == statusDisposed {
			return c.fail("pause", "engine disposed", ErrNotInitialized)
		}
		if c.status != statusPlaying || c.active == nil {
			return nil
		}

		c.pauseOffset = c.position()
		_ = c.detach()
		c.setStatus(statusPaused)
		paused = true
		return nil
	})

	return paused, err
}

// Stop detaches any session and rewinds to the start. Stopping twice is
// not an error.
func (c *Controller) Stop() error {
	return c.run(func() error {
		if c.status == statusDisposed {
			return c.fail("stop", "engine disposed", ErrNotInitialized)
		}

		if err := c.detach(); err != nil {
			c.log.WithFields(logrus.Fields{"op": "stop"}).Debug(err)
		}
		c.pauseOffset = 0

		if c.status != statusStopped && c.status != statusUninitialized {
			c.setStatus(statusStopped)
		}
		return nil
	})
}

// Seek moves to seconds, clamped to the buffer. While playing the session
// restarts there; otherwise the next Play starts there.
func (c *Controller) Seek(seconds float64) error {
	return c.run(func() error {
		const op = "seek"

		switch {
		case c.status == statusDisposed:
			return c.fail(op, "engine disposed", ErrNotInitialized)
		case c.graph == nil || c.buf == nil:
			return c.fail(op, "no audio loaded or engine not initialized", ErrNotReady)
		}

		if !utils.Finite(seconds) {
			seconds = 0
		}
		seconds = utils.Clamp(seconds, 0, c.buf.Duration())

		if c.status == statusPlaying {
			c.start(seconds)
			return nil
		}
		c.pauseOffset = seconds
		return nil
	})
}

// SetLoop sets whether the next session wraps at the end of the buffer.
func (c *Controller) SetLoop(loop bool) error {
	return c.run(func() error {
		if c.status == statusDisposed {
			return c.fail("loop", "engine disposed", ErrNotInitialized)
		}
		c.loop = loop
		return nil
	})
}

// SetParameter updates one parameter. Levels reach their gain stage at
// once; the rest reach the processor at its next block. Values outside
// [0, 1] are kept here as given and clamped on the render side.
func (c *Controller) SetParameter(name string, value float64) error {
	return c.run(func() error {
		const op = "setParameter"

		if c.status == statusDisposed {
			return c.fail(op, "engine disposed", ErrNotInitialized)
		}

		if !c.params.Set(name, value) {
			return c.fail(op, "unknown parameter", fmt.Errorf("%w: %q", ErrInvalidParameter, name))
		}

		fields := logrus.Fields{"op": op, "param": name, "value": value}
		if !(value >= 0 && value <= 1) {
			c.log.WithFields(fields).Warn("parameter outside [0, 1], render side will clamp")
		} else {
			c.log.WithFields(fields).Debug("parameter set")
		}

		if c.graph == nil {
			return nil
		}

		if dsp.IsGain(name) {
			gain := &c.graph.inGain
			if name == dsp.ParamOutputLevel {
				gain = &c.graph.outGain
			}
			c.graph.setGain(gain, value)
		} else {
			c.graph.proc.Enqueue(c.params)
		}

		c.checkDegraded(op)
		return nil
	})
}

// GetState returns a snapshot. It is cheap enough to poll.
func (c *Controller) GetState() State {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	return c.snapshot()
}

func (c *Controller) snapshot() State {
	st := State{
		Initialized: c.graph != nil,
		Loaded:      c.buf != nil,
		Playing:     c.status == statusPlaying,
		Name:        c.status.String(),
		Source:      c.source,
		Position:    c.position(),
		Parameters:  c.params,
	}
	if c.buf != nil {
		st.Duration = c.buf.Duration()
	}
	return st
}

// Dispose stops playback, closes the sink and drops the graph and buffer.
// Every later call fails with ErrNotInitialized.
func (c *Controller) Dispose() error {
	return c.run(func() error {
		if c.status == statusDisposed {
			return nil
		}

		_ = c.detach()
		c.graph = nil
		c.buf = nil
		c.source = ""
		c.pauseOffset = 0

		var err error
		if c.sink != nil {
			if cerr := c.sink.Close(); cerr != nil {
				err = c.fail("dispose", "failed to close audio output", cerr)
			}
		}

		c.setStatus(statusDisposed)
		return err
	})
}

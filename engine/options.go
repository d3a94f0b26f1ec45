// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"github.com/ik5/defuzzer/audio"
	"github.com/ik5/defuzzer/dsp"
	"github.com/sirupsen/logrus"
)

// DefaultBlockSize is the number of samples processed per parameter
// drain.
const DefaultBlockSize = 128

type Option func(*Controller)

// WithLogger sets the control-side logger. Nothing on the render path
// logs.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithNoise sets the noise source used by SynthesizeDefaultBuffer. A
// seeded *rand.Rand makes the fixture reproducible.
func WithNoise(n NoiseSource) Option {
	return func(c *Controller) { c.noise = n }
}

// WithParams replaces the default parameter set.
func WithParams(p dsp.Params) Option {
	return func(c *Controller) { c.params = p }
}

// WithLoop makes sessions wrap at the end of the buffer.
func WithLoop(loop bool) Option {
	return func(c *Controller) { c.loop = loop }
}

// WithResetOnPlay clears the processor's windows and envelope whenever a
// session starts. By default that state carries over between sessions.
func WithResetOnPlay(reset bool) Option {
	return func(c *Controller) { c.resetOnPlay = reset }
}

// WithRegistry sets the decoders used by LoadBuffer and LoadReader.
func WithRegistry(r *audio.Registry) Option {
	return func(c *Controller) {
		if r != nil {
			c.registry = r
		}
	}
}

// WithBlockSize sets how many samples run between parameter drains.
func WithBlockSize(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.blockSize = n
		}
	}
}

// WithMaxDuration caps how long a decoded buffer may be, in seconds.
func WithMaxDuration(seconds float64) Option {
	return func(c *Controller) {
		if seconds > 0 {
			c.maxDuration = seconds
		}
	}
}

// OnStateChange is called after every transport change, outside the
// controller lock.
func OnStateChange(fn func(name string, st State)) Option {
	return func(c *Controller) { c.onState = fn }
}

// OnError is called with a message and cause for every failed operation,
// outside the controller lock.
func OnError(fn func(msg string, err error)) Option {
	return func(c *Controller) { c.onError = fn }
}

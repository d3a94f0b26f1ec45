// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math"
	"sync/atomic"
)

// Parameter names accepted by Params.Set and the controller.
const (
	ParamIntensity   = "intensity"
	ParamThreshold   = "threshold"
	ParamPresence    = "presence"
	ParamInputLevel  = "inputLevel"
	ParamOutputLevel = "outputLevel"
)

// ParamNames lists every parameter in display order.
var ParamNames = []string{
	ParamIntensity,
	ParamThreshold,
	ParamPresence,
	ParamInputLevel,
	ParamOutputLevel,
}

// Params is a full parameter snapshot. Every field is nominally in [0, 1].
type Params struct {
	Intensity   float64 `toml:"intensity"`
	Threshold   float64 `toml:"threshold"`
	Presence    float64 `toml:"presence"`
	InputLevel  float64 `toml:"inputLevel"`
	OutputLevel float64 `toml:"outputLevel"`
}

// DefaultParams returns the factory settings.
func DefaultParams() Params {
	return Params{
		Intensity:   0.65,
		Threshold:   0.45,
		Presence:    0.55,
		InputLevel:  0.5,
		OutputLevel: 0.5,
	}
}

func (p *Params) field(name string) *float64 {
	switch name {
	case ParamIntensity:
		return &p.Intensity
	case ParamThreshold:
		return &p.Threshold
	case ParamPresence:
		return &p.Presence
	case ParamInputLevel:
		return &p.InputLevel
	case ParamOutputLevel:
		return &p.OutputLevel
	}
	return nil
}

// Get returns the named value. ok is false for an unknown name.
func (p Params) Get(name string) (float64, bool) {
	f := p.field(name)
	if f == nil {
		return 0, false
	}
	return *f, true
}

// Set stores value under name as given. It reports false, leaving p
// untouched, for an unknown name.
func (p *Params) Set(name string, value float64) bool {
	f := p.field(name)
	if f == nil {
		return false
	}
	*f = value
	return true
}

// IsGain reports whether name drives a gain stage rather than the
// processor.
func IsGain(name string) bool {
	return name == ParamInputLevel || name == ParamOutputLevel
}

// InRange reports whether every field is finite and within [0, 1].
func (p Params) InRange() bool {
	for _, v := range [...]float64{p.Intensity, p.Threshold, p.Presence, p.InputLevel, p.OutputLevel} {
		if !(v >= 0 && v <= 1) {
			return false
		}
	}
	return true
}

// sanitize returns next with non-finite fields replaced by the prior value
// and the rest clamped to [0, 1], plus the number of repaired fields.
func sanitize(prior, next Params) (Params, int) {
	repairs := 0
	fix := func(old, v float64) float64 {
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			repairs++
			return old
		case v < 0:
			repairs++
			return 0
		case v > 1:
			repairs++
			return 1
		}
		return v
	}

	return Params{
		Intensity:   fix(prior.Intensity, next.Intensity),
		Threshold:   fix(prior.Threshold, next.Threshold),
		Presence:    fix(prior.Presence, next.Presence),
		InputLevel:  fix(prior.InputLevel, next.InputLevel),
		OutputLevel: fix(prior.OutputLevel, next.OutputLevel),
	}, repairs
}

// ParamCell is a single-slot, latest-wins mailbox. Any number of writers
// may Store; the reader Takes the newest snapshot, and intermediate ones
// are lost.
type ParamCell struct {
	p atomic.Pointer[Params]
}

// Store publishes p, replacing anything not yet taken.
func (c *ParamCell) Store(p Params) {
	c.p.Store(&p)
}

// Take empties the cell. ok is false if nothing was stored since the last
// Take.
func (c *ParamCell) Take() (Params, bool) {
	p := c.p.Swap(nil)
	if p == nil {
		return Params{}, false
	}
	return *p, true
}

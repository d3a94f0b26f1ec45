// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math"
	"sync/atomic"

	"github.com/ik5/defuzzer/utils"
)

// Processor is the enhancement chain: band split, multiband compression,
// exciter, noise gate and limiter.
//
// Enqueue, RequestReset and Degraded may be called from any goroutine.
// Everything else belongs to the render goroutine.
type Processor struct {
	cell     ParamCell
	reset    atomic.Bool
	degraded atomic.Uint64

	// render side only
	params Params
	bands  splitter
	gate   gate
	prev   float64
}

// NewProcessor returns a processor running with p until the first Enqueue.
// p is sanitized against DefaultParams.
func NewProcessor(p Params) *Processor {
	proc := &Processor{}
	proc.params, _ = sanitize(DefaultParams(), p)
	proc.gate.reset()
	return proc
}

// Enqueue hands a snapshot to the render side. It never blocks; a snapshot
// not yet picked up is replaced.
func (p *Processor) Enqueue(params Params) {
	p.cell.Store(params)
}

// RequestReset clears the band windows, envelope and exciter feedback at
// the start of the next block.
func (p *Processor) RequestReset() {
	p.reset.Store(true)
}

// Degraded counts inputs the processor had to repair: malformed parameter
// fields and non-finite samples.
func (p *Processor) Degraded() uint64 {
	return p.degraded.Load()
}

// Params returns the snapshot in effect on the render side.
func (p *Processor) Params() Params {
	return p.params
}

// Envelope returns the current noise gate envelope.
func (p *Processor) Envelope() float64 {
	return p.gate.env
}

// Process runs the chain over block in place. Parameter snapshots and reset
// requests are picked up once, before the first sample.
func (p *Processor) Process(block []float64) {
	if p.reset.CompareAndSwap(true, false) {
		p.bands.reset()
		p.gate.reset()
		p.prev = 0
	}

	if next, ok := p.cell.Take(); ok {
		params, repairs := sanitize(p.params, next)
		p.params = params
		if repairs > 0 {
			p.degraded.Add(uint64(repairs))
		}
	}

	for i, x := range block {
		block[i] = p.ProcessSample(x)
	}
}

// ProcessSample runs one sample through the chain with the current
// parameters.
func (p *Processor) ProcessSample(x float64) float64 {
	if !utils.Finite(x) {
		p.degraded.Add(1)
		x = 0
	}

	low, mid, high := p.bands.split(x)
	y := multiband(low, mid, high, p.params.Intensity, p.params.Threshold)
	y = excite(y, p.prev, p.params.Presence)
	y = p.gate.process(y)
	y = limit(y)

	if !utils.Finite(y) {
		p.degraded.Add(1)
		return limit(x)
	}

	if math.Abs(y) < denormal {
		p.prev = 0
	} else {
		p.prev = y
	}

	return y
}

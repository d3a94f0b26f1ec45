// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"math"
	"sync/atomic"

	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/ik5/defuzzer/dsp"
	"github.com/ik5/defuzzer/utils"
)

// Graph is the render chain: session source, input gain, processor,
// output gain. The sink's goroutine calls Render; the controller touches
// it only through atomics and the processor's Enqueue.
type Graph struct {
	rate int
	proc *dsp.Processor

	source  atomic.Pointer[session]
	inGain  atomic.Uint64
	outGain atomic.Uint64
	clock   atomic.Int64

	scratch []float64 // render side only
}

func newGraph(rate, blockSize int, params dsp.Params) *Graph {
	g := &Graph{
		rate:    rate,
		proc:    dsp.NewProcessor(params),
		scratch: make([]float64, blockSize),
	}
	g.setGain(&g.inGain, params.InputLevel)
	g.setGain(&g.outGain, params.OutputLevel)

	return g
}

// setGain stores v clamped to [0, 1]. A non-finite v leaves the gain as
// it was.
func (g *Graph) setGain(gain *atomic.Uint64, v float64) {
	if !utils.Finite(v) {
		return
	}
	gain.Store(math.Float64bits(utils.Clamp(v, 0, 1)))
}

// Clock returns the number of frames rendered so far.
func (g *Graph) Clock() int64 {
	return g.clock.Load()
}

// Render produces len(dst) mono samples. Requests longer than the block
// size are processed in block-sized pieces.
func (g *Graph) Render(dst []float32) {
	for off := 0; off < len(dst); off += len(g.scratch) {
		out := dst[off:min(off+len(g.scratch), len(dst))]
		g.renderBlock(out)
	}
}

func (g *Graph) renderBlock(dst []float32) {
	block := g.scratch[:len(dst)]
	clock := g.clock.Load()

	if s := g.source.Load(); s != nil {
		if s.fill(block, clock) {
			g.source.CompareAndSwap(s, nil)
			s.finish()
		}
	} else {
		clear(block)
	}

	vecmath.ScaleBlock(block, block, math.Float64frombits(g.inGain.Load()))
	g.proc.Process(block)
	vecmath.ScaleBlock(block, block, math.Float64frombits(g.outGain.Load()))

	for i, v := range block {
		dst[i] = float32(v)
	}

	g.clock.Add(int64(len(dst)))
}

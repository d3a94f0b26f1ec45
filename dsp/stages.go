// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math"

	"github.com/ik5/defuzzer/utils"
)

const (
	harmonicAmount = 0.3
	smoothing      = 0.3

	GateThreshold = 0.01
	GateRelease   = 0.999
	// envelopes stop decaying here instead of sliding into denormals
	envelopeFloor = 1e-20

	Ceiling = 0.95

	// exciter feedback below this is flushed to zero
	denormal = 1e-30
)

// excite adds the even-order harmonic and blends with the previous output.
func excite(x, prev, presence float64) float64 {
	excited := x + utils.Sign(x)*x*x*presence*harmonicAmount
	return excited*(1-smoothing) + prev*smoothing
}

// gate opens instantly above GateThreshold and releases slowly below it.
type gate struct {
	env float64
}

func (g *gate) process(x float64) float64 {
	if math.Abs(x) > GateThreshold {
		g.env = 1
	} else {
		g.env = max(g.env*GateRelease, envelopeFloor)
	}
	return x * g.env
}

func (g *gate) reset() {
	g.env = envelopeFloor
}

// limit hard-clips x to Ceiling.
func limit(x float64) float64 {
	if math.Abs(x) > Ceiling {
		return math.Copysign(Ceiling, x)
	}
	return x
}

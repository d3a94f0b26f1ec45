// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"
	"math/rand"
)

// Sine returns n samples of a unit-amplitude sine.
func Sine(freq float64, sampleRate, n int, amplitude float64) []float64 {
	out := make([]float64, n)
	step := 2 * math.Pi * freq / float64(sampleRate)
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Noise returns n samples of seeded white noise in [-amplitude, amplitude].
func Noise(seed int64, n int, amplitude float64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Peak returns the largest absolute value in x.
func Peak[T ~float32 | ~float64](x []T) float64 {
	var peak float64
	for _, v := range x {
		peak = max(peak, math.Abs(float64(v)))
	}
	return peak
}

// RMS returns the root mean square of x, 0 for an empty slice.
func RMS[T ~float32 | ~float64](x []T) float64 {
	if len(x) == 0 {
		return 0
	}
	var sum float64
	for _, v := range x {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum / float64(len(x)))
}

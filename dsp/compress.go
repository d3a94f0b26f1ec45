// SPDX-License-Identifier: EPL-2.0

package dsp

import "math"

// KneeWidth is the width of the soft knee, centred on the threshold.
const KneeWidth = 0.1

// Per-band multipliers applied to intensity and threshold.
const (
	midIntensity  = 0.8
	midThreshold  = 0.9
	highIntensity = 1.2
	highThreshold = 1.1
)

// Ratio maps intensity to a compression ratio.
func Ratio(intensity float64) float64 {
	return 1 + 3*intensity
}

// Gain returns the compressor gain for magnitude a.
//
// Below the knee the gain is 1. Inside it the gain falls quadratically
// from 1 to kneeEnd's gain gEnd. Above it a power law with exponent
// 1/ratio-1 takes over, scaled so it starts from gEnd at the knee end.
func Gain(a, threshold, ratio float64) float64 {
	kneeStart := threshold - KneeWidth/2
	kneeEnd := threshold + KneeWidth/2
	slope := 1 - 1/ratio

	switch {
	case a <= kneeStart:
		return 1
	case a <= kneeEnd:
		d := a - kneeStart
		return 1 - (d/KneeWidth)*slope*d
	}

	gEnd := 1 - slope*KneeWidth
	return gEnd * math.Pow(a/kneeEnd, 1/ratio-1)
}

// compress applies Gain to x keeping its sign.
func compress(x, intensity, threshold float64) float64 {
	a := math.Abs(x)
	return math.Copysign(a*Gain(a, threshold, Ratio(intensity)), x)
}

// multiband compresses each band with its own intensity and threshold and
// sums the result.
func multiband(low, mid, high, intensity, threshold float64) float64 {
	return compress(low, intensity, threshold) +
		compress(mid, intensity*midIntensity, threshold*midThreshold) +
		compress(high, intensity*highIntensity, threshold*highThreshold)
}

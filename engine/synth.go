// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"math"
	"math/rand/v2"

	"github.com/ik5/defuzzer/audio"
)

// NoiseSource yields uniform values in [0, 1). *rand.Rand from math/rand
// and math/rand/v2 both satisfy it.
type NoiseSource interface {
	Float64() float64
}

type globalNoise struct{}

func (globalNoise) Float64() float64 { return rand.Float64() }

const (
	synthSeconds  = 2.0
	synthChannels = 2
)

// Synthesize renders the two second drum loop used as the default buffer:
// a 60 Hz kick every half second, a noise hi-hat every quarter second and
// a 200 Hz snare with noise on beats two and four. Each layer overwrites
// the samples of the ones before it. A nil noise source is unseeded.
func Synthesize(sampleRate int, noise NoiseSource) (*audio.SampleBuffer, error) {
	if sampleRate <= 0 {
		return nil, audio.ErrInvalidSampleRate
	}
	if noise == nil {
		noise = globalNoise{}
	}

	rate := float64(sampleRate)
	length := int(synthSeconds * rate)
	channels := make([][]float32, synthChannels)

	for ch := range channels {
		data := make([]float32, length)

		layer(data, rate, 4, 0.5, 0.05, func(t float64) float64 {
			return math.Sin(2*math.Pi*60*t) * math.Exp(-t*50) * 0.5
		})

		layer(data, rate, 8, 0.25, 0.02, func(t float64) float64 {
			return (noise.Float64() - 0.5) * math.Exp(-t*200) * 0.1
		})

		for _, beat := range []int{1, 3} {
			hit(data, rate, float64(beat)*0.5, 0.1, func(t float64) float64 {
				env := math.Exp(-t * 30)
				tone := math.Sin(2*math.Pi*200*t) * env * 0.3
				return tone + (noise.Float64()-0.5)*env*0.2
			})
		}

		channels[ch] = data
	}

	return audio.NewSampleBuffer(sampleRate, channels)
}

// layer places count hits every spacing seconds.
func layer(data []float32, rate float64, count int, spacing, length float64, voice func(t float64) float64) {
	for beat := range count {
		hit(data, rate, float64(beat)*spacing, length, voice)
	}
}

// hit writes voice over length seconds starting at at seconds.
func hit(data []float32, rate, at, length float64, voice func(t float64) float64) {
	start := int(math.Floor(at * rate))
	n := int(math.Floor(length * rate))

	for i := range n {
		if start+i >= len(data) {
			return
		}
		data[start+i] = float32(voice(float64(i) / rate))
	}
}

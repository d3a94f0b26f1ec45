// SPDX-License-Identifier: EPL-2.0

package defuzzer

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/ik5/defuzzer/audio"
	"github.com/ik5/defuzzer/dsp"
	"github.com/ik5/defuzzer/utils"
)

// blockSize matches the engine's default render quantum so offline output
// equals what the playback path produces for the same source.
const blockSize = 128

// EnhanceToMono16 runs src through the same chain the player uses: downmix
// to mono, input gain, processor, output gain. The result is 16-bit PCM at
// targetRate. Levels outside [0, 1] are clamped like the live gains.
//
// The whole source is held in memory; maxFrames <= 0 means no limit.
func EnhanceToMono16(src audio.Source, targetRate int, params dsp.Params, maxFrames int) ([]int16, error) {
	buf, err := audio.Collect(src, maxFrames)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	buf, err = buf.Resample(targetRate)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return Enhance(buf, params), nil
}

// Enhance processes a decoded buffer at its own rate.
func Enhance(buf *audio.SampleBuffer, params dsp.Params) []int16 {
	proc := dsp.NewProcessor(params)
	in := gain(params.InputLevel)
	out := gain(params.OutputLevel)

	pcm16 := make([]int16, buf.Frames())
	block := make([]float64, blockSize)

	for off := 0; off < buf.Frames(); off += blockSize {
		n := min(blockSize, buf.Frames()-off)
		b := block[:n]
		for i := range b {
			b[i] = float64(buf.MonoAt(off + i))
		}

		vecmath.ScaleBlock(b, b, in)
		proc.Process(b)
		vecmath.ScaleBlock(b, b, out)

		for i, v := range b {
			pcm16[off+i] = utils.FloatToInt16(v)
		}
	}

	return pcm16
}

func gain(v float64) float64 {
	if !utils.Finite(v) {
		return 0
	}
	return utils.Clamp(v, 0, 1)
}

// SPDX-License-Identifier: EPL-2.0

package dsp

// WindowSize is the length of both moving-average windows. At 48 kHz the
// low window centres the low/mid split near 300 Hz and the residual above
// roughly 3 kHz forms the high band.
const WindowSize = 128

// ring is a fixed shift register of the last WindowSize samples.
type ring struct {
	buf  [WindowSize]float64
	next int
}

// push stores x over the oldest sample and returns the window mean. The
// sum runs oldest to newest so the result does not depend on where the
// write index happens to be.
func (r *ring) push(x float64) float64 {
	r.buf[r.next] = x
	r.next = (r.next + 1) % WindowSize

	var sum float64
	for i := range WindowSize {
		sum += r.buf[(r.next+i)%WindowSize]
	}
	return sum / WindowSize
}

func (r *ring) reset() {
	*r = ring{}
}

// splitter approximates a three-band crossover with two moving averages.
type splitter struct {
	low ring
	mid ring
}

func (s *splitter) split(x float64) (low, mid, high float64) {
	low = s.low.push(x)
	mid = s.mid.push(x - low)
	high = x - low - mid
	return low, mid, high
}

func (s *splitter) reset() {
	s.low.reset()
	s.mid.reset()
}

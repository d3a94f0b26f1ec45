// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloatToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float64
		want  int16
	}{
		{name: "zero", input: 0.0, want: 0},
		{name: "max positive", input: 1.0, want: math.MaxInt16},
		{name: "max negative", input: -1.0, want: -math.MaxInt16},
		{name: "half positive", input: 0.5, want: 16383},
		{name: "half negative", input: -0.5, want: -16383},
		{name: "limiter ceiling", input: 0.95, want: 31128},
		{name: "small negative", input: -0.001, want: -32},
		{name: "clamp over max", input: 1.5, want: math.MaxInt16},
		{name: "clamp under min", input: -100.0, want: -math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Allow for rounding differences of ±1
			for _, got := range []int16{FloatToInt16(tt.input), FloatToInt16(float32(tt.input))} {
				if diff := math.Abs(float64(got) - float64(tt.want)); diff > 1 {
					t.Errorf("FloatToInt16(%v) = %v, want %v (diff %v)", tt.input, got, tt.want, diff)
				}
			}
		})
	}
}

func TestFloatToInt16Monotonic(t *testing.T) {
	t.Parallel()

	prev := FloatToInt16(-1.0)
	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := FloatToInt16(f)
		if curr < prev {
			t.Errorf("FloatToInt16 not monotonic: f=%v gives %v, previous %v", f, curr, prev)
		}
		prev = curr
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		x, lo, hi float64
		want      float64
	}{
		{name: "inside", x: 0.4, lo: 0, hi: 1, want: 0.4},
		{name: "below", x: -2, lo: 0, hi: 1, want: 0},
		{name: "above", x: 2, lo: 0, hi: 1, want: 1},
		{name: "positive infinity", x: math.Inf(1), lo: 0, hi: 1, want: 1},
		{name: "on bound", x: 1, lo: 0, hi: 1, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Clamp(tt.x, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.x, tt.lo, tt.hi, got, tt.want)
			}
		})
	}

	if got := Clamp(math.NaN(), 0, 1); !math.IsNaN(got) {
		t.Errorf("Clamp(NaN) = %v, want NaN", got)
	}
}

func TestFinite(t *testing.T) {
	t.Parallel()

	for _, x := range []float64{0, -1, 1e300, math.SmallestNonzeroFloat64} {
		if !Finite(x) {
			t.Errorf("Finite(%v) = false, want true", x)
		}
	}
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if Finite(x) {
			t.Errorf("Finite(%v) = true, want false", x)
		}
	}
}

func TestSign(t *testing.T) {
	t.Parallel()

	if Sign(0.3) != 1 || Sign(-0.3) != -1 || Sign(0) != 0 {
		t.Errorf("Sign returned wrong values: %v %v %v", Sign(0.3), Sign(-0.3), Sign(0))
	}
}

func TestFloatToInt16_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	floatBuf := make([]float32, 1024)
	int16Buf := make([]int16, 1024)

	allocs := testing.AllocsPerRun(100, func() {
		for i := range floatBuf {
			int16Buf[i] = FloatToInt16(floatBuf[i])
		}
	})

	if allocs > 0 {
		t.Errorf("FloatToInt16 batch conversion allocated %v times, want 0", allocs)
	}
}

func BenchmarkFloatToInt16(b *testing.B) {
	floatSamples := make([]float32, 48000)
	int16Samples := make([]int16, 48000)
	for i := range floatSamples {
		floatSamples[i] = float32(math.Sin(float64(i) * 0.1))
	}

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		for j := range floatSamples {
			int16Samples[j] = FloatToInt16(floatSamples[j])
		}
	}
}

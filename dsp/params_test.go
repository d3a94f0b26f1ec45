// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math"
	"testing"
)

func TestParams_GetSet(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	for _, name := range ParamNames {
		if _, ok := p.Get(name); !ok {
			t.Errorf("Get(%q) not found", name)
		}
	}

	if !p.Set(ParamPresence, 0.9) || p.Presence != 0.9 {
		t.Errorf("Set(presence) did not store, Presence = %v", p.Presence)
	}

	before := p
	if p.Set("bogus", 0.5) {
		t.Error("Set(bogus) = true, want false")
	}
	if p != before {
		t.Errorf("Set(bogus) changed params: %+v", p)
	}
}

func TestParams_InRange(t *testing.T) {
	t.Parallel()

	if !DefaultParams().InRange() {
		t.Error("defaults out of range")
	}

	p := DefaultParams()
	p.Intensity = 2
	if p.InRange() {
		t.Error("intensity 2 reported in range")
	}

	p = DefaultParams()
	p.Threshold = math.NaN()
	if p.InRange() {
		t.Error("NaN threshold reported in range")
	}
}

func TestSanitize(t *testing.T) {
	t.Parallel()

	prior := DefaultParams()
	next := Params{
		Intensity:   2,
		Threshold:   math.NaN(),
		Presence:    -1,
		InputLevel:  math.Inf(1),
		OutputLevel: 0.3,
	}

	got, repairs := sanitize(prior, next)
	want := Params{
		Intensity:   1,
		Threshold:   prior.Threshold,
		Presence:    0,
		InputLevel:  prior.InputLevel,
		OutputLevel: 0.3,
	}

	if got != want {
		t.Errorf("sanitize() = %+v, want %+v", got, want)
	}
	if repairs != 4 {
		t.Errorf("repairs = %d, want 4", repairs)
	}
}

func TestParamCell_LatestWins(t *testing.T) {
	t.Parallel()

	var c ParamCell
	if _, ok := c.Take(); ok {
		t.Fatal("empty cell returned a snapshot")
	}

	for i := range 10 {
		p := DefaultParams()
		p.Intensity = float64(i) / 10
		c.Store(p)
	}

	got, ok := c.Take()
	if !ok || got.Intensity != 0.9 {
		t.Errorf("Take() = %+v, %v; want intensity 0.9", got, ok)
	}
	if _, ok := c.Take(); ok {
		t.Error("second Take() returned a snapshot")
	}
}

func TestIsGain(t *testing.T) {
	t.Parallel()

	gains := map[string]bool{ParamInputLevel: true, ParamOutputLevel: true}
	for _, name := range ParamNames {
		if got := IsGain(name); got != gains[name] {
			t.Errorf("IsGain(%q) = %v, want %v", name, got, gains[name])
		}
	}
	if IsGain("volume") {
		t.Error("IsGain(volume) = true")
	}
}

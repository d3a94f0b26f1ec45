// SPDX-License-Identifier: EPL-2.0

package config

import (
	"fmt"
	"slices"

	"github.com/ik5/defuzzer/dsp"
)

// Built-in preset names.
const (
	PresetDefault    = "default"
	PresetAggressive = "aggressive"
)

// Preset returns a built-in parameter set by name.
func Preset(name string) (dsp.Params, error) {
	switch name {
	case PresetDefault:
		return dsp.DefaultParams(), nil
	case PresetAggressive:
		p := dsp.DefaultParams()
		p.Intensity = 0.9
		p.Threshold = 0.3
		p.Presence = 0.75
		return p, nil
	}

	return dsp.Params{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// PresetNames lists the built-in presets in display order.
func PresetNames() []string {
	return slices.Clone(presetNames)
}

var presetNames = []string{PresetDefault, PresetAggressive}

// Changes returns the parameters of p that differ from prior, keyed by
// name, ready for one SetParameter call each.
func Changes(prior, p dsp.Params) map[string]float64 {
	out := make(map[string]float64)
	for _, name := range dsp.ParamNames {
		was, _ := prior.Get(name)
		now, _ := p.Get(name)
		if was != now {
			out[name] = now
		}
	}
	return out
}

// SPDX-License-Identifier: EPL-2.0

package config

import "fmt"

// Module is a presentation-side group of controls. Only the defuzzer
// module maps onto engine parameters; the others are display data.
type Module struct {
	ID     string        `toml:"id"`
	Label  string        `toml:"label"`
	Params []ModuleParam `toml:"params"`
}

type ModuleParam struct {
	ID    string  `toml:"id"`
	Label string  `toml:"label"`
	Value float64 `toml:"value"`
	Min   float64 `toml:"min"`
	Max   float64 `toml:"max"`
}

// Normalized maps Value from [Min, Max] onto [0, 1].
func (p ModuleParam) Normalized() float64 {
	if p.Max == p.Min {
		return 0
	}
	return (p.Value - p.Min) / (p.Max - p.Min)
}

func (m Module) validate() error {
	if m.ID == "" {
		return fmt.Errorf("%w: module without id", ErrInvalidConfig)
	}

	for _, p := range m.Params {
		if p.Min >= p.Max {
			return fmt.Errorf("%w: %s.%s: min %v >= max %v", ErrInvalidConfig, m.ID, p.ID, p.Min, p.Max)
		}
		if p.Value < p.Min || p.Value > p.Max {
			return fmt.Errorf("%w: %s.%s: value %v outside [%v, %v]", ErrInvalidConfig, m.ID, p.ID, p.Value, p.Min, p.Max)
		}
	}

	return nil
}

// Find returns the module with the given id.
func (c Config) Find(id string) (Module, bool) {
	for _, m := range c.Modules {
		if m.ID == id {
			return m, true
		}
	}
	return Module{}, false
}

func param(id, label string, value float64) ModuleParam {
	return ModuleParam{ID: id, Label: label, Value: value, Min: 0, Max: 100}
}

// DefaultModules returns the stock module table.
func DefaultModules() []Module {
	return []Module{
		{ID: "defuzzer", Label: "Defuzzer", Params: []ModuleParam{
			param("intensity", "Intensity", 65),
			param("threshold", "Threshold", 45),
			param("sustain", "Sustain", 55),
		}},
		{ID: "harmonic", Label: "Harmonic", Params: []ModuleParam{
			param("bass", "Bass", 50),
			param("midrange", "Midrange", 60),
			param("treble", "Treble", 55),
		}},
		{ID: "presence", Label: "Presence", Params: []ModuleParam{
			param("warmth", "Warmth", 70),
			param("presence", "Presence", 60),
			param("bloom", "Bloom", 50),
		}},
		{ID: "dynamics", Label: "Dynamics", Params: []ModuleParam{
			param("attack", "Attack", 40),
			param("release", "Release", 60),
			param("ratio", "Ratio", 50),
		}},
		{ID: "spatial", Label: "Spatial", Params: []ModuleParam{
			param("width", "Width", 50),
			param("depth", "Depth", 55),
			param("imaging", "Imaging", 60),
		}},
	}
}

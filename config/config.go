// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ik5/defuzzer/dsp"
	"github.com/ik5/defuzzer/engine"
	"github.com/ik5/defuzzer/formats"
)

var (
	ErrUnknownKey       = errors.New("unknown configuration key")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrUnknownParameter = errors.New("unknown parameter in preset")
	ErrUnknownPreset    = errors.New("unknown preset")
)

// Config holds everything the player needs to build a controller.
type Config struct {
	SampleRate  int        `toml:"sample_rate"`
	BlockSize   int        `toml:"block_size"`
	Loop        bool       `toml:"loop"`
	ResetOnPlay bool       `toml:"reset_on_play"`
	MaxDuration float64    `toml:"max_duration"`
	Seed        uint64     `toml:"seed"`    // 0 leaves synthesis unseeded
	Formats     []string   `toml:"formats"` // empty accepts every format
	Parameters  dsp.Params `toml:"parameters"`
	Modules     []Module   `toml:"modules"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		SampleRate: 48000,
		BlockSize:  engine.DefaultBlockSize,
		Parameters: dsp.DefaultParams(),
		Modules:    DefaultModules(),
	}
}

// Parse decodes a TOML document on top of Default. A [[modules]] list
// replaces the default table as a whole.
func Parse(data string) (Config, error) {
	cfg := Default()
	cfg.Modules = nil
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w", err)
	}

	return cfg, finish(md, &cfg)
}

// Load reads a TOML file on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()
	cfg.Modules = nil
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w", err)
	}

	return cfg, finish(md, &cfg)
}

func finish(md toml.MetaData, cfg *Config) error {
	if !md.IsDefined("modules") {
		cfg.Modules = DefaultModules()
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}

	return cfg.Validate()
}

// Validate checks ranges. Parameters must be within [0, 1] here even
// though the engine itself tolerates anything.
func (c Config) Validate() error {
	var errs []error

	if c.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("%w: sample_rate %d", ErrInvalidConfig, c.SampleRate))
	}
	if c.BlockSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: block_size %d", ErrInvalidConfig, c.BlockSize))
	}
	if c.MaxDuration < 0 {
		errs = append(errs, fmt.Errorf("%w: max_duration %v", ErrInvalidConfig, c.MaxDuration))
	}
	if !c.Parameters.InRange() {
		errs = append(errs, fmt.Errorf("%w: parameters must be within [0, 1]: %+v", ErrInvalidConfig, c.Parameters))
	}

	if len(c.Formats) > 0 {
		if _, err := formats.Only(c.Formats...); err != nil {
			errs = append(errs, fmt.Errorf("%w: formats: %w", ErrInvalidConfig, err))
		}
	}

	seen := make(map[string]bool, len(c.Modules))
	for _, m := range c.Modules {
		if seen[m.ID] {
			errs = append(errs, fmt.Errorf("%w: duplicate module %q", ErrInvalidConfig, m.ID))
		}
		seen[m.ID] = true

		if err := m.validate(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// EngineOptions turns the configuration into controller options.
func (c Config) EngineOptions() []engine.Option {
	opts := []engine.Option{
		engine.WithParams(c.Parameters),
		engine.WithBlockSize(c.BlockSize),
		engine.WithLoop(c.Loop),
		engine.WithResetOnPlay(c.ResetOnPlay),
		engine.WithMaxDuration(c.MaxDuration),
	}
	if len(c.Formats) > 0 {
		if reg, err := formats.Only(c.Formats...); err == nil {
			opts = append(opts, engine.WithRegistry(reg))
		}
	}
	if noise := c.Noise(); noise != nil {
		opts = append(opts, engine.WithNoise(noise))
	}

	return opts
}

// Noise returns a generator seeded from Seed, or nil when Seed is 0.
func (c Config) Noise() engine.NoiseSource {
	if c.Seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(c.Seed, c.Seed))
}

// LoadPreset reads the [parameters] table of a preset file. Only the keys
// present are returned, so a preset may change a single parameter.
func LoadPreset(path string) (map[string]float64, error) {
	var preset struct {
		Parameters map[string]float64 `toml:"parameters"`
	}

	if _, err := toml.DecodeFile(path, &preset); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	var known dsp.Params
	for name := range preset.Parameters {
		if _, ok := known.Get(name); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownParameter, name)
		}
	}

	return preset.Parameters, nil
}

// SPDX-License-Identifier: EPL-2.0

// Package config loads player settings from TOML.
//
//	sample_rate   = 48000
//	block_size    = 128
//	loop          = true
//	reset_on_play = false
//	seed          = 42
//	formats       = ["wav", "ogg"]
//
//	[parameters]
//	intensity   = 0.7
//	outputLevel = 0.6
//
//	[[modules]]
//	id    = "defuzzer"
//	label = "Defuzzer"
//
// Anything not set keeps its default. Unknown keys are rejected. A preset
// file is the [parameters] table on its own and may name any subset of
// the engine parameters.
package config

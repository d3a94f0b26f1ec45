// SPDX-License-Identifier: EPL-2.0

package engine

import "github.com/ik5/defuzzer/dsp"

type status int

const (
	statusUninitialized status = iota
	statusInitialized
	statusLoaded
	statusPlaying
	statusPaused
	statusStopped
	statusDisposed
)

func (s status) String() string {
	switch s {
	case statusUninitialized:
		return "uninitialized"
	case statusInitialized:
		return "initialized"
	case statusLoaded:
		return "loaded"
	case statusPlaying:
		return "playing"
	case statusPaused:
		return "paused"
	case statusStopped:
		return "stopped"
	case statusDisposed:
		return "disposed"
	}
	return "unknown"
}

// State is a read-only snapshot of the controller.
type State struct {
	Initialized bool
	Loaded      bool
	Playing     bool

	// Name is the transport state: uninitialized, initialized, loaded,
	// playing, paused, stopped or disposed.
	Name string

	// Source describes the loaded buffer: a format key or "synthetic".
	Source string

	// Position and Duration are in seconds.
	Position float64
	Duration float64

	Parameters dsp.Params
}

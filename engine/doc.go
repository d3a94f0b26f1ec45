// SPDX-License-Identifier: EPL-2.0

// Package engine is the playback controller around the dsp chain.
//
// A Controller owns a linear render graph
//
//	session -> input gain -> dsp.Processor -> output gain -> sink
//
// and the transport that feeds it. The sink's goroutine drives the graph
// through Graph.Render. That path touches only atomics: the live session
// sits in an atomic pointer, gains are stored as float bits, parameters
// travel through the processor's latest-wins cell and the graph clock is
// an atomic frame counter. Controller methods serialise on a mutex and
// never wait for the render goroutine.
//
// Detaching a session (Stop, Pause, a new Play) swaps the pointer out; a
// block already being rendered may finish with the old session. When a
// non-looping session runs out, the render side closes its ended channel
// and a control-side watcher moves the controller to "stopped", provided
// that session is still the active one.
//
// Failures come back as errors wrapping ErrNotReady, ErrNotInitialized,
// ErrDecodeFailure, ErrInvalidParameter or ErrInitFailure, and are also
// handed to the OnError callback. State changes reach OnStateChange after
// the controller lock is released, so callbacks may call back in.
package engine

// SPDX-License-Identifier: EPL-2.0

// Package output defines the sink side of the render graph.
//
// A Sink owns the render goroutine and pulls mono float32 samples from a
// Renderer at its own pace. Capture renders only when its caller pulls,
// which makes playback deterministic in tests and lets a whole buffer be
// rendered faster than real time:
//
//	sink, _ := output.NewCapture(48000)
//	ctl := engine.New(sink)
//	...
//	block := sink.Pull(4800) // the next 0.1 s
//
// The device sink lives in output/speaker so this package stays free of
// cgo.
package output

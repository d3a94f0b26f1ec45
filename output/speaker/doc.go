// SPDX-License-Identifier: EPL-2.0

// Package speaker plays a Renderer on the default audio device through
// github.com/ebitengine/oto/v3.
//
// It is kept apart from package output so that the engine and everything
// that imports it build without cgo. Only programs that actually open a
// device import this package:
//
//	sink, err := speaker.New(48000)
//	if err != nil {
//		return err
//	}
//	ctl := engine.New(sink)
//
// oto allows one device context per process, so every Speaker in a
// program must use the same sample rate.
//
// Building with the headless tag replaces the device with a ticker that
// pulls blocks at real-time pace and discards them, which keeps transport
// moving on machines without audio hardware.
package speaker

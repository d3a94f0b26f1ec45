// SPDX-License-Identifier: EPL-2.0

// Package defuzzer cleans up fuzzy, smeared audio with a multiband
// compressor followed by an exciter, a noise gate and a hard limiter at
// 0.95.
//
// The repository is split along the signal path:
//
//   - formats: WAV, AIFF, Ogg Vorbis and MP3 decoders behind one registry
//   - audio: the Source interface and the in-memory SampleBuffer
//   - dsp: the per-sample processor and its parameters
//   - engine: the playback controller (load, play, pause, seek, parameters)
//   - output: the sink interface and an in-memory capture sink
//   - output/speaker: the system audio device
//   - config: TOML settings and parameter presets
//
// # Offline Rendering
//
// EnhanceToMono16 runs a decoded file through the processor without a
// device:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	pcm16, _ := defuzzer.EnhanceToMono16(src, 48000, dsp.DefaultParams(), 0)
//
// # Live Playback
//
// The engine package drives a sink in real time. Parameter changes are
// handed to the render goroutine without locks:
//
//	sink, _ := speaker.New(48000)
//	ctl := engine.New(sink)
//	_ = ctl.LoadBuffer(data)
//	_ = ctl.Play()
//	_ = ctl.SetParameter(dsp.ParamIntensity, 0.8)
//
// See examples/defuzz for a terminal player.
package defuzzer

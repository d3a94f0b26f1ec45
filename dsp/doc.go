// SPDX-License-Identifier: EPL-2.0

// Package dsp implements the per-sample enhancement chain.
//
// Each sample is split into three bands with two 128-sample moving
// averages, compressed per band with a soft knee, recombined, given an
// even-order harmonic lift, gated and finally clipped at 0.95:
//
//	input -> split -> compress x3 -> sum -> exciter -> gate -> limiter
//
// The band split is a time-domain approximation and is meant to stay one.
//
// # Threading
//
// A Processor is driven by exactly one render goroutine through Process.
// The control side talks to it only through Enqueue, which drops a full
// Params snapshot into a latest-wins ParamCell. Process takes that snapshot
// once per block, so a burst of Enqueue calls between two blocks applies
// only the last one. Nothing on the render path locks or allocates.
//
// Malformed parameters are repaired rather than rejected: a NaN or
// infinite field keeps its previous value and anything outside [0, 1] is
// clamped. Each repair is counted in Degraded so the control side can log
// it.
package dsp

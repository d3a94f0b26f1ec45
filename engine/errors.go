// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

var (
	// ErrNotReady means the graph is not initialized or no buffer is loaded.
	ErrNotReady = errors.New("engine not ready")

	// ErrNotInitialized is returned by every operation after Dispose.
	ErrNotInitialized = errors.New("engine not initialized")

	// ErrDecodeFailure wraps decoder and synthesis errors.
	ErrDecodeFailure = errors.New("decode failure")

	// ErrInvalidParameter rejects an unknown parameter name.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInitFailure covers a second Initialize and sink start errors.
	ErrInitFailure = errors.New("initialization failed")

	// ErrAlreadyStopped is tolerated internally and never returned.
	ErrAlreadyStopped = errors.New("already stopped")
)

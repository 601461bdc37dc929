// SPDX-License-Identifier: MIT

package amplitude

import "errors"

var (
	// ErrNotPrecalculated indicates Calculate before a successful Precalculate.
	ErrNotPrecalculated = errors.New("amplitude: not precalculated")

	// ErrShortParameters indicates fewer than 2R parameters.
	ErrShortParameters = errors.New("amplitude: parameter vector too short")

	// ErrEventOutOfRange indicates an event index outside the last precalculated dataset.
	ErrEventOutOfRange = errors.New("amplitude: event index out of range")

	// ErrIndexMismatch indicates a dataset whose events are not densely indexed.
	ErrIndexMismatch = errors.New("amplitude: event index does not match its position")
)

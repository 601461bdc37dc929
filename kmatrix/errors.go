// SPDX-License-Identifier: MIT

package kmatrix

import "errors"

// Every construction failure is a configuration fault: callers are expected
// to stop, not retry. Match with errors.Is.
var (
	// ErrNilTable indicates a missing coupling or background matrix.
	ErrNilTable = errors.New("kmatrix: nil coupling or background table")

	// ErrEmptyTable indicates zero channels or zero poles.
	ErrEmptyTable = errors.New("kmatrix: table needs at least one channel and one pole")

	// ErrDimensionMismatch indicates array or matrix sizes that disagree with C or R.
	ErrDimensionMismatch = errors.New("kmatrix: dimension mismatch")

	// ErrBadMass indicates a non-positive or non-finite channel or pole mass.
	ErrBadMass = errors.New("kmatrix: invalid mass")

	// ErrChannelOutOfRange indicates an output channel outside 0..C-1.
	ErrChannelOutOfRange = errors.New("kmatrix: channel out of range")

	// ErrAsymmetricBackground is returned under WithSymmetryCheck when c ≠ cᵀ.
	ErrAsymmetricBackground = errors.New("kmatrix: background matrix is not symmetric")
)

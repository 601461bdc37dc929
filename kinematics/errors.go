// SPDX-License-Identifier: MIT

package kinematics

import "errors"

var (
	// ErrUnsupportedL indicates an orbital angular momentum outside 0..4.
	ErrUnsupportedL = errors.New("kinematics: unsupported angular momentum L")

	// ErrBadAdlerZero indicates an Adler zero with a zero or non-finite normalisation.
	ErrBadAdlerZero = errors.New("kinematics: invalid Adler zero")
)

// SPDX-License-Identifier: MIT

package kinematics

import (
	"fmt"
	"math"
)

// AdlerZero suppresses an amplitude at the sub-threshold point S0 by scaling
// it with (s − S0)/SNorm.
type AdlerZero struct {
	S0    float64 `yaml:"s0"`
	SNorm float64 `yaml:"s_norm"`
}

// Factor returns (s − S0)/SNorm, or 1 for a nil receiver (no Adler zero).
func (a *AdlerZero) Factor(s float64) float64 {
	if a == nil {
		return 1
	}

	return (s - a.S0) / a.SNorm
}

// Validate rejects a zero or non-finite normalisation and a non-finite S0.
// A nil receiver is valid.
func (a *AdlerZero) Validate() error {
	if a == nil {
		return nil
	}
	if a.SNorm == 0 || math.IsNaN(a.SNorm) || math.IsInf(a.SNorm, 0) ||
		math.IsNaN(a.S0) || math.IsInf(a.S0, 0) {
		return fmt.Errorf("s0=%g s_norm=%g: %w", a.S0, a.SNorm, ErrBadAdlerZero)
	}

	return nil
}

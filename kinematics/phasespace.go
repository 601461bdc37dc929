// SPDX-License-Identifier: MIT

package kinematics

import (
	"math"
	"math/cmplx"
)

// ChiPlus returns 1 − (m1+m2)²/s.
func ChiPlus(s, m1, m2 float64) float64 {
	return 1 - ((m1+m2)*(m1+m2))/s
}

// ChiMinus returns 1 − (m1−m2)²/s.
func ChiMinus(s, m1, m2 float64) float64 {
	return 1 - ((m1-m2)*(m1-m2))/s
}

// Rho is the two-body phase-space factor sqrt(χ₊·χ₋) on the principal branch.
// It is purely imaginary between pseudo-threshold and threshold.
func Rho(s, m1, m2 float64) complex128 {
	return cmplx.Sqrt(complex(ChiPlus(s, m1, m2)*ChiMinus(s, m1, m2), 0))
}

// ChewMandelstam is the analytic phase-space element of channel (m1, m2):
//
//	ρ/π · ln((χ₊+ρ)/(χ₊−ρ)) + χ₊/π · ((m2−m1)/(m1+m2)) · ln(m2/m1)
//
// The logarithm is the principal complex branch.
func ChewMandelstam(s, m1, m2 float64) complex128 {
	cp := ChiPlus(s, m1, m2)
	r := Rho(s, m1, m2)
	ccp := complex(cp, 0)

	return r/complex(math.Pi, 0)*cmplx.Log((ccp+r)/(ccp-r)) +
		complex(cp/math.Pi*((m2-m1)/(m1+m2))*math.Log(m2/m1), 0)
}

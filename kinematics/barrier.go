// SPDX-License-Identifier: MIT

package kinematics

import (
	"fmt"
	"math"
	"math/cmplx"
)

// HbarC is ħc in GeV·fm; it converts squared momenta into the dimensionless
// barrier variable z = q²/HbarC².
const HbarC = 0.1973

// MaxL is the highest supported orbital angular momentum.
const MaxL = 4

// ValidateL returns ErrUnsupportedL unless 0 ≤ l ≤ MaxL.
func ValidateL(l int) error {
	if l < 0 || l > MaxL {
		return fmt.Errorf("L = %d: %w", l, ErrUnsupportedL)
	}

	return nil
}

// BreakupMomentum returns the momentum of either daughter in the rest frame
// of a parent of mass m0 decaying to masses m1 and m2:
//
//	q = sqrt(|m0⁴ + m1⁴ + m2⁴ − 2(m0²m1² + m0²m2² + m1²m2²)|) / (2·m0)
//
// The absolute value is taken before the square root, so below threshold
// (m0 < m1+m2) the result is still a finite real number.
func BreakupMomentum(m0, m1, m2 float64) float64 {
	a, b, c := m0*m0, m1*m1, m2*m2

	return math.Sqrt(math.Abs(a*a+b*b+c*c-2*(a*b+a*c+b*c))) / (2 * m0)
}

// BlattWeisskopf returns the real barrier factor for a parent of mass m0,
// with z = q²/HbarC² and q = BreakupMomentum(m0, m1, m2).
// L = 0 is identically 1. An unsupported l yields NaN; check it with ValidateL.
func BlattWeisskopf(m0, m1, m2 float64, l int) float64 {
	q := BreakupMomentum(m0, m1, m2)

	return real(blattWeisskopfZ(complex(q*q/(HbarC*HbarC), 0), l))
}

// ZS is the barrier variable of a channel at invariant mass squared s,
// z = ρ²·s / (2·HbarC²). It is complex below threshold.
func ZS(s, m1, m2 float64) complex128 {
	r := Rho(s, m1, m2)

	return r * r * complex(s, 0) / complex(2*HbarC*HbarC, 0)
}

// BlattWeisskopfS is the complex barrier factor of channel (m1, m2) at s,
// evaluated at z = ZS(s, m1, m2).
func BlattWeisskopfS(s, m1, m2 float64, l int) complex128 {
	return blattWeisskopfZ(ZS(s, m1, m2), l)
}

// BarrierFactor is the barrier at s normalised to its value at the pole,
// BW(s) / BW(mr²). It equals 1 at s = mr².
func BarrierFactor(s, m1, m2, mr float64, l int) complex128 {
	return BlattWeisskopfS(s, m1, m2, l) / BlattWeisskopfS(mr*mr, m1, m2, l)
}

// blattWeisskopfZ evaluates the closed forms for L = 0..4. Every denominator
// is strictly positive for real z > 0.
func blattWeisskopfZ(z complex128, l int) complex128 {
	switch l {
	case 0:
		return 1
	case 1:
		return cmplx.Sqrt(2 * z / (z + 1))
	case 2:
		z2 := z * z
		zm3 := z - 3

		return cmplx.Sqrt(13 * z2 / (zm3*zm3 + 9*z))
	case 3:
		z3 := z * z * z
		zm15 := z - 15
		tz5 := 2*z - 5

		return cmplx.Sqrt(277 * z3 / (z*zm15*zm15 + 9*tz5*tz5))
	case 4:
		z2 := z * z
		p := z2 - 45*z + 105
		tz21 := 2*z - 21

		return cmplx.Sqrt(12746 * z2 * z2 / (p*p + 25*z*tz21*tz21))
	default:
		return cmplx.NaN()
	}
}

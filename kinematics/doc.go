// SPDX-License-Identifier: MIT

// Package kinematics holds the pure two-body functions the K-matrix engine is
// built from: breakup momentum, Blatt–Weisskopf centrifugal barriers, the
// Chew–Mandelstam phase space and the Adler-zero correction.
//
// ✨ Key properties:
//   - every function is pure and safe for concurrent use
//   - sub-threshold kinematics never error: BreakupMomentum takes |·| before
//     the square root and Rho uses the principal complex square root, so
//     phase space continues analytically below threshold
//   - only L ∈ {0,1,2,3,4} is supported; validate once with ValidateL at
//     construction time, evaluation then never fails
//
// Units: GeV for masses and momenta, GeV² for s; HbarC = 0.1973 GeV·fm.
package kinematics

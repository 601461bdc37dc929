// SPDX-License-Identifier: MIT

// Package kmatrix is a coupled-channel K-matrix resonance library for
// partial-wave analysis fits.
//
// It evaluates complex two-body resonance amplitudes built from a K-matrix
// parameterization: barrier-dressed pole couplings, the Chew–Mandelstam phase
// space, the inverse of (I + K·ρ) and a P-vector of production couplings.
// Everything that depends only on the invariant mass squared s is computed
// once per event; a fit step is then a short complex dot product.
//
// Under the hood the library is organized in five subpackages:
//
//	matrix/     — complex128 dense matrices, LU with partial pivoting, inverse
//	kinematics/ — breakup momentum, Blatt–Weisskopf barriers, phase space, Adler zero
//	kmatrix/    — the Engine, the literal f0/f2/a0/a2/π1 tables, YAML table loading
//	dataset/    — events with go-hep four-momenta, dense event indices
//	amplitude/  — per-event cache and the Precalculate/Calculate/Parameters node
//
// Quick example:
//
//	node, _ := amplitude.NewF0(0)           // f0 amplitude in the ππ channel
//	_ = node.Precalculate(ctx, ds)          // parallel, once per dataset
//	amp, _ := node.Calculate(params, &ds.Events[i])
//
//	go get github.com/katalvlaran/kmatrix
package kmatrix

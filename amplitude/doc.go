// SPDX-License-Identifier: MIT

// Package amplitude adapts a kmatrix.Engine to a fit framework.
//
// A KMatrix node caches, per dataset event, everything that depends only on
// the event's two-body invariant mass squared s: the selected row of
// (I + K·ρ)⁻¹ and the P-vector constants. Precalculate builds that cache once
// per dataset in parallel; Calculate then turns a parameter vector into one
// complex amplitude per event with a short dot product.
//
// Lifecycle:
//
//	node, _ := amplitude.NewF0(0)
//	_ = node.Precalculate(ctx, ds)      // exclusive phase
//	amp, _ := node.Calculate(params, &ds.Events[i]) // concurrent, read-only
//
// Precalculate must not overlap Calculate on the same node; Calculate is safe
// for concurrent use between Precalculate calls.
package amplitude

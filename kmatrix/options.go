// SPDX-License-Identifier: MIT

package kmatrix

import "math"

// DefaultCheckSymmetry leaves the background table unchecked: the literal
// tables are symmetric by construction and the engine never relies on it.
const DefaultCheckSymmetry = false

const panicSymmetryEpsInvalid = "kmatrix: WithSymmetryCheck: eps must be finite, non-negative"

// Option mutates engine options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	checkSymmetry bool
	symmetryEps   float64
}

// WithSymmetryCheck makes New reject a background matrix with |c_ij − c_ji| > eps.
func WithSymmetryCheck(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicSymmetryEpsInvalid)
	}

	return func(o *Options) {
		o.checkSymmetry = true
		o.symmetryEps = eps
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{checkSymmetry: DefaultCheckSymmetry}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

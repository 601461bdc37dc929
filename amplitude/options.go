// SPDX-License-Identifier: MIT

package amplitude

import (
	"fmt"
	"runtime"
)

// Defaults for the node options.
const (
	DefaultDaughter0 = 0
	DefaultDaughter1 = 1
)

const (
	panicWorkersInvalid   = "amplitude: WithWorkers: n must be positive"
	panicDaughtersInvalid = "amplitude: WithDaughters: indices must be distinct and non-negative"
)

// Option mutates node options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers int
	d0, d1  int
}

// WithWorkers bounds the number of goroutines Precalculate runs.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithDaughters selects which two daughters of each event form the resonance.
func WithDaughters(i, j int) Option {
	if i < 0 || j < 0 || i == j {
		panic(fmt.Sprintf("%s (got %d, %d)", panicDaughtersInvalid, i, j))
	}

	return func(o *Options) { o.d0, o.d1 = i, j }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers: runtime.GOMAXPROCS(0),
		d0:      DefaultDaughter0,
		d1:      DefaultDaughter1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

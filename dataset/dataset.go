// SPDX-License-Identifier: MIT

// Package dataset is the minimal event store the amplitudes read from: per
// event four-momenta (go-hep fmom) and the dense index that keys every
// per-event cache.
//
// Reading experimental files is not this package's job; callers build
// events from whatever source they have and hand them to New, which assigns
// the dense indices.
package dataset

import (
	"errors"
	"fmt"

	"go-hep.org/x/hep/fmom"
)

var (
	// ErrMissingDaughter indicates a daughter index outside the event's daughter list.
	ErrMissingDaughter = errors.New("dataset: missing daughter")

	// ErrNilDataset indicates a nil *Dataset was passed where events are required.
	ErrNilDataset = errors.New("dataset: nil dataset")
)

// Event is one photoproduction event.
//
//   - Index is the dense position inside its Dataset; caches are keyed by it.
//   - Daughters are the final-state four-momenta in declared order.
type Event struct {
	Index     int
	Weight    float64
	Beam      fmom.PxPyPzE
	Recoil    fmom.PxPyPzE
	Daughters []fmom.PxPyPzE
}

// S returns the invariant mass squared of the subsystem formed by daughters
// i and j. It may be negative for unphysical (off-shell) input.
func (e *Event) S(i, j int) (float64, error) {
	n := len(e.Daughters)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, fmt.Errorf("event %d: daughters (%d,%d) of %d: %w", e.Index, i, j, n, ErrMissingDaughter)
	}
	a, b := &e.Daughters[i], &e.Daughters[j]
	sum := fmom.NewPxPyPzE(a.Px()+b.Px(), a.Py()+b.Py(), a.Pz()+b.Pz(), a.E()+b.E())

	return sum.M2(), nil
}

// Dataset is an ordered, densely indexed collection of events.
// It is never mutated by amplitudes; replacing it requires a new
// Precalculate pass on every node that cached against it.
type Dataset struct {
	Events []Event
}

// New copies events into a Dataset and rewrites Index to the dense position.
func New(events []Event) *Dataset {
	ds := &Dataset{Events: make([]Event, len(events))}
	copy(ds.Events, events)
	for i := range ds.Events {
		ds.Events[i].Index = i
	}

	return ds
}

// Len returns the number of events; a nil Dataset has none.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}

	return len(d.Events)
}

// SPDX-License-Identifier: MIT

package amplitude

import (
	"context"
	"fmt"

	"github.com/katalvlaran/kmatrix/dataset"
	"github.com/katalvlaran/kmatrix/kmatrix"
	"github.com/katalvlaran/kmatrix/matrix"
	"golang.org/x/sync/errgroup"
)

// entry is the s-dependent part of one event's amplitude.
type entry struct {
	row []complex128  // selected row of (I + K·ρ)⁻¹, length C
	pvc *matrix.Dense // P-vector constants, C×R
}

// KMatrix is a resonance node built on one K-matrix table and one output
// channel. The cache is indexed by dataset.Event.Index.
type KMatrix struct {
	engine  *kmatrix.Engine
	name    string
	channel int
	names   []string
	opts    Options
	cache   []entry
}

// New builds a node for table with the given output channel.
//
// Errors:
//   - anything table.Engine returns (dimensions, masses, unsupported L).
//   - kmatrix.ErrChannelOutOfRange.
func New(table *kmatrix.Table, channel int, opts ...Option) (*KMatrix, error) {
	if table == nil {
		return nil, fmt.Errorf("amplitude: %w", kmatrix.ErrNilTable)
	}
	e, err := table.Engine()
	if err != nil {
		return nil, fmt.Errorf("amplitude: %w", err)
	}
	if channel < 0 || channel >= e.Channels() {
		return nil, fmt.Errorf("amplitude: table %q: channel %d of %d: %w",
			table.Name, channel, e.Channels(), kmatrix.ErrChannelOutOfRange)
	}

	return &KMatrix{
		engine:  e,
		name:    table.Name,
		channel: channel,
		names:   table.ParameterNames(),
		opts:    gatherOptions(opts...),
	}, nil
}

// NewF0 builds an isoscalar scalar node.
func NewF0(channel int, opts ...Option) (*KMatrix, error) { return New(&kmatrix.F0, channel, opts...) }

// NewF2 builds an isotensor tensor node.
func NewF2(channel int, opts ...Option) (*KMatrix, error) { return New(&kmatrix.F2, channel, opts...) }

// NewA0 builds an isovector scalar node.
func NewA0(channel int, opts ...Option) (*KMatrix, error) { return New(&kmatrix.A0, channel, opts...) }

// NewA2 builds an isovector tensor node.
func NewA2(channel int, opts ...Option) (*KMatrix, error) { return New(&kmatrix.A2, channel, opts...) }

// NewPi1 builds an exotic pseudovector node.
func NewPi1(channel int, opts ...Option) (*KMatrix, error) { return New(&kmatrix.Pi1, channel, opts...) }

// Name returns the table name the node was built from.
func (k *KMatrix) Name() string { return k.name }

// Channel returns the output channel.
func (k *KMatrix) Channel() int { return k.channel }

// Parameters returns a copy of the 2R parameter names.
func (k *KMatrix) Parameters() []string {
	return append([]string(nil), k.names...)
}

// Len returns the number of cached events, 0 before Precalculate.
func (k *KMatrix) Len() int { return len(k.cache) }

// Precalculate computes the cache entry of every event in ds and replaces the
// previous cache. Events are split into contiguous chunks, one goroutine per
// chunk; each goroutine writes only its own slots.
//
// The previous cache is dropped before any work starts, so after a failed
// pass Calculate reports ErrNotPrecalculated instead of reading stale entries.
//
// Errors:
//   - dataset.ErrNilDataset, ErrIndexMismatch.
//   - dataset.ErrMissingDaughter for events without the selected daughters.
//   - matrix.ErrSingular when I + K·ρ cannot be inverted for some event.
//   - ctx.Err() on cancellation.
func (k *KMatrix) Precalculate(ctx context.Context, ds *dataset.Dataset) error {
	k.cache = nil
	if ds == nil {
		return dataset.ErrNilDataset
	}

	n := ds.Len()
	cache := make([]entry, n)
	workers := min(k.opts.workers, n)
	if workers < 1 {
		k.cache = cache
		return nil
	}
	chunk := (n + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		g.Go(func() error {
			return k.fill(gctx, ds.Events[lo:hi], cache[lo:hi], lo)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	k.cache = cache

	return nil
}

// fill computes the entries of one chunk of events starting at offset.
func (k *KMatrix) fill(ctx context.Context, events []dataset.Event, out []entry, offset int) error {
	for i := range events {
		if err := ctx.Err(); err != nil {
			return err
		}
		ev := &events[i]
		if ev.Index != offset+i {
			return fmt.Errorf("amplitude: event at %d has index %d: %w", offset+i, ev.Index, ErrIndexMismatch)
		}
		s, err := ev.S(k.opts.d0, k.opts.d1)
		if err != nil {
			return fmt.Errorf("amplitude: %s: %w", k.name, err)
		}
		row, pvc, err := k.engine.Precompute(s, k.channel)
		if err != nil {
			return fmt.Errorf("amplitude: %s event %d: %w", k.name, ev.Index, err)
		}
		out[i] = entry{row: row, pvc: pvc}
	}

	return nil
}

// Calculate returns the amplitude of ev for params. params holds the betas as
// (re, im) pairs in the order of Parameters; extra trailing values are ignored.
//
// Errors:
//   - ErrShortParameters, ErrNotPrecalculated, ErrEventOutOfRange.
func (k *KMatrix) Calculate(params []float64, ev *dataset.Event) (complex128, error) {
	nr := k.engine.Poles()
	if len(params) < 2*nr {
		return 0, fmt.Errorf("amplitude: %s: got %d parameters, want %d: %w", k.name, len(params), 2*nr, ErrShortParameters)
	}
	if k.cache == nil {
		return 0, ErrNotPrecalculated
	}
	if ev == nil || ev.Index < 0 || ev.Index >= len(k.cache) {
		idx := -1
		if ev != nil {
			idx = ev.Index
		}
		return 0, fmt.Errorf("amplitude: %s: event %d of %d: %w", k.name, idx, len(k.cache), ErrEventOutOfRange)
	}

	betas := make([]complex128, nr)
	for a := range betas {
		betas[a] = complex(params[2*a], params[2*a+1])
	}
	c := k.cache[ev.Index]

	return k.engine.CalculateKMatrix(betas, c.row, c.pvc), nil
}

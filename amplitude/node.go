// SPDX-License-Identifier: MIT

package amplitude

import (
	"context"

	"github.com/katalvlaran/kmatrix/dataset"
)

// Node is the surface a fit framework drives.
//
//   - Precalculate fills the per-event cache for ds, replacing any previous one.
//   - Calculate evaluates one event against the last precalculated dataset.
//   - Parameters lists the free real parameters Calculate consumes, in order.
type Node interface {
	Precalculate(ctx context.Context, ds *dataset.Dataset) error
	Calculate(params []float64, ev *dataset.Event) (complex128, error)
	Parameters() []string
}

var _ Node = (*KMatrix)(nil)

// SPDX-License-Identifier: MIT

package kmatrix

import (
	"fmt"

	"github.com/katalvlaran/kmatrix/kinematics"
	"gonum.org/v1/gonum/mat"
)

// Table is a K-matrix parameterization as plain data. It is the form both the
// literal tables below and YAML files take; Config turns it into engine input.
//
// G and C are given row by row: G has one row per channel and one column per
// pole, C is channel × channel.
type Table struct {
	Name     string                `yaml:"name"`
	Channels []string              `yaml:"channels"`
	Poles    []string              `yaml:"poles"`
	G        [][]float64           `yaml:"g"`
	C        [][]float64           `yaml:"c"`
	M1s      []float64             `yaml:"m1s"`
	M2s      []float64             `yaml:"m2s"`
	MRs      []float64             `yaml:"mrs"`
	L        int                   `yaml:"l"`
	Adler    *kinematics.AdlerZero `yaml:"adler_zero,omitempty"`
}

// dense flattens rows into a gonum matrix after checking they are r×c.
func dense(name string, rows [][]float64, r, c int) (*mat.Dense, error) {
	if len(rows) != r {
		return nil, fmt.Errorf("%s has %d rows, want %d: %w", name, len(rows), r, ErrDimensionMismatch)
	}
	data := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s row %d has %d entries, want %d: %w", name, i, len(row), c, ErrDimensionMismatch)
		}
		data = append(data, row...)
	}

	return mat.NewDense(r, c, data), nil
}

// Config converts the table into an engine Config. Only the shapes of G and C
// are checked here; New performs the full validation.
func (t *Table) Config() (Config, error) {
	nc, nr := len(t.M1s), len(t.MRs)
	if nc == 0 || nr == 0 {
		return Config{}, fmt.Errorf("table %q: %w", t.Name, ErrEmptyTable)
	}
	if len(t.Poles) != nr {
		return Config{}, fmt.Errorf("table %q: %d pole names for %d poles: %w", t.Name, len(t.Poles), nr, ErrDimensionMismatch)
	}
	if len(t.Channels) != 0 && len(t.Channels) != nc {
		return Config{}, fmt.Errorf("table %q: %d channel names for %d channels: %w", t.Name, len(t.Channels), nc, ErrDimensionMismatch)
	}
	g, err := dense("g", t.G, nc, nr)
	if err != nil {
		return Config{}, fmt.Errorf("table %q: %w", t.Name, err)
	}
	c, err := dense("c", t.C, nc, nc)
	if err != nil {
		return Config{}, fmt.Errorf("table %q: %w", t.Name, err)
	}
	var adler *kinematics.AdlerZero
	if t.Adler != nil {
		az := *t.Adler
		adler = &az
	}

	return Config{
		G:     g,
		C:     c,
		M1s:   append([]float64(nil), t.M1s...),
		M2s:   append([]float64(nil), t.M2s...),
		MRs:   append([]float64(nil), t.MRs...),
		Adler: adler,
		L:     t.L,
	}, nil
}

// MustConfig is Config for tables known to be well formed (the literals).
func (t *Table) MustConfig() Config {
	cfg, err := t.Config()
	if err != nil {
		panic(err)
	}

	return cfg
}

// Engine builds an Engine from the table.
func (t *Table) Engine(opts ...Option) (*Engine, error) {
	cfg, err := t.Config()
	if err != nil {
		return nil, err
	}
	e, err := New(cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("table %q: %w", t.Name, err)
	}

	return e, nil
}

// ParameterNames returns "<pole> re", "<pole> im" for every pole in order:
// the positional contract for the 2R production-coupling parameters.
func (t *Table) ParameterNames() []string {
	names := make([]string, 0, 2*len(t.Poles))
	for _, p := range t.Poles {
		names = append(names, p+" re", p+" im")
	}

	return names
}

// ChannelIndex returns the index of the named channel.
func (t *Table) ChannelIndex(name string) (int, error) {
	for i, ch := range t.Channels {
		if ch == name {
			return i, nil
		}
	}

	return 0, fmt.Errorf("table %q: channel %q: %w", t.Name, name, ErrChannelOutOfRange)
}

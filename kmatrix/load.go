// SPDX-License-Identifier: MIT

package kmatrix

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadTable decodes one Table from YAML and checks that it builds a valid
// Engine. Unknown keys are rejected so typos in a coupling table cannot pass
// silently.
//
// Example document:
//
//	name: a0
//	channels: [pieta, KKbar]
//	poles: [a0_980, a0_1450]
//	g: [[0.43215, 0.19000], [-0.28825, 0.43372]]
//	c: [[0, 0], [0, 0]]
//	m1s: [0.13498, 0.49368]
//	m2s: [0.54786, 0.49761]
//	mrs: [0.95395, 1.26767]
//	l: 0
func LoadTable(r io.Reader, opts ...Option) (*Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var t Table
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("kmatrix: decode table: %w", err)
	}
	if _, err := t.Engine(opts...); err != nil {
		return nil, err
	}

	return &t, nil
}

// LoadTableFile reads a YAML table from path.
func LoadTableFile(path string, opts ...Option) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("kmatrix: open table: %w", err)
	}
	defer f.Close()

	return LoadTable(f, opts...)
}

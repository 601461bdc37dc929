// SPDX-License-Identifier: MIT
package kmatrix_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/kmatrix/kinematics"
	"github.com/katalvlaran/kmatrix/kmatrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const a0YAML = `
name: a0
channels: [pieta, KKbar]
poles: [a0_980, a0_1450]
g: [[0.43215, 0.19000], [-0.28825, 0.43372]]
c: [[0, 0], [0, 0]]
m1s: [0.13498, 0.49368]
m2s: [0.54786, 0.49761]
mrs: [0.95395, 1.26767]
l: 0
`

func TestLoadTable_MatchesLiteral(t *testing.T) {
	tb, err := kmatrix.LoadTable(strings.NewReader(a0YAML))
	require.NoError(t, err)
	assert.Equal(t, &kmatrix.A0, tb)
}

// Every literal survives a YAML round trip bit for bit.
func TestLoadTable_RoundTripLiterals(t *testing.T) {
	for name, lit := range kmatrix.Tables() {
		raw, err := yaml.Marshal(lit)
		require.NoError(t, err, name)

		got, err := kmatrix.LoadTable(bytes.NewReader(raw))
		require.NoError(t, err, name)
		assert.Equal(t, lit, got, name)
	}
}

func TestLoadTable_AdlerZero(t *testing.T) {
	doc := a0YAML + "adler_zero: {s0: 0.0091125, s_norm: 1.0}\n"
	tb, err := kmatrix.LoadTable(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, &kinematics.AdlerZero{S0: 0.0091125, SNorm: 1.0}, tb.Adler)

	doc = a0YAML + "adler_zero: {s0: 0.01}\n"
	_, err = kmatrix.LoadTable(strings.NewReader(doc))
	require.ErrorIs(t, err, kinematics.ErrBadAdlerZero)
}

func TestLoadTable_Rejects(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"bad L", strings.Replace(a0YAML, "l: 0", "l: 7", 1), kinematics.ErrUnsupportedL},
		{"bad mass", strings.Replace(a0YAML, "0.13498", "-0.13498", 1), kmatrix.ErrBadMass},
		{"ragged", strings.Replace(a0YAML, "[-0.28825, 0.43372]", "[-0.28825]", 1), kmatrix.ErrDimensionMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := kmatrix.LoadTable(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := kmatrix.LoadTable(strings.NewReader(a0YAML + "width: 0.1\n"))
	require.Error(t, err, "unknown keys are rejected")
	assert.Contains(t, err.Error(), "width")

	_, err = kmatrix.LoadTable(strings.NewReader("g: [[1, 2]"))
	require.Error(t, err)
}

func TestLoadTable_Options(t *testing.T) {
	doc := strings.Replace(a0YAML, "c: [[0, 0], [0, 0]]", "c: [[0, 1], [0, 0]]", 1)
	_, err := kmatrix.LoadTable(strings.NewReader(doc))
	require.NoError(t, err)
	_, err = kmatrix.LoadTable(strings.NewReader(doc), kmatrix.WithSymmetryCheck(1e-9))
	require.ErrorIs(t, err, kmatrix.ErrAsymmetricBackground)
}

func TestLoadTableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a0.yaml")
	require.NoError(t, os.WriteFile(path, []byte(a0YAML), 0o600))

	tb, err := kmatrix.LoadTableFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a0", tb.Name)

	_, err = kmatrix.LoadTableFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// SPDX-License-Identifier: MIT

package kmatrix

import "github.com/katalvlaran/kmatrix/kinematics"

// The literal parameterizations below must stay bit-for-bit identical, in the
// same order, for existing fits to reproduce their reference results.

// F0 is the isoscalar scalar (f0) K-matrix: 5 channels, 5 poles, L = 0, with
// an Adler zero at s0 = 0.0091125 GeV².
var F0 = Table{
	Name:     "f0",
	Channels: []string{"pipi", "2pi2pi", "KKbar", "etaeta", "etaetaprime"},
	Poles:    []string{"f0_500", "f0_980", "f0_1370", "f0_1500", "f0_1710"},
	G: [][]float64{
		{0.74987, -0.01257, 0.02736, -0.15102, 0.36103},
		{0.06401, 0.00204, 0.77413, 0.50999, 0.13112},
		{-0.23417, -0.01032, 0.72283, 0.11934, 0.36792},
		{0.01570, 0.26700, 0.09214, 0.02742, -0.04025},
		{-0.14242, 0.22780, 0.15981, 0.16272, -0.17397},
	},
	C: [][]float64{
		{0.03728, 0.00000, -0.01398, -0.02203, 0.01397},
		{0.00000, 0.00000, 0.00000, 0.00000, 0.00000},
		{-0.01398, 0.00000, 0.02349, 0.03101, -0.04003},
		{-0.02203, 0.00000, 0.03101, -0.13769, -0.06722},
		{0.01397, 0.00000, -0.04003, -0.06722, -0.28401},
	},
	M1s:   []float64{0.13498, 0.26995, 0.49368, 0.54786, 0.54786},
	M2s:   []float64{0.13498, 0.26995, 0.49761, 0.54786, 0.95778},
	MRs:   []float64{0.51461, 0.90630, 1.23089, 1.46104, 1.69611},
	L:     0,
	Adler: &kinematics.AdlerZero{S0: 0.0091125, SNorm: 1.0},
}

// F2 is the isotensor tensor (f2) K-matrix: 4 channels, 4 poles, L = 2.
var F2 = Table{
	Name:     "f2",
	Channels: []string{"pipi", "2pi2pi", "KKbar", "etaeta"},
	Poles:    []string{"f2_1270", "f2_1525", "f2_1810", "f2_1950"},
	G: [][]float64{
		{0.40033, 0.01820, -0.06709, -0.49924},
		{0.15479, 0.17300, 0.22941, 0.19295},
		{-0.08900, 0.32393, -0.43133, 0.27975},
		{-0.00113, 0.15256, 0.23721, -0.03987},
	},
	C: [][]float64{
		{-0.04319, 0.00000, 0.00984, 0.01028},
		{0.00000, 0.00000, 0.00000, 0.00000},
		{0.00984, 0.00000, -0.07344, 0.05533},
		{0.01028, 0.00000, 0.05533, -0.05183},
	},
	M1s: []float64{0.13498, 0.26995, 0.49368, 0.54786},
	M2s: []float64{0.13498, 0.26995, 0.49761, 0.54786},
	MRs: []float64{1.15299, 1.48359, 1.72923, 1.96700},
	L:   2,
}

// A0 is the isovector scalar (a0) K-matrix: 2 channels, 2 poles, L = 0.
var A0 = Table{
	Name:     "a0",
	Channels: []string{"pieta", "KKbar"},
	Poles:    []string{"a0_980", "a0_1450"},
	G: [][]float64{
		{0.43215, 0.19000},
		{-0.28825, 0.43372},
	},
	C: [][]float64{
		{0.00000, 0.00000},
		{0.00000, 0.00000},
	},
	M1s: []float64{0.13498, 0.49368},
	M2s: []float64{0.54786, 0.49761},
	MRs: []float64{0.95395, 1.26767},
	L:   0,
}

// A2 is the isovector tensor (a2) K-matrix: 3 channels, 2 poles, L = 2.
var A2 = Table{
	Name:     "a2",
	Channels: []string{"pieta", "KKbar", "pietaprime"},
	Poles:    []string{"a2_1320", "a2_1700"},
	G: [][]float64{
		{0.30073, 0.68567},
		{0.21426, 0.12543},
		{-0.09162, 0.00184},
	},
	C: [][]float64{
		{-0.40184, 0.00033, -0.08707},
		{0.00033, -0.21416, -0.06193},
		{-0.08707, -0.06193, -0.17435},
	},
	M1s: []float64{0.13498, 0.49368, 0.13498},
	M2s: []float64{0.54786, 0.49761, 0.95778},
	MRs: []float64{1.30080, 1.75351},
	L:   2,
}

// Pi1 is the exotic pseudovector (π1) K-matrix: 2 channels, 1 pole, L = 1.
var Pi1 = Table{
	Name:     "pi1",
	Channels: []string{"pieta", "pietaprime"},
	Poles:    []string{"pi1_1600"},
	G: [][]float64{
		{0.80564},
		{1.04595},
	},
	C: [][]float64{
		{1.05000, 0.15163},
		{0.15163, -0.24611},
	},
	M1s: []float64{0.13498, 0.13498},
	M2s: []float64{0.54786, 0.95778},
	MRs: []float64{1.38552},
	L:   1,
}

// Tables lists the literal parameterizations by name.
func Tables() map[string]*Table {
	return map[string]*Table{
		F0.Name:  &F0,
		F2.Name:  &F2,
		A0.Name:  &A0,
		A2.Name:  &A2,
		Pi1.Name: &Pi1,
	}
}

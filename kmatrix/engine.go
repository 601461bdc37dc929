// SPDX-License-Identifier: MIT

package kmatrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kmatrix/kinematics"
	"github.com/katalvlaran/kmatrix/matrix"
	"gonum.org/v1/gonum/mat"
)

// Config is the fixed physical content of one K-matrix parameterization.
//
//   - G is C×R: coupling of pole a to channel i.
//   - C is C×C: real background, expected symmetric.
//   - M1s, M2s hold the daughter masses of each channel (length C).
//   - MRs holds the pole masses (length R).
//   - Adler is optional; nil means no Adler zero.
//   - L is the orbital angular momentum shared by every channel.
type Config struct {
	G     *mat.Dense
	C     *mat.Dense
	M1s   []float64
	M2s   []float64
	MRs   []float64
	Adler *kinematics.AdlerZero
	L     int
}

// Engine evaluates the K-matrix pipeline for one Config. It is immutable
// after New and safe for concurrent use.
type Engine struct {
	nc, nr int
	g      []float64 // C×R row-major
	c      []float64 // C×C row-major
	m1s    []float64
	m2s    []float64
	mrs    []float64
	adler  *kinematics.AdlerZero
	l      int
}

// New validates cfg and returns an Engine owning private copies of its tables.
//
// Errors:
//   - ErrNilTable, ErrEmptyTable, ErrDimensionMismatch, ErrBadMass,
//     kinematics.ErrUnsupportedL, kinematics.ErrBadAdlerZero,
//     ErrAsymmetricBackground (only under WithSymmetryCheck).
func New(cfg Config, opts ...Option) (*Engine, error) {
	o := gatherOptions(opts...)

	if cfg.G == nil || cfg.C == nil {
		return nil, ErrNilTable
	}
	nc, nr := len(cfg.M1s), len(cfg.MRs)
	if nc == 0 || nr == 0 {
		return nil, ErrEmptyTable
	}
	if len(cfg.M2s) != nc {
		return nil, fmt.Errorf("m2s has %d entries, want %d: %w", len(cfg.M2s), nc, ErrDimensionMismatch)
	}
	if r, c := cfg.G.Dims(); r != nc || c != nr {
		return nil, fmt.Errorf("g is %dx%d, want %dx%d: %w", r, c, nc, nr, ErrDimensionMismatch)
	}
	if r, c := cfg.C.Dims(); r != nc || c != nc {
		return nil, fmt.Errorf("c is %dx%d, want %dx%d: %w", r, c, nc, nc, ErrDimensionMismatch)
	}
	for _, ms := range [][]float64{cfg.M1s, cfg.M2s, cfg.MRs} {
		for _, m := range ms {
			if !(m > 0) || math.IsInf(m, 0) {
				return nil, fmt.Errorf("mass %g: %w", m, ErrBadMass)
			}
		}
	}
	if err := kinematics.ValidateL(cfg.L); err != nil {
		return nil, err
	}
	if err := cfg.Adler.Validate(); err != nil {
		return nil, err
	}
	if o.checkSymmetry && !mat.EqualApprox(cfg.C, cfg.C.T(), o.symmetryEps) {
		return nil, ErrAsymmetricBackground
	}

	e := &Engine{
		nc:  nc,
		nr:  nr,
		g:   make([]float64, nc*nr),
		c:   make([]float64, nc*nc),
		m1s: append([]float64(nil), cfg.M1s...),
		m2s: append([]float64(nil), cfg.M2s...),
		mrs: append([]float64(nil), cfg.MRs...),
		l:   cfg.L,
	}
	for i := 0; i < nc; i++ {
		for a := 0; a < nr; a++ {
			e.g[i*nr+a] = cfg.G.At(i, a)
		}
		for j := 0; j < nc; j++ {
			e.c[i*nc+j] = cfg.C.At(i, j)
		}
	}
	if cfg.Adler != nil {
		az := *cfg.Adler
		e.adler = &az
	}

	return e, nil
}

// Channels returns C.
func (e *Engine) Channels() int { return e.nc }

// Poles returns R.
func (e *Engine) Poles() int { return e.nr }

// L returns the orbital angular momentum.
func (e *Engine) L() int { return e.l }

// scale multiplies both parts of z by the real x.
func scale(z complex128, x float64) complex128 {
	return complex(real(z)*x, imag(z)*x)
}

// mustDense allocates an r×c Dense; r and c come from a validated Engine.
func mustDense(r, c int) *matrix.Dense {
	m, err := matrix.NewDense(r, c)
	if err != nil {
		panic(fmt.Sprintf("kmatrix: NewDense(%d,%d): %v", r, c, err))
	}

	return m
}

// BarrierMatrix returns the C×R matrix B_ia = BW_i(s)/BW_i(mr_a²).
func (e *Engine) BarrierMatrix(s float64) *matrix.Dense {
	b := mustDense(e.nc, e.nr)
	b.Apply(func(i, a int, _ complex128) complex128 {
		return kinematics.BarrierFactor(s, e.m1s[i], e.m2s[i], e.mrs[a], e.l)
	})

	return b
}

// KMatrix returns the C×C K-matrix at s, scaled by the Adler zero if any.
func (e *Engine) KMatrix(s float64) *matrix.Dense {
	return e.kMatrixFrom(s, e.BarrierMatrix(s))
}

// kMatrixFrom builds K from a precomputed barrier matrix.
func (e *Engine) kMatrixFrom(s float64, bf *matrix.Dense) *matrix.Dense {
	adler := e.adler.Factor(s)
	k := mustDense(e.nc, e.nc)
	k.Apply(func(i, j int, _ complex128) complex128 {
		var sum complex128
		var bia, bja complex128
		for a := 0; a < e.nr; a++ {
			bia, _ = bf.At(i, a)
			bja, _ = bf.At(j, a)
			w := e.g[i*e.nr+a]*e.g[j*e.nr+a]/(e.mrs[a]*e.mrs[a]-s) + e.c[i*e.nc+j]
			sum += scale(bia*bja, w)
		}

		return scale(sum, adler)
	})

	return k
}

// PhaseSpace returns the diagonal C×C Chew–Mandelstam matrix at s.
func (e *Engine) PhaseSpace(s float64) *matrix.Dense {
	d := make([]complex128, e.nc)
	for i := range d {
		d[i] = kinematics.ChewMandelstam(s, e.m1s[i], e.m2s[i])
	}
	ps, err := matrix.Diagonal(d)
	if err != nil {
		panic(fmt.Sprintf("kmatrix: Diagonal: %v", err))
	}

	return ps
}

// IKC returns I + K(s)·ρ(s).
func (e *Engine) IKC(s float64) (*matrix.Dense, error) {
	return e.ikcFrom(s, e.BarrierMatrix(s))
}

func (e *Engine) ikcFrom(s float64, bf *matrix.Dense) (*matrix.Dense, error) {
	kc, err := matrix.Mul(e.kMatrixFrom(s, bf), e.PhaseSpace(s))
	if err != nil {
		return nil, fmt.Errorf("kmatrix: K·ρ at s=%g: %w", s, err)
	}
	id, err := matrix.Identity(e.nc)
	if err != nil {
		return nil, fmt.Errorf("kmatrix: identity: %w", err)
	}
	ikc, err := matrix.Add(id, kc)
	if err != nil {
		return nil, fmt.Errorf("kmatrix: I + K·ρ at s=%g: %w", s, err)
	}

	return ikc, nil
}

// IKCInv returns row `channel` of (I + K(s)·ρ(s))⁻¹.
//
// Errors:
//   - ErrChannelOutOfRange; matrix.ErrSingular when the propagator cannot be
//     inverted, which is a model fault and must not be retried.
func (e *Engine) IKCInv(s float64, channel int) ([]complex128, error) {
	return e.ikcInvFrom(s, channel, e.BarrierMatrix(s))
}

func (e *Engine) ikcInvFrom(s float64, channel int, bf *matrix.Dense) ([]complex128, error) {
	if channel < 0 || channel >= e.nc {
		return nil, fmt.Errorf("channel %d of %d: %w", channel, e.nc, ErrChannelOutOfRange)
	}
	ikc, err := e.ikcFrom(s, bf)
	if err != nil {
		return nil, err
	}
	row, err := matrix.InverseRow(ikc, channel)
	if err != nil {
		return nil, fmt.Errorf("kmatrix: invert I + K·ρ at s=%g: %w", s, err)
	}

	return row, nil
}

// PVectorConstants returns the C×R matrix B_ia(s)·g_ia/(mr_a² − s).
func (e *Engine) PVectorConstants(s float64) *matrix.Dense {
	return e.pVectorConstantsFrom(s, e.BarrierMatrix(s))
}

func (e *Engine) pVectorConstantsFrom(s float64, bf *matrix.Dense) *matrix.Dense {
	pvc := mustDense(e.nc, e.nr)
	pvc.Apply(func(i, a int, _ complex128) complex128 {
		b, _ := bf.At(i, a)
		g := e.g[i*e.nr+a]
		den := e.mrs[a]*e.mrs[a] - s

		return complex(real(b)*g/den, imag(b)*g/den)
	})

	return pvc
}

// Precompute returns everything CalculateKMatrix needs for one event at s:
// the inverse row for channel and the P-vector constants. The barrier matrix
// is evaluated once and shared by both.
func (e *Engine) Precompute(s float64, channel int) ([]complex128, *matrix.Dense, error) {
	bf := e.BarrierMatrix(s)
	row, err := e.ikcInvFrom(s, channel, bf)
	if err != nil {
		return nil, nil, err
	}

	return row, e.pVectorConstantsFrom(s, bf), nil
}

// PVector returns P_j = Σ_a betas_a · pvc_ja. len(betas) must be R and pvc
// must be C×R, as produced by PVectorConstants.
func (e *Engine) PVector(betas []complex128, pvc *matrix.Dense) []complex128 {
	p := make([]complex128, e.nc)
	var v complex128
	for j := 0; j < e.nc; j++ {
		var sum complex128
		for a := 0; a < e.nr; a++ {
			v, _ = pvc.At(j, a)
			sum += betas[a] * v
		}
		p[j] = sum
	}

	return p
}

// CalculateKMatrix returns Σ_j row_j · P_j (no conjugation): the amplitude of
// one event once its s-dependent pieces are known. It is pure and allocation
// light, meant to be called for every fit step.
func (e *Engine) CalculateKMatrix(betas, row []complex128, pvc *matrix.Dense) complex128 {
	p := e.PVector(betas, pvc)
	var amp complex128
	for j := 0; j < e.nc; j++ {
		amp += row[j] * p[j]
	}

	return amp
}

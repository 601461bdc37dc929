// SPDX-License-Identifier: MIT

// Package kmatrix implements the generalized coupled-channel K-matrix
// resonance engine over C decay channels and R resonance poles.
//
// 🚀 What is a K-matrix amplitude?
//
//	Resonance poles (mass mr_a, couplings g_ia to channel i) and a real
//	background c_ij build the K-matrix
//
//	  K_ij(s) = A(s) · Σ_a B_ia(s)·B_ja(s)·(g_ia·g_ja/(mr_a² − s) + c_ij)
//
//	where B is the Blatt–Weisskopf barrier ratio and A the optional Adler
//	zero. Unitarity is restored through the Chew–Mandelstam phase space ρ(s):
//	the production amplitude on channel k is
//
//	  F_k(s) = Σ_j [(I + K·ρ)⁻¹]_kj · P_j,   P_j = Σ_a β_a · B_ja·g_ja/(mr_a² − s)
//
//	with complex production couplings β (the fit parameters).
//
// ✨ Precompute / evaluate split:
//   - everything that depends only on s (barriers, K, ρ, the inverse row,
//     the P-vector constants) is computed once per event by Precompute
//   - CalculateKMatrix is the only per-fit-step work: two small dot products
//
// ⚙️ Usage:
//
//	eng, err := kmatrix.New(kmatrix.A0.MustConfig())
//	row, pvc, err := eng.Precompute(s, 0)
//	amp := eng.CalculateKMatrix(betas, row, pvc)
//
// Five literal parameterizations ship with the package (F0, F2, A0, A2, Pi1);
// further ones can be loaded from YAML with LoadTable.
package kmatrix

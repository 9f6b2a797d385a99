// Package descmat turns variable-size atomic structures into fixed-size
// numeric descriptors — interaction matrices suitable as direct input to
// machine-learning models.
//
// 🚀 What is descmat?
//
//	A small, deterministic library that brings together:
//		• Atomic structures: positions, charges, optional periodic cells
//		• Interaction kernels: Coulomb matrix, Sine matrix (periodic)
//		• One descriptor engine: zero-padding, permutation handling, flattening
//		• Four permutation modes: none, sorted-L2, eigenspectrum, random
//
// ✨ Why choose descmat?
//
//   - Fixed output size – pad once, feed any model
//   - Invariance on demand – sorted-L2 and eigenspectrum modes are
//     permutation-invariant by construction
//   - Pluggable kernels – any symmetric pairwise formula fits the engine
//   - Pure functions – no hidden state, injectable randomness, safe for
//     concurrent use
//
// Under the hood, everything is organized under four subpackages:
//
//	atoms/   — the Structure type: positions, charges, cells, displacements
//	matdesc/ — the descriptor engine: Create, Sort, NumFeatures
//	coulomb/ — non-periodic Coulomb-matrix kernel
//	sinemat/ — periodicity-aware Sine-matrix kernel
//
// Quick sketch:
//
//	structure ──▶ kernel.Matrix ──▶ permute ──▶ zero-pad ──▶ flatten
//	  (N atoms)      (N×N, sym)                 (Nmax×Nmax)   (Nmax²)
//
// See examples/ for end-to-end scenarios and each package's doc.go for
// details.
//
//	go get github.com/velatra/descmat
package descmat

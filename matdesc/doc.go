// Package matdesc computes fixed-size matrix descriptors of atomic
// structures: an interaction kernel builds a symmetric N×N pairwise matrix,
// and the Engine turns it into a fixed-size numeric array by permutation
// handling, zero-padding and optional flattening.
//
// 🚀 Pipeline
//
//	structure ──▶ Kernel.Matrix ──▶ permute ──▶ zero-pad ──▶ flatten
//	  (N atoms)     (N×N, sym)                  (Nmax×Nmax)    (Nmax²)
//
// ✨ Permutation modes (Options.Permutation):
//
//   - PermNone          — matrix kept in the structure's atom order;
//     not permutation-invariant.
//   - PermSortedL2      — rows and columns sorted simultaneously by
//     descending L2 row norm; deterministic and permutation-invariant.
//   - PermEigenspectrum — reduced to the eigenvalues of the symmetric
//     matrix, sorted by descending absolute value; invariant to
//     permutation, rotation and translation.
//   - PermRandom        — like PermSortedL2, but zero-mean Gaussian noise
//     (stddev Options.Sigma) is added to the row norms before sorting,
//     with a fresh draw on every Create call. A data-augmentation device:
//     as Sigma→0 it converges to PermSortedL2; large Sigma approaches a
//     uniformly random order.
//
// Configuration is validated once, at New; Create and Sort are pure
// functions of their inputs (plus the injected randomness source for
// PermRandom), hold no state across calls, and are safe for concurrent
// use — see the Options.Src documentation for the one caveat.
//
// Outputs are *mat.Dense values: Nmax×Nmax matrices, or 1×Nmax² row
// vectors when flattened, or 1×Nmax eigenvalue vectors in eigenspectrum
// mode. Rows, columns and entries beyond the structure's real atom count
// are exactly zero ("invisible atoms").
//
// Kernels live in sibling packages: coulomb (non-periodic) and sinemat
// (periodic). Any type with a Matrix(*atoms.Structure) (*mat.SymDense,
// error) method plugs in.
package matdesc

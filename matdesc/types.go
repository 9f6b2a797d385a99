// Package matdesc: options, the Permutation enum, and the Kernel contract.
package matdesc

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/velatra/descmat/atoms"
)

// Kernel builds the raw interaction matrix of a structure. Implementations
// must return a symmetric matrix of side equal to the structure's atom
// count: off-diagonal entries encode a pairwise interaction strength,
// diagonal entries a self-interaction term. The Engine owns everything
// after that (permutation, padding, flattening).
//
// Matrix must be a pure function of the structure: no retained state, safe
// for concurrent calls.
type Kernel interface {
	Matrix(s *atoms.Structure) (*mat.SymDense, error)
}

// Permutation selects how the engine handles the atom-order dependence of
// the raw interaction matrix. The set is closed; New rejects any other
// value.
type Permutation int

const (
	// PermNone keeps the matrix in the structure's original atom order.
	PermNone Permutation = iota

	// PermSortedL2 sorts rows and columns simultaneously by descending L2
	// row norm (ties broken by original index, stable).
	PermSortedL2

	// PermEigenspectrum replaces the matrix with its eigenvalues, sorted by
	// descending absolute value.
	PermEigenspectrum

	// PermRandom sorts like PermSortedL2 after perturbing each row norm
	// with independent zero-mean Gaussian noise of stddev Options.Sigma,
	// drawn fresh on every Create call.
	PermRandom
)

// String returns the mode name used in documentation and error context.
func (p Permutation) String() string {
	switch p {
	case PermNone:
		return "none"
	case PermSortedL2:
		return "sorted_l2"
	case PermEigenspectrum:
		return "eigenspectrum"
	case PermRandom:
		return "random"
	default:
		return "unknown"
	}
}

// Options configures an Engine. Validated once by New; immutable afterwards.
//
// Fields:
//   - NAtomsMax   — matrices are zero-padded to NAtomsMax×NAtomsMax, so every
//     structure with at most NAtomsMax atoms maps to the same output size.
//     Must be positive.
//   - Permutation — one of the four modes above.
//   - Flatten     — unroll matrix-valued outputs row-major into a 1×NAtomsMax²
//     row vector. Ignored in eigenspectrum mode, whose output is already 1-D.
//   - Sigma       — noise stddev for PermRandom. Required (positive) with
//     PermRandom, forbidden (zero) otherwise.
//   - Src         — randomness source for PermRandom, nil for the package
//     default. Inject a seeded source to make Create reproducible under
//     test. The default source is safe for concurrent use; a custom Src
//     must be too if Create is called concurrently.
type Options struct {
	NAtomsMax   int
	Permutation Permutation
	Flatten     bool
	Sigma       float64
	Src         rand.Source
}

// DefaultOptions returns the canonical configuration: sorted-L2 permutation
// and flattened output.
func DefaultOptions(nAtomsMax int) Options {
	return Options{
		NAtomsMax:   nAtomsMax,
		Permutation: PermSortedL2,
		Flatten:     true,
	}
}

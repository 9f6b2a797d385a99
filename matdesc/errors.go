// Package matdesc: sentinel error set.
// Engines return ONLY these sentinels (wrapped with call-site context where
// useful); tests and callers match via errors.Is. Configuration problems
// surface at New, never later; size problems surface per Create call.
package matdesc

import "errors"

var (
	// ErrConfiguration is returned by New for invalid or mutually
	// inconsistent options: non-positive NAtomsMax, an unrecognized
	// Permutation value, Sigma set without PermRandom or PermRandom
	// without a positive Sigma, or a nil kernel.
	ErrConfiguration = errors.New("matdesc: invalid configuration")

	// ErrTooManyAtoms is returned by Create when the structure holds more
	// atoms than Options.NAtomsMax. Atoms are never silently truncated.
	ErrTooManyAtoms = errors.New("matdesc: structure exceeds configured atom capacity")

	// ErrNilMatrix is returned by Sort for a nil input matrix.
	ErrNilMatrix = errors.New("matdesc: matrix must not be nil")

	// ErrNonSquare is returned by Sort for a non-square input matrix.
	ErrNonSquare = errors.New("matdesc: matrix is not square")

	// ErrEigenFailed is returned when the symmetric eigendecomposition does
	// not converge. With finite kernel output this should not happen.
	ErrEigenFailed = errors.New("matdesc: eigendecomposition failed")
)

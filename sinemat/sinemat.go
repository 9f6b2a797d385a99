// Package sinemat implements the Sine-matrix interaction kernel of Faber,
// Lindmaa, von Lilienfeld and Armiento (2015): a Coulomb-matrix analogue for
// periodic crystals, where the Euclidean distance is replaced with a
// trigonometric, lattice-periodic effective distance.
//
// For a cell with row-basis B and the pairwise displacement tensor D,
//
//	A      = π · (D · B⁻¹)                 (fractional displacements)
//	φ(i,j) = ‖ sin²(A[i,j]) · B ‖₂         (periodicity-aware distance)
//	M[i,j] = q_i·q_j / φ(i,j)              (i ≠ j)
//	M[i,i] = 0.5·q_i^2.4
//
// φ is invariant under full lattice translations of either atom, so the
// matrix is well defined on the crystal rather than on one arbitrary image.
package sinemat

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/velatra/descmat/atoms"
)

// Self-energy term of the diagonal: 0.5·q^2.4. Fixed empirical constants
// shared with the Coulomb matrix.
const (
	selfEnergyScale    = 0.5
	selfEnergyExponent = 2.4
)

// ErrNotPeriodic is returned for structures without a periodic cell; the
// sine distance is meaningless without a lattice.
var ErrNotPeriodic = errors.New("sinemat: structure has no periodic cell")

// Kernel is the Sine-matrix kernel. The zero value is ready to use; it
// holds no state and is safe for concurrent calls.
type Kernel struct{}

// New returns a Sine-matrix kernel for injection into a matdesc.Engine.
func New() *Kernel { return &Kernel{} }

// Matrix builds the symmetric Sine matrix of s.
//
// Algorithm:
//  1. Fetch the cell B, its inverse, and the N·N×3 displacement tensor D.
//  2. A = π·(D·B⁻¹), elementwise sin², then back to Cartesian units via B.
//  3. φ(i,j) = L2 norm of the transformed 3-vector; off-diagonal entries
//     q_i·q_j/φ(i,j).
//  4. Diagonal set to 0.5·q_i^2.4. φ(i,i) is identically zero, so the
//     diagonal is never divided through — the singularity cannot escape.
//
// Complexity: O(N²).
//
// Errors: ErrNotPeriodic.
func (k *Kernel) Matrix(s *atoms.Structure) (*mat.SymDense, error) {
	if !s.Periodic() {
		return nil, ErrNotPeriodic
	}
	n := s.Len()
	q := s.Numbers()
	cell := s.Cell()

	// Fractional displacements, scaled by π and squared through sin.
	var arg mat.Dense
	arg.Mul(s.DisplacementTensor(), s.CellInverse())
	arg.Apply(func(_, _ int, v float64) float64 {
		sv := math.Sin(math.Pi * v)

		return sv * sv
	}, &arg)

	// Re-express the sine-squared components in Cartesian units.
	var cart mat.Dense
	cart.Mul(&arg, cell)

	m := mat.NewSymDense(n, nil)
	row := make([]float64, 3)
	for i := 0; i < n; i++ {
		m.SetSym(i, i, selfEnergyScale*math.Pow(q[i], selfEnergyExponent))
		for j := i + 1; j < n; j++ {
			mat.Row(row, i*n+j, &cart)
			m.SetSym(i, j, q[i]*q[j]/floats.Norm(row, 2))
		}
	}

	return m, nil
}

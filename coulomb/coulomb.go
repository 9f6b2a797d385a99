// Package coulomb implements the Coulomb-matrix interaction kernel: the
// classic non-periodic descriptor of Rupp et al. (2012). Off-diagonal
// entries are the Coulomb repulsion of point charges, q_i·q_j/|r_i − r_j|;
// diagonal entries are the empirical self-energy 0.5·q_i^2.4.
//
// The kernel deliberately ignores periodicity: distances are plain
// Euclidean norms of position differences even when the structure carries
// a cell. Use sinemat for a periodicity-aware variant.
package coulomb

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/velatra/descmat/atoms"
)

// Self-energy term of the diagonal: 0.5·q^2.4. The exponent is a fixed
// empirical constant of the descriptor, not a tunable.
const (
	selfEnergyScale    = 0.5
	selfEnergyExponent = 2.4
)

// Kernel is the Coulomb-matrix kernel. The zero value is ready to use;
// it holds no state and is safe for concurrent calls.
type Kernel struct{}

// New returns a Coulomb kernel for injection into a matdesc.Engine.
func New() *Kernel { return &Kernel{} }

// Matrix builds the symmetric Coulomb matrix of s:
//
//	M[i,j] = q_i·q_j / |r_i − r_j|   (i ≠ j)
//	M[i,i] = 0.5·q_i^2.4
//
// Coincident distinct atoms yield +Inf off-diagonal entries, mirroring the
// underlying physics. Complexity: O(N²). Never returns an error.
func (k *Kernel) Matrix(s *atoms.Structure) (*mat.SymDense, error) {
	n := s.Len()
	q := s.Numbers()
	pos := s.Positions()

	m := mat.NewSymDense(n, nil)
	diff := make([]float64, 3)
	for i := 0; i < n; i++ {
		m.SetSym(i, i, selfEnergyScale*math.Pow(q[i], selfEnergyExponent))
		ri := pos.RawRowView(i)
		for j := i + 1; j < n; j++ {
			rj := pos.RawRowView(j)
			floats.SubTo(diff, ri, rj)
			m.SetSym(i, j, q[i]*q[j]/floats.Norm(diff, 2))
		}
	}

	return m, nil
}

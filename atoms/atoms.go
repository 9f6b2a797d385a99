package atoms

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Structure is an immutable set of atoms: per-atom charges (atomic numbers),
// Cartesian positions, and an optional periodic cell with its precomputed
// inverse. Build one with New, NewPeriodic or FromSymbols.
type Structure struct {
	numbers   []float64  // per-atom charge / atomic number, length N
	positions *mat.Dense // N×3 Cartesian coordinates
	cell      *mat.Dense // 3×3 row-basis matrix; nil when non-periodic
	cellInv   *mat.Dense // inverse of cell; nil when non-periodic
}

// New builds a non-periodic Structure from per-atom charges and an N×3
// positions matrix. Inputs are copied; the caller keeps ownership.
//
// Errors: ErrNoAtoms, ErrBadPositions, ErrCountMismatch, ErrNonFinite.
func New(numbers []float64, positions *mat.Dense) (*Structure, error) {
	if err := validateAtoms(numbers, positions); err != nil {
		return nil, err
	}

	return &Structure{
		numbers:   append([]float64(nil), numbers...),
		positions: mat.DenseCopyOf(positions),
	}, nil
}

// NewPeriodic builds a periodic Structure. The cell is a 3×3 matrix whose
// rows are the lattice basis vectors; its inverse is computed eagerly, so a
// degenerate cell fails here rather than deep inside a kernel.
//
// Errors: everything New returns, plus ErrBadCell and ErrSingularCell.
func NewPeriodic(numbers []float64, positions, cell *mat.Dense) (*Structure, error) {
	s, err := New(numbers, positions)
	if err != nil {
		return nil, err
	}
	if cell == nil {
		return nil, ErrBadCell
	}
	if r, c := cell.Dims(); r != 3 || c != 3 {
		return nil, fmt.Errorf("NewPeriodic: got %dx%d: %w", r, c, ErrBadCell)
	}
	if !allFinite(cell) {
		return nil, fmt.Errorf("NewPeriodic: cell: %w", ErrNonFinite)
	}

	var inv mat.Dense
	if err = inv.Inverse(cell); err != nil {
		return nil, fmt.Errorf("NewPeriodic: %w", ErrSingularCell)
	}
	s.cell = mat.DenseCopyOf(cell)
	s.cellInv = &inv

	return s, nil
}

// FromSymbols builds a non-periodic Structure from chemical symbols
// ("H", "O", ...) instead of explicit charges.
//
// Errors: everything New returns, plus ErrUnknownSymbol.
func FromSymbols(symbols []string, positions *mat.Dense) (*Structure, error) {
	numbers := make([]float64, len(symbols))
	for i, sym := range symbols {
		z, ok := atomicNumbers[sym]
		if !ok {
			return nil, fmt.Errorf("FromSymbols: %q: %w", sym, ErrUnknownSymbol)
		}
		numbers[i] = z
	}

	return New(numbers, positions)
}

// PeriodicFromSymbols is FromSymbols with a periodic cell attached.
func PeriodicFromSymbols(symbols []string, positions, cell *mat.Dense) (*Structure, error) {
	s, err := FromSymbols(symbols, positions)
	if err != nil {
		return nil, err
	}

	return NewPeriodic(s.numbers, s.positions, cell)
}

// Len returns the number of atoms.
func (s *Structure) Len() int { return len(s.numbers) }

// Numbers returns a copy of the per-atom charges (atomic numbers).
func (s *Structure) Numbers() []float64 {
	return append([]float64(nil), s.numbers...)
}

// Positions returns a copy of the N×3 Cartesian coordinate matrix.
func (s *Structure) Positions() *mat.Dense {
	return mat.DenseCopyOf(s.positions)
}

// Periodic reports whether the structure carries a periodic cell.
func (s *Structure) Periodic() bool { return s.cell != nil }

// Cell returns a copy of the 3×3 cell matrix, or nil for non-periodic
// structures.
func (s *Structure) Cell() *mat.Dense {
	if s.cell == nil {
		return nil
	}

	return mat.DenseCopyOf(s.cell)
}

// CellInverse returns a copy of the precomputed cell inverse, or nil for
// non-periodic structures.
func (s *Structure) CellInverse() *mat.Dense {
	if s.cellInv == nil {
		return nil
	}

	return mat.DenseCopyOf(s.cellInv)
}

// DisplacementTensor returns the N·N×3 tensor of pairwise displacements:
// row i·N+j holds the vector from atom i to atom j. For periodic structures
// each displacement is folded to the minimum image, i.e. the shortest
// equivalent vector under lattice translations (fractional components
// wrapped to [-0.5, 0.5)).
//
// Complexity: O(N²) time and memory; computed fresh on every call.
func (s *Structure) DisplacementTensor() *mat.Dense {
	n := s.Len()
	d := mat.NewDense(n*n, 3, nil)
	for i := 0; i < n; i++ {
		ri := s.positions.RawRowView(i)
		for j := 0; j < n; j++ {
			rj := s.positions.RawRowView(j)
			row := d.RawRowView(i*n + j)
			row[0] = rj[0] - ri[0]
			row[1] = rj[1] - ri[1]
			row[2] = rj[2] - ri[2]
			if s.cell != nil {
				s.foldMinimumImage(row)
			}
		}
	}

	return d
}

// foldMinimumImage wraps a Cartesian displacement in place to its nearest
// periodic image: into fractional coordinates via the cell inverse, each
// component reduced to [-0.5, 0.5), and back through the cell.
func (s *Structure) foldMinimumImage(d []float64) {
	var frac [3]float64
	for k := 0; k < 3; k++ {
		f := d[0]*s.cellInv.At(0, k) + d[1]*s.cellInv.At(1, k) + d[2]*s.cellInv.At(2, k)
		frac[k] = f - math.Round(f)
	}
	for k := 0; k < 3; k++ {
		d[k] = frac[0]*s.cell.At(0, k) + frac[1]*s.cell.At(1, k) + frac[2]*s.cell.At(2, k)
	}
}

// validateAtoms checks the shared constructor invariants.
func validateAtoms(numbers []float64, positions *mat.Dense) error {
	if len(numbers) == 0 {
		return ErrNoAtoms
	}
	if positions == nil {
		return ErrBadPositions
	}
	r, c := positions.Dims()
	if c != 3 {
		return fmt.Errorf("atoms: got %dx%d: %w", r, c, ErrBadPositions)
	}
	if r != len(numbers) {
		return fmt.Errorf("atoms: %d charges, %d positions: %w", len(numbers), r, ErrCountMismatch)
	}
	for _, q := range numbers {
		if math.IsNaN(q) || math.IsInf(q, 0) {
			return fmt.Errorf("atoms: charges: %w", ErrNonFinite)
		}
	}
	if !allFinite(positions) {
		return fmt.Errorf("atoms: positions: %w", ErrNonFinite)
	}

	return nil
}

// allFinite reports whether every entry of m is a finite number.
func allFinite(m mat.Matrix) bool {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}

	return true
}

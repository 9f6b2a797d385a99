package matdesc

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/velatra/descmat/atoms"
)

// Engine turns variable-size atomic structures into fixed-size matrix
// descriptors. It is immutable after New: concurrent Create calls on one
// Engine are independent (see Options.Src for the randomness caveat).
type Engine struct {
	opts   Options
	kernel Kernel
	noise  distuv.Normal // configured once; only drawn from in PermRandom mode
}

// New builds an Engine around an interaction kernel, validating the
// configuration eagerly:
//
//   - k must be non-nil,
//   - NAtomsMax must be positive,
//   - Permutation must be one of the four recognized modes,
//   - Sigma must be positive if and only if Permutation is PermRandom.
//
// Errors: ErrConfiguration (the only one; never deferred to Create).
func New(k Kernel, opts Options) (*Engine, error) {
	if k == nil {
		return nil, fmt.Errorf("New: nil kernel: %w", ErrConfiguration)
	}
	if opts.NAtomsMax <= 0 {
		return nil, fmt.Errorf("New: NAtomsMax=%d: %w", opts.NAtomsMax, ErrConfiguration)
	}
	switch opts.Permutation {
	case PermNone, PermSortedL2, PermEigenspectrum:
		if opts.Sigma != 0 {
			return nil, fmt.Errorf("New: Sigma=%v is only valid with PermRandom: %w", opts.Sigma, ErrConfiguration)
		}
	case PermRandom:
		if opts.Sigma <= 0 {
			return nil, fmt.Errorf("New: PermRandom requires Sigma>0, got %v: %w", opts.Sigma, ErrConfiguration)
		}
	default:
		return nil, fmt.Errorf("New: permutation %d: %w", int(opts.Permutation), ErrConfiguration)
	}

	e := &Engine{opts: opts, kernel: k}
	if opts.Permutation == PermRandom {
		e.noise = distuv.Normal{Mu: 0, Sigma: opts.Sigma, Src: opts.Src}
	}

	return e, nil
}

// Options returns the engine configuration.
func (e *Engine) Options() Options { return e.opts }

// NumFeatures returns the length of the flattened descriptor: NAtomsMax² in
// matrix modes, NAtomsMax in eigenspectrum mode. Pure function of the
// configuration.
func (e *Engine) NumFeatures() int {
	if e.opts.Permutation == PermEigenspectrum {
		return e.opts.NAtomsMax
	}

	return e.opts.NAtomsMax * e.opts.NAtomsMax
}

// Create computes the descriptor of a structure.
//
// Algorithm:
//  1. Invoke the kernel for the raw symmetric N×N interaction matrix;
//     fail with ErrTooManyAtoms if N exceeds NAtomsMax.
//  2. Apply the configured permutation mode (reorder rows and columns,
//     or reduce to the eigenspectrum).
//  3. Zero-pad to NAtomsMax on both axes (matrix modes) or to length
//     NAtomsMax (eigenspectrum); padding follows the real entries.
//  4. If Flatten is set, unroll the matrix row-major.
//
// Output shape:
//
//	NAtomsMax × NAtomsMax   matrix modes, Flatten=false
//	1 × NAtomsMax²          matrix modes, Flatten=true
//	1 × NAtomsMax           eigenspectrum mode (Flatten irrelevant)
//
// Complexity: O(N²) for matrix modes, O(N³) for eigenspectrum.
//
// Errors: ErrTooManyAtoms, ErrEigenFailed, and kernel errors (wrapped).
// On error no partial result is returned.
func (e *Engine) Create(s *atoms.Structure) (*mat.Dense, error) {
	raw, err := e.kernel.Matrix(s)
	if err != nil {
		return nil, fmt.Errorf("Create: kernel: %w", err)
	}
	n, nmax := raw.SymmetricDim(), e.opts.NAtomsMax
	if n > nmax {
		return nil, fmt.Errorf("Create: %d atoms, capacity %d: %w", n, nmax, ErrTooManyAtoms)
	}

	if e.opts.Permutation == PermEigenspectrum {
		return e.eigenspectrum(raw)
	}

	switch e.opts.Permutation {
	case PermSortedL2:
		raw = permuteSym(raw, orderByDescending(RowNorms(raw)))
	case PermRandom:
		norms := RowNorms(raw)
		for i := range norms {
			norms[i] += e.noise.Rand()
		}
		raw = permuteSym(raw, orderByDescending(norms))
	}

	padded := mat.NewDense(nmax, nmax, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			padded.Set(i, j, raw.At(i, j))
		}
	}
	if e.opts.Flatten {
		// The backing slice is already row-major; reinterpret as a row vector.
		return mat.NewDense(1, nmax*nmax, padded.RawMatrix().Data), nil
	}

	return padded, nil
}

// Sort permutes the rows and columns of an arbitrary square matrix
// simultaneously by descending L2 row norm — the PermSortedL2 step applied
// post hoc. Applying Sort to a PermRandom descriptor reproduces the
// PermSortedL2 descriptor of the same structure exactly (zero-padded rows
// have norm zero and stay trailing).
//
// The input is not modified. Complexity: O(n²).
//
// Errors: ErrNilMatrix, ErrNonSquare.
func (e *Engine) Sort(m *mat.Dense) (*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("Sort: %w", ErrNilMatrix)
	}
	r, c := m.Dims()
	if r != c {
		return nil, fmt.Errorf("Sort: %dx%d: %w", r, c, ErrNonSquare)
	}

	p := orderByDescending(RowNorms(m))
	out := mat.NewDense(r, r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			out.Set(i, j, m.At(p[i], p[j]))
		}
	}

	return out, nil
}

// RowNorms returns the L2 norm of every row of m — the norm vector the
// sorting modes order by. Exposed for introspection and testing.
func RowNorms(m mat.Matrix) []float64 {
	r, c := m.Dims()
	norms := make([]float64, r)
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, m)
		norms[i] = floats.Norm(row, 2)
	}

	return norms
}

// eigenspectrum reduces the raw matrix to its eigenvalues, sorted by
// descending absolute value and zero-padded to NAtomsMax. EigenSym is
// symmetric-specific: results are real by construction.
func (e *Engine) eigenspectrum(raw *mat.SymDense) (*mat.Dense, error) {
	var es mat.EigenSym
	if !es.Factorize(raw, false) {
		return nil, fmt.Errorf("Create: %w", ErrEigenFailed)
	}
	vals := es.Values(nil)
	sort.SliceStable(vals, func(a, b int) bool {
		return math.Abs(vals[a]) > math.Abs(vals[b])
	})

	out := make([]float64, e.opts.NAtomsMax)
	copy(out, vals)

	return mat.NewDense(1, e.opts.NAtomsMax, out), nil
}

// orderByDescending returns atom indices sorted by descending norm, ties
// broken by original index (stable).
func orderByDescending(norms []float64) []int {
	idx := make([]int, len(norms))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return norms[idx[a]] > norms[idx[b]]
	})

	return idx
}

// permuteSym applies index order p to rows and columns of m at once,
// preserving symmetry: out[i,j] = m[p[i],p[j]].
func permuteSym(m *mat.SymDense, p []int) *mat.SymDense {
	n := m.SymmetricDim()
	out := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			out.SetSym(i, j, m.At(p[i], p[j]))
		}
	}

	return out
}

// Package atoms: sentinel error set.
// All constructors return these sentinels (possibly wrapped with context);
// callers match them via errors.Is. Accessors on a built Structure never fail.
package atoms

import "errors"

var (
	// ErrNoAtoms indicates an empty structure (zero atoms).
	ErrNoAtoms = errors.New("atoms: structure must contain at least one atom")

	// ErrCountMismatch indicates that the number of charges and the number
	// of position rows disagree.
	ErrCountMismatch = errors.New("atoms: charge count does not match position count")

	// ErrBadPositions indicates a positions matrix that is nil or not N×3.
	ErrBadPositions = errors.New("atoms: positions must be a non-nil N×3 matrix")

	// ErrBadCell indicates a cell matrix that is nil or not 3×3.
	ErrBadCell = errors.New("atoms: cell must be a non-nil 3×3 matrix")

	// ErrSingularCell indicates a cell whose basis vectors are linearly
	// dependent, so no inverse exists.
	ErrSingularCell = errors.New("atoms: cell is singular")

	// ErrNonFinite indicates a NaN or ±Inf value in positions, charges or cell.
	ErrNonFinite = errors.New("atoms: NaN or Inf encountered")

	// ErrUnknownSymbol indicates a chemical symbol with no known atomic number.
	ErrUnknownSymbol = errors.New("atoms: unknown chemical symbol")
)

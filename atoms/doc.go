// Package atoms provides the atomic-structure container consumed by the
// descriptor kernels in this module.
//
// A Structure bundles, per atom, a 3-D Cartesian position and a scalar
// charge (conventionally the atomic number), plus an optional periodic
// cell given as a 3×3 row-basis matrix. Structures are immutable once
// built: every constructor validates its inputs eagerly and every
// accessor returns copies, so a Structure can be shared freely between
// concurrent descriptor computations.
//
// The one non-trivial operation is DisplacementTensor, which expands the
// positions into the full N·N×3 tensor of pairwise displacement vectors.
// For periodic structures each displacement is folded to its minimum
// image through fractional coordinates, which is what periodicity-aware
// kernels such as sinemat consume.
//
// Positions and cells are gonum matrices (gonum.org/v1/gonum/mat), so
// structures plug directly into linear-algebra pipelines without
// conversion.
package atoms

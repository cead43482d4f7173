package sparse

import "fmt"

// Validate checks a column-form matrix with nRow rows and nCol columns.
//
// It returns nil when the matrix is valid with sorted, duplicate-free
// columns, an ErrJumbled error when it is valid otherwise but some column is
// unsorted or has duplicates, and ErrInvalidMatrix, ErrNonPositive or
// ErrArgumentMissing when it cannot be used at all. Zero rows or columns are
// allowed.
func Validate(nRow, nCol int64, ap, ai []int64) error {
	if nRow < 0 || nCol < 0 {
		return fmt.Errorf("validate: n_row %d n_col %d: %w", nRow, nCol, ErrNonPositive)
	}
	if ap == nil || ai == nil {
		return fmt.Errorf("validate: %w", ErrArgumentMissing)
	}
	if int64(len(ap)) < nCol+1 {
		return fmt.Errorf("validate: len(Ap) = %d, want %d: %w", len(ap), nCol+1, ErrInvalidMatrix)
	}

	nz := ap[nCol]
	if ap[0] != 0 || nz < 0 {
		return fmt.Errorf("validate: Ap[0] = %d, nz = %d: %w", ap[0], nz, ErrInvalidMatrix)
	}
	if int64(len(ai)) < nz {
		return fmt.Errorf("validate: len(Ai) = %d < nz = %d: %w", len(ai), nz, ErrInvalidMatrix)
	}

	jumbled := false
	for j := int64(0); j < nCol; j++ {
		p1 := ap[j]
		p2 := ap[j+1]
		if p1 > p2 || p2 > nz {
			return fmt.Errorf("validate: column %d pointers [%d,%d): %w", j, p1, p2, ErrInvalidMatrix)
		}

		ilast := Empty
		for p := p1; p < p2; p++ {
			i := ai[p]
			if i < 0 || i >= nRow {
				return fmt.Errorf("validate: row %d in column %d: %w", i, j, ErrInvalidMatrix)
			}
			if i <= ilast {
				jumbled = true
			}
			ilast = i
		}
	}

	if jumbled {
		return fmt.Errorf("validate: %w", ErrJumbled)
	}
	return nil
}

// Validate checks that c is a well-formed square matrix.
func (c *CSC) Validate() error {
	if c == nil {
		return fmt.Errorf("validate: nil matrix: %w", ErrArgumentMissing)
	}
	if c.Ax != nil && int64(len(c.Ax)) < c.Nnz() {
		return fmt.Errorf("validate: len(Ax) = %d: %w", len(c.Ax), ErrDimensionMismatch)
	}
	return Validate(c.N, c.N, c.Ap, c.Ai)
}

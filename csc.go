package sparse

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// NewCSC wraps the given arrays. The arrays are not copied; run Validate
// before handing the matrix to AAT.
func NewCSC(n int64, ap, ai []int64, ax []float64) *CSC {
	return &CSC{N: n, Ap: ap, Ai: ai, Ax: ax}
}

// Nnz returns the number of stored entries.
func (c *CSC) Nnz() int64 {
	if c == nil || int64(len(c.Ap)) <= c.N || c.N < 0 {
		return 0
	}
	return c.Ap[c.N]
}

// Column returns the row indices of column j and their values, or nil values
// for a pattern-only matrix. The slices alias c.
func (c *CSC) Column(j int64) ([]int64, []float64) {
	p1, p2 := c.Ap[j], c.Ap[j+1]
	if c.Ax == nil {
		return c.Ai[p1:p2], nil
	}
	return c.Ai[p1:p2], c.Ax[p1:p2]
}

// Dense expands c into a gonum dense matrix. Pattern-only entries become 1.
func (c *CSC) Dense() *mat.Dense {
	n := int(c.N)
	if n == 0 {
		return &mat.Dense{}
	}

	d := mat.NewDense(n, n, nil)
	for j := int64(0); j < c.N; j++ {
		for p := c.Ap[j]; p < c.Ap[j+1]; p++ {
			v := 1.0
			if c.Ax != nil {
				v = c.Ax[p]
			}
			d.Set(int(c.Ai[p]), int(j), v)
		}
	}
	return d
}

// FromDense compresses the nonzeros of a square gonum matrix into CSC form.
// Explicit zeros are dropped.
func FromDense(a mat.Matrix) (*CSC, error) {
	if a == nil {
		return nil, fmt.Errorf("from dense: %w", ErrArgumentMissing)
	}
	r, cols := a.Dims()
	if r != cols {
		return nil, fmt.Errorf("from dense: %dx%d: %w", r, cols, ErrNonSquare)
	}

	n := int64(cols)
	c := &CSC{
		N:  n,
		Ap: make([]int64, n+1),
		Ai: make([]int64, 0, n),
		Ax: make([]float64, 0, n),
	}
	for j := 0; j < cols; j++ {
		for i := 0; i < r; i++ {
			if v := a.At(i, j); v != 0 {
				c.Ai = append(c.Ai, int64(i))
				c.Ax = append(c.Ax, v)
			}
		}
		c.Ap[j+1] = int64(len(c.Ai))
	}

	return c, nil
}

// TripletToCol builds an n-by-n CSC matrix from 0-based triplets. Duplicate
// entries are summed. tx may be nil for a pattern-only matrix.
func TripletToCol(n int64, ti, tj []int64, tx []float64) (*CSC, error) {
	if n <= 0 {
		return nil, fmt.Errorf("triplet to col: n = %d: %w", n, ErrNonPositive)
	}
	if ti == nil || tj == nil {
		return nil, fmt.Errorf("triplet to col: %w", ErrArgumentMissing)
	}
	if len(ti) != len(tj) || (tx != nil && len(tx) != len(ti)) {
		return nil, fmt.Errorf("triplet to col: %d/%d/%d entries: %w", len(ti), len(tj), len(tx), ErrDimensionMismatch)
	}

	m, err := Create(n, nil)
	if err != nil {
		return nil, fmt.Errorf("triplet to col: %w", err)
	}
	for k := range ti {
		if ti[k] < 0 || ti[k] >= n || tj[k] < 0 || tj[k] >= n {
			return nil, fmt.Errorf("triplet to col: entry %d (%d,%d): %w", k, ti[k], tj[k], ErrIndexOutOfRange)
		}
		element := m.GetElement(ti[k]+1, tj[k]+1)
		if tx != nil {
			element.Real += tx[k]
		} else {
			element.Real = 1
		}
	}

	c := m.CSC()
	if tx == nil {
		c.Ax = nil
	}
	return c, nil
}

// ColToTriplet fills tj with the column index of every entry of a column-form
// matrix, so that (Ai[p], tj[p]) are the triplet coordinates of entry p.
func ColToTriplet(nCol int64, ap, tj []int64) error {
	if ap == nil || tj == nil {
		return fmt.Errorf("col to triplet: %w", ErrArgumentMissing)
	}
	if nCol <= 0 {
		return fmt.Errorf("col to triplet: n_col = %d: %w", nCol, ErrNonPositive)
	}
	if int64(len(ap)) < nCol+1 {
		return fmt.Errorf("col to triplet: len(Ap) = %d: %w", len(ap), ErrInvalidMatrix)
	}
	if ap[0] != 0 {
		return fmt.Errorf("col to triplet: Ap[0] = %d: %w", ap[0], ErrInvalidMatrix)
	}
	nz := ap[nCol]
	if nz < 0 {
		return fmt.Errorf("col to triplet: nz = %d: %w", nz, ErrInvalidMatrix)
	}
	if int64(len(tj)) < nz {
		return fmt.Errorf("col to triplet: len(Tj) = %d < nz = %d: %w", len(tj), nz, ErrDimensionMismatch)
	}

	for j := int64(0); j < nCol; j++ {
		p1 := ap[j]
		p2 := ap[j+1]
		if p2-p1 < 0 || p2 > nz {
			return fmt.Errorf("col to triplet: column %d: %w", j, ErrInvalidMatrix)
		}
		for p := p1; p < p2; p++ {
			tj[p] = j
		}
	}

	return nil
}

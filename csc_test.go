package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	sparse "github.com/edp1096/sparse-aat"
)

func TestTripletToColSumsDuplicatesAndSorts(t *testing.T) {
	t.Parallel()

	ti := []int64{2, 0, 2, 1, 0}
	tj := []int64{0, 0, 0, 2, 2}
	tx := []float64{1, 2, 3, 4, 5}

	c, err := sparse.TripletToCol(3, ti, tj, tx)
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	require.Equal(t, []int64{0, 2, 2, 4}, c.Ap)
	require.Equal(t, []int64{0, 2, 0, 1}, c.Ai)
	require.Equal(t, []float64{2, 4, 5, 4}, c.Ax)

	rows, vals := c.Column(2)
	require.Equal(t, []int64{0, 1}, rows)
	require.Equal(t, []float64{5, 4}, vals)
}

func TestTripletToColErrors(t *testing.T) {
	t.Parallel()

	_, err := sparse.TripletToCol(0, []int64{}, []int64{}, nil)
	require.ErrorIs(t, err, sparse.ErrNonPositive)

	_, err = sparse.TripletToCol(2, nil, []int64{}, nil)
	require.ErrorIs(t, err, sparse.ErrArgumentMissing)

	_, err = sparse.TripletToCol(2, []int64{0}, []int64{0, 1}, nil)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	_, err = sparse.TripletToCol(2, []int64{0}, []int64{0}, []float64{1, 2})
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	_, err = sparse.TripletToCol(2, []int64{2}, []int64{0}, nil)
	require.ErrorIs(t, err, sparse.ErrIndexOutOfRange)
}

func TestColToTriplet(t *testing.T) {
	t.Parallel()

	ap := []int64{0, 2, 2, 5}
	tj := make([]int64, 5)
	require.NoError(t, sparse.ColToTriplet(3, ap, tj))
	require.Equal(t, []int64{0, 0, 2, 2, 2}, tj)

	// the triplets rebuild the same matrix
	ai := []int64{0, 1, 0, 1, 2}
	c, err := sparse.TripletToCol(3, ai, tj, nil)
	require.NoError(t, err)
	require.Equal(t, ap, c.Ap)
	require.Equal(t, ai, c.Ai)
}

func TestColToTripletErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		nCol int64
		ap   []int64
		tj   []int64
		want error
	}{
		{"nil Ap", 2, nil, make([]int64, 2), sparse.ErrArgumentMissing},
		{"nil Tj", 2, []int64{0, 0, 0}, nil, sparse.ErrArgumentMissing},
		{"zero columns", 0, []int64{0}, []int64{}, sparse.ErrNonPositive},
		{"short Ap", 2, []int64{0, 0}, []int64{}, sparse.ErrInvalidMatrix},
		{"Ap[0] not zero", 2, []int64{1, 1, 1}, make([]int64, 2), sparse.ErrInvalidMatrix},
		{"negative nz", 1, []int64{0, -1}, []int64{}, sparse.ErrInvalidMatrix},
		{"short Tj", 1, []int64{0, 3}, make([]int64, 2), sparse.ErrDimensionMismatch},
		{"negative length", 2, []int64{0, 2, 1}, make([]int64, 2), sparse.ErrInvalidMatrix},
		{"pointer past nz", 2, []int64{0, 3, 2}, make([]int64, 3), sparse.ErrInvalidMatrix},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, sparse.ColToTriplet(tc.nCol, tc.ap, tc.tj), tc.want)
		})
	}
}

func TestDenseInterop(t *testing.T) {
	t.Parallel()

	d := mat.NewDense(3, 3, []float64{
		4, 0, 1,
		0, 0, 0,
		2, 3, 0,
	})

	c, err := sparse.FromDense(d)
	require.NoError(t, err)
	require.NoError(t, c.Validate())
	require.Equal(t, int64(4), c.Nnz())
	require.Equal(t, []int64{0, 2, 3, 4}, c.Ap)
	require.Equal(t, []int64{0, 2, 2, 0}, c.Ai)
	require.True(t, mat.Equal(d, c.Dense()))

	pat, err := c.AAT(nil)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 1, 2}, pat.Len)
	require.Equal(t, int64(1), pat.Info.NZBoth)

	_, err = sparse.FromDense(mat.NewDense(2, 3, nil))
	require.ErrorIs(t, err, sparse.ErrNonSquare)

	_, err = sparse.FromDense(nil)
	require.ErrorIs(t, err, sparse.ErrArgumentMissing)
}

func TestNnz(t *testing.T) {
	t.Parallel()

	var nilCSC *sparse.CSC
	require.Zero(t, nilCSC.Nnz())
	require.Zero(t, sparse.NewCSC(3, []int64{0}, nil, nil).Nnz())
	require.Equal(t, int64(2), sparse.NewCSC(1, []int64{0, 2}, []int64{0, 0}, nil).Nnz())
}

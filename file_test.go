package sparse_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	sparse "github.com/edp1096/sparse-aat"
)

func TestReadMatrix(t *testing.T) {
	t.Parallel()

	input := `Starting
Test matrix
3 real
1 1 4
3 1 -2
0 2 7
2 3 1.5
3 1 1
0 0 0
1 2 3
`
	m, description, err := sparse.ReadMatrix(strings.NewReader(input), nil)
	require.NoError(t, err)
	require.Equal(t, "Test matrix", description)
	require.Equal(t, int64(3), m.GetSize())
	require.Equal(t, 3, m.ElementCount())

	c := m.CSC()
	require.Equal(t, []int64{0, 2, 2, 3}, c.Ap)
	require.Equal(t, []int64{0, 2, 1}, c.Ai)
	require.Equal(t, []float64{4, -1, 1.5}, c.Ax)
}

func TestReadMatrixErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", nil},
		{"no size", "Starting\ndescription\n", nil},
		{"bad size", "description\nthree real\n", nil},
		{"zero size", "description\n0 real\n", sparse.ErrNonPositive},
		{"bad value", "description\n2 real\n1 1 x\n", nil},
		{"out of range", "description\n2 real\n3 1 1\n0 0 0\n", sparse.ErrIndexOutOfRange},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := sparse.ReadMatrix(strings.NewReader(tc.input), nil)
			require.Error(t, err)
			if tc.want != nil {
				require.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestWriteMatrixReadsBack(t *testing.T) {
	t.Parallel()

	c, err := sparse.RandomPattern(sparse.InitRandom(21), 12, 0.25, true)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, sparse.WriteMatrix(&buf, c, "random 12"))
	require.True(t, strings.HasPrefix(buf.String(), "Starting\nrandom 12\n12 real\n"))
	require.True(t, strings.HasSuffix(buf.String(), "0 0 0\n"))

	m, description, err := sparse.ReadMatrix(&buf, nil)
	require.NoError(t, err)
	require.Equal(t, "random 12", description)
	require.Equal(t, c, m.CSC())

	// pattern-only matrices are written with unit values
	buf.Reset()
	p := pattern(t, 2, [2]int64{1, 0})
	require.NoError(t, sparse.WriteMatrix(&buf, p, "pattern"))
	require.Contains(t, buf.String(), "2 1 1\n")
}

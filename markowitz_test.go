package sparse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarkowitzProductSaturates(t *testing.T) {
	t.Parallel()

	require.Equal(t, int64(12), markowitzProduct(3, 4))
	require.Equal(t, int64(0), markowitzProduct(LargestShortInteger+1, 0))
	require.Equal(t, int64(2*(LargestShortInteger+1)), markowitzProduct(LargestShortInteger+1, 2))
	require.Equal(t, LargestLongInteger, markowitzProduct(LargestLongInteger, LargestShortInteger+1))
}

func TestMarkowitzCounts(t *testing.T) {
	t.Parallel()

	// x x .
	// . x .
	// x x x
	c, err := TripletToCol(3, []int64{0, 2, 0, 1, 2, 2}, []int64{0, 0, 1, 1, 1, 2}, nil)
	require.NoError(t, err)

	mk, err := MarkowitzCounts(c)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 0, 2}, mk.Row)
	require.Equal(t, []int64{1, 2, 0}, mk.Col)
	require.Equal(t, []int64{1, 0, 0}, mk.Prod)
	require.Equal(t, 2, mk.Singletons)

	_, err = MarkowitzCounts(NewCSC(2, []int64{0, 2, 2}, []int64{1, 0}, nil))
	require.ErrorIs(t, err, ErrJumbled)
}

func TestClamp(t *testing.T) {
	t.Parallel()

	require.Equal(t, 5, clamp(7, 0, 5))
	require.Equal(t, 0.0, clamp(-1.5, 0, 5))
	require.Equal(t, int64(3), clamp(int64(3), 0, 5))
}

package sparse

import (
	"fmt"
	"math/rand/v2"
)

// defaultSeed is used when InitRandom is called with seed 0.
const defaultSeed int64 = 1

// InitRandom returns a deterministic generator for RandomPattern. The
// generator is not safe for concurrent use.
func InitRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// RandomPattern samples an n-by-n matrix whose off-diagonal entries are
// present independently with probability density. With diagonal set every
// diagonal entry is present. Values are in [1,2).
func RandomPattern(rng *rand.Rand, n int64, density float64, diagonal bool) (*CSC, error) {
	if n <= 0 {
		return nil, fmt.Errorf("random pattern: n = %d: %w", n, ErrNonPositive)
	}
	if density < 0 || density > 1 {
		return nil, fmt.Errorf("random pattern: density %g not in [0,1]: %w", density, ErrInvalidConfig)
	}
	if rng == nil {
		rng = InitRandom(0)
	}

	c := &CSC{
		N:  n,
		Ap: make([]int64, n+1),
	}
	// trial order is fixed (column, then row ascending) so a seed always
	// yields the same matrix
	for j := int64(0); j < n; j++ {
		for i := int64(0); i < n; i++ {
			keep := false
			if i == j {
				keep = diagonal
			} else {
				keep = rng.Float64() < density
			}
			if keep {
				c.Ai = append(c.Ai, i)
				c.Ax = append(c.Ax, 1+rng.Float64())
			}
		}
		c.Ap[j+1] = int64(len(c.Ai))
	}
	if c.Ai == nil {
		c.Ai = []int64{}
		c.Ax = []float64{}
	}

	return c, nil
}

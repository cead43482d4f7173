package sparse

import "fmt"

const (
	LargestShortInteger int64 = 32767
	LargestLongInteger  int64 = 2147483647
)

// Markowitz holds, for every index i, the off-diagonal entry counts of row i
// and column i and their product, the cost estimate a pivot search would
// assign to diagonal i.
type Markowitz struct {
	Row        []int64
	Col        []int64
	Prod       []int64
	Singletons int // indices with a zero product
}

// MarkowitzCounts computes the Markowitz numbers of every diagonal of c.
func MarkowitzCounts(c *CSC) (*Markowitz, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("markowitz: %w", err)
	}

	mk := &Markowitz{
		Row:  make([]int64, c.N),
		Col:  make([]int64, c.N),
		Prod: make([]int64, c.N),
	}

	for j := int64(0); j < c.N; j++ {
		for p := c.Ap[j]; p < c.Ap[j+1]; p++ {
			i := c.Ai[p]
			if i == j {
				continue
			}
			mk.Row[i]++
			mk.Col[j]++
		}
	}

	for i := int64(0); i < c.N; i++ {
		mk.Prod[i] = markowitzProduct(mk.Row[i], mk.Col[i])
		if mk.Prod[i] == 0 {
			mk.Singletons++
		}
	}

	return mk, nil
}

// markowitzProduct multiplies two counts, saturating at LargestLongInteger.
func markowitzProduct(op1, op2 int64) int64 {
	if (op1 > LargestShortInteger && op2 != 0) || (op2 > LargestShortInteger && op1 != 0) {
		fProduct := float64(op1) * float64(op2)
		return int64(clamp(fProduct, 0, float64(LargestLongInteger)))
	}
	return op1 * op2
}

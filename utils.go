package sparse

import (
	"golang.org/x/exp/constraints"
)

func (m *Matrix) ElementCount() int {
	return m.Elements
}

func (m *Matrix) GetSize() int64 {
	return m.Size
}

func min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// clamp limits v to [lo, hi].
func clamp[T constraints.Ordered](v, lo, hi T) T {
	return max(lo, min(v, hi))
}

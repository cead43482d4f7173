package sparse // import "github.com/edp1096/sparse-aat"

import (
	"fmt"
)

func DefaultConfiguration() Configuration {
	return Configuration{
		PrinterWidth: DEFAULT_PRINTER_WIDTH,
		PrintLevel:   DEFAULT_PRINT_LEVEL,
		Annotate:     0,
		LogLevel:     "info",
		Density:      DEFAULT_DENSITY,
		Diagonal:     true,
	}
}

func Create(size int64, config *Configuration) (*Matrix, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size: %d: %w", size, ErrNonPositive)
	}

	if config == nil {
		defaultConfig := DefaultConfiguration()
		config = &defaultConfig
	}

	matrixSize := size + 1 // 1-based indexing

	m := &Matrix{
		Config:     *config,
		Size:       size,
		Elements:   0,
		Diags:      make([]*Element, matrixSize),
		FirstInCol: make([]*Element, matrixSize),
	}

	return m, nil
}

// Clear zeroes every stamped value and keeps the pattern.
func (m *Matrix) Clear() {
	for i := m.Size; i > 0; i-- {
		element := m.FirstInCol[i]
		for element != nil {
			element.Real = 0.0
			element = element.NextInCol
		}
	}
}

func (m *Matrix) Destroy() {
	m.Diags = nil
	m.FirstInCol = nil
	m.Elements = 0
	m.Size = 0
}

func (m *Matrix) createElement(row, col int64, firstInCol **Element) *Element {
	current := *firstInCol
	var prev **Element = firstInCol
	for current != nil && current.Row < row {
		prev = &current.NextInCol
		current = current.NextInCol
	}

	if current != nil && current.Row == row {
		return current
	}

	element := &Element{Row: row, Col: col, Real: 0.0}
	m.Elements++

	element.NextInCol = current
	*prev = element

	if row == col {
		m.Diags[row] = element
	}

	return element
}

// GetElement returns the element at (row, col), creating it if needed.
// Indices are 1-based; row or column 0 is the ground node and yields a
// detached element that is never stored. Out of range indices yield nil.
func (m *Matrix) GetElement(row, col int64) *Element {
	if row < 0 || col < 0 || row > m.Size || col > m.Size {
		return nil
	}
	if row == 0 || col == 0 {
		return &Element{}
	}

	if row == col {
		if element := m.Diags[row]; element != nil {
			return element
		}
	}

	return m.createElement(row, col, &m.FirstInCol[col])
}

// CSC compresses the stamped pattern into 0-based compressed-sparse-column
// form. Columns come out sorted and duplicate-free.
func (m *Matrix) CSC() *CSC {
	c := &CSC{
		N:  m.Size,
		Ap: make([]int64, m.Size+1),
		Ai: make([]int64, 0, m.Elements),
		Ax: make([]float64, 0, m.Elements),
	}

	for col := int64(1); col <= m.Size; col++ {
		for element := m.FirstInCol[col]; element != nil; element = element.NextInCol {
			c.Ai = append(c.Ai, element.Row-1)
			c.Ax = append(c.Ax, element.Real)
		}
		c.Ap[col] = int64(len(c.Ai))
	}

	return c
}

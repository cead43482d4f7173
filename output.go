package sparse

import (
	"fmt"
	"io"
	"math"
)

// Write prints the status record filled by AAT.
func (info *Info) Write(w io.Writer) {
	if info == nil {
		fmt.Fprintf(w, "AAT: no statistics available\n")
		return
	}

	fmt.Fprintf(w, "AAT results:\n")
	fmt.Fprintf(w, "    status: %s\n", info.Status)
	if info.Status != StatusOK && info.Status != StatusOKButJumbled {
		fmt.Fprintln(w)
		return
	}

	printInt := func(label string, v int64) {
		if v >= 0 {
			fmt.Fprintf(w, "    %-52s%d\n", label, v)
		}
	}

	printInt("n, dimension of A:", info.N)
	printInt("nz, number of nonzeros in A:", info.NZ)
	if info.Symmetry >= 0 {
		fmt.Fprintf(w, "    %-52s%.4f\n", "symmetry of A:", info.Symmetry)
	}
	printInt("number of nonzeros on diagonal:", info.NZDiag)
	printInt("nonzeros in pattern of A+A' (excl. diagonal):", info.NZAPlusAT)
	printInt("off-diagonal pairs matched in A and A':", info.NZBoth)
	fmt.Fprintln(w)
}

// Report prints a column-form (colForm true) or row-form matrix and checks it.
//
// printLevel <= 2 prints nothing and checks nothing. 3 prints a one line
// summary, 4 prints the first 10 entries of the first 10 vectors and 5 or
// more prints everything. Values are printed from ax when it is not nil.
// Errors are printed whenever printLevel >= 3 and returned.
func Report(w io.Writer, nRow, nCol int64, ap, ai []int64, ax []float64, colForm bool, printLevel int) error {
	prl := printLevel
	if prl <= 2 {
		return nil
	}

	vectorKind, indexKind := "column", "row"
	n, ni := nCol, nRow
	if !colForm {
		vectorKind, indexKind = "row", "column"
		n, ni = nRow, nCol
	}

	// only printed at level 4 and up, tracks truncation
	print4 := func(format string, args ...any) {
		if prl >= 4 {
			fmt.Fprintf(w, format, args...)
		}
	}

	fmt.Fprintf(w, "%s-form matrix, n_row %d n_col %d, ", vectorKind, nRow, nCol)

	if nRow <= 0 || nCol <= 0 {
		fmt.Fprintf(w, "ERROR: n_row <= 0 or n_col <= 0\n\n")
		return fmt.Errorf("report: %w", ErrNonPositive)
	}
	if ap == nil {
		fmt.Fprintf(w, "ERROR: Ap missing\n\n")
		return fmt.Errorf("report: Ap: %w", ErrArgumentMissing)
	}
	if int64(len(ap)) < n+1 {
		fmt.Fprintf(w, "ERROR: Ap has %d entries, needs %d\n\n", len(ap), n+1)
		return fmt.Errorf("report: len(Ap): %w", ErrInvalidMatrix)
	}

	nz := ap[n]
	fmt.Fprintf(w, "nz = %d. ", nz)
	if nz < 0 {
		fmt.Fprintf(w, "ERROR: number of entries < 0\n\n")
		return fmt.Errorf("report: nz = %d: %w", nz, ErrInvalidMatrix)
	}
	if ap[0] != 0 {
		fmt.Fprintf(w, "ERROR: Ap [%d] = %d must be %d\n\n", 0, ap[0], 0)
		return fmt.Errorf("report: Ap[0] = %d: %w", ap[0], ErrInvalidMatrix)
	}
	if ai == nil {
		fmt.Fprintf(w, "ERROR: Ai missing\n\n")
		return fmt.Errorf("report: Ai: %w", ErrArgumentMissing)
	}
	if int64(len(ai)) < nz {
		fmt.Fprintf(w, "ERROR: Ai has %d entries, needs %d\n\n", len(ai), nz)
		return fmt.Errorf("report: len(Ai): %w", ErrInvalidMatrix)
	}

	doValues := ax != nil && int64(len(ax)) >= nz

	print4("\n")

	// check the pointers
	for k := int64(0); k < n; k++ {
		if ap[k] < 0 {
			fmt.Fprintf(w, "ERROR: Ap [%d] < 0\n\n", k)
			return fmt.Errorf("report: Ap[%d] = %d: %w", k, ap[k], ErrInvalidMatrix)
		}
		if ap[k] > nz {
			fmt.Fprintf(w, "ERROR: Ap [%d] > size of Ai\n\n", k)
			return fmt.Errorf("report: Ap[%d] = %d: %w", k, ap[k], ErrInvalidMatrix)
		}
	}
	for k := int64(0); k < n; k++ {
		if ap[k+1]-ap[k] < 0 {
			fmt.Fprintf(w, "ERROR: # entries in %s %d is < 0\n\n", vectorKind, k)
			return fmt.Errorf("report: %s %d: %w", vectorKind, k, ErrInvalidMatrix)
		}
	}

	prl1 := prl
	for k := int64(0); k < n; k++ {
		// the first 10 vectors print at the requested level
		if k < 10 {
			prl = prl1
		}

		p1 := ap[k]
		p2 := ap[k+1]
		length := p2 - p1
		print4("\n    %s %d: start: %d end: %d entries: %d\n", vectorKind, k, p1, p2-1, length)

		ilast := Empty
		for p := p1; p < p2; p++ {
			i := ai[p]
			print4("\t%s %d ", indexKind, i)
			if doValues && prl >= 4 {
				fmt.Fprintf(w, ":")
				printEntry(w, ax[p])
			}
			if i < 0 || i >= ni {
				fmt.Fprintf(w, " ERROR: %s index %d out of range in %s %d\n\n", indexKind, i, vectorKind, k)
				return fmt.Errorf("report: %s index %d in %s %d: %w", indexKind, i, vectorKind, k, ErrInvalidMatrix)
			}
			if i <= ilast {
				fmt.Fprintf(w, " ERROR: %s index %d out of order (or duplicate) in %s %d\n\n", indexKind, i, vectorKind, k)
				return fmt.Errorf("report: %s index %d in %s %d: %w", indexKind, i, vectorKind, k, ErrInvalidMatrix)
			}
			print4("\n")

			// truncate printout, but keep checking
			if prl == 4 && p-p1 == 9 && length > 10 {
				print4("\t...\n")
				prl--
			}
			ilast = i
		}

		if prl == 4 && k == 9 && n > 10 {
			print4("\n    ...\n")
			prl--
		}
	}
	prl = prl1

	print4("    %s-form matrix ", vectorKind)
	fmt.Fprintf(w, "OK\n\n")

	return nil
}

// Report prints c as a column-form matrix.
func (c *CSC) Report(w io.Writer, printLevel int) error {
	return Report(w, c.N, c.N, c.Ap, c.Ai, c.Ax, true, printLevel)
}

func printEntry(w io.Writer, v float64) {
	if v != 0 {
		fmt.Fprintf(w, " (%g)", v)
	} else {
		fmt.Fprintf(w, " (0)")
	}
}

// Print renders the stamped pattern. With data the values are printed,
// otherwise 'x' marks an entry and '.' an empty position. header adds the
// matrix summary and column labels.
func (m *Matrix) Print(w io.Writer, data bool, header bool) {
	if m == nil {
		return
	}

	if header {
		fmt.Fprintf(w, "MATRIX SUMMARY\n\n")
		fmt.Fprintf(w, "Size of matrix = %d x %d.\n\n", m.Size, m.Size)
	}

	if m.Size == 0 {
		return
	}

	columns := max(m.Config.PrinterWidth, 10)
	if header {
		columns -= 5
	}
	if data {
		columns = (columns + 1) / 10
	}
	columns = max(columns, 1)

	startCol := int64(1)
	for startCol <= m.Size {
		stopCol := min(startCol+int64(columns)-1, m.Size)

		if header {
			if data {
				fmt.Fprintf(w, "    ")
				for col := startCol; col <= stopCol; col++ {
					fmt.Fprintf(w, " %9d", col)
				}
				fmt.Fprintf(w, "\n\n")
			} else {
				fmt.Fprintf(w, "Columns %d to %d.\n", startCol, stopCol)
			}
		}

		// walk each column list once per block, row by row
		cursor := make([]*Element, stopCol-startCol+1)
		for col := startCol; col <= stopCol; col++ {
			cursor[col-startCol] = m.FirstInCol[col]
		}

		for row := int64(1); row <= m.Size; row++ {
			if header {
				fmt.Fprintf(w, "%4d", row)
				if !data {
					fmt.Fprintf(w, " ")
				}
			}

			for col := startCol; col <= stopCol; col++ {
				element := cursor[col-startCol]
				if element != nil && element.Row == row {
					cursor[col-startCol] = element.NextInCol
					if data {
						fmt.Fprintf(w, " %9.3g", element.Real)
					} else {
						fmt.Fprintf(w, "x")
					}
				} else {
					if data {
						fmt.Fprintf(w, "       ...")
					} else {
						fmt.Fprintf(w, ".")
					}
				}
			}
			fmt.Fprintln(w)
		}

		fmt.Fprintln(w)
		startCol = stopCol + 1
	}

	if header {
		stats := m.calculateStatistics()
		fmt.Fprintf(w, "\nLargest element in matrix = %-1.4g.\n", stats.largestElement)
		fmt.Fprintf(w, "Smallest element in matrix = %-1.4g.\n", stats.smallestElement)
		fmt.Fprintf(w, "\nLargest diagonal element = %-1.4g.\n", stats.largestDiag)
		fmt.Fprintf(w, "Smallest diagonal element = %-1.4g.\n", stats.smallestDiag)

		density := float64(stats.elementCount) * 100.0 / float64(m.Size*m.Size)
		fmt.Fprintf(w, "\nDensity = %.2f%%.\n\n", density)
	}
}

type matrixStats struct {
	largestElement  float64
	smallestElement float64
	largestDiag     float64
	smallestDiag    float64
	elementCount    int64
}

func (m *Matrix) calculateStatistics() matrixStats {
	stats := matrixStats{
		smallestElement: math.MaxFloat64,
		smallestDiag:    math.MaxFloat64,
	}

	for col := int64(1); col <= m.Size; col++ {
		for element := m.FirstInCol[col]; element != nil; element = element.NextInCol {
			stats.elementCount++
			magnitude := math.Abs(element.Real)

			if magnitude > stats.largestElement {
				stats.largestElement = magnitude
			}
			if magnitude < stats.smallestElement && magnitude != 0 {
				stats.smallestElement = magnitude
			}

			if element.Row == col {
				if magnitude > stats.largestDiag {
					stats.largestDiag = magnitude
				}
				if magnitude < stats.smallestDiag && magnitude != 0 {
					stats.smallestDiag = magnitude
				}
			}
		}
	}

	if stats.smallestElement == math.MaxFloat64 {
		stats.smallestElement = 0
	}
	if stats.smallestDiag == math.MaxFloat64 {
		stats.smallestDiag = 0
	}

	return stats
}

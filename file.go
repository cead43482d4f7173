package sparse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadMatrix reads a matrix in the Sparse 1.3 test file format:
//
//	[Starting ...]
//	description
//	size [real|complex]
//	row col value [imag]   (1-based, repeated)
//	0 0 0
//	(right-hand side, ignored)
//
// Entries on row or column 0 are dropped. Repeated entries are summed.
func ReadMatrix(r io.Reader, config *Configuration) (*Matrix, string, error) {
	scanner := bufio.NewScanner(r)
	lineNumber := 1

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, "", fmt.Errorf("reading matrix: %w", err)
		}
		return nil, "", fmt.Errorf("empty file")
	}
	line := strings.TrimSpace(scanner.Text())

	if strings.HasPrefix(line, "Starting") {
		if !scanner.Scan() {
			return nil, "", fmt.Errorf("missing description")
		}
		lineNumber++
		line = strings.TrimSpace(scanner.Text())
	}
	description := line

	if !scanner.Scan() {
		return nil, description, fmt.Errorf("missing size information")
	}
	lineNumber++
	fields := strings.Fields(scanner.Text())
	if len(fields) < 1 {
		return nil, description, fmt.Errorf("syntax error at line %d", lineNumber)
	}

	size, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return nil, description, fmt.Errorf("invalid size value at line %d: %v", lineNumber, err)
	}

	m, err := Create(size, config)
	if err != nil {
		return nil, description, fmt.Errorf("failed to create matrix: %w", err)
	}

	for scanner.Scan() {
		lineNumber++
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			continue
		}

		row, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, description, fmt.Errorf("invalid row at line %d: %v", lineNumber, err)
		}
		col, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, description, fmt.Errorf("invalid column at line %d: %v", lineNumber, err)
		}

		// 0 0 0 ends the matrix
		if row == 0 && col == 0 {
			break
		}

		real, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, description, fmt.Errorf("invalid value at line %d: %v", lineNumber, err)
		}

		element := m.GetElement(row, col)
		if element == nil {
			return nil, description, fmt.Errorf("entry (%d,%d) at line %d: %w", row, col, lineNumber, ErrIndexOutOfRange)
		}
		element.Real += real
	}

	if err := scanner.Err(); err != nil {
		return nil, description, fmt.Errorf("error reading file: %v", err)
	}

	return m, description, nil
}

// WriteMatrix writes c in the format read by ReadMatrix.
func WriteMatrix(w io.Writer, c *CSC, description string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Starting\n%s\n%d real\n", description, c.N)
	for j := int64(0); j < c.N; j++ {
		for p := c.Ap[j]; p < c.Ap[j+1]; p++ {
			v := 1.0
			if c.Ax != nil {
				v = c.Ax[p]
			}
			fmt.Fprintf(bw, "%d %d %.17g\n", c.Ai[p]+1, j+1, v)
		}
	}
	fmt.Fprintf(bw, "0 0 0\n")

	return bw.Flush()
}

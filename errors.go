package sparse

import "errors"

// Every message is prefixed with "sparse: ". Callers wrap with
// fmt.Errorf("ctx: %w", ErrX) and match with errors.Is.
var (
	// ErrArgumentMissing is returned when a required slice is nil.
	ErrArgumentMissing = errors.New("sparse: argument missing")

	// ErrNonPositive is returned for a negative dimension, or a zero one where
	// at least one row or column is required.
	ErrNonPositive = errors.New("sparse: invalid dimension")

	// ErrInvalidMatrix reports a structurally broken matrix: bad column
	// pointers or indices out of range.
	ErrInvalidMatrix = errors.New("sparse: invalid matrix structure")

	// ErrJumbled reports a matrix that is usable but has unsorted or
	// duplicate indices within a column.
	ErrJumbled = errors.New("sparse: matrix ok but jumbled")

	// ErrIndexOutOfRange is returned by builders for indices outside the matrix.
	ErrIndexOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch is returned when slice lengths disagree.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNonSquare is returned when a square matrix is required.
	ErrNonSquare = errors.New("sparse: matrix is not square")

	// ErrInvalidConfig is returned by Configuration.Validate.
	ErrInvalidConfig = errors.New("sparse: invalid configuration")
)

type Status int

const (
	StatusOK              Status = 0
	StatusOKButJumbled    Status = 1
	StatusArgumentMissing Status = -1
	StatusInvalid         Status = -2
	StatusNonPositive     Status = -3
	StatusEmpty           Status = -4 // Info not filled
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusOKButJumbled:
		return "OK, but jumbled"
	case StatusArgumentMissing:
		return "argument missing"
	case StatusInvalid:
		return "invalid matrix"
	case StatusNonPositive:
		return "n must be positive"
	case StatusEmpty:
		return "empty"
	}
	return "unknown status"
}

// StatusOf maps an error returned by this package to a Status.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrJumbled):
		return StatusOKButJumbled
	case errors.Is(err, ErrArgumentMissing):
		return StatusArgumentMissing
	case errors.Is(err, ErrNonPositive):
		return StatusNonPositive
	}
	return StatusInvalid
}

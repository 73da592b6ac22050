package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and access.
var (
	// ErrIndexOutOfBounds is wrapped by every *IndexOutOfBoundsError.
	ErrIndexOutOfBounds = errors.New("grid: index out of bounds")

	// ErrSizeMismatch indicates the number of values does not equal rows*cols.
	ErrSizeMismatch = errors.New("grid: value count does not match dimensions")

	// ErrNonRectangular indicates nested rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrEmptyGrid indicates a grid with no rows.
	ErrEmptyGrid = errors.New("grid: input must have at least one row")
)

// IndexOutOfBoundsError reports an access outside a grid.
type IndexOutOfBoundsError struct {
	Dimensions Dimensions[int]
	Attempted  Point[int]
}

// Error implements error.
func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("attempted to access %v in grid with dimensions %v", e.Attempted, e.Dimensions)
}

// Unwrap returns ErrIndexOutOfBounds.
func (e *IndexOutOfBoundsError) Unwrap() error { return ErrIndexOutOfBounds }

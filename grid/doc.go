// Package grid provides the 2D geometry used by maze and simulation puzzles:
// integer points and offsets, half-open bounding boxes, a four-way
// Direction, a dense row-major Grid and a sparse, unbounded Lattice.
//
// Coordinates are (Row, Col) with rows growing downward (South) and
// columns growing to the right (East).
//
// Bounds:
//
//   - Dimensions is a half-open box [MinRow,MaxRow) × [MinCol,MaxCol).
//   - Point.AddChecked returns ok == false instead of wrapping or leaving
//     the box; it is the single primitive behind TraverseBy and TraverseTo.
//
// Errors:
//
//   - Grid.Get, Grid.Ptr and Grid.Set return *IndexOutOfBoundsError
//     (errors.Is(err, ErrIndexOutOfBounds)) for points outside the grid.
//   - Grid.At and Lattice.At are the unchecked shorthands and panic.
//   - FromSlice and FromRows return ErrSizeMismatch / ErrNonRectangular.
//
// Complexity:
//
//   - Grid access is O(1); Lattice access is an O(1) map lookup.
//   - Lattice.BoundingBox is O(n) in the number of stored points.
package grid

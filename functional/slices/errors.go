package slices

import "fmt"

// LengthMismatchError is returned when performing an element-wise operation on slices which don't have the same
// number of elements.
type LengthMismatchError struct {
	A int
	B int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: %d elements and %d elements", e.A, e.B)
}

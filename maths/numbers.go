// Package maths provides generic numeric constraints and predicates.
package maths

import "golang.org/x/exp/constraints"

// Number is satisfied by any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Positive returns a boolean indicating whether the given number is strictly greater than zero.
func Positive[E Number](e E) bool {
	return e > 0
}

// Package slices provides generic slice utility functions.
package slices

import "github.com/giorno1/calcoli/maths"

// Sum returns the summation of the elements in the provided slice.
//
// NOTE: A <nil> or empty slice results in the zero value.
func Sum[S ~[]E, E maths.Number](s S) E {
	var total E

	for _, e := range s {
		total += e
	}

	return total
}

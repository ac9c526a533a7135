// Package calc implements the element-wise value computation, the all-positive predicate and the total accumulator.
//
// Every function may be called concurrently, the only side effect is logging through the library logger.
package calc

import (
	"fmt"

	"github.com/giorno1/calcoli/functional/slices"
	"github.com/giorno1/calcoli/log"
	"github.com/giorno1/calcoli/maths"
)

// Threshold is the pair sum from which the caller supplied increment is applied, below it the pair is topped up by its
// own 'x' value instead.
const Threshold = 16

// ComputeValues combines 'x' and 'y' element-wise. For each index the pair is rejected (resulting in zero) when 'x' is
// less than 'y', otherwise the result is their sum plus 'increment' when the sum reaches 'Threshold', or plus 'x' when
// it does not.
//
// NOTE: Returns a '*slices.LengthMismatchError' (wrapped) when the slices have different lengths. Arithmetic is plain
// 'int' arithmetic and wraps around on overflow.
func ComputeValues(x, y []int, increment int) ([]int, error) {
	values, err := slices.ZipWith(x, y, func(i, a, b int) int {
		if a < b {
			log.Tracef("(Calc) Rejecting pair %d, %d is less than %d", i, a, b)
			return 0
		}

		sum := a + b
		if sum >= Threshold {
			return sum + increment
		}

		return sum + a
	})
	if err != nil {
		log.Errorf("(Calc) Failed to compute values: %v", err)
		return nil, fmt.Errorf("failed to compute values: %w", err)
	}

	return values, nil
}

// AllPositive returns a boolean indicating whether every given value is strictly greater than zero.
//
// NOTE: Providing no values returns true.
func AllPositive[E maths.Number](values ...E) bool {
	return slices.All(values, maths.Positive[E])
}

// ComputeTotal returns the signed sum of the given values, zero for an empty slice.
func ComputeTotal[S ~[]E, E maths.Number](values S) E {
	return slices.Sum(values)
}

package slices

// ZipWith applies the given function to each pair of elements sharing the same index in 'as' and 'bs'.
//
// NOTE: Returns a 'LengthMismatchError' if the slices differ in length, empty input results in an empty (non-nil)
// slice.
func ZipWith[AS ~[]A, BS ~[]B, A, B, C any](as AS, bs BS, fn func(i int, a A, b B) C) ([]C, error) {
	if len(as) != len(bs) {
		return nil, &LengthMismatchError{A: len(as), B: len(bs)}
	}

	cs := make([]C, 0, len(as))

	for i := range as {
		cs = append(cs, fn(i, as[i], bs[i]))
	}

	return cs, nil
}

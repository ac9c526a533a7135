package slices

// All returns a boolean indicating whether every element in the given slice matches all the provided predicates.
//
// NOTE: An empty slice always matches, as does providing no predicates.
func All[S ~[]E, E any](s S, p ...func(e E) bool) bool {
	for _, e := range s {
		if !matches(e, p...) {
			return false
		}
	}

	return true
}

// matches returns a boolean indicating whether the given element matches all the provided predicates.
func matches[E any](e E, p ...func(e E) bool) bool {
	for _, fn := range p {
		if !fn(e) {
			return false
		}
	}

	return true
}

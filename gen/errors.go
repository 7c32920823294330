package gen

import "fmt"

// FilterTooNarrowError is raised (via panic — see comb.go Filter/BindFilter)
// when a predicate rejects MaxConsecutiveFailures freshly generated
// candidates in a row. It signals that the predicate admits too few values
// at the current size; the fix is to reshape the generator, not filter
// harder.
type FilterTooNarrowError struct {
	MaxConsecutiveFailures int
}

func (e *FilterTooNarrowError) Error() string {
	return fmt.Sprintf(
		"gen: filter rejected %d consecutive candidates; reshape the generator instead of raising max_consecutive_failures",
		e.MaxConsecutiveFailures,
	)
}

// TooManyDuplicatesError is raised by UniqListOf/MapOf when MaxTries
// consecutive re-draws all collided with an already-seen key.
type TooManyDuplicatesError struct {
	MaxTries  int
	Remaining int
	Generated int
}

func (e *TooManyDuplicatesError) Error() string {
	return fmt.Sprintf(
		"gen: could not draw a fresh key after %d tries; %d more unique element(s) needed, %d already generated",
		e.MaxTries, e.Remaining, e.Generated,
	)
}

// EmptyEnumerableError is raised by MemberOf when given an empty slice.
type EmptyEnumerableError struct{}

func (e *EmptyEnumerableError) Error() string {
	return "gen: MemberOf requires a non-empty enumerable"
}

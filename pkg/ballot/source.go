package ballot

import "github.com/pkg/errors"

// ErrEndOfSet is returned by an Iterator once every ballot has been
// yielded.
var ErrEndOfSet = errors.New("end of ballot set")

type (
	// Set is a finite, ordered collection of ballots provided by the
	// caller's storage layer. Sequences must be unique, totally ordered
	// and stable across resumptions of the same logical vote. A Set is
	// read-only input for the duration of any tabulation; multiple
	// tabulations may scan the same Set concurrently as long as each
	// owns its own counting state.
	Set interface {
		// Scan returns an iterator over the ballots whose sequence is
		// strictly greater than after, in ascending sequence order.
		// Scanning from NoSequence yields every ballot.
		Scan(after Sequence) Iterator
	}

	// Iterator yields ballots one at a time. Next returns ErrEndOfSet
	// when the set is exhausted. Any other error means iteration was
	// interrupted; only the caller knows whether and how to resume.
	Iterator interface {
		Next() (Ballot, error)
	}
)

// SliceSet is an in-memory Set over an already-materialized slice of
// ballots held in ascending sequence order.
type SliceSet []Ballot

var _ Set = SliceSet{}

// NewSliceSet builds a SliceSet from rankings, assigning sequences
// 0..n-1 in the order given.
func NewSliceSet(rankings ...[]Choice) SliceSet {
	set := make(SliceSet, len(rankings))
	for i, ranking := range rankings {
		set[i] = Ballot{Sequence: Sequence(i), Ranking: ranking}
	}
	return set
}

func (s SliceSet) Scan(after Sequence) Iterator {
	next := 0
	for next < len(s) && s[next].Sequence <= after {
		next++
	}
	return &sliceIterator{set: s, next: next}
}

type sliceIterator struct {
	set  SliceSet
	next int
}

func (it *sliceIterator) Next() (Ballot, error) {
	if it.next >= len(it.set) {
		return Ballot{}, ErrEndOfSet
	}
	b := it.set[it.next]
	it.next++
	return b, nil
}

package ballot

import (
	"github.com/pkg/errors"
)

// Choice names a candidate or option that a ballot can rank. Choices are
// compared by equality only; no ordering among choices themselves is
// assumed during counting.
type Choice string

// Sequence identifies a ballot's position in the total order of a Set.
// It doubles as the resume cursor: a count that stopped after sequence N
// is resumed by scanning strictly after N.
type Sequence int64

// NoSequence is the cursor value before any ballot has been processed.
const NoSequence Sequence = -1

// Ballot is a single voter's submission: an ordered ranking of choices,
// most preferred first. Single-choice rules use a one-entry ranking.
// Ballots are immutable once handed to the tabulation engine; the engine
// works on its own copy when removing eliminated choices.
type Ballot struct {
	Sequence Sequence
	Ranking  []Choice
}

// Validate checks that the ballot is well formed. A ranking may not name
// the same choice twice.
func (b Ballot) Validate() error {
	seen := make(map[Choice]struct{}, len(b.Ranking))
	for _, c := range b.Ranking {
		if _, ok := seen[c]; ok {
			return errors.Errorf("ballot %d ranks %q more than once", b.Sequence, c)
		}
		seen[c] = struct{}{}
	}
	return nil
}

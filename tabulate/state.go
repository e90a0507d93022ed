package tabulate

import "github.com/ballotkit/ballotkit/pkg/ballot"

// State is the resumable snapshot of one counting pass: the sequence of
// the last fully processed ballot, the running count table and the
// removal set in force for the pass. A State is owned exclusively by the
// rule invocation that produced it and is never shared between
// concurrent tabulations. The removal set is fixed for the lifetime of a
// pass; counting with a different one requires a fresh CountFull.
type State struct {
	Cursor ballot.Sequence
	Counts Table
	Ignore []ballot.Choice
}

func (s State) clone() State {
	return State{
		Cursor: s.Cursor,
		Counts: s.Counts.Clone(),
		Ignore: append([]ballot.Choice(nil), s.Ignore...),
	}
}

func (s State) ignores(c ballot.Choice) bool {
	for _, ignored := range s.Ignore {
		if ignored == c {
			return true
		}
	}
	return false
}

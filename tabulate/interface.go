package tabulate

import "github.com/ballotkit/ballotkit/pkg/ballot"

// Rule computes the outcome of a vote over a ballot set, returning the
// winning choices in descending rank order (most preferred first). A
// Rule treats the set as read-only; all working state lives in values
// the rule owns, so independent recounts over the same set may run
// concurrently as long as each uses its own Rule value.
type Rule interface {
	Calculate(ballot.Set) ([]ballot.Choice, error)
}

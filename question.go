package ballotkit

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/ballotkit/ballotkit/pkg/ballot"
	"github.com/ballotkit/ballotkit/tabulate"
)

// Method selects the voting rule a question is decided by.
type Method uint8

const (
	// MethodPlurality: the choice ranked first on the most ballots wins.
	MethodPlurality Method = iota + 1
	// MethodInstantRunoff: multi-round elimination over ranked ballots.
	MethodInstantRunoff
	// MethodPositional: weighted positional scoring. Declared but not
	// implemented; tabulating it reports ErrRuleUnavailable.
	MethodPositional
)

func (m Method) String() string {
	switch m {
	case MethodPlurality:
		return "plurality"
	case MethodInstantRunoff:
		return "instant-runoff"
	case MethodPositional:
		return "positional"
	default:
		return "unknown"
	}
}

// Question is one item put to a vote: its metadata, the options voters
// choose between, how many winners it produces and the rule that decides
// it. Questions are created by the election-management application;
// ballots referencing a question arrive through a ballot.Set owned by
// the caller's storage layer.
type Question struct {
	ID          uuid.UUID
	Title       string
	Description string
	Options     []ballot.Choice
	Winners     int
	Method      Method
}

// NewQuestion creates a question with a fresh identifier and a single
// winner. The options list is validated when a rule is constructed, not
// here, so that a question can be assembled incrementally.
func NewQuestion(title string, options []ballot.Choice, method Method) *Question {
	return &Question{
		ID:      uuid.New(),
		Title:   title,
		Options: options,
		Winners: 1,
		Method:  method,
	}
}

// Rule constructs the tabulation rule for the question's method. Every
// call returns an independent rule value with no shared state, so the
// same question can be recounted concurrently.
func (q *Question) Rule(opts ...tabulate.Option) (tabulate.Rule, error) {
	switch q.Method {
	case MethodPlurality:
		return tabulate.NewPlurality(q.Options, opts...)
	case MethodInstantRunoff:
		return tabulate.NewInstantRunoff(q.Options, q.Winners, opts...)
	case MethodPositional:
		return tabulate.NewPositional(q.Options, opts...)
	default:
		return nil, errors.Wrapf(tabulate.ErrRuleUnavailable, "unknown voting method %d", q.Method)
	}
}

// Tabulate counts the ballot set under the question's rule and returns
// the winners in descending rank order.
func (q *Question) Tabulate(set ballot.Set, opts ...tabulate.Option) ([]ballot.Choice, error) {
	rule, err := q.Rule(opts...)
	if err != nil {
		return nil, err
	}
	return rule.Calculate(set)
}

package tabulate

import (
	"github.com/pkg/errors"

	"github.com/ballotkit/ballotkit/pkg/ballot"
)

// Positional decides a question by a weighted sum of preferences:
// candidates score points by ranking position and the highest total
// wins. The rule is declared so that questions can name it, but no
// scoring scheme has been implemented yet; Calculate always reports the
// rule as unavailable rather than returning an empty result.
type Positional struct{}

var _ Rule = (*Positional)(nil)

func NewPositional(options []ballot.Choice, opts ...Option) (*Positional, error) {
	if _, err := NewCounter(options); err != nil {
		return nil, err
	}
	return &Positional{}, nil
}

func (p *Positional) Calculate(ballot.Set) ([]ballot.Choice, error) {
	return nil, errors.Wrap(ErrRuleUnavailable, "positional scoring is not implemented")
}

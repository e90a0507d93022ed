package tabulate

import (
	"github.com/rs/zerolog"

	"github.com/ballotkit/ballotkit/pkg/ballot"
)

// Plurality decides a question by simple highest number of votes:
// voters select a single candidate and the candidate ranked first on the
// most ballots wins.
//
// This rule is also often called "first past the post".
//
// A tie in first-place count is broken by comparing the rest of the
// count vector position by position; choices that tie on the full vector
// are ordered by label, which is arbitrary but deterministic.
type Plurality struct {
	counter *Counter
	logger  zerolog.Logger
}

var _ Rule = (*Plurality)(nil)

func NewPlurality(options []ballot.Choice, opts ...Option) (*Plurality, error) {
	counter, err := NewCounter(options)
	if err != nil {
		return nil, err
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Plurality{counter: counter, logger: cfg.logger}, nil
}

// Calculate runs a single counting pass with no removal set and returns
// the most supported choice as a one-element slice.
func (p *Plurality) Calculate(set ballot.Set) ([]ballot.Choice, error) {
	table, _, err := p.counter.CountFull(set, nil)
	if err != nil {
		return nil, err
	}
	ordered := table.rankAscending()
	winner := ordered[len(ordered)-1]
	p.logger.Info().
		Str("choice", string(winner.choice)).
		Ints("counts", winner.counts).
		Msg("plurality decided")
	return []ballot.Choice{winner.choice}, nil
}

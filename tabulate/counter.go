package tabulate

import (
	"github.com/pkg/errors"

	"github.com/ballotkit/ballotkit/pkg/ballot"
)

// Counter accumulates per-position vote counts over a ballot set. It is
// the building block every voting rule drives: a rule either runs it to
// completion with CountFull or incrementally with CountResume, feeding
// the State from the previous call back in after a suspension.
//
// Counter is single threaded and commits state only at ballot
// boundaries, never mid-ballot. After any failure the returned State
// reflects the last fully counted ballot, and resuming from it produces
// the same table as an uninterrupted count would have.
type Counter struct {
	options []ballot.Choice
}

// NewCounter declares the options a tabulation counts over. The options
// only size each choice's per-position vector and seed the table; they
// carry no ordering of their own.
func NewCounter(options []ballot.Choice) (*Counter, error) {
	if len(options) == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "no options declared")
	}
	seen := make(map[ballot.Choice]struct{}, len(options))
	for _, c := range options {
		if _, ok := seen[c]; ok {
			return nil, errors.Wrapf(ErrInvalidInput, "option %q declared twice", c)
		}
		seen[c] = struct{}{}
	}
	return &Counter{options: append([]ballot.Choice(nil), options...)}, nil
}

// Options returns the declared options in declaration order.
func (c *Counter) Options() []ballot.Choice {
	return append([]ballot.Choice(nil), c.options...)
}

// CountFull counts every ballot in the set from scratch. Choices in
// ignore are removed from each ballot's ranking before counting and the
// remaining ranking left-compacted, so eliminating a voter's first
// preference promotes their second preference to first place. The
// returned State lets the count be extended later with CountResume.
func (c *Counter) CountFull(set ballot.Set, ignore []ballot.Choice) (Table, State, error) {
	return c.count(set, c.newState(ignore))
}

// CountResume continues a count from a prior snapshot, scanning only
// ballots whose sequence sorts strictly after prior.Cursor. The prior
// removal set applies verbatim.
func (c *Counter) CountResume(set ballot.Set, prior State) (Table, State, error) {
	return c.count(set, prior.clone())
}

func (c *Counter) newState(ignore []ballot.Choice) State {
	state := State{
		Cursor: ballot.NoSequence,
		Counts: make(Table, len(c.options)),
		Ignore: append([]ballot.Choice(nil), ignore...),
	}
	for _, option := range c.options {
		if state.ignores(option) {
			continue
		}
		state.Counts[option] = make([]int, len(c.options))
	}
	return state
}

func (c *Counter) count(set ballot.Set, state State) (Table, State, error) {
	iter := set.Scan(state.Cursor)
	for {
		b, err := iter.Next()
		switch {
		case err == nil:
		case errors.Cause(err) == ballot.ErrEndOfSet:
			return state.Counts.Clone(), state, nil
		default:
			// The committed state still reflects the last fully
			// counted ballot and remains valid for resumption.
			return state.Counts.Clone(), state, &InterruptedError{Cursor: state.Cursor, Err: err}
		}
		if err := c.tally(&state, b); err != nil {
			return state.Counts.Clone(), state, err
		}
	}
}

// tally counts a single ballot. The ballot is vetted in full before any
// count is touched so that a rejection cannot leave a half-counted
// ballot in the table.
func (c *Counter) tally(state *State, b ballot.Ballot) error {
	if err := b.Validate(); err != nil {
		return errors.Wrap(ErrInvalidInput, err.Error())
	}

	// working copy of the ranking with ignored choices removed; the
	// caller's ballot is never touched
	working := make([]ballot.Choice, 0, len(b.Ranking))
	for _, choice := range b.Ranking {
		if state.ignores(choice) {
			continue
		}
		if _, ok := state.Counts[choice]; !ok {
			return errors.Wrapf(ErrInvalidInput, "ballot %d ranks undeclared choice %q", b.Sequence, choice)
		}
		working = append(working, choice)
	}

	for position, choice := range working {
		state.Counts[choice][position]++
	}
	state.Cursor = b.Sequence
	return nil
}

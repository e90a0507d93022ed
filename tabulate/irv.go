package tabulate

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/ballotkit/ballotkit/pkg/ballot"
)

const (
	// An instant-runoff run moves through three phases:
	//
	// Counting: a counting pass with the current removal set is in
	// progress. Exit once every ballot has been counted.
	Counting uint8 = iota + 1
	// Eliminating: the round's table is complete. Either the least
	// supported remaining choice is struck and a new Counting pass
	// begins, or few enough choices remain and the run concludes.
	Eliminating
	// Concluded: terminal. The run holds the final winner ordering.
	Concluded
)

// InstantRunoff decides a question by iterative elimination: voters rank
// the candidates, and each round the candidate with the fewest first
// preference rankings is struck and its ballots redistribute at full
// value to each ballot's next surviving preference. Rounds repeat until
// only the configured number of winners remains.
//
// This rule is also often called "preferential voting" or "alternative
// voting".
//
// A run can be suspended at any ballot boundary and resumed later. The
// caller owns the Run snapshot; feeding it back to CalculateContinue
// picks the interrupted counting pass up exactly where it stopped rather
// than restarting the round.
type InstantRunoff struct {
	counter *Counter
	winners int
	logger  zerolog.Logger
}

var _ Rule = (*InstantRunoff)(nil)

// NewInstantRunoff builds the rule for a given options list and winner
// count. The winner count must be at least 1 and below the number of
// options; anything else is rejected with ErrInvalidInput.
func NewInstantRunoff(options []ballot.Choice, winners int, opts ...Option) (*InstantRunoff, error) {
	counter, err := NewCounter(options)
	if err != nil {
		return nil, err
	}
	if winners < 1 {
		return nil, errors.Wrapf(ErrInvalidInput, "winner count %d must be at least 1", winners)
	}
	if winners >= len(options) {
		return nil, errors.Wrapf(ErrInvalidInput,
			"winner count %d must be below the number of options (%d)", winners, len(options))
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &InstantRunoff{
		counter: counter,
		winners: winners,
		logger:  cfg.logger,
	}, nil
}

// Run is the caller-owned state of one instant-runoff tabulation. It is
// never shared: concurrent recounts over the same ballot set must each
// call CalculateSetup for a Run of their own.
type Run struct {
	phase      uint8
	tally      State
	eliminated []ballot.Choice
	rounds     []Round
	result     []ballot.Choice
}

// Phase returns the run's current phase.
func (r *Run) Phase() uint8 {
	return r.phase
}

// Eliminated returns the choices struck so far, in elimination order.
// The set only ever grows across rounds; a struck choice is never
// re-admitted.
func (r *Run) Eliminated() []ballot.Choice {
	return append([]ballot.Choice(nil), r.eliminated...)
}

// Rounds returns the audit record of every completed round.
func (r *Run) Rounds() []Round {
	out := make([]Round, len(r.rounds))
	for i, round := range r.rounds {
		out[i] = Round{Counts: round.Counts.Clone(), Eliminated: round.Eliminated}
	}
	return out
}

// Round is the audit record of one completed round: the full table
// counted that round and the choice struck at its end. Eliminated is
// empty for the round that concluded the election.
type Round struct {
	Counts     Table
	Eliminated ballot.Choice
}

// Calculate runs a complete tabulation in one call.
func (q *InstantRunoff) Calculate(set ballot.Set) ([]ballot.Choice, error) {
	return q.CalculateContinue(set, q.CalculateSetup())
}

// CalculateSetup begins a fresh run with an empty removal set. Each call
// returns an independent Run; nothing is shared between runs.
func (q *InstantRunoff) CalculateSetup() *Run {
	return &Run{
		phase: Counting,
		tally: q.counter.newState(nil),
	}
}

// CalculateContinue drives the run until it concludes or the ballot set
// interrupts. On interruption the error surfaces to the caller and the
// run keeps the counting state committed so far; calling
// CalculateContinue again with the same set resumes mid-round without
// recounting any ballot. Once concluded, further calls return the same
// result.
func (q *InstantRunoff) CalculateContinue(set ballot.Set, run *Run) ([]ballot.Choice, error) {
	for {
		switch run.phase {
		case Counting:
			_, state, err := q.counter.CountResume(set, run.tally)
			run.tally = state
			if err != nil {
				return nil, err
			}
			run.phase = Eliminating

		case Eliminating:
			ordered := run.tally.Counts.rankAscending()
			q.logRankings(len(run.rounds)+1, ordered)

			if len(ordered) <= q.winners {
				run.rounds = append(run.rounds, Round{Counts: run.tally.Counts.Clone()})
				run.result = winnersOf(ordered)
				run.phase = Concluded
				continue
			}

			loser := ordered[0].choice
			run.rounds = append(run.rounds, Round{Counts: run.tally.Counts.Clone(), Eliminated: loser})
			run.eliminated = append(run.eliminated, loser)
			q.logger.Info().
				Int("round", len(run.rounds)).
				Str("choice", string(loser)).
				Msg("choice knocked out")

			run.tally = q.counter.newState(run.eliminated)
			run.phase = Counting

		case Concluded:
			return append([]ballot.Choice(nil), run.result...), nil

		default:
			return nil, errors.Wrapf(ErrInvalidInput, "run in unknown phase %d", run.phase)
		}
	}
}

// winnersOf flips an ascending ranking into descending rank order, most
// supported choice first.
func winnersOf(ordered []ranked) []ballot.Choice {
	out := make([]ballot.Choice, 0, len(ordered))
	for i := len(ordered) - 1; i >= 0; i-- {
		out = append(out, ordered[i].choice)
	}
	return out
}

func (q *InstantRunoff) logRankings(round int, ordered []ranked) {
	arr := zerolog.Arr()
	for _, r := range ordered {
		arr.Str(fmt.Sprintf("%s=%v", r.choice, r.counts))
	}
	q.logger.Info().Int("round", round).Array("rankings", arr).Msg("round rankings")
}

package ballotkit_test

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/ballotkit/ballotkit"
	"github.com/ballotkit/ballotkit/pkg/ballot"
	"github.com/ballotkit/ballotkit/tabulate"
)

const (
	tom   ballot.Choice = "Tom"
	dick  ballot.Choice = "Dick"
	harry ballot.Choice = "Harry"
)

func testQuestion(method ballotkit.Method) *ballotkit.Question {
	return ballotkit.NewQuestion("Who do you like more?", []ballot.Choice{tom, dick, harry}, method)
}

func TestQuestionTabulatePlurality(t *testing.T) {
	q := testQuestion(ballotkit.MethodPlurality)
	set := ballot.NewSliceSet(
		[]ballot.Choice{tom, dick, harry},
		[]ballot.Choice{tom, dick, harry},
		[]ballot.Choice{dick, tom, harry},
	)
	winners, err := q.Tabulate(set, tabulate.WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	require.Equal(t, []ballot.Choice{tom}, winners)
}

func TestQuestionTabulateInstantRunoff(t *testing.T) {
	q := testQuestion(ballotkit.MethodInstantRunoff)
	set := ballot.NewSliceSet(
		[]ballot.Choice{tom, harry, dick},
		[]ballot.Choice{tom, harry, dick},
		[]ballot.Choice{dick, tom, harry},
		[]ballot.Choice{dick, tom, harry},
		[]ballot.Choice{harry, tom, dick},
	)
	winners, err := q.Tabulate(set, tabulate.WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	require.Equal(t, []ballot.Choice{tom}, winners)
}

func TestQuestionPositionalUnavailable(t *testing.T) {
	q := testQuestion(ballotkit.MethodPositional)
	_, err := q.Tabulate(ballot.NewSliceSet())
	require.ErrorIs(t, err, tabulate.ErrRuleUnavailable)
}

func TestQuestionUnknownMethod(t *testing.T) {
	q := testQuestion(ballotkit.Method(42))
	_, err := q.Rule()
	require.ErrorIs(t, err, tabulate.ErrRuleUnavailable)
}

func TestQuestionRuleValuesAreIndependent(t *testing.T) {
	q := testQuestion(ballotkit.MethodInstantRunoff)
	first, err := q.Rule(tabulate.WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	second, err := q.Rule(tabulate.WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	require.NotSame(t, first, second)

	set := ballot.NewSliceSet([]ballot.Choice{tom, dick, harry})
	got, err := first.Calculate(set)
	require.NoError(t, err)
	want, err := second.Calculate(set)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestRenderPlurality(t *testing.T) {
	q := testQuestion(ballotkit.MethodPlurality)

	var out strings.Builder
	require.NoError(t, q.Render(&out, []ballot.Choice{dick}))
	html := out.String()

	require.Contains(t, html, "<h2>Who do you like more?</h2>")
	require.Contains(t, html, `input type="radio"`)
	for _, option := range q.Options {
		require.Contains(t, html, string(option))
	}
	// only the previously cast vote is pre-selected
	require.Equal(t, 1, strings.Count(html, `checked="checked"`))
	require.Contains(t, html, `value="Dick" checked="checked"`)
}

func TestRenderInstantRunoff(t *testing.T) {
	q := testQuestion(ballotkit.MethodInstantRunoff)

	var out strings.Builder
	require.NoError(t, q.Render(&out, []ballot.Choice{tom, dick}))
	html := out.String()

	require.Contains(t, html, "Ranked Candidates")
	require.Contains(t, html, "<b>Un</b>ranked Candidates")
	// Harry is the only option the prior vote has not ranked
	unrankedAt := strings.Index(html, "-unranked")
	require.GreaterOrEqual(t, unrankedAt, 0)
	require.Contains(t, html[unrankedAt:], "Harry")
	require.NotContains(t, html[unrankedAt:], "Dick")
}

func TestRenderWithoutPriorVote(t *testing.T) {
	q := testQuestion(ballotkit.MethodPlurality)
	var out strings.Builder
	require.NoError(t, q.Render(&out, nil))
	require.NotContains(t, out.String(), "checked")
}

func TestRenderPositionalUnavailable(t *testing.T) {
	q := testQuestion(ballotkit.MethodPositional)
	var out strings.Builder
	require.ErrorIs(t, q.Render(&out, nil), tabulate.ErrRuleUnavailable)
}

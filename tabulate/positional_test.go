package tabulate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ballotkit/ballotkit/tabulate"
)

func TestPositionalIsUnavailable(t *testing.T) {
	rule, err := tabulate.NewPositional(options)
	require.NoError(t, err)
	winners, err := rule.Calculate(fiveIdentical())
	require.ErrorIs(t, err, tabulate.ErrRuleUnavailable)
	require.Nil(t, winners)
}

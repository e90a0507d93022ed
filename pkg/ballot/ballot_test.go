package ballot_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/ballotkit/ballotkit/pkg/ballot"
)

func TestValidateRejectsDuplicateChoice(t *testing.T) {
	b := ballot.Ballot{Sequence: 3, Ranking: []ballot.Choice{"Tom", "Dick", "Tom"}}
	err := b.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "ballot 3")

	require.NoError(t, ballot.Ballot{Ranking: []ballot.Choice{"Tom", "Dick"}}.Validate())
	require.NoError(t, ballot.Ballot{}.Validate())
}

func TestSliceSetScan(t *testing.T) {
	set := ballot.NewSliceSet(
		[]ballot.Choice{"Tom"},
		[]ballot.Choice{"Dick"},
		[]ballot.Choice{"Harry"},
	)

	t.Run("from the beginning", func(t *testing.T) {
		iter := set.Scan(ballot.NoSequence)
		for i := 0; i < 3; i++ {
			b, err := iter.Next()
			require.NoError(t, err)
			require.EqualValues(t, i, b.Sequence)
		}
		_, err := iter.Next()
		require.Equal(t, ballot.ErrEndOfSet, err)
		// exhaustion is stable
		_, err = iter.Next()
		require.Equal(t, ballot.ErrEndOfSet, err)
	})

	t.Run("strictly after a cursor", func(t *testing.T) {
		iter := set.Scan(1)
		b, err := iter.Next()
		require.NoError(t, err)
		require.EqualValues(t, 2, b.Sequence)
		_, err = iter.Next()
		require.Equal(t, ballot.ErrEndOfSet, err)
	})

	t.Run("after the last ballot", func(t *testing.T) {
		iter := set.Scan(2)
		_, err := iter.Next()
		require.Equal(t, ballot.ErrEndOfSet, err)
	})
}

func TestFaultySetFiresOnce(t *testing.T) {
	fault := errors.New("storage fault")
	set := &ballot.FaultySet{
		Set: ballot.NewSliceSet(
			[]ballot.Choice{"Tom"},
			[]ballot.Choice{"Dick"},
			[]ballot.Choice{"Harry"},
		),
		FailAfter: 1,
		Err:       fault,
	}

	iter := set.Scan(ballot.NoSequence)
	_, err := iter.Next()
	require.NoError(t, err)
	_, err = iter.Next()
	require.Equal(t, fault, err)

	// the fault has tripped; a fresh scan runs clean
	iter = set.Scan(ballot.NoSequence)
	for i := 0; i < 3; i++ {
		b, err := iter.Next()
		require.NoError(t, err)
		require.EqualValues(t, i, b.Sequence)
	}
	_, err = iter.Next()
	require.Equal(t, ballot.ErrEndOfSet, err)
}

func TestFaultySetNeverFiresPastTheEnd(t *testing.T) {
	set := &ballot.FaultySet{
		Set:       ballot.NewSliceSet([]ballot.Choice{"Tom"}),
		FailAfter: 1,
		Err:       errors.New("storage fault"),
	}
	iter := set.Scan(ballot.NoSequence)
	_, err := iter.Next()
	require.NoError(t, err)
	_, err = iter.Next()
	require.Equal(t, ballot.ErrEndOfSet, err)
}

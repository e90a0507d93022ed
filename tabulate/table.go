package tabulate

import (
	"sort"

	"github.com/ballotkit/ballotkit/pkg/ballot"
)

// Table holds the accumulated counts of one tabulation pass. For each
// choice, index i is the number of ballots that rank that choice in
// position i once ignored choices have been removed from the ranking and
// the remainder left-compacted. Every declared option that is not
// ignored is present, with an all-zero vector if no ballot ranks it.
type Table map[ballot.Choice][]int

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for choice, counts := range t {
		out[choice] = append([]int(nil), counts...)
	}
	return out
}

// ranked pairs a choice with its count vector for ordering.
type ranked struct {
	choice ballot.Choice
	counts []int
}

// rankAscending orders the table's choices from least to most supported.
// Count vectors are compared lexicographically, so a tie in first-place
// votes is broken by second-place votes and so on. Choices whose vectors
// are fully equal are ordered by label; the ordering among such choices
// is arbitrary but must be deterministic, and map iteration order is
// neither.
func (t Table) rankAscending() []ranked {
	out := make([]ranked, 0, len(t))
	for choice, counts := range t {
		out = append(out, ranked{choice: choice, counts: counts})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := compareCounts(out[i].counts, out[j].counts); c != 0 {
			return c < 0
		}
		return out[i].choice < out[j].choice
	})
	return out
}

// compareCounts compares two equal-length count vectors position by
// position.
func compareCounts(a, b []int) int {
	for i := range a {
		switch {
		case i >= len(b):
			return 1
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	if len(b) > len(a) {
		return -1
	}
	return 0
}

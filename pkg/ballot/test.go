package ballot

// FaultySet wraps a Set and injects a single failure partway through
// iteration, standing in for an external fault in the caller's ballot
// storage. Each Scan counts the ballots it yields; the first iterator to
// reach FailAfter yielded ballots returns Err instead of the next ballot
// and disarms the fault, so later scans (or continued use of the same
// set) behave normally. The fault never fires on an exhausted iterator.
type FaultySet struct {
	Set       Set
	FailAfter int
	Err       error

	tripped bool
}

var _ Set = (*FaultySet)(nil)

func (f *FaultySet) Scan(after Sequence) Iterator {
	return &faultyIterator{set: f, inner: f.Set.Scan(after)}
}

type faultyIterator struct {
	set     *FaultySet
	inner   Iterator
	yielded int
}

func (it *faultyIterator) Next() (Ballot, error) {
	b, err := it.inner.Next()
	if err != nil {
		return Ballot{}, err
	}
	if !it.set.tripped && it.yielded == it.set.FailAfter {
		it.set.tripped = true
		return Ballot{}, it.set.Err
	}
	it.yielded++
	return b, nil
}

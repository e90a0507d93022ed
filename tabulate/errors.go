package tabulate

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/ballotkit/ballotkit/pkg/ballot"
)

var (
	// ErrInvalidInput marks malformed tabulation input: an empty or
	// duplicated options list, a winner count out of range, a ballot
	// ranking the same choice twice or ranking an undeclared choice.
	// The engine never recovers from it internally; the committed
	// counting state is left at its pre-failure value.
	ErrInvalidInput = errors.New("invalid tabulation input")

	// ErrRuleUnavailable is returned when a declared voting rule has no
	// implementation.
	ErrRuleUnavailable = errors.New("voting rule unavailable")
)

// InterruptedError reports that scanning the ballot set failed partway
// through. Cursor is the sequence of the last fully counted ballot; the
// State returned alongside this error is committed up to exactly that
// ballot and can be resumed once the fault is dealt with.
type InterruptedError struct {
	Cursor ballot.Sequence
	Err    error
}

func (e *InterruptedError) Error() string {
	return fmt.Sprintf("counting interrupted after ballot %d: %v", e.Cursor, e.Err)
}

func (e *InterruptedError) Unwrap() error { return e.Err }

// Cause supports github.com/pkg/errors chains.
func (e *InterruptedError) Cause() error { return e.Err }

// IsInterrupted reports whether err is an iteration fault that left a
// resumable counting state behind.
func IsInterrupted(err error) bool {
	var interrupted *InterruptedError
	return errors.As(err, &interrupted)
}

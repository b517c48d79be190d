package session

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidLabel rejects punch-ins whose label is empty after trimming.
var ErrInvalidLabel = errors.New("label must not be empty")

// AlreadyPunchedInError reports a punch-in attempt while a session is open.
// It carries the open session so the user knows what to punch out of.
type AlreadyPunchedInError struct {
	Label     string
	StartedAt time.Time
}

func (e *AlreadyPunchedInError) Error() string {
	return fmt.Sprintf("already punched in to %q since %s", e.Label, e.StartedAt.Format(time.RFC3339))
}

// NotPunchedInError reports a punch-out or cancel with no open session.
// LastEndedAt is the most recent punch-out, zero if nothing was ever tracked.
type NotPunchedInError struct {
	LastEndedAt time.Time
}

func (e *NotPunchedInError) Error() string {
	if e.LastEndedAt.IsZero() {
		return "not punched in, no sessions recorded"
	}
	return fmt.Sprintf("not punched in, last punched out at %s", e.LastEndedAt.Format(time.RFC3339))
}

// NegativeDurationError reports a punch-out time earlier than the open
// session's start. The mismatch is surfaced instead of clamped.
type NegativeDurationError struct {
	StartedAt time.Time
	At        time.Time
}

func (e *NegativeDurationError) Error() string {
	return fmt.Sprintf("punch-out at %s predates the punch-in at %s",
		e.At.Format(time.RFC3339), e.StartedAt.Format(time.RFC3339))
}

// OutOfOrderStartError reports a backdated punch-in that would slot before
// the most recent entry, breaking the log's start ordering.
type OutOfOrderStartError struct {
	PriorStartedAt time.Time
	At             time.Time
}

func (e *OutOfOrderStartError) Error() string {
	return fmt.Sprintf("punch-in at %s predates the latest recorded start %s",
		e.At.Format(time.RFC3339), e.PriorStartedAt.Format(time.RFC3339))
}

// IsUsageError reports whether err is correctable by the user issuing a
// different command, as opposed to an environment or storage failure.
func IsUsageError(err error) bool {
	var (
		already    *AlreadyPunchedInError
		notPunched *NotPunchedInError
		negative   *NegativeDurationError
		outOfOrder *OutOfOrderStartError
	)
	return errors.Is(err, ErrInvalidLabel) ||
		errors.As(err, &already) ||
		errors.As(err, &notPunched) ||
		errors.As(err, &negative) ||
		errors.As(err, &outOfOrder)
}

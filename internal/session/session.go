// Package session implements the punch state machine. Every operation is a
// pure function of a log snapshot, its arguments, and an explicit time: the
// input log is never mutated, and a failed operation returns it unchanged.
// The single-open-session invariant holds by construction.
package session

import (
	"strings"
	"time"

	"github.com/skovlund/punch/internal/model"
)

// StatusKind distinguishes the three tracking states.
type StatusKind string

const (
	// StatusEmpty means nothing has ever been tracked.
	StatusEmpty StatusKind = "empty"
	// StatusPunchedIn means a session is open right now.
	StatusPunchedIn StatusKind = "punched_in"
	// StatusPunchedOut means the most recent session is closed.
	StatusPunchedOut StatusKind = "punched_out"
)

// Status describes the current tracking state. Label, StartedAt and Elapsed
// are set when punched in; EndedAt is set when punched out.
type Status struct {
	Kind      StatusKind
	Label     string
	StartedAt time.Time
	Elapsed   time.Duration
	EndedAt   time.Time
}

// PunchIn starts tracking label at the given time by appending an open entry.
// It fails if a session is already open, if the label is empty after
// trimming, or if at predates the latest recorded start.
func PunchIn(lg model.Log, label string, at time.Time) (model.Log, model.Entry, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return lg, model.Entry{}, ErrInvalidLabel
	}
	if e, ok := lg.OpenEntry(); ok {
		return lg, model.Entry{}, &AlreadyPunchedInError{Label: e.Label, StartedAt: e.StartedAt}
	}
	if n := len(lg.Entries); n > 0 && at.Before(lg.Entries[n-1].StartedAt) {
		return lg, model.Entry{}, &OutOfOrderStartError{PriorStartedAt: lg.Entries[n-1].StartedAt, At: at}
	}
	entry := model.Entry{Label: label, StartedAt: at}
	next := lg.Clone()
	next.Entries = append(next.Entries, entry)
	return next, entry, nil
}

// PunchOut closes the open session at the given time. It fails if nothing is
// open, or if at would give the session a negative duration.
func PunchOut(lg model.Log, at time.Time) (model.Log, model.Entry, error) {
	i, ok := lg.OpenIndex()
	if !ok {
		return lg, model.Entry{}, notPunchedIn(lg)
	}
	if at.Before(lg.Entries[i].StartedAt) {
		return lg, model.Entry{}, &NegativeDurationError{StartedAt: lg.Entries[i].StartedAt, At: at}
	}
	next := lg.Clone()
	end := at
	next.Entries[i].EndedAt = &end
	return next, next.Entries[i], nil
}

// Cancel removes the open session from the log entirely, as if the punch-in
// never happened, and returns the discarded entry.
func Cancel(lg model.Log) (model.Log, model.Entry, error) {
	i, ok := lg.OpenIndex()
	if !ok {
		return lg, model.Entry{}, notPunchedIn(lg)
	}
	removed := lg.Entries[i]
	next := lg.Clone()
	// The open entry is always last.
	next.Entries = next.Entries[:i]
	return next, removed, nil
}

// CurrentStatus reports the tracking state at now. Not being punched in is a
// normal state, not an error.
func CurrentStatus(lg model.Log, now time.Time) Status {
	if e, ok := lg.OpenEntry(); ok {
		return Status{
			Kind:      StatusPunchedIn,
			Label:     e.Label,
			StartedAt: e.StartedAt,
			Elapsed:   now.Sub(e.StartedAt),
		}
	}
	if n := len(lg.Entries); n > 0 {
		return Status{Kind: StatusPunchedOut, EndedAt: *lg.Entries[n-1].EndedAt}
	}
	return Status{Kind: StatusEmpty}
}

func notPunchedIn(lg model.Log) *NotPunchedInError {
	err := &NotPunchedInError{}
	if n := len(lg.Entries); n > 0 && lg.Entries[n-1].EndedAt != nil {
		err.LastEndedAt = *lg.Entries[n-1].EndedAt
	}
	return err
}

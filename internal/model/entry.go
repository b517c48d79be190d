package model

import (
	"fmt"
	"time"
)

// Entry represents a single tracked activity span. A nil EndedAt means the
// span is still open, i.e. the activity is being tracked right now.
type Entry struct {
	Label     string     `json:"label"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
}

// Open reports whether the entry has not been punched out yet.
func (e Entry) Open() bool {
	return e.EndedAt == nil
}

// Duration returns the span covered by the entry. Open entries are measured
// against now. No rounding is applied at this level.
func (e Entry) Duration(now time.Time) time.Duration {
	if e.EndedAt != nil {
		return e.EndedAt.Sub(e.StartedAt)
	}
	return now.Sub(e.StartedAt)
}

// Log is the persisted aggregate: every entry ever recorded, in start order.
// At most one entry is open, and an open entry is always the last one, since
// closed entries never reopen and new entries only append.
type Log struct {
	Entries []Entry `json:"entries"`
}

// OpenIndex returns the position of the open entry, if any.
func (l Log) OpenIndex() (int, bool) {
	if n := len(l.Entries); n > 0 && l.Entries[n-1].Open() {
		return n - 1, true
	}
	return 0, false
}

// OpenEntry returns the open entry, if any.
func (l Log) OpenEntry() (Entry, bool) {
	if i, ok := l.OpenIndex(); ok {
		return l.Entries[i], true
	}
	return Entry{}, false
}

// Clone returns a log whose entry slice does not alias l's, so callers can
// derive a new state without mutating the snapshot they were given.
func (l Log) Clone() Log {
	if l.Entries == nil {
		return Log{}
	}
	entries := make([]Entry, len(l.Entries))
	copy(entries, l.Entries)
	return Log{Entries: entries}
}

// Validate checks the aggregate invariants. Persisted data that fails here
// is treated as corrupt rather than silently repaired.
func (l Log) Validate() error {
	last := len(l.Entries) - 1
	for i, e := range l.Entries {
		if e.Label == "" {
			return fmt.Errorf("entry %d: empty label", i)
		}
		if e.StartedAt.IsZero() {
			return fmt.Errorf("entry %d (%s): missing start time", i, e.Label)
		}
		if e.EndedAt != nil && e.EndedAt.Before(e.StartedAt) {
			return fmt.Errorf("entry %d (%s): ends at %s before it starts at %s",
				i, e.Label, e.EndedAt.Format(time.RFC3339), e.StartedAt.Format(time.RFC3339))
		}
		if e.Open() && i != last {
			return fmt.Errorf("entry %d (%s): open entry is not the last entry", i, e.Label)
		}
		if i > 0 && e.StartedAt.Before(l.Entries[i-1].StartedAt) {
			return fmt.Errorf("entry %d (%s): starts before entry %d", i, e.Label, i-1)
		}
	}
	return nil
}

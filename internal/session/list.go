package session

import (
	"iter"
	"strings"
	"time"

	"github.com/skovlund/punch/internal/model"
)

// Filter narrows List and TotalDuration to matching entries. The zero value
// matches everything.
type Filter struct {
	Label string    // substring of the entry label; empty matches all
	Since time.Time // keep entries whose span ends at or after this; zero is unbounded
	Until time.Time // keep entries whose span starts at or before this; zero is unbounded
}

func (f Filter) matches(e model.Entry, now time.Time) bool {
	if f.Label != "" && !strings.Contains(e.Label, f.Label) {
		return false
	}
	end := now
	if e.EndedAt != nil {
		end = *e.EndedAt
	}
	if !f.Since.IsZero() && end.Before(f.Since) {
		return false
	}
	if !f.Until.IsZero() && e.StartedAt.After(f.Until) {
		return false
	}
	return true
}

// ListedEntry pairs an entry with its duration as of the listing time.
type ListedEntry struct {
	Entry    model.Entry
	Duration time.Duration
	Ongoing  bool
}

// List returns a lazy, restartable sequence of the entries matching f, in
// start order. Closed entries carry their recorded duration; the open entry,
// when it matches, comes last with Ongoing set and its duration measured
// against now.
func List(lg model.Log, f Filter, now time.Time) iter.Seq[ListedEntry] {
	return func(yield func(ListedEntry) bool) {
		for _, e := range lg.Entries {
			if !f.matches(e, now) {
				continue
			}
			le := ListedEntry{Entry: e, Duration: e.Duration(now), Ongoing: e.Open()}
			if !yield(le) {
				return
			}
		}
	}
}

// TotalDuration sums the durations of the entries List(lg, f, now) yields;
// an ongoing entry contributes its elapsed time so far.
func TotalDuration(lg model.Log, f Filter, now time.Time) time.Duration {
	var total time.Duration
	for le := range List(lg, f, now) {
		total += le.Duration
	}
	return total
}

package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func closed(label string, start time.Time, d time.Duration) Entry {
	end := start.Add(d)
	return Entry{Label: label, StartedAt: start, EndedAt: &end}
}

func open(label string, start time.Time) Entry {
	return Entry{Label: label, StartedAt: start}
}

func TestEntryOpen(t *testing.T) {
	assert.True(t, open("writing", t0).Open())
	assert.False(t, closed("writing", t0, time.Hour).Open())
}

func TestEntryDuration_Closed(t *testing.T) {
	e := closed("writing", t0, 90*time.Minute)
	// now must not influence a closed entry
	assert.Equal(t, 90*time.Minute, e.Duration(t0.Add(5*time.Hour)))
}

func TestEntryDuration_Open(t *testing.T) {
	e := open("writing", t0)
	assert.Equal(t, 42*time.Second, e.Duration(t0.Add(42*time.Second)))
}

func TestLogOpenEntry(t *testing.T) {
	var empty Log
	_, ok := empty.OpenEntry()
	assert.False(t, ok)

	allClosed := Log{Entries: []Entry{closed("a", t0, time.Hour)}}
	_, ok = allClosed.OpenEntry()
	assert.False(t, ok)

	withOpen := Log{Entries: []Entry{
		closed("a", t0, time.Hour),
		open("b", t0.Add(2*time.Hour)),
	}}
	e, ok := withOpen.OpenEntry()
	require.True(t, ok)
	assert.Equal(t, "b", e.Label)

	i, ok := withOpen.OpenIndex()
	require.True(t, ok)
	assert.Equal(t, 1, i)
}

func TestLogClone_DoesNotAlias(t *testing.T) {
	orig := Log{Entries: []Entry{closed("a", t0, time.Hour)}}
	cp := orig.Clone()
	cp.Entries[0].Label = "changed"
	assert.Equal(t, "a", orig.Entries[0].Label)
}

func TestLogClone_Empty(t *testing.T) {
	var empty Log
	assert.Nil(t, empty.Clone().Entries)
}

func TestLogValidate(t *testing.T) {
	end := t0.Add(time.Hour)
	beforeStart := t0.Add(-time.Minute)

	cases := []struct {
		name    string
		log     Log
		wantErr string
	}{
		{"empty log", Log{}, ""},
		{"closed then open", Log{Entries: []Entry{
			closed("a", t0, time.Hour),
			open("b", t0.Add(2*time.Hour)),
		}}, ""},
		{"equal start times", Log{Entries: []Entry{
			closed("a", t0, 0),
			open("b", t0),
		}}, ""},
		{"empty label", Log{Entries: []Entry{open("", t0)}}, "empty label"},
		{"zero start", Log{Entries: []Entry{{Label: "a"}}}, "missing start time"},
		{"ends before start", Log{Entries: []Entry{
			{Label: "a", StartedAt: end, EndedAt: &beforeStart},
		}}, "before it starts"},
		{"open entry not last", Log{Entries: []Entry{
			open("a", t0),
			closed("b", t0.Add(time.Hour), time.Hour),
		}}, "not the last entry"},
		{"out of order starts", Log{Entries: []Entry{
			closed("a", t0.Add(time.Hour), time.Hour),
			closed("b", t0, time.Hour),
		}}, "starts before entry"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.log.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

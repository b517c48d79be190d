package timecalc_test

import (
	"testing"
	"time"

	"github.com/skovlund/punch/internal/timecalc"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0s"},
		{45, "45s"},
		{60, "1m"},
		{90, "1m"},
		{3600, "1h 0m"},
		{3661, "1h 1m"},
		{5400, "1h 30m"},
	}
	for _, tt := range tests {
		got := timecalc.FormatDuration(tt.seconds)
		if got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0s"},
		{42, "42s"},
		{61, "1m 1s"},
		{1500, "25m 0s"},
		{3725, "1h 2m 5s"},
		{5025, "1h 23m 45s"},
		{28800, "8h 0m 0s"},
	}
	for _, tt := range tests {
		got := timecalc.FormatElapsed(tt.seconds)
		if got != tt.want {
			t.Errorf("FormatElapsed(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatDurationHHMMSS(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "00:00:00"},
		{61, "00:01:01"},
		{3661, "01:01:01"},
	}
	for _, tt := range tests {
		got := timecalc.FormatDurationHHMMSS(tt.seconds)
		if got != tt.want {
			t.Errorf("FormatDurationHHMMSS(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestWeekRange(t *testing.T) {
	// 2026-02-27 is a Friday (week 9).
	fri := time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC)
	monday, sunday := timecalc.WeekRange(fri)

	wantMonday := time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC)
	wantSunday := time.Date(2026, 3, 1, 23, 59, 59, 0, time.UTC)

	if !monday.Equal(wantMonday) {
		t.Errorf("WeekRange monday = %v, want %v", monday, wantMonday)
	}
	if !sunday.Equal(wantSunday) {
		t.Errorf("WeekRange sunday = %v, want %v", sunday, wantSunday)
	}
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		in        time.Time
		wantFirst time.Time
		wantLast  time.Time
	}{
		{
			time.Date(2026, 2, 15, 10, 0, 0, 0, time.UTC),
			time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC),
		},
		{
			time.Date(2026, 12, 10, 10, 0, 0, 0, time.UTC),
			time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		first, last := timecalc.MonthRange(tt.in)
		if !first.Equal(tt.wantFirst) {
			t.Errorf("MonthRange(%v) first = %v, want %v", tt.in, first, tt.wantFirst)
		}
		if !last.Equal(tt.wantLast) {
			t.Errorf("MonthRange(%v) last = %v, want %v", tt.in, last, tt.wantLast)
		}
	}
}

func TestISOWeekLabel(t *testing.T) {
	fri := time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC)
	got := timecalc.ISOWeekLabel(fri)
	if got != "2026-W09" {
		t.Errorf("ISOWeekLabel = %q, want %q", got, "2026-W09")
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC)
	b := time.Date(2026, 2, 27, 23, 59, 59, 0, time.UTC)
	c := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	if !timecalc.SameDay(a, b) {
		t.Error("SameDay: expected same day for a and b")
	}
	if timecalc.SameDay(a, c) {
		t.Error("SameDay: expected different day for a and c")
	}
}

func TestParseDate(t *testing.T) {
	got, err := timecalc.ParseDate("2026-03-02")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	want := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}

	if _, err := timecalc.ParseDate("02.03.2026"); err == nil {
		t.Error("ParseDate: expected error for non-ISO date")
	}
}

func TestParseTime(t *testing.T) {
	ref := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2026-03-02T09:30:00Z", time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)},
		{"2026-03-02 09:30:15", time.Date(2026, 3, 2, 9, 30, 15, 0, time.UTC)},
		{"2026-03-02 09:30", time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)},
		{"09:30", time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := timecalc.ParseTime(tt.in, ref)
		if err != nil {
			t.Errorf("ParseTime(%q): %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseTime(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := timecalc.ParseTime("half past nine", ref); err == nil {
		t.Error("ParseTime: expected error for unparseable input")
	}
}

package cmd

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/skovlund/punch/internal/timecalc"
)

// timeValue parses point-in-time flags like --at. Accepted forms are
// RFC3339, "2006-01-02 15:04" and a bare clock time placed on today.
type timeValue struct {
	t *time.Time
}

var _ pflag.Value = (*timeValue)(nil)

func newTimeValue(p *time.Time) *timeValue { return &timeValue{t: p} }

func (v *timeValue) String() string {
	if v.t == nil || v.t.IsZero() {
		return ""
	}
	return v.t.Format(time.RFC3339)
}

func (v *timeValue) Set(s string) error {
	t, err := timecalc.ParseTime(s, time.Now())
	if err != nil {
		return err
	}
	*v.t = t
	return nil
}

func (v *timeValue) Type() string { return "time" }

// dateValue parses calendar-date flags like --since and --until.
type dateValue struct {
	t *time.Time
}

var _ pflag.Value = (*dateValue)(nil)

func newDateValue(p *time.Time) *dateValue { return &dateValue{t: p} }

func (v *dateValue) String() string {
	if v.t == nil || v.t.IsZero() {
		return ""
	}
	return v.t.Format("2006-01-02")
}

func (v *dateValue) Set(s string) error {
	t, err := timecalc.ParseDate(s)
	if err != nil {
		return err
	}
	*v.t = t
	return nil
}

func (v *dateValue) Type() string { return "date" }

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/skovlund/punch/internal/session"
	"github.com/skovlund/punch/internal/timecalc"
)

var (
	listLabel string
	listSince time.Time
	listUntil time.Time
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked entries",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listLabel, "label", "", "Only entries whose label contains this substring")
	listCmd.Flags().Var(newDateValue(&listSince), "since", "Only entries overlapping this day or later (YYYY-MM-DD)")
	listCmd.Flags().Var(newDateValue(&listUntil), "until", "Only entries overlapping this day or earlier (YYYY-MM-DD)")
}

func runList(cmd *cobra.Command, args []string) error {
	now := time.Now()

	lg, err := openStore().Load()
	if err != nil {
		return err
	}

	f := session.Filter{Label: listLabel, Since: listSince}
	if !listUntil.IsZero() {
		// An --until day is inclusive: filter through its last second.
		f.Until = timecalc.EndOfDay(listUntil)
	}

	var day time.Time
	count := 0
	for le := range session.List(lg, f, now) {
		count++
		if day.IsZero() || !timecalc.SameDay(day, le.Entry.StartedAt) {
			day = le.Entry.StartedAt
			fmt.Println(render(styleHeader, day.Format("2006-01-02")))
		}

		startStr := le.Entry.StartedAt.Format("15:04")
		endStr := render(styleRunning, "ongoing")
		if !le.Ongoing {
			endStr = le.Entry.EndedAt.Format("15:04")
		}
		dur := timecalc.FormatDuration(int64(le.Duration.Seconds()))
		fmt.Printf("%s–%s  %s %s\n", startStr, endStr, le.Entry.Label, render(styleDim, "("+dur+")"))
	}

	if count == 0 {
		fmt.Println("No entries found.")
		return nil
	}

	total := session.TotalDuration(lg, f, now)
	fmt.Printf("Total: %s\n", timecalc.FormatDuration(int64(total.Seconds())))
	return nil
}

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/skovlund/punch/internal/session"
	"github.com/skovlund/punch/internal/timecalc"
)

var outAt time.Time

var outCmd = &cobra.Command{
	Use:   "out",
	Short: "Punch out: stop the open activity",
	Args:  cobra.NoArgs,
	RunE:  runOut,
}

func init() {
	outCmd.Flags().Var(newTimeValue(&outAt), "at", `Punch out at this time instead of now (e.g. "17:30")`)
}

func runOut(cmd *cobra.Command, args []string) error {
	at := time.Now()
	if !outAt.IsZero() {
		at = outAt
	}

	store := openStore()
	lg, err := store.Load()
	if err != nil {
		return err
	}

	next, entry, err := session.PunchOut(lg, at)
	if err != nil {
		return err
	}
	if err := store.Save(next); err != nil {
		return err
	}

	elapsed := int64(entry.Duration(at).Seconds())
	fmt.Printf("Punched out of %q. Elapsed: %s\n", entry.Label, timecalc.FormatElapsed(elapsed))
	return nil
}

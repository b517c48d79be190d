package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/skovlund/punch/internal/session"
)

var inAt time.Time

var inCmd = &cobra.Command{
	Use:   "in <label>",
	Short: "Punch in: start tracking an activity",
	Args:  cobra.ExactArgs(1),
	RunE:  runIn,
}

func init() {
	inCmd.Flags().Var(newTimeValue(&inAt), "at", `Punch in at this time instead of now (e.g. "09:15")`)
}

func runIn(cmd *cobra.Command, args []string) error {
	at := time.Now()
	if !inAt.IsZero() {
		at = inAt
	}

	store := openStore()
	lg, err := store.Load()
	if err != nil {
		return err
	}

	next, entry, err := session.PunchIn(lg, args[0], at)
	if err != nil {
		return err
	}
	if err := store.Save(next); err != nil {
		return err
	}

	fmt.Printf("Punched in on %q at %s\n", entry.Label, entry.StartedAt.Format("15:04:05"))
	return nil
}

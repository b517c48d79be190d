package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/skovlund/punch/internal/session"
	"github.com/skovlund/punch/internal/timecalc"
)

var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Discard the open activity without recording it",
	Args:  cobra.NoArgs,
	RunE:  runCancel,
}

func runCancel(cmd *cobra.Command, args []string) error {
	now := time.Now()

	store := openStore()
	lg, err := store.Load()
	if err != nil {
		return err
	}

	next, dropped, err := session.Cancel(lg)
	if err != nil {
		return err
	}
	if err := store.Save(next); err != nil {
		return err
	}

	elapsed := int64(dropped.Duration(now).Seconds())
	fmt.Printf("Cancelled %q started at %s (%s discarded)\n",
		dropped.Label, dropped.StartedAt.Format("15:04"), timecalc.FormatElapsed(elapsed))
	return nil
}

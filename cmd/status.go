package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/skovlund/punch/internal/session"
	"github.com/skovlund/punch/internal/timecalc"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether you are punched in",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	now := time.Now()

	lg, err := openStore().Load()
	if err != nil {
		return err
	}

	stat := session.CurrentStatus(lg, now)
	switch stat.Kind {
	case session.StatusPunchedIn:
		fmt.Println(render(styleRunning, "Punched in:"))
		fmt.Printf("  Label: %s\n", render(styleLabel, stat.Label))
		fmt.Printf("  Since: %s\n", stat.StartedAt.Format("15:04"))
		fmt.Printf("  Elapsed: %s\n", timecalc.FormatDurationHHMMSS(int64(stat.Elapsed.Seconds())))
	case session.StatusPunchedOut:
		fmt.Println(render(styleIdle, "Punched out."))
		fmt.Printf("  Last punch out: %s\n", stat.EndedAt.Format("2006-01-02 15:04"))
		today := session.TotalDuration(lg, session.Filter{
			Since: timecalc.StartOfDay(now),
			Until: timecalc.EndOfDay(now),
		}, now)
		fmt.Printf("  Today: %s logged.\n", timecalc.FormatDuration(int64(today.Seconds())))
	default:
		fmt.Println("Nothing tracked yet.")
	}
	return nil
}

package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/skovlund/punch/internal/session"
	"github.com/skovlund/punch/internal/timecalc"
)

var (
	reportPeriod string
	reportFormat string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show aggregated time per label",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportPeriod, "period", "week", "Reporting period: today, week, month")
	reportCmd.Flags().StringVar(&reportFormat, "format", "md", "Output format: md, csv, json")
}

func runReport(cmd *cobra.Command, args []string) error {
	now := time.Now()

	var from, to time.Time
	var periodLabel string
	switch reportPeriod {
	case "today":
		from, to = timecalc.StartOfDay(now), timecalc.EndOfDay(now)
		periodLabel = now.Format("2006-01-02")
	case "week":
		from, to = timecalc.WeekRange(now)
		periodLabel = timecalc.ISOWeekLabel(now)
	case "month":
		from, to = timecalc.MonthRange(now)
		periodLabel = now.Format("2006-01")
	default:
		return fmt.Errorf("unknown period %q (use today, week or month)", reportPeriod)
	}

	lg, err := openStore().Load()
	if err != nil {
		return err
	}

	// Aggregate by label. An ongoing entry contributes its elapsed time.
	totals := map[string]time.Duration{}
	var order []string
	for le := range session.List(lg, session.Filter{Since: from, Until: to}, now) {
		if _, seen := totals[le.Entry.Label]; !seen {
			order = append(order, le.Entry.Label)
		}
		totals[le.Entry.Label] += le.Duration
	}
	sort.Strings(order)

	var grand time.Duration
	for _, d := range totals {
		grand += d
	}

	switch reportFormat {
	case "csv":
		fmt.Println("label,duration_minutes")
		for _, l := range order {
			fmt.Printf("%s,%d\n", csvEscape(l), int64(totals[l]/time.Minute))
		}
	case "json":
		return printReportJSON(periodLabel, order, totals, grand)
	case "md":
		fmt.Printf("Report %s\n", periodLabel)
		fmt.Println("--------------------------------")
		for _, l := range order {
			fmt.Printf("%-20s%s\n", l, timecalc.FormatDuration(int64(totals[l].Seconds())))
		}
		fmt.Println("--------------------------------")
		fmt.Printf("%-20s%s\n", "Total", timecalc.FormatDuration(int64(grand.Seconds())))
	default:
		return fmt.Errorf("unknown format %q (use md, csv or json)", reportFormat)
	}

	return nil
}

func printReportJSON(period string, order []string, totals map[string]time.Duration, grand time.Duration) error {
	type row struct {
		Label           string `json:"label"`
		DurationMinutes int64  `json:"duration_minutes"`
	}
	payload := struct {
		Period       string `json:"period"`
		Labels       []row  `json:"labels"`
		TotalMinutes int64  `json:"total_minutes"`
	}{Period: period, Labels: []row{}, TotalMinutes: int64(grand / time.Minute)}
	for _, l := range order {
		payload.Labels = append(payload.Labels, row{Label: l, DurationMinutes: int64(totals[l] / time.Minute)})
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

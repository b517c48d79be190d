package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/skovlund/punch/internal/model"
	"github.com/skovlund/punch/internal/session"
	"github.com/skovlund/punch/internal/timecalc"
)

var (
	exportFormat string
	exportLabel  string
	exportSince  time.Time
	exportUntil  time.Time
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export entries to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json")
	exportCmd.Flags().StringVar(&exportLabel, "label", "", "Only entries whose label contains this substring")
	exportCmd.Flags().Var(newDateValue(&exportSince), "since", "Only entries overlapping this day or later (YYYY-MM-DD)")
	exportCmd.Flags().Var(newDateValue(&exportUntil), "until", "Only entries overlapping this day or earlier (YYYY-MM-DD)")
}

func runExport(cmd *cobra.Command, args []string) error {
	lg, err := openStore().Load()
	if err != nil {
		return err
	}

	f := session.Filter{Label: exportLabel, Since: exportSince}
	if !exportUntil.IsZero() {
		f.Until = timecalc.EndOfDay(exportUntil)
	}

	entries := make([]model.Entry, 0, len(lg.Entries))
	for le := range session.List(lg, f, time.Now()) {
		entries = append(entries, le.Entry)
	}

	switch exportFormat {
	case "json":
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "csv":
		printCSV(entries)
	default:
		return fmt.Errorf("unknown format %q (use csv or json)", exportFormat)
	}

	return nil
}

func printCSV(entries []model.Entry) {
	fmt.Println("label,started_at,ended_at,duration_seconds")
	for _, e := range entries {
		endStr, durStr := "", ""
		if e.EndedAt != nil {
			endStr = e.EndedAt.Format(time.RFC3339)
			durStr = fmt.Sprintf("%d", int64(e.EndedAt.Sub(e.StartedAt)/time.Second))
		}
		fmt.Printf("%s,%s,%s,%s\n",
			csvEscape(e.Label),
			csvEscape(e.StartedAt.Format(time.RFC3339)),
			csvEscape(endStr),
			durStr,
		)
	}
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	needsQuote := false
	for _, c := range s {
		if c == ',' || c == '"' || c == '\n' || c == '\r' {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return s
	}
	// Escape internal double quotes by doubling them.
	escaped := ""
	for _, c := range s {
		if c == '"' {
			escaped += "\""
		}
		escaped += string(c)
	}
	return `"` + escaped + `"`
}

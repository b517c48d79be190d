package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/skovlund/punch/internal/config"
	"github.com/skovlund/punch/internal/session"
	"github.com/skovlund/punch/internal/storage"
)

var (
	verbose   bool
	colorFlag string

	cfg       config.Config
	sheetPath string
)

var rootCmd = &cobra.Command{
	Use:   "punch",
	Short: "punch – a minimal punch-clock time tracker",
	Long: `punch is a single-binary, file-based punch clock.
All entries live in one human-readable JSON sheet in ~/.punchclock/.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initRun()
	},
}

// Execute is the entry point called from main. Mistakes in how the tool is
// used (punching in twice, bad flags) exit with 1; a sheet that cannot be
// read or written exits with 2.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case session.IsUsageError(err):
		return 1
	case storage.IsIO(err) || storage.IsCorrupt(err):
		return 2
	default:
		return 1
	}
}

// initRun wires logging, config and the sheet location before any command runs.
func initRun() error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	var err error
	cfg, err = config.Load()
	if err != nil {
		slog.Warn("falling back to default configuration", "error", err)
	}

	sheetPath, err = resolveSheetPath(cfg)
	if err != nil {
		return err
	}
	slog.Debug("resolved sheet location", "path", sheetPath)
	return nil
}

// resolveSheetPath picks the sheet location: the PUNCH_SHEET environment
// variable beats the config file, which beats the built-in default.
func resolveSheetPath(cfg config.Config) (string, error) {
	if p := os.Getenv("PUNCH_SHEET"); p != "" {
		return p, nil
	}
	if cfg.DataFile != "" {
		return cfg.DataFile, nil
	}
	return storage.DefaultPath()
}

// openStore returns a store for the resolved sheet location.
func openStore() *storage.Store {
	return storage.New(sheetPath)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", `Colored output: "auto", "always" or "never"`)

	rootCmd.AddCommand(inCmd)
	rootCmd.AddCommand(outCmd)
	rootCmd.AddCommand(cancelCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
}

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"pastebin-crawler/lib/telemetry"

	"github.com/spf13/cobra"
)

var verbosity int

var rootCmd = &cobra.Command{
	Use:   "pastebin-cli",
	Short: "pastebin-cli is a CLI for crawling the public pastebin archive.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(logLevel(verbosity))
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(
		&verbosity, "verbose", "v",
		"Increase logging verbosity (use -vv for debug logging).",
	)
}

func logLevel(verbosity int) slog.Level {
	switch {
	case verbosity >= 2:
		return slog.LevelDebug
	case verbosity == 1:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

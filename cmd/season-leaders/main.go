// Command season-leaders is an interactive explorer for the top goal scorers
// and assistants of a football season.
//
// Usage:
//
//	season-leaders
//	season-leaders --env-file prod.env --log-level debug
//	season-leaders version
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/season-leaders/internal/app"
	"github.com/riskibarqy/season-leaders/internal/config"
	"github.com/riskibarqy/season-leaders/internal/observability"
	"github.com/riskibarqy/season-leaders/internal/platform/logging"
	"github.com/riskibarqy/season-leaders/internal/usecase"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	os.Exit(exitCode(err, os.Stderr))
}

func newRootCmd() *cobra.Command {
	var (
		envFile  string
		logLevel string
	)

	root := &cobra.Command{
		Use:           "season-leaders",
		Short:         "Explore the top goal scorers and assistants of a season",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// A missing file is fine; the environment may already be set.
			_ = godotenv.Load(envFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWizard(cmd.Context(), logLevel, cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	root.Flags().StringVar(&logLevel, "log-level", "", "override APP_LOG_LEVEL (debug|info|warn|error)")

	root.AddCommand(versionCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

func runWizard(ctx context.Context, logLevel string, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if logLevel != "" {
		cfg.LogLevel = config.ParseLogLevel(logLevel)
	}

	logger := app.NewLogger(cfg, stderr)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownTracing, err := observability.InitTracing(cfg, logger)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("tracing shutdown failed", "error", err)
		}
	}()

	logger.Info("season leaders starting", "version", version, "environment", cfg.AppEnv)
	return app.NewSelectionService(cfg, logger, app.Streams{}).Run(ctx)
}

// exitCode maps the command result to a process exit status. A user abort
// is a clean exit.
func exitCode(err error, stderr io.Writer) int {
	if err == nil || crerr.Is(err, usecase.ErrAborted) {
		return 0
	}

	logging.Default().Error("season leaders failed", "error", err)
	_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
	return 1
}

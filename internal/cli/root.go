package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/steliosvliaros/setup-ptoject-ps/internal/branding"
	"github.com/steliosvliaros/setup-ptoject-ps/internal/logging"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	rootLogLevel string
	rootNoColor  bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates ready-to-work Python data science project
scaffolds at three completeness tiers (minimal, core, full), plus custom tiers
loaded from preset files. Re-running against an existing project fills in what
is missing and leaves edited files alone.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logging.ParseLevel(rootLogLevel)
		logger := logging.NewLogger(os.Stderr, level, rootNoColor)
		cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))
		logger.Debug("logger initialized", "level", rootLogLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&rootNoColor, "no-color", false, "Disable colored log output")
}

// loggerKey is a private context key used to store a logger in command contexts.
type loggerKey struct{}

// loggerFromContext extracts the run logger from the context or falls back to
// a default one.
func loggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return logging.NewLogger(os.Stderr, logging.LevelInfo, false)
	}
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return logging.NewLogger(os.Stderr, logging.LevelInfo, false)
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

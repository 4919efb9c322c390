package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/camera-sentinel/internal/config"
	"github.com/oshokin/camera-sentinel/internal/logger"
	"github.com/oshokin/camera-sentinel/internal/service/sentinel"
	"github.com/oshokin/camera-sentinel/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// generatePath, when set, receives a template configuration file.
	generatePath string
	// verbose raises the log level to debug.
	verbose bool

	// rootCmd represents the base command performing one monitoring pass.
	rootCmd = &cobra.Command{
		Use:   "camera-sentinel",
		Short: "Check camera mode against a schedule and email on mismatch.",
		Long: `Run-once monitor for a security-camera service.

Parses a named time-of-day schedule from the configuration file, determines
which entry is active right now, observes the current mode of every camera
base station and emails the configured recipients when an observed mode
deviates from the expected one.

The pass is stateless: run it periodically from cron or a systemd timer.
A clean pass exits 0; a configuration error, an instant outside every
schedule interval, or a camera/SMTP transport failure aborts with a
non-zero exit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			if verbose {
				logger.SetLevel(zapcore.DebugLevel)
			}

			// Write a template settings file and exit when requested.
			if generatePath != "" {
				if err := config.Save(generatePath, config.Template()); err != nil {
					return err
				}

				logger.Infof(ctx, "Template configuration written to %s", generatePath)

				return nil
			}

			// Pick up credentials from a .env file when one is present.
			_ = godotenv.Load()

			options := &sentinel.Options{
				ConfigPath: configPath,
			}

			return sentinel.Run(ctx, options)
		},
	}
)

// Execute runs the camera-sentinel CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Errorf(context.Background(), "Run failed: %v", err)
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&generatePath, "generate", "g", "", "write a template configuration file and exit")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose logs")
}

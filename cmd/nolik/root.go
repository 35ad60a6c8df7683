package main

import (
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/w3f-grants-archive/nolik-cli/internal/logger"
	"github.com/w3f-grants-archive/nolik-cli/internal/metrics"
	"github.com/w3f-grants-archive/nolik-cli/pkg/version"
)

var keystoreDir string

var rootCmd = &cobra.Command{
	Use:               "nolik",
	Short:             "nolik is a CLI for end-to-end encrypted multi-recipient messaging over a content-addressed store and a permissioned ledger",
	Version:           version.Short(),
	PersistentPreRunE: setupObservability,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&keystoreDir, "keystore", "./keystore", "directory holding the local account/wallet keystore")
}

// setupObservability configures the default logger's level from the
// loaded config and, if Metrics.Enabled, starts the Prometheus
// /metrics endpoint in the background before the invoked subcommand
// runs. It runs once per process invocation, ahead of every subcommand.
func setupObservability(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger.GetDefaultLogger().SetLevel(logLevelFor(cfg.Logging.Level))

	if cfg.Metrics.Enabled {
		addr := cfg.Metrics.Addr
		go func() {
			if err := metrics.StartServer(addr); err != nil && err != http.ErrServerClosed {
				logger.ErrorMsg("metrics server stopped", logger.Error(err))
			}
		}()
		logger.Info("metrics server listening", logger.String("addr", addr))
	}

	return nil
}

func logLevelFor(level string) logger.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

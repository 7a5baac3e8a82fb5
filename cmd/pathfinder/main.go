package main

import (
	"fmt"
	"os"

	"gaia-pathfinder/internal/application/port/output"
	"gaia-pathfinder/internal/infrastructure/config"
	"gaia-pathfinder/internal/infrastructure/env"
	"gaia-pathfinder/internal/infrastructure/logger"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "pathfinder",
	Short:         "pathfinder - question answering agent over OpenRouter or Ollama",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var logLevelFlag string

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override LOG_LEVEL (debug, info, warn, error)")
	rootCmd.AddCommand(serveCmd, askCmd, toolCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func loadSettings() config.Settings {
	settings := config.Load(env.NewEnvService())
	if logLevelFlag != "" {
		settings.LogLevel = logLevelFlag
	}
	return settings
}

func newLogger(settings config.Settings) (output.LoggerPort, error) {
	log, err := logger.NewLoggerAdapter(settings.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, nil
}

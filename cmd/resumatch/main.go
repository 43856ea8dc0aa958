// Package main provides the resumatch command-line interface.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jonathan/resumatch/internal/config"
	"github.com/jonathan/resumatch/internal/observability"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "resumatch",
	Short: "Offline keyword match between a job description and a résumé",
	Long: "Resumatch scores how well a résumé covers a job description using TF-IDF term weights, " +
		"fixed hard- and soft-skill catalogs and keyword gap analysis. Everything runs locally and deterministically.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

var (
	configPath string
	verbose    bool

	// appConfig and logger are set by setup before any command runs.
	appConfig *config.Config
	logger    = zap.NewNop()
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML or JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print a summary box and debug logs to stderr")
}

// setup loads the configuration and builds the logger.
func setup(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg := loaded.MergeWithDefaults(config.Default())
	if verbose {
		cfg.Verbose = true
	}

	level := cfg.Logging.Level
	if cfg.Verbose {
		level = "debug"
	}
	l, err := observability.NewLogger(level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	appConfig = &cfg
	logger = l
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

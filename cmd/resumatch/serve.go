package main

import (
	"fmt"

	"github.com/jonathan/resumatch/internal/analysis"
	"github.com/jonathan/resumatch/internal/db"
	"github.com/jonathan/resumatch/internal/observability"
	"github.com/jonathan/resumatch/internal/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server exposing /analyze, /analyze/batch, /skills, /health and /metrics.
When DATABASE_URL is set, account (/auth/*) and saved draft (/me/*) routes are enabled too.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := *appConfig
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	store, closeCache := openCache(ctx, &cfg)
	defer closeCache()

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
	opts := server.Options{
		Config:  &cfg,
		Service: analysis.NewService(analysis.ServiceConfig{Cache: store, Logger: logger, Metrics: metrics}),
		Logger:  logger,
		Metrics: metrics,
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		if err := database.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		logger.Info("database ready", zap.Strings("migrations", db.Migrations()))
		opts.Store = database
	}

	srv, err := server.New(opts)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	return srv.Start(ctx)
}

package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-agent/internal/config"
	"github.com/jonathan/job-agent/internal/db"
	"github.com/jonathan/job-agent/internal/importer"
	"github.com/jonathan/job-agent/internal/logger"
	"github.com/jonathan/job-agent/internal/scheduler"
	"github.com/jonathan/job-agent/internal/server"
	"github.com/jonathan/job-agent/internal/session"
	"github.com/jonathan/job-agent/internal/source"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the job search, matching, and generation endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.Init(ctx); err != nil {
		return err
	}

	redisClient, err := session.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer func() { _ = redisClient.Close() }()
	sessions := session.NewStore(redisClient, cfg.SessionTTL)

	feedClient := &http.Client{Timeout: cfg.FeedTimeout}
	aggregator := source.NewAggregator(log, source.DefaultFetchers(feedClient, log)...)
	imp := importer.New(database, aggregator, log)

	sched := scheduler.New(imp, database.CountJobs, cfg.ImportCron, log)
	if err := sched.Start(ctx); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer sched.Stop()

	srv, err := server.New(cfg, database, sessions, imp, log)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

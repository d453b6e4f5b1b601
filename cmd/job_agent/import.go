package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-agent/internal/config"
	"github.com/jonathan/job-agent/internal/db"
	"github.com/jonathan/job-agent/internal/importer"
	"github.com/jonathan/job-agent/internal/logger"
	"github.com/jonathan/job-agent/internal/source"
)

var importTimeout int

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Fetch jobs from the external feeds once and exit",
	Long:  `Run a single feed aggregation pass: fetch every configured source, merge and deduplicate the results, and upsert them into the catalogue.`,
	RunE:  runImportOnce,
}

func init() {
	importCmd.Flags().IntVar(&importTimeout, "timeout", 120, "Overall import timeout in seconds")
	rootCmd.AddCommand(importCmd)
}

func runImportOnce(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(importTimeout)*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.Init(ctx); err != nil {
		return err
	}

	feedClient := &http.Client{Timeout: cfg.FeedTimeout}
	aggregator := source.NewAggregator(log, source.DefaultFetchers(feedClient, log)...)

	imported, total, err := importer.New(database, aggregator, log).ImportJobs(ctx)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("Imported %d new jobs out of %d found\n", imported, total)
	return nil
}

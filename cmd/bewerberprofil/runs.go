package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lukas/bewerberprofil/internal/db"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent extraction runs stored in the database",
	RunE:  runListRuns,
}

var showRunCmd = &cobra.Command{
	Use:   "show-run",
	Short: "Print the stored candidate profile of an extraction run",
	RunE:  runShowRun,
}

var (
	runsDatabaseURL string
	runsLimit       int
	showRunID       string
	showDatabaseURL string
)

func init() {
	runsCmd.Flags().StringVar(&runsDatabaseURL, "db-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL env var)")
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "Maximum number of runs to list")

	showRunCmd.Flags().StringVar(&showRunID, "run-id", "", "Run ID to show (required)")
	showRunCmd.Flags().StringVar(&showDatabaseURL, "db-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL env var)")
	_ = showRunCmd.MarkFlagRequired("run-id")

	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(showRunCmd)
}

func resolveDatabaseURL(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url, nil
	}
	return "", fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
}

func runListRuns(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	databaseURL, err := resolveDatabaseURL(runsDatabaseURL)
	if err != nil {
		return err
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(ctx, runsLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "No extraction runs found.")
		return nil
	}

	for _, run := range runs {
		_, _ = fmt.Fprintf(os.Stdout, "%s  %-10s %-8s %s  %s\n",
			run.ID, run.Status, run.Provider, run.CreatedAt.Format("2006-01-02 15:04"), run.SourceName)
	}
	return nil
}

func runShowRun(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	runID, err := uuid.Parse(showRunID)
	if err != nil {
		return fmt.Errorf("invalid run-id: %w", err)
	}

	databaseURL, err := resolveDatabaseURL(showDatabaseURL)
	if err != nil {
		return err
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	run, err := database.GetRun(ctx, runID)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("run not found: %s", runID)
	}

	profile, err := database.GetProfileByRunID(ctx, runID)
	if err != nil {
		return err
	}
	if profile == nil {
		return fmt.Errorf("no profile stored for run %s", runID)
	}

	jsonBytes, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
	return nil
}

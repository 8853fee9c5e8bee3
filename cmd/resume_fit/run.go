package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-fit/internal/db"
	"github.com/jonathan/resume-fit/internal/ingestion"
	"github.com/jonathan/resume-fit/internal/observability"
	"github.com/jonathan/resume-fit/internal/pipeline"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		candidatePath string
		title         string
		company       string
		databaseURL   string
		outputFile    string
		verbose       bool
	)

	cmd := &cobra.Command{
		Use:   "run <posting-file>",
		Short: "Run analyze, customize and score end-to-end for one posting",
		Long: `Run the full pipeline for one posting: analyze -> customize -> score.

With --db (or database_url in the config) the run and its artifacts are
recorded in PostgreSQL (postgres://...) or SQLite (sqlite://path).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			text, metadata, err := ingestion.IngestFromFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to ingest posting: %w", err)
			}
			if title == "" {
				title = metadata.Title
			}

			candidate, err := a.candidate(candidatePath)
			if err != nil {
				return err
			}

			tracker, closeTracker, err := a.openTracker(ctx, databaseURL)
			if err != nil {
				return err
			}
			defer closeTracker()

			runner := pipeline.NewRunner(tracker, a.log)
			if verbose {
				out := cmd.ErrOrStderr()
				runner.OnProgress = func(event pipeline.ProgressEvent) {
					_, _ = fmt.Fprintf(out, "[%s] %s\n", event.Step, event.Message)
				}
			}

			result, err := runner.Run(ctx, pipeline.Posting{Title: title, Company: company, Text: text}, candidate)
			if err != nil {
				return err
			}

			if verbose {
				printer := observability.NewPrinter(cmd.ErrOrStderr())
				printer.PrintJobProfile(result.JobProfile)
				printer.PrintDocument(result.Document)
				printer.PrintScoreReport(result.ScoreReport)
			}
			return writeJSON(cmd.OutOrStdout(), outputFile, result)
		},
	}

	cmd.Flags().StringVarP(&candidatePath, "candidate", "c", "", "Path to candidate profile (JSON or YAML)")
	cmd.Flags().StringVar(&title, "title", "", "Job title (defaults to the HTML page title when available)")
	cmd.Flags().StringVar(&company, "company", "", "Company name")
	cmd.Flags().StringVar(&databaseURL, "db", "", "Run tracker URL: postgres://... or sqlite://path (overrides config)")
	cmd.Flags().StringVarP(&outputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print progress and summaries to stderr")
	return cmd
}

// openTracker opens the run store named by url, falling back to the
// configured database URL. Without either it returns a nil tracker.
func (a *app) openTracker(ctx context.Context, url string) (pipeline.Tracker, func(), error) {
	store, err := a.openStore(ctx, url)
	if err != nil || store == nil {
		return nil, func() {}, err
	}
	return store, store.Close, nil
}

// openStore is openTracker for callers that need the full store.
func (a *app) openStore(ctx context.Context, url string) (db.Store, error) {
	if url == "" {
		url = a.cfg.DatabaseURL
	}
	if url == "" {
		return nil, nil
	}
	store, err := db.Open(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open run store: %w", err)
	}
	a.log.Debug("run tracking enabled", zap.String("store", storeKind(url)))
	return store, nil
}

// storeKind names the backend of url without leaking credentials into logs.
func storeKind(url string) string {
	if strings.HasPrefix(url, "sqlite://") {
		return "sqlite"
	}
	return "postgres"
}

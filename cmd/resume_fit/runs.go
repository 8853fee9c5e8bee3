package main

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-fit/internal/db"
)

func newRunsCmd(a *app) *cobra.Command {
	var (
		databaseURL string
		limit       int
		step        string
	)

	cmd := &cobra.Command{
		Use:   "runs [run-id]",
		Short: "List tracked runs, or show one run and its artifacts",
		Long: `Without arguments, list the most recent tracked runs. With a run ID, print
the run record, or with --step one of its artifacts (` + strings.Join(db.Steps(), ", ") + `).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := a.openStore(ctx, databaseURL)
			if err != nil {
				return err
			}
			if store == nil {
				return fmt.Errorf("run tracking is not configured (use --db or set 'database_url' in the config)")
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				runs, err := store.ListRuns(ctx, limit)
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				_, _ = fmt.Fprintln(w, "ID\tSTATUS\tCREATED\tCOMPANY\tROLE")
				for _, run := range runs {
					_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
						run.ID, run.Status, run.CreatedAt.Local().Format(time.DateTime), run.Company, run.RoleTitle)
				}
				return w.Flush()
			}

			runID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid run ID: %w", err)
			}

			if step == "" {
				run, err := store.GetRun(ctx, runID)
				if err != nil {
					return err
				}
				if run == nil {
					return fmt.Errorf("run not found: %s", runID)
				}
				return writeJSON(out, "", run)
			}

			if !slices.Contains(db.Steps(), step) {
				return fmt.Errorf("unknown artifact step %q (expected one of %s)", step, strings.Join(db.Steps(), ", "))
			}
			content, err := store.GetArtifact(ctx, runID, step)
			if err != nil {
				return err
			}
			if content == nil {
				return fmt.Errorf("artifact %s not found for run %s", step, runID)
			}
			return writeJSON(out, "", json.RawMessage(content))
		},
	}

	cmd.Flags().StringVar(&databaseURL, "db", "", "Run tracker URL: postgres://... or sqlite://path (overrides config)")
	cmd.Flags().IntVar(&limit, "limit", db.DefaultListLimit, "Maximum runs to list")
	cmd.Flags().StringVar(&step, "step", "", "Artifact step to print instead of the run record")
	return cmd
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-fit/internal/observability"
	"github.com/jonathan/resume-fit/internal/schemas"
	"github.com/jonathan/resume-fit/internal/selection"
	"github.com/jonathan/resume-fit/internal/types"
)

func newCustomizeCmd(a *app) *cobra.Command {
	var (
		candidatePath string
		outputFile    string
		verbose       bool
	)

	cmd := &cobra.Command{
		Use:   "customize <job-profile.json>",
		Short: "Build a customized document for a job profile",
		Long: `Read a job profile produced by 'analyze' and build a customized document
from the candidate profile: template, summary, prioritized skills, tailored
achievements and credentials.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var job types.JobProfile
			if err := readJSON(args[0], schemas.JobProfile, &job); err != nil {
				return err
			}

			candidate, err := a.candidate(candidatePath)
			if err != nil {
				return err
			}

			doc, err := selection.NewCustomizer(a.log).Customize(&job, candidate)
			if err != nil {
				return err
			}

			if verbose {
				observability.NewPrinter(cmd.ErrOrStderr()).PrintDocument(doc)
			}
			return writeJSON(cmd.OutOrStdout(), outputFile, doc)
		},
	}

	cmd.Flags().StringVarP(&candidatePath, "candidate", "c", "", "Path to candidate profile (JSON or YAML)")
	cmd.Flags().StringVarP(&outputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print a human-readable summary to stderr")
	return cmd
}

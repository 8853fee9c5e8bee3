package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-fit/internal/observability"
	"github.com/jonathan/resume-fit/internal/ranking"
	"github.com/jonathan/resume-fit/internal/schemas"
	"github.com/jonathan/resume-fit/internal/types"
)

func newScoreCmd(a *app) *cobra.Command {
	var (
		outputFile string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "score <document.json> <job-profile.json>",
		Short: "Score a customized document against a job profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var doc types.CustomizedDocument
			if err := readJSON(args[0], schemas.CustomizedDocument, &doc); err != nil {
				return err
			}
			var job types.JobProfile
			if err := readJSON(args[1], schemas.JobProfile, &job); err != nil {
				return err
			}

			report, err := ranking.Score(&doc, &job)
			if err != nil {
				return err
			}
			a.log.Info("document scored",
				zap.Float64("total", report.TotalScore),
				zap.String("quality", report.QualityLevel),
				zap.Bool("meets_threshold", report.MeetsThreshold))

			if verbose {
				observability.NewPrinter(cmd.ErrOrStderr()).PrintScoreReport(report)
			}
			return writeJSON(cmd.OutOrStdout(), outputFile, report)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print the score breakdown to stderr")
	return cmd
}

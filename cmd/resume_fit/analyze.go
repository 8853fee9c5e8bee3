package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-fit/internal/ingestion"
	"github.com/jonathan/resume-fit/internal/observability"
	"github.com/jonathan/resume-fit/internal/parsing"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		title      string
		company    string
		outputFile string
		cleanedDir string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <posting-file>",
		Short: "Extract a structured job profile from a posting",
		Long: `Read a job posting (plain text, or HTML when the file ends in .html or .htm),
clean it and extract a job profile: skills by category, industry, experience
level, key requirements, preferred qualifications and keywords.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, metadata, err := ingestion.IngestFromFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to ingest posting: %w", err)
			}

			if cleanedDir != "" {
				if err := ingestion.WriteOutput(cleanedDir, text, metadata); err != nil {
					return err
				}
			}

			if title == "" {
				title = metadata.Title
			}
			profile := parsing.Analyze(text, title, company)
			a.log.Info("job profile extracted",
				zap.String("source", args[0]),
				zap.String("industry", profile.Industry.Primary),
				zap.String("level", profile.ExperienceLevel),
				zap.Int("skills", profile.TotalSkillMatches()))

			if verbose {
				observability.NewPrinter(cmd.ErrOrStderr()).PrintJobProfile(profile)
			}
			return writeJSON(cmd.OutOrStdout(), outputFile, profile)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Job title (defaults to the HTML page title when available)")
	cmd.Flags().StringVar(&company, "company", "", "Company name")
	cmd.Flags().StringVarP(&outputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	cmd.Flags().StringVar(&cleanedDir, "cleaned-dir", "", "Directory to write the cleaned posting text and metadata to")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print a human-readable summary to stderr")
	return cmd
}

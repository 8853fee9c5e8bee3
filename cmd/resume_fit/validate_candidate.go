package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-fit/internal/experience"
)

func newValidateCandidateCmd(_ *app) *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "validate-candidate <profile-file>",
		Short: "Validate and normalize a candidate profile",
		Long: `Check a candidate profile (JSON or YAML) against the candidate_profile schema
and normalize it. With --out the normalized profile is written as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := experience.LoadCandidateProfile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Candidate profile is valid: %s\n", args[0])
			for _, name := range slices.Sorted(maps.Keys(profile.Domains)) {
				domain := profile.Domains[name]
				_, _ = fmt.Fprintf(out, "  %-11s %4.1f years, %d skills, %d achievements\n",
					name, domain.Years, len(domain.Skills), len(domain.Achievements))
			}

			if outputFile != "" {
				return writeJSON(out, outputFile, profile)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "out", "o", "", "Path to write the normalized profile as JSON")
	return cmd
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-fit/internal/ingestion"
	"github.com/jonathan/resume-fit/internal/observability"
	"github.com/jonathan/resume-fit/internal/pipeline"
)

// manifest lists the postings of a batch run
type manifest struct {
	Concurrency int             `yaml:"concurrency"`
	Postings    []manifestEntry `yaml:"postings"`
}

// manifestEntry is one posting, given inline as text or as a file path
// relative to the manifest
type manifestEntry struct {
	Title   string `yaml:"title"`
	Company string `yaml:"company"`
	Text    string `yaml:"text"`
	Path    string `yaml:"path"`
}

// batchOutput is one element of the batch JSON output
type batchOutput struct {
	Index   int              `json:"index"`
	Title   string           `json:"title"`
	Company string           `json:"company,omitempty"`
	Result  *pipeline.Result `json:"result,omitempty"`
	Error   string           `json:"error,omitempty"`
}

func newBatchCmd(a *app) *cobra.Command {
	var (
		candidatePath string
		concurrency   int
		databaseURL   string
		outputFile    string
	)

	cmd := &cobra.Command{
		Use:   "batch <manifest.yaml>",
		Short: "Run the pipeline for every posting in a manifest",
		Long: `Run the pipeline concurrently for every posting listed in a YAML manifest
and print a summary ranked by fit score.

Manifest format:

  concurrency: 4
  postings:
    - title: Senior SEO Manager
      company: Brightline
      path: postings/seo.txt
    - title: Content Writer
      text: |
        Requirements
        - 2+ years of copywriting`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			m, err := loadManifest(args[0])
			if err != nil {
				return err
			}
			postings, err := m.resolve(filepath.Dir(args[0]))
			if err != nil {
				return err
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

			if !cmd.Flags().Changed("concurrency") {
				concurrency = m.Concurrency
			}
			if concurrency <= 0 {
				concurrency = a.cfg.Concurrency
			}

			results := pipeline.NewRunner(tracker, a.log).RunBatch(ctx, postings, candidate, concurrency)

			lines := make([]observability.BatchLine, 0, len(results))
			outputs := make([]batchOutput, 0, len(results))
			failed := 0
			for _, res := range results {
				line := observability.BatchLine{Title: displayTitle(res.Posting, res.Index), Err: res.Err}
				out := batchOutput{Index: res.Index, Title: res.Posting.Title, Company: res.Posting.Company, Result: res.Result}
				if res.Err != nil {
					failed++
					out.Error = res.Err.Error()
				} else {
					line.Score = res.Result.ScoreReport.TotalScore
					line.Pass = res.Result.ScoreReport.MeetsThreshold
				}
				lines = append(lines, line)
				outputs = append(outputs, out)
			}

			observability.NewPrinter(cmd.OutOrStdout()).PrintBatchSummary(lines)
			if outputFile != "" {
				if err := writeJSON(cmd.OutOrStdout(), outputFile, outputs); err != nil {
					return err
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d postings failed: %w", failed, len(results), pipeline.Errors(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&candidatePath, "candidate", "c", "", "Path to candidate profile (JSON or YAML)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Postings processed in parallel (overrides manifest and config)")
	cmd.Flags().StringVar(&databaseURL, "db", "", "Run tracker URL: postgres://... or sqlite://path (overrides config)")
	cmd.Flags().StringVarP(&outputFile, "out", "o", "", "Path to write the per-posting results as JSON")
	return cmd
}

func loadManifest(path string) (*manifest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var m manifest
	if err := yaml.Unmarshal(content, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	if len(m.Postings) == 0 {
		return nil, fmt.Errorf("manifest %s lists no postings", path)
	}
	return &m, nil
}

// resolve turns the manifest entries into postings, ingesting file entries
// relative to baseDir.
func (m *manifest) resolve(baseDir string) ([]pipeline.Posting, error) {
	postings := make([]pipeline.Posting, 0, len(m.Postings))
	for i, entry := range m.Postings {
		posting := pipeline.Posting{Title: entry.Title, Company: entry.Company}
		switch {
		case entry.Path != "" && entry.Text != "":
			return nil, fmt.Errorf("posting %d: set either 'path' or 'text', not both", i)
		case entry.Path != "":
			path := entry.Path
			if !filepath.IsAbs(path) {
				path = filepath.Join(baseDir, path)
			}
			text, metadata, err := ingestion.IngestFromFile(path)
			if err != nil {
				return nil, fmt.Errorf("posting %d: %w", i, err)
			}
			posting.Text = text
			if posting.Title == "" {
				posting.Title = metadata.Title
			}
		case entry.Text != "":
			posting.Text = ingestion.CleanText(entry.Text)
		default:
			return nil, fmt.Errorf("posting %d: one of 'path' or 'text' is required", i)
		}
		postings = append(postings, posting)
	}
	return postings, nil
}

func displayTitle(p pipeline.Posting, index int) string {
	if p.Title != "" {
		return p.Title
	}
	return fmt.Sprintf("posting %d", index+1)
}

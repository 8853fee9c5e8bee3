// Package main provides the resume_fit command line: the analyze, customize
// and score stages on their own, end-to-end and batch runs, and the HTTP API.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-fit/internal/config"
	"github.com/jonathan/resume-fit/internal/experience"
	"github.com/jonathan/resume-fit/internal/logger"
	"github.com/jonathan/resume-fit/internal/schemas"
	"github.com/jonathan/resume-fit/internal/types"
)

// app holds the state shared by every command: persistent flags, the loaded
// configuration and the logger built from it.
type app struct {
	configPath string
	debug      bool
	jsonLogs   bool

	cfg config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "resume_fit",
		Short: "Tailor a candidate profile to job postings and score the fit",
		Long: `resume_fit extracts a structured job profile from a posting, builds a
customized document from a candidate profile, and scores how well the
document fits the posting.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config file (JSON, YAML or TOML)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&a.jsonLogs, "json-logs", false, "Write logs as JSON")

	root.AddCommand(
		newAnalyzeCmd(a),
		newCustomizeCmd(a),
		newScoreCmd(a),
		newRunCmd(a),
		newBatchCmd(a),
		newRunsCmd(a),
		newServeCmd(a),
		newValidateCandidateCmd(a),
		newSchemaCmd(a),
	)
	return root
}

// setup loads the configuration and builds the logger before any command runs.
func (a *app) setup(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = loaded.MergeWithDefaults(config.Default())
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.cfg.Log.Debug = a.cfg.Log.Debug || a.debug
	a.cfg.Log.JSON = a.cfg.Log.JSON || a.jsonLogs

	log, err := logger.New(a.cfg.Log.JSON, a.cfg.Log.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	a.log = log
	return nil
}

// candidate loads the candidate profile from path, falling back to the
// configured default.
func (a *app) candidate(path string) (*types.CandidateProfile, error) {
	if path == "" {
		path = a.cfg.Candidate
	}
	if path == "" {
		return nil, fmt.Errorf("a candidate profile is required (use --candidate or set 'candidate' in the config)")
	}
	profile, err := experience.LoadCandidateProfile(path)
	if err != nil {
		return nil, err
	}
	a.log.Debug("candidate profile loaded",
		zap.String("path", path),
		zap.Int("domains", len(profile.Domains)))
	return profile, nil
}

// writeJSON writes v as indented JSON to path, or to w when path is empty.
func writeJSON(w io.Writer, path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	jsonBytes = append(jsonBytes, '\n')

	if path == "" {
		_, err = w.Write(jsonBytes)
		return err
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// readJSON reads the file at path, validates it against the named schema and
// decodes it into v.
func readJSON(path, schema string, v any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := schemas.Validate(schema, content); err != nil {
		return fmt.Errorf("%s does not match the %s schema: %w", path, schema, err)
	}
	if err := json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

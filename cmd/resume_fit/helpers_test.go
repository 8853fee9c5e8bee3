package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const seoPosting = `Brightline is a marketing agency helping growing companies win organic search.

Requirements
- 5+ years of hands-on SEO experience
- Expert in keyword research and Google Analytics
- Experience with link building and technical SEO audits
- Strong content optimization skills

Preferred Qualifications
- Experience with SEMrush or Ahrefs
`

const candidateYAML = `name: Ada Park
domains:
  seo:
    years: "6+ years"
    skills:
      - name: SEO
        proficiency: 5
      - name: Keyword Research
        proficiency: 4
      - name: Google Analytics
        proficiency: 4
      - Link Building
    achievements:
      - Grew organic traffic 150% in 12 months with technical SEO audits and keyword research
`

// executeCommand runs a fresh root command in-process and returns what it
// wrote to stdout and stderr.
func executeCommand(t *testing.T, ctx context.Context, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

// execute is executeCommand with a background context.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return executeCommand(t, context.Background(), args...)
}

// writeFile writes content under dir and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// readJSONFile decodes the JSON file at path into a T.
func readJSONFile[T any](t *testing.T, path string) T {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	var v T
	require.NoError(t, json.Unmarshal(content, &v))
	return v
}

// fixtures writes the SEO posting and candidate profile into a temp dir.
func fixtures(t *testing.T) (dir, posting, candidate string) {
	t.Helper()
	dir = t.TempDir()
	posting = writeFile(t, dir, "posting.txt", seoPosting)
	candidate = writeFile(t, dir, "candidate.yaml", candidateYAML)
	return dir, posting, candidate
}

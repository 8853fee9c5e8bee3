package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-fit/internal/db"
	"github.com/jonathan/resume-fit/internal/pipeline"
	"github.com/jonathan/resume-fit/internal/types"
)

// trackedRun runs the SEO posting with a SQLite tracker and returns the
// tracker URL and the run ID.
func trackedRun(t *testing.T) (string, string) {
	t.Helper()
	dir, posting, candidate := fixtures(t)
	dbURL := "sqlite://" + filepath.Join(dir, "runs.db")

	stdout, _, err := execute(t, "run", posting, "-c", candidate, "--title", "Senior SEO Manager", "--company", "Brightline", "--db", dbURL)
	require.NoError(t, err)
	var result pipeline.Result
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	require.NotEmpty(t, result.RunID)
	return dbURL, result.RunID
}

func TestRunsCommand_List(t *testing.T) {
	dbURL, runID := trackedRun(t)

	stdout, _, err := execute(t, "runs", "--db", dbURL)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], runID)
	assert.Contains(t, lines[1], db.StatusCompleted)
	assert.Contains(t, lines[1], "Senior SEO Manager")
}

func TestRunsCommand_ShowRunAndArtifact(t *testing.T) {
	dbURL, runID := trackedRun(t)

	stdout, _, err := execute(t, "runs", runID, "--db", dbURL)
	require.NoError(t, err)
	var run db.Run
	require.NoError(t, json.Unmarshal([]byte(stdout), &run))
	assert.Equal(t, runID, run.ID.String())
	assert.NotNil(t, run.CompletedAt)

	stdout, _, err = execute(t, "runs", runID, "--db", dbURL, "--step", db.StepJobProfile)
	require.NoError(t, err)
	var profile types.JobProfile
	require.NoError(t, json.Unmarshal([]byte(stdout), &profile))
	assert.Equal(t, "Brightline", profile.Company)
}

func TestRunsCommand_Errors(t *testing.T) {
	dbURL, runID := trackedRun(t)

	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{"tracking not configured", []string{"runs"}, "run tracking is not configured"},
		{"invalid id", []string{"runs", "not-a-uuid", "--db", dbURL}, "invalid run ID"},
		{"unknown run", []string{"runs", uuid.NewString(), "--db", dbURL}, "run not found"},
		{"unknown step", []string{"runs", runID, "--db", dbURL, "--step", "resume"}, "unknown artifact step"},
		{"missing artifact", []string{"runs", uuid.NewString(), "--db", dbURL, "--step", db.StepScoreReport}, "not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}

package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCommand_StopsOnCancel(t *testing.T) {
	dir, _, candidate := fixtures(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := executeCommand(t, ctx, "serve", "--addr", "127.0.0.1:0", "-c", candidate,
		"--db", "sqlite://"+filepath.Join(dir, "runs.db"))
	require.NoError(t, err)
}

func TestServeCommand_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{"missing candidate file", []string{"serve", "-c", filepath.Join(dir, "none.json")}, "none.json"},
		{"unsupported tracker", []string{"serve", "--db", "redis://localhost"}, "failed to open run store"},
		{"unexpected argument", []string{"serve", "extra"}, "unknown command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}

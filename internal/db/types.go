package db

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Run represents a pipeline run record
type Run struct {
	ID          uuid.UUID  `json:"id"`
	Company     string     `json:"company"`
	RoleTitle   string     `json:"role_title"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Run status values
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// ArtifactStep constants for known artifact types
const (
	StepJobPosting  = "job_posting"
	StepJobProfile  = "job_profile"
	StepDocument    = "customized_document"
	StepScoreReport = "score_report"
)

// Steps returns the known artifact steps in pipeline order.
func Steps() []string {
	return []string{StepJobPosting, StepJobProfile, StepDocument, StepScoreReport}
}

// Store is the run tracker implemented by both the PostgreSQL and SQLite backends.
// Getters return nil with no error when the record does not exist.
type Store interface {
	CreateRun(ctx context.Context, company, roleTitle string) (uuid.UUID, error)
	SaveArtifact(ctx context.Context, runID uuid.UUID, step string, content any) error
	CompleteRun(ctx context.Context, runID uuid.UUID, status string) error
	GetRun(ctx context.Context, runID uuid.UUID) (*Run, error)
	ListRuns(ctx context.Context, limit int) ([]Run, error)
	GetArtifact(ctx context.Context, runID uuid.UUID, step string) ([]byte, error)
	Close()
}

var (
	_ Store = (*DB)(nil)
	_ Store = (*SQLiteDB)(nil)
)

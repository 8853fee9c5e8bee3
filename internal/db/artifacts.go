package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/resume-fit/internal/types"
)

// PostingArtifact is the stored form of the raw posting a run started from
type PostingArtifact struct {
	Title   string `json:"title"`
	Company string `json:"company"`
	Text    string `json:"text"`
}

// GetPosting loads the posting recorded for a run
func GetPosting(ctx context.Context, s Store, runID uuid.UUID) (*PostingArtifact, error) {
	return getArtifactAs[PostingArtifact](ctx, s, runID, StepJobPosting)
}

// GetJobProfile loads the job profile recorded for a run
func GetJobProfile(ctx context.Context, s Store, runID uuid.UUID) (*types.JobProfile, error) {
	return getArtifactAs[types.JobProfile](ctx, s, runID, StepJobProfile)
}

// GetDocument loads the customized document recorded for a run
func GetDocument(ctx context.Context, s Store, runID uuid.UUID) (*types.CustomizedDocument, error) {
	return getArtifactAs[types.CustomizedDocument](ctx, s, runID, StepDocument)
}

// GetScoreReport loads the score report recorded for a run
func GetScoreReport(ctx context.Context, s Store, runID uuid.UUID) (*types.ScoreReport, error) {
	return getArtifactAs[types.ScoreReport](ctx, s, runID, StepScoreReport)
}

// getArtifactAs returns nil, nil when the artifact does not exist
func getArtifactAs[T any](ctx context.Context, s Store, runID uuid.UUID, step string) (*T, error) {
	content, err := s.GetArtifact(ctx, runID, step)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var out T
	if err := json.Unmarshal(content, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", step, err)
	}
	return &out, nil
}

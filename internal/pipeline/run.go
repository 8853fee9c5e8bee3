// Package pipeline runs the analyze, customize and score stages for one or
// many postings and records each run with an optional tracker.
package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-fit/internal/db"
	"github.com/jonathan/resume-fit/internal/logger"
	"github.com/jonathan/resume-fit/internal/parsing"
	"github.com/jonathan/resume-fit/internal/ranking"
	"github.com/jonathan/resume-fit/internal/selection"
	"github.com/jonathan/resume-fit/internal/types"
)

// Stage names, in execution order
const (
	StageAnalyze   = "analyze"
	StageCustomize = "customize"
	StageScore     = "score"
)

// DefaultConcurrency is used by RunBatch when the caller passes a non-positive limit
const DefaultConcurrency = 4

// Tracker records runs and their artifacts. db.Store satisfies it.
type Tracker interface {
	CreateRun(ctx context.Context, company, roleTitle string) (uuid.UUID, error)
	SaveArtifact(ctx context.Context, runID uuid.UUID, step string, content any) error
	CompleteRun(ctx context.Context, runID uuid.UUID, status string) error
}

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs. RunBatch calls it
// from several goroutines.
type ProgressCallback func(event ProgressEvent)

// Posting is one job posting to run through the pipeline
type Posting struct {
	Title   string `json:"title" yaml:"title"`
	Company string `json:"company" yaml:"company"`
	Text    string `json:"text" yaml:"text"`
}

// Result holds the three artifacts of one run
type Result struct {
	RunID       string                    `json:"run_id,omitempty"`
	JobProfile  *types.JobProfile         `json:"job_profile"`
	Document    *types.CustomizedDocument `json:"document"`
	ScoreReport *types.ScoreReport        `json:"score_report"`
}

// BatchResult is the outcome of one posting in a batch. Exactly one of
// Result and Err is set.
type BatchResult struct {
	Index   int     `json:"index"`
	Posting Posting `json:"-"`
	Result  *Result `json:"result,omitempty"`
	Err     error   `json:"-"`
}

// Runner executes the pipeline. Tracker, Logger and OnProgress are optional.
type Runner struct {
	Customizer *selection.Customizer
	Tracker    Tracker
	Logger     *zap.Logger
	OnProgress ProgressCallback
}

// NewRunner returns a Runner whose customizer logs to log.
func NewRunner(tracker Tracker, log *zap.Logger) *Runner {
	return &Runner{
		Customizer: selection.NewCustomizer(log),
		Tracker:    tracker,
		Logger:     log,
	}
}

// Run analyzes the posting, customizes the candidate's document for it and
// scores the result. Tracker failures are logged and never fail the run.
func (r *Runner) Run(ctx context.Context, posting Posting, candidate *types.CandidateProfile) (*Result, error) {
	log := logger.OrNop(r.Logger).With(
		zap.String("title", logger.Truncate(posting.Title, 80)),
		zap.String("company", logger.Truncate(posting.Company, 80)))
	started := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	run := r.startRun(ctx, log, posting)
	result := &Result{}
	if run != uuid.Nil {
		result.RunID = run.String()
	}

	stageStart := time.Now()
	result.JobProfile = parsing.Analyze(posting.Text, posting.Title, posting.Company)
	log.Debug("stage completed",
		zap.String("stage", StageAnalyze),
		zap.Duration("elapsed", time.Since(stageStart)),
		zap.String("experience_level", result.JobProfile.ExperienceLevel),
		zap.String("industry", result.JobProfile.Industry.Primary))
	r.save(ctx, log, run, db.StepJobProfile, result.JobProfile)
	r.emit(StageAnalyze, "Extracted job profile", run, result.JobProfile)

	if err := ctx.Err(); err != nil {
		r.finish(ctx, log, run, db.StatusFailed)
		return nil, err
	}

	stageStart = time.Now()
	doc, err := r.customizer().Customize(result.JobProfile, candidate)
	if err != nil {
		r.finish(ctx, log, run, db.StatusFailed)
		return nil, &StageError{Stage: StageCustomize, Cause: err}
	}
	result.Document = doc
	log.Debug("stage completed",
		zap.String("stage", StageCustomize),
		zap.Duration("elapsed", time.Since(stageStart)),
		zap.String("template", doc.TemplateKind),
		zap.Bool("degraded", doc.Degraded))
	r.save(ctx, log, run, db.StepDocument, doc)
	r.emit(StageCustomize, "Customized document", run, doc)

	if err := ctx.Err(); err != nil {
		r.finish(ctx, log, run, db.StatusFailed)
		return nil, err
	}

	stageStart = time.Now()
	report, err := ranking.Score(doc, result.JobProfile)
	if err != nil {
		r.finish(ctx, log, run, db.StatusFailed)
		return nil, &StageError{Stage: StageScore, Cause: err}
	}
	result.ScoreReport = report
	log.Debug("stage completed",
		zap.String("stage", StageScore),
		zap.Duration("elapsed", time.Since(stageStart)))
	r.save(ctx, log, run, db.StepScoreReport, report)
	r.emit(StageScore, "Scored document", run, report)

	r.finish(ctx, log, run, db.StatusCompleted)
	log.Info("pipeline completed",
		zap.Float64("total_score", report.TotalScore),
		zap.Bool("meets_threshold", report.MeetsThreshold),
		zap.Duration("elapsed", time.Since(started)))
	return result, nil
}

// RunBatch runs every posting with at most concurrency in flight. Results are
// returned in input order, and one posting's failure does not stop the others.
// Cancelling ctx fails the postings that have not finished yet.
func (r *Runner) RunBatch(ctx context.Context, postings []Posting, candidate *types.CandidateProfile, concurrency int) []BatchResult {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]BatchResult, len(postings))
	var g errgroup.Group
	g.SetLimit(concurrency)

	for i, posting := range postings {
		results[i] = BatchResult{Index: i, Posting: posting}
		g.Go(func() error {
			result, err := r.Run(ctx, posting, candidate)
			results[i].Result = result
			results[i].Err = err
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	logger.OrNop(r.Logger).Info("batch completed",
		zap.Int("postings", len(postings)),
		zap.Int("failed", failed))
	return results
}

// Errors returns the failures of a batch joined into one error, or nil.
func Errors(results []BatchResult) error {
	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}
	return errors.Join(errs...)
}

func (r *Runner) customizer() *selection.Customizer {
	if r.Customizer == nil {
		return selection.NewCustomizer(r.Logger)
	}
	return r.Customizer
}

// startRun returns uuid.Nil when no tracker is configured or it fails.
func (r *Runner) startRun(ctx context.Context, log *zap.Logger, posting Posting) uuid.UUID {
	if r.Tracker == nil {
		return uuid.Nil
	}
	id, err := r.Tracker.CreateRun(ctx, posting.Company, posting.Title)
	if err != nil {
		log.Warn("failed to create tracked run, continuing without tracking", zap.Error(err))
		return uuid.Nil
	}
	r.save(ctx, log, id, db.StepJobPosting, db.PostingArtifact{
		Title:   posting.Title,
		Company: posting.Company,
		Text:    posting.Text,
	})
	return id
}

func (r *Runner) save(ctx context.Context, log *zap.Logger, run uuid.UUID, step string, content any) {
	if r.Tracker == nil || run == uuid.Nil {
		return
	}
	if err := r.Tracker.SaveArtifact(ctx, run, step, content); err != nil {
		log.Warn("failed to save artifact",
			zap.String("run_id", run.String()),
			zap.String("step", step),
			zap.Error(err))
	}
}

func (r *Runner) finish(ctx context.Context, log *zap.Logger, run uuid.UUID, status string) {
	if r.Tracker == nil || run == uuid.Nil {
		return
	}
	// a cancelled request still gets its run closed out
	if err := r.Tracker.CompleteRun(context.WithoutCancel(ctx), run, status); err != nil {
		log.Warn("failed to complete tracked run",
			zap.String("run_id", run.String()),
			zap.String("status", status),
			zap.Error(err))
	}
}

func (r *Runner) emit(step, message string, run uuid.UUID, content any) {
	if r.OnProgress == nil {
		return
	}
	event := ProgressEvent{Step: step, Message: message, Content: content}
	if run != uuid.Nil {
		event.RunID = run.String()
	}
	r.OnProgress(event)
}

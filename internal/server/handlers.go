package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-fit/internal/db"
	"github.com/jonathan/resume-fit/internal/experience"
	"github.com/jonathan/resume-fit/internal/parsing"
	"github.com/jonathan/resume-fit/internal/pipeline"
	"github.com/jonathan/resume-fit/internal/ranking"
	"github.com/jonathan/resume-fit/internal/types"
)

// maxListLimit caps GET /runs?limit=
const maxListLimit = 200

// handleAnalyze extracts a job profile from a posting
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, parsing.Analyze(req.Text, req.Title, req.Company))
}

// handleCustomize builds a customized document for a job profile
func (s *Server) handleCustomize(w http.ResponseWriter, r *http.Request) {
	var req types.CustomizeRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	candidate, err := s.resolveCandidate(req.Candidate)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	doc, err := s.runner.Customizer.Customize(req.JobProfile, candidate)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, doc)
}

// handleScore scores a customized document against a job profile
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	report, err := ranking.Score(req.Document, req.JobProfile)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, report)
}

// handleRun runs the whole pipeline synchronously
func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	posting, candidate, err := s.decodeRun(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.runner.Run(r.Context(), posting, candidate)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleRunStream runs the pipeline and streams stage progress via SSE
func (s *Server) handleRunStream(w http.ResponseWriter, r *http.Request) {
	posting, candidate, err := s.decodeRun(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	stream, err := openEventStream(w)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	// a per-request runner so progress events go to this stream only
	runner := *s.runner
	runner.OnProgress = func(event pipeline.ProgressEvent) {
		if err := stream.send("step", event); err != nil {
			s.logger.Warn("failed to write stream event", zap.Error(err))
		}
	}

	result, err := runner.Run(r.Context(), posting, candidate)
	if err != nil {
		status, message := s.clientError(r, err)
		err = stream.fail(err, status, message)
	} else {
		err = stream.send("complete", result)
	}
	if err != nil {
		s.logger.Warn("failed to finish event stream", zap.Error(err))
	}
}

// handleListRuns lists recent tracked runs
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, r, &ErrTrackingDisabled{})
		return
	}

	limit := db.DefaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			s.writeError(w, r, &ErrValidation{Field: "limit", Message: "must be a positive integer"})
			return
		}
		limit = min(n, maxListLimit)
	}

	runs, err := s.store.ListRuns(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"runs": runs, "count": len(runs)})
}

// handleGetRun returns one tracked run
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, r, &ErrTrackingDisabled{})
		return
	}

	runID, err := parseRunID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	run, err := s.store.GetRun(r.Context(), runID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if run == nil {
		s.writeError(w, r, &ErrNotFound{Resource: "run", ID: runID.String()})
		return
	}
	s.jsonResponse(w, http.StatusOK, run)
}

// handleGetArtifact returns the raw JSON artifact of one step of a run
func (s *Server) handleGetArtifact(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, r, &ErrTrackingDisabled{})
		return
	}

	runID, err := parseRunID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	step := r.PathValue("step")
	if !slices.Contains(db.Steps(), step) {
		s.writeError(w, r, &ErrValidation{Field: "step", Message: fmt.Sprintf("unknown artifact step %q", step)})
		return
	}

	content, err := s.store.GetArtifact(r.Context(), runID, step)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if content == nil {
		s.writeError(w, r, &ErrNotFound{Resource: "artifact", ID: runID.String() + "/" + step})
		return
	}
	s.jsonResponse(w, http.StatusOK, json.RawMessage(content))
}

func parseRunID(r *http.Request) (uuid.UUID, error) {
	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: "id", Message: "invalid run ID format"}
	}
	return runID, nil
}

// validatable is implemented by the request types
type validatable interface {
	Validate() error
}

// decode reads a size-limited JSON body into req and validates it.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, req validatable) error {
	body := http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	if err := json.NewDecoder(body).Decode(req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return &ErrValidation{Message: fmt.Sprintf("request body exceeds %d bytes", maxErr.Limit)}
		}
		return &ErrValidation{Message: "invalid request body: " + err.Error()}
	}
	if err := req.Validate(); err != nil {
		return validationError(err)
	}
	return nil
}

func (s *Server) decodeRun(w http.ResponseWriter, r *http.Request) (pipeline.Posting, *types.CandidateProfile, error) {
	var req types.RunRequest
	if err := s.decode(w, r, &req); err != nil {
		return pipeline.Posting{}, nil, err
	}
	candidate, err := s.resolveCandidate(req.Candidate)
	if err != nil {
		return pipeline.Posting{}, nil, err
	}
	return pipeline.Posting{Title: req.Title, Company: req.Company, Text: req.Text}, candidate, nil
}

// resolveCandidate normalizes the request's candidate, falling back to the
// server's configured profile.
func (s *Server) resolveCandidate(raw json.RawMessage) (*types.CandidateProfile, error) {
	if len(raw) == 0 || string(raw) == "null" {
		if s.candidate == nil {
			return nil, &ErrNoCandidate{}
		}
		return s.candidate, nil
	}

	candidate, err := experience.ParseCandidateProfile(raw, experience.FormatJSON)
	if err != nil {
		return nil, &ErrValidation{Field: "candidate", Message: err.Error()}
	}
	return candidate, nil
}

// validationError converts validator errors into an ErrValidation naming the
// first failing field.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ErrValidation{Field: fe.Field(), Message: fmt.Sprintf("failed %q validation", fe.Tag())}
	}
	return &ErrValidation{Message: err.Error()}
}

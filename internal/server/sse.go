package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-fit/internal/pipeline"
)

// eventStream writes server-sent events, flushing each one as it is sent.
type eventStream struct {
	w       http.ResponseWriter
	flusher http.Flusher
	lastID  int
}

// openEventStream sets the event-stream headers and commits the 200 status.
// Errors after this point can only be reported as events.
func openEventStream(w http.ResponseWriter) (*eventStream, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, errors.New("response writer does not support streaming")
	}

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	return &eventStream{w: w, flusher: flusher}, nil
}

// send writes one event. Events are numbered from 1 in send order.
func (s *eventStream) send(event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", event, err)
	}

	s.lastID++
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "id: %d\nevent: %s\ndata: %s\n\n", s.lastID, event, payload)
	if _, err := s.w.Write(buf.Bytes()); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// fail sends the terminal error event carrying message and status, naming
// the stage when err comes from one.
func (s *eventStream) fail(err error, status int, message string) error {
	body := map[string]any{"error": message, "status": status}
	var stageErr *pipeline.StageError
	if errors.As(err, &stageErr) {
		body["stage"] = stageErr.Stage
	}
	return s.send("error", body)
}

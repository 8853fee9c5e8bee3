package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-fit/internal/pipeline"
)

func TestEventStream(t *testing.T) {
	w := httptest.NewRecorder()
	stream, err := openEventStream(w)
	require.NoError(t, err)

	require.NoError(t, stream.send("step", map[string]string{"step": "analyze"}))
	stageErr := &pipeline.StageError{Stage: pipeline.StageCustomize, Cause: errors.New("no candidate")}
	require.NoError(t, stream.fail(stageErr, http.StatusInternalServerError, "internal server error"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Equal(t, "id: 1\nevent: step\ndata: {\"step\":\"analyze\"}\n\n"+
		"id: 2\nevent: error\ndata: {\"error\":\"internal server error\",\"stage\":\"customize\",\"status\":500}\n\n",
		w.Body.String())
	assert.True(t, w.Flushed)
}

func TestEventStream_EncodeError(t *testing.T) {
	stream, err := openEventStream(httptest.NewRecorder())
	require.NoError(t, err)

	err = stream.send("step", func() {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode step event")
	assert.Zero(t, stream.lastID)
}

// plainWriter hides the recorder's Flush method
type plainWriter struct {
	http.ResponseWriter
}

func TestOpenEventStream_RequiresFlusher(t *testing.T) {
	_, err := openEventStream(plainWriter{httptest.NewRecorder()})
	require.Error(t, err)
}

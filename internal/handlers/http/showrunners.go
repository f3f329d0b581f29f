package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gabapcia/chainnotify/internal/pkg/logger"
	"github.com/gabapcia/chainnotify/internal/runner"
	"github.com/gabapcia/chainnotify/internal/simulate"
)

type sendMessageRequest struct {
	Simulate simulate.Override `json:"simulate"`
}

type sendMessageResponse struct {
	Success bool           `json:"success"`
	Data    runner.Summary `json:"data"`
	Error   string         `json:"error,omitempty"`
}

// preflight reports whether err aborted the pass before any notification
// could be evaluated.
func preflight(err error) bool {
	return errors.Is(err, runner.ErrConfig) ||
		errors.Is(err, runner.ErrSubscribers) ||
		errors.Is(err, runner.ErrCollect)
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("channel")

	rn, err := s.registry.Get(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}

	var req sendMessageRequest
	if r.ContentLength != 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
	}

	if err := req.Simulate.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	// The pass outlives a dropped connection; the runner bounds it.
	summary, err := rn.Run(context.WithoutCancel(ctx), req.Simulate)
	if err != nil && preflight(err) {
		logger.Error(ctx, "pass aborted", "channel", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, sendMessageResponse{Data: summary, Error: err.Error()})
		return
	}

	resp := sendMessageResponse{
		Success: err == nil && summary.Status == runner.StatusCompleted,
		Data:    summary,
	}
	if err != nil {
		resp.Error = err.Error()
	}

	writeJSON(w, http.StatusCreated, resp)
}

type channelsResponse struct {
	Channels []string `json:"channels"`
}

func (s *Server) handleListChannels(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, channelsResponse{Channels: s.registry.List()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		if err := s.health.Ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

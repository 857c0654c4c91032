// Package api provides HTTP handlers for the MathQuest API.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rahulv/mathquest/internal/problems"
	"github.com/rahulv/mathquest/internal/store"
)

// ProblemService is the slice of the problems service the handlers need.
type ProblemService interface {
	Generate(ctx context.Context, difficulty problems.Difficulty, operation problems.Operation) (*problems.GenerateResult, error)
	Hints(ctx context.Context, sessionID string) ([]store.Hint, error)
	Submit(ctx context.Context, sessionID string, userAnswer float64) (*problems.SubmitResult, error)
	Solution(ctx context.Context, sessionID string) (string, error)
	History(ctx context.Context, limit int) (*problems.HistoryResult, error)
}

// Handler serves the problem-session endpoints.
type Handler struct {
	svc    ProblemService
	logger *slog.Logger
}

// NewHandler creates a Handler. A nil logger falls back to slog.Default.
func NewHandler(svc ProblemService, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{svc: svc, logger: logger}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// serviceError maps a service failure onto an HTTP status. Invalid
// parameters and unknown sessions carry their message to the caller;
// everything else is logged and returned as a generic 500.
func (h *Handler) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, problems.ErrInvalidParameter):
		Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, problems.ErrNotFound):
		Error(w, http.StatusNotFound, "problem session not found")
	default:
		h.logger.Error("request failed",
			"path", r.URL.Path, "method", r.Method, "error", err)
		Error(w, http.StatusInternalServerError, "internal server error")
	}
}

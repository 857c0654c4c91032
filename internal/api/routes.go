package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rahulv/mathquest/internal/problems"
	"github.com/rahulv/mathquest/internal/store"
)

// RegisterRoutes registers the problem-session endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/math-problem", func(r chi.Router) {
		r.Post("/", h.GenerateProblem)
		r.Get("/hints", h.GetHints)
		r.Get("/solution", h.GetSolution)
		r.Post("/submit", h.SubmitAnswer)
		r.Get("/history", h.GetHistory)
	})
}

type generateRequest struct {
	Difficulty  string `json:"difficulty"`
	ProblemType string `json:"problem_type"`
}

type generateResponse struct {
	ProblemText    string  `json:"problem_text"`
	CorrectAnswer  float64 `json:"correct_answer"`
	SessionID      string  `json:"session_id"`
	Difficulty     string  `json:"difficulty"`
	ProblemType    string  `json:"problem_type"`
	HintsAvailable int     `json:"hints_available"`
	ScoreValue     int     `json:"score_value"`
}

// GenerateProblem creates a new problem session. An empty body is allowed
// and uses the default difficulty and operation.
func (h *Handler) GenerateProblem(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			Error(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
	}

	result, err := h.svc.Generate(r.Context(),
		problems.Difficulty(req.Difficulty), problems.Operation(req.ProblemType))
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	JSON(w, http.StatusOK, generateResponse{
		ProblemText:    result.ProblemText,
		CorrectAnswer:  result.CorrectAnswer,
		SessionID:      result.SessionID,
		Difficulty:     string(result.Difficulty),
		ProblemType:    string(result.Operation),
		HintsAvailable: result.HintsTotal,
		ScoreValue:     result.ScoreValue,
	})
}

type hintPayload struct {
	ID        int    `json:"id"`
	HintText  string `json:"hint_text"`
	HintOrder int    `json:"hint_order"`
}

// GetHints returns the session's progressive hints, generating them on
// first request.
func (h *Handler) GetHints(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		Error(w, http.StatusBadRequest, "missing sessionId parameter")
		return
	}

	hints, err := h.svc.Hints(r.Context(), sessionID)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	payload := make([]hintPayload, 0, len(hints))
	for _, hint := range hints {
		payload = append(payload, hintPayload{
			ID:        hint.ID,
			HintText:  hint.Text,
			HintOrder: hint.Order,
		})
	}
	JSON(w, http.StatusOK, map[string]any{"hints": payload})
}

// GetSolution returns the session's worked solution, generating it on
// first request.
func (h *Handler) GetSolution(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		Error(w, http.StatusBadRequest, "missing sessionId parameter")
		return
	}

	solution, err := h.svc.Solution(r.Context(), sessionID)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	JSON(w, http.StatusOK, map[string]string{"solution": solution})
}

type submitRequest struct {
	SessionID  string   `json:"session_id"`
	UserAnswer *float64 `json:"user_answer"`
}

type submitResponse struct {
	IsCorrect    bool   `json:"is_correct"`
	Feedback     string `json:"feedback"`
	PointsEarned int    `json:"points_earned"`
}

// SubmitAnswer grades one answer attempt.
func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.SessionID == "" || req.UserAnswer == nil {
		Error(w, http.StatusBadRequest, "missing required fields: session_id and user_answer")
		return
	}

	result, err := h.svc.Submit(r.Context(), req.SessionID, *req.UserAnswer)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	JSON(w, http.StatusOK, submitResponse{
		IsCorrect:    result.IsCorrect,
		Feedback:     result.Feedback,
		PointsEarned: result.PointsEarned,
	})
}

type historySubmission struct {
	UserAnswer   float64   `json:"user_answer"`
	IsCorrect    bool      `json:"is_correct"`
	PointsEarned int       `json:"points_earned"`
	CreatedAt    time.Time `json:"created_at"`
}

type historyEntry struct {
	SessionID   string             `json:"session_id"`
	ProblemText string             `json:"problem_text"`
	Difficulty  string             `json:"difficulty"`
	ProblemType string             `json:"problem_type"`
	ScoreValue  int                `json:"score_value"`
	CreatedAt   time.Time          `json:"created_at"`
	Submission  *historySubmission `json:"submission,omitempty"`
}

type scorePayload struct {
	TotalScore        int `json:"total_score"`
	ProblemsAttempted int `json:"problems_attempted"`
	ProblemsSolved    int `json:"problems_solved"`
}

// GetHistory returns recent sessions with the account-wide score.
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			Error(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	result, err := h.svc.History(r.Context(), limit)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	entries := make([]historyEntry, 0, len(result.Entries))
	for _, e := range result.Entries {
		entries = append(entries, toHistoryEntry(e))
	}
	JSON(w, http.StatusOK, map[string]any{
		"history": entries,
		"score": scorePayload{
			TotalScore:        result.Score.TotalScore,
			ProblemsAttempted: result.Score.ProblemsAttempted,
			ProblemsSolved:    result.Score.ProblemsSolved,
		},
	})
}

func toHistoryEntry(e store.HistoryEntry) historyEntry {
	entry := historyEntry{
		SessionID:   e.Session.ID,
		ProblemText: e.Session.ProblemText,
		Difficulty:  e.Session.Difficulty,
		ProblemType: e.Session.ProblemType,
		ScoreValue:  e.Session.Score,
		CreatedAt:   e.Session.CreatedAt,
	}
	if e.Submission != nil {
		entry.Submission = &historySubmission{
			UserAnswer:   e.Submission.UserAnswer,
			IsCorrect:    e.Submission.IsCorrect,
			PointsEarned: e.Submission.PointsEarned,
			CreatedAt:    e.Submission.CreatedAt,
		}
	}
	return entry
}

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rahulv/mathquest/internal/problems"
	"github.com/rahulv/mathquest/internal/store"
)

// stubService returns canned values so handler behavior can be tested
// without a provider or database.
type stubService struct {
	generate func(problems.Difficulty, problems.Operation) (*problems.GenerateResult, error)
	hints    func(string) ([]store.Hint, error)
	submit   func(string, float64) (*problems.SubmitResult, error)
	solution func(string) (string, error)
	history  func(int) (*problems.HistoryResult, error)
}

func (s *stubService) Generate(_ context.Context, d problems.Difficulty, op problems.Operation) (*problems.GenerateResult, error) {
	return s.generate(d, op)
}

func (s *stubService) Hints(_ context.Context, sessionID string) ([]store.Hint, error) {
	return s.hints(sessionID)
}

func (s *stubService) Submit(_ context.Context, sessionID string, userAnswer float64) (*problems.SubmitResult, error) {
	return s.submit(sessionID, userAnswer)
}

func (s *stubService) Solution(_ context.Context, sessionID string) (string, error) {
	return s.solution(sessionID)
}

func (s *stubService) History(_ context.Context, limit int) (*problems.HistoryResult, error) {
	return s.history(limit)
}

func newTestRouter(svc ProblemService) http.Handler {
	r := chi.NewRouter()
	NewHandler(svc, nil).RegisterRoutes(r)
	return r
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestGenerateProblem_DefaultsOnEmptyBody(t *testing.T) {
	var gotDifficulty problems.Difficulty
	svc := &stubService{
		generate: func(d problems.Difficulty, op problems.Operation) (*problems.GenerateResult, error) {
			gotDifficulty = d
			return &problems.GenerateResult{
				SessionID:     "abc",
				ProblemText:   "What is 2+2?",
				CorrectAnswer: 4,
				Difficulty:    problems.DefaultDifficulty,
				Operation:     problems.DefaultOperation,
				HintsTotal:    3,
				ScoreValue:    20,
			}, nil
		},
	}

	w := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/math-problem", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if gotDifficulty != "" {
		t.Errorf("empty body should pass empty difficulty through, got %q", gotDifficulty)
	}

	var body map[string]any
	decodeBody(t, w.Result(), &body)
	if body["session_id"] != "abc" {
		t.Errorf("expected session_id abc, got %v", body["session_id"])
	}
	if body["score_value"] != float64(20) {
		t.Errorf("expected score_value 20, got %v", body["score_value"])
	}
	if body["hints_available"] != float64(3) {
		t.Errorf("expected hints_available 3, got %v", body["hints_available"])
	}
}

func TestGenerateProblem_InvalidParameterIs400(t *testing.T) {
	svc := &stubService{
		generate: func(problems.Difficulty, problems.Operation) (*problems.GenerateResult, error) {
			return nil, problems.ErrInvalidParameter
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/math-problem",
		strings.NewReader(`{"difficulty":"impossible"}`))
	newTestRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGenerateProblem_GenerationFailureIs500Generic(t *testing.T) {
	svc := &stubService{
		generate: func(problems.Difficulty, problems.Operation) (*problems.GenerateResult, error) {
			return nil, problems.ErrGeneration
		},
	}

	w := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/math-problem", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body map[string]string
	decodeBody(t, w.Result(), &body)
	if body["error"] != "internal server error" {
		t.Errorf("internal detail must not leak, got %q", body["error"])
	}
}

func TestGetHints_ReturnsOrderedHints(t *testing.T) {
	svc := &stubService{
		hints: func(sessionID string) ([]store.Hint, error) {
			return []store.Hint{
				{ID: 1, SessionID: sessionID, Text: "First hint", Order: 1},
				{ID: 2, SessionID: sessionID, Text: "Second hint", Order: 2},
				{ID: 3, SessionID: sessionID, Text: "Third hint", Order: 3},
			}, nil
		},
	}

	w := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/math-problem/hints?sessionId=abc", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Hints []struct {
			ID        int    `json:"id"`
			HintText  string `json:"hint_text"`
			HintOrder int    `json:"hint_order"`
		} `json:"hints"`
	}
	decodeBody(t, w.Result(), &body)
	if len(body.Hints) != 3 {
		t.Fatalf("expected 3 hints, got %d", len(body.Hints))
	}
	for i, h := range body.Hints {
		if h.HintOrder != i+1 {
			t.Errorf("hint %d has order %d", i, h.HintOrder)
		}
	}
}

func TestGetHints_MissingSessionIDIs400(t *testing.T) {
	svc := &stubService{
		hints: func(string) ([]store.Hint, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}

	w := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/math-problem/hints", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetHints_UnknownSessionIs404(t *testing.T) {
	svc := &stubService{
		hints: func(string) ([]store.Hint, error) {
			return nil, problems.ErrNotFound
		},
	}

	w := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/math-problem/hints?sessionId=nope", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGetSolution_ReturnsText(t *testing.T) {
	svc := &stubService{
		solution: func(string) (string, error) {
			return "1. Add the numbers. 2. The answer is 20.", nil
		},
	}

	w := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/math-problem/solution?sessionId=abc", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	decodeBody(t, w.Result(), &body)
	if body["solution"] == "" {
		t.Error("expected solution text")
	}
}

func TestSubmitAnswer_RequiresFields(t *testing.T) {
	svc := &stubService{
		submit: func(string, float64) (*problems.SubmitResult, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}
	router := newTestRouter(svc)

	tests := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"missing answer", `{"session_id":"abc"}`},
		{"missing session", `{"user_answer":42}`},
		{"not json", `gibberish`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/math-problem/submit", strings.NewReader(tt.body))
			router.ServeHTTP(w, req)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestSubmitAnswer_ZeroAnswerIsValid(t *testing.T) {
	called := false
	svc := &stubService{
		submit: func(sessionID string, answer float64) (*problems.SubmitResult, error) {
			called = true
			if answer != 0 {
				t.Errorf("expected answer 0, got %v", answer)
			}
			return &problems.SubmitResult{IsCorrect: true, Feedback: "Great!", PointsEarned: 10}, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/math-problem/submit",
		strings.NewReader(`{"session_id":"abc","user_answer":0}`))
	newTestRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !called {
		t.Fatal("an explicit zero answer must reach the service")
	}
}

func TestSubmitAnswer_ReturnsGradingResult(t *testing.T) {
	svc := &stubService{
		submit: func(string, float64) (*problems.SubmitResult, error) {
			return &problems.SubmitResult{IsCorrect: true, Feedback: "You got it!", PointsEarned: 30}, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/math-problem/submit",
		strings.NewReader(`{"session_id":"abc","user_answer":42}`))
	newTestRouter(svc).ServeHTTP(w, req)

	var body submitResponse
	decodeBody(t, w.Result(), &body)
	if !body.IsCorrect || body.PointsEarned != 30 {
		t.Errorf("unexpected grading result: %+v", body)
	}
}

func TestGetHistory_PassesLimitAndShapesResponse(t *testing.T) {
	var gotLimit int
	svc := &stubService{
		history: func(limit int) (*problems.HistoryResult, error) {
			gotLimit = limit
			return &problems.HistoryResult{
				Entries: []store.HistoryEntry{
					{
						Session: store.Session{ID: "abc", ProblemText: "p", Difficulty: "easy", ProblemType: "addition", Score: 10, CreatedAt: time.Now()},
						Submission: &store.Submission{
							UserAnswer: 4, IsCorrect: true, PointsEarned: 10, CreatedAt: time.Now(),
						},
					},
					{Session: store.Session{ID: "def", ProblemText: "q", Difficulty: "hard", ProblemType: "division", Score: 30, CreatedAt: time.Now()}},
				},
				Score: store.UserScore{TotalScore: 10, ProblemsAttempted: 1, ProblemsSolved: 1},
			}, nil
		},
	}

	w := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/math-problem/history?limit=5", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotLimit != 5 {
		t.Errorf("expected limit 5 passed through, got %d", gotLimit)
	}

	var body struct {
		History []historyEntry `json:"history"`
		Score   scorePayload   `json:"score"`
	}
	decodeBody(t, w.Result(), &body)
	if len(body.History) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(body.History))
	}
	if body.History[0].Submission == nil {
		t.Error("first entry should carry its submission")
	}
	if body.History[1].Submission != nil {
		t.Error("unattempted entry should omit submission")
	}
	if body.Score.TotalScore != 10 {
		t.Errorf("expected total score 10, got %d", body.Score.TotalScore)
	}
}

func TestGetHistory_BadLimitIs400(t *testing.T) {
	svc := &stubService{
		history: func(int) (*problems.HistoryResult, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}

	for _, limit := range []string{"abc", "0", "-3"} {
		w := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/math-problem/history?limit="+limit, nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("limit=%s: expected 400, got %d", limit, w.Code)
		}
	}
}

package problems

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/rahulv/mathquest/internal/llm"
	"github.com/rahulv/mathquest/internal/store"
)

// fakeSessionRepo is an in-memory store.SessionRepo for service tests.
type fakeSessionRepo struct {
	mu         sync.Mutex
	sessions   map[string]*store.Session
	hints      map[string][]store.Hint
	subs       []store.Submission
	nextHintID int
	nextSubID  int

	failHintBatch bool
	hintBatches   int
}

func newFakeRepo() *fakeSessionRepo {
	return &fakeSessionRepo{
		sessions: make(map[string]*store.Session),
		hints:    make(map[string][]store.Hint),
	}
}

func (f *fakeSessionRepo) CreateSession(_ context.Context, data store.CreateSessionData) (*store.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sess := &store.Session{
		ID:             uuid.NewString(),
		ProblemText:    data.ProblemText,
		CorrectAnswer:  data.CorrectAnswer,
		Difficulty:     data.Difficulty,
		ProblemType:    data.ProblemType,
		Score:          data.Score,
		HintsAvailable: data.HintsAvailable,
	}
	f.sessions[sess.ID] = sess
	return sess, nil
}

func (f *fakeSessionRepo) GetSession(_ context.Context, id string) (*store.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sess, ok := f.sessions[id]
	if !ok {
		return nil, nil
	}
	cp := *sess
	return &cp, nil
}

func (f *fakeSessionRepo) CreateHintBatch(_ context.Context, sessionID string, texts []string) ([]store.Hint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hintBatches++
	if f.failHintBatch {
		return nil, errors.New("disk full")
	}
	if _, ok := f.sessions[sessionID]; !ok {
		return nil, store.ErrSessionNotFound
	}
	var created []store.Hint
	for i, text := range texts {
		f.nextHintID++
		created = append(created, store.Hint{
			ID:        f.nextHintID,
			SessionID: sessionID,
			Text:      text,
			Order:     i + 1,
		})
	}
	f.hints[sessionID] = created
	return created, nil
}

func (f *fakeSessionRepo) HintsForSession(_ context.Context, sessionID string) ([]store.Hint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hints[sessionID], nil
}

func (f *fakeSessionRepo) CreateSubmission(_ context.Context, data store.CreateSubmissionData) (*store.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sess, ok := f.sessions[data.SessionID]
	if !ok {
		return nil, store.ErrSessionNotFound
	}
	points := 0
	if data.IsCorrect {
		points = sess.Score
	}
	f.nextSubID++
	sub := store.Submission{
		ID:           f.nextSubID,
		SessionID:    data.SessionID,
		UserAnswer:   data.UserAnswer,
		IsCorrect:    data.IsCorrect,
		Feedback:     data.Feedback,
		PointsEarned: points,
	}
	f.subs = append(f.subs, sub)
	return &sub, nil
}

func (f *fakeSessionRepo) AttachSolution(_ context.Context, sessionID, text string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sess, ok := f.sessions[sessionID]
	if !ok {
		return "", store.ErrSessionNotFound
	}
	if sess.SolutionSteps != nil {
		return *sess.SolutionSteps, nil
	}
	sess.SolutionSteps = &text
	return text, nil
}

func (f *fakeSessionRepo) History(_ context.Context, limit int) ([]store.HistoryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var entries []store.HistoryEntry
	for _, sess := range f.sessions {
		if len(entries) == limit {
			break
		}
		entries = append(entries, store.HistoryEntry{Session: *sess})
	}
	return entries, nil
}

func (f *fakeSessionRepo) UserScore(_ context.Context) (*store.UserScore, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	score := &store.UserScore{}
	seen := map[string]bool{}
	solved := map[string]bool{}
	for _, sub := range f.subs {
		score.TotalScore += sub.PointsEarned
		seen[sub.SessionID] = true
		if sub.IsCorrect {
			solved[sub.SessionID] = true
		}
	}
	score.ProblemsAttempted = len(seen)
	score.ProblemsSolved = len(solved)
	return score, nil
}

func problemJSON(answer float64) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(
		`{"problem_text":"Sara has 12 apples and buys 8 more. How many does she have?","correct_answer":%g,"hints":["Count what Sara starts with.","Adding means combining groups.","Add 12 and 8."]}`,
		answer,
	))
}

func newTestService(repo *fakeSessionRepo, responses ...llm.MockResponse) (*Service, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	return NewService(mock, repo, nil, 0), mock
}

func seedSession(t *testing.T, repo *fakeSessionRepo, answer float64) *store.Session {
	t.Helper()
	sess, err := repo.CreateSession(context.Background(), store.CreateSessionData{
		ProblemText:    "Sara has 12 apples and buys 8 more. How many does she have?",
		CorrectAnswer:  answer,
		Difficulty:     "medium",
		ProblemType:    "addition",
		Score:          20,
		HintsAvailable: HintBatchSize,
	})
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}
	return sess
}

func TestGenerate_PersistsSessionAndHints(t *testing.T) {
	repo := newFakeRepo()
	svc, mock := newTestService(repo, llm.MockResponse{Content: problemJSON(20)})

	result, err := svc.Generate(context.Background(), DifficultyHard, OperationAddition)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.SessionID == "" {
		t.Error("expected a session id")
	}
	if result.CorrectAnswer != 20 {
		t.Errorf("expected answer 20, got %v", result.CorrectAnswer)
	}
	if result.ScoreValue != 30 {
		t.Errorf("expected hard problem worth 30, got %d", result.ScoreValue)
	}
	if result.HintsTotal != HintBatchSize {
		t.Errorf("expected %d hints total, got %d", HintBatchSize, result.HintsTotal)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 provider call, got %d", mock.CallCount())
	}

	hints, _ := repo.HintsForSession(context.Background(), result.SessionID)
	if len(hints) != HintBatchSize {
		t.Errorf("expected suggested hints stored, got %d", len(hints))
	}
}

func TestGenerate_DefaultsWhenEmpty(t *testing.T) {
	repo := newFakeRepo()
	svc, mock := newTestService(repo, llm.MockResponse{Content: problemJSON(20)})

	result, err := svc.Generate(context.Background(), "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Difficulty != DefaultDifficulty {
		t.Errorf("expected default difficulty, got %q", result.Difficulty)
	}
	if result.Operation != DefaultOperation {
		t.Errorf("expected default operation, got %q", result.Operation)
	}
	if result.ScoreValue != 20 {
		t.Errorf("expected medium problem worth 20, got %d", result.ScoreValue)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Difficulty: medium") || !strings.Contains(prompt, "Operation: addition") {
		t.Errorf("defaults not reflected in prompt:\n%s", prompt)
	}
}

func TestGenerate_RejectsUnknownParameters(t *testing.T) {
	repo := newFakeRepo()
	svc, mock := newTestService(repo)

	if _, err := svc.Generate(context.Background(), "impossible", OperationAddition); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got: %v", err)
	}
	if _, err := svc.Generate(context.Background(), DifficultyEasy, "modulo"); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got: %v", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected no provider calls, got %d", mock.CallCount())
	}
}

func TestGenerate_ProviderFailure(t *testing.T) {
	repo := newFakeRepo()
	svc, _ := newTestService(repo, llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})

	_, err := svc.Generate(context.Background(), DifficultyEasy, OperationAddition)
	if !errors.Is(err, ErrGeneration) {
		t.Fatalf("expected ErrGeneration, got: %v", err)
	}
	if len(repo.sessions) != 0 {
		t.Error("no session should be persisted on provider failure")
	}
}

func TestGenerate_UnparsableResponse(t *testing.T) {
	repo := newFakeRepo()
	svc, _ := newTestService(repo, llm.MockResponse{Content: json.RawMessage(`Sorry, I can't help with that.`)})

	_, err := svc.Generate(context.Background(), DifficultyEasy, OperationAddition)
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got: %v", err)
	}
	if len(repo.sessions) != 0 {
		t.Error("no session should be persisted on parse failure")
	}
}

func TestGenerate_HintPersistFailureIsNonFatal(t *testing.T) {
	repo := newFakeRepo()
	repo.failHintBatch = true
	svc, _ := newTestService(repo, llm.MockResponse{Content: problemJSON(20)})

	result, err := svc.Generate(context.Background(), DifficultyEasy, OperationAddition)
	if err != nil {
		t.Fatalf("expected generate to succeed despite hint failure, got: %v", err)
	}
	if result.SessionID == "" {
		t.Error("expected a session id")
	}
}

func TestHints_GeneratesOncePersistsAndReplays(t *testing.T) {
	repo := newFakeRepo()
	sess := seedSession(t, repo, 20)
	svc, mock := newTestService(repo,
		llm.MockResponse{Content: json.RawMessage(`Think about what Sara starts with.`)},
		llm.MockResponse{Content: json.RawMessage(`Adding means combining two groups.`)},
		llm.MockResponse{Content: json.RawMessage(`Add 12 and 8 to get the total.`)},
	)

	hints, err := svc.Hints(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hints) != HintBatchSize {
		t.Fatalf("expected %d hints, got %d", HintBatchSize, len(hints))
	}
	for i, h := range hints {
		if h.Order != i+1 {
			t.Errorf("hint %d has ordinal %d", i, h.Order)
		}
	}
	if mock.CallCount() != HintBatchSize {
		t.Fatalf("expected %d provider calls, got %d", HintBatchSize, mock.CallCount())
	}

	// Each hint level must have been requested exactly once, in whatever
	// order the goroutines ran.
	levels := map[string]bool{}
	for _, call := range mock.Calls {
		for level := 1; level <= HintBatchSize; level++ {
			if strings.Contains(call.Messages[0].Content, fmt.Sprintf("Hint level: %d of", level)) {
				levels[fmt.Sprint(level)] = true
			}
		}
	}
	if len(levels) != HintBatchSize {
		t.Errorf("expected all %d levels requested, got %v", HintBatchSize, levels)
	}

	// Second read replays the stored batch with zero provider calls.
	again, err := svc.Hints(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("unexpected error on replay: %v", err)
	}
	if len(again) != HintBatchSize {
		t.Fatalf("expected %d hints on replay, got %d", HintBatchSize, len(again))
	}
	if mock.CallCount() != HintBatchSize {
		t.Errorf("replay must not call the provider, got %d calls", mock.CallCount())
	}
}

func TestHints_PartialFailureFailsWholeBatch(t *testing.T) {
	repo := newFakeRepo()
	sess := seedSession(t, repo, 20)
	svc, _ := newTestService(repo,
		llm.MockResponse{Content: json.RawMessage(`A hint.`)},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Content: json.RawMessage(`Another hint.`)},
	)

	_, err := svc.Hints(context.Background(), sess.ID)
	if !errors.Is(err, ErrGeneration) {
		t.Fatalf("expected ErrGeneration, got: %v", err)
	}
	stored, _ := repo.HintsForSession(context.Background(), sess.ID)
	if len(stored) != 0 {
		t.Errorf("no hints should be persisted after a partial failure, got %d", len(stored))
	}
}

func TestHints_UnknownSession(t *testing.T) {
	repo := newFakeRepo()
	svc, mock := newTestService(repo)

	_, err := svc.Hints(context.Background(), uuid.NewString())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected no provider calls, got %d", mock.CallCount())
	}
}

func TestHints_MissingSessionID(t *testing.T) {
	repo := newFakeRepo()
	svc, _ := newTestService(repo)

	_, err := svc.Hints(context.Background(), "  ")
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got: %v", err)
	}
}

func TestSubmit_GradesWithTolerance(t *testing.T) {
	tests := []struct {
		name       string
		correct    float64
		answer     float64
		wantsRight bool
	}{
		{"exact", 20, 20, true},
		{"within tolerance", 20, 20.00005, true},
		{"at tolerance boundary", 20, 20.0001, false},
		{"plainly wrong", 20, 18, false},
		{"fractional exact", 1.25, 1.25, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			sess := seedSession(t, repo, tt.correct)
			svc, _ := newTestService(repo, llm.MockResponse{Content: json.RawMessage(`Nice effort!`)})

			result, err := svc.Submit(context.Background(), sess.ID, tt.answer)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.IsCorrect != tt.wantsRight {
				t.Errorf("IsCorrect = %t, want %t", result.IsCorrect, tt.wantsRight)
			}
			wantPoints := 0
			if tt.wantsRight {
				wantPoints = sess.Score
			}
			if result.PointsEarned != wantPoints {
				t.Errorf("PointsEarned = %d, want %d", result.PointsEarned, wantPoints)
			}
			if result.Feedback != "Nice effort!" {
				t.Errorf("unexpected feedback: %q", result.Feedback)
			}
		})
	}
}

func TestSubmit_UnknownSession(t *testing.T) {
	repo := newFakeRepo()
	svc, _ := newTestService(repo)

	_, err := svc.Submit(context.Background(), uuid.NewString(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestSubmit_RepeatAttemptsAllRecorded(t *testing.T) {
	repo := newFakeRepo()
	sess := seedSession(t, repo, 20)
	svc, _ := newTestService(repo,
		llm.MockResponse{Content: json.RawMessage(`Not quite.`)},
		llm.MockResponse{Content: json.RawMessage(`You got it!`)},
	)

	if _, err := svc.Submit(context.Background(), sess.ID, 18); err != nil {
		t.Fatalf("first attempt: %v", err)
	}
	if _, err := svc.Submit(context.Background(), sess.ID, 20); err != nil {
		t.Fatalf("second attempt: %v", err)
	}
	if len(repo.subs) != 2 {
		t.Errorf("expected 2 recorded submissions, got %d", len(repo.subs))
	}
}

func TestSolution_GeneratesOnceThenReplays(t *testing.T) {
	repo := newFakeRepo()
	sess := seedSession(t, repo, 20)
	svc, mock := newTestService(repo,
		llm.MockResponse{Content: json.RawMessage(`1. Start with 12 apples. 2. Add 8. 3. The answer is 20.`)},
	)

	first, err := svc.Solution(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == "" {
		t.Fatal("expected solution text")
	}
	if mock.Calls[0].Temperature != 0.5 {
		t.Errorf("solution should use temperature 0.5, got %v", mock.Calls[0].Temperature)
	}

	second, err := svc.Solution(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("unexpected error on replay: %v", err)
	}
	if second != first {
		t.Errorf("replay returned different text: %q vs %q", second, first)
	}
	if mock.CallCount() != 1 {
		t.Errorf("replay must not call the provider, got %d calls", mock.CallCount())
	}
}

func TestSolution_ConcurrentRequestsAgree(t *testing.T) {
	repo := newFakeRepo()
	sess := seedSession(t, repo, 20)
	svc, _ := newTestService(repo,
		llm.MockResponse{Content: json.RawMessage(`Solution A`)},
		llm.MockResponse{Content: json.RawMessage(`Solution B`)},
	)

	const n = 2
	results := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			text, err := svc.Solution(context.Background(), sess.ID)
			if err != nil {
				t.Errorf("concurrent solution: %v", err)
				return
			}
			results[i] = text
		}(i)
	}
	wg.Wait()

	if results[0] != results[1] {
		t.Errorf("concurrent callers observed different solutions: %q vs %q", results[0], results[1])
	}
	if *repo.sessions[sess.ID].SolutionSteps != results[0] {
		t.Error("stored solution does not match what callers observed")
	}
}

func TestSolution_UnknownSession(t *testing.T) {
	repo := newFakeRepo()
	svc, _ := newTestService(repo)

	_, err := svc.Solution(context.Background(), uuid.NewString())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestHistory_DefaultLimitAndScore(t *testing.T) {
	repo := newFakeRepo()
	sess := seedSession(t, repo, 20)
	svc, _ := newTestService(repo, llm.MockResponse{Content: json.RawMessage(`You got it!`)})

	if _, err := svc.Submit(context.Background(), sess.ID, 20); err != nil {
		t.Fatalf("submit: %v", err)
	}

	result, err := svc.History(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Entries) != 1 {
		t.Errorf("expected 1 entry, got %d", len(result.Entries))
	}
	if result.Score.TotalScore != 20 {
		t.Errorf("expected total score 20, got %d", result.Score.TotalScore)
	}
	if result.Score.ProblemsSolved != 1 {
		t.Errorf("expected 1 solved, got %d", result.Score.ProblemsSolved)
	}
}

func TestHistory_ConfiguredDefaultLimit(t *testing.T) {
	repo := newFakeRepo()
	for i := 0; i < 3; i++ {
		seedSession(t, repo, 20)
	}
	svc := NewService(llm.NewMockProvider(), repo, nil, 2)

	result, err := svc.History(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Entries) != 2 {
		t.Errorf("expected the configured limit of 2 entries, got %d", len(result.Entries))
	}

	// An explicit limit still overrides the configured default.
	result, err = svc.History(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Entries) != 3 {
		t.Errorf("expected 3 entries with explicit limit, got %d", len(result.Entries))
	}
}

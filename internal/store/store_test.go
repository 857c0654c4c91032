package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func createTestSession(t *testing.T, repo SessionRepo, score int) *Session {
	t.Helper()
	s, err := repo.CreateSession(context.Background(), CreateSessionData{
		ProblemText:    "A baker sells 245 muffins on Monday and 318 on Tuesday. How many in total?",
		CorrectAnswer:  563,
		Difficulty:     "medium",
		ProblemType:    "addition",
		Score:          score,
		HintsAvailable: 3,
	})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestCreateAndGetSession(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	created := createTestSession(t, repo, 20)
	if created.ID == "" {
		t.Fatal("expected generated session id")
	}
	if created.SolutionSteps != nil {
		t.Errorf("expected no solution on a new session, got %q", *created.SolutionSteps)
	}

	got, err := repo.GetSession(ctx, created.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got == nil {
		t.Fatal("expected session, got nil")
	}
	if got.ProblemText != created.ProblemText {
		t.Errorf("problem text = %q, want %q", got.ProblemText, created.ProblemText)
	}
	if got.CorrectAnswer != 563 {
		t.Errorf("correct answer = %v, want 563", got.CorrectAnswer)
	}
	if got.Difficulty != "medium" || got.ProblemType != "addition" {
		t.Errorf("persisted %s/%s, want medium/addition", got.Difficulty, got.ProblemType)
	}
	if got.Score != 20 {
		t.Errorf("score = %d, want 20", got.Score)
	}
	if got.HintsAvailable != 3 {
		t.Errorf("hints available = %d, want 3", got.HintsAvailable)
	}
}

func TestGetSessionAbsent(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()

	got, err := repo.GetSession(context.Background(), "no-such-id")
	if err != nil {
		t.Fatalf("expected nil error for absent session, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil session, got %+v", got)
	}
}

func TestHintBatchOrdinals(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	sess := createTestSession(t, repo, 20)
	texts := []string{"Read the problem twice.", "Add the two amounts.", "Line up the digits and carry."}

	created, err := repo.CreateHintBatch(ctx, sess.ID, texts)
	if err != nil {
		t.Fatalf("create hint batch: %v", err)
	}
	if len(created) != 3 {
		t.Fatalf("created %d hints, want 3", len(created))
	}

	hints, err := repo.HintsForSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("hints for session: %v", err)
	}
	if len(hints) != 3 {
		t.Fatalf("got %d hints, want 3", len(hints))
	}
	for i, h := range hints {
		if h.Order != i+1 {
			t.Errorf("hint[%d] order = %d, want %d", i, h.Order, i+1)
		}
		if h.Text != texts[i] {
			t.Errorf("hint[%d] text = %q, want %q", i, h.Text, texts[i])
		}
	}
}

func TestHintBatchIsAtomic(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	sess := createTestSession(t, repo, 20)

	// An empty hint text violates the schema, so the whole batch must
	// roll back, leaving no partial set behind.
	_, err := repo.CreateHintBatch(ctx, sess.ID, []string{"First hint.", "", "Third hint."})
	if err == nil {
		t.Fatal("expected batch insert to fail")
	}

	hints, err := repo.HintsForSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("hints for session: %v", err)
	}
	if len(hints) != 0 {
		t.Fatalf("expected no hints after failed batch, got %d", len(hints))
	}
}

func TestCreateSubmissionScoring(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	sess := createTestSession(t, repo, 30)

	correct, err := repo.CreateSubmission(ctx, CreateSubmissionData{
		SessionID:  sess.ID,
		UserAnswer: 563,
		IsCorrect:  true,
		Feedback:   "Great work!",
	})
	if err != nil {
		t.Fatalf("create correct submission: %v", err)
	}
	if correct.PointsEarned != 30 {
		t.Errorf("points earned = %d, want session score 30", correct.PointsEarned)
	}

	wrong, err := repo.CreateSubmission(ctx, CreateSubmissionData{
		SessionID:  sess.ID,
		UserAnswer: 500,
		IsCorrect:  false,
		Feedback:   "Close, check your carrying.",
	})
	if err != nil {
		t.Fatalf("create incorrect submission: %v", err)
	}
	if wrong.PointsEarned != 0 {
		t.Errorf("points earned = %d, want 0 for incorrect answer", wrong.PointsEarned)
	}
}

func TestCreateSubmissionUnknownSession(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()

	_, err := repo.CreateSubmission(context.Background(), CreateSubmissionData{
		SessionID:  "no-such-id",
		UserAnswer: 1,
	})
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestAttachSolutionFirstWriterWins(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	sess := createTestSession(t, repo, 20)

	first, err := repo.AttachSolution(ctx, sess.ID, "Step 1: add 245 and 318.")
	if err != nil {
		t.Fatalf("first attach: %v", err)
	}
	if first != "Step 1: add 245 and 318." {
		t.Errorf("first attach returned %q", first)
	}

	// A second writer must not overwrite; it observes the stored text.
	second, err := repo.AttachSolution(ctx, sess.ID, "Completely different solution.")
	if err != nil {
		t.Fatalf("second attach: %v", err)
	}
	if second != first {
		t.Errorf("second attach returned %q, want the first writer's %q", second, first)
	}

	got, err := repo.GetSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.SolutionSteps == nil || *got.SolutionSteps != first {
		t.Errorf("stored solution = %v, want %q", got.SolutionSteps, first)
	}
}

func TestAttachSolutionUnknownSession(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()

	_, err := repo.AttachSolution(context.Background(), "no-such-id", "text")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestHistoryNewestFirstWithLatestSubmission(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	older := createTestSession(t, repo, 10)
	newer := createTestSession(t, repo, 20)

	// Two submissions on the older session; only the latest should appear.
	if _, err := repo.CreateSubmission(ctx, CreateSubmissionData{
		SessionID: older.ID, UserAnswer: 1, IsCorrect: false, Feedback: "first try",
	}); err != nil {
		t.Fatalf("submission 1: %v", err)
	}
	if _, err := repo.CreateSubmission(ctx, CreateSubmissionData{
		SessionID: older.ID, UserAnswer: 563, IsCorrect: true, Feedback: "second try",
	}); err != nil {
		t.Fatalf("submission 2: %v", err)
	}

	entries, err := repo.History(ctx, 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Session.ID != newer.ID {
		t.Errorf("entries[0] = %s, want newest session %s", entries[0].Session.ID, newer.ID)
	}
	if entries[0].Submission != nil {
		t.Errorf("newest session has no submissions, got %+v", entries[0].Submission)
	}
	if entries[1].Submission == nil {
		t.Fatal("older session should carry its latest submission")
	}
	if entries[1].Submission.Feedback != "second try" {
		t.Errorf("latest submission feedback = %q, want %q", entries[1].Submission.Feedback, "second try")
	}
}

func TestHistoryTieBreakOnEqualTimestamps(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Insert directly so both rows share the exact same created_at.
	ts := time.Now().UTC().Truncate(time.Second)
	for _, id := range []string{"inserted-first", "inserted-second"} {
		_, err := s.DB().ExecContext(ctx, `
			INSERT INTO problem_sessions
				(id, problem_text, correct_answer, difficulty, problem_type, score, hints_available, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			id, "A problem.", 1.0, "easy", "addition", 10, 3, ts)
		if err != nil {
			t.Fatalf("insert %s: %v", id, err)
		}
	}

	entries, err := s.SessionRepo().History(ctx, 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Session.ID != "inserted-second" {
		t.Errorf("entries[0] = %s, want the later insert first", entries[0].Session.ID)
	}
	if entries[1].Session.ID != "inserted-first" {
		t.Errorf("entries[1] = %s, want the earlier insert last", entries[1].Session.ID)
	}
}

func TestHistoryLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()

	for range 5 {
		createTestSession(t, repo, 10)
	}

	entries, err := repo.History(context.Background(), 3)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
}

func TestUserScoreAggregate(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	empty, err := repo.UserScore(ctx)
	if err != nil {
		t.Fatalf("user score (empty): %v", err)
	}
	if empty.TotalScore != 0 || empty.ProblemsAttempted != 0 || empty.ProblemsSolved != 0 {
		t.Errorf("expected zero aggregate, got %+v", empty)
	}

	solved := createTestSession(t, repo, 20)
	attempted := createTestSession(t, repo, 10)

	// Solved session: one wrong attempt, then one correct.
	for _, sub := range []CreateSubmissionData{
		{SessionID: solved.ID, UserAnswer: 1, IsCorrect: false},
		{SessionID: solved.ID, UserAnswer: 563, IsCorrect: true},
		{SessionID: attempted.ID, UserAnswer: 2, IsCorrect: false},
	} {
		if _, err := repo.CreateSubmission(ctx, sub); err != nil {
			t.Fatalf("create submission: %v", err)
		}
	}

	score, err := repo.UserScore(ctx)
	if err != nil {
		t.Fatalf("user score: %v", err)
	}
	if score.TotalScore != 20 {
		t.Errorf("total score = %d, want 20", score.TotalScore)
	}
	if score.ProblemsAttempted != 2 {
		t.Errorf("problems attempted = %d, want 2", score.ProblemsAttempted)
	}
	if score.ProblemsSolved != 1 {
		t.Errorf("problems solved = %d, want 1", score.ProblemsSolved)
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "gemini",
		Model:        "gemini-2.0-flash",
		Purpose:      "problem-gen",
		InputTokens:  120,
		OutputTokens: 80,
		LatencyMs:    950,
		Success:      true,
		RequestBody:  "[user]\nGenerate a problem",
		ResponseBody: `{"problem_text":"...","correct_answer":5}`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Purpose != "problem-gen" || !events[0].Success {
		t.Errorf("unexpected event: %+v", events[0])
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Model != "gemini-2.0-flash" {
		t.Errorf("unexpected event by id: %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing event, got %+v", missing)
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	seed := []LLMRequestEventData{
		{Provider: "gemini", Model: "m", Purpose: "hint", InputTokens: 10, OutputTokens: 5, Success: true},
		{Provider: "gemini", Model: "m", Purpose: "hint", InputTokens: 20, OutputTokens: 15, Success: false, ErrorMessage: "boom"},
		{Provider: "gemini", Model: "m", Purpose: "solution", InputTokens: 40, OutputTokens: 30, Success: true},
	}
	for _, e := range seed {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d purposes, want 2", len(stats))
	}

	// Ordered by purpose: hint before solution.
	if stats[0].Purpose != "hint" || stats[0].Calls != 2 || stats[0].InputTokens != 30 || stats[0].Failures != 1 {
		t.Errorf("unexpected hint stats: %+v", stats[0])
	}
	if stats[1].Purpose != "solution" || stats[1].Calls != 1 || stats[1].OutputTokens != 30 {
		t.Errorf("unexpected solution stats: %+v", stats[1])
	}
}

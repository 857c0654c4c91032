package problems

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"

	"github.com/rahulv/mathquest/internal/llm"
	"github.com/rahulv/mathquest/internal/store"
)

// Sampling parameters shared by all generation calls. Solutions run at a
// lower temperature so the worked steps stay deterministic.
const (
	maxOutputTokens     = 2048
	defaultTemperature  = 0.7
	solutionTemperature = 0.5
	samplingTopK        = 1
	samplingTopP        = 0.8
)

// answerTolerance is the absolute difference under which a submitted answer
// counts as correct.
const answerTolerance = 1e-4

// defaultHistoryLimit caps history queries when the caller does not give one.
const defaultHistoryLimit = 10

// Service orchestrates problem generation, hinting, grading, and history on
// top of an AI provider and the session store.
type Service struct {
	provider     llm.Provider
	sessions     store.SessionRepo
	logger       *slog.Logger
	historyLimit int
}

// NewService builds a Service. A nil logger falls back to slog.Default;
// a non-positive historyLimit falls back to the built-in default.
func NewService(provider llm.Provider, sessions store.SessionRepo, logger *slog.Logger, historyLimit int) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if historyLimit <= 0 {
		historyLimit = defaultHistoryLimit
	}
	return &Service{provider: provider, sessions: sessions, logger: logger, historyLimit: historyLimit}
}

// GenerateResult is the outcome of a successful Generate call.
type GenerateResult struct {
	SessionID     string
	ProblemText   string
	CorrectAnswer float64
	Difficulty    Difficulty
	Operation     Operation
	HintsTotal    int
	ScoreValue    int
}

// SubmitResult is the outcome of grading one answer attempt.
type SubmitResult struct {
	IsCorrect    bool
	Feedback     string
	PointsEarned int
}

// HistoryResult pairs recent sessions with the account-wide score.
type HistoryResult struct {
	Entries []store.HistoryEntry
	Score   store.UserScore
}

// Generate creates a new word problem at the given difficulty and operation,
// persists it as a session, and returns the stored values. Empty fields take
// the defaults; unrecognized values are rejected.
func (s *Service) Generate(ctx context.Context, difficulty Difficulty, operation Operation) (*GenerateResult, error) {
	if difficulty == "" {
		difficulty = DefaultDifficulty
	}
	if operation == "" {
		operation = DefaultOperation
	}
	if !difficulty.Valid() {
		return nil, fmt.Errorf("%w: difficulty %q", ErrInvalidParameter, difficulty)
	}
	if !operation.Valid() {
		return nil, fmt.Errorf("%w: operation %q", ErrInvalidParameter, operation)
	}

	ctx = llm.WithPurpose(ctx, "problem-gen")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System: generateSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGeneratePrompt(difficulty, operation)},
		},
		MaxTokens:   maxOutputTokens,
		Temperature: defaultTemperature,
		TopK:        samplingTopK,
		TopP:        samplingTopP,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	problem, err := ParseProblem(string(resp.Content))
	if err != nil {
		return nil, err
	}

	sess, err := s.sessions.CreateSession(ctx, store.CreateSessionData{
		ProblemText:    problem.ProblemText,
		CorrectAnswer:  problem.CorrectAnswer,
		Difficulty:     string(difficulty),
		ProblemType:    string(operation),
		Score:          difficulty.Points(),
		HintsAvailable: HintBatchSize,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	// Hints suggested alongside the problem are stored opportunistically.
	// A later hints request regenerates them if this fails, so a bad batch
	// must not fail the whole generate call.
	if texts := cleanHintTexts(problem.Hints); len(texts) == HintBatchSize {
		if _, err := s.sessions.CreateHintBatch(ctx, sess.ID, texts); err != nil {
			s.logger.Warn("storing suggested hints failed",
				"session_id", sess.ID, "error", err)
		}
	}

	return &GenerateResult{
		SessionID:     sess.ID,
		ProblemText:   sess.ProblemText,
		CorrectAnswer: sess.CorrectAnswer,
		Difficulty:    difficulty,
		Operation:     operation,
		HintsTotal:    sess.HintsAvailable,
		ScoreValue:    sess.Score,
	}, nil
}

// Hints returns the session's three progressive hints, generating and
// persisting them on first request. Repeat calls return the stored batch
// without touching the provider.
func (s *Service) Hints(ctx context.Context, sessionID string) ([]store.Hint, error) {
	sess, err := s.lookupSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	existing, err := s.sessions.HintsForSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if len(existing) > 0 {
		return existing, nil
	}

	texts, err := s.generateHintBatch(ctx, sess)
	if err != nil {
		return nil, err
	}

	created, err := s.sessions.CreateHintBatch(ctx, sessionID, texts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return created, nil
}

// generateHintBatch fans out one provider call per hint level and waits for
// all of them. Any failure fails the batch so ordinals stay dense.
func (s *Service) generateHintBatch(ctx context.Context, sess *store.Session) ([]string, error) {
	ctx = llm.WithPurpose(ctx, "hint")

	texts := make([]string, HintBatchSize)
	errs := make([]error, HintBatchSize)

	var wg sync.WaitGroup
	for level := 1; level <= HintBatchSize; level++ {
		wg.Add(1)
		go func(level int) {
			defer wg.Done()
			resp, err := s.provider.Generate(ctx, llm.Request{
				System: hintSystemPrompt,
				Messages: []llm.Message{
					{Role: llm.RoleUser, Content: buildHintPrompt(
						sess.ProblemText,
						Difficulty(sess.Difficulty),
						Operation(sess.ProblemType),
						level,
					)},
				},
				MaxTokens:   maxOutputTokens,
				Temperature: defaultTemperature,
				TopK:        samplingTopK,
				TopP:        samplingTopP,
			})
			if err != nil {
				errs[level-1] = err
				return
			}
			texts[level-1] = strings.TrimSpace(string(resp.Content))
		}(level)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
		}
	}
	for _, text := range texts {
		if text == "" {
			return nil, fmt.Errorf("%w: empty hint", ErrGeneration)
		}
	}
	return texts, nil
}

// Submit grades an answer attempt against the session's stored correct
// answer, asks the provider for feedback, and persists the attempt.
func (s *Service) Submit(ctx context.Context, sessionID string, userAnswer float64) (*SubmitResult, error) {
	sess, err := s.lookupSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	isCorrect := math.Abs(userAnswer-sess.CorrectAnswer) < answerTolerance

	ctx = llm.WithPurpose(ctx, "feedback")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System: feedbackSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildFeedbackPrompt(
				sess.ProblemText, sess.CorrectAnswer, userAnswer, isCorrect,
			)},
		},
		MaxTokens:   maxOutputTokens,
		Temperature: defaultTemperature,
		TopK:        samplingTopK,
		TopP:        samplingTopP,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	feedback := strings.TrimSpace(string(resp.Content))

	sub, err := s.sessions.CreateSubmission(ctx, store.CreateSubmissionData{
		SessionID:  sessionID,
		UserAnswer: userAnswer,
		IsCorrect:  isCorrect,
		Feedback:   feedback,
	})
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return &SubmitResult{
		IsCorrect:    sub.IsCorrect,
		Feedback:     sub.Feedback,
		PointsEarned: sub.PointsEarned,
	}, nil
}

// Solution returns the session's worked solution, generating and attaching
// it on first request. The store keeps at most one solution per session;
// whichever caller writes first wins and everyone reads the winner's text.
func (s *Service) Solution(ctx context.Context, sessionID string) (string, error) {
	sess, err := s.lookupSession(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if sess.SolutionSteps != nil {
		return *sess.SolutionSteps, nil
	}

	ctx = llm.WithPurpose(ctx, "solution")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System: solutionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSolutionPrompt(
				sess.ProblemText,
				Difficulty(sess.Difficulty),
				Operation(sess.ProblemType),
				sess.CorrectAnswer,
			)},
		},
		MaxTokens:   maxOutputTokens,
		Temperature: solutionTemperature,
		TopK:        samplingTopK,
		TopP:        samplingTopP,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	text := strings.TrimSpace(string(resp.Content))
	if text == "" {
		return "", fmt.Errorf("%w: empty solution", ErrGeneration)
	}

	stored, err := s.sessions.AttachSolution(ctx, sessionID, text)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return stored, nil
}

// History returns up to limit recent sessions, newest first, together with
// the account-wide score aggregate. A non-positive limit uses the
// configured default.
func (s *Service) History(ctx context.Context, limit int) (*HistoryResult, error) {
	if limit <= 0 {
		limit = s.historyLimit
	}

	entries, err := s.sessions.History(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	score, err := s.sessions.UserScore(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &HistoryResult{Entries: entries, Score: *score}, nil
}

// lookupSession fetches a session and maps absence to ErrNotFound.
func (s *Service) lookupSession(ctx context.Context, sessionID string) (*store.Session, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, fmt.Errorf("%w: missing sessionId", ErrInvalidParameter)
	}
	sess, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if sess == nil {
		return nil, ErrNotFound
	}
	return sess, nil
}

// cleanHintTexts trims the model's suggested hints and drops the batch when
// any entry is blank.
func cleanHintTexts(hints []string) []string {
	if len(hints) < HintBatchSize {
		return nil
	}
	out := make([]string, 0, HintBatchSize)
	for _, h := range hints[:HintBatchSize] {
		h = strings.TrimSpace(h)
		if h == "" {
			return nil
		}
		out = append(out, h)
	}
	return out
}

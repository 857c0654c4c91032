package store

import (
	"context"
	"database/sql"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/rahulv/mathquest/ent"
	"github.com/rahulv/mathquest/ent/hint"
	"github.com/rahulv/mathquest/ent/problemsession"
	"github.com/rahulv/mathquest/ent/submission"
)

// sessionRepo implements SessionRepo using the ent client. The raw *sql.DB
// is kept beside it for the score aggregate, which ent has no primitive for.
type sessionRepo struct {
	client *ent.Client
	db     *sql.DB
}

func (r *sessionRepo) CreateSession(ctx context.Context, data CreateSessionData) (*Session, error) {
	s, err := r.client.ProblemSession.Create().
		SetProblemText(data.ProblemText).
		SetCorrectAnswer(data.CorrectAnswer).
		SetDifficulty(problemsession.Difficulty(data.Difficulty)).
		SetProblemType(problemsession.ProblemType(data.ProblemType)).
		SetScore(data.Score).
		SetHintsAvailable(data.HintsAvailable).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return entSessionToSession(s), nil
}

func (r *sessionRepo) GetSession(ctx context.Context, id string) (*Session, error) {
	s, err := r.client.ProblemSession.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session: %w", err)
	}
	return entSessionToSession(s), nil
}

func (r *sessionRepo) CreateHintBatch(ctx context.Context, sessionID string, texts []string) ([]Hint, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin hint batch: %w", err)
	}

	builders := make([]*ent.HintCreate, len(texts))
	for i, text := range texts {
		builders[i] = tx.Hint.Create().
			SetSessionID(sessionID).
			SetHintText(text).
			SetHintOrder(i + 1)
	}

	rows, err := tx.Hint.CreateBulk(builders...).Save(ctx)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return nil, fmt.Errorf("save hint batch: %w (rollback: %v)", err, rbErr)
		}
		return nil, fmt.Errorf("save hint batch: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit hint batch: %w", err)
	}

	hints := make([]Hint, len(rows))
	for i, h := range rows {
		hints[i] = entHintToHint(h)
	}
	return hints, nil
}

func (r *sessionRepo) HintsForSession(ctx context.Context, sessionID string) ([]Hint, error) {
	rows, err := r.client.Hint.Query().
		Where(hint.SessionID(sessionID)).
		Order(ent.Asc(hint.FieldHintOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query hints: %w", err)
	}

	hints := make([]Hint, len(rows))
	for i, h := range rows {
		hints[i] = entHintToHint(h)
	}
	return hints, nil
}

func (r *sessionRepo) CreateSubmission(ctx context.Context, data CreateSubmissionData) (*Submission, error) {
	// Re-read the session so points_earned always reflects the stored
	// score, regardless of what the caller believes it to be.
	s, err := r.client.ProblemSession.Get(ctx, data.SessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("query session for submission: %w", err)
	}

	points := 0
	if data.IsCorrect {
		points = s.Score
	}

	sub, err := r.client.Submission.Create().
		SetSessionID(data.SessionID).
		SetUserAnswer(data.UserAnswer).
		SetIsCorrect(data.IsCorrect).
		SetFeedbackText(data.Feedback).
		SetPointsEarned(points).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save submission: %w", err)
	}
	return entSubmissionToSubmission(sub), nil
}

func (r *sessionRepo) AttachSolution(ctx context.Context, sessionID, text string) (string, error) {
	n, err := r.client.ProblemSession.Update().
		Where(
			problemsession.ID(sessionID),
			problemsession.SolutionStepsIsNil(),
		).
		SetSolutionSteps(text).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("attach solution: %w", err)
	}
	if n > 0 {
		return text, nil
	}

	// No row updated: either the session doesn't exist or another writer
	// attached a solution first. Re-read to find out which.
	s, err := r.client.ProblemSession.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrSessionNotFound
		}
		return "", fmt.Errorf("re-read session after attach: %w", err)
	}
	if s.SolutionSteps == nil {
		return "", fmt.Errorf("attach solution: no row updated for session %s", sessionID)
	}
	return *s.SolutionSteps, nil
}

func (r *sessionRepo) History(ctx context.Context, limit int) ([]HistoryEntry, error) {
	// rowid breaks ties between sessions created in the same clock tick,
	// keeping the order stable at insertion order.
	sessions, err := r.client.ProblemSession.Query().
		Order(
			ent.Desc(problemsession.FieldCreatedAt),
			func(s *entsql.Selector) { s.OrderBy(entsql.Desc("rowid")) },
		).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query history sessions: %w", err)
	}

	entries := make([]HistoryEntry, 0, len(sessions))
	for _, s := range sessions {
		entry := HistoryEntry{Session: *entSessionToSession(s)}

		sub, err := r.client.Submission.Query().
			Where(submission.SessionID(s.ID)).
			Order(ent.Desc(submission.FieldCreatedAt)).
			First(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return nil, fmt.Errorf("query latest submission: %w", err)
		}
		if sub != nil {
			entry.Submission = entSubmissionToSubmission(sub)
		}

		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *sessionRepo) UserScore(ctx context.Context) (*UserScore, error) {
	var score UserScore
	err := r.db.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(points_earned), 0),
			COUNT(DISTINCT session_id),
			COUNT(DISTINCT CASE WHEN is_correct THEN session_id END)
		FROM submissions`,
	).Scan(&score.TotalScore, &score.ProblemsAttempted, &score.ProblemsSolved)
	if err != nil {
		return nil, fmt.Errorf("aggregate user score: %w", err)
	}
	return &score, nil
}

func entSessionToSession(s *ent.ProblemSession) *Session {
	return &Session{
		ID:             s.ID,
		ProblemText:    s.ProblemText,
		CorrectAnswer:  s.CorrectAnswer,
		Difficulty:     string(s.Difficulty),
		ProblemType:    string(s.ProblemType),
		SolutionSteps:  s.SolutionSteps,
		Score:          s.Score,
		HintsAvailable: s.HintsAvailable,
		CreatedAt:      s.CreatedAt,
	}
}

func entHintToHint(h *ent.Hint) Hint {
	return Hint{
		ID:        h.ID,
		SessionID: h.SessionID,
		Text:      h.HintText,
		Order:     h.HintOrder,
	}
}

func entSubmissionToSubmission(s *ent.Submission) *Submission {
	return &Submission{
		ID:           s.ID,
		SessionID:    s.SessionID,
		UserAnswer:   s.UserAnswer,
		IsCorrect:    s.IsCorrect,
		Feedback:     s.FeedbackText,
		PointsEarned: s.PointsEarned,
		CreatedAt:    s.CreatedAt,
	}
}

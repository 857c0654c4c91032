package store

import (
	"context"
	"errors"
	"time"
)

// ErrSessionNotFound is returned by writes that reference a session id with
// no matching row. Reads signal absence with a nil result instead.
var ErrSessionNotFound = errors.New("problem session not found")

// Session is one generated problem with its grading metadata.
type Session struct {
	ID             string
	ProblemText    string
	CorrectAnswer  float64
	Difficulty     string
	ProblemType    string
	SolutionSteps  *string
	Score          int
	HintsAvailable int
	CreatedAt      time.Time
}

// Hint is one progressive hint belonging to a session.
type Hint struct {
	ID        int
	SessionID string
	Text      string
	Order     int
}

// Submission is one graded answer attempt.
type Submission struct {
	ID           int
	SessionID    string
	UserAnswer   float64
	IsCorrect    bool
	Feedback     string
	PointsEarned int
	CreatedAt    time.Time
}

// HistoryEntry pairs a session with its most recent submission, if any.
type HistoryEntry struct {
	Session    Session
	Submission *Submission
}

// UserScore is the account-wide aggregate maintained from submissions.
type UserScore struct {
	TotalScore        int
	ProblemsAttempted int
	ProblemsSolved    int
}

// CreateSessionData holds the fields for a new session row.
type CreateSessionData struct {
	ProblemText    string
	CorrectAnswer  float64
	Difficulty     string
	ProblemType    string
	Score          int
	HintsAvailable int
}

// CreateSubmissionData holds the fields for a new submission row.
// Points earned are not accepted from the caller: the repo re-reads the
// session's score at write time so the scoring rule lives in one place.
type CreateSubmissionData struct {
	SessionID  string
	UserAnswer float64
	IsCorrect  bool
	Feedback   string
}

// SessionRepo owns all durable problem-session state.
type SessionRepo interface {
	// CreateSession persists a new session and returns it with its
	// generated id and timestamp.
	CreateSession(ctx context.Context, data CreateSessionData) (*Session, error)

	// GetSession returns the session with the given id, or (nil, nil)
	// when no row matches. Errors indicate backend failure only.
	GetSession(ctx context.Context, id string) (*Session, error)

	// CreateHintBatch persists the given hint texts as one transaction
	// with dense 1-based ordinals. All-or-nothing: a partial batch is
	// never observable.
	CreateHintBatch(ctx context.Context, sessionID string, texts []string) ([]Hint, error)

	// HintsForSession returns the session's hints ordered by ordinal.
	HintsForSession(ctx context.Context, sessionID string) ([]Hint, error)

	// CreateSubmission persists a graded attempt, computing points_earned
	// from the session's stored score.
	CreateSubmission(ctx context.Context, data CreateSubmissionData) (*Submission, error)

	// AttachSolution sets solution_steps if and only if it is still
	// unset (single-writer), and returns the text that won. Concurrent
	// callers all observe the same stored solution.
	AttachSolution(ctx context.Context, sessionID, text string) (string, error)

	// History returns up to limit sessions, newest first, each joined
	// with at most one (the latest) submission.
	History(ctx context.Context, limit int) ([]HistoryEntry, error)

	// UserScore returns the aggregate score across all submissions.
	UserScore(ctx context.Context) (*UserScore, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a persisted LLM request event.
type LLMEvent struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// LLMUsageStats aggregates token usage for one request purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	Failures     int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one event by id, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates calls and token usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)
}

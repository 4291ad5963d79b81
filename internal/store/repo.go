package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
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

// LLMEventRecord is a stored LLM request event as returned by queries.
type LLMEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStat aggregates LLM usage per (provider, model, purpose).
type LLMUsageStat struct {
	Provider     string
	Model        string
	Purpose      string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// StudySessionEventData captures a study session lifecycle event.
type StudySessionEventData struct {
	SessionID     string
	Action        string // start, finish, or abandon
	Level         string
	Subject       string
	Topic         string
	Source        string // topic-quiz, brevet-blanc, or annales
	Difficulty    string
	QuestionCount int
	Score         int
	MaxScore      int
	DurationSecs  int
}

// StudySessionRecord is a stored study session event as returned by queries.
type StudySessionRecord struct {
	Sequence  int64
	Timestamp time.Time
	StudySessionEventData
}

// AnswerEventData captures one answered quiz question.
type AnswerEventData struct {
	SessionID     string
	QuestionID    int
	QuestionType  string // MCQ or OPEN
	QuestionText  string
	LearnerAnswer string
	Correct       bool
	Points        int
	Feedback      string
	GradedBy      string // exact, ai, or fallback
	TimeMs        int
}

// AnswerRecord is a stored answer event as returned by queries.
type AnswerRecord struct {
	Sequence  int64
	Timestamp time.Time
	AnswerEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns the event with the given sequence, or nil if absent.
	GetLLMEvent(ctx context.Context, sequence int64) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per provider, model, and purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// AppendStudySession records a study session lifecycle event.
	AppendStudySession(ctx context.Context, data StudySessionEventData) error

	// ListStudySessions returns study session events, newest first.
	ListStudySessions(ctx context.Context, opts QueryOpts) ([]StudySessionRecord, error)

	// AppendAnswer records an answered quiz question.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AnswersForSession returns the answers for a session in quiz order.
	AnswersForSession(ctx context.Context, sessionID string) ([]AnswerRecord, error)
}

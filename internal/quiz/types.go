// Package quiz runs a generated quiz: it tracks the current question,
// scores answers, and guards against double answering. MCQ answers are
// scored locally by index comparison; open answers go through the AI
// grader with a zero-credit fallback when grading fails.
package quiz

import (
	"time"

	"github.com/google/uuid"

	"github.com/jmercier/collegien/internal/content"
	"github.com/jmercier/collegien/internal/curriculum"
)

// GradedBy labels how an attempt was scored.
const (
	GradedExact    = "exact"    // MCQ index comparison
	GradedAI       = "ai"       // AI grader verdict
	GradedFallback = "fallback" // grader unreachable, zero credit
)

// FallbackFeedback is shown when the AI grader cannot be reached. The
// answer scores zero but the quiz continues.
const FallbackFeedback = "Impossible de joindre le professeur pour la correction."

// Attempt is the record of one answered question.
type Attempt struct {
	QuestionID int
	Type       content.QuestionType
	// Choice is the selected option index for MCQ attempts.
	Choice int
	// Answer is the typed text for open attempts.
	Answer   string
	Correct  bool
	Points   int
	Feedback string
	GradedBy string
	TimeMs   int
}

// Session is a quiz in progress. It is not safe for concurrent use; the
// UI drives it from a single goroutine.
type Session struct {
	ID        uuid.UUID
	Level     curriculum.Level
	Subject   string
	Topic     string
	Quiz      *content.Quiz
	StartedAt time.Time

	index    int
	score    int
	attempts []Attempt
	done     bool
}

// NewSession starts a session over a generated quiz.
func NewSession(level curriculum.Level, subject, topic string, quiz *content.Quiz) *Session {
	return &Session{
		ID:        uuid.New(),
		Level:     level,
		Subject:   subject,
		Topic:     topic,
		Quiz:      quiz,
		StartedAt: time.Now(),
	}
}

// Source returns the session source label for persistence.
func (s *Session) Source() string {
	return curriculum.SessionSource(s.Subject)
}

// Score returns the points earned so far.
func (s *Session) Score() int { return s.score }

// MaxScore returns the points available: one per question.
func (s *Session) MaxScore() int { return len(s.Quiz.Questions) }

// Attempts returns the recorded attempts in quiz order.
func (s *Session) Attempts() []Attempt { return s.attempts }

// Index returns the zero-based position of the current question.
func (s *Session) Index() int { return s.index }

// Done reports whether the last question has been advanced past.
func (s *Session) Done() bool { return s.done }

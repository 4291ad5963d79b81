package quiz

import (
	"context"

	"github.com/jmercier/collegien/internal/content"
	"github.com/jmercier/collegien/internal/curriculum"
)

// Grader scores an open answer against the reference answer.
type Grader interface {
	GradeAnswer(ctx context.Context, question, studentAnswer, correctContext string, level curriculum.Level) (*content.GradingResult, error)
}

// Coordinator grades open answers and absorbs grader failures: when the
// grader cannot be reached, the answer scores zero with a fixed notice and
// the quiz moves on.
type Coordinator struct {
	grader Grader
}

// NewCoordinator creates a grading coordinator.
func NewCoordinator(grader Grader) *Coordinator {
	return &Coordinator{grader: grader}
}

// Grade scores one open answer. It never returns an error: failures become
// a zero-credit fallback result labelled GradedFallback.
func (c *Coordinator) Grade(ctx context.Context, q content.Question, answer string, level curriculum.Level) (content.GradingResult, string) {
	result, err := c.grader.GradeAnswer(ctx, q.Question, answer, q.CorrectAnswerText, level)
	if err != nil || result == nil {
		return content.GradingResult{
			IsCorrect: false,
			Score:     0,
			Feedback:  FallbackFeedback,
		}, GradedFallback
	}
	return *result, GradedAI
}

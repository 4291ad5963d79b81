package quiz

import (
	"context"
	"errors"
	"testing"

	"github.com/jmercier/collegien/internal/content"
	"github.com/jmercier/collegien/internal/curriculum"
)

type fakeGrader struct {
	result *content.GradingResult
	err    error
	calls  int
}

func (f *fakeGrader) GradeAnswer(_ context.Context, _, _, _ string, _ curriculum.Level) (*content.GradingResult, error) {
	f.calls++
	return f.result, f.err
}

func openQuestion() content.Question {
	return content.Question{
		ID:                2,
		Type:              content.Open,
		Question:          "Énonce le théorème de Pythagore.",
		CorrectAnswerText: "Dans un triangle rectangle, BC² = AB² + AC².",
	}
}

func TestCoordinatorUsesGraderVerdict(t *testing.T) {
	grader := &fakeGrader{result: &content.GradingResult{IsCorrect: true, Score: 1, Feedback: "Très bien !"}}
	coord := NewCoordinator(grader)

	result, gradedBy := coord.Grade(context.Background(), openQuestion(), "une bonne réponse", curriculum.Quatrieme)
	if !result.IsCorrect || result.Score != 1 {
		t.Errorf("result = %+v, want the grader verdict", result)
	}
	if gradedBy != GradedAI {
		t.Errorf("gradedBy = %q, want %q", gradedBy, GradedAI)
	}
	if grader.calls != 1 {
		t.Errorf("grader called %d times, want 1", grader.calls)
	}
}

func TestCoordinatorFallsBackOnError(t *testing.T) {
	grader := &fakeGrader{err: errors.New("connection refused")}
	coord := NewCoordinator(grader)

	result, gradedBy := coord.Grade(context.Background(), openQuestion(), "une réponse", curriculum.Troisieme)
	if result.IsCorrect || result.Score != 0 {
		t.Errorf("result = %+v, want zero credit", result)
	}
	if result.Feedback != FallbackFeedback {
		t.Errorf("feedback = %q, want the fallback notice", result.Feedback)
	}
	if gradedBy != GradedFallback {
		t.Errorf("gradedBy = %q, want %q", gradedBy, GradedFallback)
	}
}

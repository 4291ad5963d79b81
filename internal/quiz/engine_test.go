package quiz

import (
	"errors"
	"testing"

	"github.com/jmercier/collegien/internal/content"
	"github.com/jmercier/collegien/internal/curriculum"
)

func twoQuestionQuiz() *content.Quiz {
	return &content.Quiz{
		Topic:      "Théorème de Pythagore (Calculs)",
		Difficulty: "revision",
		Questions: []content.Question{
			{
				ID:                 1,
				Type:               content.MCQ,
				Question:           "Dans quel triangle s'applique le théorème ?",
				Options:            []string{"Équilatéral", "Rectangle", "Isocèle", "Quelconque"},
				CorrectAnswerIndex: 1,
				Explanation:        "Uniquement dans un triangle rectangle.",
			},
			{
				ID:                2,
				Type:              content.Open,
				Question:          "Énonce le théorème de Pythagore.",
				CorrectAnswerText: "Dans un triangle rectangle, BC² = AB² + AC².",
				Explanation:       "Formulation attendue au Brevet.",
			},
		},
	}
}

func newTestSession() *Session {
	return NewSession(curriculum.Quatrieme, "Mathématiques", "Théorème de Pythagore (Calculs)", twoQuestionQuiz())
}

type fakePlayback struct{ cancels int }

func (f *fakePlayback) Cancel() { f.cancels++ }

func TestAnswerMCQCorrect(t *testing.T) {
	s := newTestSession()

	attempt, err := s.AnswerMCQ(1, 1200)
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if !attempt.Correct || attempt.Points != 1 {
		t.Errorf("attempt = %+v, want correct with 1 point", attempt)
	}
	if attempt.GradedBy != GradedExact {
		t.Errorf("gradedBy = %q, want %q", attempt.GradedBy, GradedExact)
	}
	if attempt.Feedback != "Uniquement dans un triangle rectangle." {
		t.Errorf("feedback should be the question explanation, got %q", attempt.Feedback)
	}
	if s.Score() != 1 {
		t.Errorf("score = %d, want 1", s.Score())
	}
}

func TestAnswerMCQWrongChoiceScoresZero(t *testing.T) {
	s := newTestSession()

	attempt, err := s.AnswerMCQ(3, 800)
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if attempt.Correct || attempt.Points != 0 {
		t.Errorf("attempt = %+v, want incorrect with 0 points", attempt)
	}
	if s.Score() != 0 {
		t.Errorf("score = %d, want 0", s.Score())
	}
}

func TestFirstAnswerIsFinal(t *testing.T) {
	s := newTestSession()

	if _, err := s.AnswerMCQ(3, 0); err != nil {
		t.Fatalf("first answer: %v", err)
	}
	_, err := s.AnswerMCQ(1, 0)
	if !errors.Is(err, ErrAlreadyAnswered) {
		t.Fatalf("want ErrAlreadyAnswered, got %v", err)
	}
	if s.Score() != 0 {
		t.Errorf("second answer must not change the score, got %d", s.Score())
	}
}

func TestAnswerTypeMismatch(t *testing.T) {
	s := newTestSession()

	_, err := s.AnswerOpen("réponse", content.GradingResult{}, GradedAI, 0)
	if !errors.Is(err, ErrWrongQuestionType) {
		t.Fatalf("open answer on MCQ: want ErrWrongQuestionType, got %v", err)
	}

	if _, err := s.AnswerMCQ(1, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Advance(nil); err != nil {
		t.Fatal(err)
	}
	_, err = s.AnswerMCQ(0, 0)
	if !errors.Is(err, ErrWrongQuestionType) {
		t.Fatalf("MCQ answer on open question: want ErrWrongQuestionType, got %v", err)
	}
}

func TestAdvanceRequiresAnswer(t *testing.T) {
	s := newTestSession()

	_, err := s.Advance(nil)
	if !errors.Is(err, ErrNotAnswered) {
		t.Fatalf("want ErrNotAnswered, got %v", err)
	}
}

func TestAdvanceCancelsPlayback(t *testing.T) {
	s := newTestSession()
	playback := &fakePlayback{}

	if _, err := s.AnswerMCQ(1, 0); err != nil {
		t.Fatal(err)
	}
	done, err := s.Advance(playback)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if done {
		t.Error("session should not be done after first question")
	}
	if playback.cancels != 1 {
		t.Errorf("playback cancelled %d times, want 1", playback.cancels)
	}
}

func TestSessionCompletes(t *testing.T) {
	s := newTestSession()

	if _, err := s.AnswerMCQ(1, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Advance(nil); err != nil {
		t.Fatal(err)
	}

	grading := content.GradingResult{IsCorrect: true, Score: 1, Feedback: "Bravo !"}
	if _, err := s.AnswerOpen("Dans un triangle rectangle...", grading, GradedAI, 5000); err != nil {
		t.Fatal(err)
	}

	done, err := s.Advance(nil)
	if err != nil {
		t.Fatalf("final advance: %v", err)
	}
	if !done || !s.Done() {
		t.Error("session should be complete")
	}
	if s.Score() != 2 || s.MaxScore() != 2 {
		t.Errorf("score = %d/%d, want 2/2", s.Score(), s.MaxScore())
	}

	// No further answers accepted.
	if _, err := s.AnswerMCQ(0, 0); !errors.Is(err, ErrSessionDone) {
		t.Errorf("want ErrSessionDone, got %v", err)
	}
}

func TestFallbackGradingScoresZeroButContinues(t *testing.T) {
	s := newTestSession()

	if _, err := s.AnswerMCQ(1, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Advance(nil); err != nil {
		t.Fatal(err)
	}

	fallback := content.GradingResult{IsCorrect: false, Score: 0, Feedback: FallbackFeedback}
	attempt, err := s.AnswerOpen("ma réponse", fallback, GradedFallback, 0)
	if err != nil {
		t.Fatalf("fallback answer: %v", err)
	}
	if attempt.Points != 0 || attempt.Feedback != FallbackFeedback {
		t.Errorf("attempt = %+v, want zero credit with fallback notice", attempt)
	}

	done, err := s.Advance(nil)
	if err != nil {
		t.Fatalf("advance after fallback: %v", err)
	}
	if !done {
		t.Error("quiz should complete despite grading failure")
	}
	if s.Score() != 1 {
		t.Errorf("score = %d, want 1 (MCQ point only)", s.Score())
	}
}

func TestAbandonKeepsScore(t *testing.T) {
	s := newTestSession()

	if _, err := s.AnswerMCQ(1, 0); err != nil {
		t.Fatal(err)
	}
	s.Abandon()
	if !s.Done() {
		t.Error("abandoned session should be done")
	}
	if s.Score() != 1 {
		t.Errorf("score = %d, want 1", s.Score())
	}
}

func TestScoreMessage(t *testing.T) {
	tests := []struct {
		score, max int
		want       string
	}{
		{20, 20, "Parfait ! Tu es un expert ! 🏆"},
		{17, 20, "Excellent travail ! 🌟"},
		{13, 20, "Bien joué ! Encore un petit effort. 👍"},
		{5, 20, "Continue de réviser, tu vas y arriver ! 💪"},
		{0, 0, "Continue de réviser, tu vas y arriver ! 💪"},
	}
	for _, tt := range tests {
		if got := ScoreMessage(tt.score, tt.max); got != tt.want {
			t.Errorf("ScoreMessage(%d, %d) = %q, want %q", tt.score, tt.max, got, tt.want)
		}
	}
}

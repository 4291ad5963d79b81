package quiz

import (
	"errors"

	"github.com/jmercier/collegien/internal/content"
)

var (
	// ErrAlreadyAnswered is returned when the current question has been
	// answered and a second answer arrives.
	ErrAlreadyAnswered = errors.New("question already answered")
	// ErrNotAnswered is returned by Advance before the current question
	// has an attempt.
	ErrNotAnswered = errors.New("question not answered yet")
	// ErrWrongQuestionType is returned when an MCQ answer targets an open
	// question or vice versa.
	ErrWrongQuestionType = errors.New("answer does not match question type")
	// ErrSessionDone is returned for any answer after the session ended.
	ErrSessionDone = errors.New("session is complete")
)

// Canceler stops any in-progress audio playback. Advancing or answering
// interrupts read-aloud so feedback is never spoken over.
type Canceler interface {
	Cancel()
}

// Current returns the question awaiting an answer.
func (s *Session) Current() (content.Question, error) {
	if s.done {
		return content.Question{}, ErrSessionDone
	}
	return s.Quiz.Questions[s.index], nil
}

// Answered reports whether the current question already has an attempt.
func (s *Session) Answered() bool {
	return len(s.attempts) > s.index
}

// LastAttempt returns the attempt for the current question, if any.
func (s *Session) LastAttempt() (Attempt, bool) {
	if !s.Answered() {
		return Attempt{}, false
	}
	return s.attempts[s.index], true
}

// AnswerMCQ scores a multiple-choice selection locally. The first answer
// is final: repeated calls return ErrAlreadyAnswered and leave the score
// untouched.
func (s *Session) AnswerMCQ(choice int, timeMs int) (Attempt, error) {
	q, err := s.Current()
	if err != nil {
		return Attempt{}, err
	}
	if q.Type != content.MCQ {
		return Attempt{}, ErrWrongQuestionType
	}
	if s.Answered() {
		return Attempt{}, ErrAlreadyAnswered
	}

	correct := choice == q.CorrectAnswerIndex
	attempt := Attempt{
		QuestionID: q.ID,
		Type:       content.MCQ,
		Choice:     choice,
		Correct:    correct,
		Feedback:   q.Explanation,
		GradedBy:   GradedExact,
		TimeMs:     timeMs,
	}
	if correct {
		attempt.Points = 1
	}
	s.record(attempt)
	return attempt, nil
}

// AnswerOpen records a graded open answer. The grading result comes from
// the grading coordinator; the session only applies it.
func (s *Session) AnswerOpen(answer string, result content.GradingResult, gradedBy string, timeMs int) (Attempt, error) {
	q, err := s.Current()
	if err != nil {
		return Attempt{}, err
	}
	if q.Type != content.Open {
		return Attempt{}, ErrWrongQuestionType
	}
	if s.Answered() {
		return Attempt{}, ErrAlreadyAnswered
	}

	attempt := Attempt{
		QuestionID: q.ID,
		Type:       content.Open,
		Answer:     answer,
		Correct:    result.IsCorrect,
		Points:     result.Score,
		Feedback:   result.Feedback,
		GradedBy:   gradedBy,
		TimeMs:     timeMs,
	}
	s.record(attempt)
	return attempt, nil
}

func (s *Session) record(a Attempt) {
	s.attempts = append(s.attempts, a)
	// Score only moves up. Points are 0 or 1 per attempt.
	s.score += a.Points
}

// Advance moves to the next question after the current one is answered,
// cancelling any read-aloud in progress. It returns true when the session
// is complete.
func (s *Session) Advance(playback Canceler) (bool, error) {
	if s.done {
		return true, ErrSessionDone
	}
	if !s.Answered() {
		return false, ErrNotAnswered
	}
	if playback != nil {
		playback.Cancel()
	}
	if s.index == len(s.Quiz.Questions)-1 {
		s.done = true
		return true, nil
	}
	s.index++
	return false, nil
}

// Abandon ends the session early. Recorded attempts and score stand.
func (s *Session) Abandon() {
	s.done = true
}

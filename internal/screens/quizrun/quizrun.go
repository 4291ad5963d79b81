// Package quizrun plays the generated quiz question by question. MCQ
// answers are scored on the spot; open answers go to the AI grader while
// the student waits. Dictée questions are read aloud when TTS is
// configured.
package quizrun

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/jmercier/collegien/internal/content"
	"github.com/jmercier/collegien/internal/curriculum"
	"github.com/jmercier/collegien/internal/quiz"
	"github.com/jmercier/collegien/internal/revision"
	"github.com/jmercier/collegien/internal/router"
	"github.com/jmercier/collegien/internal/screen"
	"github.com/jmercier/collegien/internal/screens/loading"
	"github.com/jmercier/collegien/internal/screens/result"
	"github.com/jmercier/collegien/internal/speech"
	"github.com/jmercier/collegien/internal/store"
	"github.com/jmercier/collegien/internal/ui/components"
	"github.com/jmercier/collegien/internal/ui/layout"
)

type gradedMsg struct {
	index    int
	result   content.GradingResult
	answer   string
	gradedBy string
	timeMs   int
}

// persistMsg confirms an event append; failures are ignored, the quiz
// never blocks on the log.
type persistMsg struct{ err error }

// Screen runs the quiz session held in st.
type Screen struct {
	svc       *content.Service
	grading   *quiz.Coordinator
	guard     *speech.Guard
	st        *revision.State
	eventRepo store.EventRepo

	session       *quiz.Session
	mc            components.MultiChoice
	input         components.TextInput
	questionStart time.Time
	gradingWait   bool
	confirmQuit   bool
	showFeedback  bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.EscInterceptor = (*Screen)(nil)

// New creates the quiz screen over the session started in st.
func New(svc *content.Service, grading *quiz.Coordinator, guard *speech.Guard, st *revision.State, eventRepo store.EventRepo) *Screen {
	s := &Screen{
		svc:       svc,
		grading:   grading,
		guard:     guard,
		st:        st,
		eventRepo: eventRepo,
		session:   st.QuizSession,
	}
	s.setupQuestion()
	return s
}

func (s *Screen) Init() tea.Cmd {
	return s.appendSessionEvent("start")
}

// setupQuestion rebuilds the answer widget for the current question and
// starts read-aloud for dictée questions.
func (s *Screen) setupQuestion() {
	s.questionStart = time.Now()
	s.showFeedback = false
	s.gradingWait = false

	q, err := s.session.Current()
	if err != nil {
		return
	}
	if q.Type == content.MCQ {
		s.mc = components.NewMultiChoice(q.Question, q.Options, q.CorrectAnswerIndex)
	} else {
		s.input = components.NewTextInput("Écris ta réponse…", false, 60)
	}
	if s.guard != nil && q.TextToRead != "" {
		s.guard.Play(q.TextToRead, nil)
	}
}

// InterceptEsc keeps Esc inside the screen while the quiz is running, so
// abandoning always goes through the confirm prompt.
func (s *Screen) InterceptEsc() bool {
	return !s.session.Done()
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case gradedMsg:
		return s.handleGraded(msg)
	case persistMsg:
		return s, nil
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.confirmQuit {
		switch msg.String() {
		case "y", "o":
			return s.abandon()
		case "n", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if msg.String() == "esc" {
		s.confirmQuit = true
		return s, nil
	}

	if s.gradingWait {
		return s, nil
	}

	if s.showFeedback {
		switch msg.String() {
		case "enter", " ":
			return s.advance()
		case "r":
			return s, s.replay()
		}
		return s, nil
	}

	q, err := s.session.Current()
	if err != nil {
		return s, nil
	}

	if msg.String() == "r" && q.Type == content.MCQ {
		return s, s.replay()
	}

	if q.Type == content.MCQ {
		s.mc, _ = s.mc.Update(msg)
		if s.mc.Submitted {
			return s.submitMCQ(q)
		}
		return s, nil
	}

	if msg.String() == "enter" {
		return s.submitOpen(q)
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) submitMCQ(q content.Question) (screen.Screen, tea.Cmd) {
	elapsed := int(time.Since(s.questionStart).Milliseconds())
	attempt, err := s.session.AnswerMCQ(s.mc.ChosenIndex, elapsed)
	if err != nil {
		return s, nil
	}
	if s.guard != nil {
		s.guard.Cancel()
	}
	s.showFeedback = true
	return s, s.appendAnswerEvent(q, attempt)
}

func (s *Screen) submitOpen(q content.Question) (screen.Screen, tea.Cmd) {
	answer := strings.TrimSpace(s.input.Value())
	if answer == "" {
		return s, nil
	}
	if s.guard != nil {
		s.guard.Cancel()
	}
	s.gradingWait = true
	elapsed := int(time.Since(s.questionStart).Milliseconds())
	grading := s.grading
	level := s.session.Level
	index := s.session.Index()
	return s, func() tea.Msg {
		result, gradedBy := grading.Grade(context.Background(), q, answer, level)
		return gradedMsg{
			index:    index,
			result:   result,
			answer:   answer,
			gradedBy: gradedBy,
			timeMs:   elapsed,
		}
	}
}

func (s *Screen) handleGraded(msg gradedMsg) (screen.Screen, tea.Cmd) {
	if msg.index != s.session.Index() || s.session.Done() {
		return s, nil
	}
	s.gradingWait = false
	attempt, err := s.session.AnswerOpen(msg.answer, msg.result, msg.gradedBy, msg.timeMs)
	if err != nil {
		return s, nil
	}
	s.showFeedback = true
	q, _ := s.session.Current()
	return s, s.appendAnswerEvent(q, attempt)
}

func (s *Screen) advance() (screen.Screen, tea.Cmd) {
	var playback quiz.Canceler
	if s.guard != nil {
		playback = s.guard
	}
	done, err := s.session.Advance(playback)
	if err != nil {
		return s, nil
	}
	if done {
		s.st.FinishQuiz()
		finish := s.appendSessionEvent("finish")
		st, retry := s.st, s.makeRetry()
		return s, tea.Batch(finish, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: result.New(st, retry),
			}
		})
	}
	s.setupQuestion()
	return s, nil
}

// makeRetry builds the result screen's retry action: regenerate a quiz
// over the same selection and configuration, then run it on a fresh
// screen.
func (s *Screen) makeRetry() func() tea.Cmd {
	svc, grading, guard, st, repo := s.svc, s.grading, s.guard, s.st, s.eventRepo
	return func() tea.Cmd {
		epoch := st.RetryQuiz()
		sel := st.Selection
		cfg := st.QuizConfig
		work := func(ctx context.Context) (screen.Screen, error) {
			var q *content.Quiz
			var err error
			switch {
			case curriculum.IsMockExam(sel.Subject):
				q, err = svc.GenerateBrevetQuiz(ctx)
			case curriculum.IsPastPaper(sel.Subject):
				q, err = svc.GenerateAnnalesQuiz(ctx, sel.Topic.Value())
			default:
				q, err = svc.GenerateQuiz(ctx, sel.Level, sel.Subject, sel.Topic.Value(), cfg)
			}
			if !st.ApplyQuiz(epoch, q, err) {
				return nil, loading.ErrStale
			}
			if err != nil {
				return nil, err
			}
			return New(svc, grading, guard, st, repo), nil
		}
		return func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: loading.New("Quiz", "Préparation d'un nouveau quiz…", work),
			}
		}
	}
}

func (s *Screen) abandon() (screen.Screen, tea.Cmd) {
	s.session.Abandon()
	if s.guard != nil {
		s.guard.Cancel()
	}
	abandonCmd := s.appendSessionEvent("abandon")
	s.st.BackToSheet()
	return s, tea.Batch(abandonCmd, func() tea.Msg { return router.PopScreenMsg{} })
}

// replay re-reads the dictée text, or the question itself when there is
// nothing to dictate.
func (s *Screen) replay() tea.Cmd {
	if s.guard == nil {
		return nil
	}
	q, err := s.session.Current()
	if err != nil {
		return nil
	}
	text := q.TextToRead
	if text == "" {
		text = q.Question
	}
	s.guard.Play(text, nil)
	return nil
}

func (s *Screen) appendSessionEvent(action string) tea.Cmd {
	if s.eventRepo == nil {
		return nil
	}
	repo := s.eventRepo
	sess := s.session
	cfg := s.st.QuizConfig
	data := store.StudySessionEventData{
		SessionID:     sess.ID.String(),
		Action:        action,
		Level:         string(sess.Level),
		Subject:       sess.Subject,
		Topic:         sess.Topic,
		Source:        sess.Source(),
		Difficulty:    string(cfg.Difficulty),
		QuestionCount: len(sess.Quiz.Questions),
	}
	if action != "start" {
		data.Score = sess.Score()
		data.MaxScore = sess.MaxScore()
		data.DurationSecs = int(time.Since(sess.StartedAt).Seconds())
	}
	return func() tea.Msg {
		err := repo.AppendStudySession(context.Background(), data)
		return persistMsg{err: err}
	}
}

func (s *Screen) appendAnswerEvent(q content.Question, attempt quiz.Attempt) tea.Cmd {
	if s.eventRepo == nil {
		return nil
	}
	repo := s.eventRepo
	answer := attempt.Answer
	if attempt.Type == content.MCQ && attempt.Choice >= 0 && attempt.Choice < len(q.Options) {
		answer = q.Options[attempt.Choice]
	}
	data := store.AnswerEventData{
		SessionID:     s.session.ID.String(),
		QuestionID:    attempt.QuestionID,
		QuestionType:  string(attempt.Type),
		QuestionText:  q.Question,
		LearnerAnswer: answer,
		Correct:       attempt.Correct,
		Points:        attempt.Points,
		Feedback:      attempt.Feedback,
		GradedBy:      attempt.GradedBy,
		TimeMs:        attempt.TimeMs,
	}
	return func() tea.Msg {
		err := repo.AppendAnswer(context.Background(), data)
		return persistMsg{err: err}
	}
}

func (s *Screen) Title() string {
	return "Quiz"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "O", Description: "Abandonner"},
			{Key: "N", Description: "Continuer"},
		}
	}
	if s.gradingWait {
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quitter"},
		}
	}
	if s.showFeedback {
		hints := []layout.KeyHint{
			{Key: "Entrée", Description: "Question suivante"},
		}
		if s.guard != nil {
			hints = append(hints, layout.KeyHint{Key: "R", Description: "Réécouter"})
		}
		return hints
	}
	hints := []layout.KeyHint{
		{Key: "Entrée", Description: "Valider"},
		{Key: "Échap", Description: "Abandonner"},
	}
	if s.guard != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Réécouter"})
	}
	return hints
}

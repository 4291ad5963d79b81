package quizrun

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"

	"github.com/jmercier/collegien/internal/content"
	"github.com/jmercier/collegien/internal/curriculum"
	"github.com/jmercier/collegien/internal/quiz"
	"github.com/jmercier/collegien/internal/revision"
	"github.com/jmercier/collegien/internal/router"
	"github.com/jmercier/collegien/internal/screen"
	"github.com/jmercier/collegien/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	sessionEvents []store.StudySessionEventData
	answerEvents  []store.AnswerEventData
}

func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int64) (*store.LLMEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendStudySession(_ context.Context, data store.StudySessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) ListStudySessions(_ context.Context, _ store.QueryOpts) ([]store.StudySessionRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendAnswer(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}
func (m *mockEventRepo) AnswersForSession(_ context.Context, _ string) ([]store.AnswerRecord, error) {
	return nil, nil
}

// stubGrader scores every open answer the same way.
type stubGrader struct {
	result *content.GradingResult
	err    error
}

func (g *stubGrader) GradeAnswer(_ context.Context, _, _, _ string, _ curriculum.Level) (*content.GradingResult, error) {
	return g.result, g.err
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuiz() *content.Quiz {
	return &content.Quiz{Questions: []content.Question{
		{
			ID:                 1,
			Type:               content.MCQ,
			Question:           "Combien font 7 × 8 ?",
			Options:            []string{"54", "56", "58", "64"},
			CorrectAnswerIndex: 1,
			Explanation:        "7 × 8 = 56.",
		},
		{
			ID:                2,
			Type:              content.Open,
			Question:          "Conjugue « aller » à la première personne du futur.",
			CorrectAnswerText: "j'irai",
		},
	}}
}

func testScreen(grader *stubGrader) (*Screen, *revision.State, *mockEventRepo) {
	st := revision.NewState(nil)
	repo := &mockEventRepo{}
	st.Selection = revision.Selection{
		Level:   curriculum.Quatrieme,
		Subject: "Mathématiques",
		Topic:   curriculum.CatalogTopic("Théorème de Pythagore"),
	}
	st.QuizSession = quiz.NewSession(st.Selection.Level, st.Selection.Subject, st.Selection.Topic.Value(), testQuiz())
	st.Phase = revision.PhaseQuiz

	s := New(nil, quiz.NewCoordinator(grader), nil, st, repo)
	return s, st, repo
}

// runCmd executes a command tree and feeds every produced message back
// into the screen, mirroring what the program loop would do.
func runCmd(t *testing.T, scr screen.Screen, cmd tea.Cmd) (screen.Screen, []tea.Msg) {
	t.Helper()
	var delivered []tea.Msg
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg := c()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		delivered = append(delivered, msg)
		switch msg.(type) {
		case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg, router.PopToRootMsg:
			continue
		}
		scr, _ = scr.Update(msg)
	}
	return scr, delivered
}

func TestQuizScreen_StartEventOnInit(t *testing.T) {
	s, _, repo := testScreen(&stubGrader{})
	_, _ = runCmd(t, s, s.Init())

	require.Len(t, repo.sessionEvents, 1)
	require.Equal(t, "start", repo.sessionEvents[0].Action)
	require.Equal(t, "topic-quiz", repo.sessionEvents[0].Source)
	require.Equal(t, 2, repo.sessionEvents[0].QuestionCount)
}

func TestQuizScreen_MCQCorrect(t *testing.T) {
	s, st, repo := testScreen(&stubGrader{})

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('j')) // move to "56"
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	scr, _ = runCmd(t, scr, cmd)

	ss := scr.(*Screen)
	require.True(t, ss.showFeedback)
	require.Equal(t, 1, st.QuizSession.Score())

	require.Len(t, repo.answerEvents, 1)
	ev := repo.answerEvents[0]
	require.True(t, ev.Correct)
	require.Equal(t, "exact", ev.GradedBy)
	require.Equal(t, "56", ev.LearnerAnswer)
	require.Equal(t, "7 × 8 = 56.", ev.Feedback)
}

func TestQuizScreen_MCQWrongShowsCorrection(t *testing.T) {
	s, st, _ := testScreen(&stubGrader{})

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter)) // submit "54"
	scr, _ = runCmd(t, scr, cmd)

	ss := scr.(*Screen)
	require.True(t, ss.showFeedback)
	require.Equal(t, 0, st.QuizSession.Score())

	view := ss.View(100, 30)
	require.Contains(t, view, "56")
}

func TestQuizScreen_OpenAnswerGraded(t *testing.T) {
	grader := &stubGrader{result: &content.GradingResult{
		IsCorrect: true,
		Score:     1,
		Feedback:  "Parfait, c'est bien le futur simple.",
	}}
	s, st, repo := testScreen(grader)

	// Answer the MCQ and advance to the open question.
	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	scr, _ = runCmd(t, scr, cmd)
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // advance

	// Type and submit the open answer.
	for _, r := range "j'irai" {
		scr, _ = scr.Update(keyPress(r))
	}
	scr, cmd = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*Screen)
	require.True(t, ss.gradingWait)

	scr, _ = runCmd(t, scr, cmd)
	ss = scr.(*Screen)
	require.False(t, ss.gradingWait)
	require.True(t, ss.showFeedback)
	require.Equal(t, 2, st.QuizSession.Score())

	last := repo.answerEvents[len(repo.answerEvents)-1]
	require.Equal(t, "ai", last.GradedBy)
	require.Equal(t, "j'irai", last.LearnerAnswer)
}

func TestQuizScreen_GradingFallback(t *testing.T) {
	grader := &stubGrader{err: errors.New("network down")}
	s, st, repo := testScreen(grader)

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	scr, _ = runCmd(t, scr, cmd)
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	for _, r := range "je vais" {
		scr, _ = scr.Update(keyPress(r))
	}
	scr, cmd = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = runCmd(t, scr, cmd)

	ss := scr.(*Screen)
	require.True(t, ss.showFeedback)

	attempt, ok := st.QuizSession.LastAttempt()
	require.True(t, ok)
	require.Equal(t, quiz.GradedFallback, attempt.GradedBy)
	require.Equal(t, quiz.FallbackFeedback, attempt.Feedback)
	require.Equal(t, 0, attempt.Points)

	last := repo.answerEvents[len(repo.answerEvents)-1]
	require.Equal(t, "fallback", last.GradedBy)
}

func TestQuizScreen_CompletionReplacesWithResult(t *testing.T) {
	grader := &stubGrader{result: &content.GradingResult{IsCorrect: true, Score: 1, Feedback: "Bien."}}
	s, st, repo := testScreen(grader)

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	scr, _ = runCmd(t, scr, cmd)
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	for _, r := range "j'irai" {
		scr, _ = scr.Update(keyPress(r))
	}
	scr, cmd = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = runCmd(t, scr, cmd)

	// Advance past the last question.
	scr, cmd = scr.Update(specialKey(tea.KeyEnter))
	_, msgs := runCmd(t, scr, cmd)

	require.Equal(t, revision.PhaseResult, st.Phase)

	var replaced bool
	for _, m := range msgs {
		if _, ok := m.(router.ReplaceScreenMsg); ok {
			replaced = true
		}
	}
	require.True(t, replaced, "expected ReplaceScreenMsg to the result screen")

	last := repo.sessionEvents[len(repo.sessionEvents)-1]
	require.Equal(t, "finish", last.Action)
	require.Equal(t, 2, last.Score)
	require.Equal(t, 2, last.MaxScore)
}

func TestQuizScreen_AbandonConfirm(t *testing.T) {
	s, st, repo := testScreen(&stubGrader{})

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*Screen)
	require.True(t, ss.confirmQuit)

	// N keeps the quiz running.
	scr, _ = scr.Update(keyPress('n'))
	ss = scr.(*Screen)
	require.False(t, ss.confirmQuit)
	require.False(t, st.QuizSession.Done())

	// Esc then O abandons.
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	scr, cmd := scr.Update(keyPress('o'))
	_, _ = runCmd(t, scr, cmd)

	require.True(t, st.QuizSession.Done())
	last := repo.sessionEvents[len(repo.sessionEvents)-1]
	require.Equal(t, "abandon", last.Action)
}

func TestQuizScreen_InterceptEscWhileRunning(t *testing.T) {
	s, _, _ := testScreen(&stubGrader{})
	require.True(t, s.InterceptEsc())

	s.session.Abandon()
	require.False(t, s.InterceptEsc())
}

func TestQuizScreen_KeyHints(t *testing.T) {
	s, _, _ := testScreen(&stubGrader{})
	require.NotEmpty(t, s.KeyHints())
}

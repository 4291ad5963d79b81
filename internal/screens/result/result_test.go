package result

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jmercier/collegien/internal/content"
	"github.com/jmercier/collegien/internal/curriculum"
	"github.com/jmercier/collegien/internal/quiz"
	"github.com/jmercier/collegien/internal/revision"
	"github.com/jmercier/collegien/internal/router"
)

func finishedState(withSheet bool) *revision.State {
	st := revision.NewState(nil)
	st.Selection = revision.Selection{
		Level:   curriculum.Cinquieme,
		Subject: "Histoire-Géographie",
		Topic:   curriculum.CatalogTopic("La Méditerranée médiévale"),
	}
	if withSheet {
		st.Sheet = &content.Sheet{Title: "La Méditerranée médiévale"}
	}
	q := &content.Quiz{Questions: []content.Question{
		{ID: 1, Type: content.MCQ, Question: "Q1", Options: []string{"a", "b", "c", "d"}, CorrectAnswerIndex: 0},
		{ID: 2, Type: content.MCQ, Question: "Q2", Options: []string{"a", "b", "c", "d"}, CorrectAnswerIndex: 0},
	}}
	st.QuizSession = quiz.NewSession(st.Selection.Level, st.Selection.Subject, st.Selection.Topic.Value(), q)
	st.QuizSession.AnswerMCQ(0, 100)
	st.QuizSession.Advance(nil)
	st.QuizSession.AnswerMCQ(1, 100)
	st.QuizSession.Advance(nil)
	st.Phase = revision.PhaseResult
	return st
}

func TestResult_ShowsScoreAndMessage(t *testing.T) {
	st := finishedState(true)
	s := New(st, func() tea.Cmd { return nil })

	view := s.View(100, 30)
	if !strings.Contains(view, "1 / 2") {
		t.Errorf("view should show the score, got:\n%s", view)
	}
	if !strings.Contains(view, quiz.ScoreMessage(1, 2)) {
		t.Errorf("view should show the encouragement message")
	}
}

func TestResult_SheetEntryOnlyWithSheet(t *testing.T) {
	withSheet := New(finishedState(true), func() tea.Cmd { return nil })
	if len(withSheet.menu.Items) != 3 {
		t.Errorf("menu items with sheet = %d, want 3", len(withSheet.menu.Items))
	}

	noSheet := New(finishedState(false), func() tea.Cmd { return nil })
	if len(noSheet.menu.Items) != 2 {
		t.Errorf("menu items without sheet = %d, want 2", len(noSheet.menu.Items))
	}
}

func TestResult_BackToSheet(t *testing.T) {
	st := finishedState(true)
	s := New(st, func() tea.Cmd { return nil })

	// Second entry pops back to the sheet.
	scr, _ := s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	scr, cmd := scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg back to the sheet")
	}
	if st.Phase != revision.PhaseSheet {
		t.Errorf("phase = %v, want sheet", st.Phase)
	}
	_ = scr
}

func TestResult_HomeResetsState(t *testing.T) {
	st := finishedState(false)
	s := New(st, func() tea.Cmd { return nil })

	scr, _ := s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	_, cmd := scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("expected PopToRootMsg")
	}
	if st.Phase != revision.PhaseHome {
		t.Errorf("phase = %v, want home", st.Phase)
	}
	if st.QuizSession != nil {
		t.Error("quiz session should be cleared on reset")
	}
}

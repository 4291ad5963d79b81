package quizsetup

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jmercier/collegien/internal/content"
	"github.com/jmercier/collegien/internal/curriculum"
	"github.com/jmercier/collegien/internal/llm"
	"github.com/jmercier/collegien/internal/revision"
	"github.com/jmercier/collegien/internal/router"
	"github.com/jmercier/collegien/internal/screen"
	"github.com/jmercier/collegien/internal/screens/loading"
)

// failingService answers every generation call with a transport error.
func failingService() *content.Service {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("réseau indisponible")})
	return content.NewService(mock, content.DefaultConfig())
}

// settle runs a command tree and feeds each produced message back into the
// screen once, dropping follow-up commands.
func settle(s screen.Screen, cmd tea.Cmd) screen.Screen {
	if cmd == nil {
		return s
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			s = settle(s, c)
		}
	default:
		s, _ = s.Update(msg)
	}
	return s
}

func TestFailedLaunchReturnsToSetupOnEsc(t *testing.T) {
	st := revision.NewState(nil)
	st.Selection = revision.Selection{
		Level:   curriculum.Quatrieme,
		Subject: "Mathématiques",
		Topic:   curriculum.CatalogTopic("Fractions"),
	}
	st.BeginQuizSetup()

	s := New(failingService(), nil, nil, st, nil)
	cmd := s.launch(content.QuizConfig{QuestionCount: 5, Difficulty: content.DifficultyRevision})

	rep, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	ld, ok := rep.Screen.(*loading.Screen)
	if !ok {
		t.Fatalf("expected the loading screen, got %T", rep.Screen)
	}

	settle(ld, ld.Init())

	if st.Phase != revision.PhaseQuizSetup {
		t.Fatalf("expected phase %v after a failed generation, got %v", revision.PhaseQuizSetup, st.Phase)
	}
	if !ld.InterceptEsc() {
		t.Fatal("expected the failed loader to claim Esc")
	}

	_, escCmd := ld.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if escCmd == nil {
		t.Fatal("expected a command on Esc")
	}
	back, ok := escCmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", escCmd())
	}
	if _, ok := back.Screen.(*Screen); !ok {
		t.Errorf("expected the quiz setup screen, got %T", back.Screen)
	}
}

func TestRunningLaunchDoesNotClaimEsc(t *testing.T) {
	st := revision.NewState(nil)
	st.BeginQuizSetup()

	s := New(failingService(), nil, nil, st, nil)
	cmd := s.launch(content.QuizConfig{QuestionCount: 5, Difficulty: content.DifficultyRevision})

	rep := cmd().(router.ReplaceScreenMsg)
	ld := rep.Screen.(*loading.Screen)

	if ld.InterceptEsc() {
		t.Error("a loader that has not failed pops normally")
	}
}

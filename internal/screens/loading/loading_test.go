package loading

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jmercier/collegien/internal/router"
	"github.com/jmercier/collegien/internal/screen"
)

type stubScreen struct{ title string }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func noWork(context.Context) (screen.Screen, error) { return nil, nil }

func TestSuccessReplacesWithProducedScreen(t *testing.T) {
	s := New("Quiz", "Préparation…", noWork)
	next := &stubScreen{title: "quiz"}

	_, cmd := s.Update(doneMsg{next: next})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	rep, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if rep.Screen != next {
		t.Error("expected the produced screen to replace the loader")
	}
}

func TestStaleResultPopsSilently(t *testing.T) {
	s := New("Quiz", "Préparation…", noWork)

	_, cmd := s.Update(doneMsg{err: ErrStale})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}
	if s.failed {
		t.Error("a stale result must not show the failure notice")
	}
}

func TestFailureStaysWithNotice(t *testing.T) {
	s := New("Quiz", "Préparation…", noWork)

	_, cmd := s.Update(doneMsg{err: errors.New("network down")})
	if cmd != nil {
		t.Fatal("a failure must stay on this screen")
	}
	if !s.failed {
		t.Error("expected failed state")
	}
	if !strings.Contains(s.View(80, 24), "La génération a échoué") {
		t.Error("expected the failure notice in the view")
	}
	if s.InterceptEsc() {
		t.Error("without a return screen, Esc belongs to the app-level pop")
	}
}

func TestEscAfterFailureRebuildsReturnScreen(t *testing.T) {
	setup := &stubScreen{title: "réglages"}
	s := New("Quiz", "Préparation…", noWork).
		ReturnOnFail(func() screen.Screen { return setup })

	s.Update(doneMsg{err: errors.New("network down")})
	if !s.InterceptEsc() {
		t.Fatal("a failed loader with a return screen must claim Esc")
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	rep, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if rep.Screen != setup {
		t.Error("expected the rebuilt return screen")
	}
}

func TestEscWhileRunningIsNotClaimed(t *testing.T) {
	s := New("Quiz", "Préparation…", noWork).
		ReturnOnFail(func() screen.Screen { return &stubScreen{} })

	if s.InterceptEsc() {
		t.Error("Esc during a running generation pops normally")
	}
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("expected no command before the work resolves")
	}
}

// Package loading shows a spinner while a generation request runs in the
// background, then replaces itself with the screen the work produced. A
// failed generation stays here with the notice and lets the student go
// back; a stale result (the student already moved on) pops silently.
package loading

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jmercier/collegien/internal/router"
	"github.com/jmercier/collegien/internal/screen"
	"github.com/jmercier/collegien/internal/ui/layout"
	"github.com/jmercier/collegien/internal/ui/theme"
)

// ErrStale marks a result that arrived after the student moved on. The
// work func returns it when the epoch check rejects the apply.
var ErrStale = errors.New("stale generation result")

// Work runs the generation and returns the screen to show when it
// succeeds. It is responsible for applying the result to the session
// state under the epoch it was started with.
type Work func(ctx context.Context) (screen.Screen, error)

type doneMsg struct {
	next screen.Screen
	err  error
}

type spinnerTickMsg time.Time

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Screen is the loading screen.
type Screen struct {
	title   string
	message string
	work    Work
	failTo  func() screen.Screen
	frame   int
	failed  bool
	notice  string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.EscInterceptor = (*Screen)(nil)

// New creates a loading screen that runs work once. Esc after a failure
// pops back to the previous screen on the stack.
func New(title, message string, work Work) *Screen {
	return &Screen{title: title, message: message, work: work}
}

// ReturnOnFail sets the screen rebuilt when the student backs out of a
// failed generation. Flows that replaced their own screen with this one
// use it so backing out lands where the session actually is, not one
// step earlier on the stack.
func (s *Screen) ReturnOnFail(build func() screen.Screen) *Screen {
	s.failTo = build
	return s
}

// InterceptEsc claims Esc only when a failure needs to rebuild the screen
// the student came from.
func (s *Screen) InterceptEsc() bool {
	return s.failed && s.failTo != nil
}

func (s *Screen) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			next, err := s.work(context.Background())
			return doneMsg{next: next, err: err}
		},
		spinnerTick(),
	)
}

func spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		if errors.Is(msg.err, ErrStale) {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		if msg.err != nil {
			s.failed = true
			s.notice = "La génération a échoué. Réessaie dans un instant."
			return s, nil
		}
		next := msg.next
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }

	case spinnerTickMsg:
		if s.failed {
			return s, nil
		}
		s.frame = (s.frame + 1) % len(spinnerFrames)
		return s, spinnerTick()

	case tea.KeyMsg:
		if msg.String() == "esc" && s.failed && s.failTo != nil {
			next := s.failTo()
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	var body string
	if s.failed {
		body = lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("✗ "+s.notice) +
			"\n\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Appuie sur Échap pour revenir.")
	} else {
		body = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(spinnerFrames[s.frame]+"  "+s.message) +
			"\n\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Le professeur prépare ça pour toi…")
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (s *Screen) Title() string {
	return s.title
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.failed {
		return []layout.KeyHint{
			{Key: "Échap", Description: "Retour"},
			{Key: "Ctrl+C", Description: "Quitter"},
		}
	}
	return []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quitter"},
	}
}

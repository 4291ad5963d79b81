// Package quickq is the quick question box: the student types any school
// question and gets a short scoped answer, outside the study flow.
package quickq

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jmercier/collegien/internal/content"
	"github.com/jmercier/collegien/internal/screen"
	"github.com/jmercier/collegien/internal/ui/components"
	"github.com/jmercier/collegien/internal/ui/layout"
	"github.com/jmercier/collegien/internal/ui/theme"
)

type answerMsg struct {
	question string
	answer   string
	err      error
}

// Screen is the quick question screen.
type Screen struct {
	svc      *content.Service
	input    components.TextInput
	question string
	answer   string
	waiting  bool
	failed   bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the quick question screen.
func New(svc *content.Service) *Screen {
	return &Screen{
		svc:   svc,
		input: components.NewTextInput("Pose ta question…", false, 60),
	}
}

func (s *Screen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answerMsg:
		s.waiting = false
		if msg.err != nil {
			s.failed = true
			s.answer = "Impossible de joindre le professeur. Réessaie dans un instant."
			return s, nil
		}
		s.failed = false
		s.question = msg.question
		s.answer = msg.answer
		return s, nil

	case tea.KeyMsg:
		if s.waiting {
			return s, nil
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(s.input.Value())
			if q == "" {
				return s, nil
			}
			s.waiting = true
			s.answer = ""
			s.failed = false
			svc := s.svc
			return s, func() tea.Msg {
				a, err := svc.QuickAnswer(context.Background(), q)
				return answerMsg{question: q, answer: a, err: err}
			}
		case "ctrl+u":
			s.input = components.NewTextInput("Pose ta question…", false, 60)
			return s, s.input.Init()
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	var sections []string

	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Question rapide"),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Programme du collège uniquement : le professeur reste dans le cadre scolaire."),
		"",
		s.input.View(),
	)

	switch {
	case s.waiting:
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Secondary).Render("Le professeur réfléchit…"))
	case s.failed:
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Error).Render("✗ "+s.answer))
	case s.answer != "":
		card := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1).
			Width(min(width-8, 72)).
			Foreground(theme.Text).
			Render(s.answer)
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("❓ "+s.question),
			card)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (s *Screen) Title() string {
	return "Question rapide"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Entrée", Description: "Envoyer"},
		{Key: "Ctrl+U", Description: "Effacer"},
		{Key: "Échap", Description: "Retour"},
	}
}

// Package result shows the quiz score and the encouragement message, with
// a retry over the same configuration.
package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jmercier/collegien/internal/quiz"
	"github.com/jmercier/collegien/internal/revision"
	"github.com/jmercier/collegien/internal/router"
	"github.com/jmercier/collegien/internal/screen"
	"github.com/jmercier/collegien/internal/ui/components"
	"github.com/jmercier/collegien/internal/ui/theme"
)

// Screen is the quiz result screen.
type Screen struct {
	st      *revision.State
	session *quiz.Session
	menu    components.Menu
}

var _ screen.Screen = (*Screen)(nil)

// New creates the result screen. retry restarts a quiz over the same
// selection and configuration; it is built by the quiz screen so this
// package stays out of the generation flow.
func New(st *revision.State, retry func() tea.Cmd) *Screen {
	s := &Screen{
		st:      st,
		session: st.QuizSession,
	}

	items := []components.MenuItem{
		{Label: "🔁  Refaire un quiz", Action: retry},
	}
	if st.Sheet != nil {
		items = append(items, components.MenuItem{
			Label: "📖  Revoir la fiche",
			Action: func() tea.Cmd {
				st.BackToSheet()
				return func() tea.Msg { return router.PopScreenMsg{} }
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "🏠  Retour à l'accueil",
		Action: func() tea.Cmd {
			st.Reset()
			return func() tea.Msg { return router.PopToRootMsg{} }
		},
	})

	s.menu = components.NewMenu(items)
	return s
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	if s.session == nil {
		return ""
	}

	score := s.session.Score()
	max := s.session.MaxScore()
	percent := 0.0
	if max > 0 {
		percent = float64(score) / float64(max)
	}

	bar := components.NewProgressBar("", percent, true, 40)

	var sections []string
	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Quiz terminé !"),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render(fmt.Sprintf("Score : %d / %d", score, max)),
		bar.View(),
		"",
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render(quiz.ScoreMessage(score, max)),
		"",
		s.menu.View(),
	)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(sections, "\n"))
}

func (s *Screen) Title() string {
	return "Résultat"
}

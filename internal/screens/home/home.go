// Package home is the landing screen: the menu into the study flow, the
// quick question box, and the session history.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jmercier/collegien/internal/content"
	"github.com/jmercier/collegien/internal/quiz"
	"github.com/jmercier/collegien/internal/revision"
	"github.com/jmercier/collegien/internal/router"
	"github.com/jmercier/collegien/internal/screen"
	"github.com/jmercier/collegien/internal/screens/history"
	"github.com/jmercier/collegien/internal/screens/quickq"
	"github.com/jmercier/collegien/internal/screens/selection"
	"github.com/jmercier/collegien/internal/speech"
	"github.com/jmercier/collegien/internal/store"
	"github.com/jmercier/collegien/internal/ui/components"
	"github.com/jmercier/collegien/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu         components.Menu
	aiAvailable  bool
	sessionCount int
	avgPercent   int
	notice       string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. svc and grading are nil when no LLM
// provider is configured; the AI entries are then disabled.
func New(svc *content.Service, grading *quiz.Coordinator, guard *speech.Guard, st *revision.State, eventRepo store.EventRepo) *HomeScreen {
	sessionCount, avgPercent := loadStats(eventRepo)

	aiAvailable := svc != nil && grading != nil

	items := []components.MenuItem{
		{Label: "📖  Commencer à réviser", Disabled: !aiAvailable, Action: func() tea.Cmd {
			return func() tea.Msg {
				st.BeginSelection()
				return router.PushScreenMsg{
					Screen: selection.New(svc, grading, guard, st, eventRepo),
				}
			}
		}},
		{Label: "💬  Question rapide", Disabled: !aiAvailable, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quickq.New(svc)}
			}
		}},
		{Label: "🗂  Mes sessions", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		{Label: "🚪  Quitter", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h := &HomeScreen{
		menu:         components.NewMenu(items),
		aiAvailable:  aiAvailable,
		sessionCount: sessionCount,
		avgPercent:   avgPercent,
	}
	if !aiAvailable {
		h.notice = "Aucune clé API configurée : définis COLLEGIEN_GEMINI_API_KEY pour activer le professeur IA."
	}
	return h
}

// loadStats computes the finished-session count and average score from the
// event log. Best effort: the home screen renders without them.
func loadStats(eventRepo store.EventRepo) (count, avgPercent int) {
	if eventRepo == nil {
		return 0, 0
	}
	sessions, err := eventRepo.ListStudySessions(context.Background(), store.QueryOpts{Limit: 200})
	if err != nil {
		return 0, 0
	}
	var pctSum int
	for _, s := range sessions {
		if s.Action != "finish" || s.MaxScore == 0 {
			continue
		}
		count++
		pctSum += s.Score * 100 / s.MaxScore
	}
	if count > 0 {
		avgPercent = pctSum / count
	}
	return count, avgPercent
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Révise ton Collège")

	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Fiches de révision et quiz, de la 6ème au Brevet")

	var sections []string
	sections = append(sections, title, subtitle, "")

	if h.sessionCount > 0 {
		stats := fmt.Sprintf("%d session(s) terminée(s) · moyenne %d%%", h.sessionCount, h.avgPercent)
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.Secondary).Render(stats), "")
	}

	sections = append(sections, h.menu.View())

	if h.notice != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Accent).Width(60).Render(h.notice))
	}

	content := strings.Join(sections, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Accueil"
}

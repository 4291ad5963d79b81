// Package history lists past study sessions from the event log, with the
// per-question detail of a session on demand.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jmercier/collegien/internal/curriculum"
	"github.com/jmercier/collegien/internal/router"
	"github.com/jmercier/collegien/internal/screen"
	"github.com/jmercier/collegien/internal/store"
	"github.com/jmercier/collegien/internal/ui/layout"
	"github.com/jmercier/collegien/internal/ui/theme"
)

type historyLoadedMsg struct {
	Sessions []store.StudySessionRecord
	Err      error
}

type answersLoadedMsg struct {
	SessionID string
	Answers   []store.AnswerRecord
}

// HistoryScreen displays past study sessions.
type HistoryScreen struct {
	eventRepo store.EventRepo
	sessions  []store.StudySessionRecord
	answers   map[string][]store.AnswerRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		answers:   make(map[string][]store.AnswerRecord),
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		sessions, err := s.eventRepo.ListStudySessions(context.Background(), store.QueryOpts{Limit: 100})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		// Keep only closed sessions: the start events duplicate them.
		closed := sessions[:0]
		for _, sess := range sessions {
			if sess.Action == "finish" || sess.Action == "abandon" {
				closed = append(closed, sess)
			}
		}
		if len(closed) > 30 {
			closed = closed[:30]
		}
		return historyLoadedMsg{Sessions: closed}
	}
}

func (s *HistoryScreen) Title() string {
	return "Mes sessions"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Entrée", Description: "Détail"},
		{Key: "↑↓", Description: "Naviguer"},
		{Key: "Échap", Description: "Retour"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case answersLoadedMsg:
		s.answers[msg.SessionID] = msg.Answers
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		case "enter":
			return s, s.toggleDetail()
		}
	}
	return s, nil
}

// toggleDetail expands the selected session, loading its answers on first
// open.
func (s *HistoryScreen) toggleDetail() tea.Cmd {
	if s.selected >= len(s.sessions) {
		return nil
	}
	if s.expanded[s.selected] {
		s.expanded[s.selected] = false
		return nil
	}
	s.expanded[s.selected] = true

	id := s.sessions[s.selected].SessionID
	if _, ok := s.answers[id]; ok {
		return nil
	}
	repo := s.eventRepo
	return func() tea.Msg {
		answers, err := repo.AnswersForSession(context.Background(), id)
		if err != nil {
			return answersLoadedMsg{SessionID: id}
		}
		return answersLoadedMsg{SessionID: id, Answers: answers}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if !s.loaded {
		return centered(width, height,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Chargement…"))
	}
	if s.errMsg != "" {
		return centered(width, height,
			lipgloss.NewStyle().Foreground(theme.Error).Render("✗ "+s.errMsg))
	}
	if len(s.sessions) == 0 {
		return centered(width, height,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Aucune session pour l'instant. Lance-toi !"))
	}

	var b strings.Builder
	for i, sess := range s.sessions {
		b.WriteString(s.renderSession(i, sess, width))
		b.WriteString("\n")
		if s.expanded[i] {
			b.WriteString(s.renderAnswers(sess.SessionID, width))
		}
	}

	lines := strings.Split(b.String(), "\n")
	// Keep the selected row in view.
	offset := 0
	if s.selected*2 > height-4 {
		offset = s.selected*2 - (height - 4)
	}
	if offset > len(lines)-1 {
		offset = len(lines) - 1
	}
	end := offset + height
	if end > len(lines) {
		end = len(lines)
	}

	return lipgloss.NewStyle().PaddingLeft(3).PaddingTop(1).
		Render(strings.Join(lines[offset:end], "\n"))
}

func (s *HistoryScreen) renderSession(i int, sess store.StudySessionRecord, width int) string {
	cursor := "  "
	rowStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if i == s.selected {
		cursor = lipgloss.NewStyle().Foreground(theme.Primary).Render("▸ ")
		rowStyle = rowStyle.Bold(true)
	}

	label := sess.Subject
	if sess.Topic != "" {
		label += " · " + sess.Topic
	}
	maxLabel := width - 40
	if maxLabel > 0 && len([]rune(label)) > maxLabel {
		label = string([]rune(label)[:maxLabel]) + "…"
	}

	scoreStyle := lipgloss.NewStyle().Foreground(theme.Success)
	if sess.MaxScore > 0 && sess.Score*100/sess.MaxScore < 60 {
		scoreStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	}
	score := scoreStyle.Render(fmt.Sprintf("%d/%d", sess.Score, sess.MaxScore))
	if sess.Action == "abandon" {
		score += lipgloss.NewStyle().Foreground(theme.TextDim).Render(" (abandonné)")
	}

	date := sess.Timestamp.Local().Format("02/01 15:04")

	return fmt.Sprintf("%s%s  %s %s  %s",
		cursor,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(date),
		curriculum.Icon(sess.Subject),
		rowStyle.Render(fmt.Sprintf("%-6s %s", sess.Level, label)),
		score)
}

func (s *HistoryScreen) renderAnswers(sessionID string, width int) string {
	answers, ok := s.answers[sessionID]
	if !ok {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("     chargement du détail…") + "\n"
	}
	if len(answers) == 0 {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("     aucune réponse enregistrée") + "\n"
	}

	var b strings.Builder
	for _, a := range answers {
		mark := lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		if !a.Correct {
			mark = lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
		q := a.QuestionText
		maxQ := width - 16
		if maxQ > 0 && len([]rune(q)) > maxQ {
			q = string([]rune(q)[:maxQ]) + "…"
		}
		b.WriteString(fmt.Sprintf("     %s %s\n", mark,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(q)))
	}
	return b.String()
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Package quizsetup configures the quiz before launch: number of
// questions, then difficulty.
package quizsetup

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
	"github.com/jmercier/collegien/internal/screens/loading"
	"github.com/jmercier/collegien/internal/screens/quizrun"
	"github.com/jmercier/collegien/internal/speech"
	"github.com/jmercier/collegien/internal/store"
	"github.com/jmercier/collegien/internal/ui/components"
	"github.com/jmercier/collegien/internal/ui/layout"
	"github.com/jmercier/collegien/internal/ui/theme"
)

var difficultyLabels = []struct {
	value content.Difficulty
	label string
}{
	{content.DifficultyIntro, "🌱 Découverte — je débute sur ce chapitre"},
	{content.DifficultyRevision, "📘 Révision — je consolide"},
	{content.DifficultyMastery, "🔥 Maîtrise — objectif Brevet"},
}

// Screen is the quiz setup screen.
type Screen struct {
	svc       *content.Service
	grading   *quiz.Coordinator
	guard     *speech.Guard
	st        *revision.State
	eventRepo store.EventRepo

	count       int
	pickedCount bool
	menu        components.Menu
	notice      string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.EscInterceptor = (*Screen)(nil)

// New creates the setup screen at the question count step.
func New(svc *content.Service, grading *quiz.Coordinator, guard *speech.Guard, st *revision.State, eventRepo store.EventRepo) *Screen {
	s := &Screen{
		svc:       svc,
		grading:   grading,
		guard:     guard,
		st:        st,
		eventRepo: eventRepo,
	}
	s.notice = st.ConsumeNotice()
	s.menu = s.countMenu()
	return s
}

func (s *Screen) countMenu() components.Menu {
	items := make([]components.MenuItem, 0, len(content.QuestionCounts))
	for _, n := range content.QuestionCounts {
		n := n
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("%d questions", n),
			Action: func() tea.Cmd {
				s.count = n
				s.pickedCount = true
				s.menu = s.difficultyMenu()
				return nil
			},
		})
	}
	return components.NewMenu(items)
}

func (s *Screen) difficultyMenu() components.Menu {
	items := make([]components.MenuItem, 0, len(difficultyLabels))
	for _, d := range difficultyLabels {
		d := d
		items = append(items, components.MenuItem{
			Label: d.label,
			Action: func() tea.Cmd {
				return s.launch(content.QuizConfig{QuestionCount: s.count, Difficulty: d.value})
			},
		})
	}
	return components.NewMenu(items)
}

// launch starts quiz generation, replacing this screen so the result
// screen's "back" lands on the sheet.
func (s *Screen) launch(cfg content.QuizConfig) tea.Cmd {
	epoch := s.st.BeginQuizLoad(cfg)

	svc, grading, guard, st, repo := s.svc, s.grading, s.guard, s.st, s.eventRepo
	sel := s.st.Selection
	work := func(ctx context.Context) (screen.Screen, error) {
		q, err := svc.GenerateQuiz(ctx, sel.Level, sel.Subject, sel.Topic.Value(), cfg)
		if !st.ApplyQuiz(epoch, q, err) {
			return nil, loading.ErrStale
		}
		if err != nil {
			return nil, err
		}
		return quizrun.New(svc, grading, guard, st, repo), nil
	}
	return func() tea.Msg {
		ld := loading.New("Quiz", "Préparation de ton quiz…", work).
			ReturnOnFail(func() screen.Screen {
				return New(svc, grading, guard, st, repo)
			})
		return router.ReplaceScreenMsg{Screen: ld}
	}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

// InterceptEsc returns to the count step; from there the app pops back to
// the sheet.
func (s *Screen) InterceptEsc() bool {
	return s.pickedCount
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		s.notice = ""
		if kmsg.String() == "esc" && s.pickedCount {
			s.pickedCount = false
			s.menu = s.countMenu()
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	prompt := "Combien de questions ?"
	if s.pickedCount {
		prompt = "Quel niveau de difficulté ?"
	}

	var sections []string
	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(prompt),
		"",
		s.menu.View(),
	)

	if s.notice != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Error).Render("✗ "+s.notice))
	}

	content := strings.Join(sections, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (s *Screen) Title() string {
	return "Préparation du quiz"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Naviguer"},
		{Key: "Entrée", Description: "Choisir"},
		{Key: "Échap", Description: "Retour"},
	}
}

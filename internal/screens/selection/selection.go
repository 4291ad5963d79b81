// Package selection is the level / subject / topic picker. Topic subjects
// lead to a study sheet; the Brevet Blanc and the Annales sujets skip the
// sheet and go straight to quiz generation.
package selection

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jmercier/collegien/internal/content"
	"github.com/jmercier/collegien/internal/curriculum"
	"github.com/jmercier/collegien/internal/quiz"
	"github.com/jmercier/collegien/internal/revision"
	"github.com/jmercier/collegien/internal/router"
	"github.com/jmercier/collegien/internal/screen"
	"github.com/jmercier/collegien/internal/screens/loading"
	"github.com/jmercier/collegien/internal/screens/quizrun"
	"github.com/jmercier/collegien/internal/screens/sheetview"
	"github.com/jmercier/collegien/internal/speech"
	"github.com/jmercier/collegien/internal/store"
	"github.com/jmercier/collegien/internal/ui/components"
	"github.com/jmercier/collegien/internal/ui/layout"
	"github.com/jmercier/collegien/internal/ui/theme"
)

type step int

const (
	stepLevel step = iota
	stepSubject
	stepTopic
	stepCustom
)

// Screen walks the student through level, subject, and topic.
type Screen struct {
	svc       *content.Service
	grading   *quiz.Coordinator
	guard     *speech.Guard
	st        *revision.State
	eventRepo store.EventRepo

	step    step
	level   curriculum.Level
	subject curriculum.Subject
	menu    components.Menu
	input   components.TextInput
	notice  string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.EscInterceptor = (*Screen)(nil)

// New creates the selection screen at the level step.
func New(svc *content.Service, grading *quiz.Coordinator, guard *speech.Guard, st *revision.State, eventRepo store.EventRepo) *Screen {
	s := &Screen{
		svc:       svc,
		grading:   grading,
		guard:     guard,
		st:        st,
		eventRepo: eventRepo,
	}
	s.notice = st.ConsumeNotice()
	s.menu = s.levelMenu()
	return s
}

func (s *Screen) levelMenu() components.Menu {
	items := make([]components.MenuItem, 0, len(curriculum.Levels()))
	for _, lvl := range curriculum.Levels() {
		lvl := lvl
		items = append(items, components.MenuItem{
			Label: string(lvl),
			Action: func() tea.Cmd {
				s.level = lvl
				s.st.Selection.Level = lvl
				s.step = stepSubject
				s.menu = s.subjectMenu()
				return nil
			},
		})
	}
	return components.NewMenu(items)
}

func (s *Screen) subjectMenu() components.Menu {
	subjects := curriculum.SubjectsForLevel(s.level)
	items := make([]components.MenuItem, 0, len(subjects))
	for _, sub := range subjects {
		sub := sub
		items = append(items, components.MenuItem{
			Label: curriculum.Icon(sub.Name) + "  " + sub.Name,
			Action: func() tea.Cmd {
				s.subject = sub
				s.st.Selection.Subject = sub.Name
				if curriculum.IsMockExam(sub.Name) {
					return s.launchQuiz(curriculum.TopicChoice{})
				}
				s.step = stepTopic
				s.menu = s.topicMenu()
				return nil
			},
		})
	}
	return components.NewMenu(items)
}

func (s *Screen) topicMenu() components.Menu {
	items := make([]components.MenuItem, 0, len(s.subject.Topics))
	for _, topic := range s.subject.Topics {
		topic := topic
		items = append(items, components.MenuItem{
			Label: topic,
			Action: func() tea.Cmd {
				if curriculum.NeedsCustomInput(topic) {
					s.step = stepCustom
					s.input = components.NewTextInput("Titre de l'œuvre ou du livre…", false, 50)
					return s.input.Init()
				}
				choice := curriculum.CatalogTopic(topic)
				if curriculum.IsPastPaper(s.subject.Name) {
					return s.launchQuiz(choice)
				}
				return s.launchSheet(choice)
			},
		})
	}
	return components.NewMenu(items)
}

// launchSheet starts sheet generation and pushes the loading screen.
func (s *Screen) launchSheet(topic curriculum.TopicChoice) tea.Cmd {
	sel := revision.Selection{Level: s.level, Subject: s.subject.Name, Topic: topic}
	epoch := s.st.BeginSheetLoad(sel)

	svc, grading, guard, st, repo := s.svc, s.grading, s.guard, s.st, s.eventRepo
	work := func(ctx context.Context) (screen.Screen, error) {
		sheet, err := svc.GenerateSheet(ctx, sel.Level, sel.Subject, sel.Topic.Value())
		if !st.ApplySheet(epoch, sheet, err) {
			return nil, loading.ErrStale
		}
		if err != nil {
			return nil, err
		}
		return sheetview.New(svc, grading, guard, st, repo), nil
	}
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: loading.New("Fiche de révision", "Génération de ta fiche de révision…", work),
		}
	}
}

// launchQuiz starts quiz generation for the Brevet Blanc or an Annales
// sujet, skipping the sheet and setup screens.
func (s *Screen) launchQuiz(topic curriculum.TopicChoice) tea.Cmd {
	sel := revision.Selection{Level: s.level, Subject: s.subject.Name, Topic: topic}
	s.st.Selection = sel
	cfg := content.QuizConfig{QuestionCount: 20, Difficulty: content.DifficultyMastery}
	epoch := s.st.BeginQuizLoad(cfg)

	svc, grading, guard, st, repo := s.svc, s.grading, s.guard, s.st, s.eventRepo
	mockExam := curriculum.IsMockExam(sel.Subject)
	work := func(ctx context.Context) (screen.Screen, error) {
		var q *content.Quiz
		var err error
		if mockExam {
			q, err = svc.GenerateBrevetQuiz(ctx)
		} else {
			q, err = svc.GenerateAnnalesQuiz(ctx, topic.Value())
		}
		if !st.ApplyQuiz(epoch, q, err) {
			return nil, loading.ErrStale
		}
		if err != nil {
			return nil, err
		}
		return quizrun.New(svc, grading, guard, st, repo), nil
	}
	message := "Préparation de ton Brevet Blanc…"
	if !mockExam {
		message = "Préparation du sujet d'annales…"
	}
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: loading.New("Quiz", message, work),
		}
	}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

// InterceptEsc steps back through the picker; at the level step the app
// pops the screen.
func (s *Screen) InterceptEsc() bool {
	return s.step > stepLevel
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		s.notice = ""
		if kmsg.String() == "esc" && s.step > stepLevel {
			switch s.step {
			case stepSubject:
				s.step = stepLevel
				s.menu = s.levelMenu()
			case stepTopic:
				s.step = stepSubject
				s.menu = s.subjectMenu()
			case stepCustom:
				s.step = stepTopic
				s.menu = s.topicMenu()
			}
			return s, nil
		}
	}

	if s.step == stepCustom {
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			choice := curriculum.CustomTopic(s.input.Value())
			if choice.IsZero() {
				return s, nil
			}
			return s, s.launchSheet(choice)
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	var prompt string
	switch s.step {
	case stepLevel:
		prompt = "Choisis ta classe"
	case stepSubject:
		prompt = "Choisis ta matière"
	case stepTopic:
		prompt = "Choisis ton chapitre"
	case stepCustom:
		prompt = "Quelle œuvre veux-tu réviser ?"
	}

	var sections []string
	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(prompt),
		"",
	)

	if s.step == stepCustom {
		sections = append(sections, s.input.View())
	} else {
		sections = append(sections, s.menu.View())
	}

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
	return "Révision"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.step == stepCustom {
		return []layout.KeyHint{
			{Key: "Entrée", Description: "Valider"},
			{Key: "Échap", Description: "Retour"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Naviguer"},
		{Key: "Entrée", Description: "Choisir"},
		{Key: "Échap", Description: "Retour"},
	}
}

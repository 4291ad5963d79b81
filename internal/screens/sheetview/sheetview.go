// Package sheetview renders the generated study sheet: objectives, key
// points, course content, the exam exercise with its copy variants, and
// the chart for SVT topics. From here the student launches the quiz.
package sheetview

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/jmercier/collegien/internal/content"
	"github.com/jmercier/collegien/internal/quiz"
	"github.com/jmercier/collegien/internal/revision"
	"github.com/jmercier/collegien/internal/router"
	"github.com/jmercier/collegien/internal/screen"
	"github.com/jmercier/collegien/internal/screens/quizsetup"
	"github.com/jmercier/collegien/internal/speech"
	"github.com/jmercier/collegien/internal/store"
	"github.com/jmercier/collegien/internal/ui/components"
	"github.com/jmercier/collegien/internal/ui/layout"

	"github.com/google/uuid"
)

type variantMsg struct {
	sampleID uuid.UUID
	kind     content.VariantKind
	text     string
	err      error
}

type sampleMsg struct {
	epoch  int
	sample *content.ExamSample
	err    error
}

type chartMsg struct {
	epoch int
	chart *content.ChartSpec
	err   error
}

type explainMsg struct {
	sampleID uuid.UUID
	text     string
	err      error
}

// Screen is the study sheet screen.
type Screen struct {
	svc       *content.Service
	grading   *quiz.Coordinator
	guard     *speech.Guard
	st        *revision.State
	eventRepo store.EventRepo

	scroll      int
	viewHeight  int
	busy        string // "", "variant", "sample", "chart", "explain"
	explanation string
	showExplain bool
	notice      string
	start       components.Button
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the sheet screen over the sheet held in st.
func New(svc *content.Service, grading *quiz.Coordinator, guard *speech.Guard, st *revision.State, eventRepo store.EventRepo) *Screen {
	s := &Screen{
		svc:       svc,
		grading:   grading,
		guard:     guard,
		st:        st,
		eventRepo: eventRepo,
	}
	s.start = components.NewButton("Commencer le quiz", true, s.startQuiz)
	return s
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case variantMsg:
		if s.busy == "variant" {
			s.busy = ""
		}
		sheet := s.st.Sheet
		if sheet == nil || sheet.ExamSample.ID != msg.sampleID {
			return s, nil
		}
		if msg.err != nil {
			s.notice = "La génération a échoué. Réessaie dans un instant."
			return s, nil
		}
		s.st.SelectVariant(msg.kind)
		return s, nil

	case sampleMsg:
		if s.busy == "sample" {
			s.busy = ""
		}
		if s.st.ReplaceExamSample(msg.epoch, msg.sample, msg.err) {
			s.notice = s.st.ConsumeNotice()
			s.explanation = ""
			s.showExplain = false
		}
		return s, nil

	case chartMsg:
		if s.busy == "chart" {
			s.busy = ""
		}
		if s.st.ReplaceChart(msg.epoch, msg.chart, msg.err) {
			s.notice = s.st.ConsumeNotice()
		}
		return s, nil

	case explainMsg:
		if s.busy == "explain" {
			s.busy = ""
		}
		sheet := s.st.Sheet
		if sheet == nil || sheet.ExamSample.ID != msg.sampleID {
			return s, nil
		}
		if msg.err != nil {
			s.notice = "La génération a échoué. Réessaie dans un instant."
			return s, nil
		}
		s.explanation = msg.text
		s.showExplain = true
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	s.notice = ""
	switch msg.String() {
	case "up", "k":
		if s.scroll > 0 {
			s.scroll--
		}
	case "down", "j":
		s.scroll++
	case "pgup":
		s.scroll -= s.viewHeight
		if s.scroll < 0 {
			s.scroll = 0
		}
	case "pgdown":
		s.scroll += s.viewHeight

	case "1":
		return s, s.selectVariant(content.VariantStandard)
	case "2":
		return s, s.selectVariant(content.VariantSimple)
	case "3":
		return s, s.selectVariant(content.VariantExpert)

	case "e":
		return s, s.toggleExplain()
	case "n":
		return s, s.newSample()
	case "g":
		return s, s.newChart()
	case "l":
		return s, s.readAloud()

	case "q":
		return s, s.startQuiz()
	case "enter":
		var cmd tea.Cmd
		s.start, cmd = s.start.Update(msg)
		return s, cmd
	}
	return s, nil
}

// startQuiz moves to the quiz setup screen.
func (s *Screen) startQuiz() tea.Cmd {
	s.st.BeginQuizSetup()
	svc, grading, guard, st, repo := s.svc, s.grading, s.guard, s.st, s.eventRepo
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: quizsetup.New(svc, grading, guard, st, repo),
		}
	}
}

// selectVariant switches the exam copy rendering. The standard copy is
// already on the sheet; reformulations go through the single-flight cache
// so repeated switches reuse the first generation.
func (s *Screen) selectVariant(kind content.VariantKind) tea.Cmd {
	sheet := s.st.Sheet
	if sheet == nil || s.busy != "" {
		return nil
	}
	if kind == s.st.ActiveVariant {
		return nil
	}
	if kind == content.VariantStandard {
		s.st.SelectVariant(kind)
		return nil
	}
	if _, ok := s.st.Variants.Peek(sheet.ExamSample, kind); ok {
		s.st.SelectVariant(kind)
		return nil
	}

	s.busy = "variant"
	sample := sheet.ExamSample
	cache := s.st.Variants
	return func() tea.Msg {
		text, err := cache.GetOrCreate(context.Background(), sample, kind)
		return variantMsg{sampleID: sample.ID, kind: kind, text: text, err: err}
	}
}

// toggleExplain shows or hides the step-by-step walkthrough of the model
// copy, generating it on first use for the current sample.
func (s *Screen) toggleExplain() tea.Cmd {
	sheet := s.st.Sheet
	if sheet == nil || s.busy != "" {
		return nil
	}
	if s.showExplain {
		s.showExplain = false
		return nil
	}
	if s.explanation != "" {
		s.showExplain = true
		return nil
	}

	s.busy = "explain"
	svc := s.svc
	sample := sheet.ExamSample
	return func() tea.Msg {
		text, err := svc.ExplainCopy(context.Background(), sample.Instruction, sample.PerfectCopy)
		return explainMsg{sampleID: sample.ID, text: text, err: err}
	}
}

// newSample regenerates the exam exercise for the same topic.
func (s *Screen) newSample() tea.Cmd {
	if s.st.Sheet == nil || s.busy != "" {
		return nil
	}
	s.busy = "sample"
	epoch := s.st.BeginOperation()
	svc := s.svc
	sel := s.st.Selection
	return func() tea.Msg {
		sample, err := svc.NewExamSample(context.Background(), sel.Level, sel.Subject, sel.Topic.Value())
		return sampleMsg{epoch: epoch, sample: sample, err: err}
	}
}

// newChart regenerates the chart data. Only offered when the sheet
// carries one (SVT topics).
func (s *Screen) newChart() tea.Cmd {
	sheet := s.st.Sheet
	if sheet == nil || sheet.Chart == nil || s.busy != "" {
		return nil
	}
	s.busy = "chart"
	epoch := s.st.BeginOperation()
	svc := s.svc
	sel := s.st.Selection
	return func() tea.Msg {
		chart, err := svc.NewChartData(context.Background(), sel.Level, sel.Topic.Value())
		return chartMsg{epoch: epoch, chart: chart, err: err}
	}
}

// readAloud reads the exercise instruction, cancelling any current
// playback.
func (s *Screen) readAloud() tea.Cmd {
	sheet := s.st.Sheet
	if sheet == nil || s.guard == nil {
		return nil
	}
	s.guard.Play(sheet.ExamSample.Instruction, nil)
	return nil
}

func (s *Screen) Title() string {
	if s.st.Sheet != nil {
		return s.st.Sheet.Title
	}
	return "Fiche de révision"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Défiler"},
		{Key: "1/2/3", Description: "Copie"},
		{Key: "E", Description: "Explication"},
		{Key: "N", Description: "Nouvel exemple"},
	}
	if s.st.Sheet != nil && s.st.Sheet.Chart != nil {
		hints = append(hints, layout.KeyHint{Key: "G", Description: "Graphique"})
	}
	hints = append(hints, layout.KeyHint{Key: "Entrée", Description: "Quiz"})
	return hints
}

package revision

import (
	"github.com/jmercier/collegien/internal/content"
	"github.com/jmercier/collegien/internal/curriculum"
	"github.com/jmercier/collegien/internal/quiz"
)

// Selection is the student's level, subject, and topic choice. Mock exams
// (Brevet Blanc) have no topic.
type Selection struct {
	Level   curriculum.Level
	Subject string
	Topic   curriculum.TopicChoice
}

// EffectiveTopic returns the topic text to generate for. Mock exams return
// empty: the Brevet prompt fixes its own coverage.
func (s Selection) EffectiveTopic() string {
	if curriculum.IsMockExam(s.Subject) {
		return ""
	}
	return s.Topic.Value()
}

// State is the whole study session. It is driven from the UI goroutine;
// async generation results come back through the Apply methods with the
// epoch they were requested under.
type State struct {
	Phase     Phase
	Selection Selection

	Sheet         *content.Sheet
	ActiveVariant content.VariantKind
	Variants      *content.VariantCache

	QuizConfig  content.QuizConfig
	QuizSession *quiz.Session

	// Notice is a one-shot message shown after a failed generation.
	Notice string

	epoch int
}

// NewState returns the initial state on the home screen.
func NewState(variants *content.VariantCache) *State {
	return &State{
		Phase:         PhaseHome,
		ActiveVariant: content.VariantStandard,
		Variants:      variants,
		QuizConfig:    content.DefaultQuizConfig(),
	}
}

// Epoch returns the tag async results must carry to be applied.
func (s *State) Epoch() int { return s.epoch }

// BeginSelection moves to the level/subject/topic picker.
func (s *State) BeginSelection() {
	s.Phase = PhaseSelection
	s.Notice = ""
}

// BeginSheetLoad starts sheet generation for the selection and returns the
// epoch to tag the result with. Any in-flight result from an earlier load
// becomes stale.
func (s *State) BeginSheetLoad(sel Selection) int {
	s.Selection = sel
	s.Phase = PhaseLoadingSheet
	s.Notice = ""
	s.epoch++
	return s.epoch
}

// ApplySheet installs a generated sheet. Results tagged with an old epoch
// are discarded: the student already started something newer. On failure
// the flow returns to selection with a notice; the previous sheet, if any,
// is kept for the result screen's retry path but no longer shown.
func (s *State) ApplySheet(epoch int, sheet *content.Sheet, err error) bool {
	if epoch != s.epoch {
		return false
	}
	if err != nil {
		s.Phase = PhaseSelection
		s.Notice = "La génération a échoué. Réessaie dans un instant."
		return true
	}
	s.Sheet = sheet
	s.ActiveVariant = content.VariantStandard
	if s.Variants != nil {
		s.Variants.Clear()
	}
	s.Phase = PhaseSheet
	return true
}

// ReplaceExamSample swaps in a regenerated exam exercise. Variants cached
// for the old sample are dropped and the view returns to the standard copy.
func (s *State) ReplaceExamSample(epoch int, sample *content.ExamSample, err error) bool {
	if epoch != s.epoch || s.Sheet == nil {
		return false
	}
	if err != nil {
		s.Notice = "La génération a échoué. Réessaie dans un instant."
		return true
	}
	old := s.Sheet.ExamSample.ID
	s.Sheet.ExamSample = *sample
	s.ActiveVariant = content.VariantStandard
	if s.Variants != nil {
		s.Variants.Invalidate(old)
	}
	return true
}

// ReplaceChart swaps in regenerated chart data for an SVT sheet.
func (s *State) ReplaceChart(epoch int, chart *content.ChartSpec, err error) bool {
	if epoch != s.epoch || s.Sheet == nil {
		return false
	}
	if err != nil {
		s.Notice = "La génération a échoué. Réessaie dans un instant."
		return true
	}
	s.Sheet.Chart = chart
	return true
}

// BeginOperation tags a sheet-scoped generation (new sample, new chart,
// variant) with a fresh epoch.
func (s *State) BeginOperation() int {
	s.Notice = ""
	s.epoch++
	return s.epoch
}

// SelectVariant records which copy rendering the sheet shows. The text
// itself lives in the variant cache.
func (s *State) SelectVariant(kind content.VariantKind) {
	s.ActiveVariant = kind
}

// BeginQuizSetup moves from the sheet to quiz configuration.
func (s *State) BeginQuizSetup() {
	s.Phase = PhaseQuizSetup
	s.Notice = ""
}

// BeginQuizLoad starts quiz generation and returns the epoch for the
// result. Mock exams skip the setup screen and call this directly from
// selection.
func (s *State) BeginQuizLoad(cfg content.QuizConfig) int {
	s.QuizConfig = cfg
	s.Phase = PhaseLoadingQuiz
	s.Notice = ""
	s.epoch++
	return s.epoch
}

// ApplyQuiz installs a generated quiz and starts the session. On failure
// the flow returns to the step the student came from: quiz setup for topic
// quizzes, selection for mock exams.
func (s *State) ApplyQuiz(epoch int, q *content.Quiz, err error) bool {
	if epoch != s.epoch {
		return false
	}
	if err != nil {
		if curriculum.IsMockExam(s.Selection.Subject) || curriculum.IsPastPaper(s.Selection.Subject) {
			s.Phase = PhaseSelection
		} else {
			s.Phase = PhaseQuizSetup
		}
		s.Notice = "La génération a échoué. Réessaie dans un instant."
		return true
	}
	s.QuizSession = quiz.NewSession(s.Selection.Level, s.Selection.Subject, s.EffectiveTopicForRecord(), q)
	s.Phase = PhaseQuiz
	return true
}

// EffectiveTopicForRecord returns the topic to persist with session events.
func (s *State) EffectiveTopicForRecord() string {
	return s.Selection.EffectiveTopic()
}

// FinishQuiz moves to the result screen once the session is done.
func (s *State) FinishQuiz() {
	if s.QuizSession != nil {
		s.Phase = PhaseResult
	}
}

// RetryQuiz starts a fresh quiz over the same selection and config.
func (s *State) RetryQuiz() int {
	s.QuizSession = nil
	return s.BeginQuizLoad(s.QuizConfig)
}

// BackToSheet returns from the result screen to the sheet, if one exists.
func (s *State) BackToSheet() {
	s.QuizSession = nil
	if s.Sheet != nil {
		s.Phase = PhaseSheet
	} else {
		s.Phase = PhaseSelection
	}
}

// Reset returns to the home screen, dropping the session but keeping the
// variant cache object (cleared) for reuse.
func (s *State) Reset() {
	s.Phase = PhaseHome
	s.Selection = Selection{}
	s.Sheet = nil
	s.ActiveVariant = content.VariantStandard
	s.QuizSession = nil
	s.QuizConfig = content.DefaultQuizConfig()
	s.Notice = ""
	if s.Variants != nil {
		s.Variants.Clear()
	}
	s.epoch++
}

// ConsumeNotice returns the pending notice and clears it.
func (s *State) ConsumeNotice() string {
	n := s.Notice
	s.Notice = ""
	return n
}

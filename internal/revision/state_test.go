package revision

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/jmercier/collegien/internal/content"
	"github.com/jmercier/collegien/internal/curriculum"
)

func echoCache() *content.VariantCache {
	return content.NewVariantCache(func(_ context.Context, copy string, kind content.VariantKind) (string, error) {
		return string(kind) + ": " + copy, nil
	})
}

func mathSelection() Selection {
	return Selection{
		Level:   curriculum.Quatrieme,
		Subject: "Mathématiques",
		Topic:   curriculum.CatalogTopic("Théorème de Pythagore (Calculs)"),
	}
}

func testSheet() *content.Sheet {
	return &content.Sheet{
		Title:     "Théorème de Pythagore",
		KeyPoints: []string{"BC² = AB² + AC²"},
		ExamSample: content.ExamSample{
			ID:          uuid.New(),
			Instruction: "Calculer BC.",
			PerfectCopy: "D'après le théorème de Pythagore...",
			Tips:        "Citer le théorème.",
		},
	}
}

func testQuiz() *content.Quiz {
	return &content.Quiz{
		Topic: "Théorème de Pythagore (Calculs)",
		Questions: []content.Question{
			{ID: 1, Type: content.MCQ, Question: "?", Options: []string{"a", "b", "c", "d"}, CorrectAnswerIndex: 0, Explanation: "e"},
		},
	}
}

func TestHappyPathThroughPhases(t *testing.T) {
	s := NewState(echoCache())
	if s.Phase != PhaseHome {
		t.Fatalf("initial phase = %s, want home", s.Phase)
	}

	s.BeginSelection()
	epoch := s.BeginSheetLoad(mathSelection())
	if s.Phase != PhaseLoadingSheet {
		t.Fatalf("phase = %s, want loading-sheet", s.Phase)
	}

	if !s.ApplySheet(epoch, testSheet(), nil) {
		t.Fatal("fresh sheet should apply")
	}
	if s.Phase != PhaseSheet {
		t.Fatalf("phase = %s, want sheet", s.Phase)
	}

	s.BeginQuizSetup()
	epoch = s.BeginQuizLoad(content.QuizConfig{QuestionCount: 5, Difficulty: content.DifficultyIntro})
	if !s.ApplyQuiz(epoch, testQuiz(), nil) {
		t.Fatal("fresh quiz should apply")
	}
	if s.Phase != PhaseQuiz || s.QuizSession == nil {
		t.Fatalf("phase = %s, session = %v", s.Phase, s.QuizSession)
	}

	s.FinishQuiz()
	if s.Phase != PhaseResult {
		t.Fatalf("phase = %s, want result", s.Phase)
	}
}

func TestStaleSheetResultIsDiscarded(t *testing.T) {
	s := NewState(echoCache())
	s.BeginSelection()

	old := s.BeginSheetLoad(mathSelection())
	// Student backs out and starts a different topic before the first
	// result lands.
	newer := s.BeginSheetLoad(Selection{
		Level:   curriculum.Quatrieme,
		Subject: "Mathématiques",
		Topic:   curriculum.CatalogTopic("Équations du premier degré"),
	})

	if s.ApplySheet(old, testSheet(), nil) {
		t.Error("stale result must be discarded")
	}
	if s.Phase != PhaseLoadingSheet || s.Sheet != nil {
		t.Errorf("stale apply mutated state: phase=%s sheet=%v", s.Phase, s.Sheet)
	}

	if !s.ApplySheet(newer, testSheet(), nil) {
		t.Error("current result should apply")
	}
}

func TestSheetFailureRevertsToSelection(t *testing.T) {
	s := NewState(echoCache())
	epoch := s.BeginSheetLoad(mathSelection())

	if !s.ApplySheet(epoch, nil, errors.New("boom")) {
		t.Fatal("failure for the current epoch should be handled")
	}
	if s.Phase != PhaseSelection {
		t.Errorf("phase = %s, want selection", s.Phase)
	}
	if s.ConsumeNotice() == "" {
		t.Error("failure should leave a notice")
	}
	if s.Notice != "" {
		t.Error("notice should be one-shot")
	}
}

func TestApplySheetResetsVariantState(t *testing.T) {
	cache := echoCache()
	s := NewState(cache)
	epoch := s.BeginSheetLoad(mathSelection())
	first := testSheet()
	s.ApplySheet(epoch, first, nil)

	// Generate and select an expert variant on the first sheet.
	if _, err := cache.GetOrCreate(context.Background(), first.ExamSample, content.VariantExpert); err != nil {
		t.Fatal(err)
	}
	s.SelectVariant(content.VariantExpert)

	// Load a new sheet: variant selection and cache must reset.
	epoch = s.BeginSheetLoad(mathSelection())
	second := testSheet()
	s.ApplySheet(epoch, second, nil)

	if s.ActiveVariant != content.VariantStandard {
		t.Errorf("active variant = %s, want STANDARD", s.ActiveVariant)
	}
	if _, ok := cache.Peek(first.ExamSample, content.VariantExpert); ok {
		t.Error("old sheet's variants should be cleared")
	}
}

func TestReplaceExamSampleInvalidatesOldVariants(t *testing.T) {
	cache := echoCache()
	s := NewState(cache)
	epoch := s.BeginSheetLoad(mathSelection())
	sheet := testSheet()
	s.ApplySheet(epoch, sheet, nil)
	oldSample := sheet.ExamSample

	if _, err := cache.GetOrCreate(context.Background(), oldSample, content.VariantSimple); err != nil {
		t.Fatal(err)
	}
	s.SelectVariant(content.VariantSimple)

	fresh := &content.ExamSample{
		ID:          uuid.New(),
		Instruction: "Nouvelle consigne.",
		PerfectCopy: "Nouvelle copie.",
		Tips:        "Nouveaux conseils.",
	}
	if !s.ReplaceExamSample(s.BeginOperation(), fresh, nil) {
		t.Fatal("sample should be replaced")
	}

	if s.Sheet.ExamSample.ID != fresh.ID {
		t.Error("sheet should carry the fresh sample")
	}
	if s.ActiveVariant != content.VariantStandard {
		t.Errorf("active variant = %s, want STANDARD after regeneration", s.ActiveVariant)
	}
	if _, ok := cache.Peek(oldSample, content.VariantSimple); ok {
		t.Error("variants of the replaced sample should be invalidated")
	}
}

func TestQuizFailureRevertsToSetupOrSelection(t *testing.T) {
	// Topic quiz failure returns to the setup screen.
	s := NewState(echoCache())
	epoch := s.BeginSheetLoad(mathSelection())
	s.ApplySheet(epoch, testSheet(), nil)
	s.BeginQuizSetup()
	epoch = s.BeginQuizLoad(content.DefaultQuizConfig())
	s.ApplyQuiz(epoch, nil, errors.New("boom"))
	if s.Phase != PhaseQuizSetup {
		t.Errorf("topic quiz failure: phase = %s, want quiz-setup", s.Phase)
	}

	// Mock exam failure returns to selection: there is no setup step.
	s = NewState(echoCache())
	s.BeginSelection()
	s.Selection = Selection{Level: curriculum.Troisieme, Subject: curriculum.SubjectBrevetBlanc}
	epoch = s.BeginQuizLoad(content.QuizConfig{QuestionCount: 20, Difficulty: content.DifficultyMastery})
	s.ApplyQuiz(epoch, nil, errors.New("boom"))
	if s.Phase != PhaseSelection {
		t.Errorf("brevet failure: phase = %s, want selection", s.Phase)
	}
}

func TestStaleQuizResultIsDiscarded(t *testing.T) {
	s := NewState(echoCache())
	epoch := s.BeginSheetLoad(mathSelection())
	s.ApplySheet(epoch, testSheet(), nil)
	s.BeginQuizSetup()

	old := s.BeginQuizLoad(content.DefaultQuizConfig())
	// Student changes the config and relaunches.
	newer := s.BeginQuizLoad(content.QuizConfig{QuestionCount: 20, Difficulty: content.DifficultyMastery})

	if s.ApplyQuiz(old, testQuiz(), nil) {
		t.Error("stale quiz must be discarded")
	}
	if s.QuizSession != nil {
		t.Error("stale quiz must not start a session")
	}
	if !s.ApplyQuiz(newer, testQuiz(), nil) {
		t.Error("current quiz should apply")
	}
}

func TestMockExamSelectionHasNoTopic(t *testing.T) {
	sel := Selection{Level: curriculum.Troisieme, Subject: curriculum.SubjectBrevetBlanc}
	if sel.EffectiveTopic() != "" {
		t.Errorf("mock exam topic = %q, want empty", sel.EffectiveTopic())
	}

	annales := Selection{
		Level:   curriculum.Troisieme,
		Subject: curriculum.SubjectAnnalesBrevet,
		Topic:   curriculum.CatalogTopic("Sujet Métropole 2024 (Juin)"),
	}
	if annales.EffectiveTopic() != "Sujet Métropole 2024 (Juin)" {
		t.Errorf("annales topic = %q, want the session name", annales.EffectiveTopic())
	}
}

func TestRetryQuizKeepsSelectionAndConfig(t *testing.T) {
	s := NewState(echoCache())
	epoch := s.BeginSheetLoad(mathSelection())
	s.ApplySheet(epoch, testSheet(), nil)
	s.BeginQuizSetup()
	cfg := content.QuizConfig{QuestionCount: 20, Difficulty: content.DifficultyMastery}
	epoch = s.BeginQuizLoad(cfg)
	s.ApplyQuiz(epoch, testQuiz(), nil)
	s.FinishQuiz()

	epoch = s.RetryQuiz()
	if s.Phase != PhaseLoadingQuiz {
		t.Errorf("phase = %s, want loading-quiz", s.Phase)
	}
	if s.QuizConfig != cfg {
		t.Errorf("config = %+v, want %+v", s.QuizConfig, cfg)
	}
	if !s.ApplyQuiz(epoch, testQuiz(), nil) {
		t.Error("retried quiz should apply")
	}
}

func TestResetClearsEverything(t *testing.T) {
	cache := echoCache()
	s := NewState(cache)
	epoch := s.BeginSheetLoad(mathSelection())
	sheet := testSheet()
	s.ApplySheet(epoch, sheet, nil)
	if _, err := cache.GetOrCreate(context.Background(), sheet.ExamSample, content.VariantSimple); err != nil {
		t.Fatal(err)
	}

	s.Reset()
	if s.Phase != PhaseHome || s.Sheet != nil || s.QuizSession != nil {
		t.Errorf("reset left state behind: %+v", s)
	}
	if _, ok := cache.Peek(sheet.ExamSample, content.VariantSimple); ok {
		t.Error("reset should clear the variant cache")
	}
}

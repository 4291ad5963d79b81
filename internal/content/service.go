package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jmercier/collegien/internal/curriculum"
	"github.com/jmercier/collegien/internal/llm"
)

// Service generates study content through an LLM provider. Each method
// issues exactly one backend call; callers decide whether to retry.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a content generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// GenerateSheet produces a full revision sheet for a topic.
func (s *Service) GenerateSheet(ctx context.Context, level curriculum.Level, subject, topic string) (*Sheet, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeSheet)

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSheetPrompt(level, subject, topic)},
		},
		Schema:      SheetSchema,
		MaxTokens:   s.cfg.Sheet.MaxTokens,
		Temperature: s.cfg.Sheet.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("sheet generation: %w", err)
	}

	var sheet Sheet
	if err := json.Unmarshal(resp.Content, &sheet); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("parse sheet: %w", err)}
	}
	sheet.ExamSample.ID = uuid.New()
	return &sheet, nil
}

// NewExamSample regenerates only the exam exercise of a sheet. The returned
// sample carries a fresh ID so variant caches keyed on the old sample do
// not apply.
func (s *Service) NewExamSample(ctx context.Context, level curriculum.Level, subject, topic string) (*ExamSample, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeExamSample)

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildExamSamplePrompt(level, subject, topic)},
		},
		Schema:      ExamSampleSchema,
		MaxTokens:   s.cfg.ExamSample.MaxTokens,
		Temperature: s.cfg.ExamSample.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("exam sample generation: %w", err)
	}

	var sample ExamSample
	if err := json.Unmarshal(resp.Content, &sample); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("parse exam sample: %w", err)}
	}
	sample.ID = uuid.New()
	return &sample, nil
}

// NewChartData generates fresh chart data for an SVT sheet.
func (s *Service) NewChartData(ctx context.Context, level curriculum.Level, topic string) (*ChartSpec, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeChart)

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildChartPrompt(level, topic)},
		},
		Schema:      ChartSchema,
		MaxTokens:   s.cfg.Chart.MaxTokens,
		Temperature: s.cfg.Chart.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("chart generation: %w", err)
	}

	var chart ChartSpec
	if err := json.Unmarshal(resp.Content, &chart); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("parse chart: %w", err)}
	}
	return &chart, nil
}

// Reformulate rewrites a perfect copy for the requested variant. Calling it
// with VariantStandard is a programming error; the standard text is the
// copy itself.
func (s *Service) Reformulate(ctx context.Context, copy string, kind VariantKind) (string, error) {
	if kind == VariantStandard {
		return copy, nil
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeReformulation)

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildReformulationPrompt(copy, kind)},
		},
		MaxTokens:   s.cfg.Reformulation.MaxTokens,
		Temperature: s.cfg.Reformulation.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("reformulation (%s): %w", kind, err)
	}
	text := strings.TrimSpace(string(resp.Content))
	if text == "" {
		return "", &llm.ErrEmptyResponse{}
	}
	return text, nil
}

// ExplainCopy asks the model why the perfect copy earns full marks.
func (s *Service) ExplainCopy(ctx context.Context, instruction, copy string) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeExplanation)

	req := llm.Request{
		System: copyExplanationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildCopyExplanationMessage(instruction, copy)},
		},
		MaxTokens:   s.cfg.Explanation.MaxTokens,
		Temperature: s.cfg.Explanation.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("copy explanation: %w", err)
	}
	text := strings.TrimSpace(string(resp.Content))
	if text == "" {
		return "", &llm.ErrEmptyResponse{}
	}
	return text, nil
}

// QuickAnswer answers a free-form school question from the home screen.
// The system prompt confines answers to school subjects.
func (s *Service) QuickAnswer(ctx context.Context, question string) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuickAnswer)

	req := llm.Request{
		System: quickQuestionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuickQuestionMessage(question)},
		},
		MaxTokens:   s.cfg.QuickAnswer.MaxTokens,
		Temperature: s.cfg.QuickAnswer.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("quick answer: %w", err)
	}
	text := strings.TrimSpace(string(resp.Content))
	if text == "" {
		return "", &llm.ErrEmptyResponse{}
	}
	return text, nil
}

// GenerateQuiz produces a topic quiz at the configured length and
// difficulty.
func (s *Service) GenerateQuiz(ctx context.Context, level curriculum.Level, subject, topic string, cfg QuizConfig) (*Quiz, error) {
	return s.quiz(ctx, buildQuizPrompt(level, subject, topic, cfg), s.cfg.Quiz)
}

// GenerateBrevetQuiz produces a 20-question mock Brevet covering the four
// exam papers. It ignores topic selection entirely.
func (s *Service) GenerateBrevetQuiz(ctx context.Context) (*Quiz, error) {
	return s.quiz(ctx, brevetQuizPrompt, s.cfg.Brevet)
}

// GenerateAnnalesQuiz reproduces exercises from a published Brevet session.
func (s *Service) GenerateAnnalesQuiz(ctx context.Context, yearTopic string) (*Quiz, error) {
	return s.quiz(ctx, buildAnnalesPrompt(yearTopic), s.cfg.Annales)
}

func (s *Service) quiz(ctx context.Context, prompt string, settings GenSettings) (*Quiz, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuiz)

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		Schema:      QuizSchema,
		MaxTokens:   settings.MaxTokens,
		Temperature: settings.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("quiz generation: %w", err)
	}

	var quiz Quiz
	if err := json.Unmarshal(resp.Content, &quiz); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("parse quiz: %w", err)}
	}
	if err := validateQuiz(&quiz); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	return &quiz, nil
}

// GradeAnswer asks the model to grade an open answer against the expected
// answer. It returns an error on failure; callers fall back to zero credit
// with a fixed notice rather than blocking the quiz.
func (s *Service) GradeAnswer(ctx context.Context, question, studentAnswer, correctContext string, level curriculum.Level) (*GradingResult, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeGrading)

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGradingPrompt(question, studentAnswer, correctContext, level)},
		},
		Schema:      GradingSchema,
		MaxTokens:   s.cfg.Grading.MaxTokens,
		Temperature: s.cfg.Grading.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("grading: %w", err)
	}

	var result GradingResult
	if err := json.Unmarshal(resp.Content, &result); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("parse grading: %w", err)}
	}
	// Integer scoring only: anything outside {0,1} is clamped to match
	// the verdict.
	if result.Score != 0 && result.Score != 1 {
		if result.IsCorrect {
			result.Score = 1
		} else {
			result.Score = 0
		}
	}
	return &result, nil
}

// validateQuiz rejects quizzes the UI cannot run: no questions, MCQs
// without exactly four options, or answer indexes out of range.
func validateQuiz(q *Quiz) error {
	if len(q.Questions) == 0 {
		return fmt.Errorf("quiz has no questions")
	}
	for i, question := range q.Questions {
		switch question.Type {
		case MCQ:
			if len(question.Options) != 4 {
				return fmt.Errorf("question %d: MCQ has %d options, want 4", i+1, len(question.Options))
			}
			if question.CorrectAnswerIndex < 0 || question.CorrectAnswerIndex >= len(question.Options) {
				return fmt.Errorf("question %d: answer index %d out of range", i+1, question.CorrectAnswerIndex)
			}
		case Open:
			if strings.TrimSpace(question.CorrectAnswerText) == "" {
				return fmt.Errorf("question %d: open question has no reference answer", i+1)
			}
		default:
			return fmt.Errorf("question %d: unknown type %q", i+1, question.Type)
		}
	}
	return nil
}

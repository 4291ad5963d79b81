// Package content generates the study material: revision sheets, quizzes,
// exam samples, and AI grading of open answers. Every generation method
// issues a single schema-bound LLM call and parses the result into a typed
// struct. All prompts and generated text are in French.
package content

import "github.com/google/uuid"

// Sheet is a complete revision sheet for one topic.
type Sheet struct {
	Title           string     `json:"title"`
	Objectives      []string   `json:"objectives"`
	KeyPoints       []string   `json:"keyPoints"`
	DetailedContent string     `json:"detailedContent"`
	Examples        []string   `json:"examples"`
	GeoGebraCommand string     `json:"geogebraCommand,omitempty"`
	Chart           *ChartSpec `json:"chartContent,omitempty"`
	ExamSample      ExamSample `json:"examSample"`
}

// ExamSample is a worked exam exercise: an instruction, the model answer
// ("copie parfaite"), and method tips. ID distinguishes regenerated samples
// so cached reformulations of an old sample are never shown for a new one.
type ExamSample struct {
	ID          uuid.UUID `json:"-"`
	Instruction string    `json:"instruction"`
	PerfectCopy string    `json:"perfectCopy"`
	Tips        string    `json:"tips"`
}

// ChartSpec describes a chart to render alongside an SVT sheet.
type ChartSpec struct {
	Title      string       `json:"title"`
	XAxisLabel string       `json:"xAxisLabel"`
	YAxisLabel string       `json:"yAxisLabel"`
	Type       string       `json:"type"` // bar or line
	Data       []ChartPoint `json:"data"`
}

// ChartPoint is one labelled value in a chart series.
type ChartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// QuestionType distinguishes multiple-choice from free-answer questions.
type QuestionType string

const (
	MCQ  QuestionType = "MCQ"
	Open QuestionType = "OPEN"
)

// Question is a single quiz question. MCQ questions carry Options and
// CorrectAnswerIndex; OPEN questions carry CorrectAnswerText for the grader.
type Question struct {
	ID                 int          `json:"id"`
	Type               QuestionType `json:"type"`
	Question           string       `json:"question"`
	TextToRead         string       `json:"textToRead,omitempty"`
	Options            []string     `json:"options,omitempty"`
	CorrectAnswerIndex int          `json:"correctAnswerIndex"`
	CorrectAnswerText  string       `json:"correctAnswerText,omitempty"`
	Explanation        string       `json:"explanation"`
}

// Quiz is a generated set of questions for one topic.
type Quiz struct {
	Topic      string     `json:"topic"`
	Difficulty string     `json:"difficulty"`
	Questions  []Question `json:"questions"`
}

// Difficulty selects how demanding the quiz questions are.
type Difficulty string

const (
	DifficultyIntro    Difficulty = "intro"
	DifficultyRevision Difficulty = "revision"
	DifficultyMastery  Difficulty = "mastery"
)

// QuestionCounts are the quiz lengths offered in the setup screen.
var QuestionCounts = []int{5, 10, 20}

// QuizConfig is the student's quiz setup choice.
type QuizConfig struct {
	QuestionCount int
	Difficulty    Difficulty
}

// DefaultQuizConfig returns the setup preselected in the UI.
func DefaultQuizConfig() QuizConfig {
	return QuizConfig{QuestionCount: 10, Difficulty: DifficultyRevision}
}

// VariantKind identifies a rendering of the perfect copy.
type VariantKind string

const (
	// VariantStandard is the copy as generated with the sheet.
	VariantStandard VariantKind = "STANDARD"
	// VariantSimple is a reformulation for struggling students.
	VariantSimple VariantKind = "SIMPLE"
	// VariantExpert is a reformulation at lycée/concours level.
	VariantExpert VariantKind = "EXPERT"
)

// GradingResult is the AI grader's verdict on an open answer. Score is
// always 0 or 1.
type GradingResult struct {
	IsCorrect bool   `json:"isCorrect"`
	Score     int    `json:"score"`
	Feedback  string `json:"feedback"`
}

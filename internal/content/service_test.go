package content

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/jmercier/collegien/internal/curriculum"
	"github.com/jmercier/collegien/internal/llm"
)

func validSheetJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "Théorème de Pythagore",
		"objectives": ["Calculer la longueur de l'hypoténuse"],
		"keyPoints": ["Dans un triangle rectangle, BC² = AB² + AC²"],
		"detailedContent": "Le théorème de Pythagore s'applique uniquement aux triangles rectangles...",
		"examples": ["AB = 3, AC = 4, donc BC = 5"],
		"geogebraCommand": "A=(0,0); B=(3,0); C=(0,4); Polygon(A,B,C)",
		"examSample": {
			"instruction": "Calculer la longueur BC.",
			"perfectCopy": "D'après le théorème de Pythagore, BC² = AB² + AC²...",
			"tips": "Toujours citer le théorème avant de l'appliquer."
		}
	}`)
}

func validQuizJSON() json.RawMessage {
	return json.RawMessage(`{
		"topic": "Théorème de Pythagore (Calculs)",
		"difficulty": "revision",
		"questions": [
			{
				"id": 1,
				"type": "MCQ",
				"question": "Dans quel triangle s'applique le théorème de Pythagore ?",
				"options": ["Équilatéral", "Rectangle", "Isocèle", "Quelconque"],
				"correctAnswerIndex": 1,
				"explanation": "Le théorème ne vaut que dans un triangle rectangle."
			},
			{
				"id": 2,
				"type": "OPEN",
				"question": "Énonce le théorème de Pythagore.",
				"correctAnswerText": "Dans un triangle rectangle, le carré de l'hypoténuse est égal à la somme des carrés des deux autres côtés.",
				"explanation": "C'est la formulation attendue au Brevet."
			}
		]
	}`)
}

func TestGenerateSheet(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validSheetJSON()})
	svc := NewService(mock, DefaultConfig())

	sheet, err := svc.GenerateSheet(t.Context(), curriculum.Quatrieme, "Mathématiques", "Théorème de Pythagore (Calculs)")
	if err != nil {
		t.Fatalf("generate sheet: %v", err)
	}
	if sheet.Title == "" || len(sheet.KeyPoints) == 0 {
		t.Errorf("sheet missing core fields: %+v", sheet)
	}
	if sheet.GeoGebraCommand == "" {
		t.Error("math sheet should carry a GeoGebra command")
	}
	if sheet.ExamSample.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("exam sample should be assigned an identity")
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("got %d calls, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema != SheetSchema {
		t.Error("sheet request should be schema-bound")
	}
	if req.Temperature != 0.3 {
		t.Errorf("sheet temperature = %v, want 0.3", req.Temperature)
	}
	if !strings.Contains(req.Messages[0].Content, "GeoGebra") {
		t.Error("math prompt should request a GeoGebra command")
	}
}

func TestGenerateSheetSVTPromptAsksForChart(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validSheetJSON()})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.GenerateSheet(t.Context(), curriculum.Cinquieme, "SVT", "La circulation sanguine")
	if err != nil {
		t.Fatalf("generate sheet: %v", err)
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "chartContent") {
		t.Error("SVT prompt should mention chartContent")
	}
	if strings.Contains(prompt, "GeoGebra") {
		t.Error("SVT prompt should not request GeoGebra commands")
	}
}

func TestGenerateSheetProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.GenerateSheet(t.Context(), curriculum.Sixieme, "Français", "Conjugaison : Passé composé")
	if err == nil {
		t.Fatal("expected error")
	}
	if !llm.IsGenerationFailure(err) {
		t.Errorf("error should classify as generation failure: %v", err)
	}
}

func TestGenerateSheetMalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"title": `)})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.GenerateSheet(t.Context(), curriculum.Sixieme, "SVT", "La cellule : unité du vivant")
	var inv *llm.ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("want ErrInvalidResponse, got %v", err)
	}
}

func TestNewExamSampleGetsFreshIdentity(t *testing.T) {
	sampleJSON := json.RawMessage(`{
		"instruction": "Rédigez une introduction.",
		"perfectCopy": "De tout temps...",
		"tips": "Annoncez le plan."
	}`)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: sampleJSON},
		llm.MockResponse{Content: sampleJSON},
	)
	svc := NewService(mock, DefaultConfig())

	a, err := svc.NewExamSample(t.Context(), curriculum.Troisieme, "Français", "Se raconter, se représenter (Autobiographie)")
	if err != nil {
		t.Fatalf("first sample: %v", err)
	}
	b, err := svc.NewExamSample(t.Context(), curriculum.Troisieme, "Français", "Se raconter, se représenter (Autobiographie)")
	if err != nil {
		t.Fatalf("second sample: %v", err)
	}
	if a.ID == b.ID {
		t.Error("regenerated samples must not share an identity")
	}
	if mock.Calls[0].Temperature != 0.7 {
		t.Errorf("exam sample temperature = %v, want 0.7", mock.Calls[0].Temperature)
	}
}

func TestGenerateQuiz(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON()})
	svc := NewService(mock, DefaultConfig())

	quiz, err := svc.GenerateQuiz(t.Context(), curriculum.Quatrieme, "Mathématiques",
		"Théorème de Pythagore (Calculs)", QuizConfig{QuestionCount: 10, Difficulty: DifficultyMastery})
	if err != nil {
		t.Fatalf("generate quiz: %v", err)
	}
	if len(quiz.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(quiz.Questions))
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "10 questions") {
		t.Error("prompt should carry the question count")
	}
	if !strings.Contains(prompt, "Maîtrise complète") {
		t.Error("prompt should carry the difficulty wording")
	}
}

func TestGenerateBrevetQuizUsesColderTemperatureThanQuiz(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validQuizJSON()},
		llm.MockResponse{Content: validQuizJSON()},
	)
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.GenerateBrevetQuiz(t.Context()); err != nil {
		t.Fatalf("brevet: %v", err)
	}
	if _, err := svc.GenerateAnnalesQuiz(t.Context(), "Sujet Métropole 2024 (Juin)"); err != nil {
		t.Fatalf("annales: %v", err)
	}

	if mock.Calls[0].Temperature != 0.4 {
		t.Errorf("brevet temperature = %v, want 0.4", mock.Calls[0].Temperature)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "20 questions") {
		t.Error("brevet prompt should request 20 questions")
	}
	if mock.Calls[1].Temperature != 0.2 {
		t.Errorf("annales temperature = %v, want 0.2", mock.Calls[1].Temperature)
	}
	if !strings.Contains(mock.Calls[1].Messages[0].Content, "Sujet Métropole 2024 (Juin)") {
		t.Error("annales prompt should name the session")
	}
}

func TestQuizValidation(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"no questions", `{"topic":"x","difficulty":"intro","questions":[]}`},
		{"mcq with 3 options", `{"topic":"x","difficulty":"intro","questions":[
			{"id":1,"type":"MCQ","question":"?","options":["a","b","c"],"correctAnswerIndex":0,"explanation":"e"}]}`},
		{"mcq index out of range", `{"topic":"x","difficulty":"intro","questions":[
			{"id":1,"type":"MCQ","question":"?","options":["a","b","c","d"],"correctAnswerIndex":4,"explanation":"e"}]}`},
		{"open without reference answer", `{"topic":"x","difficulty":"intro","questions":[
			{"id":1,"type":"OPEN","question":"?","explanation":"e"}]}`},
		{"unknown type", `{"topic":"x","difficulty":"intro","questions":[
			{"id":1,"type":"DICTEE","question":"?","explanation":"e"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tt.json)})
			svc := NewService(mock, DefaultConfig())

			_, err := svc.GenerateQuiz(t.Context(), curriculum.Sixieme, "SVT",
				"La cellule : unité du vivant", DefaultQuizConfig())
			var inv *llm.ErrInvalidResponse
			if !errors.As(err, &inv) {
				t.Fatalf("want ErrInvalidResponse, got %v", err)
			}
		})
	}
}

func TestGradeAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"isCorrect": true, "score": 1, "feedback": "Bravo, ta définition est complète !"}`),
	})
	svc := NewService(mock, DefaultConfig())

	result, err := svc.GradeAnswer(t.Context(), "Énonce le théorème de Pythagore.",
		"Le carré de l'hypoténuse égale la somme des carrés des autres côtés",
		"Dans un triangle rectangle, le carré de l'hypoténuse est égal à la somme des carrés des deux autres côtés.",
		curriculum.Quatrieme)
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if !result.IsCorrect || result.Score != 1 {
		t.Errorf("result = %+v, want correct with 1 point", result)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "4ème") {
		t.Error("grading prompt should carry the student level")
	}
}

func TestGradeAnswerClampsScore(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"isCorrect": false, "score": 5, "feedback": "Relis ton cours."}`),
	})
	svc := NewService(mock, DefaultConfig())

	result, err := svc.GradeAnswer(t.Context(), "q", "a", "ref", curriculum.Sixieme)
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if result.Score != 0 {
		t.Errorf("score = %d, want 0 for incorrect verdict", result.Score)
	}
}

func TestReformulateStandardIsPassthrough(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig())

	text, err := svc.Reformulate(t.Context(), "La copie originale.", VariantStandard)
	if err != nil {
		t.Fatalf("reformulate: %v", err)
	}
	if text != "La copie originale." {
		t.Errorf("standard variant should be the copy itself, got %q", text)
	}
	if mock.CallCount() != 0 {
		t.Error("standard variant must not hit the provider")
	}
}

func TestReformulateVariants(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Version simplifiée de la copie."),
	})
	svc := NewService(mock, DefaultConfig())

	text, err := svc.Reformulate(t.Context(), "La copie originale.", VariantSimple)
	if err != nil {
		t.Fatalf("reformulate: %v", err)
	}
	if text != "Version simplifiée de la copie." {
		t.Errorf("unexpected variant text: %q", text)
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "élève en difficulté") {
		t.Error("simple variant prompt should target struggling students")
	}
}

func TestQuickAnswerCarriesScopeGuard(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Le passé composé se forme avec un auxiliaire et un participe passé."),
	})
	svc := NewService(mock, DefaultConfig())

	answer, err := svc.QuickAnswer(t.Context(), "Comment se forme le passé composé ?")
	if err != nil {
		t.Fatalf("quick answer: %v", err)
	}
	if answer == "" {
		t.Error("expected an answer")
	}
	if !strings.Contains(mock.Calls[0].System, "RÈGLES DE SÉCURITÉ") {
		t.Error("quick answers must carry the scope guard system prompt")
	}
}

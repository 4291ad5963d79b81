package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceIsGlobalAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini",
		Model:    "gemini-2.5-flash",
		Purpose:  "sheet",
		Success:  true,
	})
	if err != nil {
		t.Fatalf("append llm request: %v", err)
	}

	err = repo.AppendStudySession(ctx, StudySessionEventData{
		SessionID: "s-1",
		Action:    "start",
		Level:     "4eme",
		Subject:   "Mathématiques",
		Topic:     "Théorème de Pythagore",
		Source:    "topic-quiz",
	})
	if err != nil {
		t.Fatalf("append study session: %v", err)
	}

	llmEvents, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query llm events: %v", err)
	}
	sessions, err := repo.ListStudySessions(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list study sessions: %v", err)
	}

	if len(llmEvents) != 1 || len(sessions) != 1 {
		t.Fatalf("got %d llm events, %d sessions, want 1 each", len(llmEvents), len(sessions))
	}
	if llmEvents[0].Sequence >= sessions[0].Sequence {
		t.Errorf("llm sequence %d should precede session sequence %d",
			llmEvents[0].Sequence, sessions[0].Sequence)
	}
}

func TestQueryLLMEventsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	purposes := []string{"sheet", "quiz", "grading"}
	for _, p := range purposes {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "gemini",
			Model:    "gemini-2.5-flash",
			Purpose:  p,
			Success:  true,
		})
		if err != nil {
			t.Fatalf("append %s: %v", p, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Purpose != "grading" {
		t.Errorf("newest event purpose = %q, want %q", events[0].Purpose, "grading")
	}
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("expected descending sequence order: %d then %d",
			events[0].Sequence, events[1].Sequence)
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "gemini",
		Model:        "gemini-2.5-flash",
		Purpose:      "sheet",
		Success:      true,
		RequestBody:  "[system]\nTu es un professeur.",
		ResponseBody: `{"title":"Les fractions"}`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	got, err := repo.GetLLMEvent(ctx, events[0].Sequence)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected event, got nil")
	}
	if got.RequestBody == "" || got.ResponseBody == "" {
		t.Error("expected request and response bodies to round-trip")
	}

	missing, err := repo.GetLLMEvent(ctx, 999999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown sequence")
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "sheet", Success: true, InputTokens: 100, OutputTokens: 500},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "sheet", Success: false, ErrorMessage: "rate limited"},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "quiz", Success: true, InputTokens: 80, OutputTokens: 300},
	}
	for i, d := range appends {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d stat rows, want 2", len(stats))
	}

	byPurpose := map[string]LLMUsageStat{}
	for _, s := range stats {
		byPurpose[s.Purpose] = s
	}

	sheet := byPurpose["sheet"]
	if sheet.Requests != 2 || sheet.Failures != 1 {
		t.Errorf("sheet: requests=%d failures=%d, want 2/1", sheet.Requests, sheet.Failures)
	}
	if sheet.InputTokens != 100 || sheet.OutputTokens != 500 {
		t.Errorf("sheet tokens = %d/%d, want 100/500", sheet.InputTokens, sheet.OutputTokens)
	}
}

func TestStudySessionLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendStudySession(ctx, StudySessionEventData{
		SessionID: "s-42",
		Action:    "start",
		Level:     "3eme",
		Subject:   "Brevet Blanc",
		Source:    "brevet-blanc",
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	err = repo.AppendStudySession(ctx, StudySessionEventData{
		SessionID:     "s-42",
		Action:        "finish",
		Level:         "3eme",
		Subject:       "Brevet Blanc",
		Source:        "brevet-blanc",
		QuestionCount: 20,
		Score:         14,
		MaxScore:      20,
		DurationSecs:  900,
	})
	if err != nil {
		t.Fatalf("finish: %v", err)
	}

	sessions, err := repo.ListStudySessions(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("got %d session events, want 2", len(sessions))
	}
	if sessions[0].Action != "finish" {
		t.Errorf("newest action = %q, want finish", sessions[0].Action)
	}
	if sessions[0].Score != 14 || sessions[0].MaxScore != 20 {
		t.Errorf("score = %d/%d, want 14/20", sessions[0].Score, sessions[0].MaxScore)
	}
}

func TestAnswersForSessionInQuizOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "s-7", QuestionID: 1, QuestionType: "MCQ", QuestionText: "Combien font 2+2 ?", LearnerAnswer: "4", Correct: true, Points: 1, GradedBy: "exact"},
		{SessionID: "s-7", QuestionID: 2, QuestionType: "OPEN", QuestionText: "Explique la photosynthèse.", LearnerAnswer: "Les plantes...", Correct: false, Points: 0, GradedBy: "ai", Feedback: "Réponse incomplète."},
		{SessionID: "autre", QuestionID: 1, QuestionType: "MCQ", QuestionText: "Autre session", GradedBy: "exact"},
	}
	for i, a := range answers {
		if err := repo.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.AnswersForSession(ctx, "s-7")
	if err != nil {
		t.Fatalf("answers: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d answers, want 2", len(got))
	}
	if got[0].QuestionID != 1 || got[1].QuestionID != 2 {
		t.Errorf("answers out of order: %d then %d", got[0].QuestionID, got[1].QuestionID)
	}
	if got[1].GradedBy != "ai" || got[1].Feedback == "" {
		t.Errorf("expected AI-graded answer with feedback, got %+v", got[1])
	}
}

package curriculum

import "testing"

func TestLevelsInSchoolOrder(t *testing.T) {
	levels := Levels()
	want := []Level{Sixieme, Cinquieme, Quatrieme, Troisieme}
	if len(levels) != len(want) {
		t.Fatalf("got %d levels, want %d", len(levels), len(want))
	}
	for i, l := range want {
		if levels[i] != l {
			t.Errorf("levels[%d] = %q, want %q", i, levels[i], l)
		}
	}
}

func TestEveryLevelHasSubjects(t *testing.T) {
	for _, level := range Levels() {
		subjects := SubjectsForLevel(level)
		if len(subjects) == 0 {
			t.Errorf("level %s has no subjects", level)
		}
		for _, s := range subjects {
			if len(s.Topics) == 0 {
				t.Errorf("%s / %s has no topics", level, s.Name)
			}
		}
	}
}

func TestUnknownLevelReturnsNil(t *testing.T) {
	if got := SubjectsForLevel("Terminale"); got != nil {
		t.Errorf("expected nil for unknown level, got %d subjects", len(got))
	}
}

func TestExamSubjectsOnlyInTroisieme(t *testing.T) {
	for _, level := range Levels() {
		_, hasBrevet := FindSubject(level, SubjectBrevetBlanc)
		_, hasAnnales := FindSubject(level, SubjectAnnalesBrevet)
		wantExam := level == Troisieme
		if hasBrevet != wantExam || hasAnnales != wantExam {
			t.Errorf("%s: brevet=%v annales=%v, want both %v", level, hasBrevet, hasAnnales, wantExam)
		}
	}
}

func TestMockExamAndPastPaperClassification(t *testing.T) {
	tests := []struct {
		subject    string
		mock       bool
		pastPaper  bool
		wantSource string
	}{
		{SubjectBrevetBlanc, true, false, SourceBrevetBlanc},
		{SubjectAnnalesBrevet, false, true, SourceAnnales},
		{"Mathématiques", false, false, SourceTopicQuiz},
	}
	for _, tt := range tests {
		if IsMockExam(tt.subject) != tt.mock {
			t.Errorf("IsMockExam(%q) = %v, want %v", tt.subject, !tt.mock, tt.mock)
		}
		if IsPastPaper(tt.subject) != tt.pastPaper {
			t.Errorf("IsPastPaper(%q) = %v, want %v", tt.subject, !tt.pastPaper, tt.pastPaper)
		}
		if got := SessionSource(tt.subject); got != tt.wantSource {
			t.Errorf("SessionSource(%q) = %q, want %q", tt.subject, got, tt.wantSource)
		}
	}
}

func TestEverySubjectHasIcon(t *testing.T) {
	for _, level := range Levels() {
		for _, s := range SubjectsForLevel(level) {
			if Icon(s.Name) == "" {
				t.Errorf("%s / %s has no icon", level, s.Name)
			}
		}
	}
}

func TestFrancaisOffersCustomTopic(t *testing.T) {
	for _, level := range Levels() {
		s, ok := FindSubject(level, "Français")
		if !ok {
			t.Fatalf("%s has no Français", level)
		}
		found := false
		for _, topic := range s.Topics {
			if NeedsCustomInput(topic) {
				found = true
			}
		}
		if !found {
			t.Errorf("%s / Français is missing the custom topic entry", level)
		}
	}
}

func TestTopicChoice(t *testing.T) {
	catalog := CatalogTopic("Théorème de Pythagore (Calculs)")
	if catalog.IsCustom() || catalog.IsZero() {
		t.Errorf("catalog topic misclassified: custom=%v zero=%v", catalog.IsCustom(), catalog.IsZero())
	}

	custom := CustomTopic("  Le Petit Prince  ")
	if !custom.IsCustom() {
		t.Error("expected custom topic")
	}
	if custom.Value() != "Le Petit Prince" {
		t.Errorf("custom value = %q, want trimmed title", custom.Value())
	}

	empty := CustomTopic("   ")
	if !empty.IsZero() {
		t.Error("whitespace-only input should yield the zero choice")
	}
}

package selection

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jmercier/collegien/internal/curriculum"
	"github.com/jmercier/collegien/internal/revision"
	"github.com/jmercier/collegien/internal/router"
	"github.com/jmercier/collegien/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testSelection() (*Screen, *revision.State) {
	st := revision.NewState(nil)
	st.BeginSelection()
	return New(nil, nil, nil, st, nil), st
}

func TestSelection_StartsAtLevelStep(t *testing.T) {
	s, _ := testSelection()
	if s.step != stepLevel {
		t.Errorf("step = %v, want stepLevel", s.step)
	}
	if got := len(s.menu.Items); got != len(curriculum.Levels()) {
		t.Errorf("level menu has %d items, want %d", got, len(curriculum.Levels()))
	}
}

func TestSelection_LevelLeadsToSubjects(t *testing.T) {
	s, st := testSelection()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // 6ème
	ss := scr.(*Screen)

	if ss.step != stepSubject {
		t.Fatalf("step = %v, want stepSubject", ss.step)
	}
	if st.Selection.Level != curriculum.Sixieme {
		t.Errorf("selected level = %q, want 6ème", st.Selection.Level)
	}
	want := len(curriculum.SubjectsForLevel(curriculum.Sixieme))
	if got := len(ss.menu.Items); got != want {
		t.Errorf("subject menu has %d items, want %d", got, want)
	}
}

func TestSelection_EscStepsBack(t *testing.T) {
	s, _ := testSelection()

	if s.InterceptEsc() {
		t.Error("InterceptEsc should be false at the level step")
	}

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*Screen)
	if !ss.InterceptEsc() {
		t.Error("InterceptEsc should be true past the level step")
	}

	scr, _ = ss.Update(specialKey(tea.KeyEscape))
	ss = scr.(*Screen)
	if ss.step != stepLevel {
		t.Errorf("step after Esc = %v, want stepLevel", ss.step)
	}
}

func TestSelection_MockExamSkipsTopics(t *testing.T) {
	s, st := testSelection()

	// 3ème holds the Brevet Blanc.
	var scr screen.Screen = s
	for range 3 {
		scr, _ = scr.Update(keyPress('j'))
	}
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*Screen)

	// Move the cursor to the Brevet Blanc entry.
	idx := -1
	for i, item := range ss.menu.Items {
		if item.Label == curriculum.Icon(curriculum.SubjectBrevetBlanc)+"  "+curriculum.SubjectBrevetBlanc {
			idx = i
			break
		}
	}
	if idx < 0 {
		t.Fatal("Brevet Blanc not in 3ème subject menu")
	}
	for range idx {
		scr, _ = scr.Update(keyPress('j'))
	}
	var cmd tea.Cmd
	scr, cmd = scr.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command launching the quiz")
	}

	if st.Phase != revision.PhaseLoadingQuiz {
		t.Errorf("phase = %v, want loading-quiz", st.Phase)
	}
	if st.QuizConfig.QuestionCount != 20 {
		t.Errorf("question count = %d, want 20", st.QuizConfig.QuestionCount)
	}

	msg := cmd()
	if _, ok := msg.(router.PushScreenMsg); !ok {
		t.Errorf("expected PushScreenMsg to the loading screen, got %T", msg)
	}
	_ = scr
}

func TestSelection_CustomTopicOpensInput(t *testing.T) {
	s, _ := testSelection()
	s.level = curriculum.Troisieme
	subject, ok := curriculum.FindSubject(curriculum.Troisieme, "Français")
	if !ok {
		t.Fatal("Français not found for 3ème")
	}
	s.subject = subject
	s.step = stepTopic
	s.menu = s.topicMenu()

	// The custom topic trigger closes every Français topic list.
	idx := -1
	for i, item := range s.menu.Items {
		if item.Label == curriculum.CustomTopicTrigger {
			idx = i
			break
		}
	}
	if idx < 0 {
		t.Fatal("custom topic trigger not in Français topic menu")
	}

	var scr screen.Screen = s
	for range idx {
		scr, _ = scr.Update(keyPress('j'))
	}
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*Screen)

	if ss.step != stepCustom {
		t.Fatalf("step = %v, want stepCustom", ss.step)
	}

	// Empty input is rejected.
	scr, cmd := ss.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no command for an empty custom topic")
	}

	for _, r := range "Le Petit Prince" {
		scr, _ = scr.Update(keyPress(r))
	}
	_, cmd = scr.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command launching the sheet")
	}
}

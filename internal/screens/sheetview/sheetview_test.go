package sheetview

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/jmercier/collegien/internal/content"
	"github.com/jmercier/collegien/internal/curriculum"
	"github.com/jmercier/collegien/internal/revision"
)

func testState(t *testing.T) *revision.State {
	t.Helper()
	variants := content.NewVariantCache(func(ctx context.Context, copy string, kind content.VariantKind) (string, error) {
		return "version reformulée", nil
	})
	st := revision.NewState(variants)
	epoch := st.BeginSheetLoad(revision.Selection{
		Level:   curriculum.Quatrieme,
		Subject: "Mathématiques",
		Topic:   curriculum.CatalogTopic("Théorème de Pythagore"),
	})
	ok := st.ApplySheet(epoch, &content.Sheet{
		Title: "Le théorème de Pythagore",
		ExamSample: content.ExamSample{
			ID:          uuid.New(),
			Instruction: "Calcule l'hypoténuse.",
			PerfectCopy: "On applique le théorème…",
		},
	}, nil)
	if !ok {
		t.Fatal("sheet apply rejected")
	}
	return st
}

func TestStaleVariantDiscardedAfterNewSample(t *testing.T) {
	st := testState(t)
	s := New(nil, nil, nil, st, nil)
	oldID := st.Sheet.ExamSample.ID

	// A reformulation of the old sample is still in flight when the
	// student regenerates the exercise.
	epoch := st.BeginOperation()
	s.Update(sampleMsg{epoch: epoch, sample: &content.ExamSample{
		ID:          uuid.New(),
		Instruction: "Nouvel exercice.",
		PerfectCopy: "Nouvelle copie.",
	}})

	s.Update(variantMsg{sampleID: oldID, kind: content.VariantSimple, text: "version simplifiée"})

	if st.ActiveVariant != content.VariantStandard {
		t.Errorf("expected standard copy after sample replacement, got %q", st.ActiveVariant)
	}
	if st.Sheet.ExamSample.Instruction != "Nouvel exercice." {
		t.Errorf("expected the new sample, got %q", st.Sheet.ExamSample.Instruction)
	}
}

func TestVariantForCurrentSampleApplies(t *testing.T) {
	st := testState(t)
	s := New(nil, nil, nil, st, nil)

	s.Update(variantMsg{
		sampleID: st.Sheet.ExamSample.ID,
		kind:     content.VariantSimple,
		text:     "version simplifiée",
	})

	if st.ActiveVariant != content.VariantSimple {
		t.Errorf("expected the simplified copy to become active, got %q", st.ActiveVariant)
	}
}

func TestChartWithMixedSignValues(t *testing.T) {
	chart := &content.ChartSpec{
		Title:      "Températures moyennes",
		XAxisLabel: "Mois",
		YAxisLabel: "°C",
		Type:       "bar",
		Data: []content.ChartPoint{
			{Name: "Janvier", Value: -2},
			{Name: "Juillet", Value: 20},
		},
	}

	out := renderChart(chart, 60)

	if !strings.Contains(out, "Janvier") || !strings.Contains(out, "Juillet") {
		t.Error("expected both labels in the chart")
	}
	if !strings.Contains(out, "-2") {
		t.Error("expected the negative value label to keep its sign")
	}
	if !strings.Contains(out, "█") {
		t.Error("expected at least one bar segment")
	}
}

func TestChartAllNegativeValues(t *testing.T) {
	chart := &content.ChartSpec{
		Title: "Variations",
		Type:  "bar",
		Data: []content.ChartPoint{
			{Name: "A", Value: -5},
			{Name: "B", Value: -1},
		},
	}

	out := renderChart(chart, 60)

	if !strings.Contains(out, "█") {
		t.Error("expected bars scaled to the largest magnitude")
	}
}

func TestChartAllZeroValues(t *testing.T) {
	chart := &content.ChartSpec{
		Title: "Rien",
		Type:  "bar",
		Data:  []content.ChartPoint{{Name: "A", Value: 0}},
	}

	out := renderChart(chart, 60)

	if !strings.Contains(out, "A") {
		t.Error("expected the label even with no bar")
	}
}

package sheetview

import (
	"fmt"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/jmercier/collegien/internal/content"
	"github.com/jmercier/collegien/internal/ui/theme"
)

const maxBarWidth = 40

func (s *Screen) View(width, height int) string {
	s.viewHeight = height
	sheet := s.st.Sheet
	if sheet == nil {
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Aucune fiche chargée.")
	}

	inner := width - 6
	if inner > 90 {
		inner = 90
	}
	if inner < 20 {
		inner = 20
	}

	body := s.renderBody(sheet, inner)

	lines := strings.Split(body, "\n")
	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}
	end := s.scroll + height
	if end > len(lines) {
		end = len(lines)
	}
	window := strings.Join(lines[s.scroll:end], "\n")

	return lipgloss.NewStyle().PaddingLeft(3).Render(window)
}

func (s *Screen) renderBody(sheet *content.Sheet, inner int) string {
	heading := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	sub := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	text := lipgloss.NewStyle().Foreground(theme.Text).Width(inner)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Width(inner)

	var b strings.Builder

	b.WriteString(heading.Render("📖 " + sheet.Title))
	b.WriteString("\n\n")

	if s.notice != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("✗ " + s.notice))
		b.WriteString("\n\n")
	}
	if s.busy != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render("⏳ Génération en cours…"))
		b.WriteString("\n\n")
	}

	if len(sheet.Objectives) > 0 {
		b.WriteString(sub.Render("🎯 Objectifs"))
		b.WriteString("\n")
		for _, o := range sheet.Objectives {
			b.WriteString(text.Render("  • " + o))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(sheet.KeyPoints) > 0 {
		b.WriteString(sub.Render("🔑 Points clés"))
		b.WriteString("\n")
		for _, p := range sheet.KeyPoints {
			b.WriteString(text.Render("  • " + p))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if sheet.DetailedContent != "" {
		b.WriteString(sub.Render("📚 Cours"))
		b.WriteString("\n")
		b.WriteString(text.Render(sheet.DetailedContent))
		b.WriteString("\n\n")
	}

	if len(sheet.Examples) > 0 {
		b.WriteString(sub.Render("✏️ Exemples"))
		b.WriteString("\n")
		for i, e := range sheet.Examples {
			b.WriteString(text.Render(fmt.Sprintf("  %d. %s", i+1, e)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if sheet.GeoGebraCommand != "" {
		b.WriteString(sub.Render("📐 À tracer dans GeoGebra"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Background(theme.BgCard).
			Padding(0, 1).
			Render(sheet.GeoGebraCommand))
		b.WriteString("\n\n")
	}

	if sheet.Chart != nil {
		b.WriteString(renderChart(sheet.Chart, inner))
		b.WriteString("\n")
	}

	b.WriteString(s.renderExamSample(sheet, inner, sub, text, dim))

	return b.String()
}

func (s *Screen) renderExamSample(sheet *content.Sheet, inner int, sub, text, dim lipgloss.Style) string {
	var b strings.Builder

	b.WriteString(sub.Render("📝 Exercice type Brevet"))
	b.WriteString("\n")
	b.WriteString(text.Render(sheet.ExamSample.Instruction))
	b.WriteString("\n\n")

	b.WriteString(renderVariantTabs(s.st.ActiveVariant))
	b.WriteString("\n")

	copyText := sheet.ExamSample.PerfectCopy
	if s.st.ActiveVariant != content.VariantStandard {
		if v, ok := s.st.Variants.Peek(sheet.ExamSample, s.st.ActiveVariant); ok {
			copyText = v
		}
	}
	b.WriteString(lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Width(inner).
		Foreground(theme.Text).
		Render(copyText))
	b.WriteString("\n")

	if s.showExplain && s.explanation != "" {
		b.WriteString("\n")
		b.WriteString(sub.Render("💡 Explication pas à pas"))
		b.WriteString("\n")
		b.WriteString(text.Render(s.explanation))
		b.WriteString("\n")
	}

	if sheet.ExamSample.Tips != "" {
		b.WriteString("\n")
		b.WriteString(dim.Render("Astuce : " + sheet.ExamSample.Tips))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.start.View())
	b.WriteString("\n")

	return b.String()
}

var variantLabels = []struct {
	kind  content.VariantKind
	label string
}{
	{content.VariantStandard, "1 Standard"},
	{content.VariantSimple, "2 Simplifiée"},
	{content.VariantExpert, "3 Expert"},
}

func renderVariantTabs(active content.VariantKind) string {
	parts := make([]string, 0, len(variantLabels))
	for _, v := range variantLabels {
		style := lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 1)
		if v.kind == active {
			style = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Padding(0, 1)
		}
		parts = append(parts, style.Render(v.label))
	}
	return strings.Join(parts, " ")
}

// renderChart draws the data as horizontal bars scaled to the largest
// magnitude, so series mixing signs (winter temperatures) stay in range.
// The value label carries the sign. Line charts get the same rendering:
// at terminal resolution the bar form reads better.
func renderChart(chart *content.ChartSpec, inner int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("📊 " + chart.Title))
	b.WriteString("\n")

	var maxAbs float64
	nameWidth := 0
	for _, p := range chart.Data {
		if a := math.Abs(p.Value); a > maxAbs {
			maxAbs = a
		}
		if len([]rune(p.Name)) > nameWidth {
			nameWidth = len([]rune(p.Name))
		}
	}

	barWidth := inner - nameWidth - 12
	if barWidth > maxBarWidth {
		barWidth = maxBarWidth
	}
	if barWidth < 5 {
		barWidth = 5
	}

	barStyle := lipgloss.NewStyle().Foreground(theme.Primary)
	for _, p := range chart.Data {
		n := 0
		if maxAbs > 0 {
			n = int(math.Abs(p.Value) / maxAbs * float64(barWidth))
		}
		if n == 0 && p.Value != 0 {
			n = 1
		}
		if n > barWidth {
			n = barWidth
		}
		name := fmt.Sprintf("%-*s", nameWidth, p.Name)
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			lipgloss.NewStyle().Foreground(theme.Text).Render(name),
			barStyle.Render(strings.Repeat("█", n)),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(trimFloat(p.Value)),
		))
	}

	if chart.XAxisLabel != "" || chart.YAxisLabel != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %s / %s", chart.XAxisLabel, chart.YAxisLabel)))
		b.WriteString("\n")
	}

	return b.String()
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

package quizrun

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/jmercier/collegien/internal/content"
	"github.com/jmercier/collegien/internal/ui/components"
	"github.com/jmercier/collegien/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	if s.confirmQuit {
		return centered(width, height,
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Abandonner le quiz ?")+
				"\n\n"+
				lipgloss.NewStyle().Foreground(theme.TextDim).Render("Ton score actuel sera enregistré.  O / N"))
	}

	q, err := s.session.Current()
	if err != nil {
		return ""
	}

	total := len(s.session.Quiz.Questions)
	index := s.session.Index()

	var sections []string

	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d/%d", index+1, total),
		float64(index)/float64(total),
		false,
		40,
	)
	score := lipgloss.NewStyle().Foreground(theme.Secondary).
		Render(fmt.Sprintf("Score : %d", s.session.Score()))
	sections = append(sections, progress.View()+"   "+score, "")

	if s.guard != nil && q.TextToRead != "" {
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.Accent).Render("🔊 Écoute bien, puis écris ce que tu entends."),
			"")
	}

	switch {
	case s.gradingWait:
		sections = append(sections,
			questionStyle(width).Render(q.Question),
			"",
			lipgloss.NewStyle().Foreground(theme.Secondary).Render("⏳ Le professeur corrige ta réponse…"))

	case s.showFeedback:
		sections = append(sections, s.renderFeedback(q, width)...)

	case q.Type == content.MCQ:
		sections = append(sections, s.mc.View())

	default:
		sections = append(sections,
			questionStyle(width).Render(q.Question),
			"",
			s.input.View())
	}

	return centered(width, height, strings.Join(sections, "\n"))
}

func (s *Screen) renderFeedback(q content.Question, width int) []string {
	attempt, ok := s.session.LastAttempt()
	if !ok {
		return nil
	}

	var verdict string
	if attempt.Correct {
		verdict = lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("✓ Bonne réponse !")
	} else {
		verdict = lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("✗ Pas tout à fait…")
	}

	out := []string{questionStyle(width).Render(q.Question), "", verdict}

	if attempt.Type == content.MCQ && !attempt.Correct &&
		q.CorrectAnswerIndex >= 0 && q.CorrectAnswerIndex < len(q.Options) {
		out = append(out,
			lipgloss.NewStyle().Foreground(theme.Text).
				Render("La bonne réponse était : "+q.Options[q.CorrectAnswerIndex]))
	}

	if attempt.Type == content.Open && q.CorrectAnswerText != "" {
		out = append(out,
			lipgloss.NewStyle().Foreground(theme.Text).
				Render("Réponse attendue : "+q.CorrectAnswerText))
	}

	if attempt.Feedback != "" {
		card := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1).
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(attempt.Feedback)
		out = append(out, "", card)
	}

	if q.Explanation != "" {
		out = append(out, "",
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Width(min(width-8, 70)).
				Render("💡 "+q.Explanation))
	}

	return out
}

func questionStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(min(width-8, 70))
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

package quiz

// ScoreMessage returns the encouragement shown on the result screen for a
// score out of max.
func ScoreMessage(score, max int) string {
	if max <= 0 {
		max = 1
	}
	percentage := float64(score) / float64(max) * 100
	switch {
	case percentage == 100:
		return "Parfait ! Tu es un expert ! 🏆"
	case percentage >= 80:
		return "Excellent travail ! 🌟"
	case percentage >= 60:
		return "Bien joué ! Encore un petit effort. 👍"
	default:
		return "Continue de réviser, tu vas y arriver ! 💪"
	}
}

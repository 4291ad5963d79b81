package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette — cahier d'écolier: ink blue on a dark slate board, warm
// chalk accents. Calm enough for an hour of révisions.
var (
	Primary   = lipgloss.Color("#318CE7") // Bleu France
	Secondary = lipgloss.Color("#22D3EE") // Cyan craie
	Accent    = lipgloss.Color("#FBBF24") // Ambre
	Success   = lipgloss.Color("#4ADE80") // Vert tableau
	Error     = lipgloss.Color("#EF4444") // Encre rouge
	Text      = lipgloss.Color("#F1F5F9") // Craie
	TextDim   = lipgloss.Color("#8B9BB0") // Craie estompée
	BgDark    = lipgloss.Color("#0B1220") // Ardoise
	BgCard    = lipgloss.Color("#16202E") // Ardoise claire
	Border    = lipgloss.Color("#2C3A4E") // Trait de règle
)

// Buttons
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

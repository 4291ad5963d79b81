package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jmercier/collegien/internal/content"
	"github.com/jmercier/collegien/internal/quiz"
	"github.com/jmercier/collegien/internal/revision"
	"github.com/jmercier/collegien/internal/router"
	"github.com/jmercier/collegien/internal/screen"
	"github.com/jmercier/collegien/internal/screens/home"
	"github.com/jmercier/collegien/internal/speech"
	"github.com/jmercier/collegien/internal/store"
	"github.com/jmercier/collegien/internal/ui/layout"
)

// Options carries the wired services the screens depend on. Content and
// Grading are nil when no LLM provider is configured; Speech is nil when
// no TTS key is set.
type Options struct {
	EventRepo store.EventRepo
	Content   *content.Service
	Grading   *quiz.Coordinator
	Speech    *speech.Guard
	State     *revision.State
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	state  *revision.State
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Content, opts.Grading, opts.Speech, opts.State, opts.EventRepo)
	return AppModel{
		router: router.New(homeScreen),
		state:  opts.State,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens that run their own Esc logic (multi-step pickers,
			// the quiz abandon confirm) see the key; everything else pops.
			if ei, ok := m.router.Active().(screen.EscInterceptor); ok && ei.InterceptEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.headerContext(), m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Échap", Description: "Retour"},
				{Key: "Ctrl+C", Description: "Quitter"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Naviguer"},
				{Key: "Entrée", Description: "Valider"},
				{Key: "Ctrl+C", Description: "Quitter"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// headerContext shows the current selection, e.g. "4ème · Mathématiques".
func (m AppModel) headerContext() string {
	if m.state == nil {
		return ""
	}
	sel := m.state.Selection
	if sel.Level == "" {
		return ""
	}
	if sel.Subject == "" {
		return string(sel.Level) + "  "
	}
	return fmt.Sprintf("%s · %s  ", sel.Level, sel.Subject)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

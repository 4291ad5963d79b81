package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/jmercier/collegien/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// EscInterceptor is an optional interface for screens that handle Esc
// themselves, e.g. to step back inside a multi-step picker or to confirm
// before leaving a running quiz, instead of being popped off the stack.
type EscInterceptor interface {
	InterceptEsc() bool
}

// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/classe-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/classe-cli/internal/adapters/driving/tui/styles"
)

// State represents the current form state for display.
type State string

const (
	StateReady       State = "ready"
	StateClassifying State = "classifying"
	StatePicking     State = "picking"
	StateError       State = "error"
	StateResult      State = "result"
)

// Bar displays form status and keybinding hints.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	spinner  spinner.Model
	spinning bool
	state    State
	message  string
	endpoint string
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Subtitle

	return &Bar{
		styles:  s,
		keymap:  km,
		spinner: sp,
		state:   StateReady,
		width:   80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update advances the spinner while a request is in flight, even when
// another state such as picking is shown.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); !ok || !s.spinning {
		return s, nil
	}
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return s, cmd
}

// StartClassifying switches to the busy state and returns the spinner tick.
func (s *Bar) StartClassifying() tea.Cmd {
	s.state = StateClassifying
	s.message = ""
	s.spinning = true
	return s.spinner.Tick
}

// StopClassifying ends the tick chain once no request is in flight.
func (s *Bar) StopClassifying() {
	s.spinning = false
}

// Spinning reports whether the spinner is still ticking.
func (s *Bar) Spinning() bool {
	return s.spinning
}

// Spinner renders the current spinner frame.
func (s *Bar) Spinner() string {
	return s.spinner.View()
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateClassifying:
		return s.spinner.View() + " " + s.styles.Normal.Render("Classifying...")
	case StatePicking:
		return s.styles.Normal.Render("Choose a file")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(s.message)
		}
		return s.styles.Error.Render("Error")
	case StateResult:
		return s.styles.Normal.Render(s.message)
	case StateReady:
	}
	if s.endpoint != "" {
		return s.styles.Muted.Render("Ready · " + s.endpoint)
	}
	return s.styles.Muted.Render("Ready")
}

func (s *Bar) renderRight() string {
	bindings := s.Hints()
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// Hints returns the key bindings currently advertised.
func (s *Bar) Hints() []key.Binding {
	if s.state == StatePicking {
		return s.keymap.PickerHelp()
	}
	return s.keymap.ShortHelp()
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets the message shown for the error and result states.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetEndpoint sets the classify URL shown while ready.
func (s *Bar) SetEndpoint(endpoint string) {
	s.endpoint = endpoint
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to the ready state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
}

// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/classe-cli/internal/adapters/driving/tui/styles"
)

const (
	minWidth      = 20
	minHeight     = 3
	defaultWidth  = 60
	defaultHeight = 10
)

// EmailInput wraps a bubbles textarea for multi-line email text.
type EmailInput struct {
	textarea textarea.Model
	styles   *styles.Styles
	width    int
	height   int
}

// NewEmailInput creates a focused, unlimited email text area.
func NewEmailInput(s *styles.Styles) *EmailInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ta := textarea.New()
	ta.Placeholder = "Paste or type the email text here..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Focus()

	e := &EmailInput{textarea: ta, styles: s}
	e.SetSize(defaultWidth, defaultHeight)
	return e
}

// Init starts the cursor blink.
func (e *EmailInput) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles input messages.
func (e *EmailInput) Update(msg tea.Msg) (*EmailInput, tea.Cmd) {
	var cmd tea.Cmd
	e.textarea, cmd = e.textarea.Update(msg)
	return e, cmd
}

// View renders the text area inside a border that tracks focus.
func (e *EmailInput) View() string {
	frame := e.styles.InputField
	if e.textarea.Focused() {
		frame = e.styles.FocusedInputField
	}
	label := e.styles.Subtitle.Render("Email text")
	return lipgloss.JoinVertical(lipgloss.Left, label, frame.Render(e.textarea.View()))
}

// Value returns the current text.
func (e *EmailInput) Value() string {
	return e.textarea.Value()
}

// SetValue replaces the text and moves the cursor to the start.
func (e *EmailInput) SetValue(value string) {
	e.textarea.SetValue(value)
	for e.textarea.Line() > 0 {
		e.textarea.CursorUp()
	}
	e.textarea.CursorStart()
}

// Focus sets focus on the input.
func (e *EmailInput) Focus() tea.Cmd {
	return e.textarea.Focus()
}

// Blur removes focus from the input.
func (e *EmailInput) Blur() {
	e.textarea.Blur()
}

// Focused returns whether the input is focused.
func (e *EmailInput) Focused() bool {
	return e.textarea.Focused()
}

// SetSize sets the outer size, including the border and label.
func (e *EmailInput) SetSize(width, height int) {
	e.width = max(width, minWidth)
	e.height = max(height, minHeight)
	// Border (2), padding (2) and label (1).
	e.textarea.SetWidth(max(e.width-4, minWidth-4))
	e.textarea.SetHeight(max(e.height-3, 1))
}

// Width returns the current width.
func (e *EmailInput) Width() int {
	return e.width
}

// Height returns the current height.
func (e *EmailInput) Height() int {
	return e.height
}

// Reset clears the input.
func (e *EmailInput) Reset() {
	e.textarea.Reset()
}

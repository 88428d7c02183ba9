// Package result renders the outcome of a classification.
package result

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/classe-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/classe-cli/internal/core/domain"
)

// Panel shows either the last error or the last classification.
type Panel struct {
	styles *styles.Styles
	width  int
}

// NewPanel creates a result panel.
func NewPanel(s *styles.Styles) *Panel {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Panel{styles: s, width: 60}
}

// SetWidth sets the wrap width for descriptions.
func (p *Panel) SetWidth(width int) {
	p.width = width
}

// View renders the panel for a form snapshot. The error takes precedence;
// an empty string means there is nothing to show.
func (p *Panel) View(state domain.FormState) string {
	if state.HasError() {
		return p.styles.Error.Width(p.width).Render("✗ " + state.ErrorMessage)
	}
	if !state.HasResult() {
		return ""
	}

	label := p.styles.Result(state.Classification.IsImportant()).
		Render(state.Classification.String())
	description := p.styles.Normal.Width(p.width).
		Render(state.Classification.Description())

	return lipgloss.JoinVertical(lipgloss.Left,
		p.styles.Subtitle.Render("Classification"),
		label,
		description,
	)
}

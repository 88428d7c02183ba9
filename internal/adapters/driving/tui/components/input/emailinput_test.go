package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/classe-cli/internal/adapters/driving/tui/styles"
)

func TestNewEmailInput(t *testing.T) {
	input := NewEmailInput(styles.DefaultStyles())

	require.NotNil(t, input)
	assert.Empty(t, input.Value())
	assert.True(t, input.Focused())
	assert.Equal(t, defaultWidth, input.Width())
	assert.Equal(t, defaultHeight, input.Height())
}

func TestNewEmailInput_NilStyles(t *testing.T) {
	input := NewEmailInput(nil)

	require.NotNil(t, input)
	assert.NotNil(t, input.styles)
}

func TestEmailInput_Init(t *testing.T) {
	assert.NotNil(t, NewEmailInput(nil).Init())
}

func TestEmailInput_Update_TypesRunes(t *testing.T) {
	input := NewEmailInput(nil)

	input.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Hi")})
	input.Update(tea.KeyMsg{Type: tea.KeyEnter})
	input.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("there")})

	assert.Equal(t, "Hi\nthere", input.Value())
}

func TestEmailInput_Update_IgnoredWhenBlurred(t *testing.T) {
	input := NewEmailInput(nil)
	input.Blur()

	input.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

	assert.Empty(t, input.Value())
}

func TestEmailInput_SetValue_LongText(t *testing.T) {
	input := NewEmailInput(nil)
	long := ""
	for i := 0; i < 300; i++ {
		long += "line\n"
	}

	input.SetValue(long)

	assert.Equal(t, long, input.Value())
}

func TestEmailInput_View(t *testing.T) {
	input := NewEmailInput(nil)
	input.SetValue("Quarterly report attached")

	view := input.View()

	assert.Contains(t, view, "Email text")
	assert.Contains(t, view, "Quarterly report attached")
}

func TestEmailInput_FocusBlur(t *testing.T) {
	input := NewEmailInput(nil)

	input.Blur()
	assert.False(t, input.Focused())

	input.Focus()
	assert.True(t, input.Focused())
}

func TestEmailInput_SetSize_Clamps(t *testing.T) {
	input := NewEmailInput(nil)

	input.SetSize(5, 1)

	assert.Equal(t, minWidth, input.Width())
	assert.Equal(t, minHeight, input.Height())
}

func TestEmailInput_Reset(t *testing.T) {
	input := NewEmailInput(nil)
	input.SetValue("something")

	input.Reset()

	assert.Empty(t, input.Value())
}

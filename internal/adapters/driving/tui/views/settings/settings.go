// Package settings provides the settings view for the TUI.
package settings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/classe-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/classe-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/classe-cli/internal/core/domain"
	"github.com/custodia-labs/classe-cli/internal/core/ports/driving"
)

// Field identifies the focused input.
type Field int

const (
	FieldEndpoint Field = iota
	FieldTimeout
)

// ErrNoSettingsService is returned when the view has no service to talk to.
var ErrNoSettingsService = errors.New("settings service not available")

// ErrInvalidTimeout is returned when the timeout is not a whole number of seconds.
var ErrInvalidTimeout = errors.New("timeout must be a whole number of seconds")

// View edits the classification service endpoint and request timeout.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	settings *domain.ClientSettings
	path     string
	err      error
	saved    bool

	focused       Field
	endpointInput textinput.Model
	timeoutInput  textinput.Model

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	endpoint := textinput.New()
	endpoint.Placeholder = domain.DefaultEndpointBaseURL
	endpoint.CharLimit = 512
	endpoint.Width = 50
	endpoint.Focus()

	timeout := textinput.New()
	timeout.Placeholder = "0 (no timeout)"
	timeout.CharLimit = 6
	timeout.Width = 16

	return &View{
		styles:          s,
		settingsService: settingsService,
		endpointInput:   endpoint,
		timeoutInput:    timeout,
	}
}

// Init loads the current settings.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.loadSettings(), v.focus(FieldEndpoint))
}

func (v *View) loadSettings() tea.Cmd {
	service := v.settingsService
	return func() tea.Msg {
		if service == nil {
			return messages.SettingsLoaded{Err: ErrNoSettingsService}
		}
		settings, err := service.Get()
		return messages.SettingsLoaded{Settings: settings, Path: service.Path(), Err: err}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.setSettings(msg.Settings)
		v.path = msg.Path
		v.err = nil
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			v.saved = false
			return v, nil
		}
		v.setSettings(msg.Settings)
		v.err = nil
		v.saved = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewClassify}
		}
	case "tab", "shift+tab", "up", "down":
		next := FieldTimeout
		if v.focused == FieldTimeout {
			next = FieldEndpoint
		}
		return v, v.focus(next)
	case "enter":
		return v, v.save()
	}

	v.saved = false
	var cmd tea.Cmd
	if v.focused == FieldEndpoint {
		v.endpointInput, cmd = v.endpointInput.Update(msg)
	} else {
		v.timeoutInput, cmd = v.timeoutInput.Update(msg)
	}
	return v, cmd
}

func (v *View) focus(field Field) tea.Cmd {
	v.focused = field
	if field == FieldEndpoint {
		v.timeoutInput.Blur()
		return v.endpointInput.Focus()
	}
	v.endpointInput.Blur()
	return v.timeoutInput.Focus()
}

// save validates both fields and stores them.
func (v *View) save() tea.Cmd {
	endpoint := strings.TrimSpace(v.endpointInput.Value())
	rawTimeout := strings.TrimSpace(v.timeoutInput.Value())
	service := v.settingsService

	return func() tea.Msg {
		if service == nil {
			return messages.SettingsSaved{Err: ErrNoSettingsService}
		}

		seconds := 0
		if rawTimeout != "" {
			n, err := strconv.Atoi(rawTimeout)
			if err != nil || n < 0 {
				return messages.SettingsSaved{Err: ErrInvalidTimeout}
			}
			seconds = n
		}
		if endpoint == "" {
			endpoint = domain.DefaultEndpointBaseURL
		}

		if err := service.SetEndpoint(endpoint); err != nil {
			return messages.SettingsSaved{Err: err}
		}
		if err := service.SetTimeout(time.Duration(seconds) * time.Second); err != nil {
			return messages.SettingsSaved{Err: err}
		}

		settings, err := service.Get()
		return messages.SettingsSaved{Settings: settings, Err: err}
	}
}

func (v *View) setSettings(settings domain.ClientSettings) {
	v.settings = &settings
	v.endpointInput.SetValue(settings.EndpointBaseURL)
	v.timeoutInput.SetValue(strconv.Itoa(int(settings.Timeout / time.Second)))
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if v.settings == nil && v.err == nil {
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
		return b.String()
	}

	b.WriteString(v.renderField("Classification service", v.endpointInput, v.focused == FieldEndpoint))
	b.WriteString(v.styles.Muted.Render("    Requests go to <service>" + domain.ClassifyPath))
	b.WriteString("\n\n")
	b.WriteString(v.renderField("Timeout (seconds)", v.timeoutInput, v.focused == FieldTimeout))
	b.WriteString("\n")

	if v.saved {
		b.WriteString(v.styles.Unproductive.UnsetBorderStyle().Render("Saved. Restart classe to use the new settings."))
		b.WriteString("\n")
	}
	if v.path != "" {
		b.WriteString(v.styles.Muted.Render("Config file: " + v.path))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[tab] switch field  [enter] save  [esc] back"))
	return b.String()
}

func (v *View) renderField(label string, in textinput.Model, focused bool) string {
	title := v.styles.Normal.Render(label)
	if focused {
		title = v.styles.Subtitle.Render(label)
	}
	return title + "\n  " + in.View() + "\n"
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.endpointInput.Width = min(max(width-8, 20), 80)
}

// Reset clears transient state before the view is shown again.
func (v *View) Reset() {
	v.err = nil
	v.saved = false
	v.focused = FieldEndpoint
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// Saved reports whether the last save succeeded.
func (v *View) Saved() bool {
	return v.saved
}

// Focused returns the focused field.
func (v *View) Focused() Field {
	return v.focused
}

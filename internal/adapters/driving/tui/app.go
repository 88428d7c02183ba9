package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/classe-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/classe-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/classe-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/classe-cli/internal/adapters/driving/tui/views/classify"
	"github.com/custodia-labs/classe-cli/internal/adapters/driving/tui/views/settings"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	// classifyView is the submission form.
	classifyView *classify.View

	// settingsView edits the endpoint and timeout.
	settingsView *settings.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first window size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		classifyView: classify.NewView(s, km, ports.Submission, ports.Attachments),
		settingsView: settings.NewView(s, ports.Settings),
		currentView:  messages.ViewClassify,
	}, nil
}

// WithContext sets the context for classify requests.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.classifyView.WithContext(ctx)
	return a
}

// WithEndpoint shows the classify URL in the status bar.
func (a *App) WithEndpoint(endpoint string) *App {
	a.classifyView.SetEndpoint(endpoint)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("classe - Email Classifier"),
		a.classifyView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, a.quit()
		}
		switch a.currentView {
		case messages.ViewClassify:
			a.classifyView, cmd = a.classifyView.Update(msg)
		case messages.ViewSettings:
			a.settingsView, cmd = a.settingsView.Update(msg)
		case messages.ViewHelp:
			if msg.Type == tea.KeyEsc || msg.String() == "f1" {
				a.currentView = messages.ViewClassify
			}
		}
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewSettings {
			a.settingsView.Reset()
			return a, a.settingsView.Init()
		}
		return a, nil

	case messages.SettingsLoaded, messages.SettingsSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	}

	// Classify results, previews, spinner ticks and directory listings
	// belong to the form even while another view is shown.
	a.classifyView, cmd = a.classifyView.Update(msg)
	return a, cmd
}

// quit drops any in-flight work before exiting.
func (a *App) quit() tea.Cmd {
	a.classifyView.Unmount()
	return tea.Quit
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewClassify:
	}
	return a.classifyView.View()
}

// viewHelp renders the help view from the key map.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")

	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "  %-12s %s\n", h.Key, h.Desc)
		}
		b.WriteString("\n")
	}

	b.WriteString(a.styles.Muted.Render("Typing or attaching replaces the other; only one is sent."))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Help.Render("[esc] back to form"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	a.classifyView.Unmount()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.classifyView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}

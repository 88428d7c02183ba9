// Package classify provides the submission form view for the TUI.
package classify

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/classe-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/classe-cli/internal/adapters/driving/tui/components/result"
	"github.com/custodia-labs/classe-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/classe-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/classe-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/classe-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/classe-cli/internal/core/domain"
	"github.com/custodia-labs/classe-cli/internal/core/ports/driving"
	"github.com/custodia-labs/classe-cli/internal/logger"
)

// View is the submission form: a text area, a file input, a submit control
// and the result area. All form state lives in the SubmissionController;
// the view only mirrors it.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.EmailInput
	picker    filepicker.Model
	panel     *result.Panel
	statusbar *status.Bar

	controller  driving.SubmissionController
	attachments driving.AttachmentService
	ctx         context.Context

	// picking is true while the file picker replaces the text area.
	picking bool
	// filePath is the file input's value: the path of the picked file.
	filePath string
	// loadErr is a file read failure, shown until the next action.
	loadErr error

	width  int
	height int
	ready  bool
}

// NewView creates a new classify view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	controller driving.SubmissionController,
	attachments driving.AttachmentService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:      s,
		keymap:      km,
		input:       input.NewEmailInput(s),
		picker:      newPicker(""),
		panel:       result.NewPanel(s),
		statusbar:   status.NewBar(s, km),
		controller:  controller,
		attachments: attachments,
		ctx:         context.Background(),
		width:       80,
		height:      24,
	}
	v.sync()
	return v
}

// newPicker builds a file picker hinting at the accepted extensions.
// Files with other extensions stay selectable through DidSelectDisabledFile
// so the media type check, not the name, has the final word.
func newPicker(dir string) filepicker.Model {
	fp := filepicker.New()
	fp.AllowedTypes = domain.AcceptedExtensions()
	fp.AutoHeight = true
	fp.ShowPermissions = false
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		}
	}
	if dir != "" {
		fp.CurrentDirectory = dir
	}
	return fp
}

// WithContext sets the context used for classify requests.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// WithStartDirectory sets the directory the file picker opens in.
func (v *View) WithStartDirectory(dir string) *View {
	v.picker = newPicker(dir)
	return v
}

// SetEndpoint shows the classify URL in the status bar.
func (v *View) SetEndpoint(endpoint string) {
	v.statusbar.SetEndpoint(endpoint)
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the classify view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if v.picking {
			return v.handlePickerKey(msg)
		}
		return v.handleFormKey(msg)

	case messages.AttachmentLoaded:
		return v, v.handleAttachmentLoaded(msg)

	case messages.PreviewDecoded:
		v.handlePreviewDecoded(msg)
		return v, nil

	case messages.ClassifyCompleted:
		v.handleClassifyCompleted(msg)
		return v, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		v.statusbar, cmd = v.statusbar.Update(msg)
		return v, cmd
	}

	// Directory listings and cursor blinks.
	var pickerCmd, inputCmd tea.Cmd
	v.picker, pickerCmd = v.picker.Update(msg)
	v.input, inputCmd = v.input.Update(msg)
	return v, tea.Batch(pickerCmd, inputCmd)
}

func (v *View) handleFormKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Submit):
		return v, v.submit()

	case key.Matches(msg, v.keymap.Attach):
		return v, v.openPicker()

	case key.Matches(msg, v.keymap.Clear):
		v.controller.Reset()
		v.filePath = ""
		v.loadErr = nil
		v.input.Reset()
		v.sync()
		return v, nil

	case key.Matches(msg, v.keymap.Settings):
		return v, changeView(messages.ViewSettings)

	case key.Matches(msg, v.keymap.Help):
		return v, changeView(messages.ViewHelp)

	case key.Matches(msg, v.keymap.Back):
		return v, nil
	}

	before := v.input.Value()
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if after := v.input.Value(); after != before {
		v.controller.EditText(after)
		v.filePath = ""
		v.loadErr = nil
		v.sync()
	}
	return v, cmd
}

func (v *View) handlePickerKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if key.Matches(msg, v.keymap.Back) {
		v.closePicker()
		return v, nil
	}

	var cmd tea.Cmd
	v.picker, cmd = v.picker.Update(msg)

	if ok, path := v.picker.DidSelectFile(msg); ok {
		return v, tea.Batch(cmd, v.pick(path))
	}
	if ok, path := v.picker.DidSelectDisabledFile(msg); ok {
		return v, tea.Batch(cmd, v.pick(path))
	}
	return v, cmd
}

func (v *View) openPicker() tea.Cmd {
	v.picking = true
	v.input.Blur()
	v.statusbar.SetState(status.StatePicking)
	return v.picker.Init()
}

func (v *View) closePicker() {
	v.picking = false
	v.input.Focus()
	v.sync()
}

// pick closes the picker and reads the chosen file off the event loop.
func (v *View) pick(path string) tea.Cmd {
	v.closePicker()
	v.filePath = path
	attachments := v.attachments
	ctx := v.ctx
	return func() tea.Msg {
		if attachments == nil {
			return messages.AttachmentLoaded{Path: path, Err: ErrNoAttachmentService}
		}
		attachment, err := attachments.Load(ctx, path)
		return messages.AttachmentLoaded{Path: path, Attachment: attachment, Err: err}
	}
}

func (v *View) handleAttachmentLoaded(msg messages.AttachmentLoaded) tea.Cmd {
	if msg.Path != v.filePath {
		// A later pick or edit superseded this load.
		return nil
	}
	if msg.Err != nil {
		logger.Warn("load %s: %v", msg.Path, msg.Err)
		v.filePath = ""
		v.loadErr = msg.Err
		v.sync()
		return nil
	}

	v.loadErr = nil
	ticket, err := v.controller.SelectFile(msg.Attachment)
	if err != nil {
		// Rejected: the file input is cleared so the same file can be picked again.
		v.filePath = ""
		v.resetPicker()
		v.sync()
		return nil
	}
	v.sync()
	if ticket == nil {
		return nil
	}
	return v.decodePreview(*ticket)
}

func (v *View) decodePreview(ticket domain.PreviewTicket) tea.Cmd {
	attachments := v.attachments
	ctx := v.ctx
	return func() tea.Msg {
		if attachments == nil {
			return messages.PreviewDecoded{Ticket: ticket, Err: ErrNoAttachmentService}
		}
		text, err := attachments.Preview(ctx, ticket.Attachment)
		return messages.PreviewDecoded{Ticket: ticket, Text: text, Err: err}
	}
}

func (v *View) handlePreviewDecoded(msg messages.PreviewDecoded) {
	if msg.Err != nil {
		logger.Debug("preview skipped: %v", msg.Err)
		return
	}
	if v.controller.ApplyPreview(msg.Ticket, msg.Text) {
		v.sync()
	}
}

func (v *View) submit() tea.Cmd {
	v.loadErr = nil
	submission, err := v.controller.Begin()
	if err != nil {
		if !errors.Is(err, domain.ErrSubmissionInProgress) {
			v.sync()
		}
		return nil
	}

	logger.Debug("submitting %s", submission.ID)
	spin := v.statusbar.StartClassifying()
	controller := v.controller
	ctx := v.ctx
	sub := *submission
	return tea.Batch(spin, func() tea.Msg {
		return messages.ClassifyCompleted{Result: controller.Execute(ctx, sub)}
	})
}

func (v *View) handleClassifyCompleted(msg messages.ClassifyCompleted) {
	if !v.controller.Complete(msg.Result) {
		logger.Debug("dropped stale result for %s", msg.Result.SubmissionID)
		return
	}
	v.sync()
}

// sync mirrors controller state into the widgets.
func (v *View) sync() {
	state := v.controller.State()
	if !state.Busy {
		v.statusbar.StopClassifying()
	}

	if v.input.Value() != state.Text {
		v.input.SetValue(state.Text)
	}

	switch {
	case state.Busy:
		v.statusbar.SetState(status.StateClassifying)
	case v.picking:
		v.statusbar.SetState(status.StatePicking)
	case v.loadErr != nil:
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(fmt.Sprintf("Could not read file: %v", v.loadErr))
	case state.HasError():
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(state.ErrorMessage)
	case state.HasResult():
		v.statusbar.SetState(status.StateResult)
		v.statusbar.SetMessage(state.Classification.String())
	default:
		v.statusbar.Clear()
	}
}

// View renders the classify view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	state := v.controller.State()
	sections := make([]string, 0, 12)

	sections = append(sections,
		v.styles.Title.Render("classe"),
		v.styles.Muted.Render("Type the email text or attach a .txt or .pdf file, then classify it."),
		"",
	)

	if v.picking {
		sections = append(sections,
			v.styles.Subtitle.Render("Attach a file ("+strings.Join(domain.AcceptedExtensions(), ", ")+")"),
			v.styles.Muted.Render(v.picker.CurrentDirectory),
			v.picker.View(),
		)
	} else {
		sections = append(sections, v.input.View(), v.renderFileInput(state), "", v.renderSubmit(state))
		if panel := v.panel.View(state); panel != "" {
			sections = append(sections, "", panel)
		}
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderFileInput(state domain.FormState) string {
	label := v.styles.Subtitle.Render("Attachment: ")
	if state.Attached {
		return label + v.styles.Normal.Render(state.FileName)
	}
	return label + v.styles.Muted.Render("none (ctrl+o to attach .txt or .pdf)")
}

func (v *View) renderSubmit(state domain.FormState) string {
	if state.Busy {
		return v.statusbar.Spinner() + " " + v.styles.Muted.Render("Classifying...")
	}
	return v.styles.Selected.Render(" Classify ") + " " + v.styles.Muted.Render("ctrl+s")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	// Header (3), file line, submit line, result (4) and status bar.
	v.input.SetSize(width, height-14)
	v.panel.SetWidth(width)
	v.statusbar.SetWidth(width)
	v.picker, _ = v.picker.Update(tea.WindowSizeMsg{Width: width, Height: height - 6})
}

// resetPicker replaces the picker so its selection starts over in the
// same directory.
func (v *View) resetPicker() {
	v.picker = newPicker(v.picker.CurrentDirectory)
	v.picker, _ = v.picker.Update(tea.WindowSizeMsg{Width: v.width, Height: v.height - 6})
}

// Unmount drops any pending preview or in-flight result.
func (v *View) Unmount() {
	v.controller.Reset()
	v.filePath = ""
	v.loadErr = nil
	v.picking = false
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Picking returns whether the file picker is open.
func (v *View) Picking() bool {
	return v.picking
}

// FileInputValue returns the path held by the file input, or "" when cleared.
func (v *View) FileInputValue() string {
	return v.filePath
}

// Text returns the text area value.
func (v *View) Text() string {
	return v.input.Value()
}

// Status returns the status bar state.
func (v *View) Status() status.State {
	return v.statusbar.State()
}

func changeView(view messages.ViewType) tea.Cmd {
	return func() tea.Msg {
		return messages.ViewChanged{View: view}
	}
}

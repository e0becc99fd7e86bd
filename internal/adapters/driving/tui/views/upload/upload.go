// Package upload provides the syllabus upload and results view for the TUI.
package upload

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/render"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
	"github.com/custodia-labs/syllabus-cli/internal/core/ports/driving"
)

// headerLines is the number of lines above the results viewport.
const headerLines = 7

// footerLines is the number of lines below the results viewport.
const footerLines = 3

// Focus identifies which part of the view receives keys.
type Focus int

const (
	// FocusPath sends keys to the path input.
	FocusPath Focus = iota
	// FocusResults sends keys to the video list and viewport.
	FocusResults
)

// View is the upload form with its results panel and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.PathInput
	spinner   spinner.Model
	results   viewport.Model
	videos    *list.VideoList
	statusbar *status.Bar

	submission driving.SubmissionService
	actions    driving.VideoActionService
	ctx        context.Context

	page        render.Page
	videoOffset int
	focus       Focus
	width       int
	height      int
	ready       bool
}

// NewView creates a new upload view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	submission driving.SubmissionService,
	actions driving.VideoActionService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Title

	v := &View{
		styles:     s,
		keymap:     km,
		input:      input.NewPathInput(s),
		spinner:    sp,
		results:    viewport.New(80, 14),
		videos:     list.NewVideoList(s),
		statusbar:  status.NewBar(s, km),
		submission: submission,
		actions:    actions,
		ctx:        context.Background(),
		width:      80,
		height:     24,
		focus:      FocusPath,
	}
	v.refresh()
	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the upload view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.FileSelected:
		v.input.SetValue(msg.Path)
		v.selectPath()
		return v, v.setFocus(FocusPath)

	case messages.UploadSettled:
		v.handleUploadSettled(msg)
		return v, nil

	case messages.VideoOpened:
		if msg.Err != nil {
			v.statusbar.SetMessage("Open failed: " + msg.Err.Error())
		} else {
			v.statusbar.SetMessage("Opened in browser")
		}
		return v, nil

	case spinner.TickMsg:
		// Ticks stop once the request settles.
		if !v.page.Busy {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Browse):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewBrowse}
		}
	case key.Matches(msg, v.keymap.Focus):
		if v.focus == FocusPath {
			return v, v.setFocus(FocusResults)
		}
		return v, v.setFocus(FocusPath)
	}

	if v.focus == FocusPath {
		if key.Matches(msg, v.keymap.Submit) {
			return v, v.submit()
		}
		before := v.input.Value()
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		if v.input.Value() != before {
			v.selectPath()
		}
		return v, cmd
	}

	switch {
	case msg.String() == "ctrl+s":
		return v, v.submit()
	case key.Matches(msg, v.keymap.Back):
		return v, v.setFocus(FocusPath)
	case key.Matches(msg, v.keymap.Help):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewHelp}
		}
	case key.Matches(msg, v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }
	case key.Matches(msg, v.keymap.Up):
		v.videos.MoveUp()
		v.renderContent()
		v.scrollToSelection()
		return v, nil
	case key.Matches(msg, v.keymap.Down):
		v.videos.MoveDown()
		v.renderContent()
		v.scrollToSelection()
		return v, nil
	case key.Matches(msg, v.keymap.Open):
		return v, v.openSelected()
	}

	var cmd tea.Cmd
	v.results, cmd = v.results.Update(msg)
	return v, cmd
}

// selectPath records the typed path as the current selection.
func (v *View) selectPath() {
	v.submission.Select(domain.NewSelectedFile(v.input.Value()))
	v.refresh()
}

// submit starts an upload of the current selection.
// It does nothing while a request is in flight.
func (v *View) submit() tea.Cmd {
	if !v.page.SubmitEnabled {
		return nil
	}

	attempt, ok := v.submission.Begin(v.submission.Selection())
	v.refresh()
	if !ok {
		return nil
	}
	return tea.Batch(v.spinner.Tick, v.upload(attempt))
}

// upload runs the network stage off the event loop.
func (v *View) upload(attempt *domain.Attempt) tea.Cmd {
	return func() tea.Msg {
		return messages.UploadSettled{
			Attempt: attempt,
			Outcome: v.submission.Execute(v.ctx, attempt),
		}
	}
}

// handleUploadSettled applies a completed upload if it is still current.
func (v *View) handleUploadSettled(msg messages.UploadSettled) {
	if !v.submission.Settle(msg.Attempt, msg.Outcome) {
		return
	}
	v.refresh()
	if !v.videos.IsEmpty() {
		v.setFocus(FocusResults)
	}
}

// openSelected opens the selected video in the browser.
func (v *View) openSelected() tea.Cmd {
	selected := v.videos.SelectedVideo()
	if selected == nil || v.actions == nil {
		return nil
	}
	video := *selected
	v.statusbar.SetMessage("Opening " + video.Title + "...")
	return func() tea.Msg {
		return messages.VideoOpened{Video: video, Err: v.actions.OpenVideo(v.ctx, video)}
	}
}

// refresh re-projects the submission state.
func (v *View) refresh() {
	v.page = render.Project(v.submission.State())

	var groups []render.VideoGroupView
	if v.page.Result != nil {
		groups = v.page.Result.Videos
	}
	v.videos.SetGroups(groups)
	v.renderContent()
	v.results.GotoTop()
	v.updateStatus()
}

// updateStatus mirrors the page in the status bar.
func (v *View) updateStatus() {
	v.statusbar.Clear()
	v.statusbar.SetBrowsing(v.focus == FocusResults)

	switch {
	case v.page.Busy:
		v.statusbar.SetState(status.StateLoading)
	case v.page.Alert != "":
		v.statusbar.SetState(status.StateError)
	case v.page.Result != nil:
		v.statusbar.SetState(status.StateResults)
		v.statusbar.SetVideoCount(v.videos.Count())
	default:
		if file := v.submission.Selection(); file != nil {
			v.statusbar.SetMessage(file.Name + " selected")
		}
	}
}

// setFocus moves keyboard focus.
func (v *View) setFocus(focus Focus) tea.Cmd {
	v.focus = focus
	v.statusbar.SetBrowsing(focus == FocusResults)
	if focus == FocusPath {
		return v.input.Focus()
	}
	v.input.Blur()
	return nil
}

// renderContent rebuilds the viewport content from the page.
func (v *View) renderContent() {
	v.videoOffset = 0

	switch {
	case v.page.Alert != "":
		v.results.SetContent(v.styles.Alert.Width(v.contentWidth()).Render(v.page.Alert))
		return
	case v.page.Result == nil:
		v.results.SetContent("")
		return
	}

	result := v.page.Result
	sections := make([]string, 0, 8)
	sections = append(sections,
		v.styles.Subtitle.Render("Subject")+"  "+v.styles.Normal.Render(result.Subject),
		v.styles.Muted.Render("File     "+result.Filename),
		"",
	)

	if len(result.Topics) > 0 {
		sections = append(sections, v.styles.Title.Render("Topics"), v.renderTopics(result.Topics), "")
	}
	if result.Advisory != "" {
		sections = append(sections, v.styles.Advisory.Width(v.contentWidth()).Render(result.Advisory), "")
	}

	if !v.videos.IsEmpty() {
		sections = append(sections, v.styles.Title.Render("Recommended Videos"))
		prefix := strings.Join(sections, "\n")
		v.videoOffset = lipgloss.Height(prefix)
		sections = append(sections, v.videos.View())
	}

	v.results.SetContent(strings.Join(sections, "\n"))
}

// renderTopics renders the outline.
func (v *View) renderTopics(topics []render.TopicView) string {
	lines := make([]string, 0, len(topics))
	for i, topic := range topics {
		lines = append(lines, v.styles.Normal.Render(fmt.Sprintf("%d. %s", i+1, topic.Title)))
		for _, sub := range topic.Subtopics {
			lines = append(lines, v.styles.Muted.Render("   • "+sub))
		}
	}
	return strings.Join(lines, "\n")
}

// scrollToSelection keeps the selected video inside the viewport.
func (v *View) scrollToSelection() {
	line := v.videoOffset + v.videos.SelectedLine()
	switch {
	case line < v.results.YOffset:
		v.results.SetYOffset(line)
	case line+1 >= v.results.YOffset+v.results.Height:
		v.results.SetYOffset(line + 2 - v.results.Height)
	}
}

func (v *View) contentWidth() int {
	if v.width < 24 {
		return 20
	}
	return v.width - 4
}

// View renders the upload view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	button := v.styles.Button.Render(v.page.SubmitLabel)
	if !v.page.SubmitEnabled {
		button = v.styles.ButtonDisabled.Render(v.spinner.View() + " " + v.page.SubmitLabel)
	}
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	form := lipgloss.JoinHorizontal(lipgloss.Center, v.input.View(), "  ", button)

	sections := []string{
		v.styles.Title.Render("Syllabus AI Analyzer"),
		v.styles.Muted.Render("Extract the subject and topics of a PDF syllabus and find videos for each topic."),
		"",
		form,
		v.renderSelection(),
		"",
		v.results.View(),
		"",
		v.statusbar.View(),
		v.styles.Muted.Render("Backend: " + v.submission.Endpoint()),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderSelection describes the selected file.
func (v *View) renderSelection() string {
	file := v.submission.Selection()
	if file == nil {
		return v.styles.Muted.Render("No file selected · type a path or press ctrl+o to browse")
	}
	return v.styles.Muted.Render(fmt.Sprintf("Selected: %s (%s)", file.Name, file.MIMEHint))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.videos.SetWidth(width - 4)
	v.statusbar.SetWidth(width)

	v.results.Width = width
	v.results.Height = height - headerLines - footerLines
	if v.results.Height < 3 {
		v.results.Height = 3
	}
	v.renderContent()
}

// Page returns the current projection of the submission state.
func (v *View) Page() render.Page {
	return v.page
}

// Focus returns which part of the view has keyboard focus.
func (v *View) Focus() Focus {
	return v.focus
}

// Path returns the typed path.
func (v *View) Path() string {
	return v.input.Value()
}

// SelectedVideo returns the highlighted video, or nil.
func (v *View) SelectedVideo() *domain.Video {
	return v.videos.SelectedVideo()
}

// StatusBar returns the status bar component.
func (v *View) StatusBar() *status.Bar {
	return v.statusbar
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

package upload

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/render"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
	"github.com/custodia-labs/syllabus-cli/internal/core/services"
)

const videosBody = `{"subject":"Biology","filename":"a.pdf",
	"topics":[{"main_topic":"Cells","subtopics":["Mitosis"]}],
	"youtube_results":[{"main_topic":"Cells","videos":[
		{"url":"https://youtu.be/1","title":"Cell basics","channel":"BioChannel"},
		{"url":"https://youtu.be/2","title":"Organelles","channel":"BioChannel"}]}]}`

// MockUploader implements driven.Uploader for testing.
type MockUploader struct {
	Status int
	Body   string
	Err    error
	Calls  int
}

func (m *MockUploader) Upload(context.Context, string, domain.SelectedFile) (*domain.RawResponse, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return &domain.RawResponse{StatusCode: m.Status, Body: []byte(m.Body)}, nil
}

// MockVideoActionService implements driving.VideoActionService for testing.
type MockVideoActionService struct {
	OpenVideoFunc func(ctx context.Context, video domain.Video) error
	Opened        []domain.Video
}

func (m *MockVideoActionService) OpenVideo(ctx context.Context, video domain.Video) error {
	m.Opened = append(m.Opened, video)
	if m.OpenVideoFunc != nil {
		return m.OpenVideoFunc(ctx, video)
	}
	return nil
}

func newTestView(uploader *MockUploader) (*View, *MockVideoActionService) {
	settings := domain.Settings{BackendURL: "http://backend.test"}
	actions := &MockVideoActionService{}
	v := NewView(nil, nil, services.NewSubmissionService(uploader, settings), actions)
	v.SetDimensions(100, 40)
	return v, actions
}

func typePath(v *View, path string) *View {
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(path)})
	return v
}

func enter(v *View) (*View, tea.Cmd) {
	return v.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

// run executes cmd and any batched commands, collecting their messages.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findSettled(t *testing.T, msgs []tea.Msg) messages.UploadSettled {
	t.Helper()
	for _, msg := range msgs {
		if settled, ok := msg.(messages.UploadSettled); ok {
			return settled
		}
	}
	require.Fail(t, "no UploadSettled message")
	return messages.UploadSettled{}
}

func submitAndSettle(t *testing.T, v *View) *View {
	t.Helper()
	v, cmd := enter(v)
	require.NotNil(t, cmd)
	v, _ = v.Update(findSettled(t, run(cmd)))
	return v
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil, services.NewSubmissionService(&MockUploader{}, domain.DefaultSettings()), nil)

	require.NotNil(t, v)
	assert.False(t, v.Ready())
	assert.Equal(t, "Initialising...", v.View())
	assert.Equal(t, FocusPath, v.Focus())
	assert.Equal(t, render.SubmitLabel, v.Page().SubmitLabel)
	assert.True(t, v.Page().SubmitEnabled)
	assert.NotNil(t, v.Init())
}

func TestView_TypingSelectsFile(t *testing.T) {
	v, _ := newTestView(&MockUploader{})

	v = typePath(v, "/tmp/course.pdf")

	assert.Equal(t, "/tmp/course.pdf", v.Path())
	assert.Contains(t, v.View(), "Selected: course.pdf (application/pdf)")
	assert.Equal(t, "course.pdf selected", v.StatusBar().Message())
}

func TestView_Submit_NoFile(t *testing.T) {
	uploader := &MockUploader{}
	v, _ := newTestView(uploader)

	v, cmd := enter(v)

	assert.Nil(t, cmd)
	assert.Equal(t, "Please choose a PDF syllabus to upload.", v.Page().Alert)
	assert.Contains(t, v.View(), "Please choose a PDF syllabus to upload.")
	assert.Equal(t, 0, uploader.Calls)
}

func TestView_Submit_NotPDF(t *testing.T) {
	uploader := &MockUploader{}
	v, _ := newTestView(uploader)
	v = typePath(v, "notes.docx")

	v, cmd := enter(v)

	assert.Nil(t, cmd)
	assert.Equal(t, "Only PDF files are supported for now.", v.Page().Alert)
	assert.Equal(t, 0, uploader.Calls)
}

func TestView_Submit_Loading(t *testing.T) {
	uploader := &MockUploader{Status: 200, Body: `{}`}
	v, _ := newTestView(uploader)
	v = typePath(v, "a.pdf")

	v, cmd := enter(v)

	require.NotNil(t, cmd)
	page := v.Page()
	assert.True(t, page.Busy)
	assert.False(t, page.SubmitEnabled)
	assert.Equal(t, "Analyzing…", page.SubmitLabel)
	assert.Contains(t, v.View(), "Analyzing…")
	assert.Equal(t, 0, uploader.Calls, "upload runs in the returned command")
}

func TestView_Submit_DisabledWhileLoading(t *testing.T) {
	v, _ := newTestView(&MockUploader{Status: 200, Body: `{}`})
	v = typePath(v, "a.pdf")
	v, _ = enter(v)

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Nil(t, cmd)
	assert.True(t, v.Page().Busy)
}

func TestView_PickerUsableWhileLoading(t *testing.T) {
	v, _ := newTestView(&MockUploader{Status: 200, Body: `{}`})
	v = typePath(v, "a.pdf")
	v, cmd := enter(v)
	settled := findSettled(t, run(cmd))

	v, _ = v.Update(messages.FileSelected{Path: "/tmp/b.pdf"})

	assert.Equal(t, "/tmp/b.pdf", v.Path())
	assert.True(t, v.Page().Busy)

	v, _ = v.Update(settled)
	assert.NotNil(t, v.Page().Result)
}

func TestView_UploadSettled_Success(t *testing.T) {
	v, _ := newTestView(&MockUploader{Status: 200, Body: videosBody})
	v = typePath(v, "a.pdf")

	v = submitAndSettle(t, v)

	page := v.Page()
	require.NotNil(t, page.Result)
	assert.Equal(t, "Biology", page.Result.Subject)
	assert.True(t, page.SubmitEnabled)
	assert.Equal(t, FocusResults, v.Focus())

	view := v.View()
	assert.Contains(t, view, "Biology")
	assert.Contains(t, view, "1. Cells")
	assert.Contains(t, view, "Mitosis")
	assert.Contains(t, view, "Cell basics")
	assert.Contains(t, view, "Analysed · 2 videos")
}

func TestView_UploadSettled_MissingVideoKey(t *testing.T) {
	body := `{"subject":"Biology","filename":"a.pdf","topics":[{"main_topic":"Cells","subtopics":[]}],"youtube_results":[]}`
	v, _ := newTestView(&MockUploader{Status: 200, Body: body})
	v = typePath(v, "a.pdf")

	v = submitAndSettle(t, v)

	view := v.View()
	assert.Contains(t, view, "No YouTube API key detected.")
	assert.Contains(t, view, "Cells")
	assert.NotContains(t, view, "Recommended Videos")
	assert.Equal(t, FocusPath, v.Focus())
}

func TestView_UploadSettled_ServerError(t *testing.T) {
	v, _ := newTestView(&MockUploader{Status: 413, Body: `{"detail":"too large"}`})
	v = typePath(v, "a.pdf")

	v = submitAndSettle(t, v)

	assert.Equal(t, "too large", v.Page().Alert)
	assert.Nil(t, v.Page().Result)
	assert.Contains(t, v.View(), "too large")
	assert.Equal(t, status.StateError, v.StatusBar().State())
}

func TestView_UploadSettled_TransportError(t *testing.T) {
	v, _ := newTestView(&MockUploader{Err: errors.New("dial tcp: connection refused")})
	v = typePath(v, "a.pdf")

	v = submitAndSettle(t, v)

	assert.Equal(t, "dial tcp: connection refused", v.Page().Alert)
}

func TestView_UploadSettled_StaleIgnored(t *testing.T) {
	v, _ := newTestView(&MockUploader{Status: 200, Body: `{}`})
	v = typePath(v, "a.pdf")
	v, _ = enter(v)

	stale := &domain.Attempt{Seq: 99}
	v, _ = v.Update(messages.UploadSettled{Attempt: stale, Outcome: domain.FailedOutcome(errors.New("late"))})

	assert.True(t, v.Page().Busy)
	assert.Empty(t, v.Page().Alert)
}

func TestView_Resubmit_ClearsPreviousResult(t *testing.T) {
	v, _ := newTestView(&MockUploader{Status: 200, Body: videosBody})
	v = typePath(v, "a.pdf")
	v = submitAndSettle(t, v)
	require.NotNil(t, v.Page().Result)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.True(t, v.Page().Busy)
	assert.Nil(t, v.Page().Result)
	assert.NotContains(t, v.View(), "Cell basics")
}

func TestView_VideoNavigationAndOpen(t *testing.T) {
	v, actions := newTestView(&MockUploader{Status: 200, Body: videosBody})
	v = typePath(v, "a.pdf")
	v = submitAndSettle(t, v)
	require.Equal(t, FocusResults, v.Focus())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, "Organelles", v.SelectedVideo().Title)

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}})
	require.NotNil(t, cmd)
	msgs := run(cmd)
	require.Len(t, msgs, 1)
	opened, ok := msgs[0].(messages.VideoOpened)
	require.True(t, ok)
	assert.NoError(t, opened.Err)
	require.Len(t, actions.Opened, 1)
	assert.Equal(t, "https://youtu.be/2", actions.Opened[0].URL)

	v, _ = v.Update(opened)
	assert.Equal(t, "Opened in browser", v.StatusBar().Message())
}

func TestView_VideoOpened_Error(t *testing.T) {
	v, _ := newTestView(&MockUploader{})

	v, _ = v.Update(messages.VideoOpened{Err: errors.New("no browser")})

	assert.Equal(t, "Open failed: no browser", v.StatusBar().Message())
}

func TestView_Open_NoVideos(t *testing.T) {
	v, actions := newTestView(&MockUploader{})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyTab})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}})

	assert.Nil(t, cmd)
	assert.Empty(t, actions.Opened)
}

func TestView_FocusSwitching(t *testing.T) {
	v, _ := newTestView(&MockUploader{})

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusResults, v.Focus())

	// Typing in results focus does not change the path.
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.Empty(t, v.Path())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, FocusPath, v.Focus())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyTab})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusPath, v.Focus())
}

func TestView_ResultsFocus_Commands(t *testing.T) {
	v, _ := newTestView(&MockUploader{})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyTab})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewHelp}, cmd())

	_, cmd = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, messages.Quit{}, cmd())
}

func TestView_Browse(t *testing.T) {
	v, _ := newTestView(&MockUploader{})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyCtrlO})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewBrowse}, cmd())
}

func TestView_FileSelected(t *testing.T) {
	v, _ := newTestView(&MockUploader{})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyTab})

	v, _ = v.Update(messages.FileSelected{Path: "/home/me/Biology.PDF"})

	assert.Equal(t, "/home/me/Biology.PDF", v.Path())
	assert.Equal(t, FocusPath, v.Focus())
	assert.Contains(t, v.View(), "Selected: Biology.PDF")
}

func TestView_SelectClearsError(t *testing.T) {
	v, _ := newTestView(&MockUploader{})
	v, _ = enter(v)
	require.NotEmpty(t, v.Page().Alert)

	v = typePath(v, "a.pdf")

	assert.Empty(t, v.Page().Alert)
}

func TestView_WindowSize(t *testing.T) {
	v := NewView(nil, nil, services.NewSubmissionService(&MockUploader{}, domain.DefaultSettings()), nil)

	v, cmd := v.Update(tea.WindowSizeMsg{Width: 120, Height: 30})

	assert.Nil(t, cmd)
	assert.True(t, v.Ready())
	assert.Equal(t, 120, v.StatusBar().Width())
}

func TestView_ShowsBackend(t *testing.T) {
	v, _ := newTestView(&MockUploader{})

	assert.Contains(t, v.View(), "Backend: http://backend.test/api/upload")
}

func TestView_ResultsHeightLeavesRoomForFooter(t *testing.T) {
	v, _ := newTestView(&MockUploader{})

	v.SetDimensions(100, 40)

	assert.Equal(t, 40-headerLines-footerLines, v.results.Height)
}

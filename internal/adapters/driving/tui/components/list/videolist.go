// Package list provides list display components for the TUI.
package list

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/render"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

// VideoList displays recommended videos grouped by topic.
// Selection moves across videos of all groups; placeholders are skipped.
type VideoList struct {
	groups   []render.VideoGroupView
	videos   []domain.Video
	selected int
	styles   *styles.Styles
	width    int
}

// NewVideoList creates a new video list component.
func NewVideoList(s *styles.Styles) *VideoList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &VideoList{
		styles: s,
		width:  80,
	}
}

// Init initialises the video list.
func (l *VideoList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *VideoList) Update(msg tea.Msg) (*VideoList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the groups. It returns an empty string when there are none.
func (l *VideoList) View() string {
	if len(l.groups) == 0 {
		return ""
	}

	lines := make([]string, 0, len(l.videos)*2+len(l.groups)*2)
	index := 0
	for _, group := range l.groups {
		lines = append(lines, l.styles.Subtitle.Render(group.Topic))
		if group.Placeholder != "" {
			lines = append(lines, l.styles.Muted.Render("  "+group.Placeholder), "")
			continue
		}
		for i := range group.Videos {
			lines = append(lines, l.renderVideo(index, &group.Videos[i])...)
			index++
		}
		lines = append(lines, "")
	}

	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// renderVideo formats one video as a title line and a detail line.
func (l *VideoList) renderVideo(index int, video *domain.Video) []string {
	title := video.Title
	if title == "" {
		title = "(Untitled)"
	}
	maxTitleLen := l.width - 6
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	if len([]rune(title)) > maxTitleLen {
		title = string([]rune(title)[:maxTitleLen-3]) + "..."
	}

	var titleLine string
	if index == l.selected {
		titleLine = l.styles.Selected.Render("> " + title)
	} else {
		titleLine = l.styles.Normal.Render("  " + title)
	}

	detail := video.Channel
	if video.URL != "" {
		if detail != "" {
			detail += " · "
		}
		detail += video.URL
	}
	return []string{titleLine, l.styles.Muted.Render("    " + detail)}
}

// SetGroups replaces the displayed groups and resets the selection.
func (l *VideoList) SetGroups(groups []render.VideoGroupView) {
	l.groups = groups
	l.videos = nil
	for _, group := range groups {
		l.videos = append(l.videos, group.Videos...)
	}
	l.selected = 0
}

// Selected returns the index of the selected video.
func (l *VideoList) Selected() int {
	return l.selected
}

// SelectedVideo returns the selected video, or nil if there are none.
func (l *VideoList) SelectedVideo() *domain.Video {
	if l.selected < 0 || l.selected >= len(l.videos) {
		return nil
	}
	return &l.videos[l.selected]
}

// SelectedLine returns the line of View holding the selected video's title.
func (l *VideoList) SelectedLine() int {
	line, index := 0, 0
	for _, group := range l.groups {
		line++ // topic header
		if group.Placeholder != "" {
			line += 2
			continue
		}
		for range group.Videos {
			if index == l.selected {
				return line
			}
			line += 2
			index++
		}
		line++
	}
	return 0
}

// MoveUp moves selection up.
func (l *VideoList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *VideoList) MoveDown() {
	if l.selected < len(l.videos)-1 {
		l.selected++
	}
}

// SetWidth sets the component width.
func (l *VideoList) SetWidth(width int) {
	l.width = width
}

// Count returns the number of videos.
func (l *VideoList) Count() int {
	return len(l.videos)
}

// IsEmpty returns whether there are no groups to show.
func (l *VideoList) IsEmpty() bool {
	return len(l.groups) == 0
}

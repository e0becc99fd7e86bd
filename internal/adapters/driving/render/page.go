package render

import (
	"github.com/samber/lo"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

// Fixed display strings.
const (
	SubmitLabel        = "Analyze PDF"
	BusyLabel          = "Analyzing…"
	NoVideosMessage    = "No videos found for this topic."
	MissingKeyAdvisory = "No YouTube API key detected. " +
		"Set YOUTUBE_API_KEY in the backend environment to fetch video suggestions."
)

// Page is everything a frontend needs to draw one frame.
type Page struct {
	Busy          bool
	SubmitLabel   string
	SubmitEnabled bool

	// Alert is set only in the Error state. When set, Result is nil.
	Alert string

	Result *ResultView
}

// ResultView is the projection of a successful analysis.
type ResultView struct {
	Subject  string
	Filename string
	Topics   []TopicView

	// Advisory is set when the service returned an empty video list.
	Advisory string

	// Videos is nil when there is no video panel to draw.
	Videos []VideoGroupView
}

// TopicView is one outline entry.
// Empty subtopic strings are dropped, so a topic whose subtopics are all
// empty has a nil Subtopics and shows no list.
type TopicView struct {
	Title     string
	Subtopics []string
}

// VideoGroupView is the video panel section for one topic.
// Exactly one of Videos and Placeholder is set.
type VideoGroupView struct {
	Topic       string
	Videos      []domain.Video
	Placeholder string
}

// Project maps a state to a Page.
func Project(state domain.SubmissionState) Page {
	page := Page{
		SubmitLabel:   SubmitLabel,
		SubmitEnabled: true,
	}

	switch state.Kind {
	case domain.StateLoading:
		page.Busy = true
		page.SubmitEnabled = false
		page.SubmitLabel = BusyLabel
	case domain.StateError:
		page.Alert = state.Message
	case domain.StateSuccess:
		if state.Result != nil {
			page.Result = projectResult(state.Result)
		}
	}
	return page
}

func projectResult(result *domain.AnalysisResult) *ResultView {
	view := &ResultView{
		Subject:  result.Subject,
		Filename: result.Filename,
		Topics: lo.Map(result.Topics, func(topic domain.Topic, _ int) TopicView {
			return projectTopic(topic)
		}),
	}

	if result.MissingVideoKey() {
		view.Advisory = MissingKeyAdvisory
	}
	if result.HasVideos() {
		view.Videos = lo.Map(result.YouTubeResults, func(group domain.VideoGroup, _ int) VideoGroupView {
			return projectGroup(group)
		})
	}
	return view
}

func projectTopic(topic domain.Topic) TopicView {
	view := TopicView{Title: topic.MainTopic}
	subtopics := lo.Compact(topic.Subtopics)
	if len(subtopics) > 0 {
		view.Subtopics = subtopics
	}
	return view
}

func projectGroup(group domain.VideoGroup) VideoGroupView {
	view := VideoGroupView{Topic: group.MainTopic}
	if len(group.Videos) == 0 {
		view.Placeholder = NoVideosMessage
		return view
	}
	view.Videos = group.Videos
	return view
}

// AllVideos flattens the video panel in display order.
func (v *ResultView) AllVideos() []domain.Video {
	if v == nil {
		return nil
	}
	return lo.FlatMap(v.Videos, func(group VideoGroupView, _ int) []domain.Video {
		return group.Videos
	})
}

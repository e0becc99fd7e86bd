package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

const biologyBody = `{"subject":"Biology","filename":"a.pdf",` +
	`"topics":[{"main_topic":"Cells","subtopics":[]}],"youtube_results":[]}`

func decode(t *testing.T, body string) *domain.AnalysisResult {
	t.Helper()
	result, err := domain.DecodeAnalysisResult([]byte(body))
	require.NoError(t, err)
	return result
}

func TestProject_Idle(t *testing.T) {
	page := Project(domain.IdleState())

	assert.False(t, page.Busy)
	assert.True(t, page.SubmitEnabled)
	assert.Equal(t, "Analyze PDF", page.SubmitLabel)
	assert.Empty(t, page.Alert)
	assert.Nil(t, page.Result)
}

func TestProject_Loading(t *testing.T) {
	page := Project(domain.LoadingState())

	assert.True(t, page.Busy)
	assert.False(t, page.SubmitEnabled)
	assert.Equal(t, "Analyzing…", page.SubmitLabel)
	assert.Nil(t, page.Result)
}

func TestProject_Error(t *testing.T) {
	page := Project(domain.ErrorState("too large"))

	assert.Equal(t, "too large", page.Alert)
	assert.Nil(t, page.Result)
	assert.True(t, page.SubmitEnabled)
}

func TestProject_Success_MissingVideoKey(t *testing.T) {
	page := Project(domain.SuccessState(decode(t, biologyBody)))

	require.NotNil(t, page.Result)
	assert.Empty(t, page.Alert)
	assert.Equal(t, "Biology", page.Result.Subject)
	assert.Equal(t, "a.pdf", page.Result.Filename)
	require.Len(t, page.Result.Topics, 1)
	assert.Equal(t, "Cells", page.Result.Topics[0].Title)
	assert.Nil(t, page.Result.Topics[0].Subtopics)
	assert.Equal(t, MissingKeyAdvisory, page.Result.Advisory)
	assert.Nil(t, page.Result.Videos)
}

func TestProject_Success_VideosAbsent(t *testing.T) {
	body := `{"subject":"Biology","filename":"a.pdf","topics":[{"main_topic":"Cells","subtopics":[]}]}`

	page := Project(domain.SuccessState(decode(t, body)))

	require.NotNil(t, page.Result)
	assert.Empty(t, page.Result.Advisory)
	assert.Nil(t, page.Result.Videos)
}

func TestProject_Success_VideosNull(t *testing.T) {
	page := Project(domain.SuccessState(decode(t, `{"subject":"x","youtube_results":null}`)))

	assert.Empty(t, page.Result.Advisory)
	assert.Nil(t, page.Result.Videos)
}

func TestProject_Success_EmptySubjectStillShown(t *testing.T) {
	page := Project(domain.SuccessState(decode(t, `{}`)))

	require.NotNil(t, page.Result)
	assert.Equal(t, "", page.Result.Subject)
	assert.Equal(t, "", page.Result.Filename)
	assert.Empty(t, page.Result.Topics)
}

func TestProject_Success_Subtopics(t *testing.T) {
	body := `{"topics":[{"main_topic":"Genetics","subtopics":["DNA","","RNA"]},{"main_topic":"Ecology","subtopics":null}]}`

	page := Project(domain.SuccessState(decode(t, body)))

	require.Len(t, page.Result.Topics, 2)
	assert.Equal(t, []string{"DNA", "RNA"}, page.Result.Topics[0].Subtopics)
	assert.Nil(t, page.Result.Topics[1].Subtopics)
}

func TestProject_Success_AllSubtopicsEmpty(t *testing.T) {
	body := `{"topics":[{"main_topic":"Genetics","subtopics":["",""]}]}`

	page := Project(domain.SuccessState(decode(t, body)))

	require.Len(t, page.Result.Topics, 1)
	assert.Equal(t, "Genetics", page.Result.Topics[0].Title)
	assert.Nil(t, page.Result.Topics[0].Subtopics)
}

func TestProject_Success_VideoPanel(t *testing.T) {
	body := `{"subject":"Biology","youtube_results":[
		{"main_topic":"Cells","videos":[
			{"url":"https://youtu.be/1","thumbnail":"https://i.ytimg.com/1.jpg","title":"Cell basics","channel":"BioChannel"},
			{"url":"https://youtu.be/2","title":"Organelles","channel":"BioChannel"}]},
		{"main_topic":"Ecology","videos":[]},
		{"main_topic":"Evolution"}]}`

	page := Project(domain.SuccessState(decode(t, body)))

	require.NotNil(t, page.Result)
	assert.Empty(t, page.Result.Advisory)
	require.Len(t, page.Result.Videos, 3)

	cells := page.Result.Videos[0]
	assert.Equal(t, "Cells", cells.Topic)
	assert.Len(t, cells.Videos, 2)
	assert.Empty(t, cells.Placeholder)

	for _, group := range page.Result.Videos[1:] {
		assert.Nil(t, group.Videos)
		assert.Equal(t, "No videos found for this topic.", group.Placeholder)
	}

	all := page.Result.AllVideos()
	require.Len(t, all, 2)
	assert.Equal(t, "https://youtu.be/2", all[1].URL)
}

func TestProject_SuccessWithoutResult(t *testing.T) {
	page := Project(domain.SubmissionState{Kind: domain.StateSuccess})

	assert.Nil(t, page.Result)
	assert.Empty(t, page.Alert)
}

func TestResultView_AllVideos_Nil(t *testing.T) {
	var view *ResultView
	assert.Nil(t, view.AllVideos())
}

package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

func renderText(t *testing.T, state domain.SubmissionState) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, Project(state)))
	return buf.String()
}

func TestText_Idle(t *testing.T) {
	assert.Empty(t, renderText(t, domain.IdleState()))
}

func TestText_Loading(t *testing.T) {
	assert.Equal(t, "Analyzing…\n", renderText(t, domain.LoadingState()))
}

func TestText_Error(t *testing.T) {
	assert.Equal(t, "Error: Upload failed (500)\n", renderText(t, domain.ErrorState("Upload failed (500)")))
}

func TestText_Success_Advisory(t *testing.T) {
	out := renderText(t, domain.SuccessState(decode(t, biologyBody)))

	assert.Contains(t, out, "Subject:  Biology\n")
	assert.Contains(t, out, "Filename: a.pdf\n")
	assert.Contains(t, out, "  1. Cells\n")
	assert.NotContains(t, out, "     - ")
	assert.Contains(t, out, "Note: "+MissingKeyAdvisory)
	assert.NotContains(t, out, "Recommended videos")
}

func TestText_Success_EmptySubject(t *testing.T) {
	out := renderText(t, domain.SuccessState(decode(t, `{"filename":"x.pdf"}`)))

	assert.Contains(t, out, "Subject:  \n")
	assert.NotContains(t, out, "Topics")
}

func TestText_Success_VideoTable(t *testing.T) {
	body := `{"subject":"Biology","filename":"a.pdf",
		"topics":[{"main_topic":"Cells","subtopics":["Mitosis"]}],
		"youtube_results":[
			{"main_topic":"Cells","videos":[{"url":"https://youtu.be/1","title":"Cell basics","channel":"BioChannel"}]},
			{"main_topic":"Ecology","videos":[]}]}`

	out := renderText(t, domain.SuccessState(decode(t, body)))

	assert.Contains(t, out, "     - Mitosis\n")
	assert.Contains(t, out, "Recommended videos\n")
	assert.Contains(t, out, "TOPIC")
	assert.Contains(t, out, "Cell basics")
	assert.Contains(t, out, "BioChannel")
	assert.Contains(t, out, "https://youtu.be/1")
	assert.Contains(t, out, "No videos found for this topic.")
	assert.NotContains(t, out, "Note:")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestText_WriteError(t *testing.T) {
	err := Text(failingWriter{}, Project(domain.ErrorState("x")))
	assert.EqualError(t, err, "closed")
}

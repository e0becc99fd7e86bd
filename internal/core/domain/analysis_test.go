package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAnalysisResult_Full(t *testing.T) {
	body := []byte(`{
		"subject": "Biology",
		"filename": "a.pdf",
		"topics": [{"main_topic": "Cells", "subtopics": ["Membranes", "Organelles"]}],
		"youtube_results": [{
			"main_topic": "Cells",
			"videos": [{"url": "https://youtu.be/x", "thumbnail": "https://i.ytimg.com/x.jpg", "title": "Cells 101", "channel": "Bio"}]
		}]
	}`)

	result, err := DecodeAnalysisResult(body)

	require.NoError(t, err)
	assert.Equal(t, "Biology", result.Subject)
	assert.Equal(t, "a.pdf", result.Filename)
	require.Len(t, result.Topics, 1)
	assert.Equal(t, []string{"Membranes", "Organelles"}, result.Topics[0].Subtopics)
	require.Len(t, result.YouTubeResults, 1)
	assert.Equal(t, "Cells 101", result.YouTubeResults[0].Videos[0].Title)
	assert.True(t, result.HasVideos())
	assert.False(t, result.MissingVideoKey())
}

func TestDecodeAnalysisResult_EmptyVideosIsPresent(t *testing.T) {
	body := []byte(`{"subject":"Biology","filename":"a.pdf","topics":[{"main_topic":"Cells","subtopics":[]}],"youtube_results":[]}`)

	result, err := DecodeAnalysisResult(body)

	require.NoError(t, err)
	assert.NotNil(t, result.YouTubeResults)
	assert.True(t, result.MissingVideoKey())
	assert.False(t, result.HasVideos())
}

func TestDecodeAnalysisResult_AbsentOrNullVideos(t *testing.T) {
	bodies := map[string]string{
		"absent": `{"subject":"Biology","filename":"a.pdf"}`,
		"null":   `{"subject":"Biology","filename":"a.pdf","topics":null,"youtube_results":null}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			result, err := DecodeAnalysisResult([]byte(body))

			require.NoError(t, err)
			assert.Nil(t, result.YouTubeResults)
			assert.Nil(t, result.Topics)
			assert.False(t, result.MissingVideoKey())
			assert.False(t, result.HasVideos())
		})
	}
}

func TestDecodeAnalysisResult_ByteOrderMark(t *testing.T) {
	result, err := DecodeAnalysisResult([]byte("\xef\xbb\xbf  {\"subject\": \"Bio\", \"filename\": \"b.pdf\"}\n"))

	require.NoError(t, err)
	assert.Equal(t, "Bio", result.Subject)
	assert.Equal(t, "b.pdf", result.Filename)
}

func TestDecodeAnalysisResult_Malformed(t *testing.T) {
	bodies := map[string]string{
		"empty":       ``,
		"not json":    `<html>oops</html>`,
		"array":       `[1,2,3]`,
		"null":        `null`,
		"truncated":   `{"subject": "Bio`,
		"wrong types": `{"topics": "Cells"}`,
		"bom only":    "\xef\xbb\xbf",
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			result, err := DecodeAnalysisResult([]byte(body))

			assert.Nil(t, result)
			var malformed *MalformedResponseError
			require.True(t, errors.As(err, &malformed))
			assert.Equal(t, MalformedResponseMessage, err.Error())
		})
	}
}

package domain

import (
	"bytes"
	"encoding/json"
	"errors"
)

// AnalysisResult is the payload of a successful upload.
// It is treated as immutable once decoded.
type AnalysisResult struct {
	Subject  string  `json:"subject"`
	Filename string  `json:"filename"`
	Topics   []Topic `json:"topics"`

	// YouTubeResults is nil when the field was absent or null.
	// A present but empty array decodes to a non-nil empty slice.
	YouTubeResults []VideoGroup `json:"youtube_results"`
}

// Topic is one main topic of the syllabus outline.
type Topic struct {
	MainTopic string   `json:"main_topic"`
	Subtopics []string `json:"subtopics"`
}

// VideoGroup holds the recommended videos for one main topic.
type VideoGroup struct {
	MainTopic string  `json:"main_topic"`
	Videos    []Video `json:"videos"`
}

// Video is a single recommendation.
type Video struct {
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
	Title     string `json:"title"`
	Channel   string `json:"channel"`
}

// MissingVideoKey reports whether youtube_results was sent as an empty array,
// which the service does when it has no video API key configured.
func (r *AnalysisResult) MissingVideoKey() bool {
	return r.YouTubeResults != nil && len(r.YouTubeResults) == 0
}

// HasVideos reports whether there is at least one video group to show.
func (r *AnalysisResult) HasVideos() bool {
	return len(r.YouTubeResults) > 0
}

// utf8BOM is stripped from success bodies before decoding.
var utf8BOM = []byte("\xef\xbb\xbf")

// DecodeAnalysisResult parses a success body.
// Anything other than a JSON object of the expected shape is a MalformedResponseError.
func DecodeAnalysisResult(body []byte) (*AnalysisResult, error) {
	trimmed := bytes.TrimSpace(bytes.TrimPrefix(body, utf8BOM))
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &MalformedResponseError{Err: errors.New("response body is not a JSON object")}
	}
	var result AnalysisResult
	if err := json.Unmarshal(trimmed, &result); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}
	return &result, nil
}

// Package backend provides the HTTP adapter for the syllabus analysis service.
package backend

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
	"github.com/custodia-labs/syllabus-cli/internal/core/ports/driven"
	"github.com/custodia-labs/syllabus-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.Uploader = (*Client)(nil)

// Default configuration values.
const (
	DefaultUserAgent = "syllabus-cli"

	// MaxResponseBytes caps how much of a response body is read.
	MaxResponseBytes = 16 << 20

	// sniffLen is how many leading bytes are inspected for the content type.
	sniffLen = 3072
)

// RequestIDHeader carries the per-upload correlation id.
const RequestIDHeader = "X-Request-ID"

// Config holds configuration for the backend client.
type Config struct {
	// HTTPClient performs the requests (default: a client with no overall
	// timeout; the caller bounds each upload through its context).
	HTTPClient *http.Client

	// UserAgent is sent with every request (default: syllabus-cli).
	UserAgent string
}

// Client uploads syllabi as multipart/form-data.
type Client struct {
	httpClient   *http.Client
	userAgent    string
	newRequestID func() string
}

// NewClient creates a new backend client.
func NewClient(cfg Config) *Client {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	return &Client{
		httpClient:   cfg.HTTPClient,
		userAgent:    cfg.UserAgent,
		newRequestID: uuid.NewString,
	}
}

// Upload posts the file under the "file" field and returns the raw response.
// Any received response is returned without error, whatever its status.
func (c *Client) Upload(ctx context.Context, endpoint string, file domain.SelectedFile) (*domain.RawResponse, error) {
	f, err := os.Open(file.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", file.Name, err)
	}
	defer f.Close()

	contentType, err := sniffContentType(f, file.MIMEHint)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file.Name, err)
	}

	body, form := io.Pipe()
	defer body.Close()
	mw := multipart.NewWriter(form)
	go func() {
		form.CloseWithError(writeForm(mw, file.Name, contentType, f))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	requestID := c.newRequestID()
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(RequestIDHeader, requestID)

	logger.Debug("POST %s file=%s type=%s id=%s", endpoint, file.Name, contentType, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return &domain.RawResponse{
		StatusCode: resp.StatusCode,
		Body:       data,
		RequestID:  requestID,
	}, nil
}

// writeForm streams the single file part and closes the multipart writer.
func writeForm(mw *multipart.Writer, filename, contentType string, content io.Reader) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		domain.UploadField, escapeQuotes(filename)))
	h.Set("Content-Type", contentType)

	part, err := mw.CreatePart(h)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, content); err != nil {
		return err
	}
	return mw.Close()
}

// sniffContentType detects the content type from the leading bytes and
// rewinds the file. Generic results fall back to the extension hint.
func sniffContentType(f io.ReadSeeker, hint string) (string, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	detected := mimetype.Detect(head[:n])
	if detected.Is("application/octet-stream") && hint != "" {
		return hint, nil
	}
	return detected.String(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

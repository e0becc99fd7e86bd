package services

import (
	"context"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

// MockUploader implements driven.Uploader for testing.
type MockUploader struct {
	UploadFunc func(ctx context.Context, endpoint string, file domain.SelectedFile) (*domain.RawResponse, error)
	Calls      int
}

func (m *MockUploader) Upload(
	ctx context.Context,
	endpoint string,
	file domain.SelectedFile,
) (*domain.RawResponse, error) {
	m.Calls++
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, endpoint, file)
	}
	return &domain.RawResponse{StatusCode: 200, Body: []byte(`{}`)}, nil
}

// MockEnvSource implements driven.EnvSource for testing.
type MockEnvSource struct {
	Values domain.SettingsOverrides
	Err    error
}

func (m *MockEnvSource) Overrides() (domain.SettingsOverrides, error) {
	return m.Values, m.Err
}

func respond(status int, body string) func(context.Context, string, domain.SelectedFile) (*domain.RawResponse, error) {
	return func(context.Context, string, domain.SelectedFile) (*domain.RawResponse, error) {
		return &domain.RawResponse{StatusCode: status, Body: []byte(body)}, nil
	}
}

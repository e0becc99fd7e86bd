package domain

import (
	"mime"
	"path/filepath"
	"strings"
)

// PDFExtension is the only extension the client accepts.
const PDFExtension = ".pdf"

// PDFMIMEType is the MIME type hinted for PDF selections.
const PDFMIMEType = "application/pdf"

// SelectedFile references the file the user picked for upload.
// A nil *SelectedFile means nothing is selected.
type SelectedFile struct {
	// Name is the base name sent as the multipart filename.
	Name string

	// Path is the local path the content is read from.
	Path string

	// MIMEHint is derived from the extension. It is advisory only.
	MIMEHint string
}

// NewSelectedFile builds a selection from a local path.
// An empty or whitespace-only path yields nil.
func NewSelectedFile(path string) *SelectedFile {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	name := filepath.Base(path)
	return &SelectedFile{
		Name:     name,
		Path:     path,
		MIMEHint: mimeHint(name),
	}
}

func mimeHint(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == PDFExtension {
		return PDFMIMEType
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}

// ValidateSelection checks a selection before any network call.
// Rules run in order and the first failure wins.
func ValidateSelection(sel *SelectedFile) error {
	if sel == nil {
		return &ValidationError{Reason: ErrNoFileSelected}
	}
	if !strings.HasSuffix(strings.ToLower(sel.Name), PDFExtension) {
		return &ValidationError{Reason: ErrNotPDF}
	}
	return nil
}

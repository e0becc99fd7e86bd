// Package domain defines the core entities for the syllabus client.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SelectedFile: The file the user picked for upload
//   - AnalysisResult: The structured payload returned by the analysis service
//   - SubmissionState: The single state cell of the upload flow
//   - Settings: Resolved client configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

// Package file provides file-based configuration adapters.
//
// Settings are stored as TOML in ~/.syllabus/config.toml. Keys are exposed
// to the core in dot notation ("backend.url") and written back as TOML
// tables so the file stays hand-editable:
//
//	[backend]
//	url = "https://syllabus.example.com"
//
//	[upload]
//	timeout = "2m0s"
package file

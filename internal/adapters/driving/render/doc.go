// Package render projects a SubmissionState onto display output.
//
// Project is a pure function: the TUI and the analyze command both call it
// and draw the resulting Page in their own way. Text draws a Page as plain
// text for non-interactive output.
package render

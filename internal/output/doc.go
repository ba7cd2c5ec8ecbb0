// Package output formats validation reports for display or machine consumption.
//
// Three formats are supported:
//   - text     — human-readable terminal report (default)
//   - json     — full structured JSON report
//   - markdown — CI-comment-friendly summary with collapsible sections
//
// Use [GetWriter] to obtain a [Writer] for a given format string, then call
// [Writer.Write] with an [io.Writer], a [*validate.Report], and [Options].
// [WriteReport] is a convenience helper that handles destination selection.
package output

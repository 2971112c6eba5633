// Package output delivers a finished report to the clipboard, a file, or
// the console.
package output

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
)

// Sink writes reports and reports on its own success or failure. Status
// lines go to Status so that Stdout carries only the report.
type Sink struct {
	Stdout io.Writer
	Status io.Writer

	// CopyToClipboard places text on the system clipboard.
	CopyToClipboard func(text string) error

	ok   lipgloss.Style
	fail lipgloss.Style
}

// NewSink creates a Sink writing to stdout and status, using the system
// clipboard.
func NewSink(stdout, status io.Writer) *Sink {
	r := lipgloss.NewRenderer(status)
	return &Sink{
		Stdout:          stdout,
		Status:          status,
		CopyToClipboard: clipboard.WriteAll,
		ok:              r.NewStyle().Foreground(lipgloss.Color("2")),
		fail:            r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// Export delivers summary. With toClipboard the summary is copied to the
// clipboard. With a non-empty outputPath it is written to that file,
// replacing any previous content; otherwise it is printed to Stdout.
// Failures are reported on Status and never returned.
func (s *Sink) Export(summary, outputPath string, toClipboard bool) {
	if toClipboard {
		if err := s.CopyToClipboard(summary); err != nil {
			s.failf("Error copying summary to clipboard: %v", err)
		} else {
			s.okf("Summary copied to clipboard.")
		}
	}

	if outputPath == "" {
		fmt.Fprintln(s.Stdout, summary)
		return
	}

	err := os.WriteFile(outputPath, []byte(summary), 0o644)
	switch {
	case err == nil:
		s.okf("Summary written to %s", outputPath)
	case errors.Is(err, fs.ErrNotExist):
		s.failf("Error: The file path %s does not exist.", outputPath)
	case errors.Is(err, fs.ErrPermission):
		s.failf("Error: Permission denied when writing to %s.", outputPath)
	default:
		s.failf("Error writing summary to file: %v", err)
	}
}

func (s *Sink) okf(format string, args ...any) {
	fmt.Fprintln(s.Status, s.ok.Render(fmt.Sprintf(format, args...)))
}

func (s *Sink) failf(format string, args ...any) {
	fmt.Fprintln(s.Status, s.fail.Render(fmt.Sprintf(format, args...)))
}

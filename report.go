package codescope

import "strings"

// Delimiter separates the sections of a report.
const Delimiter = "\n---\n"

// DefaultContextPrompt opens a report when the context prompt is enabled.
const DefaultContextPrompt = "The following information provides context for a Python project codebase. " +
	"Future questions will be related to this specific codebase. " +
	"Please focus on this context for any subsequent inquiries and avoid generating responses outside this specified context. " +
	"Please ask for clarifications or additional details as needed.\n" +
	"Please write a short Summary of this project so that it is easier for you to understand and answer the future questions.\n"

// Section labels.
const (
	readmeLabel    = "\nREADME.md content:\n"
	treeLabel      = "\nProject Structure:\n"
	structureLabel = "\nKey Functions and Classes:\n"
	contentLabel   = "\nFile Content:\n"
)

// ReportOptions selects the sections of a report.
type ReportOptions struct {
	IncludeContextPrompt bool
	IncludeReadme        bool
	IncludeTree          bool
	IncludeInspection    bool
	// IncludeDocstrings only has an effect together with IncludeInspection.
	IncludeDocstrings  bool
	IncludeFullContent bool
}

// section is one optional part of a report.
type section struct {
	name    string
	enabled bool
	render  func() (string, error)
}

// CompileReport builds a report for projectPath using the default Engine.
func CompileReport(projectPath string, opts ReportOptions) (string, error) {
	return New().CompileReport(projectPath, opts)
}

// CompileReport builds the report for projectPath. Sections always appear
// in the same order: context prompt, README, tree, structure, content. Each
// enabled section is followed by Delimiter; with nothing enabled the report
// is empty. The first section error aborts the report.
func (e *Engine) CompileReport(projectPath string, opts ReportOptions) (string, error) {
	var b strings.Builder
	for _, s := range e.sections(projectPath, opts) {
		if !s.enabled {
			continue
		}
		e.logger.Debug("report: rendering section", "section", s.name)
		text, err := s.render()
		if err != nil {
			return "", err
		}
		b.WriteString(text)
		b.WriteString(Delimiter)
	}
	return b.String(), nil
}

func (e *Engine) sections(projectPath string, opts ReportOptions) []section {
	return []section{
		{
			name:    "context prompt",
			enabled: opts.IncludeContextPrompt,
			render: func() (string, error) {
				return e.contextPrompt, nil
			},
		},
		{
			name:    "readme",
			enabled: opts.IncludeReadme,
			render: func() (string, error) {
				return labeled(readmeLabel)(LoadReadme(projectPath))
			},
		},
		{
			name:    "tree",
			enabled: opts.IncludeTree,
			render: func() (string, error) {
				return labeled(treeLabel)(e.RenderTree(projectPath, true))
			},
		},
		{
			name:    "structure",
			enabled: opts.IncludeInspection,
			render: func() (string, error) {
				return labeled(structureLabel)(e.SummarizeStructure(projectPath, opts.IncludeDocstrings))
			},
		},
		{
			name:    "content",
			enabled: opts.IncludeFullContent,
			render: func() (string, error) {
				return labeled(contentLabel)(e.AggregateContents(projectPath))
			},
		},
	}
}

// labeled prefixes a successful section body with its label.
func labeled(label string) func(string, error) (string, error) {
	return func(body string, err error) (string, error) {
		if err != nil {
			return "", err
		}
		return label + body, nil
	}
}

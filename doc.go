// Package codescope summarizes a Python project as a single block of text
// meant to be pasted into another tool, such as a language model prompt.
//
// # Report
//
// A report is made of up to five sections, always in this order and each
// followed by [Delimiter]:
//
//  1. Context prompt: fixed instructions for the reader of the report.
//  2. README: the project's README.md, or [ReadmeFallback].
//  3. Tree: the directory hierarchy from [Engine.RenderTree].
//  4. Structure: classes, functions and methods of every source file from
//     [Engine.SummarizeStructure], optionally with docstrings.
//  5. Content: the full text of every source file from
//     [Engine.AggregateContents].
//
// # Usage
//
//	e := codescope.New(codescope.WithExclusions("build", "dist"))
//	report, err := e.CompileReport("path/to/project", codescope.ReportOptions{
//		IncludeReadme:     true,
//		IncludeTree:       true,
//		IncludeInspection: true,
//	})
//
// # Exclusions
//
// Hidden directories, venv and __pycache__ are skipped by every traversal,
// along with any names passed to [WithExclusions]. See [ShouldExclude].
//
// # Errors
//
// A source file that cannot be read or parsed does not stop the report: its
// entry carries an inline error message instead. Failing to read the
// project directory itself, or a README that exists but cannot be read, is
// returned as an error.
package codescope

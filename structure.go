package codescope

import (
	"strings"

	"github.com/jward/codescope/internal/extract"
)

// ExtractFileStructure parses one source file into its declaration outline.
// Read and syntax errors are carried on Outline.Err.
func ExtractFileStructure(path string, includeDocstrings bool) Outline {
	return extract.File(path, includeDocstrings)
}

// SummarizeStructure outlines every source file under root using the
// default Engine.
func SummarizeStructure(root string, includeDocstrings bool) (string, error) {
	return New().SummarizeStructure(root, includeDocstrings)
}

// SummarizeStructure outlines every source file under root. Each file gets
// an "In <path>:" header followed by its rendered outline. A file that
// cannot be read or parsed is rendered as an inline error and the summary
// continues with the next file.
func (e *Engine) SummarizeStructure(root string, includeDocstrings bool) (string, error) {
	paths, err := e.sourceFiles(root)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, path := range paths {
		outline := extract.File(path, includeDocstrings)
		if outline.Err != nil {
			e.logger.Warn("structure: could not extract file", "path", path, "err", outline.Err)
		}
		b.WriteString("\nIn " + path + ":\n")
		b.WriteString(outline.String())
	}
	return b.String(), nil
}

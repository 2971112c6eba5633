package codescope

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	contentPreamble = "Each file's content is presented below, delimited by three `.\n\n"

	// binarySniffLen is how much of a file is inspected for NUL bytes.
	binarySniffLen = 8000

	binaryPlaceholder = "[binary file skipped]\n"
)

// AggregateContents dumps every source file under root using the default
// Engine.
func AggregateContents(root string) (string, error) {
	return New().AggregateContents(root)
}

// AggregateContents concatenates the text of every source file under root,
// each wrapped in an "In <path>:" header and a ``` fence. Files are decoded
// leniently. A file that cannot be read is replaced by an inline error and
// the rest are still dumped.
func (e *Engine) AggregateContents(root string) (string, error) {
	paths, err := e.sourceFiles(root)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(contentPreamble)
	for _, path := range paths {
		fmt.Fprintf(&b, "\nIn %s:\n```\n", path)
		text, err := readText(path)
		if err != nil {
			e.logger.Warn("content: could not read file", "path", path, "err", err)
			fmt.Fprintf(&b, "Error reading file %s: %v", path, err)
		} else {
			b.WriteString(text)
		}
		b.WriteString("```\n\n")
	}
	return b.String(), nil
}

// readText reads a file as UTF-8. A leading byte order mark is dropped and
// invalid sequences become U+FFFD. Files with a NUL byte near the start are
// treated as binary and replaced by a placeholder.
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if bytes.IndexByte(data[:min(len(data), binarySniffLen)], 0) >= 0 {
		return binaryPlaceholder, nil
	}
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	text, _, err := transform.String(decoder, string(data))
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	return text, nil
}

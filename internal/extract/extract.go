// Package extract parses source files with tree-sitter and reduces them to
// an outline of their top-level declarations: classes, functions, and the
// methods declared directly inside each class.
package extract

import (
	"context"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"
)

// Kind labels a declaration. It is decided from the syntax node type.
type Kind int

const (
	KindFunction Kind = iota
	KindClass
	KindMethod
)

// String returns the label used when rendering an outline.
func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "Function"
	case KindClass:
		return "Class"
	case KindMethod:
		return "Method"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Declaration is one class, function, or method found in a file.
// Children is only populated for classes and holds their methods.
type Declaration struct {
	Name      string
	Kind      Kind
	Depth     int
	Docstring string
	Children  []Declaration
}

// Outline is the extraction result for a single file. When Err is set the
// file could not be read or parsed and Declarations is empty.
type Outline struct {
	Path         string
	Declarations []Declaration
	Err          error
}

// SyntaxError reports the first position tree-sitter could not parse.
// Line and Column are 1-based.
type SyntaxError struct {
	Line   int
	Column int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid syntax at line %d, column %d", e.Line, e.Column)
}

// File reads and parses the file at path. Read and parse failures are
// recorded on the returned Outline rather than returned.
func File(path string, includeDocstrings bool) Outline {
	src, err := os.ReadFile(path)
	if err != nil {
		return Outline{Path: path, Err: err}
	}
	return Source(path, src, includeDocstrings)
}

// Source parses src as the contents of path. The path only selects the
// grammar and labels the result.
func Source(path string, src []byte, includeDocstrings bool) Outline {
	lang, ok := LanguageForFile(path)
	if !ok {
		return Outline{Path: path, Err: fmt.Errorf("unsupported file type %q", path)}
	}
	grammar, _ := GrammarForLanguage(lang)

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(grammar)

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return Outline{Path: path, Err: fmt.Errorf("parse: %w", err)}
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return Outline{Path: path, Err: firstSyntaxError(root)}
	}

	return Outline{
		Path:         path,
		Declarations: moduleDeclarations(root, src, includeDocstrings),
	}
}

// firstSyntaxError locates the first ERROR or MISSING node in document order.
func firstSyntaxError(root *sitter.Node) *SyntaxError {
	if n := findErrorNode(root); n != nil {
		p := n.StartPoint()
		return &SyntaxError{Line: int(p.Row) + 1, Column: int(p.Column) + 1}
	}
	p := root.StartPoint()
	return &SyntaxError{Line: int(p.Row) + 1, Column: int(p.Column) + 1}
}

func findErrorNode(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		if found := findErrorNode(child); found != nil {
			return found
		}
	}
	return nil
}

package extract

import (
	"fmt"
	"strings"
)

// String renders the outline the way it appears in a structure summary: a
// leading blank line, then each top-level declaration followed by a blank
// line. A failed outline renders as a single error line.
func (o Outline) String() string {
	var b strings.Builder
	b.WriteString("\n")
	if o.Err != nil {
		fmt.Fprintf(&b, "Error reading file %s: %v\n", o.Path, o.Err)
		return b.String()
	}
	for _, d := range o.Declarations {
		writeDeclaration(&b, d)
		b.WriteString("\n")
	}
	return b.String()
}

// String renders a declaration and its methods.
func (d Declaration) String() string {
	var b strings.Builder
	writeDeclaration(&b, d)
	return b.String()
}

// writeDeclaration emits the header line, the docstring line if any, then
// the children one level deeper. Each level indents by two spaces.
func writeDeclaration(b *strings.Builder, d Declaration) {
	indent := strings.Repeat("  ", d.Depth)
	fmt.Fprintf(b, "%s%s: `%s`\n", indent, d.Kind, d.Name)
	if d.Docstring != "" {
		doc := strings.TrimSpace(strings.ReplaceAll(d.Docstring, "\n", "\n"+indent+"    "))
		fmt.Fprintf(b, "%s  Docstring: ```%s```\n", indent, doc)
	}
	for _, child := range d.Children {
		writeDeclaration(b, child)
	}
}

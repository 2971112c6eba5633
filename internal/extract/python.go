package extract

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// moduleDeclarations walks the statements of a Python module in source order
// and keeps the function and class definitions.
func moduleDeclarations(root *sitter.Node, src []byte, withDocs bool) []Declaration {
	var decls []Declaration
	for i := 0; i < int(root.NamedChildCount()); i++ {
		node := unwrapDecorated(root.NamedChild(i))
		if node == nil {
			continue
		}
		switch node.Type() {
		case "function_definition":
			decls = append(decls, newDeclaration(node, src, KindFunction, 0, withDocs))
		case "class_definition":
			cls := newDeclaration(node, src, KindClass, 0, withDocs)
			cls.Children = classMethods(node, src, withDocs)
			decls = append(decls, cls)
		}
	}
	return decls
}

// classMethods returns the functions defined directly in a class body.
// Nested classes and anything deeper are not visited.
func classMethods(class *sitter.Node, src []byte, withDocs bool) []Declaration {
	body := class.ChildByFieldName("body")
	if body == nil {
		return nil
	}
	var methods []Declaration
	for i := 0; i < int(body.NamedChildCount()); i++ {
		node := unwrapDecorated(body.NamedChild(i))
		if node == nil || node.Type() != "function_definition" {
			continue
		}
		methods = append(methods, newDeclaration(node, src, KindMethod, 1, withDocs))
	}
	return methods
}

func newDeclaration(node *sitter.Node, src []byte, kind Kind, depth int, withDocs bool) Declaration {
	d := Declaration{Kind: kind, Depth: depth}
	if name := node.ChildByFieldName("name"); name != nil {
		d.Name = name.Content(src)
	}
	if withDocs {
		d.Docstring = docstring(node, src)
	}
	return d
}

// unwrapDecorated returns the definition under a decorated_definition, or
// the node itself.
func unwrapDecorated(node *sitter.Node) *sitter.Node {
	if node == nil || node.Type() != "decorated_definition" {
		return node
	}
	if def := node.ChildByFieldName("definition"); def != nil {
		return def
	}
	return node
}

// docstring returns the cleaned docstring of a function or class, or "" if
// its body does not start with a string literal statement.
func docstring(def *sitter.Node, src []byte) string {
	body := def.ChildByFieldName("body")
	if body == nil {
		return ""
	}
	var first *sitter.Node
	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)
		if child != nil && child.Type() != "comment" {
			first = child
			break
		}
	}
	if first == nil || first.Type() != "expression_statement" || first.NamedChildCount() != 1 {
		return ""
	}
	value, ok := stringValue(first.NamedChild(0), src)
	if !ok {
		return ""
	}
	return cleanDoc(value)
}

// stringValue evaluates a plain or implicitly concatenated string literal.
// Byte strings and f-strings are not docstrings and report false.
func stringValue(node *sitter.Node, src []byte) (string, bool) {
	if node == nil {
		return "", false
	}
	switch node.Type() {
	case "parenthesized_expression":
		if node.NamedChildCount() != 1 {
			return "", false
		}
		return stringValue(node.NamedChild(0), src)
	case "string":
		return decodeLiteral(node.Content(src))
	case "concatenated_string":
		var out string
		for i := 0; i < int(node.NamedChildCount()); i++ {
			part := node.NamedChild(i)
			if part == nil || part.Type() != "string" {
				continue
			}
			v, ok := decodeLiteral(part.Content(src))
			if !ok {
				return "", false
			}
			out += v
		}
		return out, true
	}
	return "", false
}

package codescope

import "github.com/jward/codescope/internal/extract"

// Public type aliases for the extractor types returned by
// ExtractFileStructure. These are Go type aliases (=), identical to the
// internal types at compile time.

type Declaration = extract.Declaration
type Kind = extract.Kind
type Outline = extract.Outline
type SyntaxError = extract.SyntaxError

const (
	KindFunction = extract.KindFunction
	KindClass    = extract.KindClass
	KindMethod   = extract.KindMethod
)

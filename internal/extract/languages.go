package extract

import (
	"path/filepath"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// extToLanguage maps source file extensions to canonical language names.
var extToLanguage = map[string]string{
	".py": "python",
}

// langToGrammar maps language names to tree-sitter Language objects.
// Lazily initialized on first call via sync.Once.
var (
	langToGrammar map[string]*sitter.Language
	grammarsOnce  sync.Once
)

func initGrammars() {
	grammarsOnce.Do(func() {
		langToGrammar = map[string]*sitter.Language{
			"python": python.GetLanguage(),
		}
	})
}

// LanguageForFile returns the canonical language name for a file path based
// on its extension. Returns ("", false) if the extension is not recognized.
// Matching is case sensitive, the same way a "*.py" glob is.
func LanguageForFile(path string) (string, bool) {
	lang, ok := extToLanguage[filepath.Ext(path)]
	return lang, ok
}

// GrammarForLanguage returns the tree-sitter Language for a canonical
// language name. Returns (nil, false) if the language is not supported.
func GrammarForLanguage(lang string) (*sitter.Language, bool) {
	initGrammars()
	l, ok := langToGrammar[lang]
	return l, ok
}

package codescope

import (
	"log/slog"
	"path/filepath"
)

// DefaultIndentWidth is the number of spaces per tree level in RenderTree.
const DefaultIndentWidth = 4

// Engine runs the introspection pipeline over a project directory. It holds
// only configuration; every call re-walks the filesystem.
type Engine struct {
	exclusions    []string
	indentWidth   int
	contextPrompt string
	logger        *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithExclusions adds directory names to skip on top of DefaultExcludedDirs
// and hidden directories.
func WithExclusions(names ...string) Option {
	return func(e *Engine) {
		e.exclusions = append(e.exclusions, names...)
	}
}

// WithIndentWidth sets the spaces per level of the rendered tree. Values
// below one are ignored.
func WithIndentWidth(width int) Option {
	return func(e *Engine) {
		if width > 0 {
			e.indentWidth = width
		}
	}
}

// WithContextPrompt replaces the instructional text of the context prompt
// section. An empty prompt is ignored.
func WithContextPrompt(prompt string) Option {
	return func(e *Engine) {
		if prompt != "" {
			e.contextPrompt = prompt
		}
	}
}

// WithLogger sets the logger that receives per-file warnings and traversal
// debug records. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an Engine with the given options applied over the defaults.
func New(opts ...Option) *Engine {
	e := &Engine{
		indentWidth:   DefaultIndentWidth,
		contextPrompt: DefaultContextPrompt,
		logger:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// excluded applies the exclusion policy to a path relative to the
// traversal root.
func (e *Engine) excluded(rel string) bool {
	return ShouldExclude(rel, e.exclusions...)
}

// relPath returns path relative to root, or path itself when no relative
// form exists.
func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}

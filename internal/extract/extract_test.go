package extract

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parsePython(t *testing.T, src string, withDocs bool) Outline {
	t.Helper()
	return Source("sample.py", []byte(src), withDocs)
}

func TestLanguageForFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"main.py", "python", true},
		{"pkg/sub/mod.py", "python", true},
		{"main.go", "", false},
		{"notes.txt", "", false},
		{"Makefile", "", false},
		{"upper.PY", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			got, ok := LanguageForFile(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGrammarForLanguage(t *testing.T) {
	t.Parallel()

	l, ok := GrammarForLanguage("python")
	require.True(t, ok)
	assert.NotNil(t, l)

	_, ok = GrammarForLanguage("cobol")
	assert.False(t, ok)
}

func TestKindString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Function", KindFunction.String())
	assert.Equal(t, "Class", KindClass.String())
	assert.Equal(t, "Method", KindMethod.String())
}

func TestSource_FunctionWithDocstring(t *testing.T) {
	t.Parallel()
	o := parsePython(t, `def foo():
    """does x"""
    return 1
`, true)
	require.NoError(t, o.Err)
	require.Len(t, o.Declarations, 1)

	fn := o.Declarations[0]
	assert.Equal(t, "foo", fn.Name)
	assert.Equal(t, KindFunction, fn.Kind)
	assert.Equal(t, 0, fn.Depth)
	assert.Equal(t, "does x", fn.Docstring)
	assert.Empty(t, fn.Children)

	assert.Equal(t, "\nFunction: `foo`\n  Docstring: ```does x```\n\n", o.String())
}

func TestSource_ClassMethodsNestOneLevel(t *testing.T) {
	t.Parallel()
	o := parsePython(t, `class Bar:
    """A bar."""

    def baz(self):
        """Baz it.

        More detail.
        """
        pass

    class Inner:
        def hidden(self):
            pass
`, true)
	require.NoError(t, o.Err)
	require.Len(t, o.Declarations, 1)

	cls := o.Declarations[0]
	assert.Equal(t, "Bar", cls.Name)
	assert.Equal(t, KindClass, cls.Kind)
	assert.Equal(t, "A bar.", cls.Docstring)
	require.Len(t, cls.Children, 1, "nested classes are not visited")

	m := cls.Children[0]
	assert.Equal(t, "baz", m.Name)
	assert.Equal(t, KindMethod, m.Kind)
	assert.Equal(t, 1, m.Depth)
	assert.Equal(t, "Baz it.\n\nMore detail.", m.Docstring)

	want := "\n" +
		"Class: `Bar`\n" +
		"  Docstring: ```A bar.```\n" +
		"  Method: `baz`\n" +
		"    Docstring: ```Baz it.\n      \n      More detail.```\n" +
		"\n"
	assert.Equal(t, want, o.String())
	assert.NotContains(t, o.String(), "hidden")
	assert.NotContains(t, o.String(), "Function: `baz`")
}

func TestSource_SourceOrderAndDecorators(t *testing.T) {
	t.Parallel()
	o := parsePython(t, `import os

@decorator
def wrapped():
    pass

x = 1

async def fetch():
    pass

@dataclass
class Point:
    @property
    def norm(self):
        return 0

def last():
    pass
`, false)
	require.NoError(t, o.Err)

	var names []string
	for _, d := range o.Declarations {
		names = append(names, d.Kind.String()+" "+d.Name)
	}
	assert.Equal(t, []string{"Function wrapped", "Function fetch", "Class Point", "Function last"}, names)
	require.Len(t, o.Declarations[2].Children, 1)
	assert.Equal(t, "norm", o.Declarations[2].Children[0].Name)
}

func TestSource_DoesNotRecurseIntoFunctions(t *testing.T) {
	t.Parallel()
	o := parsePython(t, `def outer():
    def inner():
        pass
    class Local:
        pass
    return inner
`, false)
	require.NoError(t, o.Err)
	require.Len(t, o.Declarations, 1)
	assert.Equal(t, "outer", o.Declarations[0].Name)
	assert.Empty(t, o.Declarations[0].Children)
}

func TestSource_WithoutDocstrings(t *testing.T) {
	t.Parallel()
	o := parsePython(t, `class A:
    """Class doc."""
    def m(self):
        """Method doc."""
`, false)
	require.NoError(t, o.Err)
	assert.NotContains(t, o.String(), "Docstring:")
	assert.Equal(t, "\nClass: `A`\n  Method: `m`\n\n", o.String())
}

func TestSource_DocstringEdgeCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"not first statement", "def f():\n    x = 1\n    \"\"\"late\"\"\"\n", ""},
		{"bytes literal", "def f():\n    b\"\"\"raw\"\"\"\n", ""},
		{"f-string", "def f():\n    f\"\"\"{x}\"\"\"\n", ""},
		{"single quotes", "def f():\n    'short'\n", "short"},
		{"comment before docstring", "def f():\n    # note\n    \"\"\"Doc.\"\"\"\n", "Doc."},
		{"escape sequences", "def f():\n    \"line\\none\"\n", "line\none"},
		{"raw string", "def f():\n    r\"\"\"a\\nb\"\"\"\n", `a\nb`},
		{"implicit concatenation", "def f():\n    (\"one \"\n     \"two\")\n", "one two"},
		{"empty docstring", "def f():\n    \"\"\"\"\"\"\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			o := Source("sample.py", []byte(tt.src), true)
			require.NoError(t, o.Err)
			require.Len(t, o.Declarations, 1)
			assert.Equal(t, tt.want, o.Declarations[0].Docstring)
		})
	}
}

func TestSource_SyntaxErrorIsRecorded(t *testing.T) {
	t.Parallel()
	o := parsePython(t, "def ok():\n    pass\n\ndef broken(:\n    pass\n", true)
	require.Error(t, o.Err)

	var synErr *SyntaxError
	require.True(t, errors.As(o.Err, &synErr))
	assert.GreaterOrEqual(t, synErr.Line, 1)
	assert.Empty(t, o.Declarations)
	assert.Contains(t, o.String(), "Error reading file sample.py: invalid syntax at line")
}

func TestSource_UnsupportedExtension(t *testing.T) {
	t.Parallel()
	o := Source("main.go", []byte("package main\n"), false)
	require.Error(t, o.Err)
}

func TestFile_ReadsFromDisk(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "mod.py")
	require.NoError(t, os.WriteFile(path, []byte("def hello():\n    pass\n"), 0o644))

	o := File(path, false)
	require.NoError(t, o.Err)
	assert.Equal(t, path, o.Path)
	require.Len(t, o.Declarations, 1)
	assert.Equal(t, "hello", o.Declarations[0].Name)
}

func TestFile_MissingFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "gone.py")

	o := File(path, true)
	require.Error(t, o.Err)
	assert.True(t, errors.Is(o.Err, fs.ErrNotExist))
	assert.Contains(t, o.String(), "Error reading file "+path)
}

func TestDeclarationString(t *testing.T) {
	t.Parallel()
	d := Declaration{
		Name:      "Greeter",
		Kind:      KindClass,
		Docstring: "Says hi.\nTwice.",
		Children: []Declaration{
			{Name: "greet", Kind: KindMethod, Depth: 1},
		},
	}
	want := "Class: `Greeter`\n" +
		"  Docstring: ```Says hi.\n    Twice.```\n" +
		"  Method: `greet`\n"
	assert.Equal(t, want, d.String())
}

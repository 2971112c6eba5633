package codescope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldExclude(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path   string
		custom []string
		want   bool
	}{
		{"", nil, false},
		{".", nil, false},
		{"src", nil, false},
		{"src/pkg", nil, false},
		{".git", nil, true},
		{"src/.hidden/deep", nil, true},
		{"a/.venv", nil, true},
		{"venv", nil, true},
		{"a/venv/b", nil, true},
		{"__pycache__", nil, true},
		{"pkg/__pycache__", nil, true},
		{"myvenv", nil, false},
		{"venv2", nil, false},
		{"..", nil, false},
		{"../proj", nil, false},
		{"./src", nil, false},
		{"a/build", []string{"build"}, true},
		{"a/build", nil, false},
		{"a/builds", []string{"build"}, false},
		{"dist/x", []string{"build", "dist"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ShouldExclude(tt.path, tt.custom...))
		})
	}
}

func TestEngineExclusionsExtendDefaults(t *testing.T) {
	t.Parallel()
	e := New(WithExclusions("build"), WithExclusions("dist"))

	assert.True(t, e.excluded("build"))
	assert.True(t, e.excluded("x/dist"))
	assert.True(t, e.excluded("venv"))
	assert.False(t, e.excluded("src"))
}

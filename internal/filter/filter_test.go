package filter

import (
	"testing"

	"github.com/quantmind-br/fractalcode/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a/b/c.go", "a/b/c.go"},
		{`a\b\c.go`, "a/b/c.go"},
		{`mixed\dir/file.txt`, "mixed/dir/file.txt"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestPathFilter_ShouldExcludeDir(t *testing.T) {
	f := New(domain.RuleSet{
		IgnoredPatterns:   []string{".git", "node_modules", "src/generated"},
		IgnoredExtensions: []string{".log"},
	})

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{"exact pattern", ".git", true},
		{"nested pattern", "web/node_modules", true},
		{"multi segment pattern", "src/generated", true},
		{"multi segment pattern with windows separator", `src\generated`, true},
		{"substring inside name", ".github", true},
		{"unrelated dir", "src", false},
		{"extensions do not apply to dirs", "logs.log", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, f.ShouldExcludeDir(tt.path))
		})
	}
}

func TestPathFilter_ShouldExcludeFile(t *testing.T) {
	f := New(domain.RuleSet{
		IgnoredPatterns:   []string{"__pycache__", "secret"},
		IgnoredExtensions: []string{".log", ".min.js", ".PNG"},
	})

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{"plain source file", "src/main.py", false},
		{"extension match", "server.log", true},
		{"compound extension", "static/app.min.js", true},
		{"non-minified js survives", "static/app.js", false},
		{"extension match is case sensitive", "image.png", false},
		{"extension exact case", "image.PNG", true},
		{"pattern in directory part", "pkg/__pycache__/mod.pyc", true},
		{"pattern in file name", "config/secret.env", true},
		{"pattern case sensitive", "config/SECRET.env", false},
		{"extension matches only the name", "dir.log/readme.md", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, f.ShouldExcludeFile(tt.path))
		})
	}
}

func TestPathFilter_EmptyRules(t *testing.T) {
	f := New(domain.RuleSet{
		IgnoredPatterns:   []string{""},
		IgnoredExtensions: []string{""},
	})

	assert.False(t, f.ShouldExcludeDir("src"))
	assert.False(t, f.ShouldExcludeFile("src/main.go"))
}

func TestPathFilter_RulesAreCopied(t *testing.T) {
	patterns := []string{"vendor"}
	f := New(domain.RuleSet{IgnoredPatterns: patterns})

	patterns[0] = "other"

	assert.True(t, f.ShouldExcludeDir("vendor"))
	assert.False(t, f.ShouldExcludeDir("other"))
}

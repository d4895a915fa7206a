// Package filter decides which paths are excluded from a snapshot.
//
// Matching is plain, case-sensitive string containment: a pattern excludes
// any path it is a substring of, and an extension excludes any file whose
// name ends with it. There is no glob or regex interpretation, so a pattern
// such as "build" also excludes "rebuild.go".
package filter

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/quantmind-br/fractalcode/internal/domain"
)

// PathFilter applies a RuleSet to relative paths
type PathFilter struct {
	patterns   []string
	extensions []string
}

// New creates a PathFilter from a rule set. Empty rule strings are dropped
// since they would match every path.
func New(rules domain.RuleSet) *PathFilter {
	return &PathFilter{
		patterns:   compact(rules.IgnoredPatterns),
		extensions: compact(rules.IgnoredExtensions),
	}
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Normalize renders every path separator as a forward slash
func Normalize(p string) string {
	p = filepath.ToSlash(p)
	return strings.ReplaceAll(p, `\`, "/")
}

// ShouldExcludeDir reports whether a directory (relative to the project
// root) matches any ignored pattern
func (f *PathFilter) ShouldExcludeDir(relDirPath string) bool {
	return f.matchesPattern(Normalize(relDirPath))
}

// ShouldExcludeFile reports whether a file (relative to the project root)
// matches any ignored pattern or ends with an ignored extension
func (f *PathFilter) ShouldExcludeFile(relFilePath string) bool {
	normalized := Normalize(relFilePath)
	if f.matchesPattern(normalized) {
		return true
	}

	name := path.Base(normalized)
	for _, ext := range f.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func (f *PathFilter) matchesPattern(normalized string) bool {
	for _, pattern := range f.patterns {
		if strings.Contains(normalized, pattern) {
			return true
		}
	}
	return false
}

// Package discovery walks a project tree and selects the files that make up
// a snapshot.
//
// Traversal is depth-first. Within a directory, entries are visited in
// lexicographic byte order of their names; the directory's own files come
// first, then each subdirectory is descended in turn. Excluded directories
// are pruned before descent so their contents are never listed. Symlinked
// directories are not followed.
package discovery

import (
	"os"
	"path"
	"path/filepath"

	"github.com/quantmind-br/fractalcode/internal/domain"
	"github.com/quantmind-br/fractalcode/internal/filter"
	"github.com/quantmind-br/fractalcode/internal/utils"
)

// Result is the outcome of a discovery run
type Result struct {
	// Files in traversal order, truncated to the limit
	Files []domain.FileRecord
	// Total number of files that passed the filters before truncation
	Total int
}

// Truncated reports whether the limit dropped any files
func (r *Result) Truncated() bool {
	return len(r.Files) < r.Total
}

// Discoverer finds files to include in a snapshot
type Discoverer struct {
	logger *utils.Logger
}

// Options contains options for the discoverer
type Options struct {
	Logger *utils.Logger
}

// NewDiscoverer creates a new Discoverer
func NewDiscoverer(opts Options) *Discoverer {
	return &Discoverer{logger: opts.Logger}
}

// Discover walks projectRoot and returns every file that survives the rule
// set. When limit > 0 the result is cut to the first limit files after the
// full walk, so Total always reflects everything that matched.
func (d *Discoverer) Discover(projectRoot string, rules domain.RuleSet, limit int) (*Result, error) {
	info, err := os.Stat(projectRoot)
	if err != nil {
		return nil, domain.NewRootNotFoundError(projectRoot, err)
	}
	if !info.IsDir() {
		return nil, domain.NewRootNotFoundError(projectRoot, nil)
	}

	w := &walker{
		root:   projectRoot,
		filter: filter.New(rules),
		logger: d.logger,
		files:  []domain.FileRecord{},
	}
	if err := w.walkDir(projectRoot, ""); err != nil {
		return nil, domain.NewRootNotFoundError(projectRoot, err)
	}

	result := &Result{Files: w.files, Total: len(w.files)}
	if limit > 0 && len(result.Files) > limit {
		result.Files = result.Files[:limit]
	}

	if d.logger != nil {
		d.logger.Debug().
			Int("matched", result.Total).
			Int("selected", len(result.Files)).
			Int("pruned_dirs", w.pruned).
			Msg("Discovery finished")
	}

	return result, nil
}

type walker struct {
	root   string
	filter *filter.PathFilter
	logger *utils.Logger
	files  []domain.FileRecord
	pruned int
}

// walkDir lists dir and recurses. Only a failure to read the root itself is
// returned; unreadable subdirectories are logged and skipped.
func (w *walker) walkDir(dir, rel string) error {
	// os.ReadDir returns entries sorted by file name
	entries, err := os.ReadDir(dir)
	if err != nil {
		if rel == "" {
			return err
		}
		if w.logger != nil {
			w.logger.Warn().Err(err).Str("dir", rel).Msg("Skipping unreadable directory")
		}
		return nil
	}

	var subdirs []os.DirEntry
	for _, entry := range entries {
		childRel := joinRel(rel, entry.Name())

		isDir, follow := classify(filepath.Join(dir, entry.Name()), entry)
		if isDir {
			if !follow {
				continue
			}
			if w.filter.ShouldExcludeDir(childRel) {
				w.pruned++
				if w.logger != nil {
					w.logger.Debug().Str("dir", childRel).Msg("Pruned directory")
				}
				continue
			}
			subdirs = append(subdirs, entry)
			continue
		}

		if w.filter.ShouldExcludeFile(childRel) {
			continue
		}
		w.files = append(w.files, domain.FileRecord{
			AbsolutePath: filepath.Join(dir, entry.Name()),
			RelativePath: childRel,
		})
	}

	for _, sub := range subdirs {
		if err := w.walkDir(filepath.Join(dir, sub.Name()), joinRel(rel, sub.Name())); err != nil {
			return err
		}
	}
	return nil
}

// classify reports whether an entry is a directory and, if so, whether it
// may be descended. Symlinks to directories are directories that are never
// followed; any other symlink, broken ones included, is treated as a file.
func classify(fullPath string, entry os.DirEntry) (isDir, follow bool) {
	if entry.Type()&os.ModeSymlink != 0 {
		target, err := os.Stat(fullPath)
		if err == nil && target.IsDir() {
			return true, false
		}
		return false, false
	}
	if entry.IsDir() {
		return true, true
	}
	return false, false
}

func joinRel(rel, name string) string {
	if rel == "" {
		return name
	}
	return path.Join(rel, name)
}

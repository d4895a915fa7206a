// Package revision resolves per-file commit provenance from a local git
// repository using go-git.
package revision

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/quantmind-br/fractalcode/internal/domain"
	"github.com/quantmind-br/fractalcode/internal/git"
	"github.com/quantmind-br/fractalcode/internal/utils"
)

const (
	// ShortIDLength is the number of hash characters kept in a short id
	ShortIDLength = 7

	// TimestampLayout renders commit times in the local zone
	TimestampLayout = "2006-01-02 15:04:05"
)

// GitLookup implements domain.RevisionLookup on top of go-git.
// Opened repositories are kept per root for the lifetime of the lookup;
// commit results are always computed fresh.
type GitLookup struct {
	client git.Client
	logger *utils.Logger

	mu    sync.Mutex
	repos map[string]*repoHandle
}

// Options contains options for the git lookup
type Options struct {
	Client git.Client
	Logger *utils.Logger
}

type repoHandle struct {
	repo     *gogit.Repository
	workRoot string
	head     plumbing.Hash
	// openErr is set when the root could not be resolved; it is replayed
	// for every file under the same root
	openErr error
}

var (
	errNoHead        = errors.New("repository has no commits")
	errOutsideOfRepo = errors.New("file is outside the repository worktree")
)

// NewGitLookup creates a new GitLookup
func NewGitLookup(opts Options) *GitLookup {
	client := opts.Client
	if client == nil {
		client = git.NewClient()
	}
	return &GitLookup{
		client: client,
		logger: opts.Logger,
		repos:  make(map[string]*repoHandle),
	}
}

// Lookup returns the most recent commit touching filePath inside the
// repository that contains repoRoot. It never returns an error: failures
// map to the Unavailable variant of domain.RevisionInfo.
func (l *GitLookup) Lookup(filePath, repoRoot string) (info domain.RevisionInfo) {
	defer func() {
		if r := recover(); r != nil {
			info = domain.Unavailable(domain.ReasonLookupError, fmt.Sprint(r))
		}
	}()

	l.mu.Lock()
	defer l.mu.Unlock()

	handle := l.open(repoRoot)
	if handle.openErr != nil {
		return l.classify(filePath, handle.openErr)
	}

	rel, err := relativeTo(handle.workRoot, filePath)
	if err != nil {
		return l.classify(filePath, err)
	}

	// Commits are ordered by committer time, but the timestamp reported
	// below is the author time. The two differ for rebased commits.
	iter, err := handle.repo.Log(&gogit.LogOptions{
		From:     handle.head,
		Order:    gogit.LogOrderCommitterTime,
		FileName: &rel,
	})
	if err != nil {
		return l.classify(filePath, err)
	}
	defer iter.Close()

	commit, err := iter.Next()
	if errors.Is(err, io.EOF) {
		return domain.Unavailable(domain.ReasonNoHistory, "")
	}
	if err != nil {
		return l.classify(filePath, err)
	}

	return domain.RevisionInfo{
		ShortID:   shortID(commit.Hash),
		Author:    commit.Author.Name,
		Timestamp: commit.Author.When.Local().Format(TimestampLayout),
	}
}

// open resolves repoRoot once and caches the handle
func (l *GitLookup) open(repoRoot string) *repoHandle {
	if h, ok := l.repos[repoRoot]; ok {
		return h
	}

	h := &repoHandle{}
	l.repos[repoRoot] = h

	repo, err := l.client.PlainOpenWithOptions(repoRoot, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		h.openErr = err
		return h
	}

	wt, err := repo.Worktree()
	if err != nil {
		h.openErr = err
		return h
	}

	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			err = errNoHead
		}
		h.openErr = err
		return h
	}

	h.repo = repo
	h.workRoot = wt.Filesystem.Root()
	h.head = head.Hash()

	if l.logger != nil {
		l.logger.Debug().
			Str("root", repoRoot).
			Str("worktree", h.workRoot).
			Str("head", shortID(h.head)).
			Msg("Opened git repository")
	}
	return h
}

func (l *GitLookup) classify(filePath string, err error) domain.RevisionInfo {
	switch {
	case errors.Is(err, gogit.ErrRepositoryNotExists):
		return domain.Unavailable(domain.ReasonNoRepository, "")
	case errors.Is(err, errNoHead):
		return domain.Unavailable(domain.ReasonNoHistory, "")
	}

	if l.logger != nil {
		l.logger.Debug().Err(err).Str("file", filePath).Msg("Revision lookup failed")
	}
	return domain.Unavailable(domain.ReasonLookupError, err.Error())
}

// relativeTo returns filePath relative to root in slash form. Directory
// symlinks are resolved on both sides so temp dirs behind links still line
// up; the file name itself is kept so symlinked files map to their own path.
func relativeTo(root, filePath string) (string, error) {
	root = resolveDir(root)
	dir, name := filepath.Split(filePath)
	filePath = filepath.Join(resolveDir(dir), name)

	rel, err := filepath.Rel(root, filePath)
	if err != nil {
		return "", err
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", errOutsideOfRepo
	}
	return rel, nil
}

func resolveDir(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		return resolved
	}
	return p
}

func shortID(h plumbing.Hash) string {
	s := h.String()
	if len(s) > ShortIDLength {
		return s[:ShortIDLength]
	}
	return s
}

package domain

import "fmt"

// FileRecord is a single file selected for the snapshot
type FileRecord struct {
	AbsolutePath string
	RelativePath string // Always forward-slash separated
}

// RuleSet holds the exclusion rules applied during discovery
type RuleSet struct {
	IgnoredPatterns   []string
	IgnoredExtensions []string
}

// UnavailableReason explains why revision information is missing
type UnavailableReason string

const (
	ReasonNoRepository UnavailableReason = "no-repository"
	ReasonNoHistory    UnavailableReason = "no-history"
	ReasonLookupError  UnavailableReason = "lookup-error"
)

// RevisionInfo is the most recent commit touching a file.
// When Reason is non-empty the other fields are unset and the
// info represents an unavailable lookup.
type RevisionInfo struct {
	ShortID   string
	Author    string
	Timestamp string // Local time, "2006-01-02 15:04:05"

	Reason UnavailableReason
	Detail string
}

// Available reports whether the lookup produced a commit
func (r RevisionInfo) Available() bool {
	return r.Reason == ""
}

// String renders the info the way it appears on the "Last Commit:" line
func (r RevisionInfo) String() string {
	if r.Available() {
		return fmt.Sprintf("%s (%s) on %s", r.ShortID, r.Author, r.Timestamp)
	}
	return fmt.Sprintf("N/A (%s)", r.ReasonText())
}

// ReasonText returns the human readable reason for an unavailable lookup
func (r RevisionInfo) ReasonText() string {
	switch r.Reason {
	case "":
		return ""
	case ReasonNoRepository:
		return "not a git repository"
	case ReasonNoHistory:
		return "no commit history for file"
	case ReasonLookupError:
		if r.Detail != "" {
			return "git lookup error: " + r.Detail
		}
		return "git lookup error"
	default:
		return string(r.Reason)
	}
}

// Unavailable builds a RevisionInfo for a failed lookup
func Unavailable(reason UnavailableReason, detail string) RevisionInfo {
	return RevisionInfo{Reason: reason, Detail: detail}
}

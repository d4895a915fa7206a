package domain

// RevisionLookup resolves the most recent commit affecting a file.
// Implementations never fail: problems are reported through the
// Unavailable variant of RevisionInfo.
type RevisionLookup interface {
	Lookup(filePath, repoRoot string) RevisionInfo
}

// ProgressSink receives one Add(1) per processed file
type ProgressSink interface {
	Add(num int) error
}

// Reporter receives user-facing status messages from the generator.
// It stands in for console styling so the core never writes to the
// terminal directly.
type Reporter interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

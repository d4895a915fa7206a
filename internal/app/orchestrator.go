package app

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/quantmind-br/fractalcode/internal/config"
	"github.com/quantmind-br/fractalcode/internal/discovery"
	"github.com/quantmind-br/fractalcode/internal/domain"
	"github.com/quantmind-br/fractalcode/internal/output"
	"github.com/quantmind-br/fractalcode/internal/revision"
	"github.com/quantmind-br/fractalcode/internal/utils"
)

// Orchestrator coordinates snapshot generation: discovery, then one
// sequential write pass with per-file revision lookups
type Orchestrator struct {
	config     *config.Config
	logger     *utils.Logger
	reporter   domain.Reporter
	lookup     domain.RevisionLookup
	discoverer *discovery.Discoverer
	progress   func(total int) domain.ProgressSink
	now        func() time.Time
}

// OrchestratorOptions contains options for creating an orchestrator
type OrchestratorOptions struct {
	Config   *config.Config
	Logger   *utils.Logger
	Reporter domain.Reporter
	// Lookup defaults to a go-git backed lookup
	Lookup domain.RevisionLookup
	// Progress builds the sink for a run of total files; defaults to no progress
	Progress func(total int) domain.ProgressSink
	Now      func() time.Time
	Verbose  bool
}

// Result summarizes a run
type Result struct {
	// Total files that matched the filters
	Total int
	// Written file records in the snapshot
	Written int
	// OutputPath of the snapshot, empty when nothing was written
	OutputPath string
	// NoFiles is set when discovery found nothing to snapshot
	NoFiles bool
}

// Err returns ErrNoFilesMatched for an empty run and nil otherwise
func (r *Result) Err() error {
	if r.NoFiles {
		return domain.ErrNoFilesMatched
	}
	return nil
}

// NewOrchestrator creates a new orchestrator with the given configuration
func NewOrchestrator(opts OrchestratorOptions) (*Orchestrator, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, domain.NewConfigError("", fmt.Errorf("config is required"))
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewLogger(utils.LoggerOptions{
			Level:   cfg.Logging.Level,
			Format:  cfg.Logging.Format,
			Verbose: opts.Verbose,
		})
	}

	reporter := opts.Reporter
	if reporter == nil {
		reporter = utils.NewConsoleReporter(logger)
	}

	lookup := opts.Lookup
	if lookup == nil {
		lookup = revision.NewGitLookup(revision.Options{
			Logger: logger.WithComponent("revision"),
		})
	}

	progress := opts.Progress
	if progress == nil {
		progress = func(int) domain.ProgressSink { return utils.NopProgress{} }
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Orchestrator{
		config:   cfg,
		logger:   logger,
		reporter: reporter,
		lookup:   lookup,
		discoverer: discovery.NewDiscoverer(discovery.Options{
			Logger: logger.WithComponent("discovery"),
		}),
		progress: progress,
		now:      now,
	}, nil
}

// Run generates one snapshot. limit <= 0 means no limit. Finding no files
// is a clean terminal state: the result has NoFiles set, no output file is
// created, and the returned error is nil.
func (o *Orchestrator) Run(limit int) (*Result, error) {
	startTime := time.Now()

	if err := o.config.Validate(); err != nil {
		o.reporter.Error(fmt.Sprintf("Invalid configuration: %v", err))
		return nil, domain.NewConfigError("", err)
	}

	root, err := filepath.Abs(utils.ExpandPath(o.config.ProjectRoot))
	if err != nil {
		o.reporter.Error(fmt.Sprintf("Cannot resolve project root %q: %v", o.config.ProjectRoot, err))
		return nil, domain.NewRootNotFoundError(o.config.ProjectRoot, err)
	}
	projectName := filepath.Base(root)

	o.logger.Info().
		Str("root", root).
		Str("output", o.config.OutputDirectory).
		Strs("ignored_patterns", o.config.IgnoredPatterns).
		Strs("ignored_extensions", o.config.IgnoredFileExtensions).
		Int("limit", limit).
		Msg("Starting snapshot")

	found, err := o.discoverer.Discover(root, o.config.RuleSet(), limit)
	if err != nil {
		o.reporter.Error(fmt.Sprintf("Project root not found: %s", root))
		return nil, err
	}

	if found.Total == 0 {
		o.reporter.Warn("No files found matching the configured filters; nothing to write")
		return &Result{NoFiles: true}, nil
	}

	o.reporter.Info(fmt.Sprintf("Found %d files", found.Total))
	if found.Truncated() {
		o.reporter.Info(fmt.Sprintf("Limiting snapshot to the first %d of %d files", len(found.Files), found.Total))
	}

	// One instant for both the file name and the header
	now := o.now()
	outputDir := utils.ExpandPath(o.config.OutputDirectory)
	outputPath := output.SnapshotPath(outputDir, projectName, now)

	if err := utils.EnsureDir(outputPath); err != nil {
		o.reporter.Error(fmt.Sprintf("Cannot create output directory %s: %v", outputDir, err))
		return nil, domain.NewOutputWriteError("mkdir", outputDir, err)
	}

	sink := o.progress(len(found.Files))
	writer := output.NewSnapshotWriter(output.WriterOptions{
		Width:    o.config.Snapshot.Width,
		Lookup:   o.lookup,
		Progress: sink,
		Logger:   o.logger.WithComponent("writer"),
		Now:      func() time.Time { return now },
	})

	written, err := writer.Write(outputPath, root, projectName, found.Files)
	finish(sink)
	if err != nil {
		o.reporter.Error(fmt.Sprintf("Failed to write snapshot: %v", err))
		return nil, err
	}

	o.logger.Info().
		Int("files", written).
		Str("path", outputPath).
		Dur("duration", time.Since(startTime)).
		Msg("Snapshot completed")
	o.reporter.Info(fmt.Sprintf("Snapshot written with %d files: %s", written, outputPath))

	return &Result{
		Total:      found.Total,
		Written:    written,
		OutputPath: outputPath,
	}, nil
}

// finish completes progress sinks that render, such as progress bars
func finish(sink domain.ProgressSink) {
	if f, ok := sink.(interface{ Finish() error }); ok {
		_ = f.Finish()
	}
}

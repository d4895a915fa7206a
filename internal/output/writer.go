package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/quantmind-br/fractalcode/internal/domain"
	"github.com/quantmind-br/fractalcode/internal/textutil"
	"github.com/quantmind-br/fractalcode/internal/utils"
)

// SnapshotWriter streams a snapshot document to disk
type SnapshotWriter struct {
	width    int
	lookup   domain.RevisionLookup
	progress domain.ProgressSink
	logger   *utils.Logger
	now      func() time.Time
	readFile func(string) ([]byte, error)
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	Width    int
	Lookup   domain.RevisionLookup
	Progress domain.ProgressSink
	Logger   *utils.Logger
	Now      func() time.Time
	// ReadFile overrides how file contents are read (defaults to os.ReadFile)
	ReadFile func(string) ([]byte, error)
}

// NewSnapshotWriter creates a new snapshot writer
func NewSnapshotWriter(opts WriterOptions) *SnapshotWriter {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Progress == nil {
		opts.Progress = utils.NopProgress{}
	}
	if opts.Logger == nil {
		opts.Logger = utils.NewNopLogger()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ReadFile == nil {
		opts.ReadFile = os.ReadFile
	}

	return &SnapshotWriter{
		width:    opts.Width,
		lookup:   opts.Lookup,
		progress: opts.Progress,
		logger:   opts.Logger,
		now:      opts.Now,
		readFile: opts.ReadFile,
	}
}

// Write creates outputPath and streams the snapshot into it. The file is
// closed on every path; a partially written file is left in place when an
// error interrupts the run. It returns the number of file records written.
func (w *SnapshotWriter) Write(outputPath, projectRoot, projectName string, records []domain.FileRecord) (written int, err error) {
	f, err := os.Create(outputPath)
	if err != nil {
		return 0, domain.NewOutputWriteError("create", outputPath, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = domain.NewOutputWriteError("close", outputPath, cerr)
		}
	}()

	written, err = w.WriteTo(f, projectRoot, projectName, records)
	if err != nil {
		return written, domain.NewOutputWriteError("write", outputPath, err)
	}
	return written, nil
}

// WriteTo renders the snapshot into out
func (w *SnapshotWriter) WriteTo(out io.Writer, projectRoot, projectName string, records []domain.FileRecord) (int, error) {
	lw := &lineWriter{w: bufio.NewWriter(out)}

	w.writeHeader(lw, projectRoot, projectName)
	if lw.err != nil {
		return 0, lw.err
	}

	written := 0
	for _, rec := range records {
		w.writeRecord(lw, projectRoot, rec)
		if lw.err != nil {
			return written, lw.err
		}
		written++
		_ = w.progress.Add(1)
	}

	if err := lw.w.Flush(); err != nil {
		return written, err
	}
	return written, nil
}

func (w *SnapshotWriter) writeHeader(lw *lineWriter, projectRoot, projectName string) {
	now := w.now()

	lw.line(Separator('=', w.width))
	lw.line(Title)
	lw.line(fmt.Sprintf("Generated: %s (%s)", now.Format(HeaderTimeLayout), ZoneLabel(now)))
	lw.line("Project: " + projectName)
	lw.line("Root Directory: " + projectRoot)
	lw.line(Separator('=', w.width))
	lw.line("")
}

func (w *SnapshotWriter) writeRecord(lw *lineWriter, projectRoot string, rec domain.FileRecord) {
	info := w.revision(rec, projectRoot)

	lw.line(Separator('-', w.width))
	lw.line(TagLine(TagFileStart, w.width))
	lw.line("Full Path: " + rec.RelativePath)
	lw.line("Last Commit: " + info.String())
	lw.line(TagLine(TagFileContent, w.width))

	content, err := w.content(rec)
	if err != nil {
		w.logger.WithFile(rec.RelativePath).Warn().Err(err).Msg("Could not read file")
		lw.line(ReadErrorPrefix + err.Err.Error())
	} else {
		lw.line(content)
	}

	lw.line(TagLine(TagFileEnd, w.width))
	lw.line(Separator('-', w.width))
	lw.line("")
}

func (w *SnapshotWriter) revision(rec domain.FileRecord, projectRoot string) domain.RevisionInfo {
	if w.lookup == nil {
		return domain.Unavailable(domain.ReasonNoRepository, "")
	}
	info := w.lookup.Lookup(rec.AbsolutePath, projectRoot)
	w.logger.Debug().
		Str("file", rec.RelativePath).
		Str("revision", info.String()).
		Msg("Resolved revision")
	return info
}

func (w *SnapshotWriter) content(rec domain.FileRecord) (string, *domain.FileReadError) {
	data, err := w.readFile(rec.AbsolutePath)
	if err == nil {
		var text string
		if text, err = textutil.Decode(data); err == nil {
			return text, nil
		}
	}
	return "", &domain.FileReadError{Path: rec.AbsolutePath, Err: err}
}

// lineWriter keeps the first write error and drops later writes
type lineWriter struct {
	w   *bufio.Writer
	err error
}

func (lw *lineWriter) line(s string) {
	if lw.err != nil {
		return
	}
	if _, err := lw.w.WriteString(s); err != nil {
		lw.err = err
		return
	}
	lw.err = lw.w.WriteByte('\n')
}

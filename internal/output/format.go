package output

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/quantmind-br/fractalcode/internal/utils"
)

// DefaultWidth is the column width of separator and tag lines
const DefaultWidth = 150

// Document title and tag strings
const (
	Title = "Fractalcode - Code Snapshot"

	TagFileStart   = "--- FILE START "
	TagFileContent = "--- FILE CONTENT "
	TagFileEnd     = "--- FILE END "

	ReadErrorPrefix = "ERROR: Could not read file: "
)

// Time layouts
const (
	HeaderTimeLayout   = "2006-01-02 15:04:05"
	FilenameTimeLayout = "20060102_150405"
)

// Separator returns ch repeated width times
func Separator(ch byte, width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat(string(ch), width)
}

// TagLine pads tag with dashes to exactly width characters. A tag longer
// than width is returned unpadded.
func TagLine(tag string, width int) string {
	pad := width - len(tag)
	if pad <= 0 {
		return tag
	}
	return tag + strings.Repeat("-", pad)
}

// ZoneLabel returns the abbreviation of t's zone, e.g. "CET" or "UTC"
func ZoneLabel(t time.Time) string {
	name, _ := t.Zone()
	if name == "" {
		return t.Format("-07:00")
	}
	return name
}

// SnapshotFilename returns "<slug>_snapshot_<YYYYMMDD_HHMMSS>.txt"
func SnapshotFilename(projectName string, now time.Time) string {
	return fmt.Sprintf("%s_snapshot_%s.txt", utils.Slugify(projectName), now.Format(FilenameTimeLayout))
}

// SnapshotPath joins outputDir with the snapshot file name
func SnapshotPath(outputDir, projectName string, now time.Time) string {
	return filepath.Join(outputDir, SnapshotFilename(projectName, now))
}

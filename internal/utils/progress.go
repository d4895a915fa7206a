package utils

import (
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// DescWriting labels the snapshot progress bar
const DescWriting = "Writing snapshot"

// NewProgressBar creates a consistently styled progress bar.
//
// Parameters:
//   - total: Total number of items. Use -1 for unknown totals (indeterminate/spinner mode).
//   - description: Text description to show before the progress bar (e.g., DescWriting).
//
// Behavior:
//   - For unknown totals (total < 0): Uses spinner type 14 with blank state rendering.
//   - For known totals (total >= 0): Shows count and iterations/second (its).
//   - All progress bars show count and render to stderr.
//
// Example:
//
//	bar := utils.NewProgressBar(len(files), utils.DescWriting)
//	defer bar.Finish()
//
//	for _, file := range files {
//	    // Process file
//	    bar.Add(1)
//	}
func NewProgressBar(total int, description string) *progressbar.ProgressBar {
	return newProgressBar(os.Stderr, total, description)
}

func newProgressBar(w io.Writer, total int, description string) *progressbar.ProgressBar {
	opts := []progressbar.Option{
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			_, _ = io.WriteString(w, "\n")
		}),
	}

	if total < 0 {
		opts = append(opts,
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetRenderBlankState(true),
		)
	} else {
		opts = append(opts,
			progressbar.OptionShowIts(),
		)
	}

	return progressbar.NewOptions(total, opts...)
}

// NopProgress is a progress sink that ignores updates
type NopProgress struct{}

// Add implements domain.ProgressSink
func (NopProgress) Add(int) error { return nil }

// CountingProgress records how many updates it received
type CountingProgress struct {
	Count int
}

// Add implements domain.ProgressSink
func (c *CountingProgress) Add(n int) error {
	c.Count += n
	return nil
}

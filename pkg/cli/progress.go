package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter provides progress feedback during the headless simulation.
type Reporter interface {
	Start(total int, description string)
	Update(current int)
	Finish()
}

// NewReporter returns a TerminalReporter, or a LineReporter when the
// CI environment variable is set.
func NewReporter(w io.Writer) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &LineReporter{w: w}
	}
	return &TerminalReporter{w: w}
}

// TerminalReporter displays a progress bar in the terminal.
type TerminalReporter struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int, description string) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Update(current int) {
	if r.bar != nil {
		_ = r.bar.Set(current)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// LineReporter prints a line every tenth of the way, suitable for CI logs.
type LineReporter struct {
	w     io.Writer
	total int
	next  int
}

func (r *LineReporter) Start(total int, description string) {
	r.total = total
	r.next = 0
	fmt.Fprintf(r.w, "%s: %d frames\n", description, total)
}

func (r *LineReporter) Update(current int) {
	if r.total <= 0 || current*10 < r.next*r.total {
		return
	}
	fmt.Fprintf(r.w, "[%d/%d]\n", current, r.total)
	r.next = current*10/r.total + 1
}

func (r *LineReporter) Finish() {
	fmt.Fprintln(r.w, "simulation complete")
}

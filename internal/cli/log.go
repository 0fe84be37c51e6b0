// Package cli implements the quire command-line interface.
//
// Commands cover the whole pipeline: typeset runs parse, typeset, and
// render in one step; layout stops after pagination and writes pages.json;
// render turns an existing page set into SVG, PNG, PDF, or structure
// diagrams; preview browses pages in the terminal; serve exposes the HTTP
// typesetting API; cache manages the local artifact cache.
//
// Logging goes through charmbracelet/log. The logger lives on the [CLI]
// struct so commands and the pipeline share one instance; --verbose (-v)
// switches it to debug level and --quiet (-q) restricts it to warnings.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger builds the CLI logger: timestamps down to hundredths of a
// second, filtered at level, writing to w.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress measures one operation and reports its duration when done.
// Not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress starts the clock.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// donef logs the formatted message with the elapsed time appended,
// for example "Typeset 12 pages (1.234s)". Durations are rounded to
// the millisecond.
func (p *progress) donef(format string, args ...any) {
	args = append(args, time.Since(p.start).Round(time.Millisecond))
	p.logger.Infof(format+" (%s)", args...)
}

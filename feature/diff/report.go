package diff

import (
	"fmt"
	"io"
	"strings"

	"json-diff/core/reconcile"
	"json-diff/core/utils"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

// MsgNoDiscrepancies is printed when matched records agree on every field.
const MsgNoDiscrepancies = "No discrepancies found between the two files."

type paint func(a ...interface{}) string

// Reporter writes comparison messages to the terminal and the run log.
// The run log always receives plain text.
type Reporter struct {
	out    io.Writer
	log    *zap.Logger
	detail bool

	header  paint
	missing paint
	extra   paint
	changed paint
	failure paint
}

// ReporterOption configures a Reporter.
type ReporterOption func(*Reporter)

// WithColor toggles ANSI colors on the terminal output.
func WithColor(enabled bool) ReporterOption {
	return func(r *Reporter) {
		if !enabled {
			return
		}
		r.header = painter(color.Bold)
		r.missing = painter(color.FgRed)
		r.extra = painter(color.FgGreen)
		r.changed = painter(color.FgYellow)
		r.failure = painter(color.FgHiRed)
	}
}

// WithDetail prints the field changes under every discrepancy.
func WithDetail(enabled bool) ReporterOption {
	return func(r *Reporter) {
		r.detail = enabled
	}
}

// NewReporter creates a reporter writing to out and log. A nil log discards
// the mirrored messages.
func NewReporter(out io.Writer, log *zap.Logger, opts ...ReporterOption) *Reporter {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Reporter{
		out:     out,
		log:     log,
		header:  fmt.Sprint,
		missing: fmt.Sprint,
		extra:   fmt.Sprint,
		changed: fmt.Sprint,
		failure: fmt.Sprint,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func painter(attr color.Attribute) paint {
	c := color.New(attr)
	c.EnableColor()
	return c.SprintFunc()
}

// Info prints msg and logs it at info level.
func (r *Reporter) Info(msg string) {
	fmt.Fprintln(r.out, msg)
	r.log.Info(msg)
}

// Error prints msg and logs it at error level.
func (r *Reporter) Error(msg string) {
	fmt.Fprintln(r.out, r.failure(msg))
	r.log.Error(msg)
}

// Report prints the rows found on one side only, then one line per discrepancy.
func (r *Reporter) Report(rep *Report) {
	r.section(fmt.Sprintf("Rows in %s not in %s: ", rep.FileA, rep.FileB), rep.OnlyInA, r.missing)
	r.section(fmt.Sprintf("Rows in %s not in %s: ", rep.FileB, rep.FileA), rep.OnlyInB, r.extra)

	if len(rep.Discrepancies) == 0 {
		r.Info(MsgNoDiscrepancies)
		return
	}
	for _, d := range rep.Discrepancies {
		msg := fmt.Sprintf("Discrepancies in record %s: %s", d.ID, strings.Join(d.Fields, ", "))
		fmt.Fprintln(r.out, r.changed(msg))
		r.log.Info(msg)

		if !r.detail {
			continue
		}
		for _, ch := range d.Changes {
			line := formatChange(ch)
			fmt.Fprintln(r.out, line)
			r.log.Info(line)
		}
	}
}

func (r *Reporter) section(title string, ids []reconcile.Identifier, p paint) {
	lines := make([]string, len(ids))
	for i, id := range ids {
		lines[i] = id.String()
	}
	plain := strings.Join(lines, "\n")
	r.log.Info(title + "\n" + plain)

	body := plain
	if body != "" {
		body = p(body)
	}
	fmt.Fprintln(r.out, r.header(title)+"\n"+body)
}

func formatChange(ch reconcile.Change) string {
	return fmt.Sprintf("  %s: %s %s -> %s", ch.Path, ch.Op, utils.FormatValue(ch.Old), utils.FormatValue(ch.New))
}

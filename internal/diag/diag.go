// Package diag provides a diagnostics recorder for one pipeline run:
// a small, writer-injectable verbose logger. A library call must
// never print on its own, so the primary sink is the Document's
// Diagnostics slice; WithTrace optionally attaches an io.Writer for
// callers that want a live, human-readable trace as diagnostics are
// recorded. The CLI's --verbose flag does not use WithTrace -- the
// Recorder is internal to Run, so run.go instead walks the finished
// Document's Diagnostics slice after the fact.
package diag

import (
	"fmt"
	"io"

	"zappem.net/pub/cad/contour/internal/model"
)

// Recorder accumulates diagnostics for a single document run and
// optionally echoes them to a writer as they are recorded.
type Recorder struct {
	items []model.Diagnostic
	trace io.Writer
}

// New returns an empty Recorder.
func New() *Recorder {
	return &Recorder{}
}

// WithTrace attaches a writer that every recorded diagnostic is also
// formatted to, for a caller that wants a live trace rather than a
// post-hoc walk of the finished Document's Diagnostics slice. Returns
// the recorder for chaining.
func (r *Recorder) WithTrace(w io.Writer) *Recorder {
	r.trace = w
	return r
}

// Record appends a diagnostic with an optional detail message.
func (r *Recorder) Record(kind model.DiagnosticKind, detail string) {
	d := model.Diagnostic{Kind: kind, Detail: detail}
	r.items = append(r.items, d)
	if r.trace != nil {
		if detail == "" {
			fmt.Fprintf(r.trace, "[diag] %s\n", kind)
		} else {
			fmt.Fprintf(r.trace, "[diag] %s: %s\n", kind, detail)
		}
	}
}

// Items returns the diagnostics recorded so far, in order.
func (r *Recorder) Items() []model.Diagnostic {
	return r.items
}

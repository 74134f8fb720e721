// Package output handles user-facing progress reporting for deployment
// runs: format detection, terminal styles, and the per-application
// progress lines.
package output

import (
	"fmt"
	"io"
)

// Reporter prints per-application deployment progress. With FormatText
// the messages are the plain lines suitable for logs and pipes.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a Reporter writing to out in the given format.
// FormatAuto must be resolved by the caller first.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{out: out, format: format}
}

// Section marks the start of one application's deployment
func (r *Reporter) Section(app string) {
	if r.format == FormatTerminal {
		fmt.Fprintln(r.out, StyleHeader.Render("==> "+app))
		return
	}
	fmt.Fprintln(r.out, "==> "+app)
}

// Copying reports the start of the materialization for one application
func (r *Reporter) Copying(src, dest string) {
	if r.format == FormatTerminal {
		fmt.Fprintf(r.out, "Copying the template from %s to %s\n", StylePath.Render(src), StylePath.Render(dest))
		return
	}
	fmt.Fprintf(r.out, "Copying the template from %s to %s\n", src, dest)
}

// Completed reports a finished deployment for one application
func (r *Reporter) Completed(app string) {
	msg := fmt.Sprintf("Deployment for %s created.", app)
	if r.format == FormatTerminal {
		msg = StyleSuccess.Render(msg)
	}
	fmt.Fprintln(r.out, msg)
}

// Failed reports a fatal deployment failure for one application
func (r *Reporter) Failed(app string, err error) {
	msg := fmt.Sprintf("Deployment for %s failed: %v", app, err)
	if r.format == FormatTerminal {
		msg = StyleError.Render(msg)
	}
	fmt.Fprintln(r.out, msg)
}

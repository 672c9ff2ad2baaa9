package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/modu-ai/modularizer/internal/scaffold"
	"github.com/modu-ai/modularizer/internal/ui"
)

// consoleReporter shows one spinner per step and prints the summary cards.
type consoleReporter struct {
	out      io.Writer
	progress ui.Progress
	msg      messages
	markdown bool // render next steps with glamour
	current  ui.Spinner
}

func newConsoleReporter(out io.Writer, progress ui.Progress, msg messages, markdown bool) *consoleReporter {
	return &consoleReporter{out: out, progress: progress, msg: msg, markdown: markdown}
}

// StepStarted starts a spinner for step.
func (r *consoleReporter) StepStarted(step scaffold.Step) {
	r.current = r.progress.Spinner(r.msg.stepTitle(step))
}

// StepDetail shows the Angular CLI command line in the spinner title.
func (r *consoleReporter) StepDetail(step scaffold.Step, detail string) {
	if r.current != nil {
		r.current.SetTitle(r.msg.stepTitle(step) + ": " + detail)
	}
}

// StepSucceeded finishes the spinner with the written files.
func (r *consoleReporter) StepSucceeded(step scaffold.Step, files []string) {
	line := r.msg.stepTitle(step)
	if step != scaffold.StepStructure && len(files) > 0 {
		line += " (" + strings.Join(files, ", ") + ")"
	}
	r.finish(func(s ui.Spinner) { s.Succeed(line) })
}

// StepFailed finishes the spinner with the error.
func (r *consoleReporter) StepFailed(step scaffold.Step, err error) {
	line := fmt.Sprintf("%s: %v", r.msg.stepTitle(step), err)
	r.finish(func(s ui.Spinner) { s.Fail(line) })
}

func (r *consoleReporter) finish(done func(ui.Spinner)) {
	s := r.current
	if s == nil {
		s = r.progress.Spinner("")
	}
	done(s)
	r.current = nil
}

// Summary prints the directory tree, the result card and the next steps.
func (r *consoleReporter) Summary(report *scaffold.Report) {
	_, _ = fmt.Fprintln(r.out)
	_, _ = fmt.Fprintln(r.out, renderCard(r.msg.StructureTitle, renderTree(report.Module)))
	_, _ = fmt.Fprintln(r.out, renderSummary(report, r.msg))

	steps := nextStepsMarkdown(report, r.msg)
	if steps == "" {
		return
	}
	if r.markdown {
		steps = renderMarkdown(steps)
	}
	_, _ = fmt.Fprintln(r.out, steps)
}

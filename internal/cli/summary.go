package cli

import (
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/modu-ai/modularizer/internal/defs"
	"github.com/modu-ai/modularizer/internal/scaffold"
)

// renderTree draws the module directory tree.
func renderTree(m scaffold.Module) string {
	lines := []string{cliPrimary.Render(m.RelPath() + "/")}
	for i, sub := range scaffold.Subdirs {
		branch := "├── "
		if i == len(scaffold.Subdirs)-1 {
			branch = "└── "
		}
		lines = append(lines, cliMuted.Render(branch)+sub+"/")
	}
	return strings.Join(lines, "\n")
}

// renderSummary renders the result card of a finished run.
func renderSummary(report *scaffold.Report, msg messages) string {
	var generated, failed []string
	for _, a := range report.Artifacts {
		if a.OK() {
			generated = append(generated, string(a.Kind))
		} else {
			failed = append(failed, string(a.Kind))
		}
	}

	pairs := []kvPair{{msg.LabelLocation, report.Module.RelPath()}}
	if len(generated) > 0 {
		pairs = append(pairs, kvPair{msg.LabelGenerated, strings.Join(generated, ", ")})
	}
	if len(failed) > 0 {
		pairs = append(pairs, kvPair{msg.LabelFailed, strings.Join(failed, ", ")})
	}
	details := []string{renderKeyValueLines(pairs)}

	if overwritten := report.Overwritten(); len(overwritten) > 0 {
		lines := []string{"", cliWarn.Render(msg.LabelOverwritten + ":")}
		for _, f := range overwritten {
			lines = append(lines, "  "+f)
		}
		details = append(details, strings.Join(lines, "\n"))
	}

	if len(failed) > 0 {
		title := fmt.Sprintf(msg.SummaryPartial, report.Module.Name, len(failed))
		return renderWarningCard(title, details...)
	}
	return renderSuccessCard(fmt.Sprintf(msg.SummaryTitle, report.Module.Name), details...)
}

// nextStepsMarkdown lists follow-up actions for the artifacts that were
// generated. It returns "" when nothing was generated.
func nextStepsMarkdown(report *scaffold.Report, msg messages) string {
	m := report.Module
	var steps []string
	for _, a := range report.Artifacts {
		if !a.OK() {
			continue
		}
		switch a.Kind {
		case scaffold.KindService:
			imp := "./" + path.Join(m.Name, defs.ServicesDir, m.Name+".service")
			steps = append(steps, fmt.Sprintf(msg.NextService, m.TypeName, imp))
		case scaffold.KindModels:
			steps = append(steps, fmt.Sprintf(msg.NextModels, "./"+path.Join(m.Name, defs.ModelsDir)))
		case scaffold.KindGuard:
			steps = append(steps, msg.NextGuard)
		case scaffold.KindLayout:
			steps = append(steps, msg.NextLayout)
		}
	}
	if len(steps) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", msg.NextStepsTitle)
	for i, s := range steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	return b.String()
}

// renderMarkdown renders content for a terminal, returning it unchanged
// when the renderer cannot be built or fails.
func renderMarkdown(content string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

package scaffold

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/modu-ai/modularizer/internal/core/project"
	"github.com/modu-ai/modularizer/internal/ngcli"
	"github.com/modu-ai/modularizer/internal/template"
)

// Delegator builds and runs Angular CLI commands. *ngcli.Generator
// implements it.
type Delegator interface {
	ServiceCommand(module string) ngcli.Command
	GuardCommand(module string) ngcli.Command
	LayoutCommand(module string) ngcli.Command
	Run(ctx context.Context, projectRoot string, cmd ngcli.Command) error
}

// Orchestrator runs the generation steps for one module in order:
// structure, service, guard, layout, models, summary.
type Orchestrator struct {
	renderer  template.Renderer
	delegator Delegator
	reporter  Reporter
	logger    *slog.Logger
	apiPrefix string
}

// OrchestratorOption configures an Orchestrator.
type OrchestratorOption func(*Orchestrator)

// WithReporter sets the progress reporter.
func WithReporter(r Reporter) OrchestratorOption {
	return func(o *Orchestrator) {
		if r != nil {
			o.reporter = r
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) OrchestratorOption {
	return func(o *Orchestrator) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithAPIPrefix sets the URL prefix of the generated service.
func WithAPIPrefix(prefix string) OrchestratorOption {
	return func(o *Orchestrator) {
		o.apiPrefix = prefix
	}
}

// NewOrchestrator creates an Orchestrator that renders templates with
// renderer and delegates guard, layout and service scaffolding to delegator.
func NewOrchestrator(renderer template.Renderer, delegator Delegator, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		renderer:  renderer,
		delegator: delegator,
		reporter:  nopReporter{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run generates module m with the selected options. The project root is
// re-validated first. A returned error is fatal (invalid root, directory
// creation failure, cancellation); per-artifact failures are only recorded
// in the report.
func (o *Orchestrator) Run(ctx context.Context, m Module, opts Options) (*Report, error) {
	report := &Report{Module: m, Options: opts}
	report.enter(StateIdle)

	if err := project.ValidateAngularRoot(m.ProjectRoot); err != nil {
		return report, err
	}
	report.enter(StateValidated)
	report.enter(StateOptionsCollected)

	o.logger.Info("generating module",
		"root", m.ProjectRoot,
		"module", m.Name,
		"service", opts.Service,
		"guard", opts.Guard,
		"layout", opts.Layout,
		"models", opts.Models,
	)

	if err := ctx.Err(); err != nil {
		return report, err
	}
	o.reporter.StepStarted(StepStructure)
	dirs, err := CreateStructure(m)
	if err != nil {
		o.reporter.StepFailed(StepStructure, err)
		o.logger.Error("directory creation failed", "error", err)
		return report, err
	}
	report.CreatedDirs = dirs
	report.enter(StateStructureCreated)
	o.reporter.StepSucceeded(StepStructure, dirs)

	tmplCtx := template.NewTemplateContext(m.Name, m.TypeName, template.WithAPIPrefix(o.apiPrefix))

	for _, kind := range opts.EnabledKinds() {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		step := Step(kind)
		o.reporter.StepStarted(step)
		res := o.generate(ctx, kind, m, tmplCtx)
		report.Artifacts = append(report.Artifacts, res)
		report.enter(doneState(kind))

		if res.Err != nil {
			o.logger.Warn("artifact generation failed", "kind", kind, "error", res.Err)
			o.reporter.StepFailed(step, res.Err)
			continue
		}
		o.reporter.StepSucceeded(step, res.Files)
	}

	o.reporter.Summary(report)
	report.enter(StateSummarized)

	o.logger.Info("module generated",
		"module", m.Name,
		"dirs", len(report.CreatedDirs),
		"failed", len(report.Failed()),
	)
	report.enter(StateTerminal)
	return report, nil
}

// generate runs a single artifact step.
func (o *Orchestrator) generate(ctx context.Context, kind ArtifactKind, m Module, tmplCtx *template.TemplateContext) ArtifactResult {
	res := ArtifactResult{Kind: kind}

	switch kind {
	case KindService:
		existed := fileExists(m.ServiceFile())
		cmd := o.delegator.ServiceCommand(m.Name)
		res.Command = cmd.String()
		o.reporter.StepDetail(Step(kind), res.Command)
		if err := o.delegator.Run(ctx, m.ProjectRoot, cmd); err != nil {
			res.Err = fmt.Errorf("%w %s: %w", ErrArtifact, kind, err)
			return res
		}
		// The CLI creates the file; it is then replaced with the CRUD template.
		written, err := WriteService(o.renderer, m, tmplCtx)
		if err != nil {
			res.Err = fmt.Errorf("%w %s: %w", ErrArtifact, kind, err)
			return res
		}
		res.Files = []string{m.Rel(written.Path)}
		if existed {
			res.Overwritten = res.Files
		}

	case KindGuard, KindLayout:
		cmd := o.delegator.GuardCommand(m.Name)
		if kind == KindLayout {
			cmd = o.delegator.LayoutCommand(m.Name)
		}
		res.Command = cmd.String()
		o.reporter.StepDetail(Step(kind), res.Command)
		if err := o.delegator.Run(ctx, m.ProjectRoot, cmd); err != nil {
			res.Err = fmt.Errorf("%w %s: %w", ErrArtifact, kind, err)
		}

	case KindModels:
		written, err := WriteModels(o.renderer, m, tmplCtx)
		for _, w := range written {
			res.Files = append(res.Files, m.Rel(w.Path))
			if w.Overwritten {
				res.Overwritten = append(res.Overwritten, m.Rel(w.Path))
			}
		}
		if err != nil {
			res.Err = fmt.Errorf("%w %s: %w", ErrArtifact, kind, err)
		}
	}

	return res
}

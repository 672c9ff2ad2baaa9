package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/modu-ai/modularizer/internal/config"
	"github.com/modu-ai/modularizer/internal/ngcli"
	"github.com/modu-ai/modularizer/internal/template"
)

// Dependencies holds the services one generation run needs. It is the only
// place where concrete implementations are chosen.
type Dependencies struct {
	Config    *config.Config
	Renderer  template.Renderer
	Generator *ngcli.Generator
	Logger    *slog.Logger
}

// newRunner creates the process runner. Tests replace it.
var newRunner = func(logger *slog.Logger) ngcli.Runner {
	return ngcli.NewExecRunner(logger)
}

// newDependencies wires the renderer and Angular CLI generator for cfg.
func newDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	renderer, err := template.NewEmbeddedRenderer()
	if err != nil {
		return nil, fmt.Errorf("load embedded templates: %w", err)
	}

	gen := ngcli.NewGenerator(newRunner(logger),
		ngcli.WithBinary(cfg.NgCommand),
		ngcli.WithSkipTests(cfg.SkipTests),
	)

	return &Dependencies{
		Config:    cfg,
		Renderer:  renderer,
		Generator: gen,
		Logger:    logger,
	}, nil
}

// newLogger returns a debug text logger on w when verbose is set and a
// discarding logger otherwise.
func newLogger(verbose bool, w io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/modu-ai/modularizer/internal/cli/wizard"
	"github.com/modu-ai/modularizer/internal/config"
	"github.com/modu-ai/modularizer/internal/core/project"
	"github.com/modu-ai/modularizer/internal/scaffold"
	"github.com/modu-ai/modularizer/internal/ui"
	"github.com/modu-ai/modularizer/pkg/version"
)

// ErrNameRequired is returned when no module name is available without
// prompting.
var ErrNameRequired = errors.New("module name is required: pass --name or run in a terminal")

// stdinIsTerminal reports whether prompts can be shown. Tests replace it.
var stdinIsTerminal = func() bool {
	return ui.IsTerminal(os.Stdin)
}

// runWizard runs the prompts. Tests replace it.
var runWizard = wizard.Run

// runGenerate validates the project, collects the module name and artifact
// choices, and runs the generation steps.
func runGenerate(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	logger := newLogger(getBoolFlag(cmd, "verbose"), cmd.ErrOrStderr())

	root, err := project.ResolveRoot(getStringFlag(cmd, "root"))
	if err != nil {
		return err
	}
	if err := project.ValidateAngularRoot(root); err != nil {
		return err
	}

	cfg, err := config.NewLoader(logger).Load(root)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	msg := messagesFor(cfg.Locale)

	interactive := !getBoolFlag(cmd, "non-interactive") && stdinIsTerminal()
	if interactive {
		PrintBanner(out, version.GetVersion())
	}
	_, _ = fmt.Fprintf(out, "%s %s\n", symSuccess(), msg.ValidProject)

	name, opts, err := collectOptions(cmd, cfg, interactive)
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			_, _ = fmt.Fprintln(out, msg.Cancelled)
			return nil
		}
		return err
	}

	m, err := scaffold.NewModule(root, name)
	if err != nil {
		return err
	}

	if opts.Layout {
		warnLayoutSupport(out, root, msg, logger)
	}

	deps, err := newDependencies(cfg, logger)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "\n%s\n", cliPrimary.Bold(true).Render(fmt.Sprintf(msg.CreatingModule, m.Name)))

	hm := ui.NewHeadlessManager()
	if !interactive {
		hm.ForceHeadless(true)
	}
	progress := ui.NewProgressWriter(ui.DefaultTheme(), hm, out)
	reporter := newConsoleReporter(out, progress, msg, interactive)

	orch := scaffold.NewOrchestrator(deps.Renderer, deps.Generator,
		scaffold.WithReporter(reporter),
		scaffold.WithLogger(deps.Logger),
		scaffold.WithAPIPrefix(cfg.APIPrefix),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if _, err := orch.Run(ctx, m, opts); err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	return nil
}

// collectOptions resolves the module name and artifact options. Values
// start from the configuration defaults, explicit flags override them, and
// in interactive mode the wizard asks every question left open, using the
// resolved values as preselected answers.
func collectOptions(cmd *cobra.Command, cfg *config.Config, interactive bool) (string, scaffold.Options, error) {
	name := getStringFlag(cmd, "name")
	opts := scaffold.Options{
		Service: cfg.Defaults.Service,
		Guard:   cfg.Defaults.Guard,
		Layout:  cfg.Defaults.Layout,
		Models:  cfg.Defaults.Models,
	}
	flags := cmd.Flags()
	if flags.Changed("service") {
		opts.Service = getBoolFlag(cmd, "service")
	}
	if flags.Changed("guard") {
		opts.Guard = getBoolFlag(cmd, "guard")
	}
	if flags.Changed("layout") {
		opts.Layout = getBoolFlag(cmd, "layout")
	}
	if flags.Changed("models") {
		opts.Models = getBoolFlag(cmd, "models")
	}

	if !interactive {
		if name == "" {
			return "", opts, ErrNameRequired
		}
		return name, opts, nil
	}

	questions := wizard.DefaultQuestions(config.ArtifactDefaults{
		Service: opts.Service,
		Guard:   opts.Guard,
		Layout:  opts.Layout,
		Models:  opts.Models,
	})
	preset := &wizard.WizardResult{
		ModuleName: name,
		Service:    opts.Service,
		Guard:      opts.Guard,
		Layout:     opts.Layout,
		Models:     opts.Models,
	}
	result, err := runWizard(wizard.Prefilled(questions, name), preset, wizard.Options{
		Locale:     cfg.Locale,
		Accessible: os.Getenv("ACCESSIBLE") != "",
		Input:      cmd.InOrStdin(),
		Output:     cmd.OutOrStdout(),
	})
	if err != nil {
		return "", opts, err
	}

	return result.ModuleName, scaffold.Options{
		Service: result.Service,
		Guard:   result.Guard,
		Layout:  result.Layout,
		Models:  result.Models,
	}, nil
}

// warnLayoutSupport prints a warning when the project's Angular CLI is
// older than the first release accepting --type=layout. Detection failures
// are only logged.
func warnLayoutSupport(out io.Writer, root string, msg messages, logger *slog.Logger) {
	v, err := project.DetectAngularVersion(root)
	if err != nil {
		logger.Debug("angular version not detected", "error", err)
		return
	}
	logger.Debug("angular version detected", "version", v.String())
	if !project.SupportsLayoutType(v) {
		_, _ = fmt.Fprintf(out, "%s %s\n", symWarning(), cliWarn.Render(fmt.Sprintf(msg.LayoutOldCLI, v.String())))
	}
}

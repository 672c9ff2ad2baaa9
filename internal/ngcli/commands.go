package ngcli

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path"
	"strconv"
	"strings"

	"github.com/modu-ai/modularizer/internal/defs"
)

// DefaultBinary is the Angular CLI executable name.
const DefaultBinary = "ng"

// Command is one Angular CLI invocation.
type Command struct {
	Binary string
	Args   []string
}

// String renders the command line as it would be typed.
func (c Command) String() string {
	return strings.TrimSpace(c.Binary + " " + strings.Join(c.Args, " "))
}

// Generator builds and runs the Angular CLI commands used by modularizer.
type Generator struct {
	runner    Runner
	binary    string
	skipTests bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithBinary overrides the Angular CLI executable. Empty keeps DefaultBinary.
func WithBinary(binary string) Option {
	return func(g *Generator) {
		if binary != "" {
			g.binary = binary
		}
	}
}

// WithSkipTests controls the --skip-tests flag passed to every command.
func WithSkipTests(skip bool) Option {
	return func(g *Generator) {
		g.skipTests = skip
	}
}

// NewGenerator creates a Generator that executes commands through runner.
func NewGenerator(runner Runner, opts ...Option) *Generator {
	g := &Generator{
		runner:    runner,
		binary:    DefaultBinary,
		skipTests: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ServiceCommand returns `ng generate service <m>/services/<m>`.
func (g *Generator) ServiceCommand(module string) Command {
	target := path.Join(module, defs.ServicesDir, module)
	return g.command("generate", "service", target, g.skipTestsFlag())
}

// GuardCommand returns `ng generate guard <m>/services/<m>`.
func (g *Generator) GuardCommand(module string) Command {
	target := path.Join(module, defs.ServicesDir, module)
	return g.command("generate", "guard", target, g.skipTestsFlag())
}

// LayoutCommand returns `ng generate component <m>/layouts/<m> --type=layout`.
func (g *Generator) LayoutCommand(module string) Command {
	target := path.Join(module, defs.LayoutsDir, module)
	return g.command("generate", "component", target, "--type=layout", g.skipTestsFlag(), "--flat=true")
}

func (g *Generator) skipTestsFlag() string {
	return "--skip-tests=" + strconv.FormatBool(g.skipTests)
}

func (g *Generator) command(args ...string) Command {
	return Command{Binary: g.binary, Args: args}
}

// Run executes cmd in the project root. A multi-word Binary such as
// "npx ng" is split into the executable and leading arguments. It returns a
// *ToolError when the process fails to start or exits non-zero.
func (g *Generator) Run(ctx context.Context, projectRoot string, cmd Command) error {
	name, args := cmd.Binary, cmd.Args
	if fields := strings.Fields(cmd.Binary); len(fields) > 1 {
		name = fields[0]
		args = append(fields[1:], cmd.Args...)
	}
	res := g.runner.Run(ctx, projectRoot, name, args...)
	if res.OK() {
		return nil
	}

	wrapped := ErrToolFailed
	if res.Err != nil {
		wrapped = res.Err
		if errors.Is(res.Err, exec.ErrNotFound) {
			wrapped = fmt.Errorf("%w: %s", ErrToolNotFound, cmd.Binary)
		}
	}
	return &ToolError{
		Command:  cmd,
		ExitCode: res.ExitCode,
		Stderr:   res.Stderr,
		Wrapped:  wrapped,
	}
}

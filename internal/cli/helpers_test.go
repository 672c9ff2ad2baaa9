package cli

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modu-ai/modularizer/internal/cli/wizard"
	"github.com/modu-ai/modularizer/internal/ngcli"
)

// newAngularProject creates a minimal Angular workspace whose package.json
// pins @angular/cli to cliVersion. An empty cliVersion omits package.json.
func newAngularProject(t *testing.T, cliVersion string) string {
	t.Helper()
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "angular.json"), "{}")
	if err := os.MkdirAll(filepath.Join(root, "src", "app"), 0o755); err != nil {
		t.Fatalf("mkdir src/app: %v", err)
	}
	if cliVersion != "" {
		writeTestFile(t, filepath.Join(root, "package.json"),
			`{"devDependencies": {"@angular/cli": "`+cliVersion+`"}}`)
	}
	return root
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// fakeRunner stands in for the Angular CLI. Schematics listed in fail exit
// 1; a successful service schematic creates an empty service file the way
// ng does.
type fakeRunner struct {
	fail  map[string]bool
	calls []string
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) ngcli.Result {
	f.calls = append(f.calls, ngcli.Command{Binary: name, Args: args}.String())
	var schematic, target string
	for i, a := range args {
		if a == "generate" && i+2 < len(args) {
			schematic, target = args[i+1], args[i+2]
			break
		}
	}
	if f.fail[schematic] {
		return ngcli.Result{ExitCode: 1, Stderr: "schematic " + schematic + " failed"}
	}
	if schematic == "service" {
		parts := strings.Split(target, "/")
		file := filepath.Join(dir, "src", "app", filepath.Join(parts...)+".service.ts")
		_ = os.WriteFile(file, []byte("// generated\n"), 0o644)
	}
	return ngcli.Result{}
}

// stubEnvironment makes runs non-interactive and routes ng calls to a
// fakeRunner for the duration of the test.
func stubEnvironment(t *testing.T) *fakeRunner {
	t.Helper()
	runner := &fakeRunner{fail: map[string]bool{}}

	origRunner, origTerm, origWizard := newRunner, stdinIsTerminal, runWizard
	newRunner = func(*slog.Logger) ngcli.Runner { return runner }
	stdinIsTerminal = func() bool { return false }
	t.Cleanup(func() {
		newRunner, stdinIsTerminal, runWizard = origRunner, origTerm, origWizard
	})
	return runner
}

// stubWizard makes runs interactive with fn answering the prompts.
func stubWizard(t *testing.T, fn func([]wizard.Question, *wizard.WizardResult, wizard.Options) (*wizard.WizardResult, error)) {
	t.Helper()
	stdinIsTerminal = func() bool { return true }
	runWizard = fn
}

// executeCommand runs a fresh command tree with args and returns stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

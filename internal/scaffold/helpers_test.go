package scaffold

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modu-ai/modularizer/internal/ngcli"
	"github.com/modu-ai/modularizer/internal/template"
)

// newAngularRoot creates a minimal Angular workspace in a temp directory.
func newAngularRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "angular.json"), []byte("{}"), 0o644); err != nil {
		t.Fatalf("write angular.json: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(root, "src", "app"), 0o755); err != nil {
		t.Fatalf("mkdir src/app: %v", err)
	}
	return root
}

func mustModule(t *testing.T, root, name string) Module {
	t.Helper()
	m, err := NewModule(root, name)
	if err != nil {
		t.Fatalf("NewModule(%q) error: %v", name, err)
	}
	return m
}

func mustRenderer(t *testing.T) template.Renderer {
	t.Helper()
	r, err := template.NewEmbeddedRenderer()
	if err != nil {
		t.Fatalf("NewEmbeddedRenderer error: %v", err)
	}
	return r
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// fakeRunner stands in for the Angular CLI. Kinds listed in fail exit 1.
type fakeRunner struct {
	fail  map[string]bool
	calls []string
}

func (f *fakeRunner) Run(_ context.Context, _ string, name string, args ...string) ngcli.Result {
	kind := ""
	if len(args) > 1 {
		kind = args[1]
	}
	f.calls = append(f.calls, ngcli.Command{Binary: name, Args: args}.String())
	if f.fail[kind] {
		return ngcli.Result{ExitCode: 1, Stderr: "An unhandled exception occurred"}
	}
	return ngcli.Result{}
}

// recordingReporter captures reporter callbacks in order.
type recordingReporter struct {
	events  []string
	summary *Report
}

func (r *recordingReporter) StepStarted(step Step) {
	r.events = append(r.events, "start:"+string(step))
}

func (r *recordingReporter) StepDetail(step Step, detail string) {
	r.events = append(r.events, "detail:"+string(step)+":"+detail)
}

func (r *recordingReporter) StepSucceeded(step Step, _ []string) {
	r.events = append(r.events, "ok:"+string(step))
}

func (r *recordingReporter) StepFailed(step Step, _ error) {
	r.events = append(r.events, "fail:"+string(step))
}

func (r *recordingReporter) Summary(report *Report) {
	r.events = append(r.events, "summary")
	r.summary = report
}

package scaffold

import (
	"context"
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/modu-ai/modularizer/internal/core/project"
	"github.com/modu-ai/modularizer/internal/ngcli"
)

var allOptions = Options{Service: true, Guard: true, Layout: true, Models: true}

func newTestOrchestrator(t *testing.T, runner *fakeRunner, rep Reporter) *Orchestrator {
	t.Helper()
	gen := ngcli.NewGenerator(runner)
	return NewOrchestrator(mustRenderer(t), gen, WithReporter(rep))
}

func TestOrchestratorRun_AllArtifacts(t *testing.T) {
	root := newAngularRoot(t)
	m := mustModule(t, root, "order")
	runner := &fakeRunner{}
	rep := &recordingReporter{}

	report, err := newTestOrchestrator(t, runner, rep).Run(context.Background(), m, allOptions)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	wantTrace := []State{
		StateIdle, StateValidated, StateOptionsCollected, StateStructureCreated,
		StateServiceDone, StateGuardDone, StateLayoutDone, StateModelsDone,
		StateSummarized, StateTerminal,
	}
	if !reflect.DeepEqual(report.Trace, wantTrace) {
		t.Errorf("Trace = %v, want %v", report.Trace, wantTrace)
	}

	wantCalls := []string{
		"ng generate service order/services/order --skip-tests=true",
		"ng generate guard order/services/order --skip-tests=true",
		"ng generate component order/layouts/order --type=layout --skip-tests=true --flat=true",
	}
	if !reflect.DeepEqual(runner.calls, wantCalls) {
		t.Errorf("calls = %v, want %v", runner.calls, wantCalls)
	}

	service := readFile(t, m.ServiceFile())
	if !strings.Contains(service, "export class OrderService") {
		t.Error("service file should contain the CRUD template")
	}
	model := readFile(t, m.ModelFile())
	if !strings.Contains(model, "export enum OrderStatus") {
		t.Error("model file should contain the status enum")
	}
	if got := readFile(t, m.IndexFile()); got != "export * from './order.model';\n" {
		t.Errorf("index = %q", got)
	}

	if len(report.Failed()) != 0 {
		t.Errorf("unexpected failures: %+v", report.Failed())
	}

	wantEvents := []string{
		"start:structure", "ok:structure",
		"start:service", "detail:service:" + wantCalls[0], "ok:service",
		"start:guard", "detail:guard:" + wantCalls[1], "ok:guard",
		"start:layout", "detail:layout:" + wantCalls[2], "ok:layout",
		"start:models", "ok:models",
		"summary",
	}
	if !reflect.DeepEqual(rep.events, wantEvents) {
		t.Errorf("events = %v, want %v", rep.events, wantEvents)
	}
	if rep.summary != report {
		t.Error("Summary should receive the run report")
	}
}

func TestOrchestratorRun_GuardFailureContinues(t *testing.T) {
	root := newAngularRoot(t)
	m := mustModule(t, root, "order")
	runner := &fakeRunner{fail: map[string]bool{"guard": true}}
	rep := &recordingReporter{}

	report, err := newTestOrchestrator(t, runner, rep).Run(context.Background(), m, Options{Guard: true, Layout: true, Models: true})
	if err != nil {
		t.Fatalf("guard failure must not be fatal, got %v", err)
	}

	guard, ran := report.Result(KindGuard)
	if !ran || guard.OK() {
		t.Fatalf("guard result = %+v, want failure", guard)
	}
	if !errors.Is(guard.Err, ErrArtifact) || !errors.Is(guard.Err, ngcli.ErrToolFailed) {
		t.Errorf("guard error = %v, want ErrArtifact wrapping ErrToolFailed", guard.Err)
	}

	if layout, ran := report.Result(KindLayout); !ran || !layout.OK() {
		t.Errorf("layout should still run and succeed, got ran=%v %+v", ran, layout)
	}
	if models, ran := report.Result(KindModels); !ran || !models.OK() {
		t.Errorf("models should still run and succeed, got ran=%v %+v", ran, models)
	}
	if _, err := os.Stat(m.ModelFile()); err != nil {
		t.Errorf("model file should exist: %v", err)
	}
	if !containsEvent(rep.events, "fail:guard") {
		t.Errorf("expected fail:guard event, got %v", rep.events)
	}
}

func TestOrchestratorRun_ServiceToolFailureSkipsWrite(t *testing.T) {
	root := newAngularRoot(t)
	m := mustModule(t, root, "order")
	runner := &fakeRunner{fail: map[string]bool{"service": true}}

	report, err := newTestOrchestrator(t, runner, nil).Run(context.Background(), m, Options{Service: true})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	res, _ := report.Result(KindService)
	if res.OK() {
		t.Fatal("service should fail when the CLI fails")
	}
	if _, err := os.Stat(m.ServiceFile()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("service file should not be written, stat err = %v", err)
	}
}

func TestOrchestratorRun_SkipsDisabledArtifacts(t *testing.T) {
	root := newAngularRoot(t)
	m := mustModule(t, root, "user-profile")
	runner := &fakeRunner{}

	report, err := newTestOrchestrator(t, runner, nil).Run(context.Background(), m, Options{Models: true})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if len(runner.calls) != 0 {
		t.Errorf("no CLI calls expected, got %v", runner.calls)
	}
	wantTrace := []State{
		StateIdle, StateValidated, StateOptionsCollected, StateStructureCreated,
		StateModelsDone, StateSummarized, StateTerminal,
	}
	if !reflect.DeepEqual(report.Trace, wantTrace) {
		t.Errorf("Trace = %v, want %v", report.Trace, wantTrace)
	}
	res, _ := report.Result(KindModels)
	want := []string{
		"src/app/user-profile/models/user-profile.model.ts",
		"src/app/user-profile/models/index.ts",
	}
	if !reflect.DeepEqual(res.Files, want) {
		t.Errorf("Files = %v, want %v", res.Files, want)
	}
}

func TestOrchestratorRun_OverwritesExistingFiles(t *testing.T) {
	root := newAngularRoot(t)
	m := mustModule(t, root, "order")
	if _, err := CreateStructure(m); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(m.ModelFile(), []byte("// hand edited\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	report, err := newTestOrchestrator(t, &fakeRunner{}, nil).Run(context.Background(), m, Options{Models: true})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if strings.Contains(readFile(t, m.ModelFile()), "hand edited") {
		t.Error("existing model file should be overwritten")
	}
	overwritten := report.Overwritten()
	if len(overwritten) != 1 || overwritten[0] != "src/app/order/models/order.model.ts" {
		t.Errorf("Overwritten() = %v", overwritten)
	}
}

func TestOrchestratorRun_StructureFailureIsFatal(t *testing.T) {
	root := newAngularRoot(t)
	m := mustModule(t, root, "order")
	if err := os.WriteFile(m.Path(), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	runner := &fakeRunner{}
	rep := &recordingReporter{}

	report, err := newTestOrchestrator(t, runner, rep).Run(context.Background(), m, allOptions)
	if !errors.Is(err, ErrStructure) {
		t.Fatalf("expected ErrStructure, got %v", err)
	}
	if len(report.Artifacts) != 0 || len(runner.calls) != 0 {
		t.Error("no artifact step should run after a structure failure")
	}
	if containsEvent(rep.events, "summary") {
		t.Error("summary should not be reported after a fatal error")
	}
}

func TestOrchestratorRun_InvalidRoot(t *testing.T) {
	m := mustModule(t, t.TempDir(), "order")

	_, err := newTestOrchestrator(t, &fakeRunner{}, nil).Run(context.Background(), m, allOptions)
	if !errors.Is(err, project.ErrNotAngularProject) {
		t.Errorf("expected ErrNotAngularProject, got %v", err)
	}
	if dirExists(m.Path()) {
		t.Error("module directory should not be created for an invalid root")
	}
}

func TestOrchestratorRun_Cancelled(t *testing.T) {
	root := newAngularRoot(t)
	m := mustModule(t, root, "order")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestOrchestrator(t, &fakeRunner{}, nil).Run(ctx, m, allOptions)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestOrchestratorRun_APIPrefix(t *testing.T) {
	root := newAngularRoot(t)
	m := mustModule(t, root, "order")
	o := NewOrchestrator(mustRenderer(t), ngcli.NewGenerator(&fakeRunner{}), WithAPIPrefix("/v2"))

	if _, err := o.Run(context.Background(), m, Options{Service: true}); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !strings.Contains(readFile(t, m.ServiceFile()), "'/v2/order'") {
		t.Error("service should use the configured API prefix")
	}
}

func TestStateString(t *testing.T) {
	if StateGuardDone.String() != "guard-done" {
		t.Errorf("String() = %q", StateGuardDone.String())
	}
	if State(99).String() != "unknown" {
		t.Errorf("String() = %q", State(99).String())
	}
}

func containsEvent(events []string, want string) bool {
	for _, e := range events {
		if e == want {
			return true
		}
	}
	return false
}

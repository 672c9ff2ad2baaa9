// Package ngcli delegates artifact generation to the Angular CLI.
// Commands run synchronously in the project root with their output
// suppressed; a non-zero exit status is reported as a ToolError.
package ngcli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Result is the outcome of one external process invocation.
type Result struct {
	ExitCode int
	Stderr   string
	Duration time.Duration
	Err      error // set when the process could not be started or was killed
}

// OK reports whether the process ran and exited with status zero.
func (r Result) OK() bool {
	return r.Err == nil && r.ExitCode == 0
}

// Runner executes an external command and waits for it to finish.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) Result
}

// ExecRunner runs commands with os/exec. Stdout is discarded and stderr is
// captured only so failures can be explained.
type ExecRunner struct {
	logger *slog.Logger
}

// NewExecRunner creates an ExecRunner. A nil logger discards log output.
func NewExecRunner(logger *slog.Logger) *ExecRunner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ExecRunner{logger: logger}
}

// Run executes name with args in dir.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) Result {
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = io.Discard
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	r.logger.Debug("running external command", "dir", dir, "command", name+" "+strings.Join(args, " "))

	err := cmd.Run()
	res := Result{
		Stderr:   strings.TrimSpace(stderr.String()),
		Duration: time.Since(start),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr) && ctx.Err() == nil:
		res.ExitCode = exitErr.ExitCode()
	default:
		res.ExitCode = -1
		res.Err = err
	}

	r.logger.Debug("external command finished",
		"command", name,
		"exitCode", res.ExitCode,
		"duration", res.Duration,
	)
	return res
}

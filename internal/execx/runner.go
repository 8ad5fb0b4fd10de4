// Package execx provides the external command capability.
//
// Every process venvman spawns (pyenv shim, the interpreter itself,
// python -m venv, pip) goes through the Runner interface, so command
// behavior can be simulated deterministically in tests.
package execx

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
)

// Result holds the outcome of a command invocation.
type Result struct {
	// Stdout is the captured standard output, trailing whitespace trimmed.
	Stdout string

	// Stderr is the captured standard error, trailing whitespace trimmed.
	Stderr string

	// ExitCode is the process exit code. Zero means success.
	ExitCode int
}

// Ok reports whether the command exited successfully.
func (r Result) Ok() bool {
	return r.ExitCode == 0
}

// Runner runs external commands and resolves binaries on PATH.
type Runner interface {
	// Run executes a command and captures its output. A non-zero exit is
	// reported through Result.ExitCode, not through err; err is reserved
	// for failures to start the process at all.
	Run(ctx context.Context, name string, args ...string) (Result, error)

	// LookPath searches for a binary on the process search path.
	LookPath(name string) (string, error)
}

// RealRunner implements Runner using os/exec.
type RealRunner struct{}

// NewRealRunner creates a new RealRunner.
func NewRealRunner() *RealRunner {
	return &RealRunner{}
}

// Run executes a command, blocking until it completes.
func (r *RealRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		Stdout: strings.TrimRight(stdout.String(), "\n"),
		Stderr: strings.TrimRight(stderr.String(), "\n"),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, err
	}

	return res, nil
}

// LookPath searches for a binary on the process search path.
func (r *RealRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

package execx

import (
	"context"
	"fmt"
	"strings"
)

// FakeRunner implements Runner with scripted responses for testing,
// following the same pattern as clock.FakeClock.
type FakeRunner struct {
	// Responses maps a command line (name and args joined by spaces) to
	// its scripted result. Commands without an entry succeed with empty
	// output unless FailUnknown is set.
	Responses map[string]Result

	// Binaries maps binary names to their fake PATH locations. LookPath
	// fails for names not present.
	Binaries map[string]string

	// OnRun, if set, is invoked for every Run call. It can materialize
	// filesystem side effects (e.g. a fake venv tree).
	OnRun func(name string, args []string) error

	// FailUnknown makes Run return a start error for unscripted commands.
	FailUnknown bool

	// Calls records every command line passed to Run, in order.
	Calls []string
}

// NewFakeRunner creates an empty FakeRunner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		Responses: make(map[string]Result),
		Binaries:  make(map[string]string),
	}
}

// Run returns the scripted result for the command line.
func (r *FakeRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	line := strings.Join(append([]string{name}, args...), " ")
	r.Calls = append(r.Calls, line)

	if r.OnRun != nil {
		if err := r.OnRun(name, args); err != nil {
			return Result{}, err
		}
	}

	if res, ok := r.Responses[line]; ok {
		return res, nil
	}
	if r.FailUnknown {
		return Result{}, fmt.Errorf("no scripted response for %q", line)
	}
	return Result{}, nil
}

// LookPath returns the fake location for a scripted binary.
func (r *FakeRunner) LookPath(name string) (string, error) {
	if path, ok := r.Binaries[name]; ok {
		return path, nil
	}
	return "", fmt.Errorf("%s: executable file not found in $PATH", name)
}

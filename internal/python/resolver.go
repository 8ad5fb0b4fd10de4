// Package python resolves Python interpreters on the host.
//
// Resolution order for a requested version:
//  1. pyenv shim, best effort (any failure is silently ignored)
//  2. python<version> on PATH
//  3. python3 on PATH
//
// The python3 fallback always runs, even when an explicit version request
// went unmatched. Callers that need strict version enforcement must compare
// the resolved version against the request themselves; the CLI prints the
// resolved version so a mismatch is visible.
package python

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cshenry/venvman/internal/execx"
)

// ErrNotFound indicates no usable interpreter exists on the host.
var ErrNotFound = errors.New("no suitable python interpreter found")

// ErrUnusable indicates the resolved interpreter cannot report its
// own version.
var ErrUnusable = errors.New("interpreter cannot report its version")

// versionProbe asks an interpreter for its own major.minor.
const versionProbe = "import sys; print(f'{sys.version_info.major}.{sys.version_info.minor}')"

// Version is a major.minor interpreter version.
type Version struct {
	Major int
	Minor int
}

// String renders the version as "major.minor".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// ParseVersion parses a "major.minor" string.
func ParseVersion(s string) (Version, error) {
	major, minor, ok := strings.Cut(strings.TrimSpace(s), ".")
	if !ok {
		return Version{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}
	maj, err := strconv.Atoi(major)
	if err != nil {
		return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
	}
	min, err := strconv.Atoi(minor)
	if err != nil {
		return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
	}
	return Version{Major: maj, Minor: min}, nil
}

// Resolver locates interpreter binaries and introspects their versions.
type Resolver struct {
	runner execx.Runner

	// statFn checks that a pyenv-reported path exists on disk.
	// Overridable in tests.
	statFn func(string) (os.FileInfo, error)
}

// NewResolver creates a Resolver using the given runner.
func NewResolver(runner execx.Runner) *Resolver {
	return &Resolver{runner: runner, statFn: os.Stat}
}

// Resolve selects a concrete interpreter binary for an optional requested
// version ("" means no preference). Returns ErrNotFound if the chain is
// exhausted.
func (r *Resolver) Resolve(ctx context.Context, requested string) (string, error) {
	if requested != "" {
		if path := r.fromPyenv(ctx, requested); path != "" {
			return path, nil
		}
		if path, err := r.runner.LookPath("python" + requested); err == nil {
			return path, nil
		}
	}

	path, err := r.runner.LookPath("python3")
	if err != nil {
		return "", ErrNotFound
	}
	return path, nil
}

// fromPyenv asks the pyenv shim for a versioned interpreter. Every failure
// mode (pyenv absent, non-zero exit, reported path missing) returns "".
func (r *Resolver) fromPyenv(ctx context.Context, requested string) string {
	if _, err := r.runner.LookPath("pyenv"); err != nil {
		return ""
	}
	res, err := r.runner.Run(ctx, "pyenv", "which", "python"+requested)
	if err != nil || !res.Ok() {
		return ""
	}
	path := strings.TrimSpace(res.Stdout)
	if path == "" {
		return ""
	}
	if _, err := r.statFn(path); err != nil {
		return ""
	}
	return path
}

// IntrospectVersion invokes the interpreter to report its own major.minor.
// A failure here is fatal for the caller: an interpreter that cannot report
// its version cannot be trusted to build an environment.
func (r *Resolver) IntrospectVersion(ctx context.Context, interpreter string) (Version, error) {
	res, err := r.runner.Run(ctx, interpreter, "-c", versionProbe)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %v", ErrUnusable, err)
	}
	if !res.Ok() {
		return Version{}, fmt.Errorf("%w: %s exited %d: %s", ErrUnusable, interpreter, res.ExitCode, res.Stderr)
	}
	v, err := ParseVersion(res.Stdout)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %v", ErrUnusable, err)
	}
	return v, nil
}

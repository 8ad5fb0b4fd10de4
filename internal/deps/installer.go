// Package deps installs project dependencies into an environment using the
// environment's own pip.
//
// Two manifests are recognized: requirements.txt (pip install -r) and
// pyproject.toml (pip install -e, editable). Inside a create this step is
// advisory: failures are reported back as a warning and never change the
// command's outcome.
package deps

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/cshenry/venvman/internal/execx"
	"github.com/cshenry/venvman/internal/fsops"
)

// ErrInstallFailed indicates pip exited non-zero for at least one manifest.
var ErrInstallFailed = errors.New("dependency installation failed")

// Installer runs pip installs against an environment.
type Installer struct {
	fs     fsops.FS
	runner execx.Runner
}

// NewInstaller creates an Installer.
func NewInstaller(fs fsops.FS, runner execx.Runner) *Installer {
	return &Installer{fs: fs, runner: runner}
}

// Install installs dependencies for repoDir into the environment at envDir.
// Returns the manifests that were installed. With no manifest present it is
// a successful no-op; with a manifest present and pip failing it returns
// ErrInstallFailed carrying pip's stderr.
func (i *Installer) Install(ctx context.Context, envDir, repoDir string) ([]string, error) {
	pip := filepath.Join(envDir, "bin", "pip")

	var installed []string
	var failures []string

	requirements := filepath.Join(repoDir, "requirements.txt")
	if ok, _ := i.fs.Exists(requirements); ok {
		res, err := i.runner.Run(ctx, pip, "install", "-r", requirements)
		if err != nil {
			failures = append(failures, fmt.Sprintf("requirements.txt: %v", err))
		} else if !res.Ok() {
			failures = append(failures, fmt.Sprintf("requirements.txt: %s", res.Stderr))
		} else {
			installed = append(installed, "requirements.txt")
		}
	}

	pyproject := filepath.Join(repoDir, "pyproject.toml")
	if ok, _ := i.fs.Exists(pyproject); ok {
		res, err := i.runner.Run(ctx, pip, "install", "-e", repoDir)
		if err != nil {
			failures = append(failures, fmt.Sprintf("pyproject.toml: %v", err))
		} else if !res.Ok() {
			failures = append(failures, fmt.Sprintf("pyproject.toml: %s", res.Stderr))
		} else {
			installed = append(installed, "pyproject.toml")
		}
	}

	if len(failures) > 0 {
		return installed, fmt.Errorf("%w: %s", ErrInstallFailed, joinFailures(failures))
	}
	return installed, nil
}

func joinFailures(failures []string) string {
	out := failures[0]
	for _, f := range failures[1:] {
		out += "; " + f
	}
	return out
}

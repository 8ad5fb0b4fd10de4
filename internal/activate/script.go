// Package activate generates the repository-local activation script.
//
// The script is a fixed contract relied on by external tooling: it must be
// POSIX-shell sourceable, refuse to run when .venv is not a symlink or the
// environment's activate file is missing, and print the resolved target on
// success. It is regenerated unconditionally on every successful create.
package activate

import (
	"fmt"
	"path/filepath"

	"github.com/cshenry/venvman/internal/fsops"
)

// ScriptName is the file name written at the repository root.
const ScriptName = "activate.sh"

// script is the full generated content. The failure branches use
// "return 1 2>/dev/null || exit 1" so a sourced (interactive) shell is not
// terminated while a non-interactive one still exits non-zero.
const script = `#!/usr/bin/env bash
# Source this file to activate the project environment.
# Generated by venvman; do not edit.

SCRIPT_DIR="$(cd "$(dirname "${BASH_SOURCE[0]}")" && pwd)"

if [ ! -L "$SCRIPT_DIR/.venv" ]; then
  echo "Error: $SCRIPT_DIR/.venv is not a symlink." >&2
  echo "Re-run 'venvman create' to set up the environment." >&2
  return 1 2>/dev/null || exit 1
fi

if [ ! -f "$SCRIPT_DIR/.venv/bin/activate" ]; then
  echo "Error: $SCRIPT_DIR/.venv/bin/activate not found." >&2
  echo "The environment may have been deleted. Re-run 'venvman create'." >&2
  return 1 2>/dev/null || exit 1
fi

# shellcheck disable=SC1090
source "$SCRIPT_DIR/.venv/bin/activate"
echo "Activated $(readlink "$SCRIPT_DIR/.venv")"
`

// Write places the activation script at the repository root, executable,
// overwriting any previous version.
func Write(fs fsops.FS, repoDir string) (string, error) {
	path := filepath.Join(repoDir, ScriptName)
	if err := fs.AtomicWrite(path, []byte(script), 0755); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// Content returns the exact script content, for tests pinning the contract.
func Content() string {
	return script
}

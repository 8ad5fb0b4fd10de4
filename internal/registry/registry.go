// Package registry persists the tracked-projects file.
//
// The registry maps project names to their repository path and associated
// environment name. It is advisory bookkeeping: environments and links are
// authoritative on disk, and the registry is only used by the tracking
// commands (projects, refresh, install-deps). The file is plain JSON,
// written atomically, with keys sorted for stable diffs.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/cshenry/venvman/internal/fsops"
)

// Project is one tracked project.
type Project struct {
	// Path is the project's repository directory ("" when unknown,
	// e.g. after bootstrap).
	Path string `json:"path"`

	// Env is the associated environment name ("" when none).
	Env string `json:"env"`

	// LastDepsInstall is the time dependencies were last installed
	// successfully (nil when never).
	LastDepsInstall *time.Time `json:"last_deps_install"`
}

// Registry loads and saves the tracked-projects map.
type Registry interface {
	// Load reads the registry. A missing file yields an empty map.
	Load() (map[string]Project, error)

	// Save writes the registry atomically.
	Save(projects map[string]Project) error
}

// FileRegistry implements Registry against a JSON file.
type FileRegistry struct {
	fs   fsops.FS
	path string
}

// NewFileRegistry creates a FileRegistry at the given path.
func NewFileRegistry(fs fsops.FS, path string) *FileRegistry {
	return &FileRegistry{fs: fs, path: path}
}

// Load reads the registry file.
func (r *FileRegistry) Load() (map[string]Project, error) {
	data, err := r.fs.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]Project{}, nil
		}
		return nil, fmt.Errorf("failed to read registry: %w", err)
	}

	var projects map[string]Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("registry %s contains invalid JSON: %w", r.path, err)
	}
	if projects == nil {
		projects = map[string]Project{}
	}
	return projects, nil
}

// Save writes the registry atomically. encoding/json sorts map keys, so
// the file stays diff-stable across saves.
func (r *FileRegistry) Save(projects map[string]Project) error {
	data, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode registry: %w", err)
	}
	data = append(data, '\n')

	if err := r.fs.AtomicWrite(r.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write registry: %w", err)
	}
	return nil
}

// Package store owns the centralized environment directory.
//
// Each environment is one directory under the store root, named
// <project>-py<major>.<minor>. The store knows naming, existence,
// enumeration, creation (via python -m venv), deletion, and metadata
// extraction. It never inspects or repairs environment contents.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cshenry/venvman/internal/execx"
	"github.com/cshenry/venvman/internal/fsops"
	"github.com/cshenry/venvman/internal/python"
)

// Environment represents one centrally-stored interpreter environment.
type Environment struct {
	// Name is unique within the store, format <project>-py<major>.<minor>.
	Name string `json:"name"`

	// Path is the absolute directory under the store root.
	Path string `json:"path"`

	// Project is the project part parsed from Name ("" if the name does
	// not follow the naming scheme).
	Project string `json:"project,omitempty"`

	// Version is the python version parsed from Name (zero if unknown).
	Version python.Version `json:"-"`
}

// Metadata holds on-demand filesystem metadata for an environment.
type Metadata struct {
	// SizeBytes is the recursive sum of file sizes under the directory.
	SizeBytes int64

	// CreatedAt is the environment directory's own timestamp
	// (zero if it could not be determined).
	CreatedAt time.Time

	// Interpreter is the original interpreter path recovered from the
	// environment's pyvenv.cfg home entry ("" if missing).
	Interpreter string
}

// Store manages environments under the store root.
type Store interface {
	// Root returns the store root directory.
	Root() string

	// EnsureRoot creates the root (with parents) if absent.
	EnsureRoot() error

	// List returns all environments sorted by name. A missing root
	// yields an empty list, not an error.
	List() ([]Environment, error)

	// Exists checks whether an environment with the given name exists.
	Exists(name string) (bool, error)

	// PathFor returns the directory an environment name maps to.
	// Pure computation, no I/O.
	PathFor(name string) string

	// Create builds the environment with python -m venv. If the target
	// directory already exists this is a no-op success; existing contents
	// are never inspected. The second return reports whether a new
	// environment was actually created.
	Create(ctx context.Context, name, interpreter string) (Environment, bool, error)

	// Delete recursively removes an environment.
	Delete(name string) error

	// Metadata gathers size, creation time, and interpreter path for an
	// environment. Missing optional fields are zero values, not errors.
	Metadata(name string) (*Metadata, error)

	// Resolve maps a project name or exact environment name to a single
	// environment. See errors.go for the NotFound/Ambiguous contract.
	Resolve(ref string, exact bool) (Environment, error)
}

// FileStore implements Store against a real directory tree.
type FileStore struct {
	fs     fsops.FS
	runner execx.Runner
	root   string
}

// NewFileStore creates a FileStore rooted at the given directory.
// The root is threaded in explicitly so tests can substitute a
// temporary one without touching process environment variables.
func NewFileStore(fs fsops.FS, runner execx.Runner, root string) *FileStore {
	return &FileStore{fs: fs, runner: runner, root: root}
}

// Root returns the store root directory.
func (s *FileStore) Root() string {
	return s.root
}

// EnsureRoot creates the store root if it does not exist.
func (s *FileStore) EnsureRoot() error {
	if err := s.fs.MkdirAll(s.root, 0755); err != nil {
		return fmt.Errorf("failed to create store root %s: %w", s.root, err)
	}
	return nil
}

// PathFor returns the directory for an environment name.
func (s *FileStore) PathFor(name string) string {
	return filepath.Join(s.root, name)
}

// List returns all environments sorted by name.
func (s *FileStore) List() ([]Environment, error) {
	entries, err := s.fs.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return []Environment{}, nil
		}
		return nil, fmt.Errorf("failed to read store root: %w", err)
	}

	envs := make([]Environment, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		envs = append(envs, s.environment(entry.Name()))
	}

	sort.Slice(envs, func(i, j int) bool { return envs[i].Name < envs[j].Name })
	return envs, nil
}

// Exists checks whether an environment with the given name exists.
func (s *FileStore) Exists(name string) (bool, error) {
	if err := s.fs.ValidateIdentifier(name); err != nil {
		return false, fmt.Errorf("invalid environment name: %w", err)
	}
	return s.fs.Exists(s.PathFor(name))
}

// Create builds the environment with python -m venv, idempotently.
func (s *FileStore) Create(ctx context.Context, name, interpreter string) (Environment, bool, error) {
	if err := s.fs.ValidateIdentifier(name); err != nil {
		return Environment{}, false, fmt.Errorf("invalid environment name: %w", err)
	}

	env := s.environment(name)
	exists, err := s.fs.Exists(env.Path)
	if err != nil {
		return Environment{}, false, fmt.Errorf("failed to check environment: %w", err)
	}
	if exists {
		return env, false, nil
	}

	res, err := s.runner.Run(ctx, interpreter, "-m", "venv", env.Path)
	if err != nil {
		return Environment{}, false, fmt.Errorf("%w: %v", ErrCreationFailed, err)
	}
	if !res.Ok() {
		// Surface the venv module's own diagnostic verbatim.
		return Environment{}, false, fmt.Errorf("%w: %s", ErrCreationFailed, res.Stderr)
	}

	return env, true, nil
}

// Delete recursively removes an environment. Removal is not retried or
// rolled back; a partially-removed tree may remain after a failure.
func (s *FileStore) Delete(name string) error {
	if err := s.fs.ValidateIdentifier(name); err != nil {
		return fmt.Errorf("invalid environment name: %w", err)
	}

	path := s.PathFor(name)
	exists, err := s.fs.Exists(path)
	if err != nil {
		return fmt.Errorf("failed to check environment: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	if err := s.fs.RemoveAll(path); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPermissionDenied, path, err)
	}
	return nil
}

// Metadata gathers size, creation time, and interpreter path.
func (s *FileStore) Metadata(name string) (*Metadata, error) {
	path := s.PathFor(name)
	exists, err := s.fs.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("failed to check environment: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	meta := &Metadata{}

	size, err := s.dirSize(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrPermissionDenied, path, err)
	}
	meta.SizeBytes = size

	if info, err := s.fs.Stat(path); err == nil {
		meta.CreatedAt = info.ModTime()
	}

	meta.Interpreter = s.interpreterFromConfig(path)

	return meta, nil
}

// dirSize sums the sizes of regular files under dir, recursively.
// Symlinks are not followed.
func (s *FileStore) dirSize(dir string) (int64, error) {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			sub, err := s.dirSize(path)
			if err != nil {
				return 0, err
			}
			total += sub
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		total += info.Size()
	}
	return total, nil
}

// interpreterFromConfig reads the home entry from the environment's own
// pyvenv.cfg. The file is written by the venv module and never by venvman;
// a missing file or key yields "".
func (s *FileStore) interpreterFromConfig(envPath string) string {
	data, err := s.fs.ReadFile(filepath.Join(envPath, "pyvenv.cfg"))
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		if strings.TrimSpace(key) == "home" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// environment builds an Environment value for a name, parsing the
// project/version parts when the name follows the naming scheme.
func (s *FileStore) environment(name string) Environment {
	env := Environment{Name: name, Path: s.PathFor(name)}
	if project, version, ok := ParseEnvName(name); ok {
		env.Project = project
		env.Version = version
	}
	return env
}

package engine

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/cshenry/venvman/internal/activate"
	"github.com/cshenry/venvman/internal/link"
	"github.com/cshenry/venvman/internal/store"
)

// Create runs the full environment lifecycle for a project:
//
//  1. Validate the project directory.
//  2. Ensure the store root exists.
//  3. Resolve an interpreter and introspect its actual version.
//  4. Derive the environment name from project + resolved version.
//  5. Create the environment if absent (idempotent).
//  6. Reconcile the repository's .venv link.
//  7. Rewrite the activation script unconditionally.
//
// Re-running with identical arguments after a success performs zero
// destructive action and reports the same terminal success. A dependency
// install failure is returned inside the result as a warning, never as an
// error.
func (e *Engine) Create(ctx context.Context, req *CreateRequest) (*CreateResult, error) {
	if err := e.fs.ValidateIdentifier(req.Project); err != nil {
		return nil, fmt.Errorf("invalid project name: %w", err)
	}

	repoDir, err := filepath.Abs(req.Dir)
	if err != nil {
		return nil, fmt.Errorf("invalid project directory: %w", err)
	}
	info, err := e.fs.Stat(repoDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, repoDir)
	}

	if err := e.store.EnsureRoot(); err != nil {
		return nil, err
	}

	interpreter, err := e.resolver.Resolve(ctx, req.Python)
	if err != nil {
		return nil, err
	}
	version, err := e.resolver.IntrospectVersion(ctx, interpreter)
	if err != nil {
		return nil, err
	}

	// The name always derives from the resolved version, never from the
	// raw request string.
	name := store.EnvName(req.Project, version)

	env, created, err := e.store.Create(ctx, name, interpreter)
	if err != nil {
		return nil, err
	}

	linkPath := filepath.Join(repoDir, ".venv")
	if err := link.Ensure(e.fs, linkPath, env.Path, req.Force); err != nil {
		return nil, err
	}

	scriptPath, err := activate.Write(e.fs, repoDir)
	if err != nil {
		return nil, err
	}

	result := &CreateResult{
		Env:         env,
		Created:     created,
		Interpreter: interpreter,
		Version:     version,
		LinkPath:    linkPath,
		ScriptPath:  scriptPath,
	}

	depsInstalled := false
	if req.InstallDeps {
		installed, err := e.installer.Install(ctx, env.Path, repoDir)
		result.DepsInstalled = installed
		if err != nil {
			// Non-fatal: surface as a warning, keep the success.
			result.DepsWarning = err.Error()
		}
		depsInstalled = err == nil && len(installed) > 0
	}

	if err := e.trackProject(req.Project, repoDir, name, depsInstalled); err != nil {
		return nil, err
	}

	return result, nil
}

// trackProject records or updates the project in the registry, preserving
// an earlier deps-install timestamp unless this run installed again.
func (e *Engine) trackProject(project, path, envName string, depsInstalled bool) error {
	projects, err := e.registry.Load()
	if err != nil {
		return err
	}

	entry := projects[project]
	entry.Path = path
	entry.Env = envName
	if depsInstalled {
		now := e.clock.Now()
		entry.LastDepsInstall = &now
	}
	projects[project] = entry

	return e.registry.Save(projects)
}

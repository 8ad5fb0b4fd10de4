package engine

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/cshenry/venvman/internal/activate"
	"github.com/cshenry/venvman/internal/link"
	"github.com/cshenry/venvman/internal/store"
)

// Track registers a project directory in the registry. When no environment
// name is supplied, the unique environment matching the project name is
// associated automatically; ambiguity is an error and zero matches leaves
// the association empty. With an environment associated, the .venv link
// and activation script are (re)established.
func (e *Engine) Track(req *TrackRequest) (*TrackResult, error) {
	dir, err := filepath.Abs(req.Dir)
	if err != nil {
		return nil, fmt.Errorf("invalid project directory: %w", err)
	}
	info, err := e.fs.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
	}

	project := req.Project
	if project == "" {
		project = filepath.Base(dir)
	}
	if err := e.fs.ValidateIdentifier(project); err != nil {
		return nil, fmt.Errorf("invalid project name: %w", err)
	}

	envName := req.Env
	if envName == "" {
		env, err := e.store.Resolve(project, false)
		switch {
		case err == nil:
			envName = env.Name
		case errors.Is(err, store.ErrNotFound):
			// No environment yet; track path only.
		default:
			return nil, err
		}
	}

	projects, err := e.registry.Load()
	if err != nil {
		return nil, err
	}
	entry := projects[project]
	entry.Path = dir
	entry.Env = envName
	projects[project] = entry
	if err := e.registry.Save(projects); err != nil {
		return nil, err
	}

	result := &TrackResult{Project: project, Path: dir, Env: envName}

	if envName != "" {
		if err := link.Ensure(e.fs, filepath.Join(dir, ".venv"), e.store.PathFor(envName), false); err != nil {
			return nil, err
		}
		if _, err := activate.Write(e.fs, dir); err != nil {
			return nil, err
		}
		result.Linked = true
	}

	return result, nil
}

// Untrack removes a project from the registry. The environment and the
// project's files are left alone.
func (e *Engine) Untrack(project string) error {
	projects, err := e.registry.Load()
	if err != nil {
		return err
	}
	if _, ok := projects[project]; !ok {
		return fmt.Errorf("%w: %s", ErrNotTracked, project)
	}
	delete(projects, project)
	return e.registry.Save(projects)
}

// Projects lists tracked projects with existence checks for both the
// project path and the associated environment, sorted by name.
func (e *Engine) Projects() ([]ProjectStatus, error) {
	projects, err := e.registry.Load()
	if err != nil {
		return nil, err
	}

	statuses := make([]ProjectStatus, 0, len(projects))
	for name, p := range projects {
		status := ProjectStatus{
			Name:            name,
			Path:            p.Path,
			Env:             p.Env,
			LastDepsInstall: p.LastDepsInstall,
		}
		if p.Path != "" {
			if info, err := e.fs.Stat(p.Path); err == nil && info.IsDir() {
				status.PathExists = true
			}
		}
		if p.Env != "" {
			if ok, err := e.store.Exists(p.Env); err == nil && ok {
				status.EnvExists = true
			}
		}
		statuses = append(statuses, status)
	}

	sort.Slice(statuses, func(i, j int) bool { return statuses[i].Name < statuses[j].Name })
	return statuses, nil
}

// Bootstrap seeds the registry from existing store directories whose names
// follow the <project>-py<major.minor> scheme. Project paths are unknown
// at this point and stay empty until a track or create fills them in.
func (e *Engine) Bootstrap() (*BootstrapResult, error) {
	envs, err := e.store.List()
	if err != nil {
		return nil, err
	}

	projects, err := e.registry.Load()
	if err != nil {
		return nil, err
	}

	result := &BootstrapResult{}
	for _, env := range envs {
		if env.Project == "" {
			// Name does not follow the scheme.
			result.Skipped = append(result.Skipped, env.Name)
			continue
		}
		if _, ok := projects[env.Project]; ok {
			result.Skipped = append(result.Skipped, env.Name)
			continue
		}
		entry := projects[env.Project]
		entry.Env = env.Name
		projects[env.Project] = entry
		result.Added = append(result.Added, env.Project)
	}

	if len(result.Added) > 0 {
		if err := e.registry.Save(projects); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Refresh re-ensures the .venv link and rewrites the activation script for
// every tracked project with a known path and environment. Problems with
// individual projects are reported, not fatal.
func (e *Engine) Refresh() (*RefreshResult, error) {
	projects, err := e.registry.Load()
	if err != nil {
		return nil, err
	}

	result := &RefreshResult{Skipped: make(map[string]string)}

	names := make([]string, 0, len(projects))
	for name := range projects {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		p := projects[name]
		if p.Path == "" {
			result.Skipped[name] = "no project path set"
			continue
		}
		if p.Env == "" {
			result.Skipped[name] = "no environment associated"
			continue
		}
		if info, err := e.fs.Stat(p.Path); err != nil || !info.IsDir() {
			result.Skipped[name] = "project path not found"
			continue
		}

		if err := link.Ensure(e.fs, filepath.Join(p.Path, ".venv"), e.store.PathFor(p.Env), false); err != nil {
			result.Skipped[name] = err.Error()
			continue
		}
		if _, err := activate.Write(e.fs, p.Path); err != nil {
			result.Skipped[name] = err.Error()
			continue
		}
		result.Updated = append(result.Updated, name)
	}

	return result, nil
}

// InstallDeps installs dependencies for a tracked project into its
// associated environment. Unlike the install step inside Create, a pip
// failure here is fatal.
func (e *Engine) InstallDeps(ctx context.Context, project string) ([]string, error) {
	projects, err := e.registry.Load()
	if err != nil {
		return nil, err
	}
	p, ok := projects[project]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotTracked, project)
	}
	if p.Path == "" {
		return nil, fmt.Errorf("%w: %s has no path set (re-run 'venvman track')", ErrNotTracked, project)
	}
	if p.Env == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoEnvironment, project)
	}

	exists, err := e.store.Exists(p.Env)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", store.ErrNotFound, p.Env)
	}

	installed, err := e.installer.Install(ctx, e.store.PathFor(p.Env), p.Path)
	if err != nil {
		return installed, err
	}

	if len(installed) > 0 {
		now := e.clock.Now()
		p.LastDepsInstall = &now
		projects[project] = p
		if err := e.registry.Save(projects); err != nil {
			return installed, err
		}
	}

	return installed, nil
}

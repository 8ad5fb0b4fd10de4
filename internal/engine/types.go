package engine

import (
	"time"

	"github.com/cshenry/venvman/internal/python"
	"github.com/cshenry/venvman/internal/store"
)

// CreateRequest describes a create operation.
type CreateRequest struct {
	// Project is the project name used in the environment name.
	Project string

	// Python is the requested interpreter version, e.g. "3.12"
	// ("" means no preference).
	Python string

	// Dir is the project directory where .venv and activate.sh go.
	Dir string

	// Force allows replacing a non-symlink .venv.
	Force bool

	// InstallDeps installs from requirements.txt / pyproject.toml after
	// the environment is set up.
	InstallDeps bool
}

// CreateResult reports the outcome of a create operation.
type CreateResult struct {
	Env store.Environment `json:"env"`

	// Created is false when the environment already existed and was
	// reused untouched.
	Created bool `json:"created"`

	// Interpreter is the resolved interpreter binary.
	Interpreter string `json:"interpreter"`

	// Version is the interpreter's actual reported version, which may
	// differ from the requested one.
	Version python.Version `json:"-"`

	// LinkPath is the repository's .venv path.
	LinkPath string `json:"linkPath"`

	// ScriptPath is the generated activation script path.
	ScriptPath string `json:"scriptPath"`

	// DepsInstalled lists the manifests installed (nil when
	// InstallDeps was not requested or nothing was found).
	DepsInstalled []string `json:"depsInstalled,omitempty"`

	// DepsWarning carries a non-fatal dependency-install failure.
	DepsWarning string `json:"depsWarning,omitempty"`
}

// InfoResult is the gathered metadata for one environment.
type InfoResult struct {
	Env  store.Environment
	Meta store.Metadata
}

// ProjectStatus is one row of the tracked-projects listing.
type ProjectStatus struct {
	Name            string     `json:"name"`
	Path            string     `json:"path,omitempty"`
	Env             string     `json:"env,omitempty"`
	PathExists      bool       `json:"pathExists"`
	EnvExists       bool       `json:"envExists"`
	LastDepsInstall *time.Time `json:"lastDepsInstall,omitempty"`
}

// TrackRequest describes a track operation.
type TrackRequest struct {
	// Dir is the project directory to register.
	Dir string

	// Project overrides the project name (default: base of Dir).
	Project string

	// Env overrides the associated environment name (default: the
	// unique environment matching the project name, if any).
	Env string
}

// TrackResult reports the outcome of a track operation.
type TrackResult struct {
	Project string
	Path    string
	Env     string

	// Linked is true when a .venv link and activation script were
	// (re)established.
	Linked bool
}

// BootstrapResult reports the outcome of a bootstrap scan.
type BootstrapResult struct {
	Added   []string
	Skipped []string
}

// RefreshResult reports the outcome of a refresh pass.
type RefreshResult struct {
	Updated []string
	// Skipped maps project name to the reason it was not refreshed.
	Skipped map[string]string
}

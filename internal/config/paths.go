// Package config manages venvman configuration and filesystem paths.
//
// The store root (where environments live) defaults to ~/VirtualEnvironments
// and can be overridden with the VENVMAN_DIRECTORY environment variable or
// the venv_home key in config.yaml. The data directory (registry and config)
// defaults to ~/.venvman and can be overridden with VENVMAN_ROOT.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by venvman.
type Paths struct {
	// VenvHome is the store root holding all environments
	// (default: ~/VirtualEnvironments).
	VenvHome string

	// Root is the base directory for venvman data (default: ~/.venvman).
	Root string

	// Projects is the path to the tracked-projects registry file.
	Projects string

	// Config is the path to the optional settings file.
	Config string
}

// DefaultPaths returns the paths for venvman, applying overrides in order:
// environment variable, then config.yaml, then the built-in default.
func DefaultPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}

	root := os.Getenv("VENVMAN_ROOT")
	if root == "" {
		root = filepath.Join(home, ".venvman")
	}

	p := &Paths{
		Root:     root,
		Projects: filepath.Join(root, "projects.json"),
		Config:   filepath.Join(root, "config.yaml"),
	}

	settings, err := LoadSettings(p.Config)
	if err != nil {
		return nil, err
	}

	venvHome := os.Getenv("VENVMAN_DIRECTORY")
	if venvHome == "" {
		venvHome = settings.VenvHome
	}
	if venvHome == "" {
		venvHome = filepath.Join(home, "VirtualEnvironments")
	}
	p.VenvHome = venvHome

	return p, nil
}

// EnsureDataDir creates the data directory if it does not exist. The store
// root is created separately by the engine, only when a create needs it.
func (p *Paths) EnsureDataDir() error {
	if err := os.MkdirAll(p.Root, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", p.Root, err)
	}
	return nil
}

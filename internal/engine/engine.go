// Package engine provides the core business logic for venvman operations.
//
// The engine is the orchestration layer between CLI commands and the leaf
// packages. It composes interpreter resolution, the environment store, the
// link state machine, the activation script writer, the dependency
// installer, and the tracked-projects registry into the command flows.
//
// Every operation is a single linear pass; the filesystem is the only
// state carried between invocations. There is no cross-process locking:
// two venvman invocations racing against the same store root may observe
// partial state. That is an accepted single-user-workstation assumption.
package engine

import (
	"github.com/cshenry/venvman/internal/clock"
	"github.com/cshenry/venvman/internal/config"
	"github.com/cshenry/venvman/internal/deps"
	"github.com/cshenry/venvman/internal/execx"
	"github.com/cshenry/venvman/internal/fsops"
	"github.com/cshenry/venvman/internal/python"
	"github.com/cshenry/venvman/internal/registry"
	"github.com/cshenry/venvman/internal/store"
)

// Engine orchestrates all venvman operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs        fsops.FS
	runner    execx.Runner
	store     store.Store
	resolver  *python.Resolver
	installer *deps.Installer
	registry  registry.Registry
	clock     clock.Clock
	paths     config.Paths
}

// New creates a new Engine with the given dependencies.
func New(
	fs fsops.FS,
	runner execx.Runner,
	st store.Store,
	resolver *python.Resolver,
	installer *deps.Installer,
	reg registry.Registry,
	clk clock.Clock,
	paths config.Paths,
) *Engine {
	return &Engine{
		fs:        fs,
		runner:    runner,
		store:     st,
		resolver:  resolver,
		installer: installer,
		registry:  reg,
		clock:     clk,
		paths:     paths,
	}
}

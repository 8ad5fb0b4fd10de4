package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cshenry/venvman/internal/clock"
	"github.com/cshenry/venvman/internal/config"
	"github.com/cshenry/venvman/internal/deps"
	"github.com/cshenry/venvman/internal/engine"
	"github.com/cshenry/venvman/internal/execx"
	"github.com/cshenry/venvman/internal/fsops"
	"github.com/cshenry/venvman/internal/python"
	"github.com/cshenry/venvman/internal/registry"
	"github.com/cshenry/venvman/internal/store"
)

// newEngine creates a new engine with real implementations of all
// dependencies, plus the loaded settings for command-level defaults.
func newEngine() (*engine.Engine, *config.Settings, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	if err := paths.EnsureDataDir(); err != nil {
		return nil, nil, fmt.Errorf("failed to ensure data directory: %w", err)
	}

	settings, err := config.LoadSettings(paths.Config)
	if err != nil {
		return nil, nil, err
	}

	fs := fsops.NewRealFS()
	runner := execx.NewRealRunner()
	clk := &clock.RealClock{}
	fileStore := store.NewFileStore(fs, runner, paths.VenvHome)
	resolver := python.NewResolver(runner)
	installer := deps.NewInstaller(fs, runner)
	reg := registry.NewFileRegistry(fs, paths.Projects)

	eng := engine.New(fs, runner, fileStore, resolver, installer, reg, clk, *paths)
	return eng, settings, nil
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

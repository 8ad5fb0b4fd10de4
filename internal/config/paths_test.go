package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPaths(t *testing.T) {
	t.Run("defaults under home directory", func(t *testing.T) {
		t.Setenv("VENVMAN_ROOT", "")
		t.Setenv("VENVMAN_DIRECTORY", "")
		os.Unsetenv("VENVMAN_ROOT")
		os.Unsetenv("VENVMAN_DIRECTORY")

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}

		if filepath.Base(paths.Root) != ".venvman" {
			t.Errorf("Root should end with .venvman, got: %s", paths.Root)
		}
		if filepath.Base(paths.VenvHome) != "VirtualEnvironments" {
			t.Errorf("VenvHome should end with VirtualEnvironments, got: %s", paths.VenvHome)
		}
		if paths.Projects != filepath.Join(paths.Root, "projects.json") {
			t.Errorf("Projects path incorrect: %s", paths.Projects)
		}
		if paths.Config != filepath.Join(paths.Root, "config.yaml") {
			t.Errorf("Config path incorrect: %s", paths.Config)
		}
	})

	t.Run("respects VENVMAN_DIRECTORY", func(t *testing.T) {
		t.Setenv("VENVMAN_ROOT", t.TempDir())
		t.Setenv("VENVMAN_DIRECTORY", "/custom/envs")

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}
		if paths.VenvHome != "/custom/envs" {
			t.Errorf("VenvHome = %s, want /custom/envs", paths.VenvHome)
		}
	})

	t.Run("respects VENVMAN_ROOT", func(t *testing.T) {
		root := t.TempDir()
		t.Setenv("VENVMAN_ROOT", root)

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}
		if paths.Root != root {
			t.Errorf("Root = %s, want %s", paths.Root, root)
		}
	})

	t.Run("config venv_home used when env var unset", func(t *testing.T) {
		root := t.TempDir()
		t.Setenv("VENVMAN_ROOT", root)
		t.Setenv("VENVMAN_DIRECTORY", "")
		os.Unsetenv("VENVMAN_DIRECTORY")

		cfg := filepath.Join(root, "config.yaml")
		if err := os.WriteFile(cfg, []byte("venv_home: /from/config\n"), 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}
		if paths.VenvHome != "/from/config" {
			t.Errorf("VenvHome = %s, want /from/config", paths.VenvHome)
		}
	})

	t.Run("env var beats config venv_home", func(t *testing.T) {
		root := t.TempDir()
		t.Setenv("VENVMAN_ROOT", root)
		t.Setenv("VENVMAN_DIRECTORY", "/from/env")

		cfg := filepath.Join(root, "config.yaml")
		if err := os.WriteFile(cfg, []byte("venv_home: /from/config\n"), 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}
		if paths.VenvHome != "/from/env" {
			t.Errorf("VenvHome = %s, want /from/env", paths.VenvHome)
		}
	})
}

func TestLoadSettings(t *testing.T) {
	t.Run("missing file yields zero settings", func(t *testing.T) {
		s, err := LoadSettings(filepath.Join(t.TempDir(), "config.yaml"))
		if err != nil {
			t.Fatalf("LoadSettings failed: %v", err)
		}
		if s.VenvHome != "" || s.DefaultPython != "" {
			t.Errorf("expected zero settings, got %+v", s)
		}
	})

	t.Run("parses keys", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "venv_home: /envs\ndefault_python: \"3.12\"\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}

		s, err := LoadSettings(path)
		if err != nil {
			t.Fatalf("LoadSettings failed: %v", err)
		}
		if s.VenvHome != "/envs" {
			t.Errorf("VenvHome = %q", s.VenvHome)
		}
		if s.DefaultPython != "3.12" {
			t.Errorf("DefaultPython = %q", s.DefaultPython)
		}
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("venv_home: [unclosed"), 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
		if _, err := LoadSettings(path); err == nil {
			t.Error("expected parse error")
		}
	})
}

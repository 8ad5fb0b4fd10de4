package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cshenry/venvman/internal/clock"
	"github.com/cshenry/venvman/internal/config"
	"github.com/cshenry/venvman/internal/deps"
	"github.com/cshenry/venvman/internal/execx"
	"github.com/cshenry/venvman/internal/fsops"
	"github.com/cshenry/venvman/internal/python"
	"github.com/cshenry/venvman/internal/registry"
	"github.com/cshenry/venvman/internal/store"
)

// versionProbe mirrors the one-liner the resolver sends to interpreters.
const versionProbe = "import sys; print(f'{sys.version_info.major}.{sys.version_info.minor}')"

type testEnv struct {
	engine *Engine
	runner *execx.FakeRunner
	clock  *clock.FakeClock
	root   string
	repo   string
	paths  config.Paths
}

// newTestEnv wires an engine over a real temp filesystem with a fake
// runner. python3 resolves to /usr/bin/python3 reporting 3.12, and
// python -m venv materializes a minimal venv tree.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	base := t.TempDir()
	root := filepath.Join(base, "envs")
	repo := filepath.Join(base, "repo")
	if err := os.MkdirAll(repo, 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	runner := execx.NewFakeRunner()
	runner.Binaries["python3"] = "/usr/bin/python3"
	runner.Responses["/usr/bin/python3 -c "+versionProbe] = execx.Result{Stdout: "3.12"}
	runner.OnRun = func(name string, args []string) error {
		if len(args) == 3 && args[0] == "-m" && args[1] == "venv" {
			return materializeVenv(args[2])
		}
		return nil
	}

	fs := fsops.NewRealFS()
	clk := clock.NewFakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	paths := config.Paths{
		VenvHome: root,
		Root:     filepath.Join(base, "data"),
		Projects: filepath.Join(base, "data", "projects.json"),
		Config:   filepath.Join(base, "data", "config.yaml"),
	}

	eng := New(
		fs,
		runner,
		store.NewFileStore(fs, runner, root),
		python.NewResolver(runner),
		deps.NewInstaller(fs, runner),
		registry.NewFileRegistry(fs, paths.Projects),
		clk,
		paths,
	)

	return &testEnv{engine: eng, runner: runner, clock: clk, root: root, repo: repo, paths: paths}
}

// materializeVenv writes the minimal tree python -m venv would produce.
func materializeVenv(envDir string) error {
	if err := os.MkdirAll(filepath.Join(envDir, "bin"), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(envDir, "bin", "activate"), []byte("# activate\n"), 0644); err != nil {
		return err
	}
	cfg := "home = /usr/bin\nversion = 3.12.4\n"
	return os.WriteFile(filepath.Join(envDir, "pyvenv.cfg"), []byte(cfg), 0644)
}

// mustCreate runs a default create for project demo and fails the test on
// error.
func (te *testEnv) mustCreate(t *testing.T) *CreateResult {
	t.Helper()
	result, err := te.engine.Create(context.Background(), &CreateRequest{
		Project: "demo",
		Dir:     te.repo,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	return result
}

// seedEnv drops a bare environment directory into the store root,
// bypassing the engine.
func (te *testEnv) seedEnv(t *testing.T, name string) {
	t.Helper()
	if err := materializeVenv(filepath.Join(te.root, name)); err != nil {
		t.Fatalf("seedEnv failed: %v", err)
	}
}

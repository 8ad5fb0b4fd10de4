package engine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cshenry/venvman/internal/store"
)

func TestResolveEnvironment_ambiguous(t *testing.T) {
	te := newTestEnv(t)
	te.seedEnv(t, "demo-py3.10")
	te.seedEnv(t, "demo-py3.11")

	_, err := te.engine.ResolveEnvironment("demo", false)
	if !errors.Is(err, store.ErrAmbiguous) {
		t.Fatalf("error = %v, want ErrAmbiguous", err)
	}

	var ambiguous *store.AmbiguousError
	if !errors.As(err, &ambiguous) {
		t.Fatalf("error is not *store.AmbiguousError: %v", err)
	}
	want := []string{"demo-py3.10", "demo-py3.11"}
	if len(ambiguous.Candidates) != len(want) {
		t.Fatalf("candidates = %v, want %v", ambiguous.Candidates, want)
	}
	for i, name := range want {
		if ambiguous.Candidates[i] != name {
			t.Errorf("candidates[%d] = %q, want %q", i, ambiguous.Candidates[i], name)
		}
	}
}

func TestDeleteEnvironment_exactRemovesOne(t *testing.T) {
	te := newTestEnv(t)
	te.seedEnv(t, "demo-py3.10")
	te.seedEnv(t, "demo-py3.11")

	env, err := te.engine.ResolveEnvironment("demo-py3.10", true)
	if err != nil {
		t.Fatalf("ResolveEnvironment failed: %v", err)
	}
	if err := te.engine.DeleteEnvironment(env.Name); err != nil {
		t.Fatalf("DeleteEnvironment failed: %v", err)
	}

	envs, err := te.engine.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(envs) != 1 || envs[0].Name != "demo-py3.11" {
		t.Errorf("remaining environments = %+v", envs)
	}
}

func TestDeleteEnvironment_leavesLinkBehind(t *testing.T) {
	te := newTestEnv(t)
	result := te.mustCreate(t)

	if err := te.engine.DeleteEnvironment(result.Env.Name); err != nil {
		t.Fatalf("DeleteEnvironment failed: %v", err)
	}

	// The repository .venv link still exists, now dangling.
	info, err := os.Lstat(filepath.Join(te.repo, ".venv"))
	if err != nil {
		t.Fatalf("Lstat failed: %v", err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Error(".venv should still be a symlink")
	}
	if _, err := os.Stat(result.Env.Path); !os.IsNotExist(err) {
		t.Error("environment directory should be gone")
	}
}

func TestDeleteEnvironment_missing(t *testing.T) {
	te := newTestEnv(t)

	err := te.engine.DeleteEnvironment("ghost-py3.12")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestInfo(t *testing.T) {
	te := newTestEnv(t)
	result := te.mustCreate(t)

	info, err := te.engine.Info("demo", false)
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}
	if info.Env != result.Env {
		t.Errorf("env = %+v, want %+v", info.Env, result.Env)
	}
	if info.Meta.SizeBytes <= 0 {
		t.Errorf("size = %d, want > 0", info.Meta.SizeBytes)
	}
	if info.Meta.CreatedAt.IsZero() {
		t.Error("creation time should be set for an existing directory")
	}
	if info.Meta.Interpreter != "/usr/bin" {
		t.Errorf("interpreter = %q, want /usr/bin", info.Meta.Interpreter)
	}
}

func TestInfo_missing(t *testing.T) {
	te := newTestEnv(t)

	_, err := te.engine.Info("nothing", false)
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

package link

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cshenry/venvman/internal/fsops"
)

// fixture lays out a store-like target directory and returns the link path
// to reconcile against it.
type fixture struct {
	fs     fsops.FS
	repo   string
	link   string
	target string
	other  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()

	target := filepath.Join(dir, "envs", "demo-py3.12")
	other := filepath.Join(dir, "envs", "demo-py3.11")
	for _, d := range []string{target, other} {
		if err := os.MkdirAll(d, 0755); err != nil {
			t.Fatalf("MkdirAll failed: %v", err)
		}
	}

	repo := filepath.Join(dir, "repo")
	if err := os.MkdirAll(repo, 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	return &fixture{
		fs:     fsops.NewRealFS(),
		repo:   repo,
		link:   filepath.Join(repo, ".venv"),
		target: target,
		other:  other,
	}
}

func (f *fixture) mustState(t *testing.T, want State) {
	t.Helper()
	got, err := Inspect(f.fs, f.link, f.target)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if got != want {
		t.Fatalf("state = %v, want %v", got, want)
	}
}

func TestEnsure_TransitionTable(t *testing.T) {
	// Every (state, force) pair must be covered by the table; this test
	// walks all eight combinations.
	setups := []struct {
		name  string
		setup func(t *testing.T, f *fixture)
		state State
	}{
		{
			name:  "absent",
			setup: func(t *testing.T, f *fixture) {},
			state: StateAbsent,
		},
		{
			name: "correct",
			setup: func(t *testing.T, f *fixture) {
				if err := os.Symlink(f.target, f.link); err != nil {
					t.Fatalf("Symlink failed: %v", err)
				}
			},
			state: StateCorrect,
		},
		{
			name: "stale",
			setup: func(t *testing.T, f *fixture) {
				if err := os.Symlink(f.other, f.link); err != nil {
					t.Fatalf("Symlink failed: %v", err)
				}
			},
			state: StateStale,
		},
		{
			name: "occupied",
			setup: func(t *testing.T, f *fixture) {
				if err := os.MkdirAll(filepath.Join(f.link, "junk"), 0755); err != nil {
					t.Fatalf("MkdirAll failed: %v", err)
				}
			},
			state: StateOccupied,
		},
	}

	for _, tc := range setups {
		for _, force := range []bool{false, true} {
			name := tc.name
			if force {
				name += " force"
			}
			t.Run(name, func(t *testing.T) {
				f := newFixture(t)
				tc.setup(t, f)
				f.mustState(t, tc.state)

				err := Ensure(f.fs, f.link, f.target, force)

				if tc.state == StateOccupied && !force {
					if !errors.Is(err, ErrOccupied) {
						t.Fatalf("error = %v, want ErrOccupied", err)
					}
					// Filesystem unchanged: still occupied.
					f.mustState(t, StateOccupied)
					return
				}

				if err != nil {
					t.Fatalf("Ensure failed: %v", err)
				}
				f.mustState(t, StateCorrect)
			})
		}
	}
}

// The occupied-without-force failure is the intended behavior: a variant
// that silently replaces a real .venv directory regardless of the flag is
// a defect, not an alternative reading.
func TestEnsure_occupiedWithoutForceFails(t *testing.T) {
	f := newFixture(t)

	marker := filepath.Join(f.link, "precious.txt")
	if err := os.MkdirAll(f.link, 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(marker, []byte("keep me"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	err := Ensure(f.fs, f.link, f.target, false)

	var occupied *OccupiedError
	if !errors.As(err, &occupied) {
		t.Fatalf("error = %v, want *OccupiedError", err)
	}
	if occupied.Path != f.link {
		t.Errorf("OccupiedError.Path = %q, want %q", occupied.Path, f.link)
	}
	if _, err := os.Stat(marker); err != nil {
		t.Errorf("occupied directory was mutated: %v", err)
	}
}

func TestEnsure_forceReplacesOccupiedDirectory(t *testing.T) {
	f := newFixture(t)

	if err := os.MkdirAll(filepath.Join(f.link, "junk"), 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	if err := Ensure(f.fs, f.link, f.target, true); err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}

	info, err := os.Lstat(f.link)
	if err != nil {
		t.Fatalf("Lstat failed: %v", err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Error("link path is not a symlink after force replace")
	}
	resolved, err := filepath.EvalSymlinks(f.link)
	if err != nil {
		t.Fatalf("EvalSymlinks failed: %v", err)
	}
	want, _ := filepath.EvalSymlinks(f.target)
	if resolved != want {
		t.Errorf("link resolves to %q, want %q", resolved, want)
	}
}

func TestEnsure_relativeSpellingIsCorrect(t *testing.T) {
	f := newFixture(t)

	// A symlink spelled relatively must count as Correct when it resolves
	// to the same canonical destination.
	rel, err := filepath.Rel(f.repo, f.target)
	if err != nil {
		t.Fatalf("Rel failed: %v", err)
	}
	if err := os.Symlink(rel, f.link); err != nil {
		t.Fatalf("Symlink failed: %v", err)
	}

	f.mustState(t, StateCorrect)

	if err := Ensure(f.fs, f.link, f.target, false); err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}
	// Still the original relative link: Ensure must not rewrite it.
	got, err := os.Readlink(f.link)
	if err != nil {
		t.Fatalf("Readlink failed: %v", err)
	}
	if got != rel {
		t.Errorf("link was rewritten: %q, want %q", got, rel)
	}
}

func TestInspect_danglingLinkIsStale(t *testing.T) {
	f := newFixture(t)

	gone := filepath.Join(f.repo, "gone")
	if err := os.Symlink(gone, f.link); err != nil {
		t.Fatalf("Symlink failed: %v", err)
	}

	f.mustState(t, StateStale)

	if err := Ensure(f.fs, f.link, f.target, false); err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}
	f.mustState(t, StateCorrect)
}

func TestInspect_missingTargetStillLinks(t *testing.T) {
	// A ProjectLink never implies existence of its target environment;
	// Ensure must link even when the target does not exist yet.
	f := newFixture(t)
	missing := filepath.Join(f.repo, "not-created-yet")

	if err := Ensure(f.fs, f.link, missing, false); err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}

	got, err := os.Readlink(f.link)
	if err != nil {
		t.Fatalf("Readlink failed: %v", err)
	}
	if got != missing {
		t.Errorf("Readlink = %q, want %q", got, missing)
	}
}

package store

import (
	"context"
	"errors"
	"testing"
)

func newMatchStore(t *testing.T) *FileStore {
	t.Helper()
	s, _, _ := newTestStore(t)
	ctx := context.Background()
	for _, name := range []string{"a-py3.10", "a-py3.11", "b-py3.12"} {
		if _, _, err := s.Create(ctx, name, "/usr/bin/python3"); err != nil {
			t.Fatalf("Create(%s) failed: %v", name, err)
		}
	}
	return s
}

func TestResolve_ProjectName(t *testing.T) {
	s := newMatchStore(t)

	t.Run("single match resolves", func(t *testing.T) {
		env, err := s.Resolve("b", false)
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if env.Name != "b-py3.12" {
			t.Errorf("Name = %q, want b-py3.12", env.Name)
		}
	})

	t.Run("multiple matches are ambiguous with sorted candidates", func(t *testing.T) {
		_, err := s.Resolve("a", false)
		if !errors.Is(err, ErrAmbiguous) {
			t.Fatalf("error = %v, want ErrAmbiguous", err)
		}

		var ambiguous *AmbiguousError
		if !errors.As(err, &ambiguous) {
			t.Fatalf("error is not *AmbiguousError: %v", err)
		}
		want := []string{"a-py3.10", "a-py3.11"}
		if len(ambiguous.Candidates) != len(want) {
			t.Fatalf("Candidates = %v, want %v", ambiguous.Candidates, want)
		}
		for i := range want {
			if ambiguous.Candidates[i] != want[i] {
				t.Errorf("Candidates[%d] = %q, want %q", i, ambiguous.Candidates[i], want[i])
			}
		}
	})

	t.Run("no match is NotFound", func(t *testing.T) {
		_, err := s.Resolve("c", false)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("project is not a prefix match", func(t *testing.T) {
		// "a" must not match some hypothetical "ab-py3.12".
		ctx := context.Background()
		if _, _, err := s.Create(ctx, "ab-py3.12", "/usr/bin/python3"); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		_, err := s.Resolve("a", false)
		var ambiguous *AmbiguousError
		if !errors.As(err, &ambiguous) {
			t.Fatalf("error = %v, want *AmbiguousError", err)
		}
		for _, c := range ambiguous.Candidates {
			if c == "ab-py3.12" {
				t.Error("ab-py3.12 must not match project a")
			}
		}
	})
}

func TestResolve_ExactName(t *testing.T) {
	s := newMatchStore(t)

	t.Run("exact name resolves", func(t *testing.T) {
		env, err := s.Resolve("a-py3.10", true)
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if env.Name != "a-py3.10" || env.Project != "a" {
			t.Errorf("env = %+v", env)
		}
	})

	t.Run("absent exact name is NotFound", func(t *testing.T) {
		_, err := s.Resolve("a-py3.13", true)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})
}

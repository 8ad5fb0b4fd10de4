// Package link reconciles a repository's .venv reference with a target
// environment in the store.
//
// The reference is observed in one of four states and reconciled with a
// single mutation pass:
//
//	Absent      -> create the symlink
//	Correct     -> no-op
//	Stale       -> remove the old link, create a new one
//	Occupied    -> fail, unless force is set (then remove and relink)
//
// Stale means the path is a symlink resolving somewhere other than the
// intended target (or to nothing at all). Occupied means the path exists
// but is not a symlink; replacing a user's real file or directory requires
// an explicit force.
package link

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cshenry/venvman/internal/fsops"
)

// State is the observed state of a repository's local reference.
type State int

const (
	// StateAbsent means nothing exists at the link path.
	StateAbsent State = iota

	// StateCorrect means a symlink resolving to the intended target.
	StateCorrect

	// StateStale means a symlink resolving elsewhere or to a missing
	// target.
	StateStale

	// StateOccupied means a non-symlink file or directory.
	StateOccupied
)

// String renders the state for logs and test failure messages.
func (s State) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StateCorrect:
		return "correct"
	case StateStale:
		return "stale"
	case StateOccupied:
		return "occupied"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	// ErrOccupied indicates the link path exists, is not a symlink, and
	// force was not requested. The concrete error is an *OccupiedError.
	ErrOccupied = errors.New("link path occupied")

	// ErrIO indicates a filesystem failure while reconciling the link.
	ErrIO = errors.New("link reconciliation failed")
)

// OccupiedError carries the occupied path so the caller can name the
// exact remediation.
type OccupiedError struct {
	Path string
}

func (e *OccupiedError) Error() string {
	return fmt.Sprintf("%s exists but is not a symlink (use --force to replace it)", e.Path)
}

// Is makes errors.Is(err, ErrOccupied) match.
func (e *OccupiedError) Is(target error) bool {
	return target == ErrOccupied
}

// Inspect reports the current state of linkPath relative to targetPath.
func Inspect(fs fsops.FS, linkPath, targetPath string) (State, error) {
	info, err := fs.Lstat(linkPath)
	if err != nil {
		if os.IsNotExist(err) {
			return StateAbsent, nil
		}
		return StateAbsent, fmt.Errorf("%w: lstat %s: %v", ErrIO, linkPath, err)
	}

	if info.Mode()&os.ModeSymlink == 0 {
		return StateOccupied, nil
	}

	// Compare canonical forms so relative and absolute spellings of the
	// same destination count as equal.
	resolved, err := fs.EvalSymlinks(linkPath)
	if err != nil {
		// Dangling link: resolves to a missing target.
		return StateStale, nil
	}
	want, err := fs.EvalSymlinks(targetPath)
	if err != nil {
		want = filepath.Clean(targetPath)
	}
	if resolved == want {
		return StateCorrect, nil
	}
	return StateStale, nil
}

// Ensure reconciles linkPath so that it is a symlink to targetPath,
// performing exactly one mutation pass. An occupied path fails with an
// *OccupiedError unless force is set, in which case the file or directory
// is removed (recursively for directories) and replaced with the link.
func Ensure(fs fsops.FS, linkPath, targetPath string, force bool) error {
	state, err := Inspect(fs, linkPath, targetPath)
	if err != nil {
		return err
	}

	switch state {
	case StateCorrect:
		return nil

	case StateStale:
		if err := fs.Remove(linkPath); err != nil {
			return fmt.Errorf("%w: remove %s: %v", ErrIO, linkPath, err)
		}

	case StateOccupied:
		if !force {
			return &OccupiedError{Path: linkPath}
		}
		if err := fs.RemoveAll(linkPath); err != nil {
			return fmt.Errorf("%w: remove %s: %v", ErrIO, linkPath, err)
		}

	case StateAbsent:
		// Nothing to clear.
	}

	if err := fs.Symlink(targetPath, linkPath); err != nil {
		return fmt.Errorf("%w: symlink %s -> %s: %v", ErrIO, linkPath, targetPath, err)
	}
	return nil
}

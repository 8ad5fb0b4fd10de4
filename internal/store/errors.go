package store

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound indicates no environment matches a request.
	ErrNotFound = errors.New("environment not found")

	// ErrAmbiguous indicates a project name matches more than one
	// environment. The concrete error is an *AmbiguousError carrying
	// the candidate names.
	ErrAmbiguous = errors.New("ambiguous project name")

	// ErrCreationFailed indicates python -m venv exited non-zero.
	ErrCreationFailed = errors.New("environment creation failed")

	// ErrPermissionDenied indicates a filesystem failure during deletion
	// or metadata access.
	ErrPermissionDenied = errors.New("permission denied")
)

// AmbiguousError reports a project name matching several environments.
// Candidates are sorted by name.
type AmbiguousError struct {
	Project    string
	Candidates []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("multiple environments found for project %q: %s (specify the exact environment name)",
		e.Project, strings.Join(e.Candidates, ", "))
}

// Is makes errors.Is(err, ErrAmbiguous) match.
func (e *AmbiguousError) Is(target error) bool {
	return target == ErrAmbiguous
}

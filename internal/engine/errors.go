package engine

import "errors"

var (
	// ErrDirectoryNotFound indicates a supplied project directory does
	// not exist.
	ErrDirectoryNotFound = errors.New("project directory not found")

	// ErrNotTracked indicates a project is not in the tracking registry.
	ErrNotTracked = errors.New("project not tracked")

	// ErrNoEnvironment indicates a tracked project has no associated
	// environment.
	ErrNoEnvironment = errors.New("project has no environment")
)

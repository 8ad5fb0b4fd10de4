package engine

import (
	"github.com/cshenry/venvman/internal/store"
)

// ResolveEnvironment maps a project name or exact environment name to a
// single environment without mutating anything. The CLI calls this before
// confirmation so the user sees exactly what would be deleted.
func (e *Engine) ResolveEnvironment(ref string, exact bool) (store.Environment, error) {
	return e.store.Resolve(ref, exact)
}

// DeleteEnvironment removes an environment from the store by exact name.
// Repository links are never touched; deleting an environment may leave a
// dangling .venv behind.
func (e *Engine) DeleteEnvironment(name string) error {
	return e.store.Delete(name)
}

package engine

import "github.com/cshenry/venvman/internal/store"

// Info resolves an environment and gathers its metadata. Optional fields
// (interpreter path, creation time) come back as zero values; rendering
// them as "unknown" is the CLI's job.
func (e *Engine) Info(ref string, exact bool) (*InfoResult, error) {
	env, err := e.store.Resolve(ref, exact)
	if err != nil {
		return nil, err
	}

	meta, err := e.store.Metadata(env.Name)
	if err != nil {
		return nil, err
	}

	return &InfoResult{Env: env, Meta: *meta}, nil
}

// List returns all environments in the store, sorted by name. A missing
// store root yields an empty list.
func (e *Engine) List() ([]store.Environment, error) {
	return e.store.List()
}

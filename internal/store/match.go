package store

import "fmt"

// Resolve maps a project name (or, with exact set, an exact environment
// name) to a single environment.
//
// Exact lookup fails with ErrNotFound if the directory is absent. Project
// lookup matches every environment named <project>-py<anything>: zero
// matches is ErrNotFound, more than one is an *AmbiguousError listing the
// sorted candidates.
func (s *FileStore) Resolve(ref string, exact bool) (Environment, error) {
	if exact {
		exists, err := s.Exists(ref)
		if err != nil {
			return Environment{}, err
		}
		if !exists {
			return Environment{}, fmt.Errorf("%w: %s", ErrNotFound, ref)
		}
		return s.environment(ref), nil
	}

	envs, err := s.List()
	if err != nil {
		return Environment{}, err
	}

	prefix := ref + "-py"
	var matches []Environment
	for _, env := range envs {
		if len(env.Name) > len(prefix) && env.Name[:len(prefix)] == prefix {
			matches = append(matches, env)
		}
	}

	switch len(matches) {
	case 0:
		return Environment{}, fmt.Errorf("%w: no environments for project %q", ErrNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		// List is already sorted by name.
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = m.Name
		}
		return Environment{}, &AmbiguousError{Project: ref, Candidates: names}
	}
}

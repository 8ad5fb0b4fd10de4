package store

import (
	"regexp"

	"github.com/cshenry/venvman/internal/python"
)

// envNamePattern matches <project>-py<major>.<minor>. The project part is
// greedy, so a project name may itself contain hyphens (and even "-py",
// as long as the final "-py<major>.<minor>" suffix is well formed).
var envNamePattern = regexp.MustCompile(`^(.+)-py(\d+\.\d+)$`)

// EnvName derives the environment name for a project and a resolved
// interpreter version. The version must be the actual resolved major.minor,
// never the raw string a user requested.
func EnvName(project string, version python.Version) string {
	return project + "-py" + version.String()
}

// ParseEnvName splits an environment name back into project and version.
// Returns ok=false for names that do not follow the naming scheme.
func ParseEnvName(name string) (project string, version python.Version, ok bool) {
	m := envNamePattern.FindStringSubmatch(name)
	if m == nil {
		return "", python.Version{}, false
	}
	v, err := python.ParseVersion(m[2])
	if err != nil {
		return "", python.Version{}, false
	}
	return m[1], v, true
}

package templates

import (
	"fmt"

	"go.yaml.in/yaml/v3"
)

// condaEnv mirrors the conda environment file schema.
type condaEnv struct {
	Name         string   `yaml:"name"`
	Channels     []string `yaml:"channels"`
	Dependencies []any    `yaml:"dependencies"`
}

// EnvironmentYML renders the conda environment specification for a project.
// The file is generated rather than templated so it is always valid YAML.
func EnvironmentYML(name, pythonVersion string) (string, error) {
	spec := condaEnv{
		Name:     name,
		Channels: []string{"conda-forge", "defaults"},
		Dependencies: []any{
			"python=" + pythonVersion,
			"pip",
			"numpy",
			"pandas",
			"jupyterlab",
			"pytest",
			map[string][]string{"pip": {"-e ."}},
		},
	}

	out, err := yaml.Marshal(spec)
	if err != nil {
		return "", fmt.Errorf("marshaling environment spec: %w", err)
	}
	return string(out), nil
}

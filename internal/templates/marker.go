package templates

import (
	"fmt"
	"time"

	"go.yaml.in/yaml/v3"
)

// MarkerFile is the run marker written at the project root on every run.
const MarkerFile = ".setup-project.yaml"

// runMarker records which tool produced the scaffold and when. The file is
// rewritten on every run, so it always reflects the latest one.
type runMarker struct {
	Tool          string `yaml:"tool"`
	ToolVersion   string `yaml:"tool_version"`
	Tier          string `yaml:"tier"`
	PythonVersion string `yaml:"python_version"`
	ScaffoldedAt  string `yaml:"scaffolded_at"`
}

// MarkerYML renders the run marker payload.
func MarkerYML(toolVersion, tier, pythonVersion string, at time.Time) (string, error) {
	m := runMarker{
		Tool:          "setup-project",
		ToolVersion:   toolVersion,
		Tier:          tier,
		PythonVersion: pythonVersion,
		ScaffoldedAt:  at.UTC().Format(time.RFC3339),
	}

	out, err := yaml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("marshaling run marker: %w", err)
	}
	return string(out), nil
}

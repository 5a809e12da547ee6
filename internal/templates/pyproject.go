package templates

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// pyproject mirrors the subset of pyproject.toml the scaffold emits.
type pyproject struct {
	BuildSystem buildSystem    `toml:"build-system"`
	Project     projectSection `toml:"project"`
	Tool        toolSection    `toml:"tool"`
}

type buildSystem struct {
	Requires     []string `toml:"requires"`
	BuildBackend string   `toml:"build-backend"`
}

type projectSection struct {
	Name           string   `toml:"name"`
	Version        string   `toml:"version"`
	Description    string   `toml:"description"`
	RequiresPython string   `toml:"requires-python"`
	Authors        []author `toml:"authors"`
}

type author struct {
	Name string `toml:"name"`
}

type toolSection struct {
	Pytest pytestTool `toml:"pytest"`
	Ruff   ruffTool   `toml:"ruff"`
}

type pytestTool struct {
	IniOptions pytestIni `toml:"ini_options"`
}

type pytestIni struct {
	Testpaths []string `toml:"testpaths"`
}

type ruffTool struct {
	LineLength int      `toml:"line-length"`
	Src        []string `toml:"src"`
}

// PyprojectTOML renders the build/tooling configuration for a project. The
// file is generated rather than templated so it is always valid TOML.
func PyprojectTOML(name, pythonVersion, authorName string) (string, error) {
	cfg := pyproject{
		BuildSystem: buildSystem{
			Requires:     []string{"setuptools>=68"},
			BuildBackend: "setuptools.build_meta",
		},
		Project: projectSection{
			Name:           name,
			Version:        "0.1.0",
			Description:    "Scaffolded data science project",
			RequiresPython: ">=" + pythonVersion,
			Authors:        []author{{Name: authorName}},
		},
		Tool: toolSection{
			Pytest: pytestTool{IniOptions: pytestIni{Testpaths: []string{"tests"}}},
			Ruff:   ruffTool{LineLength: 100, Src: []string{"src"}},
		},
	}

	out, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshaling pyproject: %w", err)
	}
	return string(out), nil
}

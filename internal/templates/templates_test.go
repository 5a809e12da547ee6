package templates

import (
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"
)

func TestEnvironmentYML(t *testing.T) {
	out, err := EnvironmentYML("demo", "3.12")
	if err != nil {
		t.Fatalf("EnvironmentYML() error: %v", err)
	}

	var parsed struct {
		Name         string   `yaml:"name"`
		Channels     []string `yaml:"channels"`
		Dependencies []any    `yaml:"dependencies"`
	}
	if err := yaml.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, out)
	}

	if parsed.Name != "demo" {
		t.Errorf("name = %q, want %q", parsed.Name, "demo")
	}
	if len(parsed.Channels) == 0 || parsed.Channels[0] != "conda-forge" {
		t.Errorf("channels = %v, want conda-forge first", parsed.Channels)
	}
	if !strings.Contains(out, "python=3.12") {
		t.Errorf("dependencies should pin python=3.12, got:\n%s", out)
	}
}

func TestPyprojectTOML(t *testing.T) {
	out, err := PyprojectTOML("demo", "3.11", "Ada Lovelace")
	if err != nil {
		t.Fatalf("PyprojectTOML() error: %v", err)
	}

	var parsed map[string]any
	if err := toml.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("output is not valid TOML: %v\n%s", err, out)
	}

	project, ok := parsed["project"].(map[string]any)
	if !ok {
		t.Fatalf("missing [project] table in:\n%s", out)
	}
	if project["name"] != "demo" {
		t.Errorf("project.name = %v, want demo", project["name"])
	}
	if project["requires-python"] != ">=3.11" {
		t.Errorf("project.requires-python = %v, want >=3.11", project["requires-python"])
	}
	if !strings.Contains(out, "Ada Lovelace") {
		t.Errorf("author missing from output:\n%s", out)
	}
}

func TestMarkerYML(t *testing.T) {
	at := time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC)
	out, err := MarkerYML("1.2.3", "core", "3.11", at)
	if err != nil {
		t.Fatalf("MarkerYML() error: %v", err)
	}

	var parsed map[string]string
	if err := yaml.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, out)
	}

	if parsed["tier"] != "core" {
		t.Errorf("tier = %q, want core", parsed["tier"])
	}
	if parsed["tool_version"] != "1.2.3" {
		t.Errorf("tool_version = %q, want 1.2.3", parsed["tool_version"])
	}
	if parsed["scaffolded_at"] != "2026-08-23T10:30:00Z" {
		t.Errorf("scaffolded_at = %q, want RFC3339 UTC", parsed["scaffolded_at"])
	}
}

func TestStaticPayloadsCarryTokens(t *testing.T) {
	// The engine substitutes these; the payloads must carry them.
	wantTokens := map[string]string{
		"Readme":     "{{name}}",
		"MainPy":     "{{name}}",
		"TestMainPy": "{{name_snake}}",
		"LicenseMIT": "{{year}}",
		"CIWorkflow": "{{python_version}}",
	}
	payloads := map[string]string{
		"Readme":     Readme,
		"MainPy":     MainPy,
		"TestMainPy": TestMainPy,
		"LicenseMIT": LicenseMIT,
		"CIWorkflow": CIWorkflow,
	}

	for name, token := range wantTokens {
		if !strings.Contains(payloads[name], token) {
			t.Errorf("%s should contain %s", name, token)
		}
	}
}

package tier

import (
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/steliosvliaros/setup-ptoject-ps/internal/scaffold"
)

// presetDoc mirrors the YAML preset file format.
type presetDoc struct {
	Name    string        `yaml:"name"`
	Summary string        `yaml:"summary"`
	Entries []presetEntry `yaml:"entries"`
}

type presetEntry struct {
	Path    string `yaml:"path"`
	Kind    string `yaml:"kind"`
	Policy  string `yaml:"policy,omitempty"`
	Content string `yaml:"content,omitempty"`
	Mode    string `yaml:"mode,omitempty"` // octal string, e.g. "0755"
}

// LoadPreset reads a user-authored tier definition from path. The file is
// schema-validated before decoding; a schema violation lists every failing
// location. Entry paths may carry {{token}} placeholders, which are resolved
// against the run context when the tier is built.
func LoadPreset(path string) (Tier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tier{}, fmt.Errorf("reading preset %s: %w", path, err)
	}

	result, err := ValidatePreset(data)
	if err != nil {
		return Tier{}, fmt.Errorf("validating preset %s: %w", path, err)
	}
	if !result.Valid {
		return Tier{}, fmt.Errorf("preset %s is invalid:\n%s", path, formatIssues(result.Issues))
	}

	var doc presetDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Tier{}, fmt.Errorf("parsing preset %s: %w", path, err)
	}

	return Tier{
		Name:    doc.Name,
		Summary: doc.Summary,
		build: func(ctx *scaffold.Context) ([]scaffold.Entry, error) {
			return buildPresetEntries(doc, ctx)
		},
	}, nil
}

func formatIssues(issues []ValidationIssue) string {
	lines := make([]string, 0, len(issues))
	for _, issue := range issues {
		if issue.Path != "" {
			lines = append(lines, fmt.Sprintf("  - %s: %s", issue.Path, issue.Message))
			continue
		}
		lines = append(lines, "  - "+issue.Message)
	}
	return strings.Join(lines, "\n")
}

func buildPresetEntries(doc presetDoc, ctx *scaffold.Context) ([]scaffold.Entry, error) {
	entries := make([]scaffold.Entry, 0, len(doc.Entries))
	for i, pe := range doc.Entries {
		entry, err := convertEntry(pe, ctx)
		if err != nil {
			return nil, fmt.Errorf("preset entry %d (%s): %w", i, pe.Path, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func convertEntry(pe presetEntry, ctx *scaffold.Context) (scaffold.Entry, error) {
	kind, err := parseKind(pe.Kind)
	if err != nil {
		return scaffold.Entry{}, err
	}
	policy, err := parsePolicy(pe.Policy)
	if err != nil {
		return scaffold.Entry{}, err
	}

	entry := scaffold.Entry{
		Path:    ctx.Render(pe.Path),
		Kind:    kind,
		Content: pe.Content,
		Policy:  policy,
	}

	if pe.Mode != "" {
		mode, err := strconv.ParseUint(pe.Mode, 8, 32)
		if err != nil {
			return scaffold.Entry{}, fmt.Errorf("invalid mode %q: %w", pe.Mode, err)
		}
		entry.Mode = fs.FileMode(mode)
	}
	return entry, nil
}

func parseKind(s string) (scaffold.Kind, error) {
	switch s {
	case "directory":
		return scaffold.KindDirectory, nil
	case "file":
		return scaffold.KindFile, nil
	default:
		return 0, fmt.Errorf("unknown kind %q", s)
	}
}

func parsePolicy(s string) (scaffold.WritePolicy, error) {
	switch s {
	case "", "create-if-absent":
		return scaffold.CreateIfAbsent, nil
	case "always-overwrite":
		return scaffold.AlwaysOverwrite, nil
	case "prompt-before-overwrite":
		return scaffold.PromptBeforeOverwrite, nil
	default:
		return 0, fmt.Errorf("unknown policy %q", s)
	}
}

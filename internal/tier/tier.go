package tier

import (
	"fmt"
	"strings"

	"github.com/steliosvliaros/setup-ptoject-ps/internal/scaffold"
	"github.com/steliosvliaros/setup-ptoject-ps/internal/templates"
)

// Tier is a named preset level of scaffold completeness. Entries are built
// fresh per run from the project context; nothing persists between runs.
type Tier struct {
	Name    string
	Summary string

	build func(ctx *scaffold.Context) ([]scaffold.Entry, error)
}

// Entries assembles the tier's ordered entry list for one run. Every
// directory entry precedes the file entries inside it, and the run marker is
// always the final entry.
func (t Tier) Entries(ctx *scaffold.Context) ([]scaffold.Entry, error) {
	entries, err := t.build(ctx)
	if err != nil {
		return nil, err
	}

	marker, err := markerEntry(t.Name, ctx)
	if err != nil {
		return nil, err
	}
	return append(entries, marker), nil
}

// Builtin returns the three built-in tiers in ascending completeness.
func Builtin() []Tier {
	return []Tier{
		{Name: "minimal", Summary: "Directory skeleton, README, gitignore, and package stubs", build: minimalEntries},
		{Name: "core", Summary: "Minimal plus conda environment, pyproject, entry point, and license", build: coreEntries},
		{Name: "full", Summary: "Core plus CI workflow, pre-commit hooks, and editor settings", build: fullEntries},
	}
}

// Get looks up a built-in tier by name.
func Get(name string) (Tier, bool) {
	for _, t := range Builtin() {
		if t.Name == name {
			return t, true
		}
	}
	return Tier{}, false
}

// Names returns the built-in tier names in order.
func Names() []string {
	builtins := Builtin()
	names := make([]string, len(builtins))
	for i, t := range builtins {
		names[i] = t.Name
	}
	return names
}

// pythonPackage flattens a project name into an importable package name.
func pythonPackage(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

func authorName(ctx *scaffold.Context) string {
	if a := ctx.Extra["author"]; a != "" {
		return a
	}
	return ctx.ProjectName
}

func markerEntry(tierName string, ctx *scaffold.Context) (scaffold.Entry, error) {
	marker, err := templates.MarkerYML(ctx.Extra["tool_version"], tierName, ctx.PythonVersion, ctx.CreatedAt)
	if err != nil {
		return scaffold.Entry{}, fmt.Errorf("building run marker: %w", err)
	}
	return scaffold.File(templates.MarkerFile, marker, scaffold.AlwaysOverwrite), nil
}

func minimalEntries(ctx *scaffold.Context) ([]scaffold.Entry, error) {
	pkg := pythonPackage(ctx.ProjectName)

	return []scaffold.Entry{
		scaffold.Dir("data/raw"),
		scaffold.Dir("data/processed"),
		scaffold.Dir("notebooks"),
		scaffold.Dir("src/" + pkg),
		scaffold.Dir("tests"),
		scaffold.File("data/raw/.gitkeep", "", scaffold.CreateIfAbsent),
		scaffold.File("data/processed/.gitkeep", "", scaffold.CreateIfAbsent),
		scaffold.File("notebooks/.gitkeep", "", scaffold.CreateIfAbsent),
		scaffold.File(".gitignore", templates.Gitignore, scaffold.PromptBeforeOverwrite),
		scaffold.File("README.md", templates.Readme, scaffold.PromptBeforeOverwrite),
		scaffold.File("src/"+pkg+"/__init__.py", templates.PackageInit, scaffold.CreateIfAbsent),
		scaffold.File("tests/__init__.py", templates.TestsInit, scaffold.CreateIfAbsent),
	}, nil
}

func coreEntries(ctx *scaffold.Context) ([]scaffold.Entry, error) {
	entries, err := minimalEntries(ctx)
	if err != nil {
		return nil, err
	}

	envYML, err := templates.EnvironmentYML(ctx.ProjectName, ctx.PythonVersion)
	if err != nil {
		return nil, err
	}
	pyprojectTOML, err := templates.PyprojectTOML(ctx.ProjectName, ctx.PythonVersion, authorName(ctx))
	if err != nil {
		return nil, err
	}

	pkg := pythonPackage(ctx.ProjectName)
	return append(entries,
		scaffold.File("environment.yml", envYML, scaffold.PromptBeforeOverwrite),
		scaffold.File("pyproject.toml", pyprojectTOML, scaffold.PromptBeforeOverwrite),
		scaffold.File("src/"+pkg+"/main.py", templates.MainPy, scaffold.CreateIfAbsent),
		scaffold.File("tests/test_main.py", templates.TestMainPy, scaffold.CreateIfAbsent),
		scaffold.File("LICENSE", templates.LicenseMIT, scaffold.CreateIfAbsent),
	), nil
}

func fullEntries(ctx *scaffold.Context) ([]scaffold.Entry, error) {
	entries, err := coreEntries(ctx)
	if err != nil {
		return nil, err
	}

	return append(entries,
		scaffold.Dir("reports/figures"),
		scaffold.Dir(".github/workflows"),
		scaffold.Dir(".vscode"),
		scaffold.File("reports/figures/.gitkeep", "", scaffold.CreateIfAbsent),
		scaffold.File(".github/workflows/ci.yml", templates.CIWorkflow, scaffold.CreateIfAbsent),
		scaffold.File(".vscode/settings.json", templates.VSCodeSettings, scaffold.CreateIfAbsent),
		scaffold.File(".vscode/extensions.json", templates.VSCodeExtensions, scaffold.CreateIfAbsent),
		scaffold.File(".pre-commit-config.yaml", templates.PreCommitConfig, scaffold.CreateIfAbsent),
	), nil
}

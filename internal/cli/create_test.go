package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/steliosvliaros/setup-ptoject-ps/internal/scaffold"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "churn-model", false},
		{"single char", "a", false},
		{"digits", "model-2024", false},
		{"leading digit", "2024-report", false},
		{"uppercase", "Churn-Model", true},
		{"leading dash", "-model", true},
		{"underscore", "churn_model", true},
		{"space", "churn model", true},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 65), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestResolveTier(t *testing.T) {
	orig := createPreset
	t.Cleanup(func() { createPreset = orig })

	t.Run("builtin", func(t *testing.T) {
		createPreset = ""
		tr, err := resolveTier("core")
		if err != nil {
			t.Fatalf("resolveTier(core): %v", err)
		}
		if tr.Name != "core" {
			t.Errorf("tier name = %q, want %q", tr.Name, "core")
		}
	})

	t.Run("unknown tier", func(t *testing.T) {
		createPreset = ""
		if _, err := resolveTier("gold"); err == nil || !strings.Contains(err.Error(), "unknown tier") {
			t.Errorf("resolveTier(gold) error = %v, want unknown tier", err)
		}
	})

	t.Run("custom without preset", func(t *testing.T) {
		createPreset = ""
		if _, err := resolveTier("custom"); err == nil || !strings.Contains(err.Error(), "--preset is required") {
			t.Errorf("resolveTier(custom) error = %v, want preset required", err)
		}
	})

	t.Run("preset with builtin tier", func(t *testing.T) {
		createPreset = "tier.yaml"
		if _, err := resolveTier("core"); err == nil || !strings.Contains(err.Error(), "custom tier") {
			t.Errorf("resolveTier(core) with preset error = %v, want rejection", err)
		}
	})
}

func TestCollectVars(t *testing.T) {
	varFile := filepath.Join(t.TempDir(), "vars.env")
	if err := os.WriteFile(varFile, []byte("author=From File\nteam=data\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	origFiles, origFlags := createVarFiles, createVarFlags
	t.Cleanup(func() { createVarFiles, createVarFlags = origFiles, origFlags })

	createVarFiles = []string{varFile}
	createVarFlags = []string{"author=Inline Author"}

	got, err := collectVars()
	if err != nil {
		t.Fatalf("collectVars: %v", err)
	}
	if got["author"] != "Inline Author" {
		t.Errorf("inline var should win: author = %q", got["author"])
	}
	if got["team"] != "data" {
		t.Errorf("team = %q, want %q", got["team"], "data")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("SETUP_PROJECT_PYTHON_VERSION", "3.12")

	orig := createPython
	t.Cleanup(func() { createPython = orig })
	createPython = ""

	if err := applyEnvOverrides(createCmd); err != nil {
		t.Fatalf("applyEnvOverrides: %v", err)
	}
	if createPython != "3.12" {
		t.Errorf("createPython = %q, want %q", createPython, "3.12")
	}
}

func TestPrintAction(t *testing.T) {
	tests := []struct {
		name   string
		action scaffold.Action
		dryRun bool
		want   string
	}{
		{"created", scaffold.ActionCreated, false, "  [ OK ] created README.md\n"},
		{"skipped", scaffold.ActionSkipped, false, "  [SKIP] kept README.md\n"},
		{"overwritten", scaffold.ActionOverwritten, false, "  [OVER] replaced README.md\n"},
		{"backed up", scaffold.ActionBackedUp, false, "  [BKUP] saved README.md\n"},
		{"dry run create", scaffold.ActionCreated, true, "  [PLAN] create README.md\n"},
		{"dry run overwrite", scaffold.ActionOverwritten, true, "  [PLAN] overwrite README.md\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printAction(&buf, tt.action, "README.md", tt.dryRun)
			if buf.String() != tt.want {
				t.Errorf("printAction = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, &scaffold.Result{Created: 12, Skipped: 3, Overwritten: 1})

	want := "\n12 created, 3 skipped, 1 overwritten, 0 backed up\n"
	if buf.String() != want {
		t.Errorf("printSummary = %q, want %q", buf.String(), want)
	}
}

func TestCreateMinimalEndToEnd(t *testing.T) {
	t.Setenv("SETUP_PROJECT_HOME", t.TempDir())
	parent := t.TempDir()

	t.Cleanup(resetCreateFlags)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{
		"create", "minimal", "demo-analysis",
		"--dir", parent, "--skip-git", "--skip-env", "--non-interactive",
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v\noutput:\n%s", err, out.String())
	}

	root := filepath.Join(parent, "demo-analysis")
	for _, path := range []string{
		"README.md",
		".gitignore",
		filepath.Join("src", "demo_analysis", "__init__.py"),
		filepath.Join("tests", "__init__.py"),
		filepath.Join("data", "raw", ".gitkeep"),
		".setup-project.yaml",
	} {
		if _, err := os.Stat(filepath.Join(root, path)); err != nil {
			t.Errorf("expected %s to exist: %v", path, err)
		}
	}

	if !strings.Contains(out.String(), "created README.md") {
		t.Errorf("output missing created line:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Next steps:") {
		t.Errorf("output missing next steps:\n%s", out.String())
	}
}

func resetCreateFlags() {
	createParentDir = ""
	createPython = ""
	createRepoURL = ""
	createPreset = ""
	createVarFlags = nil
	createVarFiles = nil
	createSkipGit = false
	createSkipEnv = false
	createNonInteractive = false
	createDryRun = false
}

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/steliosvliaros/setup-ptoject-ps/internal/config"
	"github.com/steliosvliaros/setup-ptoject-ps/internal/envmgr"
	"github.com/steliosvliaros/setup-ptoject-ps/internal/repo"
	"github.com/steliosvliaros/setup-ptoject-ps/internal/runtime"
	"github.com/steliosvliaros/setup-ptoject-ps/internal/tier"
)

var doctorPreset string

func init() {
	doctorCmd.Flags().StringVar(&doctorPreset, "check-preset", "", "Validate a preset file at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for scaffolding prerequisites",
	Long: `Check that the external tools and configuration the scaffolder relies on
are in place. Git is required for repository setup, conda is optional.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		if doctorPreset != "" {
			return runPresetCheck(cmd.OutOrStdout(), doctorPreset)
		}
		return runAllChecks(cmd.Context(), cmd.OutOrStdout())
	},
}

func runAllChecks(ctx context.Context, w io.Writer) error {
	problems := 0

	fmt.Fprintln(w, "Tool check:")

	git := repo.New(config.Get(config.KeyGitBinary), &runtime.ExecRunner{})
	if version, err := git.Version(ctx); err != nil {
		fmt.Fprintf(w, "  [MISS] git not found (repository setup will be skipped)\n")
		problems++
	} else {
		fmt.Fprintf(w, "  [ OK ] %s\n", version)
	}

	conda := envmgr.New(config.Get(config.KeyCondaBinary), &runtime.ExecRunner{})
	if version, err := conda.Version(ctx); err != nil {
		fmt.Fprintf(w, "  [WARN] conda not found (environment creation will be skipped)\n")
	} else {
		fmt.Fprintf(w, "  [ OK ] %s\n", version)
	}

	fmt.Fprintln(w, "Config check:")
	checkConfigFile(w)

	if problems > 0 {
		return fmt.Errorf("%d problem(s) found", problems)
	}
	fmt.Fprintln(w, "\nAll checks passed.")
	return nil
}

func checkConfigFile(w io.Writer) {
	path := config.FilePath()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [INFO] no config file at %s (defaults apply)\n", path)
		return
	}
	if err != nil {
		fmt.Fprintf(w, "  [WARN] cannot read %s: %v\n", path, err)
		return
	}

	var parsed map[string]any
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		fmt.Fprintf(w, "  [WARN] %s is not valid YAML: %v\n", path, err)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s is valid\n", path)
}

func runPresetCheck(w io.Writer, path string) error {
	fmt.Fprintf(w, "Preset validation: %s\n", path)

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return fmt.Errorf("reading preset: %w", err)
	}

	result, err := tier.ValidatePreset(data)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return fmt.Errorf("preset validation failed: %w", err)
	}

	if result.Valid {
		t, err := tier.LoadPreset(path)
		if err != nil {
			fmt.Fprintln(w, "  [ OK ] Valid preset")
			return nil
		}
		fmt.Fprintf(w, "  [ OK ] Valid preset: %s (%s)\n", t.Name, t.Summary)
		return nil
	}

	fmt.Fprintf(w, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		if issue.Path != "" {
			fmt.Fprintf(w, "    - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(w, "    - %s\n", issue.Message)
		}
	}
	return fmt.Errorf("preset %s has %d validation issue(s)", path, len(result.Issues))
}

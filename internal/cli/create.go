package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	envparse "github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/steliosvliaros/setup-ptoject-ps/internal/config"
	"github.com/steliosvliaros/setup-ptoject-ps/internal/envmgr"
	"github.com/steliosvliaros/setup-ptoject-ps/internal/pyversion"
	"github.com/steliosvliaros/setup-ptoject-ps/internal/repo"
	"github.com/steliosvliaros/setup-ptoject-ps/internal/runtime"
	"github.com/steliosvliaros/setup-ptoject-ps/internal/scaffold"
	"github.com/steliosvliaros/setup-ptoject-ps/internal/tier"
	"github.com/steliosvliaros/setup-ptoject-ps/internal/vars"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

var (
	createParentDir      string
	createPython         string
	createRepoURL        string
	createPreset         string
	createVarFlags       []string
	createVarFiles       []string
	createSkipGit        bool
	createSkipEnv        bool
	createNonInteractive bool
	createDryRun         bool
)

// createEnv holds environment overrides applied when the matching flag was
// not set on the command line.
type createEnv struct {
	PythonVersion  string `env:"SETUP_PROJECT_PYTHON_VERSION"`
	ParentDir      string `env:"SETUP_PROJECT_PARENT_DIR"`
	SkipGit        bool   `env:"SETUP_PROJECT_SKIP_GIT"`
	SkipEnv        bool   `env:"SETUP_PROJECT_SKIP_ENV"`
	NonInteractive bool   `env:"SETUP_PROJECT_NON_INTERACTIVE"`
}

func init() {
	createCmd.Flags().StringVar(&createParentDir, "dir", "", "Parent directory for the project (default: current directory)")
	createCmd.Flags().StringVar(&createPython, "python", "", "Python version for the scaffold (default: from config)")
	createCmd.Flags().StringVar(&createRepoURL, "repo", "", "Git URL to clone into the project directory before scaffolding")
	createCmd.Flags().StringVar(&createPreset, "preset", "", "Preset file defining a custom tier")
	createCmd.Flags().StringArrayVar(&createVarFlags, "var", nil, "Extra placeholder value as key=value (repeatable)")
	createCmd.Flags().StringArrayVar(&createVarFiles, "var-file", nil, "File of key=value placeholder values (repeatable)")
	createCmd.Flags().BoolVar(&createSkipGit, "skip-git", false, "Skip git repository setup")
	createCmd.Flags().BoolVar(&createSkipEnv, "skip-env", false, "Skip conda environment creation")
	createCmd.Flags().BoolVar(&createNonInteractive, "non-interactive", false, "Never prompt; conflicting files are kept")
	createCmd.Flags().BoolVar(&createDryRun, "dry-run", false, "Report planned actions without writing anything")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <tier> <name>",
	Short: "Scaffold a new project at the given tier",
	Long: `Create a Python data science project from a built-in tier (minimal, core,
full) or from a custom preset file.

Re-running create over an existing project is safe: missing pieces are
created, existing ones are kept, and files the tool would normally rewrite
require confirmation first. A declined overwrite always leaves your file
untouched.

Examples:
  setup-project create minimal my-analysis
  setup-project create core churn-model --python 3.12
  setup-project create full sales-forecast --repo git@github.com:acme/sales-forecast.git
  setup-project create custom weekly-report --preset report-tier.yaml`,
	Args: cobra.ExactArgs(2),
	RunE: runCreate,
}

// ─── orchestration ─────────────────────────────────────────────────

func runCreate(cmd *cobra.Command, args []string) error {
	tierName, name := args[0], args[1]
	if err := validateName(name); err != nil {
		return err
	}

	config.Load()
	if err := applyEnvOverrides(cmd); err != nil {
		return err
	}

	log := loggerFromContext(cmd.Context())
	out := cmd.OutOrStdout()

	pythonVersion := createPython
	if pythonVersion == "" {
		pythonVersion = config.Get(config.KeyPythonVersion)
	}
	pythonVersion, err := pyversion.Normalize(pythonVersion)
	if err != nil {
		return err
	}

	t, err := resolveTier(tierName)
	if err != nil {
		return err
	}

	extra, err := collectVars()
	if err != nil {
		return err
	}
	if _, ok := extra["author"]; !ok {
		extra["author"] = config.Get(config.KeyAuthor)
	}
	extra["tool_version"] = buildVersion

	parent := createParentDir
	if parent == "" {
		parent = "."
	}
	root := filepath.Join(parent, name)

	sctx := scaffold.NewContext(name, pythonVersion, createRepoURL, extra)
	entries, err := t.Entries(sctx)
	if err != nil {
		return err
	}

	git := repo.New(config.Get(config.KeyGitBinary), &runtime.ExecRunner{})

	cloned := false
	if createRepoURL != "" && !createDryRun {
		if err := git.Ensure(); err != nil {
			log.Warn("git unavailable, skipping clone", "error", err)
		} else if err := git.Clone(cmd.Context(), createRepoURL, root); err != nil {
			warnTool(log, "clone", err)
		} else {
			fmt.Fprintf(out, "Cloned %s into %s\n", createRepoURL, root)
			cloned = true
		}
	}

	interactive := !createNonInteractive && !createDryRun && isTerminal(os.Stdin)
	opts := scaffold.Options{
		Interactive: interactive,
		DryRun:      createDryRun,
		Decide:      overwritePrompter(cmd.InOrStdin(), out),
		Report: func(action scaffold.Action, path string) {
			printAction(out, action, path, createDryRun)
		},
		Logger: log,
	}

	fmt.Fprintf(out, "Scaffolding %s project %q in %s\n", t.Name, name, root)
	result, err := scaffold.Apply(root, entries, sctx, opts)
	printSummary(out, result)
	if err != nil {
		return fmt.Errorf("scaffold aborted: %w", err)
	}

	if createDryRun {
		fmt.Fprintln(out, "Dry run: nothing was written.")
		return nil
	}

	runCollaborators(cmd.Context(), out, log, git, root, name, cloned)
	printNextSteps(out, root, name)
	return nil
}

// ─── collaborators ─────────────────────────────────────────────────

// runCollaborators drives the external tools after the scaffold landed.
// Failures here never undo scaffold output; they degrade to warnings.
func runCollaborators(ctx context.Context, out io.Writer, log *slog.Logger, git *repo.Client, root, name string, cloned bool) {
	if !createSkipGit {
		setupRepository(ctx, out, log, git, root, cloned)
	}

	if !createSkipEnv {
		if _, err := os.Stat(filepath.Join(root, "environment.yml")); err == nil {
			createEnvironment(ctx, out, log, root, name)
		}
	}
}

func setupRepository(ctx context.Context, out io.Writer, log *slog.Logger, git *repo.Client, root string, cloned bool) {
	if err := git.Ensure(); err != nil {
		log.Warn("git not found, skipping repository setup", "error", err)
		return
	}

	if cloned {
		status, err := git.Status(ctx, root)
		switch {
		case err != nil:
			warnTool(log, "git status", err)
		case status == "":
			fmt.Fprintln(out, "Repository is clean.")
		default:
			fmt.Fprintf(out, "Repository changes:\n%s\n", status)
		}
		return
	}

	if _, err := os.Stat(filepath.Join(root, ".git")); err == nil {
		log.Info("existing repository detected, skipping git init")
		return
	}

	initialTag := config.Get(config.KeyGitInitialTag)
	if err := initRepository(ctx, git, root, initialTag); err != nil {
		warnTool(log, "git", err)
		return
	}
	if initialTag == "" {
		fmt.Fprintln(out, "Initialized git repository")
		return
	}
	fmt.Fprintf(out, "Initialized git repository (tagged %s)\n", initialTag)
}

func initRepository(ctx context.Context, git *repo.Client, root, tag string) error {
	if err := git.Init(ctx, root); err != nil {
		return err
	}
	if err := git.AddAll(ctx, root); err != nil {
		return err
	}
	if err := git.Commit(ctx, root, "Initial project scaffold"); err != nil {
		return err
	}
	// An empty configured tag disables tagging.
	if tag == "" {
		return nil
	}
	return git.Tag(ctx, root, tag)
}

func createEnvironment(ctx context.Context, out io.Writer, log *slog.Logger, root, name string) {
	conda := envmgr.New(config.Get(config.KeyCondaBinary), &runtime.ExecRunner{})
	if err := conda.Ensure(); err != nil {
		log.Warn("conda not found, skipping environment creation", "error", err)
		return
	}

	fmt.Fprintln(out, "Creating conda environment from environment.yml (this may take a while)...")
	if err := conda.EnvCreate(ctx, root, "environment.yml"); err != nil {
		warnTool(log, "conda env create", err)
		return
	}
	fmt.Fprintf(out, "Conda environment %q is ready.\n", name)
}

// warnTool logs a collaborator failure, surfacing captured output when the
// tool exited non-zero.
func warnTool(log *slog.Logger, what string, err error) {
	var exitErr *runtime.ExitError
	if errors.As(err, &exitErr) {
		log.Warn(what+" failed, project files were kept", "exit_code", exitErr.Code, "output", strings.TrimSpace(exitErr.Output))
		return
	}
	log.Warn(what+" failed, project files were kept", "error", err)
}

// ─── helpers ───────────────────────────────────────────────────────

func validateName(name string) error {
	if len(name) > 64 {
		return fmt.Errorf("invalid project name %q: longer than 64 characters", name)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid project name %q: must match pattern [a-z0-9][a-z0-9-]*", name)
	}
	return nil
}

// applyEnvOverrides fills flag values from SETUP_PROJECT_* variables for
// flags the user did not set explicitly.
func applyEnvOverrides(cmd *cobra.Command) error {
	var ce createEnv
	if err := envparse.Parse(&ce); err != nil {
		return fmt.Errorf("reading environment overrides: %w", err)
	}

	flags := cmd.Flags()
	if !flags.Changed("python") && ce.PythonVersion != "" {
		createPython = ce.PythonVersion
	}
	if !flags.Changed("dir") && ce.ParentDir != "" {
		createParentDir = ce.ParentDir
	}
	if !flags.Changed("skip-git") && ce.SkipGit {
		createSkipGit = true
	}
	if !flags.Changed("skip-env") && ce.SkipEnv {
		createSkipEnv = true
	}
	if !flags.Changed("non-interactive") && ce.NonInteractive {
		createNonInteractive = true
	}
	return nil
}

func resolveTier(tierName string) (tier.Tier, error) {
	if tierName == "custom" {
		if createPreset == "" {
			return tier.Tier{}, fmt.Errorf("--preset is required for the custom tier")
		}
		return tier.LoadPreset(createPreset)
	}
	if createPreset != "" {
		return tier.Tier{}, fmt.Errorf("--preset only applies to the custom tier")
	}
	t, ok := tier.Get(tierName)
	if !ok {
		return tier.Tier{}, fmt.Errorf("unknown tier %q: choose one of %s, or custom", tierName, strings.Join(tier.Names(), ", "))
	}
	return t, nil
}

// collectVars merges var files in order, then inline assignments on top.
func collectVars() (vars.Vars, error) {
	merged := vars.Vars{}
	for _, path := range createVarFiles {
		fileVars, err := vars.LoadFile(path)
		if err != nil {
			return nil, err
		}
		merged = vars.Merge(merged, fileVars)
	}

	inline, err := vars.ParseAssignments(createVarFlags)
	if err != nil {
		return nil, err
	}
	return vars.Merge(merged, inline), nil
}

func printAction(w io.Writer, action scaffold.Action, path string, dryRun bool) {
	if dryRun {
		switch action {
		case scaffold.ActionCreated:
			fmt.Fprintf(w, "  [PLAN] create %s\n", path)
		case scaffold.ActionSkipped:
			fmt.Fprintf(w, "  [PLAN] keep %s\n", path)
		case scaffold.ActionOverwritten:
			fmt.Fprintf(w, "  [PLAN] overwrite %s\n", path)
		case scaffold.ActionBackedUp:
			fmt.Fprintf(w, "  [PLAN] back up %s\n", path)
		}
		return
	}

	switch action {
	case scaffold.ActionCreated:
		fmt.Fprintf(w, "  [ OK ] created %s\n", path)
	case scaffold.ActionSkipped:
		fmt.Fprintf(w, "  [SKIP] kept %s\n", path)
	case scaffold.ActionOverwritten:
		fmt.Fprintf(w, "  [OVER] replaced %s\n", path)
	case scaffold.ActionBackedUp:
		fmt.Fprintf(w, "  [BKUP] saved %s\n", path)
	}
}

var summaryPrinter = message.NewPrinter(language.English)

func printSummary(w io.Writer, res *scaffold.Result) {
	if res == nil {
		return
	}
	summaryPrinter.Fprintf(w, "\n%d created, %d skipped, %d overwritten, %d backed up\n",
		res.Created, res.Skipped, res.Overwritten, res.BackedUp)
}

func printNextSteps(w io.Writer, root, name string) {
	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintf(w, "  1. cd %s\n", root)

	step := 2
	if _, err := os.Stat(filepath.Join(root, "environment.yml")); err == nil {
		fmt.Fprintf(w, "  %d. Run 'conda activate %s' (create it first with 'conda env create -f environment.yml' if it was skipped)\n", step, name)
		step++
	}
	if _, err := os.Stat(filepath.Join(root, "tests", "test_main.py")); err == nil {
		fmt.Fprintf(w, "  %d. Run 'pytest' to check the starter test\n", step)
		step++
	}
	if _, err := os.Stat(filepath.Join(root, "src")); err == nil {
		fmt.Fprintf(w, "  %d. Start working in src/\n", step)
	}
}

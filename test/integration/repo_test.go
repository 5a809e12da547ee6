//go:build integration

package integration_test

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/steliosvliaros/setup-ptoject-ps/internal/repo"
	"github.com/steliosvliaros/setup-ptoject-ps/internal/runtime"
	"github.com/steliosvliaros/setup-ptoject-ps/internal/scaffold"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

// seedIdentity sets a throwaway commit identity on the repository so commits
// work on machines without global git config.
func seedIdentity(t *testing.T, runner runtime.Runner, dir string) {
	t.Helper()
	ctx := context.Background()
	for _, args := range [][]string{
		{"config", "user.email", "ci@example.com"},
		{"config", "user.name", "CI"},
	} {
		if _, err := runner.Run(ctx, dir, "git", args...); err != nil {
			t.Fatalf("git %v: %v", args, err)
		}
	}
}

// TestRepositoryBootstrap initializes a real git repository over a fresh
// scaffold, commits it, and tags the first commit.
func TestRepositoryBootstrap(t *testing.T) {
	requireGit(t)

	env := setupTestEnv(t)
	root := filepath.Join(env.ParentDir, "demo")
	applyTier(t, "minimal", "demo", root, scaffold.Options{})

	runner := &runtime.ExecRunner{}
	client := repo.New("git", runner)
	ctx := context.Background()

	if err := client.Init(ctx, root); err != nil {
		t.Fatalf("init: %v", err)
	}
	seedIdentity(t, runner, root)

	if err := client.AddAll(ctx, root); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := client.Commit(ctx, root, "Initial project scaffold"); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if err := client.Tag(ctx, root, "v0.1.0"); err != nil {
		t.Fatalf("tag: %v", err)
	}

	status, err := client.Status(ctx, root)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status != "" {
		t.Errorf("expected clean tree after commit, got:\n%s", status)
	}
	assertDirExists(t, filepath.Join(root, ".git"))
}

// TestCloneIntoProjectDir clones a local repository, then scaffolds on top
// so the tier fills in around the cloned content.
func TestCloneIntoProjectDir(t *testing.T) {
	requireGit(t)

	env := setupTestEnv(t)
	runner := &runtime.ExecRunner{}
	client := repo.New("git", runner)
	ctx := context.Background()

	src := filepath.Join(env.ParentDir, "upstream")
	writeFile(t, filepath.Join(src, "NOTES.md"), "upstream notes\n")
	if err := client.Init(ctx, src); err != nil {
		t.Fatalf("init: %v", err)
	}
	seedIdentity(t, runner, src)
	for _, args := range [][]string{
		{"add", "-A"},
		{"commit", "-m", "seed"},
	} {
		if _, err := runner.Run(ctx, src, "git", args...); err != nil {
			t.Fatalf("git %v: %v", args, err)
		}
	}

	dst := filepath.Join(env.ParentDir, "cloned-demo")
	if err := client.Clone(ctx, src, dst); err != nil {
		t.Fatalf("clone: %v", err)
	}
	assertFileExists(t, filepath.Join(dst, "NOTES.md"))
	assertFileNotExists(t, dst+".tmp")

	applyTier(t, "minimal", "cloned-demo", dst, scaffold.Options{})
	assertFileExists(t, filepath.Join(dst, "README.md"))
	assertFileContains(t, filepath.Join(dst, "NOTES.md"), "upstream notes")
}

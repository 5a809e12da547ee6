// Package repo wraps the external version-control client used after a
// scaffold run: fresh projects get init/add/commit/tag, cloned projects get
// status. Failures here never unwind scaffold artifacts; callers report them
// as warnings.
package repo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/steliosvliaros/setup-ptoject-ps/internal/runtime"
)

const (
	// DefaultBin is the binary name used when no override is configured.
	DefaultBin = "git"

	// tmpSuffix is appended to the target dir during atomic clone.
	tmpSuffix = ".tmp"
)

// Client invokes the version-control binary through a Runner.
type Client struct {
	bin    string
	runner runtime.Runner
}

// New returns a Client for the given binary name. An empty bin falls back to
// DefaultBin; a nil runner falls back to a plain ExecRunner.
func New(bin string, runner runtime.Runner) *Client {
	if bin == "" {
		bin = DefaultBin
	}
	if runner == nil {
		runner = &runtime.ExecRunner{}
	}
	return &Client{bin: bin, runner: runner}
}

// Ensure reports an error when the version-control binary is not installed.
func (c *Client) Ensure() error {
	if _, err := runtime.Find(c.bin); err != nil {
		return fmt.Errorf("version control unavailable: %w", err)
	}
	return nil
}

// Version returns the client's version line, e.g. "git version 2.43.0".
func (c *Client) Version(ctx context.Context) (string, error) {
	out, err := c.runner.Run(ctx, "", c.bin, "--version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out.Stdout), nil
}

// Init initializes a fresh repository in dir.
func (c *Client) Init(ctx context.Context, dir string) error {
	_, err := c.runner.Run(ctx, dir, c.bin, "init")
	return err
}

// Clone clones url into dst. The clone is atomic: it lands in a temporary
// sibling directory first and is renamed into place on success, so a failed
// or interrupted clone never leaves a half-populated project directory.
func (c *Client) Clone(ctx context.Context, url, dst string) error {
	tmpDir := dst + tmpSuffix

	// Clean up any leftover tmp dir from a previous failed attempt.
	_ = os.RemoveAll(tmpDir)

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("creating parent directory: %w", err)
	}

	if _, err := c.runner.Run(ctx, "", c.bin, "clone", url, tmpDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return err
	}

	if err := os.Rename(tmpDir, dst); err != nil {
		_ = os.RemoveAll(tmpDir)
		return fmt.Errorf("finalizing clone: %w", err)
	}
	return nil
}

// AddAll stages everything in dir.
func (c *Client) AddAll(ctx context.Context, dir string) error {
	_, err := c.runner.Run(ctx, dir, c.bin, "add", "-A")
	return err
}

// Commit records the staged tree with the given message.
func (c *Client) Commit(ctx context.Context, dir, message string) error {
	_, err := c.runner.Run(ctx, dir, c.bin, "commit", "-m", message)
	return err
}

// Tag creates a lightweight tag at HEAD.
func (c *Client) Tag(ctx context.Context, dir, tag string) error {
	_, err := c.runner.Run(ctx, dir, c.bin, "tag", tag)
	return err
}

// Status returns the short status of dir, one line per pending path.
func (c *Client) Status(ctx context.Context, dir string) (string, error) {
	out, err := c.runner.Run(ctx, dir, c.bin, "status", "--short")
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out.Stdout, "\n"), nil
}

// Package envmgr wraps the external environment manager (conda or a
// compatible drop-in) used to materialize environment.yml after a scaffold
// run. Like version control, a failure here is a warning: the scaffold on
// disk stays valid and the command can be re-run by hand.
package envmgr

import (
	"context"
	"fmt"
	"strings"

	"github.com/steliosvliaros/setup-ptoject-ps/internal/runtime"
)

// DefaultBin is the binary name used when no override is configured.
const DefaultBin = "conda"

// Client invokes the environment manager through a Runner.
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

// Ensure reports an error when the environment manager is not installed.
func (c *Client) Ensure() error {
	if _, err := runtime.Find(c.bin); err != nil {
		return fmt.Errorf("environment manager unavailable: %w", err)
	}
	return nil
}

// Version returns the manager's version line, e.g. "conda 24.5.0".
func (c *Client) Version(ctx context.Context) (string, error) {
	out, err := c.runner.Run(ctx, "", c.bin, "--version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out.Stdout), nil
}

// EnvCreate creates the environment described by specFile, resolved relative
// to dir. The environment name comes from the file itself. This blocks for
// as long as the solver runs; there is no timeout.
func (c *Client) EnvCreate(ctx context.Context, dir, specFile string) error {
	_, err := c.runner.Run(ctx, dir, c.bin, "env", "create", "-f", specFile)
	return err
}

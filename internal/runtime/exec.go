package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// ExecRunner runs collaborator binaries via os/exec. Output is always
// captured; set Stdout/Stderr to additionally stream it (e.g. to show conda's
// solver progress live).
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes bin with args in dir and blocks until it exits. A non-zero
// exit is returned as *ExitError alongside the captured output.
func (r *ExecRunner) Run(ctx context.Context, dir, bin string, args ...string) (*Output, error) {
	path, err := exec.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("%s not found in PATH: %w", bin, err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir

	stdout := r.Stdout
	if stdout == nil {
		stdout = io.Discard
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = io.Discard
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	err = cmd.Run()

	out := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			out.ExitCode = exitErr.ExitCode()
			return out, &ExitError{Tool: bin, Args: args, Code: out.ExitCode, Output: out.Combined()}
		}
		return out, fmt.Errorf("executing %s: %w", bin, err)
	}

	return out, nil
}

// Find reports the resolved path of bin, or an error when it is not
// installed. Used by doctor checks.
func Find(bin string) (string, error) {
	path, err := exec.LookPath(bin)
	if err != nil {
		return "", fmt.Errorf("%s not found in PATH: %w", bin, err)
	}
	return path, nil
}

package runtime

import (
	"context"
	"fmt"
	"strings"
)

// Runner executes an external collaborator binary and captures its output.
type Runner interface {
	// Run executes bin with args in dir (empty dir means the current
	// directory) and blocks until the subprocess exits.
	Run(ctx context.Context, dir, bin string, args ...string) (*Output, error)
}

// Output captures the result of a collaborator invocation.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Combined returns the trimmed stdout and stderr in one string.
func (o *Output) Combined() string {
	return strings.TrimSpace(strings.TrimSpace(o.Stdout) + "\n" + strings.TrimSpace(o.Stderr))
}

// ExitError reports a collaborator subprocess that exited non-zero. The
// scaffold artifacts written before the invocation remain valid; callers
// surface this as a warning rather than unwinding the run.
type ExitError struct {
	Tool   string
	Args   []string
	Code   int
	Output string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s %s exited with status %d", e.Tool, strings.Join(e.Args, " "), e.Code)
}

package scaffold

import "fmt"

// PathEscapeError reports an entry path that resolves outside the project
// root. It aborts the whole run.
type PathEscapeError struct {
	Path string
}

func (e *PathEscapeError) Error() string {
	return fmt.Sprintf("path %q escapes the project root", e.Path)
}

// WriteError reports a filesystem failure while creating or replacing a
// single entry. Prior entries stay in place; the run is re-runnable.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
